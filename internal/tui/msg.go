package tui

// Msg is the interface for all console messages.
// All message types implement this sealed interface.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgResult is sent when an operation finishes.
//
//nolint:govet // Logical field order preferred
type MsgResult struct {
	Title   string
	Body    string
	Warning string
	Err     error
}

func (MsgResult) sealed() {}

// MsgDevices is sent when the selectable serials are loaded.
//
//nolint:govet // Logical field order preferred
type MsgDevices struct {
	Serials []string
	Err     error
}

func (MsgDevices) sealed() {}

// MsgFollowExited is sent when the streamed logcat child returns the
// terminal.
type MsgFollowExited struct {
	Err error
}

func (MsgFollowExited) sealed() {}
