package domain

import "strings"

// OutputMode selects how a command's output is handled by the executor.
type OutputMode int

const (
	// ModeCaptured buffers stdout and stderr fully before returning.
	ModeCaptured OutputMode = iota
	// ModeStreamed connects the command to the terminal. Used for
	// unbounded output such as a following logcat.
	ModeStreamed
)

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
	Mode    OutputMode
}

// Argv returns the full argument vector including the program name.
func (c ExecCommand) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Program)
	return append(argv, c.Args...)
}

// String renders the command the way it would be typed into a shell.
// Used for dry-run display and logging.
func (c ExecCommand) String() string {
	return strings.Join(c.Argv(), " ")
}
