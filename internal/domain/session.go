package domain

// Session holds the per-invocation configuration handed to each handler.
// It is passed explicitly rather than kept as ambient global state.
type Session struct {
	Serial string // selected device serial; empty means none selected
	DryRun bool   // print the command instead of executing it
}
