package domain

// ExecResult holds the outcome of a captured command execution.
// Fields are ordered to minimize memory padding.
type ExecResult struct {
	RunID     string // unique identifier for this run
	Stdout    []byte // captured stdout (may be truncated)
	Stderr    []byte // captured stderr (may be truncated)
	ExitCode  int    // process exit code
	Truncated bool   // true if output exceeded the size cap
}

// Ok reports whether the command exited cleanly.
func (r *ExecResult) Ok() bool {
	return r.ExitCode == 0
}

// CombinedOutput returns stdout followed by stderr as a string.
func (r *ExecResult) CombinedOutput() string {
	if len(r.Stderr) == 0 {
		return string(r.Stdout)
	}
	return string(r.Stdout) + string(r.Stderr)
}
