package domain

import (
	"context"
	"time"
)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs a command and captures its output. A non-zero exit
	// code is reported in the result, not as an error; errors are
	// reserved for failures to run the command at all.
	Execute(ctx context.Context, cmd ExecCommand) (*ExecResult, error)

	// ExecuteStreamed runs a command with stdin/stdout/stderr connected
	// to the terminal and returns its exit code. A user interrupt of the
	// child is not an error.
	ExecuteStreamed(ctx context.Context, cmd ExecCommand) (int, error)

	// Resolve checks that a program can be found on PATH.
	Resolve(program string) error
}

// ArtifactStore persists workbench artifacts (reports, media, log dumps).
type ArtifactStore interface {
	// WriteReport writes a device report and returns its path.
	WriteReport(report *DeviceReport) (string, error)

	// WriteMedia writes captured bytes (screenshot) under the media dir
	// and returns the file path.
	WriteMedia(kind, serial, ext string, data []byte) (string, error)

	// MediaPath reserves a unique path under the media dir for a file
	// produced externally (e.g. adb pull) and returns it.
	MediaPath(kind, serial, ext string) (string, error)

	// WriteLogDump writes a logcat dump under the logs dir and returns
	// the file path.
	WriteLogDump(serial string, data []byte) (string, error)
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (file over defaults).
	Load() (*Config, error)
}

// Logger writes categorized log entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
