// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"github.com/openclaw/workbench/internal/domain"
)

// defaultMaxOutput caps captured output per stream.
const defaultMaxOutput = 4 << 20 // 4 MiB

// Client implements domain.CommandExecutor.
type Client struct {
	logger    domain.Logger
	maxOutput int
}

// NewClient creates a new command executor client.
func NewClient(logger domain.Logger) *Client {
	return &Client{logger: logger, maxOutput: defaultMaxOutput}
}

// Ensure Client implements domain.CommandExecutor.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs a command and captures stdout/stderr fully before returning.
// A non-zero exit code is reported in the result, not as an error.
func (c *Client) Execute(ctx context.Context, cmd domain.ExecCommand) (*domain.ExecResult, error) {
	if cmd.Program == "" {
		return nil, domain.ErrEmptyCommand
	}
	if err := c.Resolve(cmd.Program); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	c.logger.Debug("exec", fmt.Sprintf("run %s: %s", runID, cmd.String()))

	// #nosec G204 - program and args are built by trusted command builders
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	var stdout, stderr bytes.Buffer
	stdoutW := &limitWriter{buf: &stdout, limit: c.maxOutput}
	stderrW := &limitWriter{buf: &stderr, limit: c.maxOutput}
	execCmd.Stdout = stdoutW
	execCmd.Stderr = stderrW

	runErr := execCmd.Run()

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return nil, fmt.Errorf("executing %s: %w", cmd.Program, runErr)
		}
	}

	if exitCode != 0 {
		c.logger.Warn("exec", fmt.Sprintf("run %s exited %d", runID, exitCode))
	}

	return &domain.ExecResult{
		RunID:     runID,
		ExitCode:  exitCode,
		Stdout:    stdout.Bytes(),
		Stderr:    stderr.Bytes(),
		Truncated: stdoutW.dropped || stderrW.dropped,
	}, nil
}

// ExecuteStreamed runs a command with stdin/stdout/stderr connected to the
// terminal. The exit code is returned; an interrupt of the child (Ctrl+C
// during a following logcat) is reported via the code, never as an error.
func (c *Client) ExecuteStreamed(ctx context.Context, cmd domain.ExecCommand) (int, error) {
	if cmd.Program == "" {
		return 0, domain.ErrEmptyCommand
	}
	if err := c.Resolve(cmd.Program); err != nil {
		return 0, err
	}

	c.logger.Debug("exec", "stream: "+cmd.String())

	// #nosec G204 - program and args are built by trusted command builders
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr

	runErr := execCmd.Run()
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// Signal-terminated children report -1; treat as clean stop.
			return exitErr.ExitCode(), nil
		}
		if errors.Is(runErr, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return 0, nil
		}
		return 0, fmt.Errorf("executing %s: %w", cmd.Program, runErr)
	}
	return 0, nil
}

// Resolve checks that a program can be found on PATH.
func (c *Client) Resolve(program string) error {
	if _, err := exec.LookPath(program); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrUnresolvedBinary, program)
	}
	return nil
}

// limitWriter writes up to limit bytes to buf, then silently discards the
// rest. dropped records whether any byte was actually discarded, so output
// that lands exactly on the limit is not reported as truncated.
type limitWriter struct {
	buf     *bytes.Buffer
	limit   int
	dropped bool
}

func (w *limitWriter) Write(p []byte) (int, error) {
	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		if len(p) > 0 {
			w.dropped = true
		}
		return len(p), nil // discard
	}
	if len(p) > remaining {
		// Write only what fits, but report all bytes as consumed
		// to avoid short write errors from io.Copy.
		w.buf.Write(p[:remaining])
		w.dropped = true
		return len(p), nil
	}
	return w.buf.Write(p)
}
