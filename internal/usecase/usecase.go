// Package usecase contains one use case per workbench operation.
// Each use case validates its input, builds the external command, runs it
// through the executor port, and shapes the result for the CLI or TUI.
// Subprocess failures are reported as warnings, never as fatal errors.
package usecase

import (
	"fmt"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
)

// requireSerial fails when the session has no device selected.
func requireSerial(session domain.Session) error {
	if session.Serial == "" {
		return domain.ErrNoDeviceSelected
	}
	return nil
}

// warning formats a non-zero exit for display. Returns "" on success.
func warning(res *domain.ExecResult) string {
	if res.Ok() {
		return ""
	}
	msg := fmt.Sprintf("command exited with code %d", res.ExitCode)
	if stderr := strings.TrimSpace(string(res.Stderr)); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}
