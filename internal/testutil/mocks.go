// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/openclaw/workbench/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockLogger is a no-op test double for domain.Logger that records messages.
type MockLogger struct {
	Entries []string
}

func (m *MockLogger) record(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("[%s] [%s] %s", level, category, msg))
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// MockExecutor is a test double for domain.CommandExecutor. It records every
// command and serves canned results keyed by the rendered command string,
// falling back to a default result.
// Fields are ordered to minimize memory padding.
type MockExecutor struct {
	Commands     []domain.ExecCommand          // every command passed to Execute
	Streamed     []domain.ExecCommand          // every command passed to ExecuteStreamed
	Results      map[string]*domain.ExecResult // keyed by cmd.String()
	Default      *domain.ExecResult
	ExecuteErr   error
	ResolveErr   error
	StreamedCode int
	StreamedErr  error
}

// NewMockExecutor creates a MockExecutor whose default result is a clean exit
// with empty output.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Results: make(map[string]*domain.ExecResult),
		Default: &domain.ExecResult{RunID: "test-run", ExitCode: 0},
	}
}

// Stub registers a canned result for a command string.
func (m *MockExecutor) Stub(cmdString string, result *domain.ExecResult) {
	m.Results[cmdString] = result
}

// StubOutput registers a clean-exit result with the given stdout.
func (m *MockExecutor) StubOutput(cmdString, stdout string) {
	m.Results[cmdString] = &domain.ExecResult{RunID: "test-run", Stdout: []byte(stdout)}
}

// Execute records the command and returns the matching canned result.
func (m *MockExecutor) Execute(_ context.Context, cmd domain.ExecCommand) (*domain.ExecResult, error) {
	if m.ExecuteErr != nil {
		return nil, m.ExecuteErr
	}
	m.Commands = append(m.Commands, cmd)
	if res, ok := m.Results[cmd.String()]; ok {
		return res, nil
	}
	return m.Default, nil
}

// ExecuteStreamed records the command and returns the configured exit code.
func (m *MockExecutor) ExecuteStreamed(_ context.Context, cmd domain.ExecCommand) (int, error) {
	m.Streamed = append(m.Streamed, cmd)
	return m.StreamedCode, m.StreamedErr
}

// Resolve returns the configured resolve error.
func (m *MockExecutor) Resolve(string) error {
	return m.ResolveErr
}

// AllCommands returns captured and streamed commands in invocation order
// (captured first).
func (m *MockExecutor) AllCommands() []domain.ExecCommand {
	all := make([]domain.ExecCommand, 0, len(m.Commands)+len(m.Streamed))
	all = append(all, m.Commands...)
	return append(all, m.Streamed...)
}

// MockStore is a test double for domain.ArtifactStore.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	Reports    []*domain.DeviceReport
	Media      map[string][]byte // path -> data
	LogDumps   map[string][]byte // path -> data
	MediaPaths []string
	WriteErr   error
	pathSeq    int
}

// NewMockStore creates a MockStore with initialized maps.
func NewMockStore() *MockStore {
	return &MockStore{
		Media:    make(map[string][]byte),
		LogDumps: make(map[string][]byte),
	}
}

func (m *MockStore) nextPath(prefix, ext string) string {
	m.pathSeq++
	return fmt.Sprintf("/mock/%s-%d.%s", prefix, m.pathSeq, ext)
}

// WriteReport records the report.
func (m *MockStore) WriteReport(report *domain.DeviceReport) (string, error) {
	if m.WriteErr != nil {
		return "", m.WriteErr
	}
	m.Reports = append(m.Reports, report)
	return m.nextPath("report", "yaml"), nil
}

// WriteMedia records the media bytes.
func (m *MockStore) WriteMedia(kind, _ /* serial */, ext string, data []byte) (string, error) {
	if m.WriteErr != nil {
		return "", m.WriteErr
	}
	path := m.nextPath(kind, ext)
	m.Media[path] = data
	return path, nil
}

// MediaPath reserves a mock media path.
func (m *MockStore) MediaPath(kind, _ /* serial */, ext string) (string, error) {
	if m.WriteErr != nil {
		return "", m.WriteErr
	}
	path := m.nextPath(kind, ext)
	m.MediaPaths = append(m.MediaPaths, path)
	return path, nil
}

// WriteLogDump records the dump bytes.
func (m *MockStore) WriteLogDump(_ /* serial */ string, data []byte) (string, error) {
	if m.WriteErr != nil {
		return "", m.WriteErr
	}
	path := m.nextPath("logcat", "txt")
	m.LogDumps[path] = data
	return path, nil
}
