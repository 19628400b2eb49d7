package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesEntries(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("exec", "ran adb devices")
	logger.Warn("exec", "exit code 1")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[INFO] [exec] ran adb devices")
	assert.Contains(t, content, "[WARN] [exec] exit code 1")
}

func TestLogger_LevelFilter(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("exec", "hidden")
	logger.Info("exec", "hidden too")
	logger.Error("exec", "visible")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestLogger_DisabledWithEmptyDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	logger.Info("exec", "no-op") // must not panic or create files
	assert.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
