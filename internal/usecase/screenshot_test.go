package usecase

import (
	"context"
	"testing"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenshot_Execute_WritesOneFile(t *testing.T) {
	exec := testutil.NewMockExecutor()
	exec.StubOutput("adb -s x exec-out screencap -p", "\x89PNG...")
	store := testutil.NewMockStore()
	uc := NewScreenshot(exec, store)

	out, err := uc.Execute(context.Background(), ScreenshotInput{
		Session: domain.Session{Serial: "x"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Path)
	assert.Empty(t, out.Warning)
	require.Len(t, store.Media, 1, "exactly one new media file")
	assert.NotEmpty(t, store.Media[out.Path], "screenshot file must not be empty")
}

func TestScreenshot_Execute_FailedCapture(t *testing.T) {
	exec := testutil.NewMockExecutor()
	exec.Default = &domain.ExecResult{RunID: "r", ExitCode: 1, Stderr: []byte("no devices")}
	store := testutil.NewMockStore()
	uc := NewScreenshot(exec, store)

	out, err := uc.Execute(context.Background(), ScreenshotInput{
		Session: domain.Session{Serial: "x"},
	})

	require.NoError(t, err)
	assert.Empty(t, out.Path)
	assert.Contains(t, out.Warning, "exited with code 1")
	assert.Empty(t, store.Media, "nothing is written on failure")
}

func TestScreenshot_Execute_EmptyCapture(t *testing.T) {
	exec := testutil.NewMockExecutor() // default: exit 0, no output
	store := testutil.NewMockStore()
	uc := NewScreenshot(exec, store)

	out, err := uc.Execute(context.Background(), ScreenshotInput{
		Session: domain.Session{Serial: "x"},
	})

	require.NoError(t, err)
	assert.Contains(t, out.Warning, "no output")
	assert.Empty(t, store.Media)
}

func TestScreenshot_Execute_NoSerial(t *testing.T) {
	uc := NewScreenshot(testutil.NewMockExecutor(), testutil.NewMockStore())
	_, err := uc.Execute(context.Background(), ScreenshotInput{})
	require.ErrorIs(t, err, domain.ErrNoDeviceSelected)
}
