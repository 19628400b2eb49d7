package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempAPK(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.apk")
	require.NoError(t, os.WriteFile(path, []byte("PK"), 0o644))
	return path
}

func TestInstallAPK_Execute_EmptyPath(t *testing.T) {
	exec := testutil.NewMockExecutor()
	uc := NewInstallAPK(exec)

	_, err := uc.Execute(context.Background(), InstallAPKInput{
		Session: domain.Session{Serial: "x"},
		Path:    "",
	})

	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, exec.AllCommands(), "no subprocess may run for an empty path")
}

func TestInstallAPK_Execute_MissingFile(t *testing.T) {
	exec := testutil.NewMockExecutor()
	uc := NewInstallAPK(exec)

	_, err := uc.Execute(context.Background(), InstallAPKInput{
		Session: domain.Session{Serial: "x"},
		Path:    filepath.Join(t.TempDir(), "nope.apk"),
	})

	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, exec.AllCommands())
}

func TestInstallAPK_Execute_NoSerial(t *testing.T) {
	exec := testutil.NewMockExecutor()
	uc := NewInstallAPK(exec)

	_, err := uc.Execute(context.Background(), InstallAPKInput{Path: "/tmp/app.apk"})
	require.ErrorIs(t, err, domain.ErrNoDeviceSelected)
}

func TestInstallAPK_Execute_Success(t *testing.T) {
	apk := writeTempAPK(t)
	exec := testutil.NewMockExecutor()
	uc := NewInstallAPK(exec)

	out, err := uc.Execute(context.Background(), InstallAPKInput{
		Session: domain.Session{Serial: "emulator-5554"},
		Path:    apk,
	})

	require.NoError(t, err)
	assert.Empty(t, out.Warning)
	require.Len(t, exec.Commands, 1)
	assert.Equal(t, []string{"adb", "-s", "emulator-5554", "install", "-r", apk}, exec.Commands[0].Argv())
}

func TestInstallAPK_Execute_FailureIsWarning(t *testing.T) {
	apk := writeTempAPK(t)
	exec := testutil.NewMockExecutor()
	exec.Default = &domain.ExecResult{
		RunID:    "test-run",
		ExitCode: 1,
		Stderr:   []byte("INSTALL_FAILED_VERSION_DOWNGRADE"),
	}
	uc := NewInstallAPK(exec)

	out, err := uc.Execute(context.Background(), InstallAPKInput{
		Session: domain.Session{Serial: "x"},
		Path:    apk,
	})

	require.NoError(t, err, "a failing install is a warning, not a fatal error")
	assert.Contains(t, out.Warning, "exited with code 1")
	assert.Contains(t, out.Warning, "INSTALL_FAILED_VERSION_DOWNGRADE")
}

func TestInstallAPK_Execute_DryRun(t *testing.T) {
	apk := writeTempAPK(t)
	exec := testutil.NewMockExecutor()
	uc := NewInstallAPK(exec)

	out, err := uc.Execute(context.Background(), InstallAPKInput{
		Session: domain.Session{Serial: "x", DryRun: true},
		Path:    apk,
	})

	require.NoError(t, err)
	assert.True(t, out.DryRun)
	assert.Contains(t, out.Invocation, "adb -s x install -r")
	assert.Empty(t, exec.AllCommands(), "dry run must not execute anything")
}
