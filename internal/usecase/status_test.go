package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Execute_BothModes(t *testing.T) {
	exec := testutil.NewMockExecutor()
	exec.StubOutput("adb devices -l",
		"List of devices attached\nemulator-5554 device product:sdk model:sdk_gphone64\nABC123 unauthorized\n")
	exec.StubOutput("fastboot devices", "XYZ789\tfastboot\n")
	uc := NewStatus(exec)

	out, err := uc.Execute(context.Background(), StatusInput{})

	require.NoError(t, err)
	require.Len(t, out.ADB, 2)
	assert.Equal(t, "emulator-5554", out.ADB[0].Serial)
	assert.Equal(t, domain.StateDevice, out.ADB[0].State)
	assert.Equal(t, domain.StateUnauthorized, out.ADB[1].State)
	require.Len(t, out.Fastboot, 1)
	assert.Equal(t, "XYZ789", out.Fastboot[0].Serial)
	assert.Empty(t, out.Warning)
}

// fastbootFailingExecutor fails every fastboot command and delegates the rest.
type fastbootFailingExecutor struct {
	*testutil.MockExecutor
	err error
}

func (e *fastbootFailingExecutor) Execute(ctx context.Context, cmd domain.ExecCommand) (*domain.ExecResult, error) {
	if cmd.Program == "fastboot" {
		return nil, e.err
	}
	return e.MockExecutor.Execute(ctx, cmd)
}

func TestStatus_Execute_FastbootMissingKeepsADBList(t *testing.T) {
	mock := testutil.NewMockExecutor()
	mock.StubOutput("adb devices -l", "List of devices attached\nemulator-5554 device\n")
	exec := &fastbootFailingExecutor{
		MockExecutor: mock,
		err:          errors.New("resolve fastboot: binary not found on PATH"),
	}
	uc := NewStatus(exec)

	out, err := uc.Execute(context.Background(), StatusInput{})

	require.NoError(t, err)
	require.Len(t, out.ADB, 1)
	assert.Equal(t, "emulator-5554", out.ADB[0].Serial)
	assert.Empty(t, out.Fastboot)
	assert.Contains(t, out.Warning, "fastboot")
}

func TestStatus_Execute_DryRun(t *testing.T) {
	exec := testutil.NewMockExecutor()
	uc := NewStatus(exec)

	out, err := uc.Execute(context.Background(), StatusInput{
		Session: domain.Session{DryRun: true},
	})

	require.NoError(t, err)
	assert.True(t, out.DryRun)
	assert.Equal(t, "adb devices -l\nfastboot devices", out.Invocation)
	assert.Empty(t, exec.AllCommands())
}
