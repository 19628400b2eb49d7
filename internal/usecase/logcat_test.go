package usecase

import (
	"context"
	"testing"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = "01-01 00:00:01 I/init: boot\n01-01 00:00:02 W/SELinux: avc: denied { read }\n01-01 00:00:03 E/AndroidRuntime: crash\n"

func TestLogcat_Execute_Dump(t *testing.T) {
	exec := testutil.NewMockExecutor()
	exec.StubOutput("adb -s x logcat -b all -d -t 200 -v time", sampleLog)
	uc := NewLogcat(exec, testutil.NewMockStore())

	out, err := uc.Execute(context.Background(), LogcatInput{
		Session: domain.Session{Serial: "x"},
		Op:      domain.OpLogcatDump,
	})

	require.NoError(t, err)
	assert.Equal(t, sampleLog, out.Text)
}

func TestLogcat_Execute_DenialsFilter(t *testing.T) {
	exec := testutil.NewMockExecutor()
	exec.StubOutput("adb -s x logcat -b all -d -v time", sampleLog)
	uc := NewLogcat(exec, testutil.NewMockStore())

	out, err := uc.Execute(context.Background(), LogcatInput{
		Session: domain.Session{Serial: "x"},
		Op:      domain.OpLogcatDenials,
	})

	require.NoError(t, err)
	assert.Equal(t, "01-01 00:00:02 W/SELinux: avc: denied { read }", out.Text)
}

func TestLogcat_Execute_RegexFilter(t *testing.T) {
	exec := testutil.NewMockExecutor()
	exec.StubOutput("adb -s x logcat -b all -d -v time", sampleLog)
	uc := NewLogcat(exec, testutil.NewMockStore())

	out, err := uc.Execute(context.Background(), LogcatInput{
		Session: domain.Session{Serial: "x"},
		Op:      domain.OpLogcatRegex,
		Regex:   "AndroidRuntime",
	})

	require.NoError(t, err)
	assert.Equal(t, "01-01 00:00:03 E/AndroidRuntime: crash", out.Text)
}

func TestLogcat_Execute_BadRegex(t *testing.T) {
	exec := testutil.NewMockExecutor()
	uc := NewLogcat(exec, testutil.NewMockStore())

	_, err := uc.Execute(context.Background(), LogcatInput{
		Session: domain.Session{Serial: "x"},
		Op:      domain.OpLogcatRegex,
		Regex:   "([",
	})

	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, exec.AllCommands(), "bad regex fails before any device round trip")
}

func TestLogcat_Execute_EmptyTag(t *testing.T) {
	exec := testutil.NewMockExecutor()
	uc := NewLogcat(exec, testutil.NewMockStore())

	_, err := uc.Execute(context.Background(), LogcatInput{
		Session: domain.Session{Serial: "x"},
		Op:      domain.OpLogcatTag,
	})

	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, exec.AllCommands())
}

func TestLogcat_Execute_Save(t *testing.T) {
	exec := testutil.NewMockExecutor()
	exec.StubOutput("adb -s x logcat -b all -d -v time", sampleLog)
	store := testutil.NewMockStore()
	uc := NewLogcat(exec, store)

	out, err := uc.Execute(context.Background(), LogcatInput{
		Session: domain.Session{Serial: "x"},
		Op:      domain.OpLogcatSave,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Path)
	assert.Empty(t, out.Text, "saved dumps are not echoed")
	assert.Equal(t, []byte(sampleLog), store.LogDumps[out.Path])
}

func TestLogcat_Execute_Clear(t *testing.T) {
	exec := testutil.NewMockExecutor()
	uc := NewLogcat(exec, testutil.NewMockStore())

	_, err := uc.Execute(context.Background(), LogcatInput{
		Session: domain.Session{Serial: "x"},
		Op:      domain.OpLogcatClear,
	})

	require.NoError(t, err)
	require.Len(t, exec.Commands, 1)
	assert.Equal(t, []string{"adb", "-s", "x", "logcat", "-b", "all", "-c"}, exec.Commands[0].Argv())
}

func TestLogcat_Execute_RejectsStreamedOp(t *testing.T) {
	uc := NewLogcat(testutil.NewMockExecutor(), testutil.NewMockStore())

	_, err := uc.Execute(context.Background(), LogcatInput{
		Session: domain.Session{Serial: "x"},
		Op:      domain.OpLogcatFollow,
	})

	require.ErrorIs(t, err, domain.ErrUnknownOperation)
}

func TestLogcatFollow_Execute(t *testing.T) {
	exec := testutil.NewMockExecutor()
	uc := NewLogcatFollow(exec)

	out, err := uc.Execute(context.Background(), LogcatFollowInput{
		Session: domain.Session{Serial: "x"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, out.ExitCode)
	require.Len(t, exec.Streamed, 1)
	assert.Equal(t, domain.ModeStreamed, exec.Streamed[0].Mode)
	assert.Equal(t, []string{"adb", "-s", "x", "logcat", "-b", "all", "-v", "time"}, exec.Streamed[0].Argv())
}

func TestLogcatFollow_Command_NoSerial(t *testing.T) {
	uc := NewLogcatFollow(testutil.NewMockExecutor())
	_, err := uc.Command(domain.Session{})
	require.ErrorIs(t, err, domain.ErrNoDeviceSelected)
}
