package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenRecord_Execute_RecordPullRemove(t *testing.T) {
	exec := testutil.NewMockExecutor()
	store := testutil.NewMockStore()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)}
	uc := NewScreenRecord(exec, store, clock, domain.RecordDurationDefault)

	out, err := uc.Execute(context.Background(), ScreenRecordInput{
		Session: domain.Session{Serial: "emulator-5554"},
		Seconds: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, 10, out.Seconds)
	assert.Equal(t, "/mock/screenrecord-1.mp4", out.Path)
	assert.Empty(t, out.Warning)

	devicePath := "/sdcard/workbench-record-20260828-143005.mp4"
	require.Len(t, exec.Commands, 3)
	assert.Equal(t, []string{
		"adb", "-s", "emulator-5554", "shell", "screenrecord", "--time-limit", "10", devicePath,
	}, exec.Commands[0].Argv())
	assert.Equal(t, []string{
		"adb", "-s", "emulator-5554", "pull", devicePath, "/mock/screenrecord-1.mp4",
	}, exec.Commands[1].Argv())
	assert.Equal(t, []string{
		"adb", "-s", "emulator-5554", "shell", "rm", "-f", devicePath,
	}, exec.Commands[2].Argv())
}

func TestScreenRecord_Execute_ClampsDuration(t *testing.T) {
	exec := testutil.NewMockExecutor()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)}
	uc := NewScreenRecord(exec, testutil.NewMockStore(), clock, domain.RecordDurationDefault)

	out, err := uc.Execute(context.Background(), ScreenRecordInput{
		Session: domain.Session{Serial: "x", DryRun: true},
		Seconds: 900,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RecordDurationMax, out.Seconds)
	assert.Contains(t, out.Invocation, "--time-limit 180")
}

func TestScreenRecord_Execute_ZeroMeansDefault(t *testing.T) {
	exec := testutil.NewMockExecutor()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)}
	uc := NewScreenRecord(exec, testutil.NewMockStore(), clock, domain.RecordDurationDefault)

	out, err := uc.Execute(context.Background(), ScreenRecordInput{
		Session: domain.Session{Serial: "x", DryRun: true},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RecordDurationDefault, out.Seconds)
}

func TestScreenRecord_Execute_ZeroUsesConfiguredDefault(t *testing.T) {
	exec := testutil.NewMockExecutor()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)}
	uc := NewScreenRecord(exec, testutil.NewMockStore(), clock, 60)

	out, err := uc.Execute(context.Background(), ScreenRecordInput{
		Session: domain.Session{Serial: "x", DryRun: true},
	})

	require.NoError(t, err)
	assert.Equal(t, 60, out.Seconds)
	assert.Contains(t, out.Invocation, "--time-limit 60")
}

func TestScreenRecord_Execute_RecordFailureStopsEarly(t *testing.T) {
	exec := testutil.NewMockExecutor()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)}
	devicePath := "/sdcard/workbench-record-20260828-143005.mp4"
	exec.Stub("adb -s x shell screenrecord --time-limit 15 "+devicePath, &domain.ExecResult{
		ExitCode: 1,
		Stderr:   []byte("screenrecord: unable to open display"),
	})
	store := testutil.NewMockStore()
	uc := NewScreenRecord(exec, store, clock, domain.RecordDurationDefault)

	out, err := uc.Execute(context.Background(), ScreenRecordInput{
		Session: domain.Session{Serial: "x"},
	})

	require.NoError(t, err)
	assert.Empty(t, out.Path)
	assert.Contains(t, out.Warning, "exited with code 1")
	assert.Len(t, exec.Commands, 1, "no pull after a failed recording")
	assert.Empty(t, store.MediaPaths)
}

func TestScreenRecord_Execute_NoSerial(t *testing.T) {
	uc := NewScreenRecord(testutil.NewMockExecutor(), testutil.NewMockStore(), &testutil.MockClock{}, domain.RecordDurationDefault)

	_, err := uc.Execute(context.Background(), ScreenRecordInput{})

	require.ErrorIs(t, err, domain.ErrNoDeviceSelected)
}
