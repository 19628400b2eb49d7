package usecase

import (
	"context"
	"fmt"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// ScreenRecordInput contains the parameters for the recording operation.
type ScreenRecordInput struct {
	Session domain.Session
	Seconds int // clamped; 0 means the configured default
}

// ScreenRecordOutput contains the pulled recording path.
type ScreenRecordOutput struct {
	Path       string
	Invocation string
	Warning    string
	Seconds    int
	DryRun     bool
}

// ScreenRecord is the use case for recording the screen and pulling the
// file to the host. The device-side temp file is removed after the pull.
type ScreenRecord struct {
	exec           domain.CommandExecutor
	store          domain.ArtifactStore
	clock          domain.Clock
	defaultSeconds int
}

// NewScreenRecord creates a new ScreenRecord use case. defaultSeconds is the
// configured duration used when the input leaves it unset.
func NewScreenRecord(exec domain.CommandExecutor, store domain.ArtifactStore, clock domain.Clock, defaultSeconds int) *ScreenRecord {
	return &ScreenRecord{exec: exec, store: store, clock: clock, defaultSeconds: defaultSeconds}
}

// Execute records, pulls, and cleans up.
func (uc *ScreenRecord) Execute(ctx context.Context, in ScreenRecordInput) (*ScreenRecordOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}

	seconds := in.Seconds
	if seconds == 0 {
		seconds = uc.defaultSeconds
	}
	seconds = domain.ClampRecordDuration(seconds)
	b := adb.Builder{Serial: in.Session.Serial}
	devicePath := domain.DeviceRecordingPath(uc.clock.Now())
	recordCmd := b.ScreenRecord(seconds, devicePath)

	if in.Session.DryRun {
		return &ScreenRecordOutput{
			DryRun:     true,
			Seconds:    seconds,
			Invocation: recordCmd.String(),
		}, nil
	}

	recRes, err := uc.exec.Execute(ctx, recordCmd)
	if err != nil {
		return nil, fmt.Errorf("run screenrecord: %w", err)
	}
	if !recRes.Ok() {
		return &ScreenRecordOutput{Seconds: seconds, Warning: warning(recRes)}, nil
	}

	hostPath, err := uc.store.MediaPath("screenrecord", in.Session.Serial, "mp4")
	if err != nil {
		return nil, err
	}

	pullCmd, err := b.Pull(devicePath, hostPath)
	if err != nil {
		return nil, err
	}
	pullRes, err := uc.exec.Execute(ctx, pullCmd)
	if err != nil {
		return nil, fmt.Errorf("pull recording: %w", err)
	}
	if !pullRes.Ok() {
		return &ScreenRecordOutput{Seconds: seconds, Warning: warning(pullRes)}, nil
	}

	// Best effort; the recording is already on the host.
	_, _ = uc.exec.Execute(ctx, b.RemoveFile(devicePath))

	return &ScreenRecordOutput{Path: hostPath, Seconds: seconds}, nil
}
