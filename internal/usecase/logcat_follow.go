package usecase

import (
	"context"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// LogcatFollowInput contains the parameters for the live follow.
type LogcatFollowInput struct {
	Session domain.Session
}

// LogcatFollowOutput contains the exit code of the follow.
type LogcatFollowOutput struct {
	Invocation string
	ExitCode   int
	DryRun     bool
}

// LogcatFollow is the use case for the streamed live logcat. Output is
// unbounded, so the terminal is handed to the child; a user interrupt
// stops the child and returns control.
type LogcatFollow struct {
	exec domain.CommandExecutor
}

// NewLogcatFollow creates a new LogcatFollow use case.
func NewLogcatFollow(exec domain.CommandExecutor) *LogcatFollow {
	return &LogcatFollow{exec: exec}
}

// Execute follows the log until interrupted.
func (uc *LogcatFollow) Execute(ctx context.Context, in LogcatFollowInput) (*LogcatFollowOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}
	cmd := adb.Builder{Serial: in.Session.Serial}.LogcatFollow()

	if in.Session.DryRun {
		return &LogcatFollowOutput{DryRun: true, Invocation: cmd.String()}, nil
	}

	code, err := uc.exec.ExecuteStreamed(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return &LogcatFollowOutput{ExitCode: code}, nil
}

// Command exposes the follow command for frontends that run the child
// themselves (the TUI hands the terminal over via its program runner).
func (uc *LogcatFollow) Command(session domain.Session) (domain.ExecCommand, error) {
	if err := requireSerial(session); err != nil {
		return domain.ExecCommand{}, err
	}
	return adb.Builder{Serial: session.Serial}.LogcatFollow(), nil
}
