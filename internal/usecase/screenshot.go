package usecase

import (
	"context"
	"fmt"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// ScreenshotInput contains the parameters for the screenshot operation.
type ScreenshotInput struct {
	Session domain.Session
}

// ScreenshotOutput contains the written screenshot path.
type ScreenshotOutput struct {
	Path       string
	Invocation string
	Warning    string
	DryRun     bool
}

// Screenshot is the use case for capturing the screen to the host.
type Screenshot struct {
	exec  domain.CommandExecutor
	store domain.ArtifactStore
}

// NewScreenshot creates a new Screenshot use case.
func NewScreenshot(exec domain.CommandExecutor, store domain.ArtifactStore) *Screenshot {
	return &Screenshot{exec: exec, store: store}
}

// Execute captures a PNG via exec-out and writes it to the media dir.
func (uc *Screenshot) Execute(ctx context.Context, in ScreenshotInput) (*ScreenshotOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}
	cmd := adb.Builder{Serial: in.Session.Serial}.Screenshot()

	if in.Session.DryRun {
		return &ScreenshotOutput{DryRun: true, Invocation: cmd.String()}, nil
	}

	res, err := uc.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run screencap: %w", err)
	}
	if !res.Ok() {
		// Nothing to write; the failure is a warning, not a tool error.
		return &ScreenshotOutput{Warning: warning(res)}, nil
	}
	if len(res.Stdout) == 0 {
		return &ScreenshotOutput{Warning: "screencap produced no output"}, nil
	}

	path, err := uc.store.WriteMedia("screenshot", in.Session.Serial, "png", res.Stdout)
	if err != nil {
		return nil, err
	}
	return &ScreenshotOutput{Path: path}, nil
}
