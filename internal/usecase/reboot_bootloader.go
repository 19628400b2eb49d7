package usecase

import (
	"context"
	"fmt"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// RebootBootloaderInput contains the parameters for the adb reboot.
type RebootBootloaderInput struct {
	Session domain.Session
}

// RebootBootloaderOutput contains the reboot result.
type RebootBootloaderOutput struct {
	Invocation string
	Warning    string
	DryRun     bool
}

// RebootBootloader is the use case for `adb reboot bootloader`.
type RebootBootloader struct {
	exec domain.CommandExecutor
}

// NewRebootBootloader creates a new RebootBootloader use case.
func NewRebootBootloader(exec domain.CommandExecutor) *RebootBootloader {
	return &RebootBootloader{exec: exec}
}

// Execute reboots the selected device into the bootloader.
func (uc *RebootBootloader) Execute(ctx context.Context, in RebootBootloaderInput) (*RebootBootloaderOutput, error) {
	if err := requireSerial(in.Session); err != nil {
		return nil, err
	}
	cmd := adb.Builder{Serial: in.Session.Serial}.RebootBootloader()

	if in.Session.DryRun {
		return &RebootBootloaderOutput{DryRun: true, Invocation: cmd.String()}, nil
	}

	res, err := uc.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run adb reboot: %w", err)
	}
	return &RebootBootloaderOutput{Invocation: cmd.String(), Warning: warning(res)}, nil
}
