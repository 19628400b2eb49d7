package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/fastboot"
)

// FastbootRebootInput contains the parameters for a fastboot reboot.
type FastbootRebootInput struct {
	Session domain.Session
	Target  string // fastboot.RebootSystem, RebootBootloader or RebootRecovery
}

// FastbootRebootOutput contains the reboot result.
type FastbootRebootOutput struct {
	Output     string
	Invocation string
	Warning    string
	DryRun     bool
}

// FastbootReboot is the use case for the fastboot reboot variants.
type FastbootReboot struct {
	exec domain.CommandExecutor
}

// NewFastbootReboot creates a new FastbootReboot use case.
func NewFastbootReboot(exec domain.CommandExecutor) *FastbootReboot {
	return &FastbootReboot{exec: exec}
}

// Execute reboots the device into the given target.
func (uc *FastbootReboot) Execute(ctx context.Context, in FastbootRebootInput) (*FastbootRebootOutput, error) {
	cmd, err := fastboot.Builder{Serial: in.Session.Serial}.Reboot(in.Target)
	if err != nil {
		return nil, err
	}

	if in.Session.DryRun {
		return &FastbootRebootOutput{DryRun: true, Invocation: cmd.String()}, nil
	}

	res, err := uc.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run fastboot reboot: %w", err)
	}
	return &FastbootRebootOutput{
		Output:  strings.TrimSpace(res.CombinedOutput()),
		Warning: warning(res),
	}, nil
}
