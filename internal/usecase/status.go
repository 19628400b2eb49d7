package usecase

import (
	"context"
	"fmt"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
	"github.com/openclaw/workbench/internal/infra/fastboot"
)

// StatusInput contains the parameters for the status operation.
type StatusInput struct {
	Session domain.Session
}

// StatusOutput lists the devices visible to adb and fastboot.
type StatusOutput struct {
	ADB        []domain.Device
	Fastboot   []domain.Device
	Invocation string
	Warning    string
	DryRun     bool
}

// Status is the use case for listing attached devices in both modes.
type Status struct {
	exec domain.CommandExecutor
}

// NewStatus creates a new Status use case.
func NewStatus(exec domain.CommandExecutor) *Status {
	return &Status{exec: exec}
}

// Execute lists adb devices and fastboot devices.
func (uc *Status) Execute(ctx context.Context, in StatusInput) (*StatusOutput, error) {
	adbCmd := adb.Builder{}.Devices()
	fbCmd := fastboot.Builder{}.Devices()

	if in.Session.DryRun {
		return &StatusOutput{
			DryRun:     true,
			Invocation: adbCmd.String() + "\n" + fbCmd.String(),
		}, nil
	}

	out := &StatusOutput{}

	adbRes, err := uc.exec.Execute(ctx, adbCmd)
	if err != nil {
		return nil, fmt.Errorf("list adb devices: %w", err)
	}
	out.ADB = domain.ParseADBDevices(string(adbRes.Stdout))
	out.Warning = warning(adbRes)

	// fastboot missing or failing must not hide the adb list.
	fbRes, err := uc.exec.Execute(ctx, fbCmd)
	if err != nil {
		if out.Warning == "" {
			out.Warning = err.Error()
		}
		return out, nil
	}
	out.Fastboot = domain.ParseFastbootDevices(string(fbRes.Stdout))
	if out.Warning == "" {
		out.Warning = warning(fbRes)
	}
	return out, nil
}
