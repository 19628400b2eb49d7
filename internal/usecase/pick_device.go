package usecase

import (
	"context"
	"fmt"

	"github.com/openclaw/workbench/internal/domain"
	"github.com/openclaw/workbench/internal/infra/adb"
)

// PickDeviceOutput contains the usable adb serials.
type PickDeviceOutput struct {
	Serials []string
}

// PickDevice is the use case for discovering selectable devices.
type PickDevice struct {
	exec domain.CommandExecutor
}

// NewPickDevice creates a new PickDevice use case.
func NewPickDevice(exec domain.CommandExecutor) *PickDevice {
	return &PickDevice{exec: exec}
}

// Execute returns the serials of devices in the "device" state, in the
// order adb reports them.
func (uc *PickDevice) Execute(ctx context.Context) (*PickDeviceOutput, error) {
	res, err := uc.exec.Execute(ctx, adb.Builder{}.Devices())
	if err != nil {
		return nil, fmt.Errorf("list adb devices: %w", err)
	}
	devices := domain.ParseADBDevices(string(res.Stdout))
	return &PickDeviceOutput{Serials: domain.UsableSerials(devices)}, nil
}
