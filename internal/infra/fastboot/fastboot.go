// Package fastboot builds fastboot command invocations.
//
// The builder refuses to construct any command whose subcommand is on the
// destructive blocklist (flash, erase, format, unlock, oem).
package fastboot

import (
	"fmt"

	"github.com/openclaw/workbench/internal/domain"
)

// Program is the fastboot binary name, resolved via PATH.
const Program = "fastboot"

// Builder constructs fastboot commands for a device.
type Builder struct {
	Serial string // optional; adds "-s <serial>" when set
}

// Command builds a captured fastboot command, enforcing the destructive
// subcommand blocklist. The first argument is the fastboot subcommand.
func (b Builder) Command(args ...string) (domain.ExecCommand, error) {
	if len(args) == 0 {
		return domain.ExecCommand{}, domain.ErrEmptyCommand
	}
	if domain.IsBlockedFastbootSubcommand(args[0]) {
		return domain.ExecCommand{}, fmt.Errorf("%w: %s", domain.ErrBlockedSubcommand, args[0])
	}
	base := make([]string, 0, len(args)+2)
	if b.Serial != "" {
		base = append(base, "-s", b.Serial)
	}
	return domain.ExecCommand{
		Program: Program,
		Args:    append(base, args...),
		Mode:    domain.ModeCaptured,
	}, nil
}

// Devices lists devices in fastboot mode.
func (b Builder) Devices() domain.ExecCommand {
	// Blocklist cannot trip on "devices"; ignore the error.
	cmd, _ := Builder{}.Command("devices")
	return cmd
}

// GetvarAll queries all bootloader variables.
func (b Builder) GetvarAll() domain.ExecCommand {
	cmd, _ := b.Command("getvar", "all")
	return cmd
}

// Reboot targets understood by the workbench.
const (
	RebootSystem     = ""
	RebootBootloader = "bootloader"
	RebootRecovery   = "recovery"
)

// Reboot reboots the device into the given target. An empty target reboots
// into the system.
func (b Builder) Reboot(target string) (domain.ExecCommand, error) {
	switch target {
	case RebootSystem:
		return b.Command("reboot")
	case RebootBootloader, RebootRecovery:
		return b.Command("reboot", target)
	default:
		return domain.ExecCommand{}, fmt.Errorf("%w: unknown reboot target %q", domain.ErrInvalidArgument, target)
	}
}
