// Package adb builds adb command invocations.
//
// adb itself is an opaque external collaborator; this package only knows
// how to turn semantic intent ("install the APK at path P") into an
// argument vector, validating required arguments before anything runs.
package adb

import (
	"fmt"
	"strconv"

	"github.com/openclaw/workbench/internal/domain"
)

// Program is the adb binary name, resolved via PATH.
const Program = "adb"

// Builder constructs adb commands for a device.
type Builder struct {
	Serial string // optional; adds "-s <serial>" when set
}

// command builds a captured adb command with the device base args.
func (b Builder) command(args ...string) domain.ExecCommand {
	base := make([]string, 0, len(args)+2)
	if b.Serial != "" {
		base = append(base, "-s", b.Serial)
	}
	return domain.ExecCommand{
		Program: Program,
		Args:    append(base, args...),
		Mode:    domain.ModeCaptured,
	}
}

// Devices lists attached devices with descriptions.
func (b Builder) Devices() domain.ExecCommand {
	// Intentionally no -s: the list covers all devices.
	return domain.ExecCommand{Program: Program, Args: []string{"devices", "-l"}, Mode: domain.ModeCaptured}
}

// Getprop reads a single system property.
func (b Builder) Getprop(key string) domain.ExecCommand {
	return b.command("shell", "getprop", key)
}

// Shell runs an arbitrary shell command on the device.
func (b Builder) Shell(args ...string) domain.ExecCommand {
	return b.command(append([]string{"shell"}, args...)...)
}

// Dumpsys queries a dumpsys section.
func (b Builder) Dumpsys(section ...string) domain.ExecCommand {
	return b.command(append([]string{"shell", "dumpsys"}, section...)...)
}

// LogcatDump dumps the last n lines of all buffers.
func (b Builder) LogcatDump(lines int) domain.ExecCommand {
	return b.command("logcat", "-b", "all", "-d", "-t", strconv.Itoa(lines), "-v", "time")
}

// LogcatFollow follows all buffers live. The command is streamed.
func (b Builder) LogcatFollow() domain.ExecCommand {
	cmd := b.command("logcat", "-b", "all", "-v", "time")
	cmd.Mode = domain.ModeStreamed
	return cmd
}

// LogcatCrashes dumps AndroidRuntime errors only.
func (b Builder) LogcatCrashes() domain.ExecCommand {
	return b.command("logcat", "-v", "time", "AndroidRuntime:E", "*:S")
}

// LogcatFullDump dumps all buffers without a line limit. Used for host-side
// filtering (SELinux denials, regex) and for saved dumps.
func (b Builder) LogcatFullDump() domain.ExecCommand {
	return b.command("logcat", "-b", "all", "-d", "-v", "time")
}

// LogcatTag dumps entries for a single tag at verbose level.
func (b Builder) LogcatTag(tag string) (domain.ExecCommand, error) {
	if tag == "" {
		return domain.ExecCommand{}, fmt.Errorf("%w: tag must not be empty", domain.ErrInvalidArgument)
	}
	return b.command("logcat", "-b", "all", "-d", "-v", "time", tag+":V", "*:S"), nil
}

// LogcatClear clears all logcat buffers.
func (b Builder) LogcatClear() domain.ExecCommand {
	return b.command("logcat", "-b", "all", "-c")
}

// Screenshot captures the screen as PNG bytes on stdout.
func (b Builder) Screenshot() domain.ExecCommand {
	return b.command("exec-out", "screencap", "-p")
}

// ScreenRecord records the screen to a device-side file.
func (b Builder) ScreenRecord(seconds int, devicePath string) domain.ExecCommand {
	return b.command("shell", "screenrecord", "--time-limit", strconv.Itoa(seconds), devicePath)
}

// Pull copies a file from the device to the host.
func (b Builder) Pull(src, dst string) (domain.ExecCommand, error) {
	if src == "" || dst == "" {
		return domain.ExecCommand{}, fmt.Errorf("%w: pull needs source and destination", domain.ErrInvalidArgument)
	}
	return b.command("pull", src, dst), nil
}

// RemoveFile deletes a file on the device.
func (b Builder) RemoveFile(path string) domain.ExecCommand {
	return b.command("shell", "rm", "-f", path)
}

// Install installs an APK, replacing an existing app.
func (b Builder) Install(apkPath string) (domain.ExecCommand, error) {
	if apkPath == "" {
		return domain.ExecCommand{}, fmt.Errorf("%w: APK path must not be empty", domain.ErrInvalidArgument)
	}
	return b.command("install", "-r", apkPath), nil
}

// ClearAppData clears the data of a package.
func (b Builder) ClearAppData(pkg string) (domain.ExecCommand, error) {
	if pkg == "" {
		return domain.ExecCommand{}, fmt.Errorf("%w: package name must not be empty", domain.ErrInvalidArgument)
	}
	return b.command("shell", "pm", "clear", pkg), nil
}

// OpenURL launches a VIEW intent for the URL on the device.
func (b Builder) OpenURL(url string) (domain.ExecCommand, error) {
	if url == "" {
		return domain.ExecCommand{}, fmt.Errorf("%w: URL must not be empty", domain.ErrInvalidArgument)
	}
	return b.command("shell", "am", "start", "-a", "android.intent.action.VIEW", "-d", url), nil
}

// RebootBootloader reboots the device into the bootloader.
func (b Builder) RebootBootloader() domain.ExecCommand {
	return b.command("reboot", "bootloader")
}
