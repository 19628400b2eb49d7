package domain

import "strings"

// DeviceState is the connection state reported by adb.
type DeviceState string

// Device states as printed by `adb devices`.
const (
	StateDevice       DeviceState = "device"
	StateOffline      DeviceState = "offline"
	StateUnauthorized DeviceState = "unauthorized"
	StateRecovery     DeviceState = "recovery"
	StateFastboot     DeviceState = "fastboot"
)

// Device is one row of `adb devices -l` or `fastboot devices` output.
type Device struct {
	Serial      string
	State       DeviceState
	Description string // trailing fields (product/model/transport), if any
}

// Usable reports whether the device is in a state that accepts commands.
func (d Device) Usable() bool {
	return d.State == StateDevice
}

// ParseADBDevices parses the output of `adb devices -l`.
// Empty lines, the daemon startup preamble ("* daemon not running ...") and
// the "List of devices attached" header are skipped wherever they appear.
func ParseADBDevices(output string) []Device {
	var devices []Device
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "List of devices") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		d := Device{Serial: fields[0], State: DeviceState(fields[1])}
		if len(fields) > 2 {
			d.Description = strings.Join(fields[2:], " ")
		}
		devices = append(devices, d)
	}
	return devices
}

// ParseFastbootDevices parses the output of `fastboot devices`.
// There is no header line; each row is "<serial>\tfastboot".
func ParseFastbootDevices(output string) []Device {
	var devices []Device
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		d := Device{Serial: fields[0], State: StateFastboot}
		if len(fields) > 1 {
			d.State = DeviceState(fields[1])
		}
		devices = append(devices, d)
	}
	return devices
}

// UsableSerials returns the serials of devices in the "device" state,
// preserving order.
func UsableSerials(devices []Device) []string {
	var serials []string
	for _, d := range devices {
		if d.Usable() {
			serials = append(serials, d.Serial)
		}
	}
	return serials
}
