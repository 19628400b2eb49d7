package domain

import "time"

// DeviceReport is the quick report written for a device, serialized as YAML.
type DeviceReport struct {
	Serial            string    `yaml:"serial"`
	When              time.Time `yaml:"when"`
	Model             string    `yaml:"model"`
	Android           string    `yaml:"android"`
	Fingerprint       string    `yaml:"fingerprint"`
	VerifiedBootState string    `yaml:"verifiedbootstate"`
	FlashLocked       string    `yaml:"flash_locked"`
	VBMetaDeviceState string    `yaml:"vbmeta_device_state"`
	ShellID           string    `yaml:"shell_id"`
}

// DeviceSummary is the ad-hoc summary shown by the summary operation.
// Unlike DeviceReport it is displayed, not persisted.
type DeviceSummary struct {
	Serial        string
	Model         string
	Android       string
	SecurityPatch string
	ABI           string
	Fingerprint   string
	Uptime        string
	Battery       string
}
