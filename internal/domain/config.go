package domain

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the workbench config file.
const ConfigFileName = "config.toml"

// Config represents the application configuration.
type Config struct {
	Serial string       `toml:"serial,omitempty"`  // default device serial
	DryRun bool         `toml:"dry_run,omitempty"` // start in dry-run mode
	Dirs   DirsConfig   `toml:"dirs"`
	Log    LogConfig    `toml:"log"`
	Record RecordConfig `toml:"record"`
}

// DirsConfig holds the artifact output directories from [dirs].
type DirsConfig struct {
	Reports string `toml:"reports,omitempty"` // device reports
	Logs    string `toml:"logs,omitempty"`    // saved logcat dumps and the workbench log
	Media   string `toml:"media,omitempty"`   // screenshots and recordings
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// RecordConfig holds screen recording settings from [record].
type RecordConfig struct {
	DurationSeconds int `toml:"duration_seconds,omitempty"` // default recording length
}

// Screen recording duration bounds (screenrecord itself caps at 180s).
const (
	RecordDurationDefault = 15
	RecordDurationMax     = 180
	RecordDurationMin     = 1
)

// ClampRecordDuration clamps a requested duration to the allowed range.
// Non-positive values fall back to the default.
func ClampRecordDuration(seconds int) int {
	if seconds <= 0 {
		return RecordDurationDefault
	}
	if seconds < RecordDurationMin {
		return RecordDurationMin
	}
	if seconds > RecordDurationMax {
		return RecordDurationMax
	}
	return seconds
}

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	base := defaultBaseDir()
	return &Config{
		Dirs: DirsConfig{
			Reports: filepath.Join(base, "reports"),
			Logs:    filepath.Join(base, "logs"),
			Media:   filepath.Join(base, "media"),
		},
		Log:    LogConfig{Level: "info"},
		Record: RecordConfig{DurationSeconds: RecordDurationDefault},
	}
}

// defaultBaseDir returns the base artifact directory (~/workbench).
func defaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "workbench"
	}
	return filepath.Join(home, "workbench")
}

// GlobalConfigDir returns the global config directory given a config home
// (typically $XDG_CONFIG_HOME or ~/.config).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "workbench")
}
