// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/openclaw/workbench/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	globalConfDir string // e.g. ~/.config/workbench
}

// NewLoader creates a new Loader using the default global config directory.
func NewLoader() *Loader {
	return &Loader{globalConfDir: defaultGlobalConfigDir()}
}

// NewLoaderWithDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{globalConfDir: dir}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the configuration merged over defaults. A missing config
// file is not an error; defaults apply.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.globalConfDir == "" {
		return base, nil
	}

	path := filepath.Join(l.globalConfDir, domain.ConfigFileName)
	data, err := os.ReadFile(path) // #nosec G304 - path derives from the config home
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file domain.Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return mergeConfigs(base, &file), nil
}

// mergeConfigs overlays set fields of over onto base.
func mergeConfigs(base, over *domain.Config) *domain.Config {
	merged := *base

	if over.Serial != "" {
		merged.Serial = over.Serial
	}
	if over.DryRun {
		merged.DryRun = true
	}
	if over.Dirs.Reports != "" {
		merged.Dirs.Reports = over.Dirs.Reports
	}
	if over.Dirs.Logs != "" {
		merged.Dirs.Logs = over.Dirs.Logs
	}
	if over.Dirs.Media != "" {
		merged.Dirs.Media = over.Dirs.Media
	}
	if over.Log.Level != "" {
		merged.Log.Level = over.Log.Level
	}
	if over.Record.DurationSeconds != 0 {
		merged.Record.DurationSeconds = domain.ClampRecordDuration(over.Record.DurationSeconds)
	}

	return &merged
}
