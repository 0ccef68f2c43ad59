// Package config handles configuration file loading and the per-user
// paths used by tint.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultFormat = "plain"
)

// Config represents the tint configuration.
type Config struct {
	Themes ThemesConfig `toml:"themes"`
	Output OutputConfig `toml:"output"`
}

// ThemesConfig holds theme storage settings.
type ThemesConfig struct {
	Dir string `toml:"dir"` // Themes directory (empty = default under config dir)
}

// OutputConfig holds default output settings.
type OutputConfig struct {
	Format string `toml:"format"` // plain, json, yaml
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Themes: ThemesConfig{
			Dir: "",
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
	}
}

// configHome returns the per-user configuration root.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func configHome() string {
	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		home = filepath.Join(userHome, ".config")
	}
	return home
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(configHome(), "tint", "config.toml")
}

// ThemesDir returns the default themes directory.
func ThemesDir() string {
	return filepath.Join(configHome(), "tint", "themes")
}

// PrefsPath returns the path to the preferences file holding the
// selected theme and attribute overrides.
func PrefsPath() string {
	return filepath.Join(configHome(), "tint", "prefs.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
