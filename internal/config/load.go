package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/objmesh/pkg/encoding"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the YAML decoder cannot.
func (c *Config) Validate() error {
	if _, err := encoding.Lookup(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Textures.MaxSize < 0 {
		return fmt.Errorf("textures.max_size must not be negative, got %d", c.Textures.MaxSize)
	}
	for name, m := range c.Materials {
		for _, ch := range m.Color {
			if ch < 0 || ch > 1 {
				return fmt.Errorf("materials.%s.color components must be in [0,1], got %v", name, m.Color)
			}
		}
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./objtool.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "objtool")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "objtool")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "objtool")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "objtool")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// Materials listed in the file are added to (or replace) the default palette.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
