package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns the location of the config file, ~/.config/dockfold/config.yaml.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dockfold", "config.yaml")
}

// Load loads configuration from the default path.
func Load() Config {
	return LoadFrom(Path())
}

// LoadFrom loads configuration from path. A missing or unreadable file leaves the
// defaults in place; keys absent from the file keep their default values.
func LoadFrom(path string) Config {
	cfg := DefaultConfig()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	parsed := cfg
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg
	}
	return parsed
}
