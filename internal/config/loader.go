package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the local configs directory.
const FileName = "t2048.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Keys missing from a file keep their default values. The returned path is
// the file that was used, or empty for the embedded default.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	candidates := []string{userConfigPath(), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// parse decodes YAML over the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Dir returns ~/.t2048, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048")
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DBPath returns the history database path, defaulting to ~/.t2048/history.db.
func (c Config) DBPath() string {
	if c.History.DBPath != "" {
		return c.History.DBPath
	}
	dir := Dir()
	if dir == "" {
		return "history.db"
	}
	return filepath.Join(dir, "history.db")
}
