package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Load builds the effective configuration. Values come from Default, then
// the first config file found, then command-line flags.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = firstExisting(searchPaths())
	}
	if path != "" {
		if err := mergeFile(cfg, path); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// searchPaths lists config file locations, working directory first.
func searchPaths() []string {
	return []string{fileName, DefaultPath()}
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// DefaultPath is where Save writes and the last place Load looks.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), fileName)
}

// ConfigDir returns the per-user directory for settings and logs.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "VoxelSpace")
		}
		return filepath.Join(home, "VoxelSpace")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "VoxelSpace")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "voxelspace")
	}
	return filepath.Join(home, ".config", "voxelspace")
}

// mergeFile decodes YAML over cfg. Keys missing from the file keep their
// current values.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
