package config

import (
	"encoding/json"
	"os"
)

// Config holds CLI-wide settings. Everything here has a sensible
// default; the config file and environment only override.
type Config struct {
	// AppDir is the default target directory for plugin installs,
	// relative to the working directory.
	AppDir string `json:"app_dir"`

	// PlainOutput disables styled output.
	PlainOutput bool `json:"plain_output"`
}

// Load reads configuration from configPath, falling back to
// FCUBE_CONFIG_PATH and then fcube.json. A missing file is fine; the
// defaults apply. FCUBE_APP_DIR overrides the app directory last.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		AppDir: "app",
	}

	if configPath == "" {
		configPath = os.Getenv("FCUBE_CONFIG_PATH")
		if configPath == "" {
			configPath = "fcube.json"
		}
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if dir := os.Getenv("FCUBE_APP_DIR"); dir != "" {
		cfg.AppDir = dir
	}
	if cfg.AppDir == "" {
		cfg.AppDir = "app"
	}

	return cfg, nil
}
