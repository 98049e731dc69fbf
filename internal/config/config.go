// Package config loads the TOML configuration and resolves the reporting
// timezone once for the process.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file
type FileConfig struct {
	DBPath   string `toml:"db_path"`
	Timezone string `toml:"timezone"`
}

// Config is the resolved runtime configuration
type Config struct {
	DBPath   string
	Location *time.Location
}

// Load reads the config file at path (missing file is not an error),
// applies the TIMEKEEP_TZ environment override, and fills in defaults.
// The timezone is resolved to a *time.Location exactly once here; all
// local-time bucketing downstream uses this location.
func Load(path string) (Config, error) {
	var file FileConfig
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &file); err != nil {
				return Config{}, fmt.Errorf("failed to decode config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	cfg := Config{DBPath: file.DBPath}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}

	tz := os.Getenv("TIMEKEEP_TZ")
	if tz == "" {
		tz = file.Timezone
	}
	if tz == "" {
		cfg.Location = time.Local
		return cfg, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	cfg.Location = loc
	return cfg, nil
}
