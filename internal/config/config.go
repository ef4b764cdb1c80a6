// Package config loads runtime settings from the environment. Command-line
// flags take precedence and are applied by the CLI on top of these values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/julianstephens/bidaya/internal/constants"
)

type Config struct {
	Home      string `env:"BIDAYA_HOME"        envDefault:"~/.config/bidaya"`
	Backend   string `env:"BIDAYA_BACKEND"     envDefault:"json"`
	Timezone  string `env:"BIDAYA_TIMEZONE"    envDefault:"Local"`
	Debug     bool   `env:"BIDAYA_DEBUG"`
	RemoteDSN string `env:"BIDAYA_REMOTE_DSN"`
	// RemoteFirst commits to the remote store before the local copy
	RemoteFirst bool `env:"BIDAYA_REMOTE_FIRST"`

	PrayerAPI   string        `env:"BIDAYA_PRAYER_API"   envDefault:"https://api.aladhan.com/v1"`
	Latitude    float64       `env:"BIDAYA_LATITUDE"     envDefault:"-6.2088"`
	Longitude   float64       `env:"BIDAYA_LONGITUDE"    envDefault:"106.8456"`
	HTTPTimeout time.Duration `env:"BIDAYA_HTTP_TIMEOUT" envDefault:"10s"`

	// RemindCron is when the daemon sends the daily reminder
	RemindCron string `env:"BIDAYA_REMIND_CRON" envDefault:"0 21 * * *"`
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case constants.BackendJSON, constants.BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, constants.BackendJSON, constants.BackendSQLite)
	}
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("coordinates out of range: %v,%v", c.Latitude, c.Longitude)
	}
	return nil
}

// ExpandHome resolves a leading ~ against the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DocumentPath is where the selected backend keeps the state document
func DocumentPath(home, backend string) string {
	if backend == constants.BackendSQLite {
		return filepath.Join(home, constants.SQLiteFileName)
	}
	return filepath.Join(home, constants.JSONFileName)
}
