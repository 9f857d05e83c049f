// Package config loads CLI configuration from an optional YAML file with
// environment overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable overrides.
const (
	envDataDir     = "LUXE_DATA_DIR"
	envDatabaseURL = "LUXE_DATABASE_URL"
)

// Config is the resolved runtime configuration.
type Config struct {
	// DataDir holds the local key-value store files.
	DataDir string `yaml:"data_dir"`
	// DatabaseDSN enables the Postgres mirror when non-empty.
	DatabaseDSN string `yaml:"database_dsn"`
	// Analyzer selects the beat-detection variant ("mock" by default).
	Analyzer string `yaml:"analyzer"`
	// GenerationDelayMS overrides the mock backend latency; -1 keeps the default.
	GenerationDelayMS int `yaml:"generation_delay_ms"`
}

// Load reads the YAML file at path (missing file is fine), then applies
// .env and process environment overrides, then fills defaults.
func Load(path string) (*Config, error) {
	// Best-effort: a missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{GenerationDelayMS: -1}
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, err
			}
		}
	}

	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(envDatabaseURL); v != "" {
		cfg.DatabaseDSN = v
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, nil
}

// GenerationDelay converts the configured latency to a duration.
func (c *Config) GenerationDelay() time.Duration {
	if c.GenerationDelayMS < 0 {
		return -1
	}
	return time.Duration(c.GenerationDelayMS) * time.Millisecond
}

func defaultDataDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "luxevision")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "luxevision")
}
