// internal/config/config.go
//
// Typed environment configuration for the server process.
// main loads a .env file first (development convenience), then everything
// is parsed from real environment variables with local-friendly defaults.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every environment-driven setting.
// The words package additionally honors WORDS_FILE on its own.
type Config struct {
	Port          string        `env:"PORT" envDefault:"3001"`
	Env           string        `env:"ENV" envDefault:"development"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabasePath  string        `env:"DATABASE_PATH" envDefault:"./data/wordtide.db"`
	ClientOrigin  string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:3000"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
	RetentionDays int           `env:"RETENTION_DAYS" envDefault:"3"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Production reports whether ENV is set to production.
func (c Config) Production() bool {
	return c.Env == "production"
}
