package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the payments engine.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel string `env:"PAYMENTS_LOG_LEVEL" envDefault:"warn"`
	// RejectionLogLevel is the level rejected events are logged at.
	RejectionLogLevel string `env:"PAYMENTS_REJECTION_LOG_LEVEL" envDefault:"debug"`
	// EnvFile is loaded before parsing when it exists.
	EnvFile string `env:"PAYMENTS_ENV_FILE" envDefault:".env"`
}

// Load reads an optional dotenv file and then parses the environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := godotenv.Load(cfg.EnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load %s: %w", cfg.EnvFile, err)
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
