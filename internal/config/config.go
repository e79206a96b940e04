// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	AppAddr         string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout  time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	DatabaseURL string `envconfig:"DATABASE_URL" default:"host=localhost port=5432 user=postgres password=postgres dbname=courseflow sslmode=disable"`

	// Static bearer token the mobile client authenticates with
	APIToken string `envconfig:"API_TOKEN" default:"dev-token"`

	// Per-client request budget per minute
	RateLimit int `envconfig:"RATE_LIMIT" default:"120"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present (local development convenience).
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.APIToken == "" {
		return nil, errors.New("api token must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
