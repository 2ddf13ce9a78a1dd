package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds service startup parameters loaded from environment
// variables (prefix APP_).
//
// Variables:
//   APP_PORT (string)                  - HTTP port (default 8080)
//   APP_READINESS_WARMUP_SECONDS (int) - /readyz warming window, seconds (default 1)
//   APP_SHUTDOWN_TIMEOUT_SECONDS (int) - graceful shutdown timeout, seconds (default 10)
type Config struct {
	Port                   string `envconfig:"PORT" default:"8080"`
	ReadinessWarmupSeconds int    `envconfig:"READINESS_WARMUP_SECONDS" default:"1"`
	ShutdownTimeoutSeconds int    `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"10"`
}

// Load reads the environment with the APP_ prefix. A .env file in the
// working directory is picked up first for local runs; variables already
// set in the environment are not overridden.
func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("APP", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) ReadinessWarmup() time.Duration {
	return time.Duration(c.ReadinessWarmupSeconds) * time.Second
}
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
