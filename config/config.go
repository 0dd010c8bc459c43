// Package config loads CLI settings from the environment, with optional
// .env file support. Only connection settings live here; credentials come
// from the environment as well.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings the CLI needs to reach an environment.
type Config struct {
	// Address is the base URL of the regional engine.
	Address string
	// AuthToken is the bearer token, empty for unauthenticated engines.
	AuthToken string
	// Cluster is the compute cluster queries run on, empty for the
	// session default.
	Cluster string
	// State overrides the environment state, mainly to point the CLI at
	// an environment that is still starting. Defaults to "enabled".
	State string
	// Timeout bounds a single interactive query.
	Timeout time.Duration
}

const defaultTimeout = 10 * time.Second

// Load reads configuration from the process environment. A .env file in
// the working directory is merged in when present.
func Load() (Config, error) {
	// missing .env is fine; explicit env vars win
	_ = godotenv.Load()

	c := Config{
		Address:   os.Getenv("QRY_ADDRESS"),
		AuthToken: os.Getenv("QRY_AUTH_TOKEN"),
		Cluster:   os.Getenv("QRY_CLUSTER"),
		State:     "enabled",
		Timeout:   defaultTimeout,
	}

	if raw := os.Getenv("QRY_STATE"); raw != "" {
		c.State = raw
	}

	if raw := os.Getenv("QRY_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("QRY_TIMEOUT: %w", err)
		}
		c.Timeout = timeout
	}

	if c.Address == "" {
		return Config{}, fmt.Errorf("QRY_ADDRESS is not set")
	}

	return c, nil
}
