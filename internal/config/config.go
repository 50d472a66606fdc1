// Package config provides environment-driven configuration for the steptrace
// service.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all service configuration values. Every field is read from the
// environment at startup; defaults suit local development.
type Config struct {
	Host    string `env:"HOST" envDefault:"0.0.0.0"`
	Port    int    `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"false"`

	// CORSOrigins lists allowed browser origins; "*" allows all, matching the
	// open teaching-service default.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionLimit    int           `env:"SESSION_LIMIT" envDefault:"1024"`
	RunLimit        int           `env:"RUN_LIMIT" envDefault:"16"`
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL" envDefault:"1m"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}

	if c.SessionLimit < 1 {
		return fmt.Errorf("SESSION_LIMIT must be at least 1, got %d", c.SessionLimit)
	}

	if c.RunLimit < 1 {
		return fmt.Errorf("RUN_LIMIT must be at least 1, got %d", c.RunLimit)
	}

	if c.JanitorInterval <= 0 {
		return fmt.Errorf("JANITOR_INTERVAL must be positive, got %s", c.JanitorInterval)
	}

	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin or \"*\"")
	}

	return nil
}
