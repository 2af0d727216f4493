// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting of the server.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	DBPath      string `env:"DB_PATH" envDefault:"./data/quando.db"`
	LocalDBPath string `env:"LOCAL_DB_PATH" envDefault:"./data/local.db"`
	StaticPath  string `env:"STATIC_PATH" envDefault:"./web/static"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// CreateRateLimit is the sustained number of group creations per second.
	CreateRateLimit float64 `env:"CREATE_RATE_LIMIT" envDefault:"1"`
	CreateRateBurst int     `env:"CREATE_RATE_BURST" envDefault:"5"`

	// Timezone decides which calendar day is "today".
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Rome"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location loads the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
