// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	StateDBPath string `env:"GEOPORT_STATE_DB_PATH" envDefault:"./data/geoportfolio.db"`
	ServerHost  string `env:"GEOPORT_SERVER_HOST" envDefault:"localhost"`
	ServerPort  int    `env:"GEOPORT_SERVER_PORT" envDefault:"8080"`
	Env         string `env:"GEOPORT_ENV" envDefault:"development"`
	LogLevel    string `env:"GEOPORT_LOG_LEVEL" envDefault:"info"`
	SeedDemo    bool   `env:"GEOPORT_SEED_DEMO" envDefault:"true"`

	// GeoIP configuration
	GeoIPDBPath string `env:"GEOPORT_GEOIP_DB_PATH"` // Path to GeoLite2-Country.mmdb file
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// GeoIPEnabled returns true if a GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
