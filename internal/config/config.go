// Package config loads the nanocrond reference driver's runtime settings.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the nanocrond driver's configuration. Environment variables
// are parsed with the NANOCROND_ prefix, e.g. NANOCROND_TICK_INTERVAL.
type Config struct {
	TickInterval time.Duration `envconfig:"TICK_INTERVAL" default:"1s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string        `envconfig:"LOG_FORMAT" default:"json"`
}

// New parses Config from the environment, applying defaults for anything
// unset.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("NANOCROND", &cfg); err != nil {
		return nil, fmt.Errorf("load nanocrond config: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("NANOCROND_TICK_INTERVAL must be positive, got %s", cfg.TickInterval)
	}
	return &cfg, nil
}
