package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

type Config struct {
	Simulations int    `env:"ODDCALC_SIMULATIONS" envDefault:"100000"`
	Goroutines  int    `env:"ODDCALC_GOROUTINES" envDefault:"8"`
	LogLevel    string `env:"ODDCALC_LOG_LEVEL" envDefault:"info"`
	Addr        string `env:"ODDCALC_ADDR" envDefault:":8080"`
	OutputDir   string `env:"ODDCALC_OUTPUT_DIR" envDefault:"experiments"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level parses LogLevel, falling back to info for unknown names.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}
