// Package config loads equity calculator settings from the environment.
package config

import (
	"fmt"
	"io"
	"os"

	"cosmossdk.io/log"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/behrlich/poker-equity/pkg/equity"
	"github.com/behrlich/poker-equity/pkg/oracle"
)

// Config controls how equity computations are run.
type Config struct {
	// Workers is the number of combinations evaluated concurrently
	Workers int `env:"POKER_EQUITY_WORKERS" envDefault:"1"`
	// Iterations is the global Monte Carlo budget; 0 enumerates every board
	Iterations int `env:"POKER_EQUITY_ITERATIONS" envDefault:"0"`
	// Seed seeds the Hold'em evaluator's sampler
	Seed     uint64 `env:"POKER_EQUITY_SEED" envDefault:"0"`
	LogLevel string `env:"POKER_EQUITY_LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env files, if present, then parses the environment.
// Variables already set in the environment win over .env values.
func Load(dotenvFiles ...string) (Config, error) {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("POKER_EQUITY_WORKERS must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Iterations < 0 {
		return Config{}, fmt.Errorf("POKER_EQUITY_ITERATIONS must not be negative, got %d", cfg.Iterations)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("POKER_EQUITY_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// Logger returns a logger writing to stderr at the configured level
func (c Config) Logger() log.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo returns a logger writing to w at the configured level
func (c Config) LoggerTo(w io.Writer) log.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return log.NewLogger(w, log.LevelOption(level), log.ColorOption(false))
}

// Evaluator returns the Hold'em evaluator seeded from the config
func (c Config) Evaluator() oracle.Evaluator {
	return oracle.NewHoldem(c.Seed)
}

// Options returns the calculator options for the config
func (c Config) Options() []equity.Option {
	return []equity.Option{
		equity.WithWorkers(c.Workers),
		equity.WithIterations(c.Iterations),
		equity.WithLogger(c.Logger()),
	}
}

// Calculator builds a calculator from the config
func (c Config) Calculator() *equity.Calculator {
	return equity.NewCalculator(c.Evaluator(), c.Options()...)
}
