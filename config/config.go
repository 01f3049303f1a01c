// Package config loads runtime settings from NIM_* environment variables.
package config

import (
	"fmt"
	"nim/game"
	"nim/meta"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

type Config struct {
	Board       game.BoardSize   `env:"NIM_BOARD" envDefault:"medium"`
	Opponent    game.Opponent    `env:"NIM_OPPONENT" envDefault:"cpu-normal"`
	TimeControl game.TimeControl `env:"NIM_TIME_CONTROL" envDefault:"classic"`
	LogLevel    string           `env:"NIM_LOG_LEVEL" envDefault:"info"`

	// NATSURL enables event publishing when set
	NATSURL         string        `env:"NIM_NATS_URL"`
	ExperimentGames int           `env:"NIM_EXPERIMENT_GAMES" envDefault:"30"`
	ExperimentDir   string        `env:"NIM_EXPERIMENT_DIR" envDefault:"experiments/results"`
	CPUDelay        time.Duration `env:"NIM_CPU_DELAY"`
	Settle          time.Duration `env:"NIM_SETTLE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and validates the result. Unset pacing values
// fall back to the frame-based defaults.
func Load() (Config, error) {
	cfg := Config{
		CPUDelay: meta.CPU_DELAY,
		Settle:   meta.SETTLE,
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ExperimentGames <= 0 {
		return Config{}, fmt.Errorf("NIM_EXPERIMENT_GAMES must be positive, got %d", cfg.ExperimentGames)
	}
	if cfg.CPUDelay < 0 || cfg.Settle < 0 {
		return Config{}, fmt.Errorf("pacing delays cannot be negative")
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Settings() game.Settings {
	return game.Settings{Board: c.Board, Opponent: c.Opponent, TimeControl: c.TimeControl}
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid NIM_LOG_LEVEL: %w", err)
	}
	return level, nil
}
