package config

import (
	"errors"
	"fmt"

	cerrors "github.com/tessro/chorus/internal/errors"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", cerrors.ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks PlayerConfig for errors.
func (c *PlayerConfig) Validate() error {
	if c.TickInterval < 0 {
		return errors.New("tick_interval must be non-negative")
	}
	if c.TrackInterval < 0 {
		return errors.New("track_interval must be non-negative")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	switch c.Color {
	case "", "auto", "always", "never":
		// valid
	default:
		return fmt.Errorf("invalid color mode: %s (must be auto, always, or never)", c.Color)
	}
	return nil
}
