// Package config provides YAML-based configuration loading for blockfall.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for a blockfall session.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
}

// GridConfig defines the playfield size.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the platform clock.
type TimingConfig struct {
	TickMS             int `yaml:"tick_ms"`
	SoftDropThrottleMS int `yaml:"soft_drop_throttle_ms"`
}

// RulesConfig defines gameplay switches.
type RulesConfig struct {
	DebrisBuffer int  `yaml:"debris_buffer"`
	RotateSquare bool `yaml:"rotate_square"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  engine.DefaultWidth,
			Height: engine.DefaultHeight,
		},
		Timing: TimingConfig{
			TickMS:             500,
			SoftDropThrottleMS: 400,
		},
		Rules: RulesConfig{
			DebrisBuffer: engine.DefaultDebrisBuffer,
		},
	}
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width < engine.MinWidth:
		return fmt.Errorf("%w: grid.width %d is below %d", ErrInvalid, c.Grid.Width, engine.MinWidth)
	case c.Grid.Height < engine.MinHeight:
		return fmt.Errorf("%w: grid.height %d is below %d", ErrInvalid, c.Grid.Height, engine.MinHeight)
	case c.Rules.DebrisBuffer < 0 || c.Rules.DebrisBuffer >= c.Grid.Height:
		return fmt.Errorf("%w: rules.debris_buffer %d must be in [0, %d)", ErrInvalid, c.Rules.DebrisBuffer, c.Grid.Height)
	case c.Timing.TickMS <= 0:
		return fmt.Errorf("%w: timing.tick_ms must be positive", ErrInvalid)
	case c.Timing.SoftDropThrottleMS < 0:
		return fmt.Errorf("%w: timing.soft_drop_throttle_ms must not be negative", ErrInvalid)
	}
	return nil
}

// EngineRules converts the configuration into engine rules.
func (c Config) EngineRules() engine.Rules {
	return engine.Rules{
		Width:        c.Grid.Width,
		Height:       c.Grid.Height,
		DebrisBuffer: c.Rules.DebrisBuffer,
		RotateSquare: c.Rules.RotateSquare,
	}
}

// TickInterval returns the gravity interval.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// SoftDropThrottle returns the minimum gap between two soft drops.
func (c Config) SoftDropThrottle() time.Duration {
	return time.Duration(c.Timing.SoftDropThrottleMS) * time.Millisecond
}
