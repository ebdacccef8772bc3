package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	World    WorldConfig    `toml:"world"`
	Physics  PhysicsConfig  `toml:"physics"`
	Render   RenderConfig   `toml:"render"`
	Scenario ScenarioConfig `toml:"scenario"`
	Logging  LoggingConfig  `toml:"logging"`
}

type WorldConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Timestep float64 `toml:"timestep"` // Δt per tick, in simulation time units
}

type PhysicsConfig struct {
	Gravity       bool    `toml:"gravity"`        // false = bodies coast between collisions
	Strength      float64 `toml:"strength"`       // multiplier on the force law (1 = unit law)
	Softening     float64 `toml:"softening"`      // Plummer softening length (0 = none)
	MinSeparation float64 `toml:"min_separation"` // below this, a pair exerts no force
}

type RenderConfig struct {
	PixelRatio   float64 `toml:"pixel_ratio"` // screen pixels per world unit
	WindowWidth  int     `toml:"window_width"`
	WindowHeight int     `toml:"window_height"`
	TPS          int     `toml:"tps"`
	ShowGrid     bool    `toml:"show_grid"`
	Background   string  `toml:"background"` // "#rrggbb"
}

type ScenarioConfig struct {
	Path          string `toml:"path"` // .yaml/.yml or .lua; empty = generate
	GenerateCount int    `toml:"generate_count"`
	Seed          int64  `toml:"seed"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML bytes over the defaults. name is used in error messages.
func Parse(data []byte, name string) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case !(c.World.Width > 0) || !(c.World.Height > 0):
		return fmt.Errorf("%w: world extent %vx%v must be positive", ErrInvalid, c.World.Width, c.World.Height)
	case !(c.World.Timestep > 0):
		return fmt.Errorf("%w: timestep %v must be positive", ErrInvalid, c.World.Timestep)
	case c.Physics.Softening < 0 || c.Physics.MinSeparation < 0:
		return fmt.Errorf("%w: softening and min_separation must not be negative", ErrInvalid)
	case !(c.Render.PixelRatio > 0):
		return fmt.Errorf("%w: pixel_ratio %v must be positive", ErrInvalid, c.Render.PixelRatio)
	case c.Scenario.GenerateCount < 0:
		return fmt.Errorf("%w: generate_count %d must not be negative", ErrInvalid, c.Scenario.GenerateCount)
	}
	return nil
}

// Defaults returns the built-in settings: a 640×480 world stepped at 60 Hz, shown
// in a 1600×900 window at 12 px per unit.
func Defaults() *Config {
	return &Config{
		World: WorldConfig{
			Width:    640,
			Height:   480,
			Timestep: 1.0 / 60.0,
		},
		Physics: PhysicsConfig{
			Gravity:       true,
			Strength:      1.0,
			Softening:     0,
			MinSeparation: 1e-9,
		},
		Render: RenderConfig{
			PixelRatio:   12,
			WindowWidth:  1600,
			WindowHeight: 900,
			TPS:          60,
			ShowGrid:     true,
			Background:   "#4d3333",
		},
		Scenario: ScenarioConfig{
			GenerateCount: 12,
			Seed:          1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
