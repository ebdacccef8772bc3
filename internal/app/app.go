// Package app holds the startup plumbing shared by the playground and the
// headless runner: config resolution, logger construction and world setup.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pie2d/sim/internal/config"
	"github.com/pie2d/sim/internal/data"
	"github.com/pie2d/sim/internal/scripting"
	"github.com/pie2d/sim/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultConfigPath = "config/sim.toml"
	ConfigEnv         = "PIE_CONFIG"
)

// ConfigPath resolves the config file: an explicit flag wins, then the
// PIE_CONFIG environment variable, then config/sim.toml.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}

// LoadConfig loads path. A missing file at the default location falls back to
// the built-in defaults; a missing explicit path is an error.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if path == DefaultConfigPath && errors.Is(err, fs.ErrNotExist) {
			return config.Defaults(), nil
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a zap logger: "json" gives the production encoder, anything
// else a compact colored console.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// LoadScenario returns the configured scenario file, or a generated one when
// no path is set.
func LoadScenario(cfg *config.Config, log *zap.Logger) (*data.Scenario, error) {
	if cfg.Scenario.Path != "" {
		return scripting.LoadScenario(cfg.Scenario.Path, cfg.World.Width, cfg.World.Height, log)
	}
	return data.Generate(data.GenerateOptions{
		Count:       cfg.Scenario.GenerateCount,
		Seed:        cfg.Scenario.Seed,
		Width:       cfg.World.Width,
		Height:      cfg.World.Height,
		Restitution: 1,
	}), nil
}

// BuildWorld creates the world from cfg and populates it.
func BuildWorld(cfg *config.Config, log *zap.Logger) (*world.World, *data.Scenario, error) {
	w, err := world.FromConfig(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("world: %w", err)
	}
	sc, err := LoadScenario(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario: %w", err)
	}
	if _, err := data.Populate(w, sc, log); err != nil {
		return nil, nil, fmt.Errorf("populate: %w", err)
	}
	return w, sc, nil
}
