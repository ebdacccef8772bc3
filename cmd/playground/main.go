// playground opens a window onto a running simulation.
//
// Usage:
//
//	go run ./cmd/playground [-config path] [-scenario file.yaml|file.lua]
//
// Keys: Esc quits, P pauses, N steps one tick while paused, G toggles the
// grid, the mouse wheel zooms.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pie2d/sim/internal/app"
	"github.com/pie2d/sim/internal/render"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "config file (default $PIE_CONFIG or config/sim.toml)")
	scenario := flag.String("scenario", "", "scenario file, overrides [scenario] path")
	flag.Parse()

	cfg, err := app.LoadConfig(app.ConfigPath(*cfgPath))
	if err != nil {
		return err
	}
	if *scenario != "" {
		cfg.Scenario.Path = *scenario
	}

	log, err := app.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	w, sc, err := app.BuildWorld(cfg, log)
	if err != nil {
		return err
	}
	log.Info("playground starting",
		zap.String("scenario", sc.Name),
		zap.Int("bodies", w.Len()),
		zap.Float64("timestep", w.Timestep()),
	)

	g := render.NewGame(w, render.OptionsFromConfig(cfg.Render), log)
	return render.Run(g, "pie2d playground: "+sc.Name)
}
