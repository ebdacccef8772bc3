// simrun advances a simulation without a window and reports statistics.
//
// Usage:
//
//	go run ./cmd/simrun [-config path] [-scenario file] [-ticks n] [-every n]
//
// Ctrl-C stops the run early and still prints the summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pie2d/sim/internal/app"
	"github.com/pie2d/sim/internal/core/event"
	"github.com/pie2d/sim/internal/world"
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
	ticks := flag.Int("ticks", 600, "number of ticks to run")
	every := flag.Int("every", 60, "log statistics every n ticks (0 = only at the end)")
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

	con := app.NewConsole(os.Stdout)
	con.Banner("pie2d simrun", "headless particle simulation")

	con.Section("World")
	w, sc, err := app.BuildWorld(cfg, log)
	if err != nil {
		return err
	}
	con.Stat("Scenario", sc.Name)
	con.Stat("Bodies", w.Len())
	con.Stat("Extent", fmt.Sprintf("%gx%g", w.Width(), w.Height()))
	con.Stat("Timestep", w.Timestep())
	con.OK("world ready")
	fmt.Println()

	var collisions, wallBounces int
	event.Subscribe(w.Events(), func(event.Collision) { collisions++ })
	event.Subscribe(w.Events(), func(event.WallBounce) { wallBounces++ })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	con.Ready(fmt.Sprintf("running %d ticks", *ticks))
	start := time.Now()
	initial := w.Stats()
	ran := runTicks(ctx, w, *ticks, *every, log)
	elapsed := time.Since(start)

	final := w.Stats()
	fmt.Println()
	con.Section("Summary")
	con.Stat("Ticks", final.Ticks)
	con.Stat("Simulated time", float64(ran)*w.Timestep())
	con.Stat("Wall time (ms)", elapsed.Milliseconds())
	con.Stat("Collisions", collisions)
	con.Stat("Wall bounces", wallBounces)
	con.Stat("Kinetic energy (start)", initial.KineticEnergy)
	con.Stat("Kinetic energy (end)", final.KineticEnergy)
	con.Stat("Momentum x", final.Momentum.X)
	con.Stat("Momentum y", final.Momentum.Y)
	return nil
}

// runTicks advances w up to n ticks, dispatching events after each, and
// returns how many ran before ctx was cancelled.
func runTicks(ctx context.Context, w *world.World, n, every int, log *zap.Logger) int {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			log.Info("interrupted", zap.Int("ticks", i))
			return i
		default:
		}
		w.Tick()
		w.DispatchEvents()

		if every > 0 && (i+1)%every == 0 {
			st := w.Stats()
			log.Info("tick",
				zap.Uint64("tick", st.Ticks),
				zap.Int("bodies", st.Bodies),
				zap.Float64("kinetic_energy", st.KineticEnergy),
				zap.Int("collisions", st.Collisions),
				zap.Int("wall_bounces", st.WallBounces),
			)
		}
	}
	return n
}
