// scenconv converts a Lua or generated scenario into a plain YAML scenario
// file.
//
// Usage:
//
//	go run ./cmd/scenconv [-in file.lua|file.yaml] [-count n -seed s]
//	                      [-width w -height h] <output.yaml>
//
// Without -in a scenario is generated from -count and -seed. Only initial
// conditions are written; the simulation is never run.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pie2d/sim/internal/app"
	"github.com/pie2d/sim/internal/config"
	"github.com/pie2d/sim/internal/data"
	"github.com/pie2d/sim/internal/world"
)

func main() {
	in := flag.String("in", "", "scenario to convert (.lua or .yaml)")
	count := flag.Int("count", 12, "bodies to generate when -in is empty")
	seed := flag.Int64("seed", 1, "generator seed")
	width := flag.Float64("width", world.DefaultWidth, "world width")
	height := flag.Float64("height", world.DefaultHeight, "world height")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: scenconv [flags] <output.yaml>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputPath := flag.Arg(0)

	cfg := config.Defaults()
	cfg.World.Width = *width
	cfg.World.Height = *height
	cfg.Scenario.Path = *in
	cfg.Scenario.GenerateCount = *count
	cfg.Scenario.Seed = *seed
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sc, err := app.LoadScenario(cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading scenario: %v\n", err)
		os.Exit(1)
	}

	header := fmt.Sprintf("Scenario %q, %d bodies", sc.Name, sc.Count())
	if err := data.WriteScenario(outputPath, sc, header); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d bodies to %s\n", sc.Count(), outputPath)
}
