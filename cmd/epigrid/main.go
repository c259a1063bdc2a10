//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"epigrid/internal/app"
	"epigrid/internal/core"
	"epigrid/internal/simlog"
	"epigrid/internal/sims/epidemic"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	simName := flag.String("sim", "epidemic", "simulation to run")
	n := flag.Int("n", 100, "grid side length")
	scale := flag.Int("scale", 6, "pixel scale multiplier")
	dps := flag.Float64("dps", 4, "simulated days per second")
	seed := flag.Int64("seed", 42, "seed for simulation reset")
	csvPath := flag.String("csv", "", "optional counts CSV output path")
	flag.Parse()

	factory, ok := core.Sims()[*simName]
	if !ok {
		log.Fatalf("unknown sim %q", *simName)
	}

	sim := factory(map[string]string{
		"n":    strconv.Itoa(*n),
		"seed": strconv.FormatInt(*seed, 10),
	})
	sim.Reset(*seed)

	game := app.New(sim, *scale, *dps, *seed)

	if *csvPath != "" {
		pop, ok := sim.(*epidemic.Population)
		if !ok {
			log.Fatalf("sim %q does not expose state counts for CSV logging", *simName)
		}
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger, err := simlog.NewCountsLogger(f)
		if err != nil {
			log.Fatal(err)
		}
		// Day-0 row before the first advance.
		if err := logger.Record(pop.Day(), pop.Counts()); err != nil {
			log.Fatal(err)
		}
		game.AfterStep = func() {
			if err := logger.Record(pop.Day(), pop.Counts()); err != nil {
				log.Printf("csv log: %v", err)
			}
		}
	}

	size := sim.Size()
	ebiten.SetWindowTitle("epigrid — " + sim.Name())
	ebiten.SetWindowSize(size.W*(*scale)+app.LegendWidth, size.H*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
