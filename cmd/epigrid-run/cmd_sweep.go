package main

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"epigrid/internal/sims/epidemic"
)

type sweepParams struct {
	infectionRate   float64
	vaccinationRate float64
	hesitancy       float64
}

func (p sweepParams) String() string {
	return fmt.Sprintf("ri=%.3f rv=%.4f rvh=%.2f", p.infectionRate, p.vaccinationRate, p.hesitancy)
}

type sweepResult struct {
	params sweepParams

	peakInfected    int
	peakDay         int
	finalInfected   int
	finalVaccinated int
	attackRate      float64
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the infection/vaccination parameter grid and rank outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			size, _ := cmd.Flags().GetInt("size")
			seed, _ := cmd.Flags().GetInt64("seed")
			workers, _ := cmd.Flags().GetInt("workers")
			return runSweep(cmd, days, size, seed, workers)
		},
	}
	cmd.Flags().Int("days", 365, "days to simulate per scenario")
	cmd.Flags().Int("size", 100, "grid side length")
	cmd.Flags().Int64("seed", 1337, "scenario seed")
	cmd.Flags().Int("workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}

func runSweep(cmd *cobra.Command, days, size int, seed int64, workers int) error {
	if workers < 1 {
		workers = 1
	}

	infectionOptions := []float64{0.10, 0.20, 0.30}
	vaccinationOptions := []float64{0.0005, 0.001, 0.002}
	hesitancyOptions := []float64{0.0, 0.2, 0.4}

	var sets []sweepParams
	for _, ri := range infectionOptions {
		for _, rv := range vaccinationOptions {
			for _, rvh := range hesitancyOptions {
				sets = append(sets, sweepParams{
					infectionRate:   ri,
					vaccinationRate: rv,
					hesitancy:       rvh,
				})
			}
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sweeping %d parameter sets (%d workers, %d days, %dx%d grid)\n",
		len(sets), workers, days, size, size)

	jobs := make(chan sweepParams)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, days, size, seed)
			}
		}()
	}
	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var collected []sweepResult
	for res := range results {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].peakInfected > collected[j].peakInfected
	})

	for _, res := range collected {
		fmt.Fprintf(out, "%s  peak=%d@day%d final_inf=%d vaccinated=%d attack=%.1f%%\n",
			res.params, res.peakInfected, res.peakDay,
			res.finalInfected, res.finalVaccinated, res.attackRate*100)
	}
	return nil
}

func runScenario(params sweepParams, days, size int, seed int64) sweepResult {
	cfg := epidemic.DefaultConfig()
	cfg.Size = size
	cfg.Seed = seed
	cfg.Outbreak = epidemic.Outbreak{
		Start:  size / 4,
		End:    size * 3 / 4,
		Chance: 0.75,
	}

	// The scenario rates go through the runtime setter, which takes
	// percent values.
	pop, err := epidemic.NewWithConfig(cfg)
	if err != nil {
		return sweepResult{params: params}
	}
	pop.SetFloatParameter("infection_rate", params.infectionRate*100)
	pop.SetFloatParameter("vaccination_rate", params.vaccinationRate*100)
	pop.SetFloatParameter("vaccine_hesitancy", params.hesitancy*100)
	pop.Reset(seed)

	res := sweepResult{params: params}
	total := size * size
	for day := 1; day <= days; day++ {
		pop.Step()
		c := pop.Counts()
		if c.Infected > res.peakInfected {
			res.peakInfected = c.Infected
			res.peakDay = day
		}
	}
	final := pop.Counts()
	res.finalInfected = final.Infected
	res.finalVaccinated = final.Vaccinated
	res.attackRate = 1 - float64(final.Susceptible)/float64(total)
	return res
}
