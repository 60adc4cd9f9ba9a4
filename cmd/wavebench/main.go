// wavebench times the wave solver on a given grid without any graphics.
// It reports per-step latency statistics for sizing the simulation grid.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"bastion/waves"
)

func main() {
	rows := flag.Int("rows", 128, "Grid rows")
	cols := flag.Int("cols", 128, "Grid columns")
	steps := flag.Int("steps", 10000, "Solver steps to run")
	seed := flag.Int64("seed", 1, "RNG seed for disturbance placement")
	disturbEvery := flag.Int("disturb-every", 8, "Inject one ripple every N steps (0 = none)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	field, err := waves.New(*rows, *cols, 160, 160, 0.03, 4.0, 0.2)
	if err != nil {
		slog.Error("building field", "error", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	dt := field.StepSize()
	durations := make([]float64, 0, *steps)

	for i := 0; i < *steps; i++ {
		if *disturbEvery > 0 && i%*disturbEvery == 0 {
			row := waves.DisturbMargin + rng.Intn(*rows-2*waves.DisturbMargin)
			col := waves.DisturbMargin + rng.Intn(*cols-2*waves.DisturbMargin)
			field.Disturb(row, col, 0.1+0.2*rng.Float32())
		}

		start := time.Now()
		field.Update(dt)
		durations = append(durations, float64(time.Since(start).Microseconds()))
	}

	sort.Float64s(durations)
	slog.Info("wavebench",
		"rows", *rows,
		"cols", *cols,
		"steps", *steps,
		"mean_us", stat.Mean(durations, nil),
		"std_us", stat.StdDev(durations, nil),
		"p50_us", stat.Quantile(0.5, stat.Empirical, durations, nil),
		"p99_us", stat.Quantile(0.99, stat.Empirical, durations, nil),
		"max_us", durations[len(durations)-1],
	)
}
