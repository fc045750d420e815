// Command dla-sweep grows clusters across a grid of sticking rules and ranks
// them by fractal dimension.
package main

import (
	"flag"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"dlagrow/internal/app"
	"dlagrow/internal/sims/dla"
)

func main() {
	radius := flag.Int("radius", 120, "lattice half-width")
	endNum := flag.Int("end", 1500, "particles per cluster")
	seed := flag.Int64("seed", 42, "seed shared by every run")
	maxSteps := flag.Int("steps", 0, "update budget per run (0 = until done)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	probs := flag.String("stick", "1,0.5,0.2", "comma separated stick probabilities")
	colls := flag.String("colls", "1,2,4", "comma separated minimum collision counts")
	attr := flag.String("attr", "0", "comma separated attraction ranges")
	diagonal := flag.Bool("diagonal", true, "also sweep diagonal sticking")
	verbose := flag.Bool("v", false, "debug logging")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, "sweep", *verbose)

	base := dla.DefaultConfig()
	base.Radius = *radius
	base.Seed = *seed
	base.Params.EndNum = *endNum
	dla.ApplyMap(&base, overrides)

	grid := dla.SweepGrid{
		StickProbs:     parseFloats(*probs),
		MinColls:       parseInts(*colls),
		AttrSeparation: parseInts(*attr),
	}
	if *diagonal {
		grid.DiagonalStick = []bool{false, true}
	}
	var sets []dla.Params
	for _, p := range grid.Params(base.Params) {
		if err := p.Validate(); err != nil {
			logger.Warn("skipping invalid set", "err", err)
			continue
		}
		sets = append(sets, p)
	}

	logger.Info("sweeping", "sets", len(sets), "workers", *workers, "radius", *radius, "end", *endNum)
	start := time.Now()
	results := dla.Sweep(base, sets, *maxSteps, *workers)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Fit.Dimension > results[j].Fit.Dimension
	})
	for i, res := range results {
		logger.Info(strconv.Itoa(i+1), "result", res.String(), "complete", res.Complete, "saturated", res.Saturated)
	}
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond))
}

func parseFloats(s string) []float64 {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		if v, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func parseInts(s string) []int {
	var out []int
	for _, f := range strings.Split(s, ",") {
		if v, err := strconv.Atoi(strings.TrimSpace(f)); err == nil {
			out = append(out, v)
		}
	}
	return out
}
