package dla

import (
	"fmt"
	"sync"

	"dlagrow/internal/growth"
)

// GrowthResult captures the outcome of a deterministic run used for sweeps.
type GrowthResult struct {
	Params Params
	Seed   int64
	// Steps is the number of updates performed, spawns included.
	Steps     int
	Particles int
	Radius    float64
	Saturated bool
	// Complete is false when the step budget ran out first.
	Complete bool
	Fit      growth.Fit
}

func (r GrowthResult) String() string {
	return fmt.Sprintf("stick=%.2f colls=%d diag=%t attr=%d: N=%d r=%.1f D=%.3f R²=%.3f steps=%d",
		r.Params.StickProb, r.Params.MinColls, r.Params.DiagonalStick, r.Params.AttrSeparation,
		r.Particles, r.Radius, r.Fit.Dimension, r.Fit.RSquared, r.Steps)
}

// Grow runs cfg to completion or until maxSteps updates have been made.
func Grow(cfg Config, maxSteps int) GrowthResult {
	e := NewWithConfig(cfg)
	steps := 0
	for !e.Done() && (maxSteps <= 0 || steps < maxSteps) {
		e.Update()
		steps++
	}
	return GrowthResult{
		Params:    e.Params(),
		Seed:      e.Seed(),
		Steps:     steps,
		Particles: e.NumParticles(),
		Radius:    e.MaxRadius(),
		Saturated: e.Saturated(),
		Complete:  e.Done(),
		Fit:       e.Fit(),
	}
}

// SweepGrid enumerates rule combinations. Empty axes keep the base value.
type SweepGrid struct {
	StickProbs     []float64
	MinColls       []int
	DiagonalStick  []bool
	AttrSeparation []int
}

// Params expands the grid around base.
func (g SweepGrid) Params(base Params) []Params {
	sets := []Params{base}
	if len(g.StickProbs) > 0 {
		sets = expand(sets, len(g.StickProbs), func(p *Params, i int) { p.StickProb = g.StickProbs[i] })
	}
	if len(g.MinColls) > 0 {
		sets = expand(sets, len(g.MinColls), func(p *Params, i int) { p.MinColls = g.MinColls[i] })
	}
	if len(g.DiagonalStick) > 0 {
		sets = expand(sets, len(g.DiagonalStick), func(p *Params, i int) { p.DiagonalStick = g.DiagonalStick[i] })
	}
	if len(g.AttrSeparation) > 0 {
		sets = expand(sets, len(g.AttrSeparation), func(p *Params, i int) { p.AttrSeparation = g.AttrSeparation[i] })
	}
	return sets
}

func expand(sets []Params, n int, set func(*Params, int)) []Params {
	out := make([]Params, 0, len(sets)*n)
	for _, p := range sets {
		for i := 0; i < n; i++ {
			q := p
			set(&q, i)
			out = append(out, q)
		}
	}
	return out
}

// Sweep grows one cluster per parameter set on up to workers goroutines.
// Results are returned in the order of sets.
func Sweep(base Config, sets []Params, maxSteps, workers int) []GrowthResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]GrowthResult, len(sets))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for idx, params := range sets {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p Params) {
			defer wg.Done()
			cfg := base
			cfg.Params = p
			results[i] = Grow(cfg, maxSteps)
			<-sem
		}(idx, params)
	}
	wg.Wait()
	return results
}
