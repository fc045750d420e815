package app

import (
	"fmt"
	"math"
	"path/filepath"

	"dlagrow/internal/control"
)

// StatusLines summarises the run for the HUD.
func StatusLines(c *control.Controller) []string {
	e := c.Engine()
	state := "paused"
	switch {
	case c.Done():
		state = "done"
	case c.Running():
		state = "running"
	}
	pace := "slow"
	if !c.Slow() {
		pace = "fast"
	}
	dim := "--"
	if d := e.FractalDimension(); !math.IsNaN(d) {
		dim = fmt.Sprintf("%.3f", d)
	}
	lines := []string{
		fmt.Sprintf("%s, %s", state, pace),
		fmt.Sprintf("N %d / %d", e.NumParticles(), e.Params().EndNum),
		fmt.Sprintf("r %.1f  spawn %d", e.MaxRadius(), e.SpawnRadius()),
		"D " + dim,
	}
	if f := c.Filename(); f != "" {
		lines = append(lines, filepath.Base(f))
	}
	return lines
}
