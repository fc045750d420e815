package dla

import "dlagrow/internal/core"

// Rand is the randomness consumed by the engine. *core.RNG from pkg/core
// satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

var (
	walkCardinal = []core.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	walkAll      = []core.Point{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
	}
)

type walkParams struct {
	diagonal       bool
	attrSeparation int
	attrStrength   float64
}

func (p Params) walk() walkParams {
	return walkParams{
		diagonal:       p.DiagonalWalk,
		attrSeparation: p.AttrSeparation,
		attrStrength:   p.AttrStrength,
	}
}

// nextPosition picks the walker's proposed next cell. Attraction only draws
// extra randomness when an occupied cell is within range, so with no cluster
// nearby (or attraction disabled) the draw sequence matches the plain walk.
func nextPosition(pos core.Point, lat *core.Lattice, w walkParams, rng Rand) core.Point {
	if w.attrSeparation > 0 {
		if target, ok := lat.Nearest(pos.X, pos.Y, w.attrSeparation); ok {
			if rng.Float64() < w.attrStrength {
				return pos.Add(towards(pos, target, w.diagonal))
			}
		}
	}
	dirs := walkCardinal
	if w.diagonal {
		dirs = walkAll
	}
	return pos.Add(dirs[rng.IntN(len(dirs))])
}

// towards returns the unit step that most reduces the distance from pos to
// target. Without diagonal moves the longer axis wins; ties go to x.
func towards(pos, target core.Point, diagonal bool) core.Point {
	dx := sign(target.X - pos.X)
	dy := sign(target.Y - pos.Y)
	if diagonal {
		return core.Point{X: dx, Y: dy}
	}
	if abs(target.X-pos.X) >= abs(target.Y-pos.Y) {
		return core.Point{X: dx}
	}
	return core.Point{Y: dy}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
