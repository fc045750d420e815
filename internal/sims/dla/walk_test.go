package dla

import (
	"testing"

	"dlagrow/internal/core"
	pcore "dlagrow/pkg/core"
)

// scriptedRand replays fixed draws and counts how many of each were used.
type scriptedRand struct {
	floats []float64
	ints   []int
	fn, in int
}

func (s *scriptedRand) Float64() float64 {
	if s.fn >= len(s.floats) {
		s.fn++
		return 0.5
	}
	v := s.floats[s.fn]
	s.fn++
	return v
}

func (s *scriptedRand) IntN(n int) int {
	if s.in >= len(s.ints) {
		s.in++
		return 0
	}
	v := s.ints[s.in] % n
	s.in++
	return v
}

func TestTowards(t *testing.T) {
	cases := []struct {
		name     string
		pos, tgt core.Point
		diagonal bool
		want     core.Point
	}{
		{"west", core.Point{X: 3}, core.Point{}, false, core.Point{X: -1}},
		{"longer axis y", core.Point{X: 1, Y: 4}, core.Point{}, false, core.Point{Y: -1}},
		{"tie prefers x", core.Point{X: -2, Y: 2}, core.Point{}, false, core.Point{X: 1}},
		{"diagonal", core.Point{X: -2, Y: 2}, core.Point{}, true, core.Point{X: 1, Y: -1}},
		{"diagonal on axis", core.Point{X: 0, Y: -3}, core.Point{}, true, core.Point{Y: 1}},
	}
	for _, tc := range cases {
		if got := towards(tc.pos, tc.tgt, tc.diagonal); got != tc.want {
			t.Fatalf("%s: towards(%+v) = %+v, want %+v", tc.name, tc.pos, got, tc.want)
		}
	}
}

func TestNextPositionWithoutAttractionUsesOnlyDirectionDraws(t *testing.T) {
	lat := core.NewLattice(10)
	rng := &scriptedRand{ints: []int{1, 3}}
	w := walkParams{}

	p := nextPosition(core.Point{X: 2}, lat, w, rng)
	if p != (core.Point{X: 3}) {
		t.Fatalf("first step = %+v, want (3,0)", p)
	}
	p = nextPosition(p, lat, w, rng)
	if p != (core.Point{X: 2}) {
		t.Fatalf("second step = %+v, want (2,0)", p)
	}
	if rng.fn != 0 {
		t.Fatalf("unbiased walk drew %d floats, want 0", rng.fn)
	}
}

func TestNextPositionAttractionOutOfRangeMatchesPlainWalk(t *testing.T) {
	lat := core.NewLattice(20)
	rng := &scriptedRand{ints: []int{2}}
	w := walkParams{attrSeparation: 3, attrStrength: 1}

	p := nextPosition(core.Point{X: 10, Y: 10}, lat, w, rng)
	if p != (core.Point{X: 10, Y: 11}) {
		t.Fatalf("step = %+v, want (10,11)", p)
	}
	if rng.fn != 0 {
		t.Fatal("attraction must not draw when no cell is within range")
	}
}

func TestNextPositionAttractionPullsTowardCluster(t *testing.T) {
	lat := core.NewLattice(10)
	rng := &scriptedRand{floats: []float64{0.1}, ints: []int{1}}
	w := walkParams{attrSeparation: 4, attrStrength: 0.5}

	p := nextPosition(core.Point{X: 3}, lat, w, rng)
	if p != (core.Point{X: 2}) {
		t.Fatalf("attracted step = %+v, want (2,0)", p)
	}
	if rng.in != 0 {
		t.Fatal("an attracted step should not also draw a direction")
	}
}

func TestAttractionRaisesChanceOfApproach(t *testing.T) {
	lat := core.NewLattice(10)
	start := core.Point{X: 3}
	origin := core.Point{}

	approachRate := func(w walkParams) float64 {
		rng := pcore.NewRNG(99)
		closer := 0
		const trials = 20000
		for i := 0; i < trials; i++ {
			if nextPosition(start, lat, w, rng).Dist2(origin) < start.Dist2(origin) {
				closer++
			}
		}
		return float64(closer) / trials
	}

	plain := approachRate(walkParams{})
	attracted := approachRate(walkParams{attrSeparation: 5, attrStrength: 0.5})
	if attracted < plain+0.2 {
		t.Fatalf("approach rate with attraction %.3f, without %.3f; want a clear increase", attracted, plain)
	}
}
