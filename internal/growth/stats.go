// Package growth tracks cluster extent and particle count as a DLA cluster
// grows, and estimates its fractal dimension from the N(r) scaling.
package growth

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Sample is one row of the growth history, recorded when a particle sticks.
type Sample struct {
	// Index is the 1-based particle count after the stick; the seed is 1.
	Index int
	// Radius is the Euclidean distance of the farthest cluster cell from the origin.
	Radius float64
	// Dimension is the fractal-dimension estimate at this point, NaN while undefined.
	Dimension float64
}

// Fit summarises the log N against log r regression.
type Fit struct {
	Dimension float64
	Intercept float64
	RSquared  float64
	Points    int
}

// Stats accumulates growth samples. The zero value is not usable; call New.
type Stats struct {
	samples   []Sample
	maxRadius float64

	logR []float64
	logN []float64
}

// New returns empty statistics.
func New() *Stats {
	return &Stats{}
}

// Reset forgets every sample.
func (s *Stats) Reset() {
	s.samples = s.samples[:0]
	s.logR = s.logR[:0]
	s.logN = s.logN[:0]
	s.maxRadius = 0
}

// Observe records that a particle froze at (x, y) and returns the new sample.
func (s *Stats) Observe(x, y int) Sample {
	r := math.Hypot(float64(x), float64(y))
	if r > s.maxRadius {
		s.maxRadius = r
	}
	n := len(s.samples) + 1
	if s.maxRadius > 0 {
		s.logR = append(s.logR, math.Log(s.maxRadius))
		s.logN = append(s.logN, math.Log(float64(n)))
	}
	sample := Sample{Index: n, Radius: s.maxRadius, Dimension: s.Dimension()}
	s.samples = append(s.samples, sample)
	return sample
}

// Count returns the number of recorded particles.
func (s *Stats) Count() int { return len(s.samples) }

// MaxRadius returns the current bounding radius.
func (s *Stats) MaxRadius() float64 { return s.maxRadius }

// Samples returns a copy of the growth history.
func (s *Stats) Samples() []Sample {
	return append([]Sample(nil), s.samples...)
}

// Last returns the most recent sample.
func (s *Stats) Last() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}

// Dimension is the least-squares slope of log N against log r. It is NaN
// until at least two distinct radii have been seen.
func (s *Stats) Dimension() float64 {
	if !s.fittable() {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(s.logR, s.logN, nil, false)
	return beta
}

// TwoPoint estimates the dimension from the first and last usable samples only.
func (s *Stats) TwoPoint() float64 {
	if !s.fittable() {
		return math.NaN()
	}
	last := len(s.logR) - 1
	return (s.logN[last] - s.logN[0]) / (s.logR[last] - s.logR[0])
}

// Fit returns the full regression summary.
func (s *Stats) Fit() Fit {
	if !s.fittable() {
		return Fit{Dimension: math.NaN(), Intercept: math.NaN(), RSquared: math.NaN(), Points: len(s.logR)}
	}
	alpha, beta := stat.LinearRegression(s.logR, s.logN, nil, false)
	return Fit{
		Dimension: beta,
		Intercept: alpha,
		RSquared:  stat.RSquared(s.logR, s.logN, nil, alpha, beta),
		Points:    len(s.logR),
	}
}

// LogPoints returns copies of the (log r, log N) pairs used by the fit.
func (s *Stats) LogPoints() (logR, logN []float64) {
	return append([]float64(nil), s.logR...), append([]float64(nil), s.logN...)
}

// maxRadius never decreases, so distinct radii exist iff the ends differ.
func (s *Stats) fittable() bool {
	n := len(s.logR)
	return n >= 2 && s.logR[0] != s.logR[n-1]
}
