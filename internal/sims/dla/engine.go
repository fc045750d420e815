package dla

import (
	"math"

	"dlagrow/internal/core"
	"dlagrow/internal/growth"
	pcore "dlagrow/pkg/core"
)

const (
	cellEmpty   = 0
	cellCluster = 1
	cellWalker  = 2
)

// Engine grows a single DLA cluster one walker step at a time.
type Engine struct {
	cfg Config

	lattice  *core.Lattice
	stats    *growth.Stats
	particle Particle
	display  []uint8

	seed int64
	rng  Rand
}

// New returns an engine over [-radius, radius]^2 using default rules.
func New(radius int) *Engine {
	cfg := DefaultConfig()
	cfg.Radius = radius
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from the provided options.
// Out of range parameters fall back to their defaults.
func NewWithConfig(cfg Config) *Engine {
	if cfg.Radius < 1 {
		cfg.Radius = DefaultConfig().Radius
	}
	if cfg.Params.Validate() != nil {
		cfg.Params = sanitize(cfg.Params)
	}
	lat := core.NewLattice(cfg.Radius)
	e := &Engine{
		cfg:     cfg,
		lattice: lat,
		stats:   growth.New(),
		display: make([]uint8, len(lat.Cells())),
	}
	e.SetSeed(cfg.Seed)
	e.Reset()
	return e
}

func sanitize(p Params) Params {
	def := DefaultConfig().Params
	if checkStickProb(p.StickProb) != nil {
		p.StickProb = def.StickProb
	}
	if checkMinColls(p.MinColls) != nil {
		p.MinColls = def.MinColls
	}
	if checkAttrSeparation(p.AttrSeparation) != nil {
		p.AttrSeparation = def.AttrSeparation
	}
	if checkAttrStrength(p.AttrStrength) != nil {
		p.AttrStrength = def.AttrStrength
	}
	if checkEndNum(p.EndNum) != nil {
		p.EndNum = def.EndNum
	}
	if checkSpawnMargin(p.SpawnMargin) != nil {
		p.SpawnMargin = def.SpawnMargin
	}
	return p
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "dla" }

// Size reports the grid dimensions of the lattice.
func (e *Engine) Size() core.Size { return e.lattice.Size() }

// Radius returns the lattice half-width R.
func (e *Engine) Radius() int { return e.lattice.Radius() }

// SetSeed restarts the random stream. It does not clear the cluster.
func (e *Engine) SetSeed(seed int64) {
	e.seed = seed
	e.rng = pcore.NewRNG(seed)
}

// Seed returns the last seed passed to SetSeed.
func (e *Engine) Seed() int64 { return e.seed }

// SetRand substitutes the random source, typically with a scripted one in tests.
func (e *Engine) SetRand(r Rand) {
	if r != nil {
		e.rng = r
	}
}

// Reset clears the cluster back to the single seed at the origin and forgets
// the growth history and the active walker.
func (e *Engine) Reset() {
	e.lattice.Reset()
	e.stats.Reset()
	e.stats.Observe(0, 0)
	e.particle = Particle{}
}

// Step advances the simulation by one update, satisfying core.Sim.
func (e *Engine) Step() { e.Update() }

// Update performs exactly one step of the particle lifecycle: spawn when idle,
// otherwise move, test adjacency and resolve a stick attempt.
func (e *Engine) Update() Event {
	if !e.particle.Alive {
		e.spawn()
		return EventSpawned
	}

	p := &e.particle
	next := nextPosition(p.Pos(), e.lattice, e.cfg.Params.walk(), e.rng)
	if !e.lattice.InBounds(next.X, next.Y) {
		e.particle = Particle{}
		return EventEscaped
	}
	if !e.lattice.IsOccupied(next.X, next.Y) {
		p.X, p.Y = next.X, next.Y
	}

	if e.lattice.NeighborsOccupied(p.X, p.Y, e.cfg.Params.DiagonalStick) > 0 {
		p.Collisions++
	} else if e.cfg.Params.ResetColls {
		p.Collisions = 0
	}
	if p.Collisions < e.cfg.Params.MinColls {
		p.State = StateWalking
		return EventMoved
	}

	p.State = StateEligible
	if !e.stickRoll() {
		if e.cfg.Params.DelNoStick {
			e.particle = Particle{}
			return EventDiscarded
		}
		p.State = StateWalking
		return EventRejected
	}
	e.commit()
	return EventStuck
}

// stickRoll reports whether an eligible walker freezes. Certain sticking
// does not consume a random draw.
func (e *Engine) stickRoll() bool {
	prob := e.cfg.Params.StickProb
	if prob >= 1 {
		return true
	}
	return e.rng.Float64() < prob
}

func (e *Engine) spawn() {
	r := float64(e.SpawnRadius())
	theta := e.rng.Float64() * 2 * math.Pi
	e.particle = Particle{
		X:     int(math.Round(r * math.Cos(theta))),
		Y:     int(math.Round(r * math.Sin(theta))),
		Alive: true,
		State: StateWalking,
	}
}

func (e *Engine) commit() {
	p := e.particle
	e.particle = Particle{}
	if !e.lattice.Occupy(p.X, p.Y) {
		return
	}
	e.stats.Observe(p.X, p.Y)
}

// SpawnRadius is the radius of the circle new walkers are released on.
func (e *Engine) SpawnRadius() int {
	return int(math.Ceil(e.stats.MaxRadius())) + e.cfg.Params.SpawnMargin
}

// Saturated reports whether the spawn circle no longer fits in the lattice.
func (e *Engine) Saturated() bool {
	return e.SpawnRadius() > e.lattice.Radius()
}

// Done reports whether the run reached its target particle count, or the
// cluster has grown too large for the lattice to release new walkers.
func (e *Engine) Done() bool {
	return e.NumParticles() >= e.cfg.Params.EndNum || e.Saturated()
}

// NumParticles returns the cluster size, the seed included.
func (e *Engine) NumParticles() int { return e.stats.Count() }

// MaxRadius returns the current bounding radius of the cluster.
func (e *Engine) MaxRadius() float64 { return e.stats.MaxRadius() }

// FractalDimension returns the current least-squares estimate, NaN while undefined.
func (e *Engine) FractalDimension() float64 { return e.stats.Dimension() }

// Fit returns the full growth regression summary.
func (e *Engine) Fit() growth.Fit { return e.stats.Fit() }

// History returns a copy of the growth samples.
func (e *Engine) History() []growth.Sample { return e.stats.Samples() }

// LastSample returns the most recent growth sample.
func (e *Engine) LastSample() growth.Sample {
	s, _ := e.stats.Last()
	return s
}

// Stats exposes the growth statistics for read-only consumers such as plots.
func (e *Engine) Stats() *growth.Stats { return e.stats }

// Particle returns the active walker and whether one exists.
func (e *Engine) Particle() (Particle, bool) { return e.particle, e.particle.Alive }

// WalkerPosition returns the active walker's coordinates.
func (e *Engine) WalkerPosition() (x, y int, alive bool) {
	return e.particle.X, e.particle.Y, e.particle.Alive
}

// AttractionRange returns the attraction window half-width and whether
// attraction is enabled.
func (e *Engine) AttractionRange() (int, bool) {
	sep := e.cfg.Params.AttrSeparation
	return sep, sep > 0
}

// IsOccupied reports whether (x, y) belongs to the cluster.
func (e *Engine) IsOccupied(x, y int) bool { return e.lattice.IsOccupied(x, y) }

// Occupied lists the cluster cells for renderers.
func (e *Engine) Occupied() []core.Point { return e.lattice.Occupied() }

// Cells returns the display buffer: 0 empty, 1 cluster, 2 active walker.
// Index 0 is the (-R, -R) corner.
func (e *Engine) Cells() []uint8 {
	copy(e.display, e.lattice.Cells())
	if e.particle.Alive && e.lattice.InBounds(e.particle.X, e.particle.Y) {
		r := e.lattice.Radius()
		w := e.lattice.Size().W
		e.display[(e.particle.Y+r)*w+e.particle.X+r] = cellWalker
	}
	return e.display
}

// Params returns a copy of the current rules.
func (e *Engine) Params() Params { return e.cfg.Params }

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	c := e.cfg
	c.Seed = e.seed
	return c
}
