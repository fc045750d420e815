// Package control drives a DLA engine for interactive and headless front ends:
// run state, pacing, CSV export and the keyboard command set.
package control

import (
	"context"
	"fmt"
	"io"
	"time"

	"dlagrow/internal/core"
	"dlagrow/internal/export"
	"dlagrow/internal/growth"
	"dlagrow/internal/sims/dla"

	"github.com/charmbracelet/log"
	errgo "gopkg.in/errgo.v1"
)

// Options configures a Controller. The zero value exports into the working
// directory and discards log output.
type Options struct {
	// Dir receives fractDim<N>.csv files. Empty means the working directory.
	Dir string
	// Logger receives run events. Nil discards them.
	Logger *log.Logger
	// FastBatch is the number of updates per fast tick.
	FastBatch int
	// NoExport disables the CSV file, for sweeps and tests.
	NoExport bool
}

// StickFunc observes every particle that joins the cluster.
type StickFunc func(s growth.Sample)

// Controller owns the run state around an engine.
type Controller struct {
	engine *dla.Engine
	pacer  *core.Pacer
	logger *log.Logger

	dir      string
	noExport bool
	exporter *export.CSVExporter
	lastFile string

	running bool
	zoom    bool
	light   bool

	observers []StickFunc
}

// New wraps engine. The controller starts paused in slow mode.
func New(engine *dla.Engine, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return &Controller{
		engine:   engine,
		pacer:    core.NewPacer(opts.FastBatch),
		logger:   logger,
		dir:      dir,
		noExport: opts.NoExport,
	}
}

// Engine returns the driven engine.
func (c *Controller) Engine() *dla.Engine { return c.engine }

// Logger returns the controller's logger.
func (c *Controller) Logger() *log.Logger { return c.logger }

// OnStick registers fn to run after each stick, once the sample is exported.
func (c *Controller) OnStick(fn StickFunc) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

// SetSeed restarts the engine's random stream.
func (c *Controller) SetSeed(seed int64) {
	c.engine.SetSeed(seed)
	c.logger.Info("seed set", "seed", seed)
}

// Reset pauses the run, closes any export file and clears the cluster.
func (c *Controller) Reset() {
	c.PauseRunning()
	c.engine.Reset()
	c.logger.Info("reset", "radius", c.engine.Radius())
}

// Update performs one engine step. A completed run does not step further.
func (c *Controller) Update() dla.Event {
	if c.engine.Done() {
		c.finish()
		return dla.EventNone
	}
	ev := c.engine.Update()
	if ev == dla.EventStuck {
		c.record(c.engine.LastSample())
	}
	if c.engine.Done() {
		c.finish()
	}
	return ev
}

func (c *Controller) record(s growth.Sample) {
	if c.exporter != nil {
		if err := c.exporter.Write(s); err != nil {
			c.logger.Error("export failed, continuing without it", "err", err)
			c.closeExporter()
		}
	}
	for _, fn := range c.observers {
		fn(s)
	}
}

func (c *Controller) finish() {
	if !c.running {
		return
	}
	reason := "end count reached"
	if c.engine.Saturated() && c.engine.NumParticles() < c.engine.Params().EndNum {
		reason = "lattice saturated"
	}
	c.logger.Info("run complete",
		"reason", reason,
		"particles", c.engine.NumParticles(),
		"radius", c.engine.MaxRadius(),
		"dimension", c.engine.FractalDimension(),
	)
	c.PauseRunning()
}

// SetRunning starts the run and opens the next fractDim<N>.csv, back-filled
// with the history so far. Export failures are returned but the run still
// starts.
func (c *Controller) SetRunning() error {
	if c.running {
		return nil
	}
	if c.engine.Done() {
		c.logger.Warn("run already complete", "particles", c.engine.NumParticles())
		return nil
	}
	c.running = true
	c.logger.Info("go", "slow", c.pacer.Slow())
	if c.noExport {
		return nil
	}

	exp, err := export.Create(c.dir)
	if err != nil {
		c.logger.Error("cannot open export file", "dir", c.dir, "err", err)
		return errgo.Mask(err, errgo.Any)
	}
	if err := exp.WriteAll(c.engine.History()); err != nil {
		c.logger.Error("cannot back-fill export file", "file", exp.Path(), "err", err)
		exp.Close()
		return errgo.Mask(err)
	}
	c.exporter = exp
	c.lastFile = exp.Path()
	c.logger.Info("exporting", "file", exp.Path(), "rows", exp.Rows())
	return nil
}

// PauseRunning stops the run and closes the export file.
func (c *Controller) PauseRunning() {
	if c.running {
		c.logger.Info("pause", "particles", c.engine.NumParticles())
	}
	c.running = false
	c.closeExporter()
}

func (c *Controller) closeExporter() {
	if c.exporter == nil {
		return
	}
	if err := c.exporter.Close(); err != nil {
		c.logger.Error("cannot close export file", "file", c.exporter.Path(), "err", err)
	}
	c.exporter = nil
}

// SetSlow selects one update per 10ms.
func (c *Controller) SetSlow() {
	c.pacer.SetSlow(true)
	c.logger.Info("slow")
}

// SetFast selects a batch of updates per tick.
func (c *Controller) SetFast() {
	c.pacer.SetSlow(false)
	c.logger.Info("fast", "batch", c.pacer.Batch())
}

// Running reports whether the run is active.
func (c *Controller) Running() bool { return c.running }

// Slow reports whether slow pacing is selected.
func (c *Controller) Slow() bool { return c.pacer.Slow() }

// Done reports whether the engine finished growing.
func (c *Controller) Done() bool { return c.engine.Done() }

// Filename returns the current or most recent export file, empty if none.
func (c *Controller) Filename() string { return c.lastFile }

// Advance runs the updates due at now and returns how many ran.
func (c *Controller) Advance(now time.Time) int {
	if !c.running {
		return 0
	}
	due := c.pacer.Due(now)
	n := 0
	for ; n < due && c.running; n++ {
		c.Update()
	}
	return n
}

// Run starts the run and steps it without pacing until it completes or ctx
// is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.SetRunning(); err != nil {
		c.logger.Warn("running without export", "err", err)
	}
	batch := c.pacer.Batch()
	for c.running {
		if err := ctx.Err(); err != nil {
			c.PauseRunning()
			return errgo.Mask(err, errgo.Any)
		}
		for i := 0; i < batch && c.running; i++ {
			c.Update()
		}
	}
	return nil
}

// PrintSize writes the cluster size summary.
func (c *Controller) PrintSize(w io.Writer) {
	e := c.engine
	fmt.Fprintf(w, "particles: %d  radius: %.2f  spawn radius: %d  dimension: %.4f\n",
		e.NumParticles(), e.MaxRadius(), e.SpawnRadius(), e.FractalDimension())
}

// Zoom reports whether the view is zoomed to the spawn circle.
func (c *Controller) Zoom() bool { return c.zoom }

// Light reports whether the light background is selected.
func (c *Controller) Light() bool { return c.light }

// SetLight selects the light or dark background.
func (c *Controller) SetLight(light bool) { c.light = light }
