package core

import "time"

const (
	// SlowInterval is the delay between single steps in slow mode.
	SlowInterval = 10 * time.Millisecond
	// DefaultFastBatch is the number of steps issued per tick in fast mode.
	DefaultFastBatch = 4000

	maxSlowBacklog = 10
)

// Pacer decides how many simulation updates are due on each frame. Slow mode
// releases one update per SlowInterval; fast mode releases a fixed batch every
// call.
type Pacer struct {
	slow        bool
	batch       int
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a pacer in slow mode releasing batch steps when fast.
func NewPacer(batch int) *Pacer {
	if batch <= 0 {
		batch = DefaultFastBatch
	}
	return &Pacer{slow: true, batch: batch}
}

// SetSlow switches between slow and fast pacing. It is safe to call from the main loop.
func (p *Pacer) SetSlow(slow bool) {
	if p.slow == slow {
		return
	}
	p.slow = slow
	p.accumulator = 0
	p.last = time.Time{}
}

// Slow reports whether slow pacing is active.
func (p *Pacer) Slow() bool { return p.slow }

// Batch returns the number of steps released per fast tick.
func (p *Pacer) Batch() int { return p.batch }

// Due reports how many updates should run at time now.
func (p *Pacer) Due(now time.Time) int {
	if !p.slow {
		return p.batch
	}
	if p.last.IsZero() {
		p.last = now
		return 1
	}
	delta := now.Sub(p.last)
	p.last = now
	if delta > 0 {
		p.accumulator += delta
	}
	n := int(p.accumulator / SlowInterval)
	p.accumulator -= time.Duration(n) * SlowInterval
	if n > maxSlowBacklog {
		n = maxSlowBacklog
	}
	return n
}
