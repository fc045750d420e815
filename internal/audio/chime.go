// Package audio plays a short tone whenever a particle joins the cluster.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	errgo "gopkg.in/errgo.v1"
)

const (
	sampleRate = beep.SampleRate(48000)

	toneLength = 40 * time.Millisecond
	baseFreq   = 220.0
	// maxPending caps tones queued in the mixer so fast mode does not pile up.
	maxPending = 4
)

// Chime turns cluster growth into sound. Pitch rises with the cluster radius.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
}

// NewChime returns a chime at the given linear volume in (0, 1].
func NewChime(volume float64) *Chime {
	if volume <= 0 || volume > 1 {
		volume = 0.5
	}
	return &Chime{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the audio device.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return errgo.Notef(err, "cannot open audio device")
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues the tone for a cluster of the given radius.
func (c *Chime) Play(radius float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	pending := c.mixer.Len()
	speaker.Unlock()
	if pending >= maxPending {
		return
	}
	tone, err := Tone(Pitch(radius), c.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Close silences the chime and releases the device.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Pitch maps a cluster radius to a tone frequency. Each doubling of the
// radius raises it by a quarter of the base frequency.
func Pitch(radius float64) float64 {
	if radius < 1 {
		radius = 1
	}
	return baseFreq * (1 + math.Log2(radius)/4)
}

// Tone returns a short sine burst at freq.
func Tone(freq, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, errgo.Notef(err, "cannot build %.1f Hz tone", freq)
	}
	vol := &effects.Volume{Streamer: sine, Base: 2, Volume: math.Log2(volume)}
	return beep.Take(sampleRate.N(toneLength), vol), nil
}
