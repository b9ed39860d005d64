package effect

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Faultbox/matrix-rain/internal/surface"
)

// Driver turns tuned Settings into one validated Params per frame.
// It owns the two obligations the contract leaves to the producer:
// the effect clock never runs backwards within a session, and the
// noise seed is re-randomized every frame so visual noise doesn't
// correlate across frames.
//
// Not safe for concurrent use; drive it from the render loop.
type Driver struct {
	settings Settings
	rng      *rand.Rand
	lastTime float32
}

// NewDriver creates a driver producing frames from s. seed fixes the
// per-frame noise sequence; pass anything (the current time works fine)
// unless reproducibility matters.
func NewDriver(s Settings, seed uint64) *Driver {
	return &Driver{
		settings: s,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Settings returns the driver's current tuning.
func (d *Driver) Settings() Settings {
	return d.settings
}

// Tune replaces the driver's settings for subsequent frames. The new
// values are checked on the next Frame call, not here.
func (d *Driver) Tune(s Settings) {
	d.settings = s
}

// Frame produces the parameter set for the frame at the given session
// elapsed time, rendered onto a surface of the given kind. A clock
// that stepped backwards is held at the previous frame's value; a
// settings value out of bounds fails the frame without clamping.
func (d *Driver) Frame(elapsed time.Duration, kind surface.Kind) (Params, error) {
	t := float32(elapsed.Seconds())
	if t < d.lastTime {
		t = d.lastTime
	}

	s := d.settings
	s.Time = t
	s.RandomSeed = d.rng.Float32()
	s.Surface = kind

	p, err := NewParams(s)
	if err != nil {
		return Params{}, fmt.Errorf("frame at t=%.3fs: %w", t, err)
	}
	d.lastTime = t
	return p, nil
}
