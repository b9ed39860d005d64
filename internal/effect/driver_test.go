package effect

import (
	"errors"
	"testing"
	"time"

	"github.com/Faultbox/matrix-rain/internal/surface"
)

func TestDriverTimeNonDecreasing(t *testing.T) {
	d := NewDriver(DefaultSettings(), 1)

	steps := []time.Duration{
		0,
		16 * time.Millisecond,
		33 * time.Millisecond,
		20 * time.Millisecond, // clock stepped backwards
		50 * time.Millisecond,
	}

	var last float32 = -1
	for i, step := range steps {
		p, err := d.Frame(step, surface.Wall)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if p.Time() < last {
			t.Errorf("frame %d: time went backwards, %v after %v", i, p.Time(), last)
		}
		last = p.Time()
	}
}

func TestDriverReseedsEveryFrame(t *testing.T) {
	d := NewDriver(DefaultSettings(), 7)

	seen := make(map[float32]bool)
	for i := 0; i < 50; i++ {
		p, err := d.Frame(time.Duration(i)*16*time.Millisecond, surface.Floor)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		seen[p.RandomSeed()] = true
	}
	// A repeated seed across 50 frames would mean the noise is not
	// being decorrelated.
	if len(seen) < 50 {
		t.Errorf("got %d distinct seeds in 50 frames, want 50", len(seen))
	}
}

func TestDriverStampsSurface(t *testing.T) {
	d := NewDriver(DefaultSettings(), 3)

	p, err := d.Frame(0, surface.Ceiling)
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if p.Surface() != surface.Ceiling {
		t.Errorf("Surface() = %v, want %v", p.Surface(), surface.Ceiling)
	}
}

func TestDriverPropagatesValidationError(t *testing.T) {
	s := DefaultSettings()
	s.FallSpeed = 99 // out of bounds
	d := NewDriver(s, 1)

	_, err := d.Frame(time.Second, surface.Wall)
	if err == nil {
		t.Fatal("Frame() should fail with out-of-range settings")
	}
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("error is %T, want wrapped *OutOfRangeError", err)
	}
	if oor.Field != "fallSpeed" {
		t.Errorf("error names %q, want fallSpeed", oor.Field)
	}
}

func TestDriverTune(t *testing.T) {
	d := NewDriver(DefaultSettings(), 1)

	s := d.Settings()
	s.GlowIntensity = 1.8
	d.Tune(s)

	p, err := d.Frame(0, surface.Wall)
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if p.GlowIntensity() != 1.8 {
		t.Errorf("GlowIntensity() = %v, want 1.8", p.GlowIntensity())
	}
}
