// Package effect defines the per-frame parameter contract between the
// control layer and the rendering backend: a validated, immutable
// snapshot of every render-tunable knob of the rain effect, plus the
// vertex record shared with mesh generation.
package effect

import (
	"fmt"
	stdmath "math"

	"github.com/Faultbox/matrix-rain/internal/surface"
	"github.com/Faultbox/matrix-rain/pkg/math"
)

// Legal intervals for the bounded parameters.
const (
	MinCharacterDensity = 0.5
	MaxCharacterDensity = 5.0
	MinFallSpeed        = 0.1
	MaxFallSpeed        = 3.0
	MinGlowIntensity    = 0.0
	MaxGlowIntensity    = 2.0
	MinTrailLength      = 1.0
	MaxTrailLength      = 20.0
)

// OutOfRangeError reports a parameter outside its legal interval.
// Construction never clamps: the offending value is handed back to
// the caller untouched.
type OutOfRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("parameter %s = %v outside [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// Settings is the mutable staging struct the control layer fills in
// before constructing Params. The zero value does not validate; start
// from DefaultSettings.
type Settings struct {
	Time             float32
	CharacterDensity float32
	FallSpeed        float32
	GlowIntensity    float32
	BaseColor        math.Vec3
	HighlightColor   math.Vec3
	CharacterScale   float32
	TrailLength      float32
	RandomSeed       float32
	Surface          surface.Kind
}

// DefaultSettings returns the canonical green rain: every field passes
// validation as-is.
func DefaultSettings() Settings {
	return Settings{
		Time:             0,
		CharacterDensity: 1.0,
		FallSpeed:        1.0,
		GlowIntensity:    1.0,
		BaseColor:        math.Vec3{X: 0.0, Y: 1.0, Z: 0.3},
		HighlightColor:   math.Vec3{X: 0.6, Y: 1.0, Z: 0.8},
		CharacterScale:   1.0,
		TrailLength:      8.0,
		RandomSeed:       0,
		Surface:          surface.Unknown,
	}
}

// Params is one frame's worth of effect state. Immutable once built;
// accessors never fail and never change. The field order mirrors the
// GPU parameter block (see Marshal).
type Params struct {
	time             float32
	characterDensity float32
	fallSpeed        float32
	glowIntensity    float32
	baseColor        math.Vec3
	highlightColor   math.Vec3
	characterScale   float32
	trailLength      float32
	randomSeed       float32
	surface          surface.Kind
}

// NewParams validates s and freezes it into a Params. Values are taken
// exactly as given; a bound violation returns *OutOfRangeError naming
// the field, and no Params.
func NewParams(s Settings) (Params, error) {
	if err := validate(s); err != nil {
		return Params{}, err
	}
	return Params{
		time:             s.Time,
		characterDensity: s.CharacterDensity,
		fallSpeed:        s.FallSpeed,
		glowIntensity:    s.GlowIntensity,
		baseColor:        s.BaseColor,
		highlightColor:   s.HighlightColor,
		characterScale:   s.CharacterScale,
		trailLength:      s.TrailLength,
		randomSeed:       s.RandomSeed,
		surface:          s.Surface,
	}, nil
}

func validate(s Settings) error {
	if s.Time < 0 {
		return &OutOfRangeError{Field: "time", Value: float64(s.Time), Min: 0, Max: stdmath.Inf(1)}
	}
	if err := checkRange("characterDensity", s.CharacterDensity, MinCharacterDensity, MaxCharacterDensity); err != nil {
		return err
	}
	if err := checkRange("fallSpeed", s.FallSpeed, MinFallSpeed, MaxFallSpeed); err != nil {
		return err
	}
	if err := checkRange("glowIntensity", s.GlowIntensity, MinGlowIntensity, MaxGlowIntensity); err != nil {
		return err
	}
	if err := checkColor("baseColor", s.BaseColor); err != nil {
		return err
	}
	if err := checkColor("highlightColor", s.HighlightColor); err != nil {
		return err
	}
	if s.CharacterScale <= 0 {
		return &OutOfRangeError{Field: "characterScale", Value: float64(s.CharacterScale), Min: 0, Max: stdmath.Inf(1)}
	}
	if err := checkRange("trailLength", s.TrailLength, MinTrailLength, MaxTrailLength); err != nil {
		return err
	}
	return nil
}

func checkRange(field string, v, min, max float32) error {
	if v < min || v > max {
		return &OutOfRangeError{Field: field, Value: float64(v), Min: float64(min), Max: float64(max)}
	}
	return nil
}

// checkColor verifies every channel is in [0, 1], naming the offending
// channel in the error.
func checkColor(field string, c math.Vec3) error {
	channels := []struct {
		name string
		v    float32
	}{
		{field + ".r", c.X},
		{field + ".g", c.Y},
		{field + ".b", c.Z},
	}
	for _, ch := range channels {
		if ch.v < 0 || ch.v > 1 {
			return &OutOfRangeError{Field: ch.name, Value: float64(ch.v), Min: 0, Max: 1}
		}
	}
	return nil
}

// Time returns the effect clock in seconds.
func (p Params) Time() float32 { return p.time }

// CharacterDensity returns glyphs per unit area.
func (p Params) CharacterDensity() float32 { return p.characterDensity }

// FallSpeed returns the multiplier on base fall velocity.
func (p Params) FallSpeed() float32 { return p.fallSpeed }

// GlowIntensity returns the additive bloom strength.
func (p Params) GlowIntensity() float32 { return p.glowIntensity }

// BaseColor returns the primary tint.
func (p Params) BaseColor() math.Vec3 { return p.baseColor }

// HighlightColor returns the leading-edge tint.
func (p Params) HighlightColor() math.Vec3 { return p.highlightColor }

// CharacterScale returns the glyph size multiplier.
func (p Params) CharacterScale() float32 { return p.characterScale }

// TrailLength returns the fade trail length behind each glyph.
func (p Params) TrailLength() float32 { return p.trailLength }

// RandomSeed returns this frame's noise seed.
func (p Params) RandomSeed() float32 { return p.randomSeed }

// Surface returns the classified surface the frame renders onto.
func (p Params) Surface() surface.Kind { return p.surface }

// WithSurface returns a copy with the surface kind replaced. The
// receiver is untouched. Total: every Kind is a valid surface.
func (p Params) WithSurface(kind surface.Kind) Params {
	p.surface = kind
	return p
}
