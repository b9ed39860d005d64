package surface

import (
	stdmath "math"

	"github.com/Faultbox/matrix-rain/pkg/math"
)

// Thresholds holds the angular cutoffs (in degrees, measured from
// world-up) used to classify a surface normal. Scene understanding
// tunes these to its tracking confidence; the defaults are a
// reasonable starting point.
type Thresholds struct {
	// FloorMaxDeg is the largest angle from world-up still counted
	// as an upward-facing surface.
	FloorMaxDeg float32 `yaml:"floor_max_deg"`
	// CeilingMinDeg is the smallest angle from world-up counted as
	// a downward-facing surface.
	CeilingMinDeg float32 `yaml:"ceiling_min_deg"`
	// WallBandDeg is the half-width of the band around 90 degrees
	// counted as vertical.
	WallBandDeg float32 `yaml:"wall_band_deg"`
}

// DefaultThresholds returns the standard classification cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FloorMaxDeg:   30,
		CeilingMinDeg: 150,
		WallBandDeg:   30,
	}
}

// ClassifyCode maps a pre-classified raw code from scene understanding
// to a Kind. Codes follow the legacy scheme (0 wall, 1 floor,
// 2 ceiling); any other value, including the explicit unknown
// sentinel 3, maps to Unknown. Total and deterministic.
func ClassifyCode(code int) Kind {
	switch code {
	case 0:
		return Wall
	case 1:
		return Floor
	case 2:
		return Ceiling
	}
	return Unknown
}

// ClassifyNormal maps a surface normal to a Kind by its angle from
// world-up. Normals inside the floor cone are Floor, inside the
// ceiling cone Ceiling, inside the vertical band Wall; anything
// oblique, and the zero vector, is Unknown. Total and deterministic.
func ClassifyNormal(n math.Vec3, th Thresholds) Kind {
	if n.Length() == 0 {
		return Unknown
	}
	n = n.Normalize()

	// Angle from world-up in degrees.
	cos := float64(n.Y)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	deg := float32(stdmath.Acos(cos) * 180 / stdmath.Pi)

	switch {
	case deg <= th.FloorMaxDeg:
		return Floor
	case deg >= th.CeilingMinDeg:
		return Ceiling
	case deg >= 90-th.WallBandDeg && deg <= 90+th.WallBandDeg:
		return Wall
	}
	return Unknown
}
