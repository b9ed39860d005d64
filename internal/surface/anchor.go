package surface

import (
	stdmath "math"

	"github.com/Faultbox/matrix-rain/pkg/math"
)

// Anchor is the render pose of the effect on one detected surface:
// where the effect quad sits, which way it faces, and which way the
// glyphs fall across it.
type Anchor struct {
	Center math.Vec3
	Normal math.Vec3
	Kind   Kind
}

// NewAnchor builds an anchor for a detected plane. The normal is
// normalized; a zero normal is treated as facing the viewer (+Z).
func NewAnchor(center, normal math.Vec3, kind Kind) Anchor {
	if normal.Length() == 0 {
		normal = math.Vec3{Z: 1}
	}
	return Anchor{
		Center: center,
		Normal: normal.Normalize(),
		Kind:   kind,
	}
}

// Fall returns the unit direction glyphs travel across the surface
// plane. On walls (and unclassified surfaces) it is world-down
// projected into the plane; on floors and ceilings, where world-down
// leaves the plane, glyphs stream away from the viewer instead.
func (a Anchor) Fall() math.Vec3 {
	var ref math.Vec3
	switch a.Kind {
	case Floor, Ceiling:
		ref = math.Vec3{Z: -1}
	default:
		ref = math.Vec3{Y: -1}
	}

	// Project the reference direction into the surface plane.
	f := ref.Sub(a.Normal.Scale(ref.Dot(a.Normal)))
	if f.Length() < 0.0001 {
		// Reference is parallel to the normal; any in-plane
		// direction works, pick the projection of +X.
		f = math.Vec3{X: 1}.Sub(a.Normal.Scale(a.Normal.X))
	}
	return f.Normalize()
}

// Rotation returns the rotation taking the effect quad's local frame
// (+Z out of the quad, -Y down the quad) onto the surface.
func (a Anchor) Rotation() math.Quat {
	q := math.QuatBetween(math.Vec3{Z: 1}, a.Normal)

	// Roll around the normal so the quad's down axis lines up with
	// the fall direction.
	f0 := q.Rotate(math.Vec3{Y: -1})
	fall := a.Fall()
	sin := a.Normal.Dot(f0.Cross(fall))
	cos := f0.Dot(fall)
	roll := float32(stdmath.Atan2(float64(sin), float64(cos)))

	return math.QuatFromAxisAngle(a.Normal, roll).Mul(q)
}

// Model returns the model matrix placing the unit effect quad on the
// surface.
func (a Anchor) Model() math.Mat4 {
	return math.Translate(a.Center.X, a.Center.Y, a.Center.Z).
		Mul(a.Rotation().ToMat4())
}
