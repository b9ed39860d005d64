package effect

import (
	"encoding/binary"
	stdmath "math"
	"testing"

	"github.com/Faultbox/matrix-rain/internal/surface"
	"github.com/Faultbox/matrix-rain/pkg/math"
)

func f32At(t *testing.T, buf []byte, off int) float32 {
	t.Helper()
	return stdmath.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
}

func TestParamsMarshalLayout(t *testing.T) {
	s := Settings{
		Time:             1.5,
		CharacterDensity: 2.0,
		FallSpeed:        0.5,
		GlowIntensity:    1.25,
		BaseColor:        math.Vec3{X: 0.1, Y: 0.9, Z: 0.3},
		HighlightColor:   math.Vec3{X: 0.7, Y: 1.0, Z: 0.8},
		CharacterScale:   1.5,
		TrailLength:      12.0,
		RandomSeed:       0.25,
		Surface:          surface.Ceiling,
	}
	p, err := NewParams(s)
	if err != nil {
		t.Fatalf("NewParams() error: %v", err)
	}

	buf := p.Marshal()
	if len(buf) != ParamsSize {
		t.Fatalf("Marshal() length = %d, want %d", len(buf), ParamsSize)
	}

	// Contract offsets: any drift here breaks the rendering backend.
	offsets := []struct {
		name string
		off  int
		want float32
	}{
		{"time", 0, 1.5},
		{"characterDensity", 4, 2.0},
		{"fallSpeed", 8, 0.5},
		{"glowIntensity", 12, 1.25},
		{"baseColor.r", 16, 0.1},
		{"baseColor.g", 20, 0.9},
		{"baseColor.b", 24, 0.3},
		{"highlightColor.r", 28, 0.7},
		{"highlightColor.g", 32, 1.0},
		{"highlightColor.b", 36, 0.8},
		{"characterScale", 40, 1.5},
		{"trailLength", 44, 12.0},
		{"randomSeed", 48, 0.25},
	}
	for _, o := range offsets {
		if got := f32At(t, buf, o.off); got != o.want {
			t.Errorf("%s at offset %d = %v, want %v", o.name, o.off, got, o.want)
		}
	}

	if got := int32(binary.LittleEndian.Uint32(buf[52:56])); got != int32(surface.Ceiling) {
		t.Errorf("surfaceType at offset 52 = %d, want %d", got, int32(surface.Ceiling))
	}
}

func TestVertexMarshalLayout(t *testing.T) {
	v := Vertex{
		Position: math.Vec3{X: 1, Y: 2, Z: 3},
		Normal:   math.Vec3{X: 0, Y: 1, Z: 0},
		TexCoord: math.Vec2{X: 0.5, Y: 0.75},
	}

	buf := v.Marshal()
	if len(buf) != VertexSize {
		t.Fatalf("Marshal() length = %d, want %d", len(buf), VertexSize)
	}

	want := []float32{1, 2, 3, 0, 1, 0, 0.5, 0.75}
	for i, w := range want {
		if got := f32At(t, buf, i*4); got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestMarshalVertices(t *testing.T) {
	vs := []Vertex{
		{Position: math.Vec3{X: 1}},
		{Position: math.Vec3{X: 2}},
		{Position: math.Vec3{X: 3}},
	}

	buf := MarshalVertices(vs)
	if len(buf) != 3*VertexSize {
		t.Fatalf("buffer length = %d, want %d", len(buf), 3*VertexSize)
	}
	for i := range vs {
		if got := f32At(t, buf, i*VertexSize); got != vs[i].Position.X {
			t.Errorf("vertex %d position.x = %v, want %v", i, got, vs[i].Position.X)
		}
	}
}
