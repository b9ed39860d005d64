package effect

import (
	"encoding/binary"
	stdmath "math"

	"github.com/Faultbox/matrix-rain/pkg/math"
)

// VertexSize is the byte size of one packed vertex. 8 float32 fields,
// tightly packed.
const VertexSize = 32

// Vertex is the per-vertex geometry record shared with the rendering
// backend: position, normal (unit length by convention, not enforced
// here), texture coordinate. Passive data; mesh generation owns any
// validation.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// Marshal serializes the vertex into the little-endian layout the
// rendering backend binds as a vertex buffer: position, normal,
// texcoord, in that order. Same stability contract as Params.Marshal.
func (v Vertex) Marshal() []byte {
	buf := make([]byte, VertexSize)
	binary.LittleEndian.PutUint32(buf[0:4], stdmath.Float32bits(v.Position.X))
	binary.LittleEndian.PutUint32(buf[4:8], stdmath.Float32bits(v.Position.Y))
	binary.LittleEndian.PutUint32(buf[8:12], stdmath.Float32bits(v.Position.Z))
	binary.LittleEndian.PutUint32(buf[12:16], stdmath.Float32bits(v.Normal.X))
	binary.LittleEndian.PutUint32(buf[16:20], stdmath.Float32bits(v.Normal.Y))
	binary.LittleEndian.PutUint32(buf[20:24], stdmath.Float32bits(v.Normal.Z))
	binary.LittleEndian.PutUint32(buf[24:28], stdmath.Float32bits(v.TexCoord.X))
	binary.LittleEndian.PutUint32(buf[28:32], stdmath.Float32bits(v.TexCoord.Y))
	return buf
}

// MarshalVertices packs a mesh rebuild's vertex stream into one
// contiguous buffer.
func MarshalVertices(vs []Vertex) []byte {
	buf := make([]byte, 0, len(vs)*VertexSize)
	for _, v := range vs {
		buf = append(buf, v.Marshal()...)
	}
	return buf
}
