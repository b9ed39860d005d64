package effect

import (
	"encoding/binary"
	stdmath "math"
)

// ParamsSize is the byte size of the packed parameter block uploaded
// each frame. 13 float32 fields plus one int32, tightly packed.
const ParamsSize = 56

// Marshal serializes the parameter set into the little-endian block
// the rendering backend consumes verbatim each frame. Field order and
// widths are contract: time, characterDensity, fallSpeed,
// glowIntensity, baseColor (rgb), highlightColor (rgb),
// characterScale, trailLength, randomSeed, surfaceType (int32).
// Reordering or resizing any field is a breaking change.
func (p Params) Marshal() []byte {
	buf := make([]byte, ParamsSize)
	binary.LittleEndian.PutUint32(buf[0:4], stdmath.Float32bits(p.time))
	binary.LittleEndian.PutUint32(buf[4:8], stdmath.Float32bits(p.characterDensity))
	binary.LittleEndian.PutUint32(buf[8:12], stdmath.Float32bits(p.fallSpeed))
	binary.LittleEndian.PutUint32(buf[12:16], stdmath.Float32bits(p.glowIntensity))
	binary.LittleEndian.PutUint32(buf[16:20], stdmath.Float32bits(p.baseColor.X))
	binary.LittleEndian.PutUint32(buf[20:24], stdmath.Float32bits(p.baseColor.Y))
	binary.LittleEndian.PutUint32(buf[24:28], stdmath.Float32bits(p.baseColor.Z))
	binary.LittleEndian.PutUint32(buf[28:32], stdmath.Float32bits(p.highlightColor.X))
	binary.LittleEndian.PutUint32(buf[32:36], stdmath.Float32bits(p.highlightColor.Y))
	binary.LittleEndian.PutUint32(buf[36:40], stdmath.Float32bits(p.highlightColor.Z))
	binary.LittleEndian.PutUint32(buf[40:44], stdmath.Float32bits(p.characterScale))
	binary.LittleEndian.PutUint32(buf[44:48], stdmath.Float32bits(p.trailLength))
	binary.LittleEndian.PutUint32(buf[48:52], stdmath.Float32bits(p.randomSeed))
	binary.LittleEndian.PutUint32(buf[52:56], uint32(p.surface))
	return buf
}
