// Package surface classifies detected AR surfaces and derives the
// render pose the rain effect uses on each of them.
package surface

// Kind identifies the physical orientation of a detected surface.
// The numeric values are part of the GPU parameter block contract
// and must not be reordered.
type Kind int32

const (
	Wall    Kind = 0
	Floor   Kind = 1
	Ceiling Kind = 2
	Unknown Kind = 3
)

// String returns a human-readable name for logging.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Ceiling:
		return "ceiling"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}
