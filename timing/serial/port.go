package serial

import "fmt"

// PortWidth is the number of data bits moved per cycle in each direction.
type PortWidth int

const (
	// Nibble moves 4 bits per cycle: 4 input cycles, 4 output chunks.
	Nibble PortWidth = 4
	// Byte moves 8 bits per cycle: 2 input cycles, 2 output chunks.
	Byte PortWidth = 8
)

// ParsePortWidth converts a bit count into a PortWidth.
func ParsePortWidth(bits int) (PortWidth, error) {
	switch PortWidth(bits) {
	case Nibble, Byte:
		return PortWidth(bits), nil
	default:
		return 0, fmt.Errorf("unsupported port width %d (want 4 or 8)", bits)
	}
}

// Valid reports whether w is a supported width.
func (w PortWidth) Valid() bool {
	return w == Nibble || w == Byte
}

// Bits returns the width in bits.
func (w PortWidth) Bits() int {
	return int(w)
}

// Mask returns the mask of the data bits used on the port.
func (w PortWidth) Mask() uint8 {
	if w == Nibble {
		return 0x0F
	}
	return 0xFF
}

// FrameCycles is the number of input cycles needed for both operands.
func (w PortWidth) FrameCycles() int {
	return 16 / int(w)
}

// Chunks is the number of output sub-cycles needed for one 16-bit result.
func (w PortWidth) Chunks() int {
	return 16 / int(w)
}

// Chunk extracts output chunk phase from v. Phase 0 is the most significant
// chunk.
func (w PortWidth) Chunk(v uint16, phase int) uint8 {
	shift := uint(w) * uint(w.Chunks()-1-phase)
	return uint8(v>>shift) & w.Mask()
}

// Place inserts chunk data at the given phase of v.
func (w PortWidth) Place(v uint16, phase int, data uint8) uint16 {
	shift := uint(w) * uint(w.Chunks()-1-phase)
	mask := uint16(w.Mask()) << shift
	return v&^mask | uint16(data&w.Mask())<<shift
}

// Split returns the chunks of the operand pair in input order: operand A
// before B, least significant chunk first within an operand.
func (w PortWidth) Split(a, b uint8) []uint8 {
	if w == Nibble {
		return []uint8{a & 0x0F, a >> 4, b & 0x0F, b >> 4}
	}
	return []uint8{a, b}
}

// String implements fmt.Stringer.
func (w PortWidth) String() string {
	switch w {
	case Nibble:
		return "nibble"
	case Byte:
		return "byte"
	default:
		return fmt.Sprintf("PortWidth(%d)", int(w))
	}
}
