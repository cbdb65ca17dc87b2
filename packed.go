package hue

// Packed is a canonical colour encoded as one 32-bit unsigned integer
// with "RRGGBBAA" byte layout: R in bits 24–31 down to A in bits 0–7.
type Packed = uint32

// Bit offsets of each channel within a Packed value.
const (
	shiftRed   = 24
	shiftGreen = 16
	shiftBlue  = 8
)

// Pack encodes a canonical colour into its packed form. Each channel is
// at most 255 and lands in its own byte lane, so no overflow is possible.
func Pack(c Canonical) Packed {
	return Packed(c.R)<<shiftRed |
		Packed(c.G)<<shiftGreen |
		Packed(c.B)<<shiftBlue |
		Packed(c.A)
}

// Unpack decodes a packed value back into a canonical colour. Shifting
// right moves the wanted channel into the low 8 bits; the uint8
// conversion then discards everything above them, so no explicit mask is
// needed. Every 32-bit value is a valid packed colour, and
// Unpack(Pack(c)) == c and Pack(Unpack(p)) == p over the full range.
func Unpack(p Packed) Canonical {
	return Canonical{
		R: uint8(p >> shiftRed),
		G: uint8(p >> shiftGreen),
		B: uint8(p >> shiftBlue),
		A: uint8(p),
	}
}
