package hue

import (
	"fmt"
	"image/color"
	"math"
)

// Component is the set of numeric types a colour channel may carry.
// Producers enforce value ranges; the types themselves only bound the
// representation (uint8 channels are range-safe by construction).
type Component interface {
	~uint8 | ~uint16 | ~uint32 | ~int | ~float32 | ~float64
}

// RGB is an ordered (R, G, B) triple over a uniform channel type.
type RGB[T Component] struct {
	R, G, B T
}

// NewRGB creates an alpha-less colour from three channel values.
func NewRGB[T Component](r, g, b T) RGB[T] {
	return RGB[T]{R: r, G: g, B: b}
}

// WithAlpha adds an alpha channel, producing the 4-channel form.
func (c RGB[T]) WithAlpha(a T) RGBA[T] {
	return RGBA[T]{R: c.R, G: c.G, B: c.B, A: a}
}

func (c RGB[T]) String() string {
	return fmt.Sprintf("rgb(%v, %v, %v)", c.R, c.G, c.B)
}

// MapRGB applies f to each channel in R, G, B order, producing a colour
// over a possibly different channel type.
func MapRGB[T, U Component](c RGB[T], f func(T) U) RGB[U] {
	return RGB[U]{R: f(c.R), G: f(c.G), B: f(c.B)}
}

// RGBA is an ordered (R, G, B, A) quadruple over a uniform channel type.
type RGBA[T Component] struct {
	R, G, B, A T
}

// NewRGBA creates a colour from four channel values.
func NewRGBA[T Component](r, g, b, a T) RGBA[T] {
	return RGBA[T]{R: r, G: g, B: b, A: a}
}

// WithAlpha returns a copy of the colour with the alpha channel replaced.
func (c RGBA[T]) WithAlpha(a T) RGBA[T] {
	c.A = a
	return c
}

// RGB drops the alpha channel.
func (c RGBA[T]) RGB() RGB[T] {
	return RGB[T]{R: c.R, G: c.G, B: c.B}
}

func (c RGBA[T]) String() string {
	return fmt.Sprintf("rgba(%v, %v, %v, %v)", c.R, c.G, c.B, c.A)
}

// MapRGBA applies f to each channel in R, G, B, A order, producing a
// colour over a possibly different channel type.
func MapRGBA[T, U Component](c RGBA[T], f func(T) U) RGBA[U] {
	return RGBA[U]{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}

// Canonical is the interchange representation every codec produces and
// consumes: four 8-bit unsigned channels in R, G, B, A order. Equality
// is exact, channel-wise ==.
type Canonical = RGBA[uint8]

// Opaque is the fully opaque alpha value.
const Opaque uint8 = 0xff

// New creates a canonical colour. Every uint8 quadruple is valid, so
// there is no error path.
func New(r, g, b, a uint8) Canonical {
	return Canonical{R: r, G: g, B: b, A: a}
}

// FromFloats maps 0.0–1.0 channel values into canonical 8-bit space:
// 0.0→0, 1.0→255, linear in between, rounded to nearest. Inputs outside
// [0, 1] are clamped.
func FromFloats(r, g, b, a float64) Canonical {
	return Canonical{
		R: uint8(math.Round(clamp01(r) * 255)),
		G: uint8(math.Round(clamp01(g) * 255)),
		B: uint8(math.Round(clamp01(b) * 255)),
		A: uint8(math.Round(clamp01(a) * 255)),
	}
}

// Floats returns the 0.0–1.0 view of a canonical colour.
func Floats(c Canonical) RGBA[float64] {
	return MapRGBA(c, func(v uint8) float64 { return float64(v) / 255 })
}

// NRGBA converts a canonical colour to the standard library's
// non-premultiplied form.
func NRGBA(c Canonical) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to the canonical form.
func FromColor(c color.Color) Canonical {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Canonical{R: n.R, G: n.G, B: n.B, A: n.A}
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
