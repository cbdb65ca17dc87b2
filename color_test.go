package hue

import (
	"fmt"
	"image/color"
	"testing"
)

// Verify at compile time that colour values print themselves.
var (
	_ fmt.Stringer = Canonical{}
	_ fmt.Stringer = RGB[uint8]{}
)

func TestRGBWithAlpha(t *testing.T) {
	rgb := NewRGB[uint8](255, 0, 0)

	got := rgb.WithAlpha(128)
	want := NewRGBA[uint8](255, 0, 0, 128)
	if got != want {
		t.Errorf("WithAlpha(128) = %v, want %v", got, want)
	}
}

func TestRGBAWithAlpha(t *testing.T) {
	c := New(12, 34, 56, 78)

	got := c.WithAlpha(0)
	if got != New(12, 34, 56, 0) {
		t.Errorf("WithAlpha(0) = %v, want alpha replaced", got)
	}
	// The original value is untouched.
	if c.A != 78 {
		t.Errorf("receiver mutated: alpha = %d, want 78", c.A)
	}
}

func TestRGBARoundTripThroughRGB(t *testing.T) {
	tests := []struct {
		name  string
		rgb   RGB[uint8]
		alpha uint8
	}{
		{"opaque red", NewRGB[uint8](255, 0, 0), 255},
		{"translucent", NewRGB[uint8](128, 0, 10), 128},
		{"transparent black", NewRGB[uint8](0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rgba := tt.rgb.WithAlpha(tt.alpha)
			if rgba.A != tt.alpha {
				t.Errorf("alpha = %d, want %d", rgba.A, tt.alpha)
			}
			if back := rgba.RGB(); back != tt.rgb {
				t.Errorf("RGB() = %v, want %v", back, tt.rgb)
			}
		})
	}
}

func TestMapRGB(t *testing.T) {
	rgb := NewRGB[uint8](255, 12, 0)

	mapped := MapRGB(rgb, func(v uint8) float64 { return float64(v) / 255 * 100 })
	if absDiff(mapped.R, 100) > 0.001 ||
		absDiff(mapped.G, 12.0/255*100) > 0.001 ||
		absDiff(mapped.B, 0) > 0.001 {
		t.Errorf("MapRGB() = %v", mapped)
	}
}

func TestMapRGBA(t *testing.T) {
	rgba := New(255, 12, 0, 128)

	mapped := MapRGBA(rgba, func(v uint8) float64 { return float64(v) / 255 * 100 })
	if absDiff(mapped.R, 100) > 0.001 ||
		absDiff(mapped.G, 12.0/255*100) > 0.001 ||
		absDiff(mapped.B, 0) > 0.001 ||
		absDiff(mapped.A, 128.0/255*100) > 0.001 {
		t.Errorf("MapRGBA() = %v", mapped)
	}
}

func TestFromFloats(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		want       Canonical
	}{
		{"black opaque", 0, 0, 0, 1, New(0, 0, 0, 255)},
		{"white transparent", 1, 1, 1, 0, New(255, 255, 255, 0)},
		{"midpoints round", 0.5, 0.123, 0.1010, 0.90, New(128, 31, 26, 230)},
		{"out of range clamps", 1.5, -0.2, 0, 1, New(255, 0, 0, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFloats(tt.r, tt.g, tt.b, tt.a); got != tt.want {
				t.Errorf("FromFloats(%v, %v, %v, %v) = %v, want %v",
					tt.r, tt.g, tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestFloats(t *testing.T) {
	f := Floats(New(255, 0, 51, 255))
	if absDiff(f.R, 1) > 0.001 ||
		absDiff(f.G, 0) > 0.001 ||
		absDiff(f.B, 0.2) > 0.001 ||
		absDiff(f.A, 1) > 0.001 {
		t.Errorf("Floats() = %v", f)
	}
}

func TestString(t *testing.T) {
	if got := New(1, 2, 3, 4).String(); got != "rgba(1, 2, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
	if got := NewRGB[uint8](1, 2, 3).String(); got != "rgb(1, 2, 3)" {
		t.Errorf("String() = %q", got)
	}
}

func TestStdColorRoundtrip(t *testing.T) {
	tests := []Canonical{
		New(0, 0, 0, 255),
		New(255, 255, 255, 255),
		New(10, 20, 30, 255),
		New(10, 20, 30, 0),
	}

	for _, c := range tests {
		var std color.Color = NRGBA(c)
		if got := FromColor(std); got != c {
			t.Errorf("FromColor(NRGBA(%v)) = %v", c, got)
		}
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
