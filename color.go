package hdr2d

import (
	"image/color"
	"math"
)

// Color is an RGBA color on the 0-255 scale. Components are not clamped:
// HDR values may be negative or exceed 255.
type Color struct {
	R, G, B, A float64
}

// RGB creates a color with the default alpha of 255.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from all four components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to a non-premultiplied Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: float64(n.R), G: float64(n.G), B: float64(n.B), A: float64(n.A)}
}

// NRGBA converts the color to 8 bits per channel, clamping to [0, 255]
// and rounding half to even.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: toByte(c.A)}
}

// toByte stores a float the way a clamped byte array does: NaN becomes 0,
// values are clamped to [0, 255] and rounded half to even.
func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)
