package colors

import (
	"image/color"
	"math"
)

// Color is a linear RGB color with float64 components.
// Components are not clamped; values outside [0,1] are legal until the
// color is converted for display.
type Color struct {
	R, G, B float64
}

func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements image/color.Color, clamping to [0,1] and treating the
// color as fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(clamp01(c.R) * 65535),
		uint32(clamp01(c.G) * 65535),
		uint32(clamp01(c.B) * 65535),
		65535
}

func FromStandardColor(c color.Color) Color {
	// Fast path: already a Color
	if cc, ok := c.(Color); ok {
		return cc
	}

	r16, g16, b16, a16 := c.RGBA()
	if a16 == 0 {
		return Color{}
	}

	// De-premultiply and normalize to [0,1]
	invA := float64(0xFFFF) / float64(a16)
	return Color{
		R: float64(r16) * invA / 65535.0,
		G: float64(g16) * invA / 65535.0,
		B: float64(b16) * invA / 65535.0,
	}
}

func Red() Color {
	return Color{R: 1, G: 0, B: 0}
}

func Blue() Color {
	return Color{R: 0, G: 0, B: 1}
}

func Green() Color {
	return Color{R: 0, G: 1, B: 0}
}

func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

func Black() Color {
	return Color{}
}

// Add returns c + o (component-wise).
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns c - o (component-wise).
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul returns c * o (component-wise, the Hadamard product).
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale returns c * s (scalar).
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mix returns lerp(c, o, t) = c*(1-t) + o*t.
func (c Color) Mix(o Color, t float64) Color {
	return Color{
		R: c.R*(1-t) + o.R*t,
		G: c.G*(1-t) + o.G*t,
		B: c.B*(1-t) + o.B*t,
	}
}

// Approx compares component-wise with tolerance eps.
func (c Color) Approx(o Color, eps float64) bool {
	return math.Abs(c.R-o.R) < eps &&
		math.Abs(c.G-o.G) < eps &&
		math.Abs(c.B-o.B) < eps
}

// ToNRGBA returns the color as opaque 8-bit channels, rounding to nearest.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		to8bit(c.R),
		to8bit(c.G),
		to8bit(c.B),
		255,
	}
}

// --- helpers ---

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8bit(x float64) uint8 {
	return uint8(math.Round(255.0 * clamp01(x)))
}
