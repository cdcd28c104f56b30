package element

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with float channels in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	return c.colorful().Clamped().Hex()
}

// Glow blends the color toward a hot white-yellow by t in [0, 1]. Used to
// show energy carried by reaction products.
func (c RGBA) Glow(t float64) RGBA {
	if t <= 0 {
		return c
	}
	if t > 1 {
		t = 1
	}
	hot := colorful.Color{R: 1, G: 0.95, B: 0.6}
	b := c.colorful().BlendLab(hot, t).Clamped()
	return RGBA{R: b.R, G: b.G, B: b.B, A: c.A}
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func rgb(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}
