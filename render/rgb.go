package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// ParseHex converts "#rrggbb" or "#rgb"; ok is false for anything else
func ParseHex(hex string) (RGB, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, false
	}
	return fromColorful(c), true
}

// MustHex is ParseHex for compile-time palette entries
func MustHex(hex string) RGB {
	c, ok := ParseHex(hex)
	if !ok {
		panic("render: bad colour " + hex)
	}
	return c
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return fromColorful(dst.colorful().BlendRgb(src.colorful(), alpha))
}

// Gradient interpolates from dst to src in Lab space, which keeps midpoints from going muddy
func (dst RGB) Gradient(src RGB, t float64) RGB {
	if t <= 0 {
		return dst
	}
	if t >= 1 {
		return src
	}
	return fromColorful(dst.colorful().BlendLab(src.colorful(), t))
}

// Hex formats the colour as "#rrggbb"
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// Tcell converts to a tcell true colour
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
