package content

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Darken scales each channel of a hex colour by (1 - percent/100), flooring to integer levels
func Darken(hex string, percent float64) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("darken %q: %w", hex, err)
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	k := 1 - percent/100
	r, g, b := c.RGB255()
	scale := func(v uint8) float64 {
		return math.Max(0, math.Floor(float64(v)*k)) / 255
	}
	return colorful.Color{R: scale(r), G: scale(g), B: scale(b)}.Hex(), nil
}

// TitleGradient returns the start and end colour of a section title
func TitleGradient(s Section) (from, to string) {
	if s.Banner {
		return BannerGradient[0], BannerGradient[len(BannerGradient)-1]
	}
	to, err := Darken(s.TitleColor, TitleDarkenPercent)
	if err != nil {
		return s.TitleColor, s.TitleColor
	}
	return s.TitleColor, to
}
