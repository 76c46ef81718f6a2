package render

import (
	"strings"

	"github.com/lixenwraith/scrollway/content"
)

// drawHeader draws the logo on the left and the links right-aligned; the second row is a rule
func drawHeader(buf *RenderBuffer, area Rect, h content.Header) {
	if area.Empty() {
		return
	}
	buf.Fill(area, RgbHeader, 1)

	gold0 := MustHex(content.BannerGradient[0])
	gold1 := MustHex(content.BannerGradient[len(content.BannerGradient)-1])
	logo := paneLine{Text: "◆ " + h.Logo, From: gold0, To: gold1, Bold: true}
	drawGradientLine(buf, area, area.X+2, area.Y, logo, RgbHeader, 1)

	labels := make([]string, len(h.Links))
	for i, l := range h.Links {
		labels[i] = l.Label
	}
	links := strings.Join(labels, "   ")
	if x := area.X + area.W - 2 - TextWidth(links); x > area.X+2+TextWidth(logo.Text)+2 {
		DrawText(buf, x, area.Y, links, RgbHeaderLink, RgbHeader, BlendReplace, 1, area.W)
	}

	if area.H > 1 {
		rule := RgbHeader.Blend(RgbSceneDim, 0.8)
		for x := area.X; x < area.X+area.W; x++ {
			buf.Set(x, area.Y+1, '─', rule, RgbHeader, BlendReplace, 1)
		}
	}
}

// drawStatus writes the registry lines on the last row of area
func drawStatus(buf *RenderBuffer, area Rect, lines []string) {
	if area.Empty() || len(lines) == 0 {
		return
	}
	y := area.Y + area.H - 1
	buf.Fill(Rect{X: area.X, Y: y, W: area.W, H: 1}, RgbBlack, 1)
	DrawText(buf, area.X, y, strings.Join(lines, " "), RgbStatusText, RgbBlack, BlendReplace, 1, area.W)
}
