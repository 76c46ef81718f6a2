package render

import (
	"github.com/lixenwraith/scrollway/content"
)

// Button is a hit area on the final page
type Button struct {
	Rect Rect
	Link content.Link
}

// drawFinal composites the final page over area at alpha and returns the action buttons
func drawFinal(buf *RenderBuffer, area Rect, page content.FinalPage, alpha float64) []Button {
	if area.Empty() || alpha <= 0 {
		return nil
	}
	buf.Fill(area, RgbFinal, alpha)

	gold0 := MustHex(content.BannerGradient[0])
	gold1 := MustHex(content.BannerGradient[len(content.BannerGradient)-1])

	// Heading, tagline, gap, buttons
	blockH := 5
	y := area.Y + (area.H-blockH)/2

	heading := paneLine{Text: page.Heading, From: gold0, To: gold1, Bold: true}
	drawGradientLine(buf, area, Centered(area, page.Heading), y, heading, RgbFinal, alpha)
	tagline := paneLine{Text: page.Tagline, From: RgbPaneText, To: RgbPaneText}
	drawGradientLine(buf, area, Centered(area, page.Tagline), y+2, tagline, RgbFinal, alpha)

	var buttons []Button
	labels := make([]string, len(page.Actions))
	total := 0
	for i, a := range page.Actions {
		labels[i] = "  " + a.Label + "  "
		total += TextWidth(labels[i])
	}
	if len(labels) > 1 {
		total += 2 * (len(labels) - 1)
	}
	x := area.X + (area.W-total)/2
	by := y + 4
	for i, label := range labels {
		fg, bg := RgbButtonText, RgbButton
		if i > 0 {
			fg, bg = RgbWhite, RgbButtonAlt
		}
		w := TextWidth(label)
		rect := Rect{X: x, Y: by, W: w, H: 1}.Intersect(area)
		if !rect.Empty() {
			DrawText(buf, x, by, label, fg, bg, blendFor(alpha), alpha, area.X+area.W-x)
			buttons = append(buttons, Button{Rect: rect, Link: page.Actions[i]})
		}
		x += w + 2
	}

	if page.Footer != "" {
		footer := paneLine{Text: page.Footer, From: RgbSceneDim.Blend(RgbWhite, 0.5), To: RgbSceneDim.Blend(RgbWhite, 0.5)}
		drawGradientLine(buf, area, Centered(area, page.Footer), area.Y+area.H-1, footer, RgbFinal, alpha)
	}
	return buttons
}

func blendFor(alpha float64) BlendMode {
	if alpha >= 1 {
		return BlendReplace
	}
	return BlendAlpha
}
