package render

import (
	"math"
	"strings"

	"github.com/lixenwraith/scrollway/content"
	"github.com/lixenwraith/scrollway/parameter"
	"github.com/lixenwraith/scrollway/section"
)

const ruleWidth = 10

// paneLine is one laid-out row of a section; From == To for plain text
type paneLine struct {
	Text     string
	From, To RGB
	Bold     bool
}

// layoutSection lays s out for a column width wide
func layoutSection(s content.Section, width int) []paneLine {
	if width <= 0 {
		return nil
	}
	var lines []paneLine
	add := func(text string, from, to RGB, bold bool) {
		lines = append(lines, paneLine{Text: text, From: from, To: to, Bold: bold})
	}
	blank := func() { add("", RgbPaneText, RgbPaneText, false) }

	fromHex, toHex := content.TitleGradient(s)
	from, _ := ParseHex(fromHex)
	to, _ := ParseHex(toHex)
	if s.Banner {
		add("◆ "+strings.ToUpper(s.Title), from, to, true)
	} else {
		for _, l := range Wrap(strings.ToUpper(s.Title), width) {
			add(l, from, to, true)
		}
		add(strings.Repeat("─", min(ruleWidth, width)), RgbWhite, RgbWhite, false)
	}
	blank()

	for _, l := range Wrap(s.Description, width) {
		add(l, RgbPaneText, RgbPaneText, false)
	}

	if len(s.Details) > 0 {
		blank()
		for _, d := range s.Details {
			for i, l := range Wrap(d, width-2) {
				prefix := "  "
				if i == 0 {
					prefix = "▸ "
				}
				add(prefix+l, RgbPaneText, RgbPaneText, false)
			}
		}
	}

	if s.Subtitle != "" {
		blank()
		sub, ok := ParseHex(s.SubtitleColor)
		if !ok {
			sub = RgbPaneText
		}
		for _, l := range Wrap(s.Subtitle, width) {
			add(l, sub, sub, false)
		}
	}
	return lines
}

// drawPane draws the content pane for the given render states
// Vertical sections are stacked and the active one centred; horizontal ones slide by their offset
func drawPane(buf *RenderBuffer, area Rect, doc *content.Document, states []section.RenderState, axis section.Axis) {
	if area.Empty() {
		return
	}
	buf.Fill(area, RgbPane, 1)

	inner := Rect{X: area.X + parameter.PanePaddingX, Y: area.Y, W: area.W - 2*parameter.PanePaddingX, H: area.H}
	if inner.W <= 0 {
		return
	}

	laid := make([][]paneLine, len(doc.Sections))
	extents := make([]section.Extent, len(doc.Sections))
	top := 0.0
	for i, s := range doc.Sections {
		laid[i] = layoutSection(s, inner.W)
		h := float64(max(len(laid[i]), inner.H))
		extents[i] = section.Extent{Top: top, Height: h, Measured: true}
		top += h
	}

	for _, rs := range states {
		if !rs.Visible || rs.Index < 0 || rs.Index >= len(laid) {
			continue
		}
		lines := laid[rs.Index]
		// Each section block is at least one pane tall, its text centred inside
		y := inner.Y + (inner.H-len(lines))/2
		x := inner.X
		if axis == section.Vertical {
			scroll, ok := section.CenterScroll(extents, rs.Index, float64(inner.H))
			if ok {
				blockTop := extents[rs.Index].Top - scroll
				y = inner.Y + int(math.Round(blockTop+(extents[rs.Index].Height-float64(len(lines)))/2))
			}
		} else {
			x += int(math.Round(rs.Offset * float64(area.W)))
		}
		for i, l := range lines {
			drawGradientLine(buf, area, x, y+i, l, RgbPane, rs.Opacity)
		}
	}
}

// drawGradientLine writes l at x, y clipped to clip, composited at alpha over bg
func drawGradientLine(buf *RenderBuffer, clip Rect, x, y int, l paneLine, bg RGB, alpha float64) {
	if y < clip.Y || y >= clip.Y+clip.H || l.Text == "" {
		return
	}
	span := float64(max(TextWidth(l.Text)-1, 1))
	col := x
	for _, r := range l.Text {
		w := TextWidth(string(r))
		if w == 0 {
			continue
		}
		if col >= clip.X && col+w <= clip.X+clip.W {
			fg := l.From
			if l.From != l.To {
				fg = l.From.Gradient(l.To, float64(col-x)/span)
			}
			buf.Set(col, y, r, fg, bg, blendFor(alpha), alpha)
			buf.SetBold(col, y, l.Bold)
		}
		col += w
	}
}
