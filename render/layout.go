package render

import "github.com/lixenwraith/scrollway/parameter"

// Layout splits the screen into header, content pane and scene
type Layout struct {
	Screen Rect
	Header Rect
	Pane   Rect
	Scene  Rect
}

// NewLayout computes the regions for a width x height screen
// The pane is dropped when it would be narrower than MinPaneWidth
func NewLayout(width, height int) Layout {
	l := Layout{Screen: Rect{W: width, H: height}}
	if width <= 0 || height <= 0 {
		return l
	}

	headerH := min(parameter.HeaderHeight, height)
	l.Header = Rect{W: width, H: headerH}
	body := Rect{Y: headerH, W: width, H: height - headerH}

	paneW := int(float64(width) * parameter.PaneWidthRatio)
	if paneW < parameter.MinPaneWidth {
		l.Scene = body
		return l
	}
	l.Pane = Rect{X: 0, Y: body.Y, W: paneW, H: body.H}
	l.Scene = Rect{X: paneW, Y: body.Y, W: width - paneW, H: body.H}
	return l
}
