// Package render composes the terminal frame: header, content pane, scene, final page and debug status
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollway/content"
	"github.com/lixenwraith/scrollway/engine"
	"github.com/lixenwraith/scrollway/status"
)

// Renderer draws engine snapshots to a tcell screen
type Renderer struct {
	screen  tcell.Screen
	buf     *RenderBuffer
	layout  Layout
	doc     content.Document
	scene   Scene
	reg     *status.Registry
	buttons []Button
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen, doc content.Document, scene Scene) *Renderer {
	w, h := screen.Size()
	r := &Renderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
		doc:    doc,
		scene:  scene,
	}
	r.layout = NewLayout(w, h)
	return r
}

// NewBufferRenderer creates a renderer with no screen, for frontends that only Compose and read the Buffer
func NewBufferRenderer(width, height int, doc content.Document, scene Scene) *Renderer {
	return &Renderer{
		buf:    NewRenderBuffer(width, height),
		layout: NewLayout(width, height),
		doc:    doc,
		scene:  scene,
	}
}

// SetStatus enables the debug status row fed from reg; nil disables it
func (r *Renderer) SetStatus(reg *status.Registry) {
	r.reg = reg
}

// Resize adapts the buffer and layout to a new screen size
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
	r.layout = NewLayout(width, height)
	r.buttons = nil
}

// Layout returns the current regions
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Buffer returns the composited frame
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// Compose builds the frame for s into the buffer without touching the screen
func (r *Renderer) Compose(s engine.Snapshot) {
	r.buf.Clear(RgbBackground)
	r.buttons = r.buttons[:0]

	if r.scene != nil {
		r.scene.Draw(r.buf, r.layout.Scene, s.Progress)
	}
	drawPane(r.buf, r.layout.Pane, &r.doc, s.Sections, s.Axis)
	drawHeader(r.buf, r.layout.Header, r.doc.Header)

	buttons := drawFinal(r.buf, r.layout.Screen, r.doc.Final, s.Overlay)
	// Partially faded pages are click-through
	if s.OverlayInteractive {
		r.buttons = append(r.buttons, buttons...)
	}

	if r.reg != nil {
		drawStatus(r.buf, r.layout.Screen, r.reg.Lines())
	}
}

// Draw composes s and shows it; without a screen it only composes
func (r *Renderer) Draw(s engine.Snapshot) {
	r.Compose(s)
	if r.screen == nil {
		return
	}
	r.buf.Flush(r.screen)
	r.screen.Show()
}

// HitTest returns the final page action under the cell x, y, only while the page is interactive
func (r *Renderer) HitTest(x, y int) (content.Link, bool) {
	for _, b := range r.buttons {
		if b.Rect.Contains(x, y) {
			return b.Link, true
		}
	}
	return content.Link{}, false
}
