package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollway/input"
)

// Click is a press and release on the same cell without a drag in between
type Click struct {
	X, Y int
}

// MouseMapper translates tcell mouse reports into input events
// Wheel buttons become wheel deltas; the primary button stands in for a single touch
type MouseMapper struct {
	cellW, cellH float64
	wheelStep    float64

	pressed bool
	pressX  int
	pressY  int
	lastX   int
	moved   bool
}

// NewMouseMapper creates a mapper for the given cell size and wheel step, all in px
func NewMouseMapper(cellW, cellH, wheelStep float64) *MouseMapper {
	return &MouseMapper{cellW: cellW, cellH: cellH, wheelStep: wheelStep}
}

// Map converts one mouse report; click is set when a press is released in place
func (m *MouseMapper) Map(ev *tcell.EventMouse) (events []input.Event, click *Click) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	px := m.centerX(x)

	if buttons&tcell.WheelUp != 0 {
		events = append(events, input.Wheel(-m.wheelStep))
	}
	if buttons&tcell.WheelDown != 0 {
		events = append(events, input.Wheel(m.wheelStep))
	}

	down := buttons&tcell.Button1 != 0
	switch {
	case down && !m.pressed:
		m.pressed = true
		m.pressX, m.pressY, m.lastX = x, y, x
		m.moved = false
		events = append(events, input.TouchStart(px))
	case down && m.pressed:
		if x != m.lastX {
			m.lastX = x
			m.moved = true
			events = append(events, input.TouchMove(px))
		}
	case !down && m.pressed:
		m.pressed = false
		events = append(events, input.TouchEndAt(px))
		if !m.moved && x == m.pressX && y == m.pressY {
			click = &Click{X: x, Y: y}
		}
	}
	return events, click
}

// Cancel ends an in-flight press, used when focus or the screen is lost
func (m *MouseMapper) Cancel() []input.Event {
	if !m.pressed {
		return nil
	}
	m.pressed = false
	return []input.Event{input.TouchCancel()}
}

// Pressed reports whether the primary button is held
func (m *MouseMapper) Pressed() bool {
	return m.pressed
}

// Viewport converts a screen size in cells to px
func (m *MouseMapper) Viewport(cols, rows int) input.Event {
	return input.Resize(float64(cols)*m.cellW, float64(rows)*m.cellH)
}

// centerX is the px position of the middle of column x
func (m *MouseMapper) centerX(x int) float64 {
	return (float64(x) + 0.5) * m.cellW
}
