// Package section derives per-section render state for the content pane
package section

import "math"

// Axis is the direction sections travel in
type Axis uint8

const (
	// Vertical stacks sections top to bottom, used with wheel input
	Vertical Axis = iota
	// Horizontal lays sections side by side, used with drag input
	Horizontal
)

// String returns the axis name
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// RenderState is how one section should be drawn
// Offset is in viewport lengths along the axis: 0 is on screen, -1 already passed, +1 upcoming
type RenderState struct {
	Index       int
	Offset      float64
	Opacity     float64
	Visible     bool
	Interactive bool
}

// View is the navigation input for one frame
type View struct {
	Active     int
	Dragging   bool
	DragOffset float64
}

// Navigator maps a view to render states for a fixed number of sections
type Navigator struct {
	count int
	axis  Axis
}

// NewNavigator creates a navigator for count sections along axis
func NewNavigator(count int, axis Axis) Navigator {
	if count < 0 {
		count = 0
	}
	return Navigator{count: count, axis: axis}
}

// Count returns the number of sections
func (n Navigator) Count() int {
	return n.count
}

// Axis returns the travel axis
func (n Navigator) Axis() Axis {
	return n.axis
}

// States returns one render state per section
func (n Navigator) States(v View) []RenderState {
	return n.AppendStates(make([]RenderState, 0, n.count), v)
}

// AppendStates appends the render states for v to dst
func (n Navigator) AppendStates(dst []RenderState, v View) []RenderState {
	if n.count == 0 {
		return dst
	}
	active := clampIndex(v.Active, n.count)
	if !v.Dragging || math.IsNaN(v.DragOffset) {
		return n.atRest(dst, active)
	}
	return n.dragging(dst, active, clamp(v.DragOffset, -1, 1))
}

// atRest shows only the active section; passed sections sit at -1 and upcoming ones at +1
func (n Navigator) atRest(dst []RenderState, active int) []RenderState {
	for i := 0; i < n.count; i++ {
		rs := RenderState{Index: i}
		switch {
		case i == active:
			rs.Opacity = 1
			rs.Visible = true
			rs.Interactive = true
		case i < active:
			rs.Offset = -1
		default:
			rs.Offset = 1
		}
		dst = append(dst, rs)
	}
	return dst
}

// dragging positions previous, current and next proportionally to the live drag
func (n Navigator) dragging(dst []RenderState, active int, offset float64) []RenderState {
	for i := 0; i < n.count; i++ {
		d := i - active
		rs := RenderState{Index: i}
		if d >= -1 && d <= 1 {
			rs.Offset = float64(d) + offset
			if a := math.Abs(rs.Offset); a < 1 {
				rs.Opacity = 1 - a
				rs.Visible = true
			}
		} else if d < 0 {
			rs.Offset = -1
		} else {
			rs.Offset = 1
		}
		if !rs.Visible {
			rs.Offset = clamp(rs.Offset, -1, 1)
		}
		dst = append(dst, rs)
	}
	return dst
}

func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
