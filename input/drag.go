package input

import (
	"math"

	"github.com/lixenwraith/scrollway/parameter"
	"github.com/lixenwraith/scrollway/progress"
)

// DragSettings configures a DragNavigator
type DragSettings struct {
	Damping        float64
	SwipeThreshold float64
}

// DefaultDragSettings returns the parameter defaults
func DefaultDragSettings() DragSettings {
	return DragSettings{
		Damping:        parameter.DragDamping,
		SwipeThreshold: parameter.SwipeThresholdPx,
	}
}

// DragState is an in-flight gesture; the zero value is idle
type DragState struct {
	Active     bool
	StartX     float64
	CurrentX   float64
	HasStart   bool
	HasCurrent bool
	BaseIndex  int
}

// Commit describes the outcome of a released gesture
type Commit struct {
	From     int
	To       int
	Progress float64
	Final    bool
}

// Moved reports whether the gesture changed the committed index
func (c Commit) Moved() bool {
	return c.From != c.To
}

// DragNavigator turns horizontal drags into live progress and committed section indices
// Index len(snaps)-1 is the final page, reached only by swiping past the last section
type DragNavigator struct {
	target   Target
	snaps    []float64
	index    int
	drag     DragState
	viewport float64
	settings DragSettings
}

// NewDragNavigator creates a navigator at index 0
// snaps holds one progress value per section followed by the final page's value
func NewDragNavigator(target Target, snaps []float64, s DragSettings) *DragNavigator {
	if s.Damping <= 0 || math.IsNaN(s.Damping) {
		s.Damping = parameter.DragDamping
	}
	if s.SwipeThreshold <= 0 || math.IsNaN(s.SwipeThreshold) {
		s.SwipeThreshold = parameter.SwipeThresholdPx
	}
	cp := make([]float64, len(snaps))
	copy(cp, snaps)
	return &DragNavigator{target: target, snaps: cp, settings: s}
}

// SetViewport updates the width used to normalize drag distance
func (n *DragNavigator) SetViewport(width float64) {
	if width < 0 || math.IsNaN(width) {
		width = 0
	}
	n.viewport = width
}

// Start begins a gesture; a missing coordinate still enters dragging so the release resolves cleanly
func (n *DragNavigator) Start(x float64, hasX bool) {
	n.drag = DragState{
		Active:     true,
		StartX:     x,
		CurrentX:   x,
		HasStart:   hasX && !math.IsNaN(x),
		HasCurrent: hasX && !math.IsNaN(x),
		BaseIndex:  n.index,
	}
}

// Move tracks the finger and writes the live, non-quantized target
// Returns the live progress; outside a gesture it returns the current target unchanged
func (n *DragNavigator) Move(x float64, hasX bool) float64 {
	if !n.drag.Active {
		return n.target.Target()
	}
	if hasX && !math.IsNaN(x) {
		n.drag.CurrentX = x
		n.drag.HasCurrent = true
	}
	if !n.drag.HasStart || !n.drag.HasCurrent {
		return n.target.Target()
	}
	return n.target.SetTarget(n.liveProgress())
}

// End releases the gesture and commits to a section
// Displacement past the swipe threshold moves one index; anything else snaps back
func (n *DragNavigator) End(x float64, hasX bool) Commit {
	if n.drag.Active && hasX && !math.IsNaN(x) {
		n.drag.CurrentX = x
		n.drag.HasCurrent = true
	}

	from := n.index
	to := from
	if n.drag.Active && n.drag.HasStart && n.drag.HasCurrent {
		dist := n.drag.StartX - n.drag.CurrentX
		switch {
		case dist > n.settings.SwipeThreshold:
			to = n.drag.BaseIndex + 1
		case dist < -n.settings.SwipeThreshold:
			to = n.drag.BaseIndex - 1
		default:
			to = n.drag.BaseIndex
		}
	}

	n.drag = DragState{}
	return n.commit(from, to)
}

// Cancel aborts the gesture and snaps back to the committed section
func (n *DragNavigator) Cancel() Commit {
	n.drag = DragState{}
	return n.commit(n.index, n.index)
}

// Jump commits directly to index, clamped to the valid range
func (n *DragNavigator) Jump(index int) Commit {
	n.drag = DragState{}
	return n.commit(n.index, index)
}

func (n *DragNavigator) commit(from, to int) Commit {
	to = n.clampIndex(to)
	n.index = to
	p := n.target.SetTarget(n.snap(to))
	return Commit{From: from, To: to, Progress: p, Final: n.OnFinalPage()}
}

// liveProgress is the base snap point plus the damped, viewport-normalized drag
// bounded by the neighbouring snap points
func (n *DragNavigator) liveProgress() float64 {
	base := n.drag.BaseIndex
	p := n.snap(base)
	if n.viewport > 0 {
		p += (n.drag.StartX - n.drag.CurrentX) / n.viewport * n.settings.Damping
	}
	return progress.Clamp(p, n.snap(base-1), n.snap(base+1))
}

// snap returns the snap point of a clamped index
func (n *DragNavigator) snap(i int) float64 {
	if len(n.snaps) == 0 {
		return 0
	}
	return n.snaps[n.clampIndex(i)]
}

func (n *DragNavigator) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if last := len(n.snaps) - 1; i > last {
		if last < 0 {
			return 0
		}
		return last
	}
	return i
}

// Index returns the committed index
func (n *DragNavigator) Index() int {
	return n.index
}

// SectionIndex returns the content section shown beneath, the last section while on the final page
func (n *DragNavigator) SectionIndex() int {
	if n.OnFinalPage() {
		return n.FinalIndex() - 1
	}
	return n.index
}

// FinalIndex returns the index of the final page
func (n *DragNavigator) FinalIndex() int {
	return len(n.snaps) - 1
}

// OnFinalPage reports whether the final page is committed
func (n *DragNavigator) OnFinalPage() bool {
	return len(n.snaps) > 1 && n.index == n.FinalIndex()
}

// Dragging reports whether a gesture is in flight
func (n *DragNavigator) Dragging() bool {
	return n.drag.Active
}

// State returns a copy of the gesture state
func (n *DragNavigator) State() DragState {
	return n.drag
}

// DragOffset is the live drag as a signed fraction of the viewport, negative toward the next section
// Bounded to [-1, 1] and to zero in directions with no neighbour
func (n *DragNavigator) DragOffset() float64 {
	if !n.drag.Active || !n.drag.HasStart || !n.drag.HasCurrent || n.viewport <= 0 {
		return 0
	}
	off := progress.Clamp((n.drag.CurrentX-n.drag.StartX)/n.viewport, -1, 1)
	if n.drag.BaseIndex <= 0 && off > 0 {
		off = 0
	}
	if n.drag.BaseIndex >= n.FinalIndex() && off < 0 {
		off = 0
	}
	return off
}
