package overlay

import (
	"math"

	"github.com/lixenwraith/scrollway/parameter"
)

// State is the reveal state of the final overlay
type State uint8

const (
	Hidden State = iota
	Shown
)

// String returns the state name
func (s State) String() string {
	if s == Shown {
		return "shown"
	}
	return "hidden"
}

// Sample is the input evaluated by transition guards
type Sample struct {
	Smoothed  float64
	GoingDown bool
}

// Guard returns true if the transition should fire for the sample
type Guard func(Sample) bool

// transition links two states under a guard
type transition struct {
	name  string
	from  State
	to    State
	guard Guard
}

// Gate is the direction-aware hysteresis machine deciding the overlay target
// It reveals only while descending past show and hides only while ascending past hide
type Gate struct {
	state        State
	lastSmoothed float64
	goingDown    bool

	show, hide  float64
	transitions []transition
}

// NewGate creates a hidden gate
// Thresholds without a dead zone (hide not strictly below show) fall back to the parameter defaults
func NewGate(show, hide float64) *Gate {
	show, hide = thresholds(show, hide)
	g := &Gate{show: show, hide: hide}
	g.transitions = []transition{
		{name: "reveal", from: Hidden, to: Shown, guard: g.revealGuard},
		{name: "conceal", from: Shown, to: Hidden, guard: g.concealGuard},
	}
	return g
}

func (g *Gate) revealGuard(s Sample) bool {
	return s.GoingDown && s.Smoothed >= g.show
}

func (g *Gate) concealGuard(s Sample) bool {
	return !s.GoingDown && s.Smoothed <= g.hide
}

// Observe feeds a new smoothed progress value
// Returns the name of the fired transition, or "" if the state held
func (g *Gate) Observe(smoothed float64) string {
	s := Sample{Smoothed: smoothed, GoingDown: smoothed >= g.lastSmoothed}
	g.lastSmoothed = smoothed
	g.goingDown = s.GoingDown

	for _, t := range g.transitions {
		if t.from == g.state && t.guard(s) {
			g.state = t.to
			return t.name
		}
	}
	return ""
}

// State returns the current gate state
func (g *Gate) State() State {
	return g.state
}

// GoingDown reports the direction seen by the last observation
func (g *Gate) GoingDown() bool {
	return g.goingDown
}

// LastSmoothed returns the last observed value
func (g *Gate) LastSmoothed() float64 {
	return g.lastSmoothed
}

// thresholds keeps show and hide if they leave a dead zone between them
func thresholds(show, hide float64) (float64, float64) {
	if math.IsNaN(show) || math.IsNaN(hide) || hide >= show {
		return parameter.OverlayShowThreshold, parameter.OverlayHideThreshold
	}
	return show, hide
}

// Thresholds returns the show and hide bounds in effect
func (g *Gate) Thresholds() (show, hide float64) {
	return g.show, g.hide
}
