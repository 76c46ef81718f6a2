// Package overlay drives the final full-screen panel from the smoothed progress value
// The reveal eases on its own loop, decoupled from the progress easing
package overlay

import (
	"math"

	"github.com/lixenwraith/scrollway/parameter"
)

// Settings configures a Controller
// Hide must be strictly below Show; otherwise both thresholds revert to the defaults
type Settings struct {
	Show             float64
	Hide             float64
	Smooth           float64
	Epsilon          float64
	InteractiveAbove float64
}

// DefaultSettings returns the parameter defaults
func DefaultSettings() Settings {
	return Settings{
		Show:             parameter.OverlayShowThreshold,
		Hide:             parameter.OverlayHideThreshold,
		Smooth:           parameter.OverlaySmoothFactor,
		Epsilon:          parameter.SettleEpsilon,
		InteractiveAbove: parameter.OverlayInteractiveAbove,
	}
}

// Controller owns the overlay reveal progress and its hysteresis gate
type Controller struct {
	gate     *Gate
	progress float64
	settings Settings
}

// NewController creates a hidden overlay
func NewController(s Settings) *Controller {
	if s.Smooth <= 0 || s.Smooth > 1 || math.IsNaN(s.Smooth) {
		s.Smooth = parameter.OverlaySmoothFactor
	}
	if s.Epsilon <= 0 || math.IsNaN(s.Epsilon) {
		s.Epsilon = parameter.SettleEpsilon
	}
	s.Show, s.Hide = thresholds(s.Show, s.Hide)
	return &Controller{
		gate:     NewGate(s.Show, s.Hide),
		settings: s,
	}
}

// Observe evaluates the gate against a new smoothed progress value
// Returns true if the target flipped
func (c *Controller) Observe(smoothed float64) bool {
	return c.gate.Observe(smoothed) != ""
}

// Tick eases progress one frame toward the target
// Returns true while progress moved
func (c *Controller) Tick() bool {
	target := c.Target()
	diff := target - c.progress
	if diff == 0 {
		return false
	}
	if math.Abs(diff) < c.settings.Epsilon {
		c.progress = target
		return true
	}
	c.progress += diff * c.settings.Smooth
	return true
}

// Target returns 1 while shown and 0 while hidden
func (c *Controller) Target() float64 {
	if c.gate.State() == Shown {
		return 1
	}
	return 0
}

// State returns the gate state
func (c *Controller) State() State {
	return c.gate.State()
}

// Progress returns the eased reveal in [0, 1], used as opacity
func (c *Controller) Progress() float64 {
	return c.progress
}

// Settled reports whether the reveal has reached its target
func (c *Controller) Settled() bool {
	return c.progress == c.Target()
}

// Interactive reports whether the overlay accepts pointer input
// Partial fades stay click-through
func (c *Controller) Interactive() bool {
	return c.progress > c.settings.InteractiveAbove
}

// GoingDown reports the scroll direction seen by the last observation
func (c *Controller) GoingDown() bool {
	return c.gate.GoingDown()
}
