// Package progress owns the eased progress value shared by the scene and the content pane
package progress

import (
	"math"

	"github.com/lixenwraith/scrollway/parameter"
)

// Controller eases current toward target once per frame
// Input adapters write the target; only Tick writes current
type Controller struct {
	current float64
	target  float64

	max     float64
	smooth  float64
	epsilon float64
}

// Settings configures a Controller
type Settings struct {
	Max     float64
	Smooth  float64
	Epsilon float64
}

// DefaultSettings returns the parameter defaults
func DefaultSettings() Settings {
	return Settings{
		Max:     parameter.MaxProgress,
		Smooth:  parameter.ProgressSmoothFactor,
		Epsilon: parameter.SettleEpsilon,
	}
}

// NewController creates a controller at rest at zero
func NewController(s Settings) *Controller {
	if s.Max <= 0 || math.IsNaN(s.Max) {
		s.Max = parameter.MaxProgress
	}
	if s.Smooth <= 0 || s.Smooth > 1 || math.IsNaN(s.Smooth) {
		s.Smooth = parameter.ProgressSmoothFactor
	}
	if s.Epsilon <= 0 || math.IsNaN(s.Epsilon) {
		s.Epsilon = parameter.SettleEpsilon
	}
	return &Controller{max: s.Max, smooth: s.Smooth, epsilon: s.Epsilon}
}

// SetTarget clamps v to [0, Max] and stores it as the new target
// NaN is ignored; the clamped target is returned
func (c *Controller) SetTarget(v float64) float64 {
	if math.IsNaN(v) {
		return c.target
	}
	c.target = Clamp(v, 0, c.max)
	return c.target
}

// Tick advances current one frame toward target
// Returns true while current moved; false once settled
func (c *Controller) Tick() bool {
	diff := c.target - c.current
	if diff == 0 {
		return false
	}
	if math.Abs(diff) < c.epsilon {
		c.current = c.target
		return true
	}
	c.current += diff * c.smooth
	return true
}

// Settled reports whether current has reached target
func (c *Controller) Settled() bool {
	return c.current == c.target
}

// Current returns the smoothed progress
func (c *Controller) Current() float64 {
	return c.current
}

// Target returns the clamped target
func (c *Controller) Target() float64 {
	return c.target
}

// Max returns the progress ceiling
func (c *Controller) Max() float64 {
	return c.max
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
