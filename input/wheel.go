package input

import (
	"math"

	"github.com/lixenwraith/scrollway/phase"
	"github.com/lixenwraith/scrollway/progress"
)

// Target is the writable side of the progress controller
type Target interface {
	SetTarget(v float64) float64
	Target() float64
}

// WheelAdapter accumulates wheel deltas against a virtual scroll length
type WheelAdapter struct {
	target       Target
	mapper       phase.Mapper
	scrollLength float64
	max          float64
}

// NewWheelAdapter creates an adapter writing into target
func NewWheelAdapter(target Target, mapper phase.Mapper, scrollLength, max float64) *WheelAdapter {
	return &WheelAdapter{
		target:       target,
		mapper:       mapper,
		scrollLength: scrollLength,
		max:          max,
	}
}

// Apply converts a wheel delta into a new target
// Returns the clamped target and the phase it implies, used as the content pane's intent
func (w *WheelAdapter) Apply(deltaY float64) (float64, phase.Phase) {
	cur := w.target.Target()
	if math.IsNaN(deltaY) || w.scrollLength <= 0 {
		return cur, w.mapper.Of(cur)
	}

	scroll := progress.Clamp(cur*w.scrollLength+deltaY, 0, w.scrollLength)
	next := progress.Clamp(scroll/w.scrollLength, 0, w.max)
	next = w.target.SetTarget(next)

	return next, w.mapper.Of(next)
}
