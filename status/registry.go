package status

import (
	"fmt"
	"sync/atomic"
)

// Published output keys
const (
	KeyProgressCurrent = "progress.current"
	KeyProgressTarget  = "progress.target"
	KeyPhaseScene      = "phase.scene"
	KeyPhasePane       = "phase.pane"
	KeyOverlayProgress = "overlay.progress"
	KeyOverlayState    = "overlay.state"
	KeyDragActive      = "drag.active"
	KeyFinalPage       = "nav.final"
	KeyNavIndex        = "nav.index"
	KeyFrameCount      = "frame.count"
)

// Registry is the outbound view of the frame outputs
// The frame loop writes cached pointers; renderers and tools read them from any goroutine
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines formats every metric as "key=value" in a stable order: floats, strings, ints, bools
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.3f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	return lines
}
