package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as bits for lock-free reads from other goroutines
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores a value
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
