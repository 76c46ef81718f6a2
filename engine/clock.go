package engine

import (
	"sync"
	"time"
)

// Clock supplies frame timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock provides the real system time with monotonic clock readings
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for headless playback and tests
type ManualClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualClock creates a manual clock at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{currentTime: start}
}

// Now returns the current manual time
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set sets the current time
func (m *ManualClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the clock forward by d and returns the new time
func (m *ManualClock) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}
