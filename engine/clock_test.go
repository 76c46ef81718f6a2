package engine

import (
	"testing"
	"time"
)

func TestSystemClockMonotonic(t *testing.T) {
	var c SystemClock
	t1 := c.Now()
	t2 := c.Now()
	if t2.Before(t1) {
		t.Errorf("time went backwards: %v then %v", t1, t2)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	if !c.Now().Equal(start) {
		t.Fatalf("Now = %v", c.Now())
	}
	if got := c.Advance(16 * time.Millisecond); !got.Equal(start.Add(16 * time.Millisecond)) {
		t.Errorf("Advance = %v", got)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Errorf("Set did not apply: %v", c.Now())
	}
}
