package frame

import (
	"testing"
	"time"
)

func TestLoopRunsUntilStepIdles(t *testing.T) {
	s := NewScheduler()
	steps := 0
	l := NewLoop("test", s, func(time.Duration) bool {
		steps++
		return steps < 3
	})

	l.Start()
	l.Start()
	if s.Pending() != 1 {
		t.Fatalf("double start scheduled %d frames", s.Pending())
	}

	now := epoch
	for i := 0; i < 10; i++ {
		s.Flush(now)
		now = now.Add(16 * time.Millisecond)
	}

	if steps != 3 {
		t.Errorf("steps = %d, want 3", steps)
	}
	if l.Running() {
		t.Error("idle loop still running")
	}

	// Waking resumes it
	l.Start()
	s.Flush(now)
	if steps != 4 {
		t.Errorf("steps after wake = %d", steps)
	}
}

func TestLoopDeltaTime(t *testing.T) {
	s := NewScheduler()
	var dts []time.Duration
	l := NewLoop("dt", s, func(dt time.Duration) bool {
		dts = append(dts, dt)
		return true
	})
	l.Start()

	s.Flush(epoch)
	s.Flush(epoch.Add(16 * time.Millisecond))
	s.Flush(epoch.Add(40 * time.Millisecond))

	want := []time.Duration{0, 16 * time.Millisecond, 24 * time.Millisecond}
	for i := range want {
		if dts[i] != want[i] {
			t.Errorf("dt[%d] = %v, want %v", i, dts[i], want[i])
		}
	}
}

func TestLoopStopLeavesNothingScheduled(t *testing.T) {
	s := NewScheduler()
	steps := 0
	l := NewLoop("stop", s, func(time.Duration) bool {
		steps++
		return true
	})
	l.Start()
	s.Flush(epoch)
	l.Stop()

	if s.Pending() != 0 {
		t.Fatalf("pending = %d after Stop", s.Pending())
	}
	s.Flush(epoch.Add(time.Second))
	if steps != 1 {
		t.Errorf("steps = %d after Stop", steps)
	}
}

func TestLoopClosePermanent(t *testing.T) {
	s := NewScheduler()
	l := NewLoop("close", s, func(time.Duration) bool { return true })
	l.Start()
	l.Close()
	l.Start()

	if l.Running() || s.Pending() != 0 {
		t.Error("closed loop was rescheduled")
	}
	if l.Name() != "close" {
		t.Errorf("name = %q", l.Name())
	}
}
