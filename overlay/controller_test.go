package overlay

import "testing"

func TestControllerEasesIndependently(t *testing.T) {
	c := NewController(DefaultSettings())

	if c.Tick() {
		t.Fatal("hidden overlay at 0 should not move")
	}

	c.Observe(0.5)
	if !c.Observe(0.78) {
		t.Fatal("expected target flip")
	}
	if c.Target() != 1 {
		t.Fatalf("target = %v", c.Target())
	}

	// Progress eases slowly, it does not jump
	c.Tick()
	if c.Progress() <= 0 || c.Progress() >= 0.1 {
		t.Fatalf("first overlay frame progress = %v", c.Progress())
	}

	frames := 1
	for c.Tick() {
		frames++
		if frames > 500 {
			t.Fatal("overlay did not settle")
		}
	}
	if c.Progress() != 1 || !c.Settled() {
		t.Fatalf("progress = %v, want 1", c.Progress())
	}
}

func TestControllerInteractiveAboveHalf(t *testing.T) {
	c := NewController(DefaultSettings())
	c.Observe(0.78)

	sawInteractiveAtHalf := false
	for c.Tick() {
		if c.Progress() <= 0.5 && c.Interactive() {
			sawInteractiveAtHalf = true
		}
	}
	if sawInteractiveAtHalf {
		t.Error("interactive at or below half reveal")
	}
	if !c.Interactive() {
		t.Error("fully revealed overlay should be interactive")
	}

	// Hide and fade: interactivity drops once progress passes half
	c.Observe(0.70)
	for c.Tick() {
		if c.Progress() <= 0.5 && c.Interactive() {
			t.Fatalf("still interactive at %v", c.Progress())
		}
	}
	if c.Progress() != 0 {
		t.Errorf("progress = %v after hide", c.Progress())
	}
}

func TestControllerScenarioDefaultThresholds(t *testing.T) {
	c := NewController(DefaultSettings())

	// Ascend smoothly to the ceiling
	for v := 0.0; v <= 0.78; v += 0.01 {
		c.Observe(v)
	}
	c.Observe(0.78)
	if c.Target() != 1 {
		t.Fatal("overlay target should be 1 at the ceiling")
	}

	c.Observe(0.77)
	if c.Target() != 1 {
		t.Fatal("0.77 is inside the dead zone, target should hold")
	}

	c.Observe(0.75)
	if c.Target() != 0 {
		t.Fatal("0.75 is below hide, target should be 0")
	}
}

func TestControllerBelowShowStaysHidden(t *testing.T) {
	c := NewController(DefaultSettings())
	for _, v := range []float64{0.1, 0.2, 0.4} {
		c.Observe(v)
	}
	if c.State() != Hidden || c.Target() != 0 {
		t.Error("overlay revealed at 0.40")
	}
}

func TestControllerInvertedThresholdsUseDefaults(t *testing.T) {
	s := DefaultSettings()
	s.Show, s.Hide = 0.5, 0.7
	c := NewController(s)

	if c.Observe(0.6) {
		t.Fatal("0.6 revealed with inverted thresholds")
	}
	if !c.Observe(0.78) {
		t.Fatal("0.78 should reveal under default thresholds")
	}
	if c.Observe(0.77) {
		t.Fatal("0.77 is inside the default dead zone")
	}
	if !c.Observe(0.75) {
		t.Fatal("0.75 should hide under default thresholds")
	}
}
