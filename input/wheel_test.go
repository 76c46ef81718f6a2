package input

import (
	"math"
	"testing"

	"github.com/lixenwraith/scrollway/phase"
	"github.com/lixenwraith/scrollway/progress"
)

func newWheel() (*WheelAdapter, *progress.Controller) {
	pc := progress.NewController(progress.DefaultSettings())
	return NewWheelAdapter(pc, phase.DefaultMapper(), 10000, pc.Max()), pc
}

func TestWheelAccumulatesAgainstScrollLength(t *testing.T) {
	w, pc := newWheel()

	got, ph := w.Apply(4000)
	if math.Abs(got-0.40) > 1e-9 {
		t.Fatalf("target = %v, want 0.40", got)
	}
	if ph != phase.Network {
		t.Errorf("intent phase = %v, want network", ph)
	}
	if pc.Current() != 0 {
		t.Error("wheel must not touch current")
	}

	got, _ = w.Apply(-1000)
	if math.Abs(got-0.30) > 1e-9 {
		t.Errorf("target = %v, want 0.30", got)
	}
}

func TestWheelClampsBothEnds(t *testing.T) {
	w, _ := newWheel()

	if got, ph := w.Apply(50000); got != 0.78 || ph != phase.Ecosystem {
		t.Errorf("overscroll: %v %v", got, ph)
	}
	if got, ph := w.Apply(-50000); got != 0 || ph != phase.Intro {
		t.Errorf("underscroll: %v %v", got, ph)
	}
}

func TestWheelIgnoresNaN(t *testing.T) {
	w, _ := newWheel()
	w.Apply(2000)
	if got, _ := w.Apply(math.NaN()); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("NaN delta moved target to %v", got)
	}
}

func TestWheelSmallStepsSwitchIntentPromptly(t *testing.T) {
	w, pc := newWheel()
	var ph phase.Phase
	for i := 0; i < 19; i++ {
		_, ph = w.Apply(100)
	}
	if ph != phase.Foundation {
		t.Errorf("intent after 1900px = %v, want foundation", ph)
	}
	if phase.DefaultMapper().Of(pc.Current()) != phase.Intro {
		t.Error("smoothed phase should lag until the frame loop runs")
	}
}
