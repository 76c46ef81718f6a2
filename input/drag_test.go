package input

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/scrollway/progress"
)

var testSnaps = []float64{0, 0.18, 0.35, 0.58, 0.78}

func newDrag(t *testing.T, index int) (*DragNavigator, *progress.Controller) {
	t.Helper()
	pc := progress.NewController(progress.DefaultSettings())
	n := NewDragNavigator(pc, testSnaps, DragSettings{Damping: 0.35, SwipeThreshold: 50})
	n.SetViewport(400)
	if index > 0 {
		n.Jump(index)
	}
	return n, pc
}

func TestSwipeLeftCommitsNextSection(t *testing.T) {
	n, pc := newDrag(t, 1)

	n.Start(300, true)
	n.Move(200, true)
	c := n.End(200, true)

	if c.From != 1 || c.To != 2 || !c.Moved() {
		t.Fatalf("commit = %+v, want 1 -> 2", c)
	}
	if pc.Target() != 0.35 || c.Progress != 0.35 {
		t.Errorf("target = %v, want exact snap 0.35", pc.Target())
	}
	if n.Dragging() {
		t.Error("drag state not cleared")
	}
}

func TestSwipeRightCommitsPreviousSection(t *testing.T) {
	n, pc := newDrag(t, 2)

	n.Start(100, true)
	c := n.End(260, true)

	if c.To != 1 || pc.Target() != 0.18 {
		t.Errorf("commit = %+v target = %v", c, pc.Target())
	}
}

func TestShortDragSnapsBack(t *testing.T) {
	n, pc := newDrag(t, 2)

	n.Start(200, true)
	live := n.Move(170, true)
	if live <= 0.35 {
		t.Fatalf("live progress = %v, expected forward of 0.35", live)
	}
	c := n.End(170, true)

	if c.Moved() || c.To != 2 || pc.Target() != 0.35 {
		t.Errorf("expected snap back to index 2, got %+v target=%v", c, pc.Target())
	}
}

func TestSwipeLeftFromLastSectionOpensFinalPage(t *testing.T) {
	n, pc := newDrag(t, 3)

	n.Start(350, true)
	c := n.End(100, true)

	if !c.Final || !n.OnFinalPage() || c.To != 4 {
		t.Fatalf("expected final page commit, got %+v", c)
	}
	if pc.Target() != 0.78 {
		t.Errorf("target = %v, want overlay snap 0.78", pc.Target())
	}
	if n.SectionIndex() != 3 {
		t.Errorf("section beneath overlay = %d, want 3", n.SectionIndex())
	}

	// Swiping left again stays on the final page
	n.Start(350, true)
	c = n.End(50, true)
	if c.To != 4 || c.Moved() {
		t.Errorf("overswipe moved: %+v", c)
	}
}

func TestSwipeRightFromFinalPageReturnsToLastSection(t *testing.T) {
	n, pc := newDrag(t, 4)

	n.Start(100, true)
	n.Move(300, true)
	c := n.End(300, true)

	if c.To != 3 || c.Final || n.OnFinalPage() {
		t.Fatalf("commit = %+v", c)
	}
	if pc.Target() != 0.58 {
		t.Errorf("target = %v, want last section snap 0.58", pc.Target())
	}
}

func TestSwipeRightFromFirstSectionClamps(t *testing.T) {
	n, pc := newDrag(t, 0)

	n.Start(50, true)
	if live := n.Move(390, true); live != 0 {
		t.Errorf("live = %v, want clamped at 0", live)
	}
	if off := n.DragOffset(); off != 0 {
		t.Errorf("offset = %v, want 0 with no previous section", off)
	}
	c := n.End(390, true)
	if c.To != 0 || pc.Target() != 0 {
		t.Errorf("commit = %+v", c)
	}
}

func TestLiveProgressNeverPassesAdjacentSnaps(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for base := 0; base < len(testSnaps); base++ {
		n, _ := newDrag(t, base)
		lo := testSnaps[max(base-1, 0)]
		hi := testSnaps[min(base+1, len(testSnaps)-1)]

		for i := 0; i < 500; i++ {
			start := rng.Float64() * 400
			n.Start(start, true)
			x := start + (rng.Float64()*2-1)*5000
			live := n.Move(x, true)
			if live < lo || live > hi {
				t.Fatalf("base %d: live %v outside [%v, %v]", base, live, lo, hi)
			}
			n.Cancel()
			n.Jump(base)
		}
	}
}

func TestDampingScalesLiveProgress(t *testing.T) {
	n, _ := newDrag(t, 1)
	n.Start(300, true)
	live := n.Move(280, true)

	want := 0.18 + 20.0/400*0.35
	if math.Abs(live-want) > 1e-9 {
		t.Errorf("live = %v, want %v", live, want)
	}
	if off := n.DragOffset(); math.Abs(off+0.05) > 1e-9 {
		t.Errorf("offset = %v, want -0.05", off)
	}
}

func TestMissingCoordinatesSnapBack(t *testing.T) {
	n, pc := newDrag(t, 2)

	n.Start(0, false)
	if got := n.Move(0, false); got != 0.35 {
		t.Errorf("move without coordinates changed target to %v", got)
	}
	c := n.End(0, false)
	if c.Moved() || pc.Target() != 0.35 {
		t.Errorf("expected snap back, got %+v", c)
	}

	// Start known, release unknown after a real move: uses last known x
	n.Start(300, true)
	n.Move(100, true)
	c = n.End(0, false)
	if c.To != 3 {
		t.Errorf("expected commit from last known x, got %+v", c)
	}

	// NaN coordinates are treated as missing
	n.Start(math.NaN(), true)
	c = n.End(10, true)
	if c.Moved() {
		t.Errorf("NaN start committed %+v", c)
	}
}

func TestEndWithoutStartIsNoop(t *testing.T) {
	n, pc := newDrag(t, 1)
	c := n.End(0, true)
	if c.Moved() || pc.Target() != 0.18 {
		t.Errorf("release without gesture moved: %+v", c)
	}
	if got := n.Move(10, true); got != 0.18 {
		t.Errorf("move without gesture wrote %v", got)
	}
}

func TestZeroViewportDoesNotMoveLive(t *testing.T) {
	n, _ := newDrag(t, 1)
	n.SetViewport(0)
	n.Start(300, true)
	if live := n.Move(0, true); live != 0.18 {
		t.Errorf("live = %v with zero viewport", live)
	}
	if n.DragOffset() != 0 {
		t.Error("offset should be zero with zero viewport")
	}
	// Commit still uses pixel distance
	if c := n.End(0, true); c.To != 2 {
		t.Errorf("commit = %+v", c)
	}
}
