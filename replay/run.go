package replay

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/scrollway/config"
	"github.com/lixenwraith/scrollway/engine"
	"github.com/lixenwraith/scrollway/input"
	"github.com/lixenwraith/scrollway/overlay"
	"github.com/lixenwraith/scrollway/phase"
)

const (
	// DefaultTolerance applies to numeric expectations without their own
	DefaultTolerance = 1e-6

	// MaxSettleFrames bounds a settle step
	MaxSettleFrames = 10000
)

// defaultViewport is a portrait phone
var defaultViewport = Size{Width: 400, Height: 800}

// replayEpoch is the manual clock start, fixed so traces are reproducible
var replayEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Row records one step and the snapshot after it
type Row struct {
	Step     int
	Action   string
	Consumed bool
	Snapshot engine.Snapshot
	Failures []string
}

// Trace is the outcome of a script run
type Trace struct {
	Name   string
	Mode   config.Mode
	Rows   []Row
	Phases []string // scene phase changes as "from->to"
	Flips  []string // overlay gate transitions
}

// Failed reports whether any expectation failed
func (t *Trace) Failed() bool {
	for _, r := range t.Rows {
		if len(r.Failures) > 0 {
			return true
		}
	}
	return false
}

// Failures lists every failed expectation prefixed with its step
func (t *Trace) Failures() []string {
	var out []string
	for _, r := range t.Rows {
		for _, f := range r.Failures {
			out = append(out, fmt.Sprintf("step %d: %s", r.Step, f))
		}
	}
	return out
}

// runner holds the headless experience for one script
type runner struct {
	exp      *engine.Experience
	bus      *input.Bus
	clock    *engine.ManualClock
	interval time.Duration
	last     engine.Snapshot
}

// Run plays s against a fresh experience built from cfg
// Expectation failures are reported in the trace; the error covers setup only
func Run(s Script, cfg config.Config) (*Trace, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Mode != "" {
		cfg.Mode = s.Mode
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	exp, err := engine.NewExperience(cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("build experience: %w", err)
	}
	defer exp.Close()

	tr := &Trace{Name: s.Name, Mode: cfg.Mode}
	exp.OnPhaseChange(func(from, to phase.Phase) {
		tr.Phases = append(tr.Phases, from.String()+"->"+to.String())
	})
	exp.OnOverlayChange(func(state overlay.State) {
		tr.Flips = append(tr.Flips, state.String())
	})

	r := &runner{
		exp:      exp,
		bus:      input.NewBus(),
		clock:    engine.NewManualClock(replayEpoch),
		interval: cfg.FrameInterval,
	}
	exp.Mount(r.bus)

	vp := defaultViewport
	if s.Viewport != nil {
		vp = *s.Viewport
	}
	r.bus.Dispatch(input.Resize(vp.Width, vp.Height))
	r.last = exp.Snapshot()

	for i, st := range s.Steps {
		row := Row{Step: i + 1, Action: st.label()}
		row.Consumed, row.Failures = r.apply(st)
		row.Snapshot = r.last
		tr.Rows = append(tr.Rows, row)
	}
	return tr, nil
}

func (r *runner) apply(st Step) (consumed bool, failures []string) {
	switch {
	case st.Wheel != nil:
		consumed = r.bus.Dispatch(input.Wheel(*st.Wheel))
	case st.Touch != nil:
		consumed = r.bus.Dispatch(touchEvent(*st.Touch))
	case st.Resize != nil:
		consumed = r.bus.Dispatch(input.Resize(st.Resize.Width, st.Resize.Height))
	case st.Jump != nil:
		consumed = r.exp.Jump(*st.Jump)
	case st.Step != nil:
		consumed = r.exp.Step(*st.Step)
	case st.Frames > 0:
		for range st.Frames {
			r.frame()
		}
		return false, nil
	case st.Settle:
		for range MaxSettleFrames {
			if r.exp.Settled() {
				return false, nil
			}
			r.frame()
		}
		return false, []string{fmt.Sprintf("not settled after %d frames", MaxSettleFrames)}
	case st.Expect != nil:
		return false, check(*st.Expect, r.last)
	}
	r.last = r.exp.Snapshot()
	return consumed, nil
}

func (r *runner) frame() {
	r.clock.Advance(r.interval)
	r.last = r.exp.Frame(r.clock.Now())
}

func touchEvent(t Touch) input.Event {
	var ev input.Event
	switch t.Action {
	case TouchStart:
		ev = input.TouchStart(0)
	case TouchMove:
		ev = input.TouchMove(0)
	case TouchEnd:
		ev = input.TouchEnd()
	default:
		return input.TouchCancel()
	}
	if t.X != nil {
		ev.X, ev.HasX = *t.X, true
	} else {
		ev.X, ev.HasX = 0, false
	}
	return ev
}

// check compares e against s and describes each mismatch
func check(e Expect, s engine.Snapshot) []string {
	tol := e.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	var out []string
	num := func(name string, want *float64, got float64) {
		if want != nil && math.Abs(*want-got) > tol {
			out = append(out, fmt.Sprintf("%s = %.6f, want %.6f", name, got, *want))
		}
	}
	str := func(name, want, got string) {
		if want != "" && want != got {
			out = append(out, fmt.Sprintf("%s = %s, want %s", name, got, want))
		}
	}
	flag := func(name string, want *bool, got bool) {
		if want != nil && *want != got {
			out = append(out, fmt.Sprintf("%s = %t, want %t", name, got, *want))
		}
	}

	num("progress", e.Progress, s.Progress)
	num("target", e.Target, s.Target)
	str("phase", e.Phase, s.Phase.String())
	str("pane", e.Pane, s.PanePhase.String())
	str("overlay", e.Overlay, s.OverlayState.String())
	flag("interactive", e.Interactive, s.OverlayInteractive)
	flag("dragging", e.Dragging, s.Dragging)
	flag("final_page", e.FinalPage, s.FinalPage)
	if e.Index != nil && *e.Index != s.Index {
		out = append(out, fmt.Sprintf("index = %d, want %d", s.Index, *e.Index))
	}
	return out
}
