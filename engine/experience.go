// Package engine composes the progress, overlay and navigation components into one frame-driven experience
package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/scrollway/config"
	"github.com/lixenwraith/scrollway/frame"
	"github.com/lixenwraith/scrollway/input"
	"github.com/lixenwraith/scrollway/overlay"
	"github.com/lixenwraith/scrollway/phase"
	"github.com/lixenwraith/scrollway/progress"
	"github.com/lixenwraith/scrollway/section"
	"github.com/lixenwraith/scrollway/status"
)

// Snapshot is everything a renderer needs for one frame
type Snapshot struct {
	Progress float64 // smoothed progress, fed to the scene
	Target   float64

	Phase     phase.Phase // derived from the smoothed progress
	PanePhase phase.Phase // section shown by the content pane

	Overlay            float64 // eased overlay reveal in [0, 1]
	OverlayState       overlay.State
	OverlayInteractive bool

	Sections   []section.RenderState
	Axis       section.Axis
	Dragging   bool
	DragOffset float64
	FinalPage  bool
	Index      int

	Frame uint64
}

// PhaseHook is called when the scene phase changes
type PhaseHook func(from, to phase.Phase)

// OverlayHook is called when the overlay gate flips
type OverlayHook func(state overlay.State)

// Experience owns the frame scheduler, both animation loops and every input adapter
// All methods must be called from the goroutine that drives Frame
type Experience struct {
	// ===== Immutable After Init =====

	mode     config.Mode
	mapper   phase.Mapper
	snaps    []float64
	sched    *frame.Scheduler
	progress *progress.Controller
	overlay  *overlay.Controller
	wheel    *input.WheelAdapter
	drag     *input.DragNavigator
	sections section.Navigator

	progressLoop *frame.Loop
	overlayLoop  *frame.Loop

	// ===== Main-Loop Exclusive =====

	subs      []input.Subscription
	lastPhase phase.Phase
	frames    uint64
	onPhase   []PhaseHook
	onOverlay []OverlayHook
	closed    bool

	// ===== Published (atomic, read from any goroutine) =====

	reg          *status.Registry
	statCurrent  *status.AtomicFloat
	statTarget   *status.AtomicFloat
	statOverlay  *status.AtomicFloat
	statScene    *status.AtomicString
	statPane     *status.AtomicString
	statState    *status.AtomicString
	statDragging *atomic.Bool
	statFinal    *atomic.Bool
	statIndex    *atomic.Int64
	statFrames   *atomic.Int64
}

// NewExperience builds an idle experience from a validated config
// A nil registry gets a private one
func NewExperience(cfg config.Config, reg *status.Registry) (*Experience, error) {
	mapper, err := cfg.Tuning.Mapper()
	if err != nil {
		return nil, fmt.Errorf("phase mapper: %w", err)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	pc := progress.NewController(cfg.Tuning.ProgressSettings())
	snaps := cfg.Tuning.Snaps()

	axis := section.Vertical
	if cfg.Mode == config.ModeMobile {
		axis = section.Horizontal
	}

	e := &Experience{
		mode:     cfg.Mode,
		mapper:   mapper,
		snaps:    snaps,
		sched:    frame.NewScheduler(),
		progress: pc,
		overlay:  overlay.NewController(cfg.Tuning.OverlaySettings()),
		wheel:    input.NewWheelAdapter(pc, mapper, cfg.Tuning.VirtualScrollLength, pc.Max()),
		drag:     input.NewDragNavigator(pc, snaps, cfg.Tuning.DragSettings()),
		sections: section.NewNavigator(phase.Count, axis),
		reg:      reg,
	}
	e.progressLoop = frame.NewLoop("progress", e.sched, e.stepProgress)
	e.overlayLoop = frame.NewLoop("overlay", e.sched, e.stepOverlay)

	e.statCurrent = reg.Floats.Get(status.KeyProgressCurrent)
	e.statTarget = reg.Floats.Get(status.KeyProgressTarget)
	e.statOverlay = reg.Floats.Get(status.KeyOverlayProgress)
	e.statScene = reg.Strings.Get(status.KeyPhaseScene)
	e.statPane = reg.Strings.Get(status.KeyPhasePane)
	e.statState = reg.Strings.Get(status.KeyOverlayState)
	e.statDragging = reg.Bools.Get(status.KeyDragActive)
	e.statFinal = reg.Bools.Get(status.KeyFinalPage)
	e.statIndex = reg.Ints.Get(status.KeyNavIndex)
	e.statFrames = reg.Ints.Get(status.KeyFrameCount)
	e.publish(e.Snapshot())

	return e, nil
}

// Mode returns the input mode
func (e *Experience) Mode() config.Mode {
	return e.mode
}

// Registry returns the registry the experience publishes to
func (e *Experience) Registry() *status.Registry {
	return e.reg
}

// OnPhaseChange registers a hook for scene phase changes
func (e *Experience) OnPhaseChange(fn PhaseHook) {
	e.onPhase = append(e.onPhase, fn)
}

// OnOverlayChange registers a hook for overlay show/hide
func (e *Experience) OnOverlayChange(fn OverlayHook) {
	e.onOverlay = append(e.onOverlay, fn)
}

// Mount subscribes the experience to every event stream it handles on bus
// Mounting twice is a no-op
func (e *Experience) Mount(bus *input.Bus) {
	if e.closed || len(e.subs) > 0 {
		return
	}
	e.subs = append(e.subs,
		bus.Subscribe(input.KindWheel, func(ev input.Event) bool { return e.Wheel(ev.DeltaY) }),
		bus.Subscribe(input.KindTouchStart, func(ev input.Event) bool { return e.TouchStart(ev.X, ev.HasX) }),
		bus.Subscribe(input.KindTouchMove, func(ev input.Event) bool { return e.TouchMove(ev.X, ev.HasX) }),
		bus.Subscribe(input.KindTouchEnd, func(ev input.Event) bool { return e.TouchEnd(ev.X, ev.HasX) }),
		bus.Subscribe(input.KindTouchCancel, func(input.Event) bool { return e.TouchCancel() }),
		bus.Subscribe(input.KindResize, func(ev input.Event) bool { return e.Resize(ev.Width, ev.Height) }),
	)
}

// Wheel applies a wheel delta in px; only desktop mode consumes it
func (e *Experience) Wheel(deltaY float64) bool {
	if e.closed || e.mode != config.ModeDesktop {
		return false
	}
	e.wheel.Apply(deltaY)
	e.progressLoop.Start()
	return true
}

// TouchStart begins a drag; only mobile mode consumes it
func (e *Experience) TouchStart(x float64, hasX bool) bool {
	if e.closed || e.mode != config.ModeMobile {
		return false
	}
	e.drag.Start(x, hasX)
	return true
}

// TouchMove updates the live drag target
func (e *Experience) TouchMove(x float64, hasX bool) bool {
	if e.closed || e.mode != config.ModeMobile || !e.drag.Dragging() {
		return false
	}
	e.drag.Move(x, hasX)
	e.progressLoop.Start()
	return true
}

// TouchEnd releases the drag and commits to a section
func (e *Experience) TouchEnd(x float64, hasX bool) bool {
	if e.closed || e.mode != config.ModeMobile {
		return false
	}
	e.logCommit("release", e.drag.End(x, hasX))
	e.progressLoop.Start()
	return true
}

// TouchCancel aborts the drag and snaps back
func (e *Experience) TouchCancel() bool {
	if e.closed || e.mode != config.ModeMobile {
		return false
	}
	e.logCommit("cancel", e.drag.Cancel())
	e.progressLoop.Start()
	return true
}

// Resize updates the viewport used to normalize drags
func (e *Experience) Resize(width, height float64) bool {
	if e.closed {
		return false
	}
	e.drag.SetViewport(width)
	return true
}

// Jump commits to a snap index, len(sections) being the final page
func (e *Experience) Jump(index int) bool {
	if e.closed {
		return false
	}
	if e.mode == config.ModeMobile {
		e.logCommit("jump", e.drag.Jump(index))
	} else {
		if index < 0 {
			index = 0
		}
		if index >= len(e.snaps) {
			index = len(e.snaps) - 1
		}
		e.progress.SetTarget(e.snaps[index])
	}
	e.progressLoop.Start()
	return true
}

// Step jumps delta snap points from the current position
func (e *Experience) Step(delta int) bool {
	return e.Jump(e.index() + delta)
}

// Frame flushes one display frame at now and returns the resulting snapshot
func (e *Experience) Frame(now time.Time) Snapshot {
	e.sched.Flush(now)
	e.frames++

	snap := e.Snapshot()
	if snap.Phase != e.lastPhase {
		from := e.lastPhase
		e.lastPhase = snap.Phase
		log.Printf("phase %s -> %s (progress %.3f)", from, snap.Phase, snap.Progress)
		for _, fn := range e.onPhase {
			fn(from, snap.Phase)
		}
	}
	e.publish(snap)
	return snap
}

// Snapshot returns the current outputs without advancing a frame
func (e *Experience) Snapshot() Snapshot {
	s := Snapshot{
		Progress:           e.progress.Current(),
		Target:             e.progress.Target(),
		Phase:              e.mapper.Of(e.progress.Current()),
		Overlay:            e.overlay.Progress(),
		OverlayState:       e.overlay.State(),
		OverlayInteractive: e.overlay.Interactive(),
		Axis:               e.sections.Axis(),
		Index:              e.index(),
		Frame:              e.frames,
	}

	view := section.View{}
	if e.mode == config.ModeMobile {
		st := e.drag.State()
		s.PanePhase = phase.FromIndex(e.drag.SectionIndex())
		s.FinalPage = e.drag.OnFinalPage()
		s.Dragging = e.drag.Dragging()
		view.Active = e.drag.SectionIndex()
		if s.Dragging && st.BaseIndex < e.drag.FinalIndex() {
			s.DragOffset = e.drag.DragOffset()
			view = section.View{Active: st.BaseIndex, Dragging: true, DragOffset: s.DragOffset}
		}
	} else {
		// The pane follows intent, so it reflects the new section before the scene catches up
		s.PanePhase = e.mapper.Of(e.progress.Target())
		s.FinalPage = s.OverlayState == overlay.Shown
		view.Active = s.PanePhase.Index()
	}
	s.Sections = e.sections.States(view)
	return s
}

// Settled reports whether both loops are idle
func (e *Experience) Settled() bool {
	return !e.progressLoop.Running() && !e.overlayLoop.Running()
}

// Close stops both loops, removes every listener and turns further input into no-ops
func (e *Experience) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.progressLoop.Close()
	e.overlayLoop.Close()
	for _, s := range e.subs {
		s.Remove()
	}
	e.subs = nil
	e.onPhase = nil
	e.onOverlay = nil
}

// Closed reports whether Close has been called
func (e *Experience) Closed() bool {
	return e.closed
}

func (e *Experience) stepProgress(time.Duration) bool {
	if !e.progress.Tick() {
		return false
	}
	if e.overlay.Observe(e.progress.Current()) {
		state := e.overlay.State()
		log.Printf("overlay %s at progress %.3f", state, e.progress.Current())
		for _, fn := range e.onOverlay {
			fn(state)
		}
		e.overlayLoop.Start()
	}
	return !e.progress.Settled()
}

func (e *Experience) stepOverlay(time.Duration) bool {
	e.overlay.Tick()
	return !e.overlay.Settled()
}

// index is the committed snap index, derived from the target in desktop mode
func (e *Experience) index() int {
	if e.mode == config.ModeMobile {
		return e.drag.Index()
	}
	target := e.progress.Target()
	if last := len(e.snaps) - 1; last > 0 && target >= e.snaps[last] {
		return last
	}
	return e.mapper.Of(target).Index()
}

func (e *Experience) logCommit(cause string, c input.Commit) {
	if c.Moved() {
		log.Printf("nav %s %d -> %d (target %.3f, final %t)", cause, c.From, c.To, c.Progress, c.Final)
	}
}

func (e *Experience) publish(s Snapshot) {
	e.statCurrent.Set(s.Progress)
	e.statTarget.Set(s.Target)
	e.statOverlay.Set(s.Overlay)
	e.statScene.Store(s.Phase.String())
	e.statPane.Store(s.PanePhase.String())
	e.statState.Store(s.OverlayState.String())
	e.statDragging.Store(s.Dragging)
	e.statFinal.Store(s.FinalPage)
	e.statIndex.Store(int64(s.Index))
	e.statFrames.Store(int64(s.Frame))
}
