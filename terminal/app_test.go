package terminal

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollway/config"
	"github.com/lixenwraith/scrollway/content"
	"github.com/lixenwraith/scrollway/engine"
	"github.com/lixenwraith/scrollway/phase"
	"github.com/lixenwraith/scrollway/render"
)

type testApp struct {
	app    *App
	exp    *engine.Experience
	screen tcell.SimulationScreen
	clock  *engine.ManualClock
}

func newTestApp(t *testing.T, mode config.Mode) *testApp {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(100, 30)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Mode = mode
	exp, err := engine.NewExperience(cfg, nil)
	if err != nil {
		t.Fatalf("NewExperience: %v", err)
	}
	r := render.NewRenderer(screen, content.Default(), render.NewOrbitScene(phase.DefaultMapper(), 0.78))
	app := NewApp(screen, exp, r, cfg)
	clock := engine.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	app.SetClock(clock)
	app.resize()
	return &testApp{app: app, exp: exp, screen: screen, clock: clock}
}

// settle draws frames until the experience idles
func (ta *testApp) settle(t *testing.T) engine.Snapshot {
	t.Helper()
	for i := 0; i < 1000; i++ {
		ta.clock.Advance(16 * time.Millisecond)
		ta.app.draw()
		if ta.exp.Settled() {
			return ta.exp.Snapshot()
		}
	}
	t.Fatal("did not settle")
	return engine.Snapshot{}
}

func TestQuitKeys(t *testing.T) {
	ta := newTestApp(t, config.ModeDesktop)
	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if !ta.app.HandleEvent(ev) {
			t.Errorf("key %v did not quit", ev.Name())
		}
	}
	if ta.app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("unbound key quit")
	}
}

func TestArrowKeysStepSections(t *testing.T) {
	ta := newTestApp(t, config.ModeDesktop)
	ta.app.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	ta.app.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if s := ta.settle(t); s.Index != 2 || s.Progress != 0.35 {
		t.Errorf("after two steps: index=%d progress=%v", s.Index, s.Progress)
	}
	ta.app.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if s := ta.settle(t); !s.FinalPage {
		t.Errorf("End did not reach the final page: %+v", s)
	}
}

func TestWheelEventsReachExperience(t *testing.T) {
	ta := newTestApp(t, config.ModeDesktop)
	for i := 0; i < 40; i++ {
		ta.app.HandleEvent(mouseAt(50, 10, tcell.WheelDown))
	}
	if s := ta.settle(t); math.Abs(s.Progress-0.4) > 1e-9 || s.Phase != phase.Network {
		t.Errorf("progress=%v phase=%v, want 0.4 network", s.Progress, s.Phase)
	}
}

func TestDragSwipesInMobileMode(t *testing.T) {
	ta := newTestApp(t, config.ModeMobile)
	// 100 columns at 8px is an 800px viewport; a 20 column drag is 160px
	ta.app.HandleEvent(mouseAt(60, 10, tcell.Button1))
	ta.app.HandleEvent(mouseAt(40, 10, tcell.Button1))
	ta.app.HandleEvent(mouseAt(40, 10, tcell.ButtonNone))
	if s := ta.settle(t); s.Index != 1 || s.Progress != 0.18 {
		t.Errorf("index=%d progress=%v", s.Index, s.Progress)
	}
}

func TestFocusLossCancelsDrag(t *testing.T) {
	ta := newTestApp(t, config.ModeMobile)
	ta.app.HandleEvent(mouseAt(60, 10, tcell.Button1))
	ta.app.HandleEvent(mouseAt(30, 10, tcell.Button1))
	ta.app.HandleEvent(tcell.NewEventFocus(false))
	if s := ta.settle(t); s.Index != 0 || s.Dragging || s.Progress != 0 {
		t.Errorf("drag not cancelled: %+v", s)
	}
}

func TestClickOnActionWhenInteractive(t *testing.T) {
	ta := newTestApp(t, config.ModeDesktop)
	var clicked []content.Link
	ta.app.OnAction(func(l content.Link) { clicked = append(clicked, l) })

	ta.app.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	ta.settle(t)

	// Find the primary button on the composed frame
	buf := ta.app.renderer.Buffer()
	bx, by := -1, -1
	for y := 0; y < 30 && bx < 0; y++ {
		for x := 0; x < 100; x++ {
			if buf.Get(x, y).Rune == 'G' && buf.Get(x+1, y).Rune == 'e' && buf.Get(x+4, y).Rune == 'S' {
				bx, by = x, y
				break
			}
		}
	}
	if bx < 0 {
		t.Fatal("Get Started button not found")
	}
	ta.app.HandleEvent(mouseAt(bx, by, tcell.Button1))
	ta.app.HandleEvent(mouseAt(bx, by, tcell.ButtonNone))
	if len(clicked) != 1 || clicked[0].Label != "Get Started" {
		t.Errorf("clicked = %+v", clicked)
	}
}

func TestCustomKeyBinding(t *testing.T) {
	ta := newTestApp(t, config.ModeDesktop)
	called := 0
	ta.app.BindKey('m', func() { called++ })
	ta.app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if called != 1 {
		t.Errorf("binding called %d times", called)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ta := newTestApp(t, config.ModeDesktop)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- ta.app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	ta := newTestApp(t, config.ModeDesktop)
	errCh := make(chan error, 1)
	go func() { errCh <- ta.app.Run(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	ta.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
