// Package terminal runs the experience in a tcell screen: one goroutine pumps events, the caller's goroutine owns everything else
package terminal

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollway/config"
	"github.com/lixenwraith/scrollway/content"
	"github.com/lixenwraith/scrollway/core"
	"github.com/lixenwraith/scrollway/engine"
	"github.com/lixenwraith/scrollway/input"
	"github.com/lixenwraith/scrollway/parameter"
	"github.com/lixenwraith/scrollway/phase"
	"github.com/lixenwraith/scrollway/render"
)

// App drives an Experience from terminal input and draws it every frame
type App struct {
	screen   tcell.Screen
	exp      *engine.Experience
	bus      *input.Bus
	renderer *render.Renderer
	mouse    *MouseMapper
	clock    engine.Clock
	interval time.Duration

	onAction func(content.Link)
	keys     map[rune]func()
}

// NewApp wires exp to screen input; the screen must already be initialized
func NewApp(screen tcell.Screen, exp *engine.Experience, renderer *render.Renderer, cfg config.Config) *App {
	a := &App{
		screen:   screen,
		exp:      exp,
		bus:      input.NewBus(),
		renderer: renderer,
		mouse:    NewMouseMapper(cfg.CellWidthPx, cfg.CellHeightPx, cfg.WheelStepPx),
		clock:    engine.SystemClock{},
		interval: cfg.FrameInterval,
		keys:     make(map[rune]func()),
	}
	if a.interval <= 0 {
		a.interval = parameter.FrameUpdateInterval
	}
	exp.Mount(a.bus)
	return a
}

// SetClock replaces the frame clock
func (a *App) SetClock(c engine.Clock) {
	a.clock = c
}

// OnAction is called when a final page action is clicked
func (a *App) OnAction(fn func(content.Link)) {
	a.onAction = fn
}

// BindKey attaches fn to a rune key; built-in keys cannot be rebound
func (a *App) BindKey(r rune, fn func()) {
	a.keys[r] = fn
}

// Run processes events and draws frames until quit is requested or ctx ends
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	a.screen.EnableFocus()
	defer a.screen.DisableMouse()
	a.resize()

	events := make(chan tcell.Event, parameter.EventChannelSize)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case ev := <-events:
			if a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether the app should quit
func (a *App) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		events, click := a.mouse.Map(ev)
		for _, e := range events {
			a.bus.Dispatch(e)
		}
		if click != nil {
			if link, ok := a.renderer.HitTest(click.X, click.Y); ok && a.onAction != nil {
				a.onAction(link)
			}
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			for _, e := range a.mouse.Cancel() {
				a.bus.Dispatch(e)
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft, tcell.KeyUp, tcell.KeyPgUp:
		a.exp.Step(-1)
	case tcell.KeyRight, tcell.KeyDown, tcell.KeyPgDn:
		a.exp.Step(1)
	case tcell.KeyHome:
		a.exp.Jump(0)
	case tcell.KeyEnd:
		a.exp.Jump(phase.Count)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return true
		case ' ', 'j', 'l':
			a.exp.Step(1)
		case 'k', 'h':
			a.exp.Step(-1)
		default:
			if fn, ok := a.keys[r]; ok {
				fn()
			}
		}
	}
	return false
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.renderer.Resize(w, h)
	a.bus.Dispatch(a.mouse.Viewport(w, h))
}

func (a *App) draw() {
	a.renderer.Draw(a.exp.Frame(a.clock.Now()))
}
