// Package gui hosts the experience in an ebiten window, with real wheel and touch input
package gui

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/scrollway/config"
	"github.com/lixenwraith/scrollway/content"
	"github.com/lixenwraith/scrollway/engine"
	"github.com/lixenwraith/scrollway/input"
	"github.com/lixenwraith/scrollway/parameter"
	"github.com/lixenwraith/scrollway/phase"
	"github.com/lixenwraith/scrollway/render"
)

// debugGlyphWidth is the advance of ebitenutil's debug font
const debugGlyphWidth = 6

// tick is one Update's worth of polled input
type tick struct {
	width, height int

	// wheelY uses ebiten's sign, positive scrolls up
	wheelY float64

	down    bool
	x, y    float64
	focused bool

	quit bool
	step int
	home bool
	end  bool
}

// Game implements ebiten.Game around an Experience and a buffer renderer
type Game struct {
	exp      *engine.Experience
	bus      *input.Bus
	renderer *render.Renderer
	clock    engine.Clock
	pointer  pointer

	cellW, cellH int
	wheelStep    float64
	width        int
	height       int

	// touch is the id of the contact being followed while touching
	touch    ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID

	glyphs   map[rune]*ebiten.Image
	onAction func(content.Link)
}

// NewGame wires exp to window input; renderer should come from render.NewBufferRenderer
func NewGame(exp *engine.Experience, renderer *render.Renderer, cfg config.Config) *Game {
	g := &Game{
		exp:       exp,
		bus:       input.NewBus(),
		renderer:  renderer,
		clock:     engine.SystemClock{},
		cellW:     max(int(cfg.CellWidthPx), 1),
		cellH:     max(int(cfg.CellHeightPx), 1),
		wheelStep: cfg.WheelStepPx,
		glyphs:    make(map[rune]*ebiten.Image),
	}
	exp.Mount(g.bus)
	return g
}

// SetClock replaces the frame clock
func (g *Game) SetClock(c engine.Clock) {
	g.clock = c
}

// OnAction is called when a final page action is clicked
func (g *Game) OnAction(fn func(content.Link)) {
	g.onAction = fn
}

// Run opens the window and blocks until it closes
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(parameter.WindowWidth, parameter.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(parameter.WindowTPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update polls ebiten input and advances one frame
func (g *Game) Update() error {
	return g.advance(g.poll())
}

func (g *Game) poll() tick {
	in := tick{
		width:   g.width,
		height:  g.height,
		focused: ebiten.IsFocused(),
	}
	_, in.wheelY = ebiten.Wheel()

	// Follow the first touch until it lifts; fall back to the mouse
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if g.touching && !containsTouch(g.touchIDs, g.touch) {
		g.touching = false
	}
	if !g.touching && len(g.touchIDs) > 0 {
		g.touch, g.touching = g.touchIDs[0], true
	}
	switch {
	case g.touching:
		x, y := ebiten.TouchPosition(g.touch)
		in.down, in.x, in.y = true, float64(x), float64(y)
	case len(g.touchIDs) == 0:
		x, y := ebiten.CursorPosition()
		in.down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.x, in.y = float64(x), float64(y)
	}

	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	in.home = inpututil.IsKeyJustPressed(ebiten.KeyHome)
	in.end = inpututil.IsKeyJustPressed(ebiten.KeyEnd)
	for _, k := range []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowDown, ebiten.KeyPageDown, ebiten.KeySpace} {
		if inpututil.IsKeyJustPressed(k) {
			in.step++
		}
	}
	for _, k := range []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp, ebiten.KeyPageUp} {
		if inpututil.IsKeyJustPressed(k) {
			in.step--
		}
	}
	return in
}

// advance applies one tick of input and composes the resulting frame
func (g *Game) advance(in tick) error {
	if in.quit {
		return ebiten.Termination
	}
	g.resize(in.width, in.height)

	if in.wheelY != 0 {
		g.bus.Dispatch(input.Wheel(-in.wheelY * g.wheelStep))
	}

	if !in.focused {
		g.dispatch(g.pointer.cancel())
	} else {
		events, click := g.pointer.poll(in.down, in.x, in.y)
		g.dispatch(events)
		if click != nil {
			g.click(click.x, click.y)
		}
	}

	switch {
	case in.home:
		g.exp.Jump(0)
	case in.end:
		g.exp.Jump(phase.Count)
	case in.step != 0:
		g.exp.Step(in.step)
	}

	g.renderer.Compose(g.exp.Frame(g.clock.Now()))
	return nil
}

func (g *Game) dispatch(events []input.Event) {
	for _, e := range events {
		g.bus.Dispatch(e)
	}
}

func (g *Game) click(x, y float64) {
	link, ok := g.renderer.HitTest(int(x)/g.cellW, int(y)/g.cellH)
	if ok && g.onAction != nil {
		g.onAction(link)
	}
}

// resize adapts the cell grid to a window of w by h px
func (g *Game) resize(w, h int) {
	cols, rows := w/g.cellW, h/g.cellH
	bw, bh := g.renderer.Buffer().Size()
	if cols == bw && rows == bh {
		return
	}
	g.renderer.Resize(cols, rows)
	g.bus.Dispatch(input.Resize(float64(w), float64(h)))
}

// Draw paints the composed cell buffer
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(render.RgbBackground))

	buf := g.renderer.Buffer()
	w, h := buf.Size()
	cw, ch := float32(g.cellW), float32(g.cellH)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := buf.Get(x, y)
			px, py := float32(x)*cw, float32(y)*ch
			if cell.Bg != render.RgbBackground {
				vector.DrawFilledRect(screen, px, py, cw, ch, rgba(cell.Bg), false)
			}
			r := printable(cell.Rune)
			if r == 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(px), float64(py))
			op.ColorScale.ScaleWithColor(rgba(cell.Fg))
			screen.DrawImage(g.glyph(r), op)
		}
	}
}

// glyph returns a cached white rendering of r
func (g *Game) glyph(r rune) *ebiten.Image {
	if img, ok := g.glyphs[r]; ok {
		return img
	}
	img := ebiten.NewImage(g.cellW, g.cellH)
	ebitenutil.DebugPrintAt(img, string(r), (g.cellW-debugGlyphWidth)/2, 0)
	g.glyphs[r] = img
	return img
}

// Layout keeps one screen pixel per window pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
