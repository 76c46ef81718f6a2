package render

import "github.com/gdamore/tcell/v2"

// BlendMode defines compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendFgOnly                   // Replace rune and Fg, keep Bg
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// RenderBuffer is a compositor backed by a Cell array, flushed to a tcell screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(RgbBackground)
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (width, height int) {
	return b.width, b.height
}

// Clear resets all cells to blanks on bg using exponential copy
func (b *RenderBuffer) Clear(bg RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbWhite, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields the zero Cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set composites a cell; a zero rune keeps the existing glyph
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	switch mode {
	case BlendReplace:
		if r != 0 {
			dst.Rune = r
		}
		dst.Fg = fg
		dst.Bg = bg
	case BlendAlpha:
		// Glyphs swap at half opacity so a fading layer never shows two texts at once
		if r != 0 && alpha >= 0.5 {
			dst.Rune = r
			dst.Fg = dst.Bg.Blend(fg, alpha)
		} else if r == 0 {
			dst.Fg = dst.Fg.Blend(fg, alpha)
		}
		dst.Bg = dst.Bg.Blend(bg, alpha)
	case BlendFgOnly:
		if r != 0 {
			dst.Rune = r
		}
		dst.Fg = fg
	}
}

// SetBold marks a cell bold without touching its colours
func (b *RenderBuffer) SetBold(x, y int, bold bool) {
	if b.inBounds(x, y) {
		b.cells[y*b.width+x].Bold = bold
	}
}

// Fill composites bg over every cell of r, keeping glyphs
func (b *RenderBuffer) Fill(r Rect, bg RGB, alpha float64) {
	r = r.Intersect(Rect{W: b.width, H: b.height})
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			dst := &b.cells[y*b.width+x]
			if alpha >= 1 {
				dst.Bg = bg
				dst.Rune = ' '
				continue
			}
			dst.Bg = dst.Bg.Blend(bg, alpha)
			dst.Fg = dst.Fg.Blend(bg, alpha)
		}
	}
}

// Flush writes the buffer to screen; the caller calls Show
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				// Trailing half of a wide rune
				continue
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell()).Bold(c.Bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
