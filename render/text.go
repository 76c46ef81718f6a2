package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks s into lines no wider than width display cells
// Words longer than width are hard-split
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		for w > width {
			if lineW > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the line
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			line.WriteString(head)
			lineW = runewidth.StringWidth(head)
			flush()
			word = word[len(head):]
			w = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}
		if lineW > 0 && lineW+1+w > width {
			flush()
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(word)
		lineW += w
	}
	if lineW > 0 {
		flush()
	}
	return lines
}

// DrawText writes s at x, y clipped to maxW cells and returns the width drawn
// Wide runes take two cells; the second holds a zero rune so Flush skips it
func DrawText(buf *RenderBuffer, x, y int, s string, fg, bg RGB, mode BlendMode, alpha float64, maxW int) int {
	drawn := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if drawn+w > maxW {
			break
		}
		buf.Set(x+drawn, y, r, fg, bg, mode, alpha)
		if w == 2 && buf.inBounds(x+drawn+1, y) && (mode != BlendAlpha || alpha >= 0.5) {
			buf.cells[y*buf.width+x+drawn+1].Rune = 0
		}
		drawn += w
	}
	return drawn
}

// TextWidth returns the display width of s
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Centered returns the x that centres s inside area
func Centered(area Rect, s string) int {
	return area.X + (area.W-TextWidth(s))/2
}
