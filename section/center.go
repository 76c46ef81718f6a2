package section

// Extent is the measured vertical placement of a section inside the pane
// Measured stays false until layout has run
type Extent struct {
	Top      float64
	Height   float64
	Measured bool
}

// CenterScroll returns the scroll offset that centres the active section in the container
// ok is false when the section has not been laid out yet; callers keep their current scroll
func CenterScroll(extents []Extent, active int, containerHeight float64) (scroll float64, ok bool) {
	if active < 0 || active >= len(extents) || containerHeight <= 0 {
		return 0, false
	}
	e := extents[active]
	if !e.Measured {
		return 0, false
	}
	scroll = e.Top - containerHeight/2 + e.Height/2
	if scroll < 0 {
		scroll = 0
	}
	return scroll, true
}
