package render

// Rect is a cell-aligned area
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x, y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlap of r and o
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
