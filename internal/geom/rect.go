// Package geom holds cell-space rectangles used for layout and hit-testing.
package geom

// Rect is a bounded region in terminal cell coordinates.
// X, Y is the top-left cell; W, H are the width and height in cells.
type Rect struct {
	X, Y int
	W, H int
}

// Measured reports whether the rect has a usable area.
// Components report a zero Rect until they have been laid out at least once.
func (r Rect) Measured() bool {
	return r.W > 0 && r.H > 0
}

// Contains returns true if the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	if !r.Measured() {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the center of r in fractional cell units.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
