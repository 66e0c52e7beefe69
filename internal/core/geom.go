// Package core holds the types shared between games and the terminal platform:
// the screen buffer, input frames, runtime configuration and run results.
// It has no external dependencies so game logic stays testable without a terminal.
package core

// Rect is an axis-aligned area of the screen, measured in character cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle at (x, y) of size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Follow returns the offset of a view of length view over content of length
// total so that focus stays centered. The offset is clamped to the content,
// and content smaller than the view is centered instead (negative offset).
func Follow(focus, view, total int) int {
	if total <= view {
		return -(view - total) / 2
	}
	return Clamp(focus-view/2, 0, total-view)
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
