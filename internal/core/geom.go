// Package core provides fundamental types shared by the sandbox and the
// terminal platform. It has no Bubble Tea dependency so game logic stays
// pure and testable.
package core

// Point is a screen cell coordinate. Row 0 is the top of the screen.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned area of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampPoint moves p to the nearest cell inside r.
func (r Rect) ClampPoint(p Point) Point {
	return Point{
		X: Clamp(p.X, r.X, r.Right()-1),
		Y: Clamp(p.Y, r.Y, r.Bottom()-1),
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
