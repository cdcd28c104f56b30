package world

import "math"

// WrapPolicy folds positions into a toroidal window centered on the origin.
type WrapPolicy struct {
	Size Vec2 // full window size, visible area plus margin
}

// NewWrapPolicy returns the policy for a visible area of w by h with margin
// added on each axis.
func NewWrapPolicy(w, h, margin float64) WrapPolicy {
	return WrapPolicy{Size: Vec2{X: w + margin, Y: h + margin}}
}

// Fold maps p into [-Size/2, +Size/2) on each axis. It is idempotent.
func (w WrapPolicy) Fold(p Vec2) Vec2 {
	return Vec2{X: foldAxis(p.X, w.Size.X), Y: foldAxis(p.Y, w.Size.Y)}
}

// Contains reports whether p is already inside the window.
func (w WrapPolicy) Contains(p Vec2) bool {
	hx, hy := w.Size.X/2, w.Size.Y/2
	return p.X >= -hx && p.X < hx && p.Y >= -hy && p.Y < hy
}

func foldAxis(p, size float64) float64 {
	if size <= 0 {
		return p
	}
	half := size / 2
	m := math.Mod(p+half, size)
	if m < 0 {
		m += size
	}
	return m - half
}
