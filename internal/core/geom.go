// Package core provides fundamental types and utilities for the cat runner.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Rect is an axis-aligned box in logical playfield units.
// Y grows downward, so Bottom is the larger coordinate.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether the two boxes share at least one point.
// Edges are closed: boxes that only touch still overlap.
func (r Rect) Overlaps(other Rect) bool {
	// No overlap if one box is completely to the left, right, above, or below
	if r.Right() < other.X || r.X > other.Right() {
		return false
	}
	if r.Bottom() < other.Y || r.Y > other.Bottom() {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
