// Package core provides fundamental types and utilities for the fighter.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// combat simulation pure and testable.
package core

// Box is an axis-aligned rectangle in world coordinates used for hit, hurt,
// clash and body collision. A box with zero width or height is inactive.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// InactiveBox returns a zero-area box anchored at (x, y).
func InactiveBox(x, y float64) Box {
	return Box{X: x, Y: y}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Active reports whether the box has a non-zero area.
func (b Box) Active() bool {
	return b.W > 0 && b.H > 0
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Overlaps returns true if the half-open extents of a and b intersect on both
// axes. Inactive boxes never overlap anything.
func Overlaps(a, b Box) bool {
	if !a.Active() || !b.Active() {
		return false
	}
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}

// Intersects is the method form of Overlaps.
func (b Box) Intersects(other Box) bool {
	return Overlaps(b, other)
}

// Place converts a sprite-relative box (offsets from an anchor at (x, y)) into
// world space. Facing left mirrors the box horizontally around the anchor.
func Place(rel Box, x, y float64, facing int) Box {
	if facing < 0 {
		return Box{X: x - rel.X - rel.W, Y: y + rel.Y, W: rel.W, H: rel.H}
	}
	return Box{X: x + rel.X, Y: y + rel.Y, W: rel.W, H: rel.H}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
