// Package core provides fundamental types and utilities for the breakout game
// and the hosts that drive it. It contains no external dependencies (especially
// no Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// SetLength returns v rescaled to the given magnitude, preserving direction.
// A zero vector has no direction and is returned unchanged.
func (v Vec2) SetLength(length float64) Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(length / l)
}

// Rect represents an axis-aligned rectangle used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAtCenter creates a rectangle of size w x h centered on (cx, cy).
func RectAtCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TopEdge returns the top edge as a zero-height rectangle.
func (r Rect) TopEdge() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W}
}

// BottomEdge returns the bottom edge as a zero-height rectangle.
func (r Rect) BottomEdge() Rect {
	return Rect{X: r.X, Y: r.Bottom(), W: r.W}
}

// MovedBy returns the rectangle translated by (dx, dy).
func (r Rect) MovedBy(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Stretched grows the rectangle by d on every side. Negative d shrinks it.
func (r Rect) Stretched(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point p is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// IntersectsCircle reports whether the circle touches or overlaps the
// rectangle. Works for zero-height or zero-width rectangles (edges) too.
func (r Rect) IntersectsCircle(c Circle) bool {
	nearest := Vec2{
		X: ClampF(c.Center.X, r.X, r.Right()),
		Y: ClampF(c.Center.Y, r.Y, r.Bottom()),
	}
	dx := c.Center.X - nearest.X
	dy := c.Center.Y - nearest.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Circle is a disc given by its center and radius.
type Circle struct {
	Center Vec2
	R      float64
}

// NewCircle creates a circle centered on (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{Center: Vec2{X: x, Y: y}, R: r}
}

// MovedBy returns the circle translated by d.
func (c Circle) MovedBy(d Vec2) Circle {
	c.Center = c.Center.Add(d)
	return c
}

// IntersectsRect reports whether the circle touches or overlaps r.
func (c Circle) IntersectsRect(r Rect) bool {
	return r.IntersectsCircle(c)
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
