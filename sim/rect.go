// Package sim is the headless simulation of the panic blob: physics,
// collision against static platforms, and the panic signal that feeds the
// visuals. It has no dependency on ebitengine or donburi.
package sim

import "math"

// Point is a 2D coordinate in screen space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(r.Right(), o.Right()) - x,
		H: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

// Overlap reports whether the open interiors of a and b intersect.
// Rectangles that only share an edge do not overlap.
func Overlap(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by t.
func Lerp(a, b, t float64) float64 {
	return t*(b-a) + a
}
