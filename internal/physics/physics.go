// Package physics provides the rectangle and vector primitives used for
// movement and collision.
package physics

import "math"

// Rect is an axis-aligned box. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether the two rectangles overlap.
// Rectangles that only share an edge do not overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Vector is a 2D direction or displacement.
type Vector struct {
	X, Y float64
}

// FromAngle returns the unit vector for an angle in radians.
func FromAngle(rad float64) Vector {
	return Vector{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Length returns the Euclidean length of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale multiplies both components by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Normalize returns the unit vector pointing the same way.
// A zero-length vector is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
