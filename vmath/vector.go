package vmath

import "math"

// Vec2 is a 2D vector in world units, y axis pointing up
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both axes by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Half returns v scaled by 0.5, used to turn extents into half-extents
func (v Vec2) Half() Vec2 {
	return Vec2{X: v.X / 2, Y: v.Y / 2}
}

// Neg returns the vector pointing the opposite way
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean magnitude
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// ReflectAxisX returns velocity reflected off a vertical boundary
func (v Vec2) ReflectAxisX() Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal boundary
func (v Vec2) ReflectAxisY() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// Clamp restricts val to [lo, hi]; lo wins when the range is inverted
func Clamp(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// ApproxEqual reports whether a and b differ by at most tolerance
// Tolerance 0 degrades to exact comparison
func ApproxEqual(a, b, tolerance float64) bool {
	if tolerance <= 0 {
		return a == b
	}
	return math.Abs(a-b) <= tolerance
}
