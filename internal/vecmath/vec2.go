package vecmath

import "math"

// Vec2 is a 2D real-valued vector. Value type; every operation returns a new vector.
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// MagnitudeSq returns the squared length without a sqrt.
// Use on hot comparison paths (overlap tests).
func (v Vec2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// Normalize returns the unit vector, zero-safe.
func (v Vec2) Normalize() Vec2 {
	l := v.Magnitude()
	if l == 0 {
		return Zero
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsFinite reports whether neither component is NaN or Inf.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Lerp returns a*t + b*(1-t).
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Scale(t).Add(b.Scale(1 - t))
}

// Free-function forms, for call sites that read better without a receiver.

func Add(a, b Vec2) Vec2           { return a.Add(b) }
func Sub(a, b Vec2) Vec2           { return a.Sub(b) }
func Dot(a, b Vec2) float64        { return a.Dot(b) }
func Scale(v Vec2, k float64) Vec2 { return v.Scale(k) }
func Magnitude(v Vec2) float64     { return v.Magnitude() }
func MagnitudeSq(v Vec2) float64   { return v.MagnitudeSq() }
