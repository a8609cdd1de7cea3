package plot

import "math"

// ScreenVector represents a displacement in screen space.
// Unlike ScreenPoint which represents a position, ScreenVector represents a
// direction and magnitude.
type ScreenVector struct {
	X, Y float64
}

// SV is a convenience function to create a ScreenVector.
func SV(x, y float64) ScreenVector {
	return ScreenVector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v ScreenVector) Add(w ScreenVector) ScreenVector {
	return ScreenVector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v ScreenVector) Sub(w ScreenVector) ScreenVector {
	return ScreenVector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v ScreenVector) Mul(s float64) ScreenVector {
	return ScreenVector{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v ScreenVector) Neg() ScreenVector {
	return ScreenVector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v ScreenVector) Dot(w ScreenVector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v ScreenVector) Cross(w ScreenVector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v ScreenVector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length of the vector.
func (v ScreenVector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector is returned unchanged.
func (v ScreenVector) Normalize() ScreenVector {
	length := v.Length()
	if length == 0 {
		return v
	}
	return ScreenVector{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees, towards +Y in
// screen space).
func (v ScreenVector) Perp() ScreenVector {
	return ScreenVector{X: -v.Y, Y: v.X}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v ScreenVector) Approx(w ScreenVector, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}
