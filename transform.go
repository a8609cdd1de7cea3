package plot

import "math"

// Transform is a 2D affine transformation in screen space.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translation creates a translation by v.
func Translation(v ScreenVector) Transform {
	return Transform{
		A: 1, B: 0, C: v.X,
		D: 0, E: 1, F: v.Y,
	}
}

// Scaling creates a scaling transformation.
func Scaling(x, y float64) Transform {
	return Transform{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotation creates a clockwise rotation by degrees (screen space, y down).
// Sine and cosine are rounded to 5 decimals so that multiples of 90 degrees
// map axes onto axes exactly.
func Rotation(degrees float64) Transform {
	rad := degrees * math.Pi / 180
	cos := round5(math.Cos(rad))
	sin := round5(math.Sin(rad))
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply returns the transformation that applies other, then t.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Apply transforms a point.
func (t Transform) Apply(p ScreenPoint) ScreenPoint {
	return ScreenPoint{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// ApplyVector transforms a vector, ignoring the translation.
func (t Transform) ApplyVector(v ScreenVector) ScreenVector {
	return ScreenVector{
		X: t.A*v.X + t.B*v.Y,
		Y: t.D*v.X + t.E*v.Y,
	}
}

// Invert returns the inverse transformation. ok is false, and the identity
// is returned, when t is singular.
func (t Transform) Invert() (inv Transform, ok bool) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Transform{
		A: t.E * invDet,
		B: -t.B * invDet,
		C: (t.B*t.F - t.C*t.E) * invDet,
		D: -t.D * invDet,
		E: t.A * invDet,
		F: (t.C*t.D - t.A*t.F) * invDet,
	}, true
}

// IsIdentity reports whether t is the identity transformation.
func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 &&
		t.D == 0 && t.E == 1 && t.F == 0
}

// IsTranslation reports whether t only translates.
func (t Transform) IsTranslation() bool {
	return t.A == 1 && t.B == 0 && t.D == 0 && t.E == 1
}

// TransformRect returns the axis-aligned bounds of r after transformation.
func (t Transform) TransformRect(r Rect) Rect {
	corners := [4]ScreenPoint{
		t.Apply(ScreenPoint{X: r.Left, Y: r.Top}),
		t.Apply(ScreenPoint{X: r.Right(), Y: r.Top}),
		t.Apply(ScreenPoint{X: r.Right(), Y: r.Bottom()}),
		t.Apply(ScreenPoint{X: r.Left, Y: r.Bottom()}),
	}
	return pointsBounds(corners[:])
}

func round5(x float64) float64 {
	r := math.Round(x*1e5) / 1e5
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
