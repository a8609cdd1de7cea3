package plot

import "fmt"

// Thickness describes the four sides of a frame or margin.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// UniformThickness returns a Thickness with all sides set to v.
func UniformThickness(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Width returns the sum of the left and right sides.
func (t Thickness) Width() float64 {
	return t.Left + t.Right
}

// Height returns the sum of the top and bottom sides.
func (t Thickness) Height() float64 {
	return t.Top + t.Bottom
}

// Inflate returns the thickness with d added to every side.
func (t Thickness) Inflate(d float64) Thickness {
	return Thickness{Left: t.Left + d, Top: t.Top + d, Right: t.Right + d, Bottom: t.Bottom + d}
}

// Include returns the side-wise maximum of two thicknesses.
func (t Thickness) Include(other Thickness) Thickness {
	return Thickness{
		Left:   max(t.Left, other.Left),
		Top:    max(t.Top, other.Top),
		Right:  max(t.Right, other.Right),
		Bottom: max(t.Bottom, other.Bottom),
	}
}

// Neg returns the thickness with every side negated.
func (t Thickness) Neg() Thickness {
	return Thickness{Left: -t.Left, Top: -t.Top, Right: -t.Right, Bottom: -t.Bottom}
}

func (t Thickness) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", t.Left, t.Top, t.Right, t.Bottom)
}
