package plot

import (
	"fmt"
	"math"
)

// Circle is a disk in screen space.
type Circle struct {
	Center ScreenPoint
	Radius float64
}

// NewCircle creates a circle, failing with ErrArgumentOutOfRange for a
// negative radius.
func NewCircle(center ScreenPoint, radius float64) (Circle, error) {
	if radius < 0 || math.IsNaN(radius) {
		return Circle{}, fmt.Errorf("%w: circle radius %v must be >= 0", ErrArgumentOutOfRange, radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Contains reports whether (x, y) lies strictly inside the circle.
// A point at exactly the radius is outside.
func (c Circle) Contains(x, y float64) bool {
	return c.Center.DistanceToSquared(ScreenPoint{X: x, Y: y}) < c.Radius*c.Radius
}

// Bounds returns the bounding square of the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		Left:   c.Center.X - c.Radius,
		Top:    c.Center.Y - c.Radius,
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}

// Inflate returns the circle with its radius grown by d.
func (c Circle) Inflate(d float64) (Circle, error) {
	return NewCircle(c.Center, c.Radius+d)
}

// Offset returns the circle translated by (dx, dy).
func (c Circle) Offset(dx, dy float64) Circle {
	return Circle{Center: c.Center.Offset(dx, dy), Radius: c.Radius}
}

// Intersect combines two concentric circles into the annulus between them.
// It fails with ErrArgumentOutOfRange when the centers differ or the radii
// are equal.
func (c Circle) Intersect(other Circle) (Annulus, error) {
	if c.Center != other.Center {
		return Annulus{}, fmt.Errorf("%w: circles centered at %v and %v are not concentric",
			ErrArgumentOutOfRange, c.Center, other.Center)
	}
	return NewAnnulus(c.Center, math.Min(c.Radius, other.Radius), math.Max(c.Radius, other.Radius))
}

// Annulus is the ring between two concentric circles.
type Annulus struct {
	Center      ScreenPoint
	InnerRadius float64
	OuterRadius float64
}

// NewAnnulus creates an annulus. The inner radius must be >= 0 and the outer
// radius strictly greater than the inner one; otherwise it fails with
// ErrArgumentOutOfRange.
func NewAnnulus(center ScreenPoint, innerRadius, outerRadius float64) (Annulus, error) {
	if innerRadius < 0 || math.IsNaN(innerRadius) {
		return Annulus{}, fmt.Errorf("%w: annulus inner radius %v must be >= 0", ErrArgumentOutOfRange, innerRadius)
	}
	if !(outerRadius > innerRadius) {
		return Annulus{}, fmt.Errorf("%w: annulus outer radius %v must exceed inner radius %v",
			ErrArgumentOutOfRange, outerRadius, innerRadius)
	}
	return Annulus{Center: center, InnerRadius: innerRadius, OuterRadius: outerRadius}, nil
}

// Contains reports whether (x, y) lies in the open ring
// innerRadius < distance < outerRadius.
func (a Annulus) Contains(x, y float64) bool {
	d := a.Center.DistanceToSquared(ScreenPoint{X: x, Y: y})
	return d > a.InnerRadius*a.InnerRadius && d < a.OuterRadius*a.OuterRadius
}

// Bounds returns the bounding square of the outer circle.
func (a Annulus) Bounds() Rect {
	return Circle{Center: a.Center, Radius: a.OuterRadius}.Bounds()
}

// Inflate thickens the ring by d on both edges: the inner radius shrinks by d
// and the outer radius grows by d.
func (a Annulus) Inflate(d float64) (Annulus, error) {
	return NewAnnulus(a.Center, a.InnerRadius-d, a.OuterRadius+d)
}

// Offset returns the annulus translated by (dx, dy).
func (a Annulus) Offset(dx, dy float64) Annulus {
	return Annulus{Center: a.Center.Offset(dx, dy), InnerRadius: a.InnerRadius, OuterRadius: a.OuterRadius}
}
