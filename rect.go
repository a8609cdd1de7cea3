package plot

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle in screen space described by its
// top-left corner and a non-negative size.
//
// Right, Bottom and Center are derived from the four stored fields. The
// setters exist for incremental layout construction and must not be used on
// a rectangle that was handed to a caller as final.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect creates a rectangle from its top-left corner and size.
// It fails with ErrArgumentOutOfRange when width or height is negative.
func NewRect(left, top, width, height float64) (Rect, error) {
	if width < 0 || math.IsNaN(width) {
		return Rect{}, fmt.Errorf("%w: rect width %v must be >= 0", ErrArgumentOutOfRange, width)
	}
	if height < 0 || math.IsNaN(height) {
		return Rect{}, fmt.Errorf("%w: rect height %v must be >= 0", ErrArgumentOutOfRange, height)
	}
	return Rect{Left: left, Top: top, Width: width, Height: height}, nil
}

// RectFromCorners creates the rectangle spanned by two opposite corners.
// The corners may be given in any order.
func RectFromCorners(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Left:   math.Min(x0, x1),
		Top:    math.Min(y0, y1),
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(y1 - y0),
	}
}

// RectFromPoints creates the rectangle spanned by two opposite corner points.
func RectFromPoints(p0, p1 ScreenPoint) Rect {
	return RectFromCorners(p0.X, p0.Y, p1.X, p1.Y)
}

// RectFromPointSize creates a rectangle from its top-left corner and size.
func RectFromPointSize(p ScreenPoint, s Size) Rect {
	return Rect{Left: p.X, Top: p.Y, Width: s.Width, Height: s.Height}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Center returns the center point.
func (r Rect) Center() ScreenPoint {
	return ScreenPoint{X: r.Left + r.Width*0.5, Y: r.Top + r.Height*0.5}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() ScreenPoint {
	return ScreenPoint{X: r.Left, Y: r.Top}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() ScreenPoint {
	return ScreenPoint{X: r.Right(), Y: r.Bottom()}
}

// Size returns the width and height.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// SetRight moves the right edge, keeping Left fixed.
// Setting it left of Left collapses the width to zero.
func (r *Rect) SetRight(right float64) {
	r.Width = math.Max(0, right-r.Left)
}

// SetBottom moves the bottom edge, keeping Top fixed.
// Setting it above Top collapses the height to zero.
func (r *Rect) SetBottom(bottom float64) {
	r.Height = math.Max(0, bottom-r.Top)
}

// SetCenter moves the rectangle so that its center is c, keeping the size.
func (r *Rect) SetCenter(c ScreenPoint) {
	r.Left = c.X - r.Width*0.5
	r.Top = c.Y - r.Height*0.5
}

// Contains reports whether (x, y) lies inside the rectangle.
// The boundary is inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right() && y >= r.Top && y <= r.Bottom()
}

// ContainsPoint reports whether p lies inside the rectangle.
func (r Rect) ContainsPoint(p ScreenPoint) bool {
	return r.Contains(p.X, p.Y)
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects returns true if two rectangles overlap (touching edges count).
func (r Rect) Intersects(other Rect) bool {
	return !(other.Left > r.Right() || other.Right() < r.Left ||
		other.Top > r.Bottom() || other.Bottom() < r.Top)
}

// Intersect returns the intersection of two rectangles.
// Disjoint rectangles produce a zero-size rectangle.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.Left, other.Left)
	y0 := math.Max(r.Top, other.Top)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())

	if x1 < x0 || y1 < y0 {
		return Rect{Left: x0, Top: y0}
	}
	return Rect{Left: x0, Top: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return RectFromCorners(
		math.Min(r.Left, other.Left),
		math.Min(r.Top, other.Top),
		math.Max(r.Right(), other.Right()),
		math.Max(r.Bottom(), other.Bottom()),
	)
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Width: r.Width, Height: r.Height}
}

// Inflate grows the rectangle by dx on the left and right and dy on the top
// and bottom. Negative values shrink it; shrinking below zero size fails with
// ErrArgumentOutOfRange.
func (r Rect) Inflate(dx, dy float64) (Rect, error) {
	return NewRect(r.Left-dx, r.Top-dy, r.Width+2*dx, r.Height+2*dy)
}

// InflateThickness grows each side of the rectangle by the matching side of t.
func (r Rect) InflateThickness(t Thickness) (Rect, error) {
	return NewRect(r.Left-t.Left, r.Top-t.Top, r.Width+t.Left+t.Right, r.Height+t.Top+t.Bottom)
}

// Deflate shrinks each side of the rectangle by the matching side of t.
func (r Rect) Deflate(t Thickness) (Rect, error) {
	return r.InflateThickness(t.Neg())
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.Left, r.Top, r.Width, r.Height)
}
