package plot

import "math"

// ShapeKind identifies the variant held by a Shape.
type ShapeKind uint8

const (
	// ShapeEmpty contains nothing. It is the zero Shape.
	ShapeEmpty ShapeKind = iota
	// ShapeRect is an axis-aligned rectangle.
	ShapeRect
	// ShapeCircle is a disk.
	ShapeCircle
	// ShapeAnnulus is a ring between two concentric circles.
	ShapeAnnulus
	// ShapePolygon is a closed polygon (even-odd rule).
	ShapePolygon
	// ShapeCustom delegates containment to a caller-supplied function.
	ShapeCustom
)

// String returns the string representation of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeEmpty:
		return "Empty"
	case ShapeRect:
		return "Rect"
	case ShapeCircle:
		return "Circle"
	case ShapeAnnulus:
		return "Annulus"
	case ShapePolygon:
		return "Polygon"
	case ShapeCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Shape is a closed union of the regions used for hit-testing and clipping.
// Contains dispatches on the kind with a switch, so the hot hit-testing path
// never goes through an interface call except for custom shapes.
//
// The zero Shape is the empty region: Contains is always false.
type Shape struct {
	kind     ShapeKind
	rect     Rect
	circle   Circle
	annulus  Annulus
	polygon  []ScreenPoint
	bounds   Rect
	contains func(x, y float64) bool
}

// EmptyShape returns the region containing no points.
func EmptyShape() Shape {
	return Shape{}
}

// RectShape wraps a rectangle.
func RectShape(r Rect) Shape {
	return Shape{kind: ShapeRect, rect: r, bounds: r}
}

// CircleShape wraps a circle.
func CircleShape(c Circle) Shape {
	return Shape{kind: ShapeCircle, circle: c, bounds: c.Bounds()}
}

// AnnulusShape wraps an annulus.
func AnnulusShape(a Annulus) Shape {
	return Shape{kind: ShapeAnnulus, annulus: a, bounds: a.Bounds()}
}

// PolygonShape wraps a closed polygon. The points are copied.
// Fewer than three points produce a polygon that contains nothing.
func PolygonShape(points []ScreenPoint) Shape {
	pts := make([]ScreenPoint, len(points))
	copy(pts, points)
	return Shape{kind: ShapePolygon, polygon: pts, bounds: pointsBounds(pts)}
}

// CustomShape wraps a containment function. bounds must enclose every point
// for which contains returns true; it is used for fast rejection.
func CustomShape(bounds Rect, contains func(x, y float64) bool) Shape {
	if contains == nil {
		return EmptyShape()
	}
	return Shape{kind: ShapeCustom, bounds: bounds, contains: contains}
}

// Kind returns the variant held by the shape.
func (s Shape) Kind() ShapeKind {
	return s.kind
}

// IsEmpty reports whether the shape is the empty region.
func (s Shape) IsEmpty() bool {
	return s.kind == ShapeEmpty
}

// Rect returns the rectangle of a ShapeRect; ok is false for other kinds.
func (s Shape) Rect() (r Rect, ok bool) {
	return s.rect, s.kind == ShapeRect
}

// Circle returns the circle of a ShapeCircle; ok is false for other kinds.
func (s Shape) Circle() (c Circle, ok bool) {
	return s.circle, s.kind == ShapeCircle
}

// Annulus returns the annulus of a ShapeAnnulus; ok is false for other kinds.
func (s Shape) Annulus() (a Annulus, ok bool) {
	return s.annulus, s.kind == ShapeAnnulus
}

// Polygon returns a copy of the vertices of a ShapePolygon; ok is false for
// other kinds.
func (s Shape) Polygon() (points []ScreenPoint, ok bool) {
	if s.kind != ShapePolygon {
		return nil, false
	}
	pts := make([]ScreenPoint, len(s.polygon))
	copy(pts, s.polygon)
	return pts, true
}

// Bounds returns the axis-aligned bounding rectangle of the shape.
// The empty shape has zero bounds.
func (s Shape) Bounds() Rect {
	return s.bounds
}

// Contains reports whether (x, y) lies in the shape, using the containment
// rule of the wrapped variant: inclusive for rectangles, strict for circles,
// half-open for annuli, even-odd for polygons.
func (s Shape) Contains(x, y float64) bool {
	switch s.kind {
	case ShapeRect:
		return s.rect.Contains(x, y)
	case ShapeCircle:
		return s.circle.Contains(x, y)
	case ShapeAnnulus:
		return s.annulus.Contains(x, y)
	case ShapePolygon:
		return polygonContains(s.polygon, x, y)
	case ShapeCustom:
		return s.contains(x, y)
	default:
		return false
	}
}

// polygonContains implements the even-odd crossing test.
func polygonContains(pts []ScreenPoint, x, y float64) bool {
	if len(pts) < 3 {
		return false
	}
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) {
			xCross := pi.X + (y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y)
			if x < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// pointsBounds returns the bounding rectangle of a point set.
func pointsBounds(pts []ScreenPoint) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return RectFromCorners(minX, minY, maxX, maxY)
}
