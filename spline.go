package plot

import (
	"fmt"
	"math"
	"strings"
)

// InterpolationAlgorithm turns a polyline into a denser polyline that
// approximates a smooth curve through the control points.
//
// tolerance bounds the distance between consecutive output points; it is a
// distance in the space of the input points, not a point count; a
// non-positive tolerance subdivides to the maximum depth. Inputs with fewer
// than two points are returned unchanged.
type InterpolationAlgorithm interface {
	CreateSpline(points []DataPoint, closed bool, tolerance float64) []DataPoint
	CreateScreenSpline(points []ScreenPoint, closed bool, tolerance float64) []ScreenPoint
}

// Predefined algorithms.
var (
	// CanonicalSplineDefault is a cardinal spline with tension 0.5.
	CanonicalSplineDefault = CanonicalSpline{Tension: 0.5}

	// CatmullRomUniform uses uniform knot spacing (alpha 0).
	CatmullRomUniform = CatmullRomSpline{Alpha: 0}

	// CatmullRomCentripetal uses centripetal knot spacing (alpha 0.5). It
	// avoids cusps and self-intersections within a segment and is the
	// default smoothing algorithm.
	CatmullRomCentripetal = CatmullRomSpline{Alpha: 0.5}

	// CatmullRomChordal uses chordal knot spacing (alpha 1).
	CatmullRomChordal = CatmullRomSpline{Alpha: 1}
)

// SplineKind selects one of the predefined interpolation algorithms.
type SplineKind uint8

const (
	SplineCanonical SplineKind = iota
	SplineCatmullRomUniform
	SplineCatmullRomCentripetal
	SplineCatmullRomChordal
)

var splineKindNames = [...]string{
	SplineCanonical:             "Canonical",
	SplineCatmullRomUniform:     "CatmullRomUniform",
	SplineCatmullRomCentripetal: "CatmullRomCentripetal",
	SplineCatmullRomChordal:     "CatmullRomChordal",
}

// String returns the string representation of the spline kind.
func (k SplineKind) String() string {
	if int(k) < len(splineKindNames) {
		return splineKindNames[k]
	}
	return "Unknown"
}

// ParseSplineKind parses a spline kind name (case-insensitive).
func ParseSplineKind(name string) (SplineKind, error) {
	for i, n := range splineKindNames {
		if strings.EqualFold(n, name) {
			return SplineKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown spline algorithm %q", ErrInvalidArgument, name)
}

// Algorithm returns the algorithm selected by k. Unknown kinds fail with
// ErrInvalidArgument.
func (k SplineKind) Algorithm() (InterpolationAlgorithm, error) {
	switch k {
	case SplineCanonical:
		return CanonicalSplineDefault, nil
	case SplineCatmullRomUniform:
		return CatmullRomUniform, nil
	case SplineCatmullRomCentripetal:
		return CatmullRomCentripetal, nil
	case SplineCatmullRomChordal:
		return CatmullRomChordal, nil
	default:
		return nil, fmt.Errorf("%w: unknown spline algorithm %d", ErrInvalidArgument, uint8(k))
	}
}

// CreateSpline smooths points with the algorithm selected by kind.
// The kind is validated before the points are inspected.
func CreateSpline(kind SplineKind, points []DataPoint, closed bool, tolerance float64) ([]DataPoint, error) {
	alg, err := kind.Algorithm()
	if err != nil {
		return nil, err
	}
	return alg.CreateSpline(points, closed, tolerance), nil
}

// CanonicalSpline is a cardinal spline. The tangent at each control point is
// the chord between its neighbors scaled by Tension; 0.5 reproduces the
// uniform Catmull–Rom curve and 0 yields straight segments.
type CanonicalSpline struct {
	Tension float64
}

// CreateSpline implements InterpolationAlgorithm.
func (s CanonicalSpline) CreateSpline(points []DataPoint, closed bool, tolerance float64) []DataPoint {
	return splineOf(s, points, closed, tolerance)
}

// CreateScreenSpline implements InterpolationAlgorithm.
func (s CanonicalSpline) CreateScreenSpline(points []ScreenPoint, closed bool, tolerance float64) []ScreenPoint {
	return splineOf(s, points, closed, tolerance)
}

// tangents returns the Hermite tangents of the segment p1→p2.
func (s CanonicalSpline) tangents(p0, p1, p2, p3 ScreenPoint) (ScreenVector, ScreenVector) {
	return p2.Sub(p0).Mul(s.Tension), p3.Sub(p1).Mul(s.Tension)
}

// openEnd duplicates the endpoint, so the end tangent follows the first or
// last chord.
func (CanonicalSpline) openEnd(end, _ ScreenPoint) ScreenPoint {
	return end
}

// CatmullRomSpline is the Catmull–Rom family parametrized by Alpha, the
// exponent applied to the distance between consecutive control points when
// spacing the knots: 0 is uniform, 0.5 centripetal, 1 chordal.
type CatmullRomSpline struct {
	Alpha float64
}

// CreateSpline implements InterpolationAlgorithm.
func (s CatmullRomSpline) CreateSpline(points []DataPoint, closed bool, tolerance float64) []DataPoint {
	return splineOf(s, points, closed, tolerance)
}

// CreateScreenSpline implements InterpolationAlgorithm.
func (s CatmullRomSpline) CreateScreenSpline(points []ScreenPoint, closed bool, tolerance float64) []ScreenPoint {
	return splineOf(s, points, closed, tolerance)
}

// tangents returns the Hermite tangents of the segment p1→p2 for the
// non-uniform knot sequence t0..t3, rescaled to the unit parameter of the
// segment.
func (s CatmullRomSpline) tangents(p0, p1, p2, p3 ScreenPoint) (ScreenVector, ScreenVector) {
	d01 := s.knotInterval(p0, p1)
	d12 := s.knotInterval(p1, p2)
	d23 := s.knotInterval(p2, p3)

	v1 := p1.Sub(p0).Mul(1 / d01).
		Sub(p2.Sub(p0).Mul(1 / (d01 + d12))).
		Add(p2.Sub(p1).Mul(1 / d12))
	v2 := p2.Sub(p1).Mul(1 / d12).
		Sub(p3.Sub(p1).Mul(1 / (d12 + d23))).
		Add(p3.Sub(p2).Mul(1 / d23))
	return v1.Mul(d12), v2.Mul(d12)
}

// knotInterval returns |b-a|^alpha. Coincident points get a unit interval,
// which keeps the tangent finite.
func (s CatmullRomSpline) knotInterval(a, b ScreenPoint) float64 {
	d := math.Pow(a.DistanceTo(b), s.Alpha)
	if d < 1e-12 || !isFinite(d) {
		return 1
	}
	return d
}

// openEnd reflects the neighbor through the endpoint. Duplicating the
// endpoint would produce a zero knot interval.
func (CatmullRomSpline) openEnd(end, neighbor ScreenPoint) ScreenPoint {
	return ScreenPoint{X: 2*end.X - neighbor.X, Y: 2*end.Y - neighbor.Y}
}

// hermiteSpline is implemented by both spline families: they differ only in
// how segment tangents and open-end phantom points are derived.
type hermiteSpline interface {
	tangents(p0, p1, p2, p3 ScreenPoint) (ScreenVector, ScreenVector)
	openEnd(end, neighbor ScreenPoint) ScreenPoint
}

// maxSubdivisionDepth bounds the bisection of a single segment
// (at most 2^maxSubdivisionDepth output points per segment).
const maxSubdivisionDepth = 12

// splineOf converts between the point types and runs the shared algorithm.
// DataPoint and ScreenPoint share their underlying type.
func splineOf[P DataPoint | ScreenPoint](s hermiteSpline, points []P, closed bool, tolerance float64) []P {
	if len(points) < 2 {
		return points
	}

	pts := make([]ScreenPoint, len(points))
	for i, p := range points {
		pts[i] = ScreenPoint(p)
	}

	out := hermiteCurve(s, pts, closed, tolerance)

	result := make([]P, len(out))
	for i, p := range out {
		result[i] = P(p)
	}
	return result
}

// hermiteCurve emits the first control point followed by the subdivided
// interior of each segment. Closed curves end back at the first point.
// Every control point appears in the output exactly as given.
func hermiteCurve(s hermiteSpline, pts []ScreenPoint, closed bool, tolerance float64) []ScreenPoint {
	n := len(pts)
	at := func(i int) ScreenPoint {
		switch {
		case closed:
			return pts[((i%n)+n)%n]
		case i < 0:
			return s.openEnd(pts[0], pts[1])
		case i >= n:
			return s.openEnd(pts[n-1], pts[n-2])
		default:
			return pts[i]
		}
	}

	segments := n - 1
	if closed {
		segments = n
	}

	out := make([]ScreenPoint, 0, n*4)
	out = append(out, pts[0])
	for i := 0; i < segments; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		if p1 == p2 {
			// Repeated control point: nothing to draw.
			continue
		}
		m1, m2 := s.tangents(p0, p1, p2, p3)
		seg := hermiteSegment{p1: p1, p2: p2, m1: m1, m2: m2}
		out = seg.subdivide(out, 0, p1, 1, p2, tolerance, 0)
	}
	return out
}

// hermiteSegment is the cubic Hermite curve from p1 to p2 with end tangents
// m1 and m2 over the unit parameter interval.
type hermiteSegment struct {
	p1, p2 ScreenPoint
	m1, m2 ScreenVector
}

// eval evaluates the segment at t in [0, 1].
func (h hermiteSegment) eval(t float64) ScreenPoint {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return ScreenPoint{
		X: h00*h.p1.X + h10*h.m1.X + h01*h.p2.X + h11*h.m2.X,
		Y: h00*h.p1.Y + h10*h.m1.Y + h01*h.p2.Y + h11*h.m2.Y,
	}
}

// subdivide appends points of the segment between parameters t0 and t1
// (excluding a, including b). An interval is accepted once the polyline
// through its midpoint is no longer than tolerance, which bounds the
// distance between consecutive output points.
func (h hermiteSegment) subdivide(out []ScreenPoint, t0 float64, a ScreenPoint, t1 float64, b ScreenPoint, tolerance float64, depth int) []ScreenPoint {
	tm := (t0 + t1) / 2
	m := h.eval(tm)
	if depth >= maxSubdivisionDepth || a.DistanceTo(m)+m.DistanceTo(b) <= tolerance {
		return append(out, b)
	}
	out = h.subdivide(out, t0, a, tm, m, tolerance, depth+1)
	return h.subdivide(out, tm, m, t1, b, tolerance, depth+1)
}
