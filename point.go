package plot

import "math"

// ScreenPoint represents a position in screen space (device pixels).
type ScreenPoint struct {
	X, Y float64
}

// UndefinedScreenPoint is the sentinel for a missing screen position.
// Both components are NaN; use IsUndefined to test for it.
var UndefinedScreenPoint = ScreenPoint{X: math.NaN(), Y: math.NaN()}

// SP is a convenience function to create a ScreenPoint.
func SP(x, y float64) ScreenPoint {
	return ScreenPoint{X: x, Y: y}
}

// IsUndefined reports whether the point is the undefined sentinel.
func (p ScreenPoint) IsUndefined() bool {
	return math.IsNaN(p.X) && math.IsNaN(p.Y)
}

// Add returns the point displaced by v.
func (p ScreenPoint) Add(v ScreenVector) ScreenPoint {
	return ScreenPoint{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p ScreenPoint) Sub(q ScreenPoint) ScreenVector {
	return ScreenVector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Offset returns the point displaced by (dx, dy).
func (p ScreenPoint) Offset(dx, dy float64) ScreenPoint {
	return ScreenPoint{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the distance between two points.
func (p ScreenPoint) DistanceTo(q ScreenPoint) float64 {
	return math.Sqrt(p.DistanceToSquared(q))
}

// DistanceToSquared returns the squared distance between two points.
func (p ScreenPoint) DistanceToSquared(q ScreenPoint) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p ScreenPoint) Lerp(q ScreenPoint, t float64) ScreenPoint {
	return ScreenPoint{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IntersectRayWithRay intersects the ray p0 + λ·d0 with the ray p1 + μ·d1.
// It returns false when the directions are parallel, in which case the
// system has no unique solution.
func IntersectRayWithRay(p0 ScreenPoint, d0 ScreenVector, p1 ScreenPoint, d1 ScreenVector) (ScreenPoint, bool) {
	lambda, _, ok := solveRays(p0, d0, p1, d1)
	if !ok {
		return UndefinedScreenPoint, false
	}
	return p0.Add(d0.Mul(lambda)), true
}

// IntersectLineWithLine intersects the segment a0→a1 with the segment b0→b1.
// It returns false for parallel segments and when the intersection of the
// supporting lines lies outside either segment.
func IntersectLineWithLine(a0, a1, b0, b1 ScreenPoint) (ScreenPoint, bool) {
	d0 := a1.Sub(a0)
	d1 := b1.Sub(b0)
	lambda, mu, ok := solveRays(a0, d0, b0, d1)
	if !ok {
		return UndefinedScreenPoint, false
	}
	if lambda < 0 || lambda > 1 || mu < 0 || mu > 1 {
		return UndefinedScreenPoint, false
	}
	return a0.Add(d0.Mul(lambda)), true
}

// solveRays solves p0 + λ·d0 = p1 + μ·d1 by Cramer's rule.
// Parallel directions make the determinant vanish, producing non-finite
// parameters that are reported as no solution.
func solveRays(p0 ScreenPoint, d0 ScreenVector, p1 ScreenPoint, d1 ScreenVector) (lambda, mu float64, ok bool) {
	det := d0.Cross(d1)
	diff := p1.Sub(p0)
	lambda = diff.Cross(d1) / det
	mu = diff.Cross(d0) / det
	if !isFinite(lambda) || !isFinite(mu) {
		return 0, 0, false
	}
	return lambda, mu, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DataPoint represents a position in data space (axis values).
type DataPoint struct {
	X, Y float64
}

// UndefinedDataPoint is the sentinel for a missing data value.
var UndefinedDataPoint = DataPoint{X: math.NaN(), Y: math.NaN()}

// DP is a convenience function to create a DataPoint.
func DP(x, y float64) DataPoint {
	return DataPoint{X: x, Y: y}
}

// IsDefined reports whether both coordinates are numbers.
func (p DataPoint) IsDefined() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}
