package render

import (
	"github.com/gogpu/plot"
)

// DrawSpline smooths points with the interpolation algorithm of kind and
// strokes the result. A closed spline ends back at its first point. Fewer
// than two points draw nothing.
func DrawSpline(ctx Context, kind plot.SplineKind, points []plot.ScreenPoint, closed bool, tolerance float64, pen *plot.Pen) error {
	alg, err := kind.Algorithm()
	if err != nil {
		return err
	}
	ctx.DrawLine(alg.CreateScreenSpline(points, closed, tolerance), pen)
	return nil
}

// DrawLineSegments strokes independent segments between consecutive pairs
// of points: (p0, p1), (p2, p3) and so on. A trailing unpaired point is
// ignored.
func DrawLineSegments(ctx Context, points []plot.ScreenPoint, pen *plot.Pen) {
	if pen == nil {
		return
	}
	for i := 0; i+1 < len(points); i += 2 {
		ctx.DrawLine(points[i:i+2], pen)
	}
}

// DrawCircle fills and strokes a circle.
func DrawCircle(ctx Context, c plot.Circle, fill plot.Color, stroke *plot.Pen) {
	ctx.DrawEllipse(c.Bounds(), fill, stroke)
}

// WithClip calls fn with the clip narrowed to shape and restores the clip
// when fn returns.
func WithClip(ctx Context, shape plot.Shape, fn func()) {
	ctx.PushClip(shape)
	defer ctx.PopClip()
	fn()
}

// Draw draws each drawable in order.
func Draw(ctx Context, drawables ...Drawable) {
	for _, d := range drawables {
		if d != nil {
			d.Draw(ctx)
		}
	}
}
