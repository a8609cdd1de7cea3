package render

import (
	"github.com/gogpu/plot"
	"github.com/gogpu/plot/text"
)

// Context is the set of primitive drawing operations a platform adapter
// provides.
//
// A nil pen draws no outline and an invisible fill color draws no fill.
// Contexts are not safe for concurrent use.
type Context interface {
	// DrawLine strokes the polyline through points.
	DrawLine(points []plot.ScreenPoint, pen *plot.Pen)

	// DrawPolygon fills and strokes the closed polygon through points.
	DrawPolygon(points []plot.ScreenPoint, fill plot.Color, stroke *plot.Pen)

	// DrawEllipse fills and strokes the ellipse inscribed in rect.
	DrawEllipse(rect plot.Rect, fill plot.Color, stroke *plot.Pen)

	// DrawRectangle fills and strokes rect.
	DrawRectangle(rect plot.Rect, fill plot.Color, stroke *plot.Pen)

	// DrawText draws s at p. The alignment fields of o state where p lies
	// on the text block; MaxWidth and MaxHeight bound it.
	DrawText(p plot.ScreenPoint, s string, c plot.Color, o text.ArrangeOptions)

	// MeasureText returns the unrotated size of s in font f.
	MeasureText(s string, f text.Font) plot.Size

	// PushClip narrows the clip to its intersection with shape.
	PushClip(shape plot.Shape)

	// PopClip restores the clip in effect before the last PushClip. It
	// reports false when no clip is pushed.
	PopClip() bool

	// ClipDepth returns the number of pushed clip regions.
	ClipDepth() int
}

// Drawable draws itself onto a Context.
type Drawable interface {
	Draw(ctx Context)
}

// DrawFunc adapts a function to the Drawable interface.
type DrawFunc func(ctx Context)

// Draw implements Drawable.
func (f DrawFunc) Draw(ctx Context) {
	f(ctx)
}
