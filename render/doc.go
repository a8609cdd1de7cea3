// Package render defines the drawing capability consumed by chart code and
// a command recorder that implements it.
//
// # Context
//
// Context is the narrow interface a platform adapter implements: lines,
// polygons, ellipses, rectangles, text and a clip stack, all expressed in
// the geometry and color types of package plot.
//
// # Recording
//
// A Recorder captures draw calls as typed commands instead of producing
// pixels. Text is arranged through a text.Arranger into one command per
// line, and draw calls whose bounds fall entirely outside the current clip
// are dropped. The finished Recording can be played back onto any Context:
//
//	rec := render.NewRecorder(measurer)
//	rec.PushClip(plot.RectShape(plotArea))
//	rec.DrawLine(points, plot.SolidPen(plot.Blue, 2))
//	rec.DrawText(plot.SP(10, 10), "Title", plot.Black, text.ArrangeOptions{Font: font})
//	rec.PopClip()
//	rec.Finish().Playback(adapter)
//
// # Custom drawing
//
// A Drawable, usually a DrawFunc closure, lets host code inject arbitrary
// drawing into a pass. The recorder keeps the closure and invokes it with
// the playback target.
package render
