package render

import (
	"math"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/text"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Drawing commands
	CmdLine      CommandType = iota // Stroke a polyline
	CmdPolygon                      // Fill and stroke a polygon
	CmdEllipse                      // Fill and stroke an ellipse
	CmdRectangle                    // Fill and stroke a rectangle
	CmdText                         // Draw one line of text

	// Clip commands
	CmdPushClip // Push a clip region
	CmdPopClip  // Pop the last clip region

	// Custom drawing
	CmdCustom // Invoke a Drawable
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdLine:      "Line",
	CmdPolygon:   "Polygon",
	CmdEllipse:   "Ellipse",
	CmdRectangle: "Rectangle",
	CmdText:      "Text",
	CmdPushClip:  "PushClip",
	CmdPopClip:   "PopClip",
	CmdCustom:    "Custom",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// replay issues the command to ctx.
	replay(ctx Context)
}

// LineCommand strokes a polyline.
type LineCommand struct {
	Points []plot.ScreenPoint
	Pen    *plot.Pen
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

func (c LineCommand) replay(ctx Context) { ctx.DrawLine(c.Points, c.Pen) }

// PolygonCommand fills and strokes a closed polygon.
type PolygonCommand struct {
	Points []plot.ScreenPoint
	Fill   plot.Color
	Stroke *plot.Pen
}

// Type implements Command.
func (PolygonCommand) Type() CommandType { return CmdPolygon }

func (c PolygonCommand) replay(ctx Context) { ctx.DrawPolygon(c.Points, c.Fill, c.Stroke) }

// EllipseCommand fills and strokes the ellipse inscribed in Rect.
type EllipseCommand struct {
	Rect   plot.Rect
	Fill   plot.Color
	Stroke *plot.Pen
}

// Type implements Command.
func (EllipseCommand) Type() CommandType { return CmdEllipse }

func (c EllipseCommand) replay(ctx Context) { ctx.DrawEllipse(c.Rect, c.Fill, c.Stroke) }

// RectangleCommand fills and strokes a rectangle.
type RectangleCommand struct {
	Rect   plot.Rect
	Fill   plot.Color
	Stroke *plot.Pen
}

// Type implements Command.
func (RectangleCommand) Type() CommandType { return CmdRectangle }

func (c RectangleCommand) replay(ctx Context) { ctx.DrawRectangle(c.Rect, c.Fill, c.Stroke) }

// TextCommand draws a single arranged line of text. Position is the point
// of the line selected by the alignment pair.
type TextCommand struct {
	Position            plot.ScreenPoint
	Text                string
	Color               plot.Color
	Font                text.Font
	Rotation            float64
	HorizontalAlignment text.HorizontalAlignment
	VerticalAlignment   text.VerticalAlignment
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

func (c TextCommand) replay(ctx Context) {
	ctx.DrawText(c.Position, c.Text, c.Color, text.ArrangeOptions{
		Font:                    c.Font,
		Rotation:                c.Rotation,
		HorizontalAlignment:     c.HorizontalAlignment,
		VerticalAlignment:       c.VerticalAlignment,
		LineHorizontalAlignment: c.HorizontalAlignment,
		LineVerticalAlignment:   c.VerticalAlignment,
	})
}

// PushClipCommand pushes a clip region.
type PushClipCommand struct {
	Shape plot.Shape
}

// Type implements Command.
func (PushClipCommand) Type() CommandType { return CmdPushClip }

func (c PushClipCommand) replay(ctx Context) { ctx.PushClip(c.Shape) }

// PopClipCommand pops the last clip region.
type PopClipCommand struct{}

// Type implements Command.
func (PopClipCommand) Type() CommandType { return CmdPopClip }

func (PopClipCommand) replay(ctx Context) { ctx.PopClip() }

// CustomCommand invokes a Drawable with the playback target.
type CustomCommand struct {
	Drawable Drawable
}

// Type implements Command.
func (CustomCommand) Type() CommandType { return CmdCustom }

func (c CustomCommand) replay(ctx Context) { c.Drawable.Draw(ctx) }

// strokeBounds returns the bounding rectangle of points grown by half the
// pen thickness.
func strokeBounds(points []plot.ScreenPoint, pen *plot.Pen) plot.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	r := plot.RectFromCorners(minX, minY, maxX, maxY)
	return growByPen(r, pen)
}

// growByPen grows r by half the thickness of pen on every side.
func growByPen(r plot.Rect, pen *plot.Pen) plot.Rect {
	if pen == nil {
		return r
	}
	h := pen.Thickness / 2
	return plot.Rect{Left: r.Left - h, Top: r.Top - h, Width: r.Width + 2*h, Height: r.Height + 2*h}
}
