package render

import (
	"slices"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/clip"
	"github.com/gogpu/plot/text"
)

// Recorder captures drawing operations as commands. It implements Context,
// so chart code draws onto it exactly as onto a platform adapter. Use
// Finish to obtain a Recording that can be played back onto any Context.
//
// Degenerate draw calls (a polyline with fewer than two points, a polygon
// with fewer than three, nothing visible to fill or stroke, empty text)
// record nothing. With culling enabled, draw calls whose bounds lie
// entirely outside the current clip record nothing either.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	arranger *text.Arranger
	culling  bool

	clips    clip.Stack
	commands []Command
	culled   int
}

// NewRecorder creates a recorder that measures and arranges text with m.
func NewRecorder(m text.Measurer, opts ...RecorderOption) *Recorder {
	cfg := defaultRecorderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	arranger := cfg.arranger
	if arranger == nil {
		arranger = text.NewArranger(m)
	}
	return &Recorder{
		arranger: arranger,
		culling:  cfg.culling,
		commands: make([]Command, 0, 64),
	}
}

// DrawLine implements Context.
func (r *Recorder) DrawLine(points []plot.ScreenPoint, pen *plot.Pen) {
	if len(points) < 2 || pen == nil {
		return
	}
	if r.cull(strokeBounds(points, pen)) {
		return
	}
	r.commands = append(r.commands, LineCommand{Points: slices.Clone(points), Pen: pen})
}

// DrawPolygon implements Context.
func (r *Recorder) DrawPolygon(points []plot.ScreenPoint, fill plot.Color, stroke *plot.Pen) {
	if len(points) < 3 || (!fill.IsVisible() && stroke == nil) {
		return
	}
	if r.cull(strokeBounds(points, stroke)) {
		return
	}
	r.commands = append(r.commands, PolygonCommand{Points: slices.Clone(points), Fill: fill, Stroke: stroke})
}

// DrawEllipse implements Context.
func (r *Recorder) DrawEllipse(rect plot.Rect, fill plot.Color, stroke *plot.Pen) {
	if !fill.IsVisible() && stroke == nil {
		return
	}
	if r.cull(growByPen(rect, stroke)) {
		return
	}
	r.commands = append(r.commands, EllipseCommand{Rect: rect, Fill: fill, Stroke: stroke})
}

// DrawRectangle implements Context.
func (r *Recorder) DrawRectangle(rect plot.Rect, fill plot.Color, stroke *plot.Pen) {
	if !fill.IsVisible() && stroke == nil {
		return
	}
	if r.cull(growByPen(rect, stroke)) {
		return
	}
	r.commands = append(r.commands, RectangleCommand{Rect: rect, Fill: fill, Stroke: stroke})
}

// DrawText implements Context. The text is arranged into lines, each
// recorded as a TextCommand positioned with the block's alignment, so a
// multi-line label plays back identically on contexts that only draw
// single lines. The line alignment fields of o are ignored.
func (r *Recorder) DrawText(p plot.ScreenPoint, s string, c plot.Color, o text.ArrangeOptions) {
	if s == "" || !c.IsVisible() {
		return
	}
	o.LineHorizontalAlignment = o.HorizontalAlignment
	o.LineVerticalAlignment = o.VerticalAlignment

	layout := r.arranger.Arrange(s, p, o)
	if r.cull(layout.Bounds()) {
		return
	}
	for _, line := range layout.Lines {
		if line.Text == "" {
			continue
		}
		r.commands = append(r.commands, TextCommand{
			Position:            line.Position,
			Text:                line.Text,
			Color:               c,
			Font:                o.Font,
			Rotation:            o.Rotation,
			HorizontalAlignment: o.HorizontalAlignment,
			VerticalAlignment:   o.VerticalAlignment,
		})
	}
}

// MeasureText implements Context.
func (r *Recorder) MeasureText(s string, f text.Font) plot.Size {
	return r.arranger.Measure(s, f, plot.Size{})
}

// PushClip implements Context.
func (r *Recorder) PushClip(shape plot.Shape) {
	r.clips.Push(shape)
	r.commands = append(r.commands, PushClipCommand{Shape: shape})
}

// PopClip implements Context.
func (r *Recorder) PopClip() bool {
	if !r.clips.Pop() {
		return false
	}
	r.commands = append(r.commands, PopClipCommand{})
	return true
}

// ClipDepth implements Context.
func (r *Recorder) ClipDepth() int {
	return r.clips.Depth()
}

// Clip returns the current clip stack. It must not be modified.
func (r *Recorder) Clip() *clip.Stack {
	return &r.clips
}

// DrawCustom records d. It is invoked with the playback target, so it is
// never culled.
func (r *Recorder) DrawCustom(d Drawable) {
	if d == nil {
		return
	}
	r.commands = append(r.commands, CustomCommand{Drawable: d})
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Culled returns the number of draw calls dropped because they lay outside
// the clip.
func (r *Recorder) Culled() int {
	return r.culled
}

// Finish returns a Recording of all commands and resets the recorder.
// Clip regions still pushed are popped in the recording so that playback
// leaves the target's clip stack as it found it.
func (r *Recorder) Finish() *Recording {
	if depth := r.clips.Depth(); depth > 0 {
		plot.Logger().Warn("render: unbalanced clip stack at finish", "depth", depth)
		for r.PopClip() {
		}
	}
	rec := &Recording{commands: r.commands, culled: r.culled}
	r.commands = make([]Command, 0, 64)
	r.culled = 0
	return rec
}

// cull reports whether bounds lies entirely outside the current clip and
// counts the dropped call.
func (r *Recorder) cull(bounds plot.Rect) bool {
	if !r.culling || r.clips.Intersects(bounds) {
		return false
	}
	r.culled++
	return true
}

// Recording is an immutable list of recorded drawing commands.
type Recording struct {
	commands []Command
	culled   int
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Culled returns the number of draw calls dropped while recording.
func (r *Recording) Culled() int {
	return r.culled
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto ctx in order.
func (r *Recording) Playback(ctx Context) {
	for _, c := range r.commands {
		c.replay(ctx)
	}
}
