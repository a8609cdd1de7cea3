package text

import (
	"math"

	"github.com/gogpu/plot"
)

// ArrangeOptions controls how a block of text is fitted and placed.
type ArrangeOptions struct {
	// Font is the font used for measuring.
	Font Font

	// Rotation is the clockwise rotation of the block in degrees, in screen
	// space (y down).
	Rotation float64

	// HorizontalAlignment and VerticalAlignment state where the anchor lies
	// on the block. They also align lines of different widths within the
	// block. AlignBaseline puts the anchor on the baseline of the first line.
	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment

	// LineHorizontalAlignment and LineVerticalAlignment select the point of
	// each line that is reported as Line.Position, which is the point a
	// renderer draws that line with the same alignment from.
	LineHorizontalAlignment HorizontalAlignment
	LineVerticalAlignment   VerticalAlignment

	// MaxWidth and MaxHeight bound the block. Zero means unbounded.
	MaxWidth  float64
	MaxHeight float64
}

// Line is one arranged line of text.
type Line struct {
	// Text is the line content after trimming.
	Text string

	// Width is the measured width of Text.
	Width float64

	// Position is the screen-space reference point of the line selected by
	// the line alignment pair.
	Position plot.ScreenPoint
}

// Layout is the result of arranging a block of text.
type Layout struct {
	// Lines contains the retained lines, top to bottom in block space.
	Lines []Line

	// Size is the unrotated size of the block.
	Size plot.Size

	// Metrics are the font metrics the block was arranged with.
	Metrics FontMetrics

	// Rotation is the rotation of the block in degrees.
	Rotation float64

	// Origin is the screen-space position of the block's top-left corner.
	Origin plot.ScreenPoint

	h, v plot.ScreenVector
}

// Corners returns the four corners of the rotated block in the order
// top-left, top-right, bottom-right, bottom-left (block space).
func (l *Layout) Corners() [4]plot.ScreenPoint {
	w := l.h.Mul(l.Size.Width)
	ht := l.v.Mul(l.Size.Height)
	return [4]plot.ScreenPoint{
		l.Origin,
		l.Origin.Add(w),
		l.Origin.Add(w).Add(ht),
		l.Origin.Add(ht),
	}
}

// Bounds returns the axis-aligned bounding rectangle of the rotated block.
func (l *Layout) Bounds() plot.Rect {
	c := l.Corners()
	r := plot.RectFromPoints(c[0], c[2])
	return r.Union(plot.RectFromPoints(c[1], c[3]))
}

// Transform returns the mapping from block space, with the origin at the
// top-left corner of the unrotated block, to screen space.
func (l *Layout) Transform() plot.Transform {
	return plot.Translation(plot.SV(l.Origin.X, l.Origin.Y)).Multiply(plot.Rotation(l.Rotation))
}

// Arranger fits and places text using a Measurer.
//
// Arranger is not safe for concurrent use when its Measurer is not.
type Arranger struct {
	measurer Measurer
	trimmer  Trimmer
	squash   bool
}

// NewArranger creates an arranger that measures with m.
func NewArranger(m Measurer, opts ...ArrangerOption) *Arranger {
	cfg := defaultArrangerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Arranger{measurer: m, trimmer: cfg.trimmer, squash: cfg.squash}
}

// Measurer returns the measurer the arranger was created with.
func (a *Arranger) Measurer() Measurer {
	return a.measurer
}

// Measure returns the size text occupies when fitted into maxSize (zero
// components are unbounded). Empty text measures to a zero size without
// consulting the measurer.
func (a *Arranger) Measure(text string, f Font, maxSize plot.Size) plot.Size {
	if text == "" {
		return plot.Size{}
	}
	b := a.fit(text, f, maxSize.Width, maxSize.Height)
	return b.size
}

// Arrange fits text into the bounds of o and computes the screen-space
// reference point of every retained line around anchor.
func (a *Arranger) Arrange(text string, anchor plot.ScreenPoint, o ArrangeOptions) *Layout {
	h, v := basis(o.Rotation)
	layout := &Layout{Rotation: o.Rotation, Origin: anchor, h: h, v: v}
	if text == "" {
		return layout
	}

	b := a.fit(text, o.Font, o.MaxWidth, o.MaxHeight)
	fm := b.metrics
	layout.Size = b.size
	layout.Metrics = fm

	var anchorY float64
	switch o.VerticalAlignment {
	case AlignMiddle:
		anchorY = b.size.Height / 2
	case AlignBottom:
		anchorY = b.size.Height
	case AlignBaseline:
		anchorY = fm.Ascender
	}
	anchorX := b.size.Width * o.HorizontalAlignment.factor()
	layout.Origin = anchor.Add(h.Mul(-anchorX)).Add(v.Mul(-anchorY))

	lineY := lineOffset(o.LineVerticalAlignment, fm)
	layout.Lines = make([]Line, len(b.lines))
	for i, s := range b.lines {
		w := b.widths[i]
		x := (b.size.Width-w)*o.HorizontalAlignment.factor() + w*o.LineHorizontalAlignment.factor()
		y := float64(i)*fm.LineHeight() + lineY
		layout.Lines[i] = Line{
			Text:     s,
			Width:    w,
			Position: layout.Origin.Add(h.Mul(x)).Add(v.Mul(y)),
		}
	}
	return layout
}

// block is fitted, unplaced text.
type block struct {
	lines   []string
	widths  []float64
	size    plot.Size
	metrics FontMetrics
}

// fit splits, clips and trims text. text must not be empty.
func (a *Arranger) fit(text string, f Font, maxWidth, maxHeight float64) block {
	lines := SplitLines(text)
	fm := a.measurer.FontMetrics(f)
	height := fm.BlockHeight(len(lines))

	if maxHeight > 0 && len(lines) > 1 && height > maxHeight {
		keep := fittingLines(maxHeight, fm)
		if keep < len(lines) {
			plot.Logger().Debug("text: clipping lines to max height",
				"lines", len(lines), "kept", keep, "maxHeight", maxHeight)
			lines = lines[:keep]
		}
		if a.squash {
			height = fm.BlockHeight(len(lines))
		} else {
			height = maxHeight
		}
	}

	widths := make([]float64, len(lines))
	var width float64
	for i, s := range lines {
		widths[i] = a.measurer.MeasureTextWidth(s, f)
		width = math.Max(width, widths[i])
	}

	if maxWidth > 0 && width > maxWidth {
		plot.Logger().Debug("text: trimming lines to max width",
			"width", width, "maxWidth", maxWidth)
		width = 0
		for i, s := range lines {
			if widths[i] > maxWidth {
				lines[i] = a.trimmer.Trim(a.measurer, s, maxWidth, f)
				widths[i] = a.measurer.MeasureTextWidth(lines[i], f)
			}
			width = math.Max(width, widths[i])
		}
	}

	return block{
		lines:   lines,
		widths:  widths,
		size:    plot.Size{Width: width, Height: height},
		metrics: fm,
	}
}

// fittingLines returns how many lines fit into maxHeight, at least one.
func fittingLines(maxHeight float64, fm FontMetrics) int {
	step := fm.LineHeight()
	if step <= 0 {
		return 1
	}
	n := 1 + int(math.Floor((maxHeight-fm.CellHeight())/step))
	return max(n, 1)
}

// lineOffset returns the distance from the top of a line cell to the
// reference point selected by a.
func lineOffset(a VerticalAlignment, fm FontMetrics) float64 {
	switch a {
	case AlignMiddle:
		return fm.CellHeight() / 2
	case AlignBottom:
		return fm.CellHeight()
	case AlignBaseline:
		return fm.CellHeight() - fm.Descender
	default:
		return 0
	}
}

// basis returns the rotated unit vectors along the width and height of the
// block.
func basis(degrees float64) (h, v plot.ScreenVector) {
	rot := plot.Rotation(degrees)
	return rot.ApplyVector(plot.SV(1, 0)), rot.ApplyVector(plot.SV(0, 1))
}
