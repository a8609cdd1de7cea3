package plot

import (
	"fmt"
	"strings"
)

// LineStyle is a logical stroke pattern. It resolves to a concrete dash
// pattern through DashArray.
type LineStyle uint8

const (
	// LineStyleSolid is a continuous line.
	LineStyleSolid LineStyle = iota
	LineStyleDash
	LineStyleDot
	LineStyleDashDot
	LineStyleDashDashDot
	LineStyleDashDotDot
	LineStyleDashDashDotDot
	LineStyleLongDash
	LineStyleLongDashDot
	LineStyleLongDashDotDot
	// LineStyleNone draws nothing.
	LineStyleNone
	// LineStyleAutomatic lets the renderer pick a style (see Actual).
	LineStyleAutomatic
)

var lineStyleNames = [...]string{
	LineStyleSolid:          "Solid",
	LineStyleDash:           "Dash",
	LineStyleDot:            "Dot",
	LineStyleDashDot:        "DashDot",
	LineStyleDashDashDot:    "DashDashDot",
	LineStyleDashDotDot:     "DashDotDot",
	LineStyleDashDashDotDot: "DashDashDotDot",
	LineStyleLongDash:       "LongDash",
	LineStyleLongDashDot:    "LongDashDot",
	LineStyleLongDashDotDot: "LongDashDotDot",
	LineStyleNone:           "None",
	LineStyleAutomatic:      "Automatic",
}

// String returns the string representation of the line style.
func (s LineStyle) String() string {
	if int(s) < len(lineStyleNames) {
		return lineStyleNames[s]
	}
	return "Unknown"
}

// ParseLineStyle parses a line style name (case-insensitive).
func ParseLineStyle(name string) (LineStyle, error) {
	for i, n := range lineStyleNames {
		if strings.EqualFold(n, name) {
			return LineStyle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown line style %q", ErrInvalidArgument, name)
}

// DashArray returns the dash pattern of the style in units of the stroke
// thickness. Solid, None and Automatic return nil.
func (s LineStyle) DashArray() []float64 {
	switch s {
	case LineStyleDash:
		return []float64{4, 4}
	case LineStyleDot:
		return []float64{1, 1}
	case LineStyleDashDot:
		return []float64{4, 4, 1, 4}
	case LineStyleDashDashDot:
		return []float64{4, 4, 4, 4, 1, 4}
	case LineStyleDashDotDot:
		return []float64{4, 4, 1, 4, 1, 4}
	case LineStyleDashDashDotDot:
		return []float64{4, 4, 4, 4, 1, 4, 1, 4}
	case LineStyleLongDash:
		return []float64{10, 4}
	case LineStyleLongDashDot:
		return []float64{10, 4, 1, 4}
	case LineStyleLongDashDotDot:
		return []float64{10, 4, 1, 4, 1, 4}
	default:
		return nil
	}
}

// Actual resolves LineStyleAutomatic to def.
func (s LineStyle) Actual(def LineStyle) LineStyle {
	if s == LineStyleAutomatic {
		return def
	}
	return s
}

// LineJoin specifies the shape at the corners of stroked lines.
type LineJoin uint8

const (
	// LineJoinMiter extends the outer edges to a sharp corner.
	LineJoinMiter LineJoin = iota
	// LineJoinRound rounds the corner.
	LineJoinRound
	// LineJoinBevel cuts the corner off.
	LineJoinBevel
)

// String returns the string representation of the line join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinRound:
		return "Round"
	case LineJoinBevel:
		return "Bevel"
	default:
		return "Unknown"
	}
}

// minPenThickness is the thickness below which a pen draws nothing.
const minPenThickness = 1e-4

// Pen describes how a line is stroked.
type Pen struct {
	Color     Color
	Thickness float64
	LineStyle LineStyle
	LineJoin  LineJoin

	// DashArray, when non-nil, overrides the pattern implied by LineStyle.
	// Lengths are in units of Thickness.
	DashArray []float64
}

// NewPen creates a pen. It returns nil, meaning "no pen", when the color is
// invisible, the style is LineStyleNone, or the thickness is effectively 0.
func NewPen(c Color, thickness float64, style LineStyle, join LineJoin) *Pen {
	if c.IsInvisible() || style == LineStyleNone || thickness < minPenThickness {
		return nil
	}
	return &Pen{Color: c, Thickness: thickness, LineStyle: style, LineJoin: join}
}

// SolidPen creates a solid pen with miter joins, or nil (see NewPen).
func SolidPen(c Color, thickness float64) *Pen {
	return NewPen(c, thickness, LineStyleSolid, LineJoinMiter)
}

// ActualDashArray returns the explicit DashArray if set, otherwise the
// pattern of LineStyle. A nil pen has no pattern.
func (p *Pen) ActualDashArray() []float64 {
	if p == nil {
		return nil
	}
	if p.DashArray != nil {
		return p.DashArray
	}
	return p.LineStyle.DashArray()
}

// Dash returns the dash pattern in screen units (scaled by Thickness), or
// nil for a solid line.
func (p *Pen) Dash() *Dash {
	if p == nil {
		return nil
	}
	return NewDash(p.ActualDashArray()...).Scale(p.Thickness)
}
