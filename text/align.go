package text

// HorizontalAlignment positions text horizontally relative to a reference
// point.
type HorizontalAlignment uint8

const (
	// AlignLeft puts the reference point at the left edge (default).
	AlignLeft HorizontalAlignment = iota
	// AlignCenter puts the reference point at the horizontal center.
	AlignCenter
	// AlignRight puts the reference point at the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// factor returns the fraction of a width that lies left of the reference
// point.
func (a HorizontalAlignment) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// VerticalAlignment positions text vertically relative to a reference point.
type VerticalAlignment uint8

const (
	// AlignTop puts the reference point at the top edge (default).
	AlignTop VerticalAlignment = iota
	// AlignMiddle puts the reference point at the vertical center.
	AlignMiddle
	// AlignBottom puts the reference point at the bottom edge.
	AlignBottom
	// AlignBaseline puts the reference point on the baseline of the line,
	// one descender above the bottom of the cell.
	AlignBaseline
)

// String returns the string representation of the alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Middle"
	case AlignBottom:
		return "Bottom"
	case AlignBaseline:
		return "Baseline"
	default:
		return "Unknown"
	}
}
