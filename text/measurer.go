package text

// Measurer is the text measurement capability supplied by a platform
// adapter. The layout engine relies on nothing else: metrics for vertical
// layout and the advance width of a single line without breaks.
//
// Implementations must be deterministic for equal inputs. MeasureTextWidth
// must be monotonic in the prefix length of its input, which the binary
// search of BoundaryTrimmer depends on.
type Measurer interface {
	// FontMetrics returns the vertical metrics of font f.
	FontMetrics(f Font) FontMetrics

	// MeasureTextWidth returns the width of a single line of text in pixels.
	MeasureTextWidth(text string, f Font) float64
}
