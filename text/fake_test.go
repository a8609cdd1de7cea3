package text

import "unicode/utf8"

// fakeMeasurer gives every rune the same width and counts its calls.
type fakeMeasurer struct {
	charWidth float64
	metrics   FontMetrics
	calls     int
}

// newFakeMeasurer returns a measurer with 10px runes and a 12px cell
// (ascender 10, descender 2) separated by 2px of leading.
func newFakeMeasurer() *fakeMeasurer {
	return &fakeMeasurer{
		charWidth: 10,
		metrics:   FontMetrics{Ascender: 10, Descender: 2, Leading: 2},
	}
}

func (m *fakeMeasurer) FontMetrics(Font) FontMetrics {
	m.calls++
	return m.metrics
}

func (m *fakeMeasurer) MeasureTextWidth(s string, _ Font) float64 {
	m.calls++
	return float64(utf8.RuneCountInString(s)) * m.charWidth
}

var testFont = Font{Family: "Test", Size: 12, Weight: WeightNormal}
