package text

import "fmt"

// FontMetrics describes the vertical layout of a font at a given size,
// independent of the text being drawn. All values are in pixels.
type FontMetrics struct {
	// Ascender is the distance from the baseline to the top of the cell.
	Ascender float64

	// Descender is the distance from the baseline to the bottom of the cell
	// (positive, below baseline).
	Descender float64

	// Leading is the extra space between the cells of consecutive lines.
	Leading float64
}

// NewFontMetrics validates and creates font metrics.
// It fails with ErrInvalidFontMetrics when ascender or descender is negative.
func NewFontMetrics(ascender, descender, leading float64) (FontMetrics, error) {
	if ascender < 0 || descender < 0 {
		return FontMetrics{}, fmt.Errorf("%w: ascender %v and descender %v must be >= 0",
			ErrInvalidFontMetrics, ascender, descender)
	}
	return FontMetrics{Ascender: ascender, Descender: descender, Leading: leading}, nil
}

// CellHeight returns the height of a single line cell (ascender + descender).
func (m FontMetrics) CellHeight() float64 {
	return m.Ascender + m.Descender
}

// LineHeight returns the distance between the tops of consecutive lines.
func (m FontMetrics) LineHeight() float64 {
	return m.CellHeight() + m.Leading
}

// BlockHeight returns the natural height of n stacked lines: n cells
// separated by n-1 leadings.
func (m FontMetrics) BlockHeight(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*m.CellHeight() + float64(n-1)*m.Leading
}
