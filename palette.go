package plot

import "math"

// Palette is an ordered ramp of colors. Consumers index it by scalar
// position, so the order of Colors carries the meaning of the ramp.
type Palette struct {
	Colors []Color
}

// NewPalette creates a palette from the given colors. The slice is copied.
func NewPalette(colors ...Color) Palette {
	c := make([]Color, len(colors))
	copy(c, colors)
	return Palette{Colors: c}
}

// InterpolatePalette samples the piecewise-linear ramp through stops at size
// evenly spaced positions. The first and last stops are the endpoints of the
// ramp. Zero stops or a size below 1 produce an empty palette.
func InterpolatePalette(size int, stops ...Color) Palette {
	if len(stops) == 0 || size < 1 {
		return Palette{}
	}

	colors := make([]Color, size)
	last := len(stops) - 1
	for i := range colors {
		var y float64
		if size > 1 {
			y = float64(i) / float64(size-1)
		}
		x := y * float64(last)
		i0 := int(math.Floor(x))
		i1 := min(i0+1, last)
		colors[i] = InterpolateColors(stops[i0], stops[i1], x-float64(i0))
	}
	return Palette{Colors: colors}
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.Colors)
}

// At returns the color at index i, clamped to the valid range.
// An empty palette yields Undefined.
func (p Palette) At(i int) Color {
	if len(p.Colors) == 0 {
		return Undefined
	}
	return p.Colors[max(0, min(i, len(p.Colors)-1))]
}

// Index maps value within [minValue, maxValue] to a palette index.
// Values outside the range clamp to the first or last color. A degenerate
// range maps everything to index 0; an empty palette yields -1.
func (p Palette) Index(value, minValue, maxValue float64) int {
	n := len(p.Colors)
	if n == 0 {
		return -1
	}
	span := maxValue - minValue
	switch {
	case span <= 0 || math.IsNaN(value) || value <= minValue:
		return 0
	case value >= maxValue:
		return n - 1
	}
	i := int(math.Floor((value - minValue) / span * float64(n)))
	return max(0, min(i, n-1))
}

// Lookup returns the color for value within [minValue, maxValue].
func (p Palette) Lookup(value, minValue, maxValue float64) Color {
	i := p.Index(value, minValue, maxValue)
	if i < 0 {
		return Undefined
	}
	return p.Colors[i]
}

// Reverse returns a palette with the colors in reverse order.
func (p Palette) Reverse() Palette {
	n := len(p.Colors)
	colors := make([]Color, n)
	for i, c := range p.Colors {
		colors[n-1-i] = c
	}
	return Palette{Colors: colors}
}

// Clone returns a deep copy of the palette.
func (p Palette) Clone() Palette {
	return NewPalette(p.Colors...)
}
