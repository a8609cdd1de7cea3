package plot

import "math"

// Dash is a concrete dash pattern in screen units, ready for stroking.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// An odd-length array is logically repeated to make the pattern even
	// (e.g., [5] behaves as [5, 5]).
	Array []float64

	// Offset is the distance into the pattern at which stroking starts.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken by absolute value. It returns nil (a solid
// line) when no lengths are given or none is positive.
func NewDash(lengths ...float64) *Dash {
	positive := false
	for _, l := range lengths {
		if l > 0 {
			positive = true
			break
		}
	}
	if !positive {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a copy of the dash with the given start offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the length of one full pattern cycle, counting the
// implicit repetition of odd-length arrays.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether the pattern produces gaps. A nil Dash is solid.
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &Dash{Array: arrayCopy, Offset: d.Offset}
}

// NormalizedOffset returns the offset reduced to a single pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Scale returns a copy with every length and the offset multiplied by
// factor. Non-positive factors return d unchanged.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled, Offset: d.Offset * factor}
}
