package plot

import (
	"fmt"
	"math"
)

// Size is a non-negative width and height in screen space.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size, failing with ErrArgumentOutOfRange when either
// component is negative.
func NewSize(width, height float64) (Size, error) {
	if width < 0 {
		return Size{}, fmt.Errorf("%w: width %v must be >= 0", ErrArgumentOutOfRange, width)
	}
	if height < 0 {
		return Size{}, fmt.Errorf("%w: height %v must be >= 0", ErrArgumentOutOfRange, height)
	}
	return Size{Width: width, Height: height}, nil
}

// Include returns the component-wise maximum of two sizes.
func (s Size) Include(other Size) Size {
	return Size{
		Width:  math.Max(s.Width, other.Width),
		Height: math.Max(s.Height, other.Height),
	}
}

// IsEmpty reports whether the size has zero area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("(%g, %g)", s.Width, s.Height)
}
