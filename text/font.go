package text

import "strconv"

// FontWeight is the numeric weight of a font (CSS scale, 100-900).
type FontWeight int

// Common font weights.
const (
	WeightThin     FontWeight = 100
	WeightLight    FontWeight = 300
	WeightNormal   FontWeight = 400
	WeightMedium   FontWeight = 500
	WeightSemiBold FontWeight = 600
	WeightBold     FontWeight = 700
	WeightBlack    FontWeight = 900
)

// IsBold reports whether the weight selects a bold face.
func (w FontWeight) IsBold() bool {
	return w >= WeightSemiBold
}

// String returns the string representation of the weight.
func (w FontWeight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightLight:
		return "Light"
	case WeightNormal:
		return "Normal"
	case WeightMedium:
		return "Medium"
	case WeightSemiBold:
		return "SemiBold"
	case WeightBold:
		return "Bold"
	case WeightBlack:
		return "Black"
	default:
		return strconv.Itoa(int(w))
	}
}

// Font families registered by NewFaceMeasurer.
const (
	FamilySans  = "Go"
	FamilyMono  = "Go Mono"
	FamilySerif = "Latin Modern Roman"
)

// Font identifies a font by family, size in pixels and weight.
// The zero Weight is treated as WeightNormal.
type Font struct {
	Family string
	Size   float64
	Weight FontWeight
}

// NewFont creates a normal-weight font.
func NewFont(family string, size float64) Font {
	return Font{Family: family, Size: size, Weight: WeightNormal}
}

// WithSize returns a copy of f with the given size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// WithWeight returns a copy of f with the given weight.
func (f Font) WithWeight(w FontWeight) Font {
	f.Weight = w
	return f
}

func (f Font) String() string {
	return f.Family + " " + strconv.FormatFloat(f.Size, 'g', -1, 64) + " " + f.Weight.String()
}
