package plot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is a non-premultiplied ARGB color with 8 bits per channel.
//
// Undefined and Automatic are ordinary Color values reserved by convention;
// use IsUndefined and IsAutomatic to test for them.
type Color struct {
	A, R, G, B uint8
}

// ColorFromArgb creates a color from alpha, red, green and blue bytes.
func ColorFromArgb(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// ColorFromRgb creates an opaque color.
func ColorFromRgb(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// ColorFromAColor returns c with its alpha channel replaced by a.
func ColorFromAColor(a uint8, c Color) Color {
	return Color{A: a, R: c.R, G: c.G, B: c.B}
}

// ColorFromUInt32 creates a color from a packed 0xAARRGGBB value.
func ColorFromUInt32(u uint32) Color {
	return Color{
		A: uint8(u >> 24),
		R: uint8(u >> 16),
		G: uint8(u >> 8),
		B: uint8(u),
	}
}

// ColorFromHsv creates an opaque color from hue, saturation and value,
// each in [0, 1]. A hue of 1 wraps to 0.
func ColorFromHsv(hue, sat, val float64) Color {
	return ColorFromAHsv(255, hue, sat, val)
}

// ColorFromAHsv creates a color from alpha and hue, saturation, value.
// Channel values are truncated, not rounded.
func ColorFromAHsv(a uint8, hue, sat, val float64) Color {
	if sat == 0 {
		v := uint8(val * 255)
		return Color{A: a, R: v, G: v, B: v}
	}

	h := hue
	if h >= 1 {
		h = 0
	}
	h *= 6
	i := math.Floor(h)
	f := h - i
	p := val * (1 - sat)
	q := val * (1 - sat*f)
	t := val * (1 - sat*(1-f))

	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = val, t, p
	case 1:
		r, g, b = q, val, p
	case 2:
		r, g, b = p, val, t
	case 3:
		r, g, b = p, q, val
	case 4:
		r, g, b = t, p, val
	default:
		r, g, b = val, p, q
	}

	return Color{A: a, R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// RGBA implements color.Color. The returned channels are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ParseColor parses a color string.
//
// Accepted forms:
//   - "#RRGGBB" and "#AARRGGBB"
//   - "#RGB" (each digit is replicated)
//   - "r,g,b" and "a,r,g,b" decimal byte lists
//   - "none" (Undefined) and "auto" (Automatic), case-insensitive
//
// The empty string parses to Undefined. Any other input fails with an error
// wrapping ErrInvalidColor.
func ParseColor(s string) (Color, error) {
	value := strings.TrimSpace(s)
	switch {
	case value == "":
		return Undefined, nil
	case strings.EqualFold(value, "none"):
		return Undefined, nil
	case strings.EqualFold(value, "auto"):
		return Automatic, nil
	case strings.HasPrefix(value, "#"):
		return parseHexColor(value[1:])
	}

	tokens := strings.Split(value, ",")
	if len(tokens) < 3 || len(tokens) > 4 {
		return Color{}, fmt.Errorf("%w: %q has %d components, want 3 or 4", ErrInvalidColor, s, len(tokens))
	}

	channels := make([]uint8, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseUint(strings.TrimSpace(tok), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q component %d: %w", ErrInvalidColor, s, i, err)
		}
		channels[i] = uint8(v)
	}

	if len(channels) == 3 {
		return ColorFromRgb(channels[0], channels[1], channels[2]), nil
	}
	return ColorFromArgb(channels[0], channels[1], channels[2], channels[3]), nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// It is intended for package-level color literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexColor parses the digits after '#'.
func parseHexColor(digits string) (Color, error) {
	switch len(digits) {
	case 3:
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[2*i] = digits[i]
			expanded[2*i+1] = digits[i]
		}
		digits = string(expanded[:])
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: #%s must have 3, 6 or 8 hex digits", ErrInvalidColor, digits)
	}

	u, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: #%s: %w", ErrInvalidColor, digits, err)
	}
	if len(digits) == 6 {
		u |= 0xFF000000
	}
	return ColorFromUInt32(uint32(u)), nil
}

// String returns the color as "#aarrggbb". ParseColor inverts it exactly.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

// ToByteString returns the color as a decimal list: "r,g,b" for opaque
// colors and "a,r,g,b" otherwise.
func (c Color) ToByteString() string {
	if c.A == 255 {
		return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%d,%d,%d,%d", c.A, c.R, c.G, c.B)
}

// ToUInt32 packs the color as 0xAARRGGBB.
func (c Color) ToUInt32() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ToHsv converts the color to hue, saturation and value in [0, 1].
// Gray colors (zero saturation) report hue 0.
func (c Color) ToHsv() (hue, sat, val float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC
	val = maxC

	if maxC == 0 || delta == 0 {
		return 0, 0, val
	}

	sat = delta / maxC
	switch maxC {
	case r:
		hue = (g - b) / delta
	case g:
		hue = 2 + (b-r)/delta
	default:
		hue = 4 + (r-g)/delta
	}
	hue /= 6
	if hue < 0 {
		hue++
	}
	return hue, sat, val
}

// IsUndefined reports whether c is the Undefined sentinel.
func (c Color) IsUndefined() bool {
	return c == Undefined
}

// IsAutomatic reports whether c is the Automatic sentinel.
func (c Color) IsAutomatic() bool {
	return c == Automatic
}

// IsVisible reports whether the color has a non-zero alpha.
func (c Color) IsVisible() bool {
	return c.A > 0
}

// IsInvisible reports whether the color is fully transparent.
func (c Color) IsInvisible() bool {
	return c.A == 0
}

// ActualColor resolves the Automatic sentinel to def.
// Any other color is returned unchanged.
func (c Color) ActualColor(def Color) Color {
	if c.IsAutomatic() {
		return def
	}
	return c
}

// ChangeAlpha returns the color with its alpha channel replaced.
func (c Color) ChangeAlpha(a uint8) Color {
	return ColorFromAColor(a, c)
}

// ChangeIntensity scales the HSV value by factor, saturating at 1.
func (c Color) ChangeIntensity(factor float64) Color {
	h, s, v := c.ToHsv()
	v = math.Min(v*factor, 1)
	return ColorFromAHsv(c.A, h, s, v)
}

// ChangeSaturation scales the HSV saturation by factor, saturating at 1.
func (c Color) ChangeSaturation(factor float64) Color {
	h, s, v := c.ToHsv()
	s = math.Min(s*factor, 1)
	return ColorFromAHsv(c.A, h, s, v)
}

// Complementary returns the color with its hue rotated by half a turn.
func (c Color) Complementary() Color {
	h, s, v := c.ToHsv()
	h -= 0.5
	if h < 0 {
		h++
	}
	return ColorFromAHsv(c.A, h, s, v)
}

// InterpolateColors blends c1 and c2 channel by channel: t=0 yields c1 and
// t=1 yields c2. Results are truncated to bytes. t is not clamped; callers
// supply t in [0, 1].
func InterpolateColors(c1, c2 Color, t float64) Color {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t)
	}
	return Color{
		A: lerp(c1.A, c2.A),
		R: lerp(c1.R, c2.R),
		G: lerp(c1.G, c2.G),
		B: lerp(c1.B, c2.B),
	}
}

// ColorDifference returns the Euclidean distance between two colors in
// normalized ARGB space.
func ColorDifference(c1, c2 Color) float64 {
	d := func(a, b uint8) float64 {
		x := (float64(a) - float64(b)) / 255
		return x * x
	}
	return math.Sqrt(d(c1.A, c2.A) + d(c1.R, c2.R) + d(c1.G, c2.G) + d(c1.B, c2.B))
}

// HueDifference returns the distance between the hues of two colors along
// the shorter arc of the hue circle. The result is in [0, 0.5].
func HueDifference(c1, c2 Color) float64 {
	h1, _, _ := c1.ToHsv()
	h2, _, _ := c2.ToHsv()
	dh := h1 - h2
	if dh > 0.5 {
		dh--
	}
	if dh < -0.5 {
		dh++
	}
	return math.Sqrt(dh * dh)
}
