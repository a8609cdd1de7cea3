package plot

import "sync"

// Predefined palettes. Each function returns a freshly allocated palette of
// the requested size.

// BlueWhiteRed returns a diverging blue–white–red palette.
func BlueWhiteRed(size int) Palette {
	return InterpolatePalette(size, Blue, White, Red)
}

// BlackWhiteRed returns a black–white–red palette.
func BlackWhiteRed(size int) Palette {
	return InterpolatePalette(size, Black, White, Red)
}

// Cool returns a cyan–magenta palette.
func Cool(size int) Palette {
	return InterpolatePalette(size, Cyan, Magenta)
}

// GrayScale returns a black–white palette.
func GrayScale(size int) Palette {
	return InterpolatePalette(size, Black, White)
}

// Hot returns a black–red–yellow–white heat palette.
func Hot(size int) Palette {
	return InterpolatePalette(size,
		Black,
		ColorFromRgb(127, 0, 0),
		ColorFromRgb(255, 127, 0),
		ColorFromRgb(255, 255, 127),
		White)
}

// Hue returns a palette cycling once through the hue circle, starting and
// ending at red.
func Hue(size int) Palette {
	return InterpolatePalette(size, Red, Yellow, Lime, Cyan, Blue, Magenta, Red)
}

// HueDistinct returns size colors with evenly spaced hues. Unlike Hue the
// last color is not a repeat of the first, which makes it suitable for
// categorical data.
func HueDistinct(size int) Palette {
	if size < 1 {
		return Palette{}
	}
	colors := make([]Color, size)
	for i := range colors {
		colors[i] = ColorFromHsv(float64(i)/float64(size), 1, 1)
	}
	return Palette{Colors: colors}
}

// Jet returns the classic blue–cyan–yellow–red "jet" palette.
func Jet(size int) Palette {
	return InterpolatePalette(size,
		ColorFromRgb(0, 0, 127),
		Blue,
		ColorFromRgb(0, 127, 255),
		Cyan,
		ColorFromRgb(127, 255, 127),
		Yellow,
		ColorFromRgb(255, 127, 0),
		Red,
		ColorFromRgb(127, 0, 0))
}

// Rainbow returns a violet-to-red rainbow palette.
func Rainbow(size int) Palette {
	return InterpolatePalette(size, Violet, Indigo, Blue, Lime, Yellow, Orange, Red)
}

// Shared instances are built on first use and never mutated; the exported
// accessors hand out clones so callers cannot alter them.
var (
	blueWhiteRed31 = sync.OnceValue(func() Palette { return BlueWhiteRed(31) })
	hot64          = sync.OnceValue(func() Palette { return Hot(64) })
)

// BlueWhiteRed31 returns the 31-color blue–white–red palette.
func BlueWhiteRed31() Palette {
	return blueWhiteRed31().Clone()
}

// Hot64 returns the 64-color heat palette.
func Hot64() Palette {
	return hot64().Clone()
}
