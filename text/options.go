package text

import "golang.org/x/image/font"

// ArrangerOption configures an Arranger.
type ArrangerOption func(*arrangerConfig)

// arrangerConfig holds configuration for Arranger.
type arrangerConfig struct {
	trimmer Trimmer
	squash  bool
}

// defaultArrangerConfig returns the default arranger configuration.
func defaultArrangerConfig() arrangerConfig {
	return arrangerConfig{
		trimmer: DefaultTrimmer,
		squash:  false,
	}
}

// WithTrimmer sets the trimmer used to shorten lines wider than MaxWidth.
// A nil trimmer restores DefaultTrimmer.
func WithTrimmer(t Trimmer) ArrangerOption {
	return func(c *arrangerConfig) {
		if t == nil {
			t = DefaultTrimmer
		}
		c.trimmer = t
	}
}

// WithSquash controls the height of vertically clipped text. When enabled
// the block shrinks to exactly fit the retained lines; otherwise it keeps
// reserving MaxHeight.
func WithSquash(squash bool) ArrangerOption {
	return func(c *arrangerConfig) {
		c.squash = squash
	}
}

// FaceMeasurerOption configures a FaceMeasurer.
type FaceMeasurerOption func(*faceMeasurerConfig)

// faceMeasurerConfig holds configuration for FaceMeasurer.
type faceMeasurerConfig struct {
	cacheSize     int
	dpi           float64
	hinting       font.Hinting
	defaultFamily string
	bundledFonts  bool
}

// defaultFaceMeasurerConfig returns the default face measurer configuration.
func defaultFaceMeasurerConfig() faceMeasurerConfig {
	return faceMeasurerConfig{
		cacheSize:     64,
		dpi:           72, // one point per pixel
		hinting:       font.HintingNone,
		defaultFamily: FamilySans,
		bundledFonts:  true,
	}
}

// WithFaceCacheSize sets the maximum number of sized faces kept alive.
// A value of 0 disables the limit.
func WithFaceCacheSize(n int) FaceMeasurerOption {
	return func(c *faceMeasurerConfig) {
		c.cacheSize = n
	}
}

// WithDPI sets the resolution used to convert font sizes to pixels.
// The default of 72 makes Font.Size a pixel size.
func WithDPI(dpi float64) FaceMeasurerOption {
	return func(c *faceMeasurerConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the hinting mode of created faces. The default,
// font.HintingNone, keeps fractional advances.
func WithHinting(h font.Hinting) FaceMeasurerOption {
	return func(c *faceMeasurerConfig) {
		c.hinting = h
	}
}

// WithDefaultFamily sets the family used for fonts whose family is empty or
// unregistered.
func WithDefaultFamily(family string) FaceMeasurerOption {
	return func(c *faceMeasurerConfig) {
		c.defaultFamily = family
	}
}

// WithoutBundledFonts skips registering the Go and Latin Modern fonts.
// Callers must then register their own fonts, including the default family.
func WithoutBundledFonts() FaceMeasurerOption {
	return func(c *faceMeasurerConfig) {
		c.bundledFonts = false
	}
}
