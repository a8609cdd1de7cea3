package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrInvalidFontMetrics is returned when font metrics have a negative
	// ascender or descender.
	ErrInvalidFontMetrics = errors.New("text: invalid font metrics")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFamily is returned when a font family has not been registered.
	ErrUnknownFamily = errors.New("text: unknown font family")

	// ErrUnknownMeasurer is returned by NewMeasurer for unregistered names.
	ErrUnknownMeasurer = errors.New("text: unknown measurer")
)
