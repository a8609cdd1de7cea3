package plot

import "errors"

// Sentinel errors for the plot package. Callers match them with errors.Is;
// the returned errors carry the offending value in their message.
var (
	// ErrArgumentOutOfRange is returned when a constructor receives a value
	// outside its valid range (negative size, inverted annulus radii,
	// non-concentric circles).
	ErrArgumentOutOfRange = errors.New("plot: argument out of range")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("plot: invalid color format")

	// ErrInvalidArgument is returned for unsupported enumerated selections,
	// such as an unknown spline algorithm.
	ErrInvalidArgument = errors.New("plot: invalid argument")
)
