// Package plot provides the device-independent rendering core of a 2D
// chart-plotting system.
//
// # Overview
//
// plot defines the value types that every chart component is expressed in:
//
//   - Geometry: ScreenPoint, ScreenVector, DataPoint, Size, Rect, Thickness,
//     Circle, Annulus and the Shape union used for hit-testing and clipping
//   - Color: Color (ARGB bytes), HSV conversion, named colors, interpolation
//   - Palette: ordered color ramps built by interpolating color stops
//   - Pen: stroke color, thickness, line style and dash pattern
//   - Splines: canonical (cardinal) and Catmull–Rom curve smoothing
//
// Text measurement and arrangement live in the text sub-package, nested clip
// regions in clip, and the render-context capability in render.
//
// # Coordinate System
//
// Screen space uses device pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Data space (DataPoint) is the coordinate system of axis values and is only
// converted to screen space by chart code outside this module.
//
// # Errors
//
// Invalid construction arguments fail with ErrArgumentOutOfRange, malformed
// color strings with ErrInvalidColor and unknown enumerated selections with
// ErrInvalidArgument. Degenerate but valid input (empty point sequences,
// empty text, zero-size rectangles) is never an error.
//
// # Concurrency
//
// All value types are immutable once returned. Palette and spline
// construction are pure functions and safe to call from any goroutine.
package plot
