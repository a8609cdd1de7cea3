package text

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Trimmer shortens a single line so that it fits a width.
// Platform adapters may substitute a glyph-aware implementation.
type Trimmer interface {
	Trim(m Measurer, line string, width float64, f Font) string
}

// TrimMode selects where BoundaryTrimmer may cut a line.
type TrimMode uint8

const (
	// TrimCharacters cuts between characters. Combining sequences are kept
	// whole.
	TrimCharacters TrimMode = iota
	// TrimWords cuts only before words, so no word is split.
	TrimWords
)

// String returns the string representation of the trim mode.
func (m TrimMode) String() string {
	switch m {
	case TrimCharacters:
		return "Characters"
	case TrimWords:
		return "Words"
	default:
		return "Unknown"
	}
}

// DefaultEllipsis is the truncation marker used by DefaultTrimmer.
const DefaultEllipsis = "…"

// DefaultTrimmer cuts at character boundaries and appends DefaultEllipsis.
var DefaultTrimmer = BoundaryTrimmer{Ellipsis: DefaultEllipsis, Mode: TrimCharacters}

// BoundaryTrimmer trims a line to the longest prefix ending at a valid cut
// boundary whose width, including the ellipsis, fits the available width.
//
// The boundary list is searched with a binary search, so a trim costs
// O(log B) width measurements for B boundaries.
type BoundaryTrimmer struct {
	// Ellipsis is appended to trimmed lines. It may be empty.
	Ellipsis string

	// Mode selects character or word boundaries.
	Mode TrimMode
}

// Trim implements Trimmer.
//
// A non-positive width yields "". A line that already fits is returned
// unchanged. If the ellipsis alone is wider than width the result is ""
// rather than a bare ellipsis overflowing the space.
func (t BoundaryTrimmer) Trim(m Measurer, line string, width float64, f Font) string {
	if width <= 0 {
		return ""
	}
	if m.MeasureTextWidth(line, f) <= width {
		return line
	}
	if t.Ellipsis != "" && m.MeasureTextWidth(t.Ellipsis, f) > width {
		return ""
	}

	bounds := t.boundaries(line)
	candidate := func(i int) string {
		return strings.TrimRightFunc(line[:bounds[i]], unicode.IsSpace) + t.Ellipsis
	}

	// bounds[0] is 0, whose candidate is the ellipsis alone and fits, so
	// n >= 1.
	n := sort.Search(len(bounds), func(i int) bool {
		return m.MeasureTextWidth(candidate(i), f) > width
	})
	return candidate(n - 1)
}

// boundaries returns the increasing byte offsets at which line may be cut,
// starting with 0 and excluding len(line).
func (t BoundaryTrimmer) boundaries(line string) []int {
	if t.Mode == TrimWords {
		return wordBoundaries(line)
	}
	return characterBoundaries(line)
}

// characterBoundaries returns the start offset of every normalization
// segment, so a base character and its combining marks are never split.
func characterBoundaries(line string) []int {
	bounds := make([]int, 0, len(line))
	var it norm.Iter
	it.InitString(norm.NFC, line)
	for !it.Done() {
		bounds = append(bounds, it.Pos())
		it.Next()
	}
	if len(bounds) == 0 {
		bounds = append(bounds, 0)
	}
	return bounds
}

// wordBoundaries returns 0 and the start offset of every word that follows
// whitespace.
func wordBoundaries(line string) []int {
	bounds := []int{0}
	prevSpace := false
	for i, r := range line {
		space := unicode.IsSpace(r)
		if i > 0 && prevSpace && !space {
			bounds = append(bounds, i)
		}
		prevSpace = space
	}
	return bounds
}
