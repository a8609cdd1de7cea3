package plot

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// Reserved sentinel colors.
var (
	// Undefined marks a color that has not been set.
	Undefined = ColorFromUInt32(0x00000000)

	// Automatic marks a color that the renderer chooses (for example from
	// the series color cycle).
	Automatic = ColorFromUInt32(0x00000001)
)

// Common colors.
var (
	Transparent = ColorFromUInt32(0x00FFFFFF)
	Black       = ColorFromRgb(0x00, 0x00, 0x00)
	White       = ColorFromRgb(0xFF, 0xFF, 0xFF)
	Red         = ColorFromRgb(0xFF, 0x00, 0x00)
	Green       = ColorFromRgb(0x00, 0x80, 0x00)
	Lime        = ColorFromRgb(0x00, 0xFF, 0x00)
	Blue        = ColorFromRgb(0x00, 0x00, 0xFF)
	Yellow      = ColorFromRgb(0xFF, 0xFF, 0x00)
	Cyan        = ColorFromRgb(0x00, 0xFF, 0xFF)
	Magenta     = ColorFromRgb(0xFF, 0x00, 0xFF)
	Orange      = ColorFromRgb(0xFF, 0xA5, 0x00)
	Violet      = ColorFromRgb(0xEE, 0x82, 0xEE)
	Indigo      = ColorFromRgb(0x4B, 0x00, 0x82)
	Gray        = ColorFromRgb(0x80, 0x80, 0x80)
	LightGray   = ColorFromRgb(0xD3, 0xD3, 0xD3)
	DarkGray    = ColorFromRgb(0xA9, 0xA9, 0xA9)
)

// namedColorTable holds the name → color table and its reverse index.
type namedColorTable struct {
	byName  map[string]Color
	byColor map[Color]string
}

// namedColors is built once from the generated CSS color table of
// golang.org/x/image/colornames, so no reflection is needed at lookup time.
var namedColors = sync.OnceValue(func() namedColorTable {
	t := namedColorTable{
		byName:  make(map[string]Color, len(colornames.Map)+3),
		byColor: make(map[Color]string, len(colornames.Map)+3),
	}
	for name, c := range colornames.Map {
		t.byName[name] = Color{A: c.A, R: c.R, G: c.G, B: c.B}
	}
	t.byName["transparent"] = Transparent
	t.byName["undefined"] = Undefined
	t.byName["automatic"] = Automatic

	// Aliases (aqua/cyan, gray/grey) share a value; the lexicographically
	// smallest name wins the reverse lookup.
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := t.byName[name]
		if _, ok := t.byColor[c]; !ok {
			t.byColor[c] = name
		}
	}
	return t
})

// NamedColor looks up a color by its CSS name (case-insensitive).
func NamedColor(name string) (Color, bool) {
	c, ok := namedColors().byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ColorName returns the lower-case name of c in the named color table.
// ok is false when the color has no name; that is not an error.
func ColorName(c Color) (name string, ok bool) {
	name, ok = namedColors().byColor[c]
	return name, ok
}
