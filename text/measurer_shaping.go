package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/plot"
)

// ShapingMeasurer measures line widths with HarfBuzz shaping from
// go-text/typesetting, so kerning and ligatures are reflected in the width.
// Fonts and vertical metrics come from the wrapped FaceMeasurer.
//
// ShapingMeasurer is safe for concurrent use. It caches parsed font.Font
// objects (which are thread-safe) and creates a lightweight font.Face per
// measurement; HarfbuzzShaper instances are pooled.
type ShapingMeasurer struct {
	faces    *FaceMeasurer
	language language.Language

	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*registeredFont]*gotext.Font
}

// NewShapingMeasurer creates a shaping measurer over the fonts of faces.
// lang is a BCP 47 tag such as "en"; empty means "en".
func NewShapingMeasurer(faces *FaceMeasurer, lang string) *ShapingMeasurer {
	if lang == "" {
		lang = "en"
	}
	return &ShapingMeasurer{
		faces:    faces,
		language: language.NewLanguage(lang),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*registeredFont]*gotext.Font),
	}
}

// FontMetrics implements Measurer.
func (m *ShapingMeasurer) FontMetrics(f Font) FontMetrics {
	return m.faces.FontMetrics(f)
}

// MeasureTextWidth implements Measurer. If the font cannot be loaded for
// shaping, the width falls back to the unshaped advance sum of the
// FaceMeasurer.
func (m *ShapingMeasurer) MeasureTextWidth(s string, f Font) float64 {
	if s == "" || !(f.Size > 0) {
		return 0
	}
	goTextFont, err := m.font(f)
	if err != nil {
		plot.Logger().Debug("text: shaping unavailable, using face advances", "font", f.String(), "err", err)
		return m.faces.MeasureTextWidth(s, f)
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(goTextFont),
		Size:      fixed.Int26_6(m.faces.pixelSize(f) * 64),
		Script:    detectScript(runes),
		Language:  m.language,
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	m.shaperPool.Put(hb)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.Advance
	}
	return fixedToFloat(advance)
}

// font returns the cached go-text font resolved for f.
func (m *ShapingMeasurer) font(f Font) (*gotext.Font, error) {
	rf, err := m.faces.registered(f)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	cached, ok := m.fontCache[rf]
	m.mu.RUnlock()
	if ok {
		return cached, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.fontCache[rf]; ok {
		return cached, nil
	}

	// ParseTTF returns a *Face embedding the thread-safe *Font; only the
	// Font is cached.
	face, err := gotext.ParseTTF(bytes.NewReader(rf.data))
	if err != nil {
		return nil, err
	}
	m.fontCache[rf] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
