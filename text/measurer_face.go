package text

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/cache"
)

// fontKey identifies a registered font file: a family and a bold flag.
type fontKey struct {
	family string
	bold   bool
}

// faceKey identifies a sized face of a registered font.
type faceKey struct {
	fontKey
	size float64
}

// registeredFont is a parsed font file together with its raw data.
type registeredFont struct {
	data []byte
	font *opentype.Font
}

// sizedFace serializes access to a font.Face, which is not safe for
// concurrent use.
type sizedFace struct {
	mu   sync.Mutex
	face font.Face
}

// FaceMeasurer measures text with golang.org/x/image/font/opentype faces.
//
// Families are matched case-insensitively. A font whose family is empty or
// unregistered falls back to the default family. Weights of
// WeightSemiBold and above select the bold file of a family when one is
// registered.
//
// FaceMeasurer is safe for concurrent use.
type FaceMeasurer struct {
	cfg faceMeasurerConfig

	mu    sync.RWMutex
	fonts map[fontKey]*registeredFont

	faces *cache.Cache[faceKey, *sizedFace]
}

// NewFaceMeasurer creates a measurer with the Go fonts registered as
// FamilySans and FamilyMono and Latin Modern as FamilySerif, unless
// WithoutBundledFonts is given.
func NewFaceMeasurer(opts ...FaceMeasurerOption) (*FaceMeasurer, error) {
	cfg := defaultFaceMeasurerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &FaceMeasurer{
		cfg:   cfg,
		fonts: make(map[fontKey]*registeredFont),
		faces: cache.New[faceKey, *sizedFace](cfg.cacheSize),
	}

	if cfg.bundledFonts {
		bundled := []struct {
			family string
			weight FontWeight
			data   []byte
		}{
			{FamilySans, WeightNormal, goregular.TTF},
			{FamilySans, WeightBold, gobold.TTF},
			{FamilyMono, WeightNormal, gomono.TTF},
			{FamilyMono, WeightBold, gomonobold.TTF},
			{FamilySerif, WeightNormal, lmroman10regular.TTF},
			{FamilySerif, WeightBold, lmroman10bold.TTF},
		}
		for _, bf := range bundled {
			if err := m.RegisterFont(bf.family, bf.weight, bf.data); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// RegisterFont registers TrueType or OpenType data for a family and weight,
// replacing any font previously registered for the same family and
// boldness.
func (m *FaceMeasurer) RegisterFont(family string, weight FontWeight, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: family %q", ErrEmptyFontData, family)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		plot.Logger().Warn("text: font registration failed", "family", family, "err", err)
		return fmt.Errorf("text: failed to parse font %q: %w", family, err)
	}

	key := fontKey{family: normalizeFamily(family), bold: weight.IsBold()}

	m.mu.Lock()
	m.fonts[key] = &registeredFont{data: data, font: f}
	m.mu.Unlock()

	// Faces of a replaced font are stale.
	m.faces.Clear()
	return nil
}

// HasFamily reports whether any weight of family is registered.
func (m *FaceMeasurer) HasFamily(family string) bool {
	name := normalizeFamily(family)
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, regular := m.fonts[fontKey{family: name}]
	_, bold := m.fonts[fontKey{family: name, bold: true}]
	return regular || bold
}

// FontMetrics implements Measurer. Fonts that cannot be resolved, and
// non-positive sizes, yield zero metrics.
func (m *FaceMeasurer) FontMetrics(f Font) FontMetrics {
	sf, err := m.face(f)
	if err != nil {
		return FontMetrics{}
	}

	sf.mu.Lock()
	fm := sf.face.Metrics()
	sf.mu.Unlock()

	ascent := fixedToFloat(fm.Ascent)
	descent := fixedToFloat(fm.Descent)
	return FontMetrics{
		Ascender:  ascent,
		Descender: descent,
		Leading:   max(0, fixedToFloat(fm.Height)-ascent-descent),
	}
}

// MeasureTextWidth implements Measurer.
func (m *FaceMeasurer) MeasureTextWidth(s string, f Font) float64 {
	if s == "" {
		return 0
	}
	sf, err := m.face(f)
	if err != nil {
		return 0
	}

	sf.mu.Lock()
	defer sf.mu.Unlock()
	return fixedToFloat(font.MeasureString(sf.face, s))
}

// resolve returns the registered font for f, falling back to the regular
// weight of the family and then to the default family.
func (m *FaceMeasurer) resolve(f Font) (fontKey, *registeredFont, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bold := f.Weight.IsBold()
	families := []string{normalizeFamily(f.Family)}
	if def := normalizeFamily(m.cfg.defaultFamily); def != families[0] {
		families = append(families, def)
	}
	for _, family := range families {
		for _, b := range []bool{bold, !bold} {
			key := fontKey{family: family, bold: b}
			if rf, ok := m.fonts[key]; ok {
				return key, rf, nil
			}
		}
	}
	return fontKey{}, nil, fmt.Errorf("%w: %q", ErrUnknownFamily, f.Family)
}

// face returns the cached sized face for f, creating it on first use.
func (m *FaceMeasurer) face(f Font) (*sizedFace, error) {
	if !(f.Size > 0) {
		return nil, fmt.Errorf("text: font size %v must be > 0", f.Size)
	}
	key, rf, err := m.resolve(f)
	if err != nil {
		return nil, err
	}

	fk := faceKey{fontKey: key, size: f.Size}
	if sf, ok := m.faces.Get(fk); ok {
		return sf, nil
	}

	face, err := opentype.NewFace(rf.font, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     m.cfg.dpi,
		Hinting: m.cfg.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face %v: %w", f, err)
	}
	sf := &sizedFace{face: face}
	m.faces.Set(fk, sf)
	return sf, nil
}

// registered returns the registered font resolved for f. A font replaced
// by RegisterFont is a new value, so callers may key caches by the pointer.
func (m *FaceMeasurer) registered(f Font) (*registeredFont, error) {
	_, rf, err := m.resolve(f)
	return rf, err
}

// pixelSize returns the size of f in pixels at the configured DPI.
func (m *FaceMeasurer) pixelSize(f Font) float64 {
	return f.Size * m.cfg.dpi / 72
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
