package text

import (
	"strings"
	"testing"
)

func TestBoundaryTrimmer_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		trimmer BoundaryTrimmer
		line    string
		width   float64
		want    string
	}{
		{"zero width", DefaultTrimmer, "Hello", 0, ""},
		{"negative width", DefaultTrimmer, "Hello", -5, ""},
		{"fits exactly", DefaultTrimmer, "Hello", 50, "Hello"},
		{"fits with room", DefaultTrimmer, "Hello", 500, "Hello"},
		{"empty line", DefaultTrimmer, "", 10, ""},
		{"ellipsis wider than width", BoundaryTrimmer{Ellipsis: "...", Mode: TrimCharacters}, "Hello", 20, ""},
		{"ellipsis only", DefaultTrimmer, "Hello", 15, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFakeMeasurer()
			if got := tt.trimmer.Trim(m, tt.line, tt.width, testFont); got != tt.want {
				t.Errorf("Trim(%q, %v) = %q, want %q", tt.line, tt.width, got, tt.want)
			}
		})
	}
}

func TestBoundaryTrimmer_FittingLineMeasuredOnce(t *testing.T) {
	m := newFakeMeasurer()
	DefaultTrimmer.Trim(m, "Hello", 100, testFont)
	if m.calls != 1 {
		t.Errorf("measurer calls = %d, want 1", m.calls)
	}
}

func TestBoundaryTrimmer_Characters(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width float64
		want  string
	}{
		{"cuts to fit with ellipsis", "Hello world", 50, "Hell…"},
		{"drops trailing space before ellipsis", "ab cd", 40, "ab…"},
		{"keeps combining sequences whole", "e\u0301e\u0301e\u0301", 35, "e\u0301…"},
		{"multibyte runes", "日本語テキスト", 40, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFakeMeasurer()
			got := DefaultTrimmer.Trim(m, tt.line, tt.width, testFont)
			if got != tt.want {
				t.Errorf("Trim(%q, %v) = %q, want %q", tt.line, tt.width, got, tt.want)
			}
			if w := m.MeasureTextWidth(got, testFont); w > tt.width {
				t.Errorf("trimmed width %v exceeds %v", w, tt.width)
			}
		})
	}
}

func TestBoundaryTrimmer_Words(t *testing.T) {
	trimmer := BoundaryTrimmer{Ellipsis: DefaultEllipsis, Mode: TrimWords}
	tests := []struct {
		width float64
		want  string
	}{
		{100, "Hello big…"},
		{90, "Hello…"},
		{59, "…"},
	}

	for _, tt := range tests {
		m := newFakeMeasurer()
		if got := trimmer.Trim(m, "Hello big world", tt.width, testFont); got != tt.want {
			t.Errorf("Trim(width=%v) = %q, want %q", tt.width, got, tt.want)
		}
	}
}

func TestBoundaryTrimmer_NoEllipsis(t *testing.T) {
	trimmer := BoundaryTrimmer{Mode: TrimCharacters}
	if got := trimmer.Trim(newFakeMeasurer(), "Hello", 25, testFont); got != "He" {
		t.Errorf("Trim() = %q, want %q", got, "He")
	}
}

func TestBoundaryTrimmer_BinarySearch(t *testing.T) {
	m := newFakeMeasurer()
	line := strings.Repeat("x", 1000)

	got := DefaultTrimmer.Trim(m, line, 505, testFont)
	if got != strings.Repeat("x", 49)+"…" {
		t.Errorf("Trim() kept %d runes, want 49", len(got)-len("…"))
	}
	// One measurement of the line, one of the ellipsis, then O(log n).
	if m.calls > 15 {
		t.Errorf("measurer calls = %d, want a logarithmic count", m.calls)
	}
}

func TestTrimMode_String(t *testing.T) {
	if TrimCharacters.String() != "Characters" || TrimWords.String() != "Words" {
		t.Errorf("String() = %q, %q", TrimCharacters.String(), TrimWords.String())
	}
}
