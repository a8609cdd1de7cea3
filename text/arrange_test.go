package text

import (
	"math"
	"testing"

	"github.com/gogpu/plot"
)

const epsilon = 1e-9

func pointApprox(a, b plot.ScreenPoint) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestArrange_LineAlignment(t *testing.T) {
	a := NewArranger(newFakeMeasurer())
	layout := a.Arrange("A\nBB", plot.SP(0, 0), ArrangeOptions{
		Font:                    testFont,
		HorizontalAlignment:     AlignLeft,
		VerticalAlignment:       AlignTop,
		LineHorizontalAlignment: AlignCenter,
		LineVerticalAlignment:   AlignMiddle,
	})

	if len(layout.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(layout.Lines))
	}
	want := []plot.ScreenPoint{plot.SP(5, 6), plot.SP(10, 20)}
	for i, line := range layout.Lines {
		if !pointApprox(line.Position, want[i]) {
			t.Errorf("Lines[%d].Position = %v, want %v", i, line.Position, want[i])
		}
	}
	if got := layout.Lines[1].Position.Y - layout.Lines[0].Position.Y; got != 14 {
		t.Errorf("line separation = %v, want 14", got)
	}
	if layout.Size != (plot.Size{Width: 20, Height: 26}) {
		t.Errorf("Size = %v, want 20x26", layout.Size)
	}
}

func TestArrange_EmptyText(t *testing.T) {
	m := newFakeMeasurer()
	a := NewArranger(m)

	layout := a.Arrange("", plot.SP(3, 4), ArrangeOptions{Font: testFont})
	if len(layout.Lines) != 0 {
		t.Errorf("len(Lines) = %d, want 0", len(layout.Lines))
	}
	if !layout.Size.IsEmpty() {
		t.Errorf("Size = %v, want empty", layout.Size)
	}
	if got := a.Measure("", testFont, plot.Size{}); got != (plot.Size{}) {
		t.Errorf("Measure(\"\") = %v, want zero", got)
	}
	if m.calls != 0 {
		t.Errorf("measurer calls = %d, want 0", m.calls)
	}
}

func TestArrange_BlockAlignment(t *testing.T) {
	tests := []struct {
		name   string
		anchor plot.ScreenPoint
		h      HorizontalAlignment
		v      VerticalAlignment
		lineH  HorizontalAlignment
		lineV  VerticalAlignment
		origin plot.ScreenPoint
		want   []plot.ScreenPoint
	}{
		{
			name:   "left top",
			anchor: plot.SP(10, 10),
			h:      AlignLeft, v: AlignTop,
			origin: plot.SP(10, 10),
			want:   []plot.ScreenPoint{plot.SP(10, 10), plot.SP(10, 24)},
		},
		{
			name:   "center middle",
			anchor: plot.SP(50, 50),
			h:      AlignCenter, v: AlignMiddle,
			origin: plot.SP(40, 37),
			want:   []plot.ScreenPoint{plot.SP(45, 37), plot.SP(40, 51)},
		},
		{
			name:   "right bottom",
			anchor: plot.SP(100, 100),
			h:      AlignRight, v: AlignBottom,
			lineH: AlignRight, lineV: AlignBottom,
			origin: plot.SP(80, 74),
			want:   []plot.ScreenPoint{plot.SP(100, 86), plot.SP(100, 100)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArranger(newFakeMeasurer())
			layout := a.Arrange("A\nBB", tt.anchor, ArrangeOptions{
				Font:                    testFont,
				HorizontalAlignment:     tt.h,
				VerticalAlignment:       tt.v,
				LineHorizontalAlignment: tt.lineH,
				LineVerticalAlignment:   tt.lineV,
			})
			if !pointApprox(layout.Origin, tt.origin) {
				t.Errorf("Origin = %v, want %v", layout.Origin, tt.origin)
			}
			for i, line := range layout.Lines {
				if !pointApprox(line.Position, tt.want[i]) {
					t.Errorf("Lines[%d].Position = %v, want %v", i, line.Position, tt.want[i])
				}
			}
		})
	}
}

func TestArrange_Baseline(t *testing.T) {
	a := NewArranger(newFakeMeasurer())
	layout := a.Arrange("A", plot.SP(0, 0), ArrangeOptions{
		Font:                  testFont,
		VerticalAlignment:     AlignBaseline,
		LineVerticalAlignment: AlignBaseline,
	})

	if !pointApprox(layout.Origin, plot.SP(0, -10)) {
		t.Errorf("Origin = %v, want (0, -10)", layout.Origin)
	}
	if !pointApprox(layout.Lines[0].Position, plot.SP(0, 0)) {
		t.Errorf("baseline position = %v, want anchor", layout.Lines[0].Position)
	}
}

func TestArrange_VerticalClip(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		maxHeight  float64
		squash     bool
		wantLines  int
		wantHeight float64
	}{
		{"fits", "a\nb", 100, false, 2, 26},
		{"clipped reserves max height", "a\nb\nc\nd\ne", 45, false, 3, 45},
		{"clipped squashed", "a\nb\nc\nd\ne", 45, true, 3, 40},
		{"keeps at least one line", "a\nb\nc", 5, true, 1, 12},
		{"single line never clipped", "a", 5, false, 1, 12},
		{"exact fit", "a\nb\nc", 40, false, 3, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArranger(newFakeMeasurer(), WithSquash(tt.squash))
			layout := a.Arrange(tt.text, plot.SP(0, 0), ArrangeOptions{
				Font:      testFont,
				MaxHeight: tt.maxHeight,
			})
			if len(layout.Lines) != tt.wantLines {
				t.Errorf("len(Lines) = %d, want %d", len(layout.Lines), tt.wantLines)
			}
			if layout.Size.Height != tt.wantHeight {
				t.Errorf("Size.Height = %v, want %v", layout.Size.Height, tt.wantHeight)
			}
		})
	}
}

func TestArrange_HorizontalTrim(t *testing.T) {
	a := NewArranger(newFakeMeasurer())
	layout := a.Arrange("Hello world\nab", plot.SP(0, 0), ArrangeOptions{
		Font:     testFont,
		MaxWidth: 50,
	})

	if got := layout.Lines[0].Text; got != "Hell…" {
		t.Errorf("Lines[0].Text = %q, want %q", got, "Hell…")
	}
	if got := layout.Lines[1].Text; got != "ab" {
		t.Errorf("Lines[1].Text = %q, want %q", got, "ab")
	}
	if layout.Lines[0].Width != 50 || layout.Size.Width != 50 {
		t.Errorf("widths = %v, %v, want 50", layout.Lines[0].Width, layout.Size.Width)
	}
}

type fixedTrimmer struct{}

func (fixedTrimmer) Trim(Measurer, string, float64, Font) string { return "X" }

func TestArrange_WithTrimmer(t *testing.T) {
	a := NewArranger(newFakeMeasurer(), WithTrimmer(fixedTrimmer{}))
	layout := a.Arrange("Hello", plot.SP(0, 0), ArrangeOptions{Font: testFont, MaxWidth: 20})
	if layout.Lines[0].Text != "X" || layout.Size.Width != 10 {
		t.Errorf("Lines[0] = %+v, want custom trim", layout.Lines[0])
	}

	a = NewArranger(newFakeMeasurer(), WithTrimmer(nil))
	layout = a.Arrange("Hello", plot.SP(0, 0), ArrangeOptions{Font: testFont, MaxWidth: 20})
	if layout.Lines[0].Text != "H…" {
		t.Errorf("Lines[0].Text = %q, want default trimmer result", layout.Lines[0].Text)
	}
}

func TestArrange_Rotation(t *testing.T) {
	a := NewArranger(newFakeMeasurer())
	layout := a.Arrange("aa\nbb", plot.SP(100, 100), ArrangeOptions{
		Font:     testFont,
		Rotation: 90,
	})

	corners := layout.Corners()
	want := [4]plot.ScreenPoint{
		plot.SP(100, 100), plot.SP(100, 120), plot.SP(74, 120), plot.SP(74, 100),
	}
	for i := range corners {
		if !pointApprox(corners[i], want[i]) {
			t.Errorf("Corners()[%d] = %v, want %v", i, corners[i], want[i])
		}
	}

	wantBounds := plot.Rect{Left: 74, Top: 100, Width: 26, Height: 20}
	if got := layout.Bounds(); got != wantBounds {
		t.Errorf("Bounds() = %v, want %v", got, wantBounds)
	}

	// The second line sits one line height to the left of the first.
	if !pointApprox(layout.Lines[1].Position, plot.SP(86, 100)) {
		t.Errorf("Lines[1].Position = %v, want (86, 100)", layout.Lines[1].Position)
	}
}

func TestBasis(t *testing.T) {
	tests := []struct {
		degrees float64
		h, v    plot.ScreenVector
	}{
		{0, plot.SV(1, 0), plot.SV(0, 1)},
		{90, plot.SV(0, 1), plot.SV(-1, 0)},
		{180, plot.SV(-1, 0), plot.SV(0, -1)},
		{-90, plot.SV(0, -1), plot.SV(1, 0)},
	}

	for _, tt := range tests {
		h, v := basis(tt.degrees)
		if h != tt.h || v != tt.v {
			t.Errorf("basis(%v) = %v, %v, want %v, %v", tt.degrees, h, v, tt.h, tt.v)
		}
	}
}

func TestArranger_Measure(t *testing.T) {
	a := NewArranger(newFakeMeasurer())
	tests := []struct {
		name    string
		text    string
		maxSize plot.Size
		want    plot.Size
	}{
		{"single line", "abc", plot.Size{}, plot.Size{Width: 30, Height: 12}},
		{"two lines", "A\nBB", plot.Size{}, plot.Size{Width: 20, Height: 26}},
		{"trailing break", "A\n", plot.Size{}, plot.Size{Width: 10, Height: 26}},
		{"width bound", "abcdef", plot.Size{Width: 35}, plot.Size{Width: 30, Height: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Measure(tt.text, testFont, tt.maxSize); got != tt.want {
				t.Errorf("Measure(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLayout_Transform(t *testing.T) {
	a := NewArranger(newFakeMeasurer())
	for _, rot := range []float64{0, 30, 90, 215} {
		layout := a.Arrange("A\nBB", plot.SP(40, 60), ArrangeOptions{
			Font:                testFont,
			Rotation:            rot,
			HorizontalAlignment: AlignCenter,
			VerticalAlignment:   AlignMiddle,
		})
		m := layout.Transform()

		// Line 1 starts one line height below the block's top-left corner.
		if got := m.Apply(plot.SP(0, 14)); !pointApprox(got, layout.Lines[1].Position) {
			t.Errorf("rotation %v: Transform().Apply() = %v, want %v", rot, got, layout.Lines[1].Position)
		}
		c := layout.Corners()
		if got := m.Apply(plot.SP(20, 26)); !pointApprox(got, c[2]) {
			t.Errorf("rotation %v: bottom-right = %v, want %v", rot, got, c[2])
		}
	}
}
