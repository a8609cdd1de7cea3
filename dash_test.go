package plot

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name      string
		lengths   []float64
		wantNil   bool
		wantArray []float64
	}{
		{name: "nil input returns nil", lengths: nil, wantNil: true},
		{name: "all zeros returns nil", lengths: []float64{0, 0, 0}, wantNil: true},
		{name: "simple dash-gap pattern", lengths: []float64{5, 3}, wantArray: []float64{5, 3}},
		{name: "single value", lengths: []float64{5}, wantArray: []float64{5}},
		{name: "negative values use absolute", lengths: []float64{-5, 3}, wantArray: []float64{5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if tt.wantNil {
				if d != nil {
					t.Errorf("NewDash() = %v, want nil", d)
				}
				return
			}
			if d == nil {
				t.Fatal("NewDash() = nil, want non-nil")
			}
			if !slices.Equal(d.Array, tt.wantArray) {
				t.Errorf("NewDash().Array = %v, want %v", d.Array, tt.wantArray)
			}
		})
	}
}

func TestDash_PatternLength(t *testing.T) {
	tests := []struct {
		name string
		d    *Dash
		want float64
	}{
		{"nil", nil, 0},
		{"even", NewDash(5, 3), 8},
		{"odd doubles", NewDash(5), 10},
		{"odd three", NewDash(1, 2, 3), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.PatternLength(); got != tt.want {
				t.Errorf("PatternLength() = %v, want %v", got, tt.want)
			}
			if got := tt.d.IsDashed(); got != (tt.want > 0) {
				t.Errorf("IsDashed() = %v", got)
			}
		})
	}
}

func TestDash_NormalizedOffset(t *testing.T) {
	tests := []struct {
		offset, want float64
	}{
		{0, 0},
		{3, 3},
		{10, 2},
		{-2, 6},
	}
	for _, tt := range tests {
		d := NewDash(5, 3).WithOffset(tt.offset)
		if got := d.NormalizedOffset(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizedOffset(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestDash_CloneAndScale(t *testing.T) {
	d := NewDash(4, 2).WithOffset(1)
	c := d.Clone()
	c.Array[0] = 100
	if d.Array[0] != 4 {
		t.Error("Clone() shares the dash array")
	}

	s := d.Scale(2)
	if !slices.Equal(s.Array, []float64{8, 4}) || s.Offset != 2 {
		t.Errorf("Scale(2) = %+v", s)
	}
	if d.Scale(0) != d {
		t.Error("Scale(0) should return the receiver")
	}
	var nilDash *Dash
	if nilDash.Scale(2) != nil || nilDash.Clone() != nil || nilDash.WithOffset(1) != nil {
		t.Error("nil dash methods should return nil")
	}
}

func TestLineStyle(t *testing.T) {
	tests := []struct {
		style LineStyle
		name  string
		dash  []float64
	}{
		{LineStyleSolid, "Solid", nil},
		{LineStyleDash, "Dash", []float64{4, 4}},
		{LineStyleDot, "Dot", []float64{1, 1}},
		{LineStyleDashDot, "DashDot", []float64{4, 4, 1, 4}},
		{LineStyleLongDash, "LongDash", []float64{10, 4}},
		{LineStyleNone, "None", nil},
		{LineStyleAutomatic, "Automatic", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			parsed, err := ParseLineStyle(tt.name)
			if err != nil || parsed != tt.style {
				t.Errorf("ParseLineStyle(%q) = %v, %v", tt.name, parsed, err)
			}
			if got := tt.style.DashArray(); !slices.Equal(got, tt.dash) {
				t.Errorf("DashArray() = %v, want %v", got, tt.dash)
			}
		})
	}

	if _, err := ParseLineStyle("wavy"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseLineStyle(wavy) error = %v, want ErrInvalidArgument", err)
	}
	if got := LineStyleAutomatic.Actual(LineStyleDot); got != LineStyleDot {
		t.Errorf("Automatic.Actual(Dot) = %v", got)
	}
	if got := LineStyleDash.Actual(LineStyleDot); got != LineStyleDash {
		t.Errorf("Dash.Actual(Dot) = %v", got)
	}
}

func TestNewPen(t *testing.T) {
	tests := []struct {
		name      string
		color     Color
		thickness float64
		style     LineStyle
		wantNil   bool
	}{
		{"visible solid", Black, 1, LineStyleSolid, false},
		{"invisible color", Transparent, 1, LineStyleSolid, true},
		{"undefined color", Undefined, 1, LineStyleSolid, true},
		{"none style", Black, 1, LineStyleNone, true},
		{"zero thickness", Black, 0, LineStyleSolid, true},
		{"hairline", Black, 0.01, LineStyleDot, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPen(tt.color, tt.thickness, tt.style, LineJoinRound)
			if (p == nil) != tt.wantNil {
				t.Errorf("NewPen() = %v, wantNil %v", p, tt.wantNil)
			}
		})
	}
}

func TestPen_Dash(t *testing.T) {
	p := NewPen(Black, 2, LineStyleDash, LineJoinMiter)
	d := p.Dash()
	if d == nil || !slices.Equal(d.Array, []float64{8, 8}) {
		t.Errorf("Dash() = %+v, want [8 8]", d)
	}

	p.DashArray = []float64{3, 1}
	if got := p.ActualDashArray(); !slices.Equal(got, []float64{3, 1}) {
		t.Errorf("ActualDashArray() = %v, want override", got)
	}

	if SolidPen(Black, 1).Dash() != nil {
		t.Error("solid pen has a dash pattern")
	}
	var none *Pen
	if none.Dash() != nil || none.ActualDashArray() != nil {
		t.Error("nil pen has a dash pattern")
	}
}
