package plot

import (
	"errors"
	"math"
	"testing"
)

func TestNewRect(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"positive", 10, 20, false},
		{"zero size", 0, 0, false},
		{"negative width", -1, 5, true},
		{"negative height", 5, -1, true},
		{"NaN width", math.NaN(), 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRect(1, 2, tt.width, tt.height)
			if tt.wantErr {
				if !errors.Is(err, ErrArgumentOutOfRange) {
					t.Errorf("NewRect() error = %v, want ErrArgumentOutOfRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRect() error = %v", err)
			}
			if r.Right() != 1+tt.width || r.Bottom() != 2+tt.height {
				t.Errorf("NewRect() = %v, Right/Bottom mismatch", r)
			}
		})
	}
}

func TestRectFromCorners(t *testing.T) {
	want := Rect{Left: 1, Top: 2, Width: 9, Height: 18}
	if got := RectFromCorners(10, 20, 1, 2); got != want {
		t.Errorf("RectFromCorners() = %v, want %v", got, want)
	}
	if got := RectFromPoints(SP(1, 20), SP(10, 2)); got != want {
		t.Errorf("RectFromPoints() = %v, want %v", got, want)
	}
	if got := RectFromPointSize(SP(1, 2), Size{Width: 9, Height: 18}); got != want {
		t.Errorf("RectFromPointSize() = %v, want %v", got, want)
	}
}

func TestRect_Derived(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 30, Height: 40}
	if r.Center() != SP(25, 40) {
		t.Errorf("Center() = %v, want (25, 40)", r.Center())
	}
	if r.TopLeft() != SP(10, 20) || r.BottomRight() != SP(40, 60) {
		t.Errorf("corners = %v, %v", r.TopLeft(), r.BottomRight())
	}
	if r.Size() != (Size{Width: 30, Height: 40}) {
		t.Errorf("Size() = %v", r.Size())
	}
}

func TestRect_Setters(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Width: 10, Height: 10}

	r.SetRight(50)
	if r.Width != 40 || r.Right() != 50 {
		t.Errorf("SetRight(50) gave %v", r)
	}
	r.SetBottom(5)
	if r.Height != 0 {
		t.Errorf("SetBottom(above top) height = %v, want 0", r.Height)
	}
	r.SetCenter(SP(0, 0))
	if r.Left != -20 || r.Top != 0 {
		t.Errorf("SetCenter() gave %v", r)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Width: 10, Height: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0, 0, true},
		{10, 10, true},
		{10.001, 5, false},
		{-1, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	b := Rect{Left: 50, Top: 50, Width: 100, Height: 100}

	want := Rect{Left: 50, Top: 50, Width: 50, Height: 50}
	if got := a.Intersect(b); got != want {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}
	if got := b.Intersect(a); got != want {
		t.Errorf("Intersect() is not symmetric: %v", got)
	}
	if !a.Intersects(b) {
		t.Error("Intersects() = false, want true")
	}

	far := Rect{Left: 200, Top: 200, Width: 10, Height: 10}
	if a.Intersects(far) {
		t.Error("Intersects(disjoint) = true")
	}
	if got := a.Intersect(far); !got.IsEmpty() {
		t.Errorf("Intersect(disjoint) = %v, want empty", got)
	}

	if got := a.Union(b); got != (Rect{Left: 0, Top: 0, Width: 150, Height: 150}) {
		t.Errorf("Union() = %v", got)
	}
}

func TestRect_Inflate(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Width: 20, Height: 20}

	got, err := r.Inflate(5, 2)
	if err != nil {
		t.Fatalf("Inflate() error = %v", err)
	}
	if got != (Rect{Left: 5, Top: 8, Width: 30, Height: 24}) {
		t.Errorf("Inflate(5, 2) = %v", got)
	}

	if _, err := r.Inflate(-11, 0); !errors.Is(err, ErrArgumentOutOfRange) {
		t.Errorf("Inflate(-11, 0) error = %v, want ErrArgumentOutOfRange", err)
	}

	th := Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4}
	grown, err := r.InflateThickness(th)
	if err != nil {
		t.Fatalf("InflateThickness() error = %v", err)
	}
	if grown != (Rect{Left: 9, Top: 8, Width: 24, Height: 26}) {
		t.Errorf("InflateThickness() = %v", grown)
	}
	back, err := grown.Deflate(th)
	if err != nil || back != r {
		t.Errorf("Deflate() = %v, %v, want %v", back, err, r)
	}
}

func TestInflate_Composes(t *testing.T) {
	rect := Rect{Left: 10, Top: 20, Width: 40, Height: 30}
	circle := Circle{Center: SP(5, 5), Radius: 10}
	annulus := Annulus{Center: SP(5, 5), InnerRadius: 5, OuterRadius: 10}
	thickness := Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4}

	tests := []struct{ a, b float64 }{
		{2, 3},
		{-1, 0.5},
		{0.25, -0.75},
		{0, 0},
	}
	for _, tt := range tests {
		sum := tt.a + tt.b

		r1, err1 := rect.Inflate(tt.a, 2*tt.a)
		r2, err2 := r1.Inflate(tt.b, 2*tt.b)
		want, err3 := rect.Inflate(sum, 2*sum)
		if err1 != nil || err2 != nil || err3 != nil || r2 != want {
			t.Errorf("Rect.Inflate(%v).Inflate(%v) = %v, want %v", tt.a, tt.b, r2, want)
		}

		c1, err1 := circle.Inflate(tt.a)
		c2, err2 := c1.Inflate(tt.b)
		wantC, err3 := circle.Inflate(sum)
		if err1 != nil || err2 != nil || err3 != nil || c2 != wantC {
			t.Errorf("Circle.Inflate(%v).Inflate(%v) = %v, want %v", tt.a, tt.b, c2, wantC)
		}

		a1, err1 := annulus.Inflate(tt.a)
		a2, err2 := a1.Inflate(tt.b)
		wantA, err3 := annulus.Inflate(sum)
		if err1 != nil || err2 != nil || err3 != nil || a2 != wantA {
			t.Errorf("Annulus.Inflate(%v).Inflate(%v) = %v, want %v", tt.a, tt.b, a2, wantA)
		}

		if got, want := thickness.Inflate(tt.a).Inflate(tt.b), thickness.Inflate(sum); got != want {
			t.Errorf("Thickness.Inflate(%v).Inflate(%v) = %v, want %v", tt.a, tt.b, got, want)
		}
	}
}

func TestSize(t *testing.T) {
	if _, err := NewSize(-1, 0); !errors.Is(err, ErrArgumentOutOfRange) {
		t.Errorf("NewSize(-1, 0) error = %v, want ErrArgumentOutOfRange", err)
	}
	s, err := NewSize(3, 4)
	if err != nil {
		t.Fatalf("NewSize() error = %v", err)
	}
	if got := s.Include(Size{Width: 5, Height: 1}); got != (Size{Width: 5, Height: 4}) {
		t.Errorf("Include() = %v, want (5, 4)", got)
	}
	if s.IsEmpty() || !(Size{Width: 3}).IsEmpty() {
		t.Error("IsEmpty() misreports")
	}
}

func TestThickness(t *testing.T) {
	th := Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4}
	if th.Width() != 4 || th.Height() != 6 {
		t.Errorf("Width/Height = %v/%v, want 4/6", th.Width(), th.Height())
	}
	if got := th.Inflate(1); got != (Thickness{2, 3, 4, 5}) {
		t.Errorf("Inflate(1) = %v", got)
	}
	if got := th.Include(UniformThickness(2.5)); got != (Thickness{2.5, 2.5, 3, 4}) {
		t.Errorf("Include() = %v", got)
	}
}

func TestCircle(t *testing.T) {
	if _, err := NewCircle(SP(0, 0), -1); !errors.Is(err, ErrArgumentOutOfRange) {
		t.Errorf("NewCircle(r=-1) error = %v, want ErrArgumentOutOfRange", err)
	}

	c, err := NewCircle(SP(10, 10), 5)
	if err != nil {
		t.Fatalf("NewCircle() error = %v", err)
	}
	if !c.Contains(12, 12) {
		t.Error("Contains(inside) = false")
	}
	if c.Contains(15, 10) {
		t.Error("Contains(on radius) = true, boundary is outside")
	}
	if c.Bounds() != (Rect{Left: 5, Top: 5, Width: 10, Height: 10}) {
		t.Errorf("Bounds() = %v", c.Bounds())
	}
	if got := c.Offset(1, 2).Center; got != SP(11, 12) {
		t.Errorf("Offset() center = %v", got)
	}
	if _, err := c.Inflate(-6); err == nil {
		t.Error("Inflate(-6) succeeded, want error")
	}
}

func TestCircle_Intersect(t *testing.T) {
	outer := Circle{Center: SP(0, 0), Radius: 10}
	inner := Circle{Center: SP(0, 0), Radius: 4}

	a, err := outer.Intersect(inner)
	if err != nil {
		t.Fatalf("Intersect() error = %v", err)
	}
	if a.InnerRadius != 4 || a.OuterRadius != 10 {
		t.Errorf("Intersect() = %+v, want radii 4..10", a)
	}

	if _, err := outer.Intersect(Circle{Center: SP(1, 0), Radius: 4}); !errors.Is(err, ErrArgumentOutOfRange) {
		t.Errorf("Intersect(non-concentric) error = %v, want ErrArgumentOutOfRange", err)
	}
	if _, err := outer.Intersect(outer); !errors.Is(err, ErrArgumentOutOfRange) {
		t.Errorf("Intersect(equal radii) error = %v, want ErrArgumentOutOfRange", err)
	}
}

func TestAnnulus(t *testing.T) {
	if _, err := NewAnnulus(SP(0, 0), 5, 5); !errors.Is(err, ErrArgumentOutOfRange) {
		t.Errorf("NewAnnulus(5, 5) error = %v, want ErrArgumentOutOfRange", err)
	}
	if _, err := NewAnnulus(SP(0, 0), -1, 5); !errors.Is(err, ErrArgumentOutOfRange) {
		t.Errorf("NewAnnulus(-1, 5) error = %v, want ErrArgumentOutOfRange", err)
	}

	a, err := NewAnnulus(SP(0, 0), 2, 4)
	if err != nil {
		t.Fatalf("NewAnnulus() error = %v", err)
	}
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, false},
		{1, 0, false},
		{2, 0, false},
		{3, 0, true},
		{4, 0, false},
		{5, 0, false},
	}
	for _, tt := range tests {
		if got := a.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	thick, err := a.Inflate(1)
	if err != nil {
		t.Fatalf("Inflate(1) error = %v", err)
	}
	if thick.InnerRadius != 1 || thick.OuterRadius != 5 {
		t.Errorf("Inflate(1) = %+v, want radii 1..5", thick)
	}
	if _, err := a.Inflate(3); err == nil {
		t.Error("Inflate(3) succeeded with negative inner radius")
	}
}
