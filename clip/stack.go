package clip

import (
	"github.com/gogpu/plot"
)

// Stack manages nested clip regions with push/pop operations.
//
// While only rectangles are pushed the stack keeps their exact
// intersection. Other shapes narrow the bounding rectangle used for fast
// rejection and are tested individually by Contains.
//
// The zero Stack is empty and ready to use. Stack is not safe for
// concurrent use.
type Stack struct {
	entries []entry
	state
}

// state is the composed clip after a number of pushes.
type state struct {
	// bounds encloses the effective clip. When exact is set it is the
	// effective clip.
	bounds plot.Rect
	exact  bool
	// void is set once the intersection is known to be empty.
	void bool
}

// entry is a pushed shape and the state to restore when it is popped.
type entry struct {
	shape plot.Shape
	prev  state
}

// NewStack creates an empty clip stack.
func NewStack() *Stack {
	return &Stack{entries: make([]entry, 0, 8)}
}

// Push narrows the effective clip to its intersection with shape.
func (s *Stack) Push(shape plot.Shape) {
	prev := s.state
	s.entries = append(s.entries, entry{shape: shape, prev: prev})

	if shape.IsEmpty() {
		s.void = true
		return
	}

	b := shape.Bounds()
	_, isRect := shape.Rect()
	if len(s.entries) == 1 {
		s.state = state{bounds: b, exact: isRect}
		return
	}
	if !prev.bounds.Intersects(b) {
		s.void = true
	}
	s.bounds = prev.bounds.Intersect(b)
	s.exact = prev.exact && isRect
}

// Pop removes the most recently pushed region and restores the previous
// effective clip. It reports false, leaving the stack unchanged, when the
// stack is empty.
func (s *Stack) Pop() bool {
	if len(s.entries) == 0 {
		plot.Logger().Warn("clip: pop on empty stack")
		return false
	}
	last := len(s.entries) - 1
	s.state = s.entries[last].prev
	s.entries[last] = entry{}
	s.entries = s.entries[:last]
	return true
}

// Depth returns the number of pushed regions.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// IsClipped reports whether any region is pushed.
func (s *Stack) IsClipped() bool {
	return len(s.entries) > 0
}

// IsVoid reports whether the effective clip is known to contain nothing.
func (s *Stack) IsVoid() bool {
	return len(s.entries) > 0 && s.void
}

// Contains reports whether (x, y) lies in the effective clip. Every point
// is contained when the stack is empty.
func (s *Stack) Contains(x, y float64) bool {
	if len(s.entries) == 0 {
		return true
	}
	if s.void || !s.bounds.Contains(x, y) {
		return false
	}
	if s.exact {
		return true
	}
	for i := range s.entries {
		if !s.entries[i].shape.Contains(x, y) {
			return false
		}
	}
	return true
}

// Bounds returns a rectangle enclosing the effective clip. ok is false when
// the stack is empty and nothing is clipped. A void clip has zero size.
func (s *Stack) Bounds() (r plot.Rect, ok bool) {
	if len(s.entries) == 0 {
		return plot.Rect{}, false
	}
	if s.void {
		return plot.Rect{Left: s.bounds.Left, Top: s.bounds.Top}, true
	}
	return s.bounds, true
}

// Intersects reports whether r may overlap the effective clip. It is a
// conservative test for culling: false means nothing inside r is visible.
func (s *Stack) Intersects(r plot.Rect) bool {
	if len(s.entries) == 0 {
		return true
	}
	return !s.void && s.bounds.Intersects(r)
}

// Current returns the effective clip as a single shape. An empty stack
// yields plot.EmptyShape, the identity of composition.
func (s *Stack) Current() plot.Shape {
	switch {
	case len(s.entries) == 0:
		return plot.EmptyShape()
	case len(s.entries) == 1:
		return s.entries[0].shape
	case s.void:
		return plot.EmptyShape()
	case s.exact:
		return plot.RectShape(s.bounds)
	}

	shapes := s.Shapes()
	bounds := s.bounds
	return plot.CustomShape(bounds, func(x, y float64) bool {
		if !bounds.Contains(x, y) {
			return false
		}
		for i := range shapes {
			if !shapes[i].Contains(x, y) {
				return false
			}
		}
		return true
	})
}

// Shapes returns the pushed regions, oldest first.
func (s *Stack) Shapes() []plot.Shape {
	shapes := make([]plot.Shape, len(s.entries))
	for i := range s.entries {
		shapes[i] = s.entries[i].shape
	}
	return shapes
}

// Reset pops every region.
func (s *Stack) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.state = state{}
}
