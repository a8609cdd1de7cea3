// Package clip composes nested clip regions.
//
// A Stack holds the regions pushed by a render context. The effective clip
// is the intersection of every pushed region, so the order of pushes never
// matters, and Pop restores exactly the intersection that was in effect
// before the matching Push.
//
//	var s clip.Stack
//	s.Push(plot.RectShape(plotArea))
//	s.Push(plot.CircleShape(lens))
//	visible := s.Contains(x, y)
//	s.Pop()
//
// An empty stack does not clip at all. Pushing plot.EmptyShape clips
// everything out.
package clip
