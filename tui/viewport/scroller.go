// Package viewport computes which slice of a list is visible in a
// fixed-height area, keeping the selection on screen.
package viewport

// Scroller tracks a visible window [Top, Bottom) over a list and the
// selected index. Once Recompute has run with a non-empty list,
// Top <= Selected < Bottom and Bottom-Top == min(length, height).
type Scroller struct {
	Top      int
	Bottom   int
	Selected int
}

// Height returns the number of visible rows.
func (s Scroller) Height() int {
	return s.Bottom - s.Top
}

// Recompute fits the window to a list of length items shown in height rows.
// It resets the window when its size no longer matches and then scrolls
// the selection into view. Calling it twice with the same arguments is a
// no-op the second time.
func (s *Scroller) Recompute(length, height int) {
	length = max(length, 0)
	height = max(height, 0)
	if length == 0 {
		s.Top, s.Bottom, s.Selected = 0, 0, 0
		return
	}
	s.Selected = min(max(s.Selected, 0), length-1)

	want := min(length, height)
	if s.Bottom-s.Top != want || s.Bottom > length {
		s.Top, s.Bottom = 0, want
	}
	s.adjust()
}

// adjust shifts the window so that Selected lies within it.
func (s *Scroller) adjust() {
	if s.Top == s.Bottom {
		return
	}
	if s.Selected < s.Top {
		d := s.Top - s.Selected
		s.Top -= d
		s.Bottom -= d
	}
	if s.Selected >= s.Bottom {
		d := s.Selected - s.Bottom + 1
		s.Top += d
		s.Bottom += d
	}
}

// Up moves the selection one item toward the start, stopping at 0.
func (s *Scroller) Up() {
	if s.Selected > 0 {
		s.Selected--
		s.adjust()
	}
}

// Down moves the selection one item toward the end of a list of length
// items, stopping at the last item.
func (s *Scroller) Down(length int) {
	if s.Selected < length-1 {
		s.Selected++
		s.adjust()
	}
}

// Select jumps to index i, clamped to a list of length items.
func (s *Scroller) Select(i, length int) {
	if length <= 0 {
		s.Selected = 0
		return
	}
	s.Selected = min(max(i, 0), length-1)
	s.adjust()
}

// Visible reports whether index i is inside the window.
func (s Scroller) Visible(i int) bool {
	return i >= s.Top && i < s.Bottom
}
