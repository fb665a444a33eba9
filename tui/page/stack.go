package page

// Stack holds the pages navigated through. The top page is the one shown
// and receiving input.
type Stack struct {
	pages []Page
}

// Push adds p on top.
func (s *Stack) Push(p Page) {
	s.pages = append(s.pages, p)
}

// Pop removes and returns the top page. It reports false on an empty stack.
func (s *Stack) Pop() (Page, bool) {
	if len(s.pages) == 0 {
		return nil, false
	}
	top := s.pages[len(s.pages)-1]
	s.pages[len(s.pages)-1] = nil
	s.pages = s.pages[:len(s.pages)-1]
	return top, true
}

// Top returns the top page without removing it.
func (s *Stack) Top() (Page, bool) {
	if len(s.pages) == 0 {
		return nil, false
	}
	return s.pages[len(s.pages)-1], true
}

// Replace swaps the top page for p. On an empty stack it pushes p.
func (s *Stack) Replace(p Page) {
	if len(s.pages) == 0 {
		s.Push(p)
		return
	}
	s.pages[len(s.pages)-1] = p
}

// Len returns the number of pages.
func (s *Stack) Len() int {
	return len(s.pages)
}

// Resize fits every page to the screen, so popping back shows a page laid
// out for the current size.
func (s *Stack) Resize(width, height int) {
	for _, p := range s.pages {
		p.Resize(width, height)
	}
}
