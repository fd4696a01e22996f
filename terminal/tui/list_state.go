package tui

// ListState tracks selection and scroll offset for a List.
// The zero value has nothing selected.
type ListState struct {
	selected int // index+1, 0 = none
	Offset   int // first visible item index
}

// NewListState returns state with index i selected
func NewListState(i int) ListState {
	s := ListState{}
	s.Select(i)
	return s
}

// Selected returns the selected index and whether one is selected
func (s ListState) Selected() (int, bool) {
	return s.selected - 1, s.selected > 0
}

// Select sets the selection; negative clears it
func (s *ListState) Select(i int) {
	if i < 0 {
		s.selected = 0
		return
	}
	s.selected = i + 1
}

// Unselect clears the selection and resets scrolling
func (s *ListState) Unselect() {
	s.selected = 0
	s.Offset = 0
}

// Next moves selection down, wrapping to the top, within count items
func (s *ListState) Next(count int) {
	if count <= 0 {
		return
	}
	i, ok := s.Selected()
	if !ok || i >= count-1 {
		s.Select(0)
		return
	}
	s.Select(i + 1)
}

// Previous moves selection up, wrapping to the bottom, within count items
func (s *ListState) Previous(count int) {
	if count <= 0 {
		return
	}
	i, ok := s.Selected()
	if !ok || i <= 0 {
		s.Select(count - 1)
		return
	}
	s.Select(i - 1)
}

// First selects the first item
func (s *ListState) First(count int) {
	if count > 0 {
		s.Select(0)
	}
}

// Last selects the last item
func (s *ListState) Last(count int) {
	if count > 0 {
		s.Select(count - 1)
	}
}

// EnsureVisible adjusts Offset so the selection lies in a window of visible rows
func (s *ListState) EnsureVisible(visible, count int) {
	if visible <= 0 {
		return
	}
	if i, ok := s.Selected(); ok {
		if i < s.Offset {
			s.Offset = i
		} else if i >= s.Offset+visible {
			s.Offset = i - visible + 1
		}
	}
	s.Offset = ClampScroll(s.Offset, visible, count)
}

// ClampScroll clamps a scroll offset to [0, total-visible]
func ClampScroll(offset, visible, total int) int {
	maxOffset := total - visible
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
