package multiselect

import "strings"

// State is the widget's state container: open flag, search text, the full
// option set, the filtered view and the selection. Every mutation ends in
// Reconcile, so the filtered view never holds a selected option and always
// matches the search text.
type State struct {
	open     bool
	search   string
	all      []Option
	filtered []Option
	selected []Option

	cursor int // index into filtered
	offset int // first visible row of filtered
}

// NewState seeds the container from the host's options and initial
// selection.
func NewState(options, selected []Option) *State {
	s := &State{
		all:      cloneOptions(options),
		selected: cloneOptions(selected),
	}
	s.Reconcile()
	return s
}

// Reconcile re-derives the filtered view from the full option set, the
// selection and the search text.
func (s *State) Reconcile() {
	query := strings.ToLower(s.search)
	filtered := make([]Option, 0, len(s.all))
	for _, o := range s.all {
		if indexOf(s.selected, o) >= 0 {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(o.Label()), query) {
			continue
		}
		filtered = append(filtered, o)
	}
	s.filtered = filtered
	s.clampCursor()
}

// SetOptions replaces the full option set.
func (s *State) SetOptions(options []Option) {
	s.all = cloneOptions(options)
	s.Reconcile()
}

// SetSelection replaces the selection.
func (s *State) SetSelection(selected []Option) {
	s.selected = cloneOptions(selected)
	s.Reconcile()
}

// Toggle adds o to the selection, or removes it when an equal option is
// already selected. It reports whether o was added.
func (s *State) Toggle(o Option) bool {
	if s.Remove(o) {
		return false
	}
	s.selected = append(s.selected, o)
	s.Reconcile()
	return true
}

// Remove drops the selected option equal to o.
func (s *State) Remove(o Option) bool {
	i := indexOf(s.selected, o)
	if i < 0 {
		return false
	}
	s.RemoveAt(i)
	return true
}

// RemoveAt drops the i-th selected option.
func (s *State) RemoveAt(i int) (Option, bool) {
	if i < 0 || i >= len(s.selected) {
		return Option{}, false
	}
	o := s.selected[i]
	s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
	s.Reconcile()
	return o, true
}

// PopLast removes the most recently selected option.
func (s *State) PopLast() (Option, bool) {
	return s.RemoveAt(len(s.selected) - 1)
}

// SetSearch updates the search text. Typing always opens the panel and
// moves the highlight back to the first row.
func (s *State) SetSearch(text string) {
	s.search = text
	s.open = true
	s.cursor = 0
	s.offset = 0
	s.Reconcile()
}

func (s *State) Search() string { return s.search }

func (s *State) IsOpen() bool { return s.open }

// SetOpen shows or hides the panel.
func (s *State) SetOpen(open bool) {
	s.open = open
}

// Selection returns a copy of the selected options in selection order.
func (s *State) Selection() []Option {
	return cloneOptions(s.selected)
}

// Filtered returns a copy of the options currently eligible for display.
func (s *State) Filtered() []Option {
	return cloneOptions(s.filtered)
}

// Options returns a copy of the full option set.
func (s *State) Options() []Option {
	return cloneOptions(s.all)
}

// IsSelected reports whether an option equal to o is selected.
func (s *State) IsSelected(o Option) bool {
	return indexOf(s.selected, o) >= 0
}

// Cursor returns the highlighted row in the filtered view.
func (s *State) Cursor() int { return s.cursor }

// Highlighted returns the option under the cursor.
func (s *State) Highlighted() (Option, bool) {
	if s.cursor < 0 || s.cursor >= len(s.filtered) {
		return Option{}, false
	}
	return s.filtered[s.cursor], true
}

// MoveCursor moves the highlight by delta rows, wrapping at both ends.
func (s *State) MoveCursor(delta int) {
	n := len(s.filtered)
	if n == 0 {
		s.cursor = 0
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// SetCursor puts the highlight on row i when it exists.
func (s *State) SetCursor(i int) {
	if i >= 0 && i < len(s.filtered) {
		s.cursor = i
	}
}

// Window returns the [start, end) range of filtered rows to draw when at
// most visible rows fit, scrolled so the cursor stays in view.
func (s *State) Window(visible int) (int, int) {
	n := len(s.filtered)
	if visible <= 0 || n <= visible {
		s.offset = 0
		return 0, n
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+visible {
		s.offset = s.cursor - visible + 1
	}
	if s.offset > n-visible {
		s.offset = n - visible
	}
	return s.offset, s.offset + visible
}

func (s *State) clampCursor() {
	if s.cursor >= len(s.filtered) {
		s.cursor = len(s.filtered) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func cloneOptions(options []Option) []Option {
	if options == nil {
		return nil
	}
	out := make([]Option, len(options))
	copy(out, options)
	return out
}
