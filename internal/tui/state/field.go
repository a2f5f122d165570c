package state

import "unicode/utf8"

// Phase is the logical state of a search field. Animation runs on top of
// these two states; it never adds intermediate ones.
type Phase int

const (
	Collapsed Phase = iota
	Expanded
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	if p == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Selection is a half-open rune range [Start, End). Start == End is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at pos.
func Caret(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// Collapsed reports whether the selection is a plain caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// FieldState is everything a search field owns besides its animations.
type FieldState struct {
	Text      string
	Selection Selection
	Focused   bool
}

// Phase derives the logical phase from focus.
func (s FieldState) Phase() Phase {
	if s.Focused {
		return Expanded
	}
	return Collapsed
}

// Len is the text length in runes.
func (s FieldState) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// AllSelected reports whether a non-empty text is entirely selected.
func (s FieldState) AllSelected() bool {
	n := s.Len()
	return n > 0 && s.Selection.Start == 0 && s.Selection.End == n
}

// ApplyText records new text coming from the input. While collapsed a
// non-empty value is treated as an external population and selected in
// full; otherwise the caret goes to the end.
func ApplyText(s FieldState, text string) FieldState {
	s.Text = text
	n := utf8.RuneCountInString(text)
	if !s.Focused && n > 0 {
		s.Selection = Selection{Start: 0, End: n}
	} else {
		s.Selection = Caret(n)
	}
	return s
}

// ApplyFocus records a focus change. Text and selection are untouched.
func ApplyFocus(s FieldState, focused bool) FieldState {
	s.Focused = focused
	return s
}

// MoveCaret collapses the selection to pos, clamped to the text.
func MoveCaret(s FieldState, pos int) FieldState {
	n := s.Len()
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}
	s.Selection = Caret(pos)
	return s
}

// SelectAll selects the whole text.
func SelectAll(s FieldState) FieldState {
	s.Selection = Selection{Start: 0, End: s.Len()}
	return s
}
