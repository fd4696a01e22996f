package tui

// InputState holds a single-line editable value with a cursor
type InputState struct {
	Text   []rune
	Cursor int // Positions before which cursor sits (0 = before first char)
}

// NewInputState creates state with the cursor after initial
func NewInputState(initial string) InputState {
	runes := []rune(initial)
	return InputState{Text: runes, Cursor: len(runes)}
}

// Value returns current text as string
func (t InputState) Value() string {
	return string(t.Text)
}

// Empty reports whether there is no text
func (t InputState) Empty() bool {
	return len(t.Text) == 0
}

// Insert returns the state with r added at the cursor
func (t InputState) Insert(r rune) InputState {
	text := make([]rune, 0, len(t.Text)+1)
	text = append(text, t.Text[:t.Cursor]...)
	text = append(text, r)
	text = append(text, t.Text[t.Cursor:]...)
	return InputState{Text: text, Cursor: t.Cursor + 1}
}

// DeleteBackward returns the state with the rune before the cursor removed
func (t InputState) DeleteBackward() InputState {
	if t.Cursor == 0 {
		return t
	}
	text := make([]rune, 0, len(t.Text)-1)
	text = append(text, t.Text[:t.Cursor-1]...)
	text = append(text, t.Text[t.Cursor:]...)
	return InputState{Text: text, Cursor: t.Cursor - 1}
}

// MoveLeft returns the state with the cursor one rune left
func (t InputState) MoveLeft() InputState {
	if t.Cursor > 0 {
		t.Cursor--
	}
	return t
}

// MoveRight returns the state with the cursor one rune right
func (t InputState) MoveRight() InputState {
	if t.Cursor < len(t.Text) {
		t.Cursor++
	}
	return t
}
