package ui

import "unicode"

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextField holds an editable single-line value with a cursor
type TextField struct {
	Text   []rune
	Cursor int // rune index the cursor sits before
}

// NewTextField creates a field holding initial with the cursor at the end
func NewTextField(initial string) *TextField {
	runes := []rune(initial)
	return &TextField{Text: runes, Cursor: len(runes)}
}

// Value returns current text as string
func (t *TextField) Value() string {
	return string(t.Text)
}

// SetValue replaces text and moves cursor to end
func (t *TextField) SetValue(s string) {
	t.Text = []rune(s)
	t.Cursor = len(t.Text)
}

// Clear empties the field
func (t *TextField) Clear() {
	t.Text = nil
	t.Cursor = 0
}

// Insert adds rune at cursor position
func (t *TextField) Insert(r rune) {
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
}

// DeleteBackward removes rune before cursor
func (t *TextField) DeleteBackward() bool {
	if t.Cursor > 0 {
		t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
		t.Cursor--
		return true
	}
	return false
}

// DeleteForward removes rune at cursor
func (t *TextField) DeleteForward() bool {
	if t.Cursor < len(t.Text) {
		t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
		return true
	}
	return false
}

// DeleteWordBackward removes the word before cursor
func (t *TextField) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	end := t.Cursor
	for end > 0 && !isWordChar(t.Text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(t.Text[start-1]) {
		start--
	}
	if start == t.Cursor {
		start = t.Cursor - 1
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// MoveLeft moves the cursor one rune left
func (t *TextField) MoveLeft() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

// MoveRight moves the cursor one rune right
func (t *TextField) MoveRight() {
	if t.Cursor < len(t.Text) {
		t.Cursor++
	}
}

// Home moves the cursor to the start
func (t *TextField) Home() { t.Cursor = 0 }

// End moves the cursor past the last rune
func (t *TextField) End() { t.Cursor = len(t.Text) }
