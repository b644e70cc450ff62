package textinput

// SelectedText returns the selected run of the raw text.
func (t *TextInput) SelectedText() string {
	return string(t.text[t.selectionBox[0]:t.selectionBox[1]])
}

// SelectionBox exposes the selection bounds as half-open rune indices.
func (t *TextInput) SelectionBox() (lo, hi int) {
	return t.selectionBox[0], t.selectionBox[1]
}

// unselectText clears the selection and its pointer anchor. Returns true
// if a non-empty selection was dropped.
func (t *TextInput) unselectText() bool {
	removed := t.selectionBox[0] != t.selectionBox[1]
	t.selectionBox[0] = 0
	t.selectionBox[1] = 0
	t.selectionActive = false
	t.selectionFirst = -1
	if removed {
		t.forceInvalidate()
	}
	return removed
}

// selectAll selects the whole text and parks the cursor at the end.
func (t *TextInput) selectAll() {
	if !t.selectionEnabled {
		return
	}
	t.selectionBox[0] = 0
	t.selectionBox[1] = len(t.text)
	t.cursor = t.selectionBox[1]
	for i := 0; i < len(t.text); i++ {
		t.moveCursorRight()
	}
	t.selectionActive = false
}

// removeSelection deletes the selected run character by character, moving
// inward from whichever end the cursor is not on. Only the final removal
// commits to history so undo restores the run in one step.
func (t *TextInput) removeSelection() {
	removed := t.selectionBox[1] - t.selectionBox[0]
	left := t.selectionBox[0] == t.cursor

	for i := 0; i < removed; i++ {
		last := i == removed-1
		if left {
			t.deleteForward(last)
		} else {
			t.backspace(last)
		}
	}
	t.unselectText()
}
