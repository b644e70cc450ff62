package textinput

import "strings"

// checkInputSize reports whether the text already sits at the maxchar cap.
func (t *TextInput) checkInputSize() bool {
	if t.maxchar == 0 {
		return false
	}
	return t.maxchar <= len(t.text)
}

func (t *TextInput) moveCursorLeft() {
	t.cursor = max(t.cursor-1, 0)
	t.updateRenderbox(-1, 0, false, false, false, true)
}

func (t *TextInput) moveCursorRight() {
	t.cursor = min(t.cursor+1, len(t.text))
	t.updateRenderbox(0, 1, false, false, false, true)
}

// backspace removes the character left of the cursor.
func (t *TextInput) backspace(updateHistory bool) {
	from := max(t.cursor-1, 0)
	newText := make([]rune, 0, len(t.text))
	newText = append(newText, t.text[:from]...)
	newText = append(newText, t.text[t.cursor:]...)
	t.updateText(newText, updateHistory)
	t.updateRenderbox(-1, 0, true, false, false, true)
	t.cursor = max(t.cursor-1, 0)
}

// deleteForward removes the character under the cursor.
func (t *TextInput) deleteForward(updateHistory bool) {
	rest := min(t.cursor+1, len(t.text))
	newText := make([]rune, 0, len(t.text))
	newText = append(newText, t.text[:min(t.cursor, len(t.text))]...)
	newText = append(newText, t.text[rest:]...)
	t.updateText(newText, updateHistory)
	t.updateRenderbox(0, -1, true, false, false, true)
}

// pushKeyInput inserts one typed character at the cursor, replacing any
// selection. Returns false when the character is rejected: not in the
// allow-list, no capacity left, a carriage return, or the result fails the
// input-type check.
func (t *TextInput) pushKeyInput(r rune, sound bool) bool {
	if t.validChars != nil && !t.validChars[r] {
		t.sounds.PlayError()
		return false
	}
	if t.selectionBox[0] != t.selectionBox[1] {
		t.removeSelection()
	}
	if t.checkInputSize() {
		t.sounds.PlayError()
		return false
	}
	if r == '\r' {
		return false
	}

	newText := make([]rune, 0, len(t.text)+1)
	newText = append(newText, t.text[:t.cursor]...)
	newText = append(newText, r)
	newText = append(newText, t.text[t.cursor:]...)
	if !t.checkInputType(string(newText)) {
		t.sounds.PlayError()
		return false
	}

	t.charWidth(r) // warm the cache before the renderbox math
	if sound {
		t.sounds.PlayInsert()
	}
	t.cursor++
	t.updateText(newText, true)
	t.updateRenderbox(0, 1, true, false, false, true)
	t.change()
	return true
}

// copyText pushes the selection, or the whole text, to the clipboard.
// Password fields never export their content. The copy/paste latch stays
// down until the chord keys are released.
func (t *TextInput) copyText() bool {
	if t.blockPaste {
		return false
	}
	if t.password {
		return false
	}
	s := string(t.text)
	if t.selectionBox[0] != t.selectionBox[1] {
		s = t.SelectedText()
	}
	_ = t.clipboard.Copy(s) // clipboard failure is not an edit failure
	t.blockPaste = true
	return true
}

// cutText copies then removes the selection; with no selection the whole
// text is cleared.
func (t *TextInput) cutText() bool {
	t.copyText()
	if t.selectionBox[0] != t.selectionBox[1] {
		t.removeSelection()
	} else {
		t.cursor = 0
		t.renderbox = [3]int{}
		t.updateText(nil, true)
		t.updateRenderbox(0, 0, false, false, false, true)
	}
	t.change()
	return true
}

// pasteText inserts clipboard content at the cursor. The content is
// whitespace-trimmed, stripped of newlines and control characters, run
// through the allow-list, and truncated to the remaining maxchar capacity.
func (t *TextInput) pasteText() bool {
	if t.blockPaste {
		return false
	}
	if t.selectionBox[0] != t.selectionBox[1] {
		t.removeSelection()
	}

	raw, err := t.clipboard.Paste()
	if err != nil {
		return false
	}
	clean := make([]rune, 0, len(raw))
	for _, r := range strings.TrimSpace(raw) {
		if r == '\n' || r == '\r' || (r >= 1 && r <= 31) {
			continue
		}
		if t.validChars != nil && !t.validChars[r] {
			continue
		}
		clean = append(clean, r)
	}
	if len(clean) == 0 {
		return false
	}

	end := len(clean)
	if t.maxchar != 0 {
		if limit := t.maxchar - len(t.text); limit < end {
			end = limit
		}
		if end <= 0 {
			t.sounds.PlayError()
			return false
		}
	}

	newText := make([]rune, 0, len(t.text)+end)
	newText = append(newText, t.text[:t.cursor]...)
	newText = append(newText, clean[:end]...)
	newText = append(newText, t.text[t.cursor:]...)
	if !t.checkInputType(string(newText)) {
		t.sounds.PlayError()
		return false
	}

	for _, r := range newText {
		t.charWidth(r)
	}
	t.sounds.PlayInsert()
	t.text = newText
	for i := 0; i < end; i++ {
		t.moveCursorRight()
	}
	t.updateText(newText, true)
	t.updateMaxLimitRenderbox()
	t.blockPaste = true
	t.change()
	return true
}
