package textinput

// updateText commits a new text value. When the value differs from the
// history tip a snapshot is recorded; committing while rewound first
// re-commits the old tip so the rewound state is duplicated at the top and
// remains reachable by undo. The log is FIFO-bounded at maxHistory.
func (t *TextInput) updateText(newText []rune, updateHistory bool) {
	lh := len(t.history)
	if updateHistory && t.maxHistory > 0 &&
		(lh == 0 || string(t.history[lh-1].text) != string(newText)) {

		if t.historyIndex != lh {
			tip := t.history[t.historyIndex].text
			t.historyIndex = lh
			t.updateText(tip, true)
		}

		t.history = append(t.history, snapshot{
			text:      append([]rune(nil), newText...),
			cursor:    t.cursor,
			renderbox: t.renderbox,
		})
		if len(t.history) > t.maxHistory {
			t.history = t.history[1:]
		}
		t.historyIndex = len(t.history)
	}
	t.text = append([]rune(nil), newText...)
}

// undo steps back one history entry. Returns false at the oldest entry.
func (t *TextInput) undo() bool {
	if t.historyIndex == 0 || len(t.history) == 0 {
		return false
	}
	if t.historyIndex == len(t.history) {
		t.historyIndex--
	}
	t.historyIndex = max(0, t.historyIndex-1)
	t.updateFromHistory()
	return true
}

// redo steps forward one history entry. Returns false at the newest entry.
func (t *TextInput) redo() bool {
	if len(t.history) == 0 || t.historyIndex >= len(t.history)-1 {
		return false
	}
	t.historyIndex = min(len(t.history)-1, t.historyIndex+1)
	t.updateFromHistory()
	return true
}

// updateFromHistory restores text, cursor and viewport from the snapshot
// at historyIndex.
func (t *TextInput) updateFromHistory() {
	snap := t.history[t.historyIndex]
	t.text = append([]rune(nil), snap.text...)
	t.cursor = snap.cursor
	t.renderbox = snap.renderbox
}
