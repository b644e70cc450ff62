package textinput

// Update processes one tick of input. The host collects the frame's edge
// events and calls this once per frame; held keys are re-synthesized here
// from the repeat timers, so callers only deliver transitions. Returns
// true when the widget changed in a way that needs a redraw.
func (t *TextInput) Update(events []Event) bool {
	if t.readonly || !t.focused {
		return false
	}

	now := t.now()
	var dt int
	if !t.lastTick.IsZero() {
		dt = int(now.Sub(t.lastTick).Milliseconds())
	}
	t.lastTick = now
	t.focusedMs += dt

	t.blinkMs += dt
	if t.blinkMs >= t.blinkInterval {
		t.blinkMs %= t.blinkInterval
		t.cursorVisible = !t.cursorVisible
	}

	// Held keys fire again once the initial delay has passed, then every
	// repeat interval. The counter is rewound so each further interval
	// crosses the threshold again.
	for _, st := range t.keyRepeat {
		st.elapsedMs += dt
		if st.elapsedMs >= t.repeatInitialMs {
			st.elapsedMs = t.repeatInitialMs - t.repeatIntervalMs
			events = append(events, st.ev)
		}
	}

	updated := false

events:
	for _, e := range events {
		if !e.valid() {
			continue
		}
		switch e.Kind {
		case KeyDownEvent:
			t.cursorVisible = true
			t.keyIsPressed = true
			t.lastKey = e.Key

			if e.Mods.Ctrl {
				switch e.Key {
				case KeyC:
					if !t.copyPaste {
						t.sounds.PlayError()
						continue
					}
					t.active = true
					if !t.copyText() {
						t.sounds.PlayError()
					}
				case KeyV:
					if !t.copyPaste {
						t.sounds.PlayError()
						continue
					}
					t.active = true
					updated = t.pasteText() || updated
				case KeyZ:
					if t.maxHistory == 0 {
						t.sounds.PlayError()
						continue
					}
					t.active = true
					t.sounds.PlayDelete()
					updated = t.undo() || updated
				case KeyY:
					if t.maxHistory == 0 {
						t.sounds.PlayError()
						continue
					}
					t.active = true
					t.sounds.PlayInsert()
					updated = t.redo() || updated
				case KeyX:
					if !t.copyPaste {
						t.sounds.PlayError()
						continue
					}
					t.active = true
					t.sounds.PlayDelete()
					updated = t.cutText() || updated
				case KeyA:
					if !t.selectionEnabled {
						t.sounds.PlayError()
						continue
					}
					t.active = true
					t.selectAll()
					updated = true
				}
				continue
			}

			// Synthesized repeats come back through here; re-registering
			// them would rewind the counter to the initial delay.
			if _, held := t.keyRepeat[e.Key]; !held && !ignoredRepeatKeys[e.Key] {
				t.keyRepeat[e.Key] = &repeatState{ev: e}
			}

			switch e.Key {
			case KeyBackspace:
				if t.cursor == 0 {
					t.sounds.PlayError()
				} else {
					t.sounds.PlayDelete()
				}
				if t.selectionBox[0] != t.selectionBox[1] {
					t.removeSelection()
					updated = true
					continue
				}
				t.backspace(true)
				t.change()
				t.active = true
				updated = true

			case KeyDelete:
				if t.cursor == len(t.text) {
					t.sounds.PlayError()
				} else {
					t.sounds.PlayDelete()
				}
				if t.selectionBox[0] != t.selectionBox[1] {
					t.removeSelection()
					updated = true
					continue
				}
				t.deleteForward(true)
				t.change()
				t.active = true
				updated = true

			case KeyRight:
				if t.cursor == len(t.text) {
					t.sounds.PlayError()
				} else {
					t.sounds.PlayInsert()
				}
				if t.selectionActive {
					if t.cursor == t.selectionBox[1] {
						if t.selectionBox[0] == t.selectionBox[1] {
							t.selectionBox[1] = t.selectionBox[0] + 1
						} else {
							t.selectionBox[1] = min(len(t.text), t.selectionBox[1]+1)
						}
					} else {
						t.selectionBox[0] = min(t.selectionBox[1], t.selectionBox[0]+1)
					}
				} else if t.unselectText() {
					continue
				}
				t.moveCursorRight()
				t.active = true
				updated = true

			case KeyLeft:
				if t.cursor == 0 {
					t.sounds.PlayError()
				} else {
					t.sounds.PlayInsert()
				}
				if t.selectionActive {
					if t.cursor == t.selectionBox[0] {
						t.selectionBox[0] = max(0, t.selectionBox[0]-1)
					} else {
						if t.selectionBox[1]-t.selectionBox[0] == 1 {
							t.selectionBox[1] = t.selectionBox[0]
						} else {
							t.selectionBox[1] = max(t.selectionBox[0], t.selectionBox[1]-1)
						}
					}
				} else if t.unselectText() {
					continue
				}
				t.moveCursorLeft()
				t.active = true
				updated = true

			case KeyArrowUp, KeyArrowDown:
				t.active = false

			case KeyEnd:
				t.sounds.PlayInsert()
				t.cursor = len(t.text)
				t.updateRenderbox(0, 0, false, true, false, true)
				t.unselectText()
				t.active = true
				updated = true

			case KeyHome:
				t.sounds.PlayInsert()
				t.cursor = 0
				t.updateRenderbox(0, 0, false, false, true, true)
				t.unselectText()
				t.active = true
				updated = true

			case KeyTab:
				for i := 0; i < t.tabSize; i++ {
					t.pushKeyInput(' ', true)
					updated = true
				}
				t.active = true

			case KeyEnter:
				t.sounds.PlayConfirm()
				t.apply()
				t.unselectText()
				updated = true
				t.active = !t.active

			case KeyEscape:
				if t.selectionBox[0] != t.selectionBox[1] {
					t.unselectText()
					updated = true
				} else if t.active {
					t.active = false
					updated = true
				}

			case KeyShift:
				if !t.selectionActive && t.selectionEnabled {
					t.selectionActive = true
					t.selectionBox[0] = t.cursor
					t.selectionBox[1] = t.cursor
				}
				t.active = true

			case KeyControl, KeyCapsLock, KeyNumLock:
				// Modifier state only, nothing to edit

			default:
				if e.Rune == 0 || !t.pushKeyInput(e.Rune, true) {
					break events
				}
				t.lastChar = e.Rune
				t.active = true
				updated = true
			}

		case KeyUpEvent:
			if _, held := t.keyRepeat[e.Key]; held {
				delete(t.keyRepeat, e.Key)
			} else if e.Key == KeyShift {
				t.selectionActive = false
			}
			t.blockPaste = false
			t.keyIsPressed = false

		case PointerDownEvent:
			interval := t.mouseIntervalMs
			if e.Touch {
				interval = t.touchIntervalMs
			}
			if t.focusedMs <= interval {
				continue
			}
			if t.selectionActive {
				t.unselectText()
			}
			t.blinkMs = 0
			t.cursorVisible = true
			t.selectionActive = t.selectionEnabled
			t.selectionFirst = -1
			t.mousePressed = true
			t.active = true

		case PointerUpEvent:
			interval := t.mouseIntervalMs
			if e.Touch {
				interval = t.touchIntervalMs
			}
			t.mousePressed = false
			if t.hitTest(e.X, e.Y) && t.focusedMs > interval+interval/2 {
				t.selectionActive = false
				t.updateCursorFromPointer(e.X)
				t.blinkMs = 0
				updated = true
			}
		}
	}

	// Held-button poll: after the dwell interval the cursor follows the
	// live pointer every tick, which is what makes drag selection work.
	t.mouseRepeatMs += dt
	if t.mouseRepeatMs > t.mouseIntervalMs && t.pointer != nil {
		if x, y, pressed := t.pointer(); pressed && t.hitTest(x, y) {
			t.updateCursorFromPointer(x)
			updated = true
		}
	}

	if updated {
		t.forceInvalidate()
		if t.applyCallbacks {
			for _, fn := range t.updateCallbacks {
				fn(t.Value())
			}
		}
	}
	return updated
}

func (t *TextInput) hitTest(x, y int) bool {
	if t.bounds.Empty() {
		return true
	}
	return x >= t.bounds.Min.X && x < t.bounds.Max.X &&
		y >= t.bounds.Min.Y && y < t.bounds.Max.Y
}

// updateCursorFromPointer places the cursor at the character boundary
// nearest to the pointer's x position, walking the rendered run and
// accumulating glyph widths past the title. A click on an ellipsis marker
// nudges the viewport one character toward the hidden side instead. While
// a pointer selection is in flight the anchor and the new position bound
// the selection box.
func (t *TextInput) updateCursorFromPointer(x int) {
	relX := x - t.bounds.Min.X
	rendered := []rune(t.inputString(true))
	if len(rendered) == 0 {
		return
	}
	pos := 0
	for i := range rendered {
		if t.measure(t.title+string(rendered[:i])) < relX {
			pos++
		} else {
			break
		}
	}

	if t.maxwidth != 0 && len(t.text) > t.maxwidth {
		if t.ellipsisLeft() {
			pos -= len([]rune(t.ellipsis))
		}
		// Click landed on an ellipsis marker
		if pos < 0 || pos > t.maxwidth {
			if pos < 0 {
				t.renderbox[2] = 0
				t.moveCursorLeft()
			} else {
				t.renderbox[2] = t.maxwidth
				t.moveCursorRight()
			}
			return
		}
		pos = max(0, min(t.maxwidth, pos))
		t.cursor = t.renderbox[0] + pos
		t.renderbox[2] = pos
		t.updateMaxLimitRenderbox()
	} else {
		t.cursor = min(pos, len(t.text))
		if t.maxwidth != 0 {
			t.cursor += t.renderbox[0]
			t.renderbox[2] = pos
			t.updateMaxLimitRenderbox()
		}
	}

	if t.selectionFirst == -1 {
		if t.selectionActive {
			t.unselectText()
			t.selectionFirst = t.cursor
		}
	} else {
		t.selectionBox[0] = min(t.selectionFirst, t.cursor)
		t.selectionBox[1] = max(t.selectionFirst, t.cursor)
	}
	t.cursorVisible = true
}
