package textinput

import "strings"

// updateMaxLimit recomputes the pixel budget of the viewport as the width
// of maxwidthBase reference glyphs ('O', or the mask in password mode).
func (t *TextInput) updateMaxLimit() {
	if t.maxwidthBase == 0 {
		return
	}
	base := 'O'
	if t.password {
		base = t.passwordChar
	}
	t.maxwidthPx = t.measure(strings.Repeat(string(base), t.maxwidthBase))
}

// ellipsisLeft reports whether text overflows past the window's left edge.
func (t *TextInput) ellipsisLeft() bool {
	return t.renderbox[0] != 0 && t.maxwidth != 0
}

// ellipsisRight reports whether text overflows past the window's right edge.
func (t *TextInput) ellipsisRight() bool {
	return t.renderbox[1] != len(t.text) && t.maxwidth != 0
}

// maskedString returns the logical text with the password filter applied.
func (t *TextInput) maskedString() string {
	if t.password {
		return strings.Repeat(string(t.passwordChar), len(t.text))
	}
	return string(t.text)
}

// inputString returns the rendered text: the visible window of the masked
// string, with ellipsis markers on overflowing sides when requested.
func (t *TextInput) inputString(addEllipsis bool) string {
	s := t.maskedString()
	if t.maxwidth == 0 || len(t.text) <= t.maxwidth {
		return s
	}
	runes := []rune(s)
	lo, hi := t.renderbox[0], t.renderbox[1]
	if lo < 0 {
		lo = 0
	}
	if hi > len(runes) {
		hi = len(runes)
	}
	if lo > hi {
		lo = hi
	}
	out := string(runes[lo:hi])
	if addEllipsis {
		if t.ellipsisRight() {
			out += t.ellipsis
		}
		if t.ellipsisLeft() {
			out = t.ellipsis + out
		}
	}
	return out
}

// VisibleText returns the string the host should draw after the title:
// the whole masked text, or the viewport window bracketed by ellipsis.
func (t *TextInput) VisibleText() string {
	return t.inputString(true)
}

// Renderbox exposes the viewport window as (left, right, cursor offset).
// All three are zero while no width limit is set.
func (t *TextInput) Renderbox() (left, right, offset int) {
	return t.renderbox[0], t.renderbox[1], t.renderbox[2]
}

// updateRenderbox shifts the visible window after an edit or cursor move.
// left and right carry the signed displacement on each side, addition
// distinguishes text mutation from plain cursor travel, and end/start jump
// the window to the corresponding extreme. updateMaxwidth re-runs the soft
// width fitting afterwards.
func (t *TextInput) updateRenderbox(left, right int, addition, end, start, updateMaxwidth bool) {
	t.cursorVisible = true
	if t.maxwidth == 0 {
		return
	}
	ls := len(t.text)

	if end {
		t.renderbox[0] = max(0, ls-t.maxwidth)
		t.renderbox[1] = ls
		t.renderbox[2] = min(ls, t.maxwidth)
		return
	}
	if start {
		t.renderbox[0] = 0
		t.renderbox[1] = min(ls, t.maxwidth)
		t.renderbox[2] = 0
		return
	}

	if left < 0 && ls == 0 {
		return
	}

	if ls <= t.maxwidth {
		// No overflow
		if right < 0 && t.renderbox[2] == ls { // Del at the end of string
			return
		}
		if left < 0 && t.renderbox[2] == 0 { // Backspace at the beginning
			return
		}
		t.renderbox[0] = 0
		if addition {
			if left < 0 {
				t.renderbox[1] += left
			}
			t.renderbox[1] += right
			if right < 0 {
				// Del removes the char under the cursor; compensate so the
				// inner offset nets out unchanged.
				t.renderbox[2] -= right
			}
		}
		t.renderbox[2] += left
		t.renderbox[2] += right
	} else {
		if addition {
			if right < 0 && t.renderbox[2] == t.maxwidth { // Del at the end
				return
			}
			if left < 0 && t.renderbox[2] == 0 { // Backspace at the beginning
				return
			}
			// Del inside the overflowed tail keeps the cursor visually put
			if right < 0 {
				if t.ellipsisLeft() && t.renderbox[1]-1 == ls {
					t.renderbox[2] -= right
				}
			}
			// Typing at the window's right edge pushes the whole window
			if right > 0 {
				if t.renderbox[2] == t.maxwidth {
					t.renderbox[0] += right
					t.renderbox[1] += right
				}
				t.renderbox[2] += right
			}
			if left < 0 {
				if t.renderbox[0] == 0 {
					t.renderbox[2] += left
				}
				t.renderbox[0] += left
				t.renderbox[1] += left
			}
		} else {
			// Plain cursor travel; slide the window when the offset leaves it
			t.renderbox[2] += right
			t.renderbox[2] += left
			if t.renderbox[2] < 0 {
				t.renderbox[0] += left
				t.renderbox[1] += left
			} else if t.renderbox[2] > t.maxwidth {
				t.renderbox[0] += right
				t.renderbox[1] += right
			} else {
				updateMaxwidth = false
			}
			// While the window presses a hard boundary the soft limit stays
			// put, unless the offset sits one short of the window width.
			if t.renderbox[1] > ls || t.renderbox[0] < 0 {
				if t.renderbox[2] != t.maxwidth-1 {
					updateMaxwidth = false
				}
			}
		}

		t.renderbox[1] = max(t.maxwidth, min(t.renderbox[1], ls))
		t.renderbox[0] = t.renderbox[1] - t.maxwidth
	}

	t.renderbox[0] = max(0, t.renderbox[0])
	t.renderbox[1] = min(max(0, t.renderbox[1]), ls)
	t.renderbox[2] = max(0, min(t.renderbox[2], min(t.maxwidth, ls)))

	if updateMaxwidth {
		t.updateMaxLimitRenderbox()
	}
}

// updateMaxLimitRenderbox adjusts the soft character limit so the visible
// run, ellipsis included, fills the configured pixel budget. The search
// moves one character at a time, widening by revealing hidden text on the
// left and narrowing from whichever side the cursor is not on, and stops
// on the first sign reversal.
func (t *TextInput) updateMaxLimitRenderbox() {
	if !t.maxwidthUpdate {
		return
	}
	sign := 0
	for {
		visible := []rune(t.inputString(false))
		if len(visible) == 0 {
			t.maxwidth = t.maxwidthBase
			return
		}
		accum := 0
		if t.ellipsisLeft() {
			accum += t.ellipsisPx + 5
		}
		biggest := 0
		for _, r := range visible {
			w := t.charWidth(r)
			accum += w
			if w > biggest {
				biggest = w
			}
		}
		if t.ellipsisRight() {
			accum += t.ellipsisPx
		}

		switch {
		case accum < t.maxwidthPx-biggest: // Widen
			if sign < 0 {
				return
			}
			sign = 1
			if t.renderbox[0] == 0 {
				return
			}
			t.renderbox[0]--
			t.maxwidth++
			t.renderbox[2]++
		case accum > t.maxwidthPx: // Narrow
			if sign > 0 {
				return
			}
			sign = -1
			if t.renderbox[2] == 0 {
				t.renderbox[1]--
			} else {
				t.renderbox[0]++
				t.renderbox[2]--
			}
			t.maxwidth--
		default:
			return
		}
	}
}

// CursorPixelX returns the caret's x offset from the widget origin, title
// included, for the current viewport state.
func (t *TextInput) CursorPixelX() int {
	var upTo string
	if t.maxwidth == 0 {
		upTo = t.maskedPrefix(t.cursor)
	} else {
		lo := t.renderbox[0]
		upTo = string([]rune(t.maskedString())[lo : lo+t.renderbox[2]])
		if t.ellipsisLeft() {
			upTo = t.ellipsis + upTo
		}
	}
	return t.cursorOffset + t.measure(t.title+upTo)
}

func (t *TextInput) maskedPrefix(n int) string {
	if t.password {
		return strings.Repeat(string(t.passwordChar), n)
	}
	return string(t.text[:n])
}

// SelectionPixelSpan returns the x offset and width of the selection
// rectangle as rendered, clipped to the visible window. Width is zero when
// nothing is selected or the selection lies fully outside the window.
func (t *TextInput) SelectionPixelSpan() (x, width int) {
	lo, hi := t.selectionBox[0], t.selectionBox[1]
	if lo == hi {
		return 0, 0
	}
	winLo, winHi := 0, len(t.text)
	if t.maxwidth != 0 && len(t.text) > t.maxwidth {
		winLo, winHi = t.renderbox[0], t.renderbox[1]
	}
	lo = max(lo, winLo)
	hi = min(hi, winHi)
	if lo >= hi {
		return 0, 0
	}
	runes := []rune(t.maskedString())
	prefix := string(runes[winLo:lo])
	if t.ellipsisLeft() {
		prefix = t.ellipsis + prefix
	}
	x = t.measure(t.title + prefix)
	width = t.measure(string(runes[lo:hi]))
	return x, width
}
