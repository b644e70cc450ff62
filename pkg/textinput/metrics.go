package textinput

import (
	"errors"
	"fmt"
	"strings"
)

// ErrZeroWidthMask is returned by AttachFont when the font cannot render
// the password mask character.
var ErrZeroWidthMask = errors.New("password mask character has zero width in the attached font")

// AttachFont wires the measuring font and recomputes the cached pixel
// metrics. It must be called before Update or any pixel accessor; changing
// fonts at runtime resets the glyph width cache.
func (t *TextInput) AttachFont(f Font) error {
	if f == nil {
		return errors.New("font must not be nil")
	}
	if t.password {
		if f.Measure(string(t.passwordChar)) <= 0 {
			return fmt.Errorf("%w: %q", ErrZeroWidthMask, t.passwordChar)
		}
	}
	t.font = f
	t.charW = map[rune]int{}
	t.ellipsisPx = f.Measure(t.ellipsis)
	t.titlePx = f.Measure(t.title)
	if t.underline != "" {
		// Average over three copies to smooth kerning effects
		t.underlinePx = float64(f.Measure(strings.Repeat(t.underline, 3))) / 3
	}
	t.updateMaxLimit()
	return nil
}

// measure returns the pixel width of s under the attached font, zero when
// no font is attached yet.
func (t *TextInput) measure(s string) int {
	if t.font == nil {
		return 0
	}
	return t.font.Measure(s)
}

// charWidth returns the cached advance of a single rendered character,
// the password mask when masking is on.
func (t *TextInput) charWidth(r rune) int {
	if t.password {
		r = t.passwordChar
	}
	if w, ok := t.charW[r]; ok {
		return w
	}
	w := t.measure(string(r))
	t.charW[r] = w
	return w
}

// textPx returns the pixel width of the whole filtered text.
func (t *TextInput) textPx() int {
	px := 0
	for _, r := range t.text {
		px += t.charWidth(r)
	}
	return px
}
