package textinput

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"
)

// InputType restricts what the field accepts and how Value coerces it.
type InputType int

const (
	InputText InputType = iota
	InputInteger
	InputFloat
)

var (
	// ErrPasswordValue is returned by SetValue on password fields: their
	// value can only be typed, never injected.
	ErrPasswordValue = errors.New("value cannot be set in password mode")
	// ErrInvalidType is returned by SetValue when the text fails the
	// active input-type check.
	ErrInvalidType = errors.New("value type does not match input type")
)

type snapshot struct {
	text      []rune
	cursor    int
	renderbox [3]int
}

type repeatState struct {
	elapsedMs int
	ev        Event
}

// TextInput is a single-line editable text field: cursor and selection
// management, bounded undo/redo, a horizontal viewport with ellipsis
// truncation for overflowing text, and per-tick dispatch of keyboard,
// mouse and touch events. All state is owned by the host's frame loop;
// nothing here is safe for concurrent use.
type TextInput struct {
	title string

	text   []rune
	cursor int

	// renderbox is the visible window when maxwidth > 0:
	// [0]=left bound, [1]=right bound (indices into text),
	// [2]=cursor offset inside the window.
	renderbox      [3]int
	maxwidth       int
	maxwidthBase   int
	maxwidthPx     int
	maxwidthUpdate bool
	ellipsis       string
	ellipsisPx     int
	titlePx        int

	history      []snapshot
	historyIndex int
	maxHistory   int

	selectionBox     [2]int
	selectionActive  bool
	selectionEnabled bool
	selectionFirst   int // -1 until a press anchors it
	selectionColor   color.RGBA
	cursorColor      color.RGBA

	charW    map[rune]int
	lastChar rune
	lastKey  Key

	keyRepeat        map[Key]*repeatState
	repeatInitialMs  int
	repeatIntervalMs int
	mouseRepeatMs    int
	mouseIntervalMs  int
	touchIntervalMs  int

	blinkMs       int
	blinkInterval int
	cursorVisible bool
	cursorOffset  int

	inputType    InputType
	password     bool
	passwordChar rune
	maxchar      int
	tabSize      int
	validChars   map[rune]bool
	copyPaste    bool
	blockPaste   bool

	underline        string
	underlineLen     int
	underlineVMargin int
	underlinePx      float64
	currentUnderline string

	font      Font
	clipboard Clipboard
	sounds    Sounds
	pointer   PointerStateFunc

	onChange        func(value any)
	onReturn        func(value any)
	onSelect        func(focused bool)
	updateCallbacks []func(value any)
	applyCallbacks  bool
	invalidate      func()

	bounds       image.Rectangle
	active       bool
	focused      bool
	readonly     bool
	focusedMs    int
	keyIsPressed bool
	mousePressed bool

	now      func() time.Time
	lastTick time.Time
}

// Option configures a TextInput at construction.
type Option func(*TextInput)

// WithCopyPaste enables or disables copy, cut and paste.
func WithCopyPaste(enabled bool) Option {
	return func(t *TextInput) { t.copyPaste = enabled }
}

// WithSelection enables or disables text selection.
func WithSelection(enabled bool) Option {
	return func(t *TextInput) { t.selectionEnabled = enabled }
}

// WithBlinkInterval sets the cursor on/off switch period in milliseconds.
func WithBlinkInterval(ms int) Option {
	return func(t *TextInput) { t.blinkInterval = ms }
}

// WithHistoryDepth bounds the undo/redo log. Zero disables history.
func WithHistoryDepth(depth int) Option {
	return func(t *TextInput) { t.maxHistory = depth }
}

// WithInputType restricts accepted input to the given type.
func WithInputType(it InputType) Option {
	return func(t *TextInput) { t.inputType = it }
}

// WithPassword masks the rendered text with mask and disables copy/cut.
func WithPassword(mask rune) Option {
	return func(t *TextInput) {
		t.password = true
		t.passwordChar = mask
	}
}

// WithMaxChars bounds the logical text length. Zero means unlimited.
func WithMaxChars(n int) Option {
	return func(t *TextInput) { t.maxchar = n }
}

// WithMaxWidth bounds the rendered character count; dynamic lets the soft
// limit grow and shrink with the measured glyph widths. Zero disables the
// viewport entirely.
func WithMaxWidth(chars int, dynamic bool) Option {
	return func(t *TextInput) {
		t.maxwidth = chars
		t.maxwidthBase = chars
		t.maxwidthUpdate = dynamic
	}
}

// WithKeyRepeat sets the held-key initial delay and repeat interval.
func WithKeyRepeat(initialMs, intervalMs int) Option {
	return func(t *TextInput) {
		t.repeatInitialMs = initialMs
		t.repeatIntervalMs = intervalMs
	}
}

// WithMouseRepeat sets the held-mouse repeat interval.
func WithMouseRepeat(intervalMs int) Option {
	return func(t *TextInput) { t.mouseIntervalMs = intervalMs }
}

// WithTouchRepeat sets the touch repeat interval.
func WithTouchRepeat(intervalMs int) Option {
	return func(t *TextInput) { t.touchIntervalMs = intervalMs }
}

// WithTabSize sets how many spaces a Tab press inserts.
func WithTabSize(n int) Option {
	return func(t *TextInput) { t.tabSize = n }
}

// WithEllipsis sets the truncation marker text.
func WithEllipsis(s string) Option {
	return func(t *TextInput) { t.ellipsis = s }
}

// WithValidChars restricts input to the given characters. An empty string
// is a configuration error.
func WithValidChars(chars string) Option {
	return func(t *TextInput) {
		t.validChars = make(map[rune]bool, len(chars))
		for _, r := range chars {
			t.validChars[r] = true
		}
	}
}

// WithUnderline draws text atop a repeated underline run. length fixes the
// number of underline characters; zero fits the container width. vmargin
// is extra vertical spacing in pixels.
func WithUnderline(text string, length, vmargin int) Option {
	return func(t *TextInput) {
		t.underline = text
		t.underlineLen = length
		t.underlineVMargin = vmargin
	}
}

// WithSelectionColor sets the selection rectangle color. Alpha must not be
// opaque so the glyphs below stay readable.
func WithSelectionColor(c color.RGBA) Option {
	return func(t *TextInput) { t.selectionColor = c }
}

// WithCursorColor sets the caret color.
func WithCursorColor(c color.RGBA) Option {
	return func(t *TextInput) { t.cursorColor = c }
}

// WithOnChange registers the callback fired with the current value after
// every committed edit.
func WithOnChange(fn func(value any)) Option {
	return func(t *TextInput) { t.onChange = fn }
}

// WithOnReturn registers the callback fired with the current value when
// Enter commits the field.
func WithOnReturn(fn func(value any)) Option {
	return func(t *TextInput) { t.onReturn = fn }
}

// WithOnSelect registers the focus transition callback.
func WithOnSelect(fn func(focused bool)) Option {
	return func(t *TextInput) { t.onSelect = fn }
}

// New builds a text input widget. Configuration errors are fatal and
// reported here; nothing after construction raises for bad options.
func New(title string, opts ...Option) (*TextInput, error) {
	t := &TextInput{
		title:            title,
		copyPaste:        true,
		selectionEnabled: true,
		selectionFirst:   -1,
		selectionColor:   color.RGBA{R: 30, G: 30, B: 30, A: 100},
		cursorColor:      color.RGBA{A: 255},
		blinkInterval:    500,
		maxHistory:       50,
		passwordChar:     '*',
		repeatInitialMs:  400,
		repeatIntervalMs: 100,
		mouseIntervalMs:  400,
		touchIntervalMs:  400,
		tabSize:          4,
		ellipsis:         "...",
		cursorOffset:     -1,
		charW:            map[rune]int{},
		keyRepeat:        map[Key]*repeatState{},
		clipboard:        NopClipboard{},
		sounds:           NopSounds{},
		applyCallbacks:   true,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.validateConfig(); err != nil {
		return nil, err
	}
	t.updateText(nil, true) // seed history with the empty value
	return t, nil
}

func (t *TextInput) validateConfig() error {
	switch {
	case t.maxHistory < 0:
		return fmt.Errorf("history depth must be equal or greater than zero, got %d", t.maxHistory)
	case t.maxchar < 0:
		return fmt.Errorf("maxchar must be equal or greater than zero, got %d", t.maxchar)
	case t.maxwidthBase < 0:
		return fmt.Errorf("maxwidth must be equal or greater than zero, got %d", t.maxwidthBase)
	case t.tabSize < 0:
		return fmt.Errorf("tab size must be equal or greater than zero, got %d", t.tabSize)
	case t.underlineLen < 0:
		return fmt.Errorf("underline length must be equal or greater than zero, got %d", t.underlineLen)
	case t.blinkInterval <= 0:
		return fmt.Errorf("cursor blink interval must be greater than zero, got %d", t.blinkInterval)
	case t.repeatInitialMs <= 0 || t.repeatIntervalMs <= 0:
		return fmt.Errorf("key repeat delay and interval must be greater than zero")
	case t.passwordChar == 0:
		return errors.New("password mask must be a character")
	case t.validChars != nil && len(t.validChars) == 0:
		return errors.New("valid chars list must contain at least 1 element")
	case t.selectionColor.A == 255:
		return errors.New("selection color alpha cannot be opaque")
	}
	return nil
}

// SetClipboard wires the system clipboard. Passing nil restores the no-op
// default.
func (t *TextInput) SetClipboard(c Clipboard) {
	if c == nil {
		c = NopClipboard{}
	}
	t.clipboard = c
}

// SetSounds wires the feedback service. Passing nil restores silence.
func (t *TextInput) SetSounds(s Sounds) {
	if s == nil {
		s = NopSounds{}
	}
	t.sounds = s
}

// SetPointerState wires the live pointer poll used for drag selection.
func (t *TextInput) SetPointerState(fn PointerStateFunc) { t.pointer = fn }

// SetBounds tells the widget its on-screen rectangle for hit testing.
func (t *TextInput) SetBounds(r image.Rectangle) { t.bounds = r }

// Bounds returns the widget's on-screen rectangle.
func (t *TextInput) Bounds() image.Rectangle { return t.bounds }

// OnInvalidate registers the host's redraw-invalidation callback.
func (t *TextInput) OnInvalidate(fn func()) { t.invalidate = fn }

// AddUpdateCallback registers a callback fired with the current value at
// the end of any tick that changed the widget.
func (t *TextInput) AddUpdateCallback(fn func(value any)) {
	t.updateCallbacks = append(t.updateCallbacks, fn)
}

// SetApplyUpdateCallbacks toggles end-of-tick update callbacks.
func (t *TextInput) SetApplyUpdateCallbacks(enabled bool) { t.applyCallbacks = enabled }

// SetReadonly freezes the widget; Update becomes a no-op.
func (t *TextInput) SetReadonly(ro bool) { t.readonly = ro }

// Readonly reports whether the widget ignores input.
func (t *TextInput) Readonly() bool { return t.readonly }

// SetFocused moves keyboard focus in or out of the widget.
func (t *TextInput) SetFocused(focused bool) {
	if t.focused == focused {
		return
	}
	t.focused = focused
	if focused {
		t.focusedMs = 0
		t.blinkMs = 0
		t.cursorVisible = true
		t.forceInvalidate()
	} else {
		t.mousePressed = false
		t.mouseRepeatMs = 0
		t.cursorVisible = false
		t.unselectText()
	}
	if t.onSelect != nil {
		t.onSelect(focused)
	}
}

// Focused reports whether the widget holds keyboard focus.
func (t *TextInput) Focused() bool { return t.focused }

// Active reports whether the widget is in editing mode. Enter toggles it,
// Escape and vertical navigation clear it.
func (t *TextInput) Active() bool { return t.active }

// Title returns the fixed prefix rendered before the editable text.
func (t *TextInput) Title() string { return t.title }

// Text returns the raw logical text without filters or truncation.
func (t *TextInput) Text() string { return string(t.text) }

// Cursor returns the caret position as a rune index into Text.
func (t *TextInput) Cursor() int { return t.cursor }

// Value returns the field value coerced to the configured input type.
// Numeric fields yield zero when the text does not parse, covering
// in-progress states such as a lone "-".
func (t *TextInput) Value() any {
	switch t.inputType {
	case InputFloat:
		f, err := strconv.ParseFloat(string(t.text), 64)
		if err != nil {
			return 0.0
		}
		return f
	case InputInteger:
		f, err := strconv.ParseFloat(string(t.text), 64)
		if err != nil {
			return 0
		}
		return int(f)
	default:
		return string(t.text)
	}
}

// SetValue replaces the whole text. The new value is type-checked,
// filtered by the allow-list and truncated to the trailing maxchar
// characters. Password fields reject any non-empty value.
func (t *TextInput) SetValue(text string) error {
	if t.password && text != "" {
		return ErrPasswordValue
	}
	if !t.checkInputType(text) {
		return fmt.Errorf("%w: %q", ErrInvalidType, text)
	}
	runes := []rune(text)
	if t.validChars != nil {
		kept := runes[:0]
		for _, r := range runes {
			if t.validChars[r] {
				kept = append(kept, r)
			}
		}
		runes = kept
	}
	if t.maxchar > 0 && len(runes) > t.maxchar {
		runes = runes[len(runes)-t.maxchar:]
	}

	t.text = append([]rune(nil), runes...)
	for i := 0; i <= len(runes); i++ {
		t.moveCursorRight()
		t.updateRenderbox(0, 1, true, false, false, true)
	}
	t.updateText(runes, true)
	return nil
}

// Clear empties the field and commits the empty state to history.
func (t *TextInput) Clear() {
	t.text = t.text[:0]
	t.cursor = 0
	t.renderbox = [3]int{}
	t.deleteForward(true)
	t.change()
}

func (t *TextInput) change() {
	if t.onChange != nil {
		t.onChange(t.Value())
	}
}

func (t *TextInput) apply() {
	if t.onReturn != nil {
		t.onReturn(t.Value())
	}
}

func (t *TextInput) forceInvalidate() {
	if t.invalidate != nil {
		t.invalidate()
	}
}

// checkInputType reports whether s satisfies the configured input type.
// The empty string and a lone "-" (an in-progress negative number) are
// always acceptable.
func (t *TextInput) checkInputType(s string) bool {
	if s == "" || t.inputType == InputText || s == "-" {
		return true
	}
	switch t.inputType {
	case InputFloat:
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	case InputInteger:
		_, err := strconv.Atoi(s)
		return err == nil
	}
	return false
}

// CursorColor returns the configured caret color.
func (t *TextInput) CursorColor() color.RGBA { return t.cursorColor }

// SelectionColor returns the configured selection rectangle color.
func (t *TextInput) SelectionColor() color.RGBA { return t.selectionColor }

// CursorVisible reports whether the caret should be drawn this frame:
// focus plus either the blink phase or an ongoing press.
func (t *TextInput) CursorVisible() bool {
	if !t.focused || t.readonly {
		return false
	}
	return t.cursorVisible || t.mousePressed || t.keyIsPressed
}

// UnderlineVMargin returns the configured extra underline spacing.
func (t *TextInput) UnderlineVMargin() int { return t.underlineVMargin }

// UnderlineString computes the underline run for the given container
// width. With a zero configured length the count is fitted to the
// container; a non-positive container width cannot host a variable-width
// underline and is a layout invariant violation.
func (t *TextInput) UnderlineString(containerWidth int) (string, error) {
	if t.underline == "" || t.underlinePx == 0 {
		return "", nil
	}
	current := t.measure(t.title + t.inputString(true))

	var chars int
	if t.underlineLen != 0 {
		chars = t.underlineLen
	} else {
		if containerWidth <= 0 {
			return "", errors.New("container width is required for a variable width underline; set a fixed underline length")
		}
		posx2 := float64(containerWidth) - t.underlinePx*1.75
		if posx2 < float64(current) {
			posx2 = float64(current)
		}
		delta := posx2 - float64(t.titlePx)
		chars = int(math.Ceil(delta / t.underlinePx))
		for i := 0; i < 10; i++ {
			fw := t.measure(strings.Repeat(t.underline, chars))
			chars++
			if float64(fw) >= delta {
				break
			}
		}
	}

	if t.maxchar != 0 || t.maxwidthBase != 0 {
		maxChars := t.maxchar
		if t.maxwidthBase > maxChars {
			maxChars = t.maxwidthBase
		}
		base := 'O'
		if t.password {
			base = t.passwordChar
		}
		maxPx := t.measure(strings.Repeat(string(base), maxChars))
		capChars := int(math.Ceil(float64(maxPx+t.ellipsisPx) / t.underlinePx))
		if capChars < chars {
			chars = capChars
		}
	}
	if chars < 0 {
		chars = 0
	}
	t.currentUnderline = strings.Repeat(t.underline, chars)
	return t.currentUnderline, nil
}
