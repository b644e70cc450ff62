package textinput

import "errors"

// ErrClipboard is the sentinel wrapped by clipboard backends when the
// system clipboard is unavailable. The widget swallows it: a failed paste
// is a silent no-op and a failed copy plays the error feedback only.
var ErrClipboard = errors.New("clipboard unavailable")

// Font measures text with the active face. The widget only needs advance
// widths; rendering stays with the host.
type Font interface {
	// Measure returns the pixel advance width of s.
	Measure(s string) int
}

// Clipboard abstracts system clipboard access.
type Clipboard interface {
	Copy(s string) error
	Paste() (string, error)
}

// Sounds is the feedback service fired on edits and rejections.
type Sounds interface {
	PlayInsert()
	PlayDelete()
	PlayError()
	PlayConfirm()
}

// PointerStateFunc reports the live pointer position and pressed state
// once per tick, driving drag selection and mouse-held repeat.
type PointerStateFunc func() (x, y int, pressed bool)

// NopClipboard is the default clipboard: copy discards, paste yields
// nothing. Used when no system backend is wired.
type NopClipboard struct{}

func (NopClipboard) Copy(string) error      { return nil }
func (NopClipboard) Paste() (string, error) { return "", nil }

// NopSounds is the default silent feedback service.
type NopSounds struct{}

func (NopSounds) PlayInsert()  {}
func (NopSounds) PlayDelete()  {}
func (NopSounds) PlayError()   {}
func (NopSounds) PlayConfirm() {}
