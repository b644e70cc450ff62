package textinput

// Key identifies a physical key in an input event. Printable characters
// carried by events without a dedicated constant use CharKey.
type Key int

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyTab
	KeyEnter
	KeyEscape
	KeyShift
	KeyControl
	KeyCapsLock
	KeyNumLock
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
)

// keyCharBase offsets synthetic per-rune key identities so they never
// collide with the named constants above.
const keyCharBase Key = 0x1000

// CharKey returns a synthetic Key identity for a printable rune, so hosts
// that only receive typed characters (and not physical key codes) can still
// drive per-key repeat timers.
func CharKey(r rune) Key { return keyCharBase + Key(r) }

// EventKind discriminates the input event variants consumed by Update.
type EventKind int

const (
	KeyDownEvent EventKind = iota
	KeyUpEvent
	PointerDownEvent
	PointerUpEvent
)

// Modifiers carries the modifier state captured with an event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
}

// Event is one keyboard or pointer input. Pointer events carry absolute
// screen coordinates; Touch marks finger events, which use their own
// repeat interval.
type Event struct {
	Kind  EventKind
	Key   Key
	Rune  rune
	Mods  Modifiers
	X, Y  int
	Touch bool
}

// KeyDown builds a key-press event.
func KeyDown(key Key, r rune, mods Modifiers) Event {
	return Event{Kind: KeyDownEvent, Key: key, Rune: r, Mods: mods}
}

// KeyUp builds a key-release event.
func KeyUp(key Key) Event {
	return Event{Kind: KeyUpEvent, Key: key}
}

// PointerDown builds a press event at absolute screen coordinates.
func PointerDown(x, y int, touch bool) Event {
	return Event{Kind: PointerDownEvent, X: x, Y: y, Touch: touch}
}

// PointerUp builds a release event at absolute screen coordinates.
func PointerUp(x, y int, touch bool) Event {
	return Event{Kind: PointerUpEvent, X: x, Y: y, Touch: touch}
}

// valid reports whether a key event is well-formed enough to dispatch.
// Malformed events are skipped by Update.
func (e Event) valid() bool {
	switch e.Kind {
	case KeyDownEvent, KeyUpEvent:
		return e.Key != KeyUnknown || e.Rune != 0
	default:
		return true
	}
}

// ignoredRepeatKeys are never registered for key-repeat synthesis:
// navigation duplicates, modifiers, enter, tab and escape.
var ignoredRepeatKeys = map[Key]bool{
	KeyArrowUp:   true,
	KeyArrowDown: true,
	KeyCapsLock:  true,
	KeyEnd:       true,
	KeyEscape:    true,
	KeyHome:      true,
	KeyControl:   true,
	KeyShift:     true,
	KeyNumLock:   true,
	KeyEnter:     true,
	KeyTab:       true,
}
