package textinput

import "testing"

func right(shift bool) Event {
	return KeyDown(KeyRight, 0, Modifiers{Shift: shift})
}

func TestRenderboxFollowsTyping(t *testing.T) {
	ti, c := newTestInput(t, "", WithMaxWidth(4, false))
	typeString(ti, c, "abcdef")

	l, r, off := ti.Renderbox()
	if l != 2 || r != 6 || off != 4 {
		t.Fatalf("unexpected renderbox: [%d %d %d]", l, r, off)
	}
	if got := ti.VisibleText(); got != "...cdef" {
		t.Fatalf("unexpected visible text: %q", got)
	}
}

func TestRenderboxHomeEnd(t *testing.T) {
	ti, c := newTestInput(t, "", WithMaxWidth(4, false))
	typeString(ti, c, "abcdef")

	tick(ti, c, 10, KeyDown(KeyHome, 0, Modifiers{}))
	if l, r, off := ti.Renderbox(); l != 0 || r != 4 || off != 0 {
		t.Fatalf("unexpected renderbox after home: [%d %d %d]", l, r, off)
	}
	if got := ti.VisibleText(); got != "abcd..." {
		t.Fatalf("unexpected visible text: %q", got)
	}

	tick(ti, c, 10, KeyDown(KeyEnd, 0, Modifiers{}))
	if l, r, off := ti.Renderbox(); l != 2 || r != 6 || off != 4 {
		t.Fatalf("unexpected renderbox after end: [%d %d %d]", l, r, off)
	}
	if got := ti.VisibleText(); got != "...cdef" {
		t.Fatalf("unexpected visible text: %q", got)
	}
}

func TestRenderboxSlidesOnCursorTravel(t *testing.T) {
	ti, c := newTestInput(t, "", WithMaxWidth(4, false))
	typeString(ti, c, "abcdef")
	tick(ti, c, 10, KeyDown(KeyHome, 0, Modifiers{}))

	for i := 0; i < 5; i++ {
		tick(ti, c, 10, right(false), KeyUp(KeyRight))
	}
	if l, r, off := ti.Renderbox(); l != 1 || r != 5 || off != 4 {
		t.Fatalf("unexpected renderbox: [%d %d %d]", l, r, off)
	}
	if got := ti.VisibleText(); got != "...bcde..." {
		t.Fatalf("unexpected visible text: %q", got)
	}
}

func TestRenderboxInvariants(t *testing.T) {
	ti, c := newTestInput(t, "", WithMaxWidth(4, false))
	typeString(ti, c, "abcdefgh")
	tick(ti, c, 10, KeyDown(KeyHome, 0, Modifiers{}))
	for i := 0; i < 12; i++ {
		tick(ti, c, 10, right(false), KeyUp(KeyRight))

		l, r, off := ti.Renderbox()
		n := len(ti.Text())
		if l < 0 || l > r || r > n {
			t.Fatalf("window out of bounds: [%d %d] len %d", l, r, n)
		}
		if off < 0 || off > r-l {
			t.Fatalf("cursor offset out of window: %d of [%d %d]", off, l, r)
		}
	}
}

// With the dynamic soft limit the visible run shrinks until text plus
// ellipsis fit the pixel budget of the configured base width.
func TestDynamicSoftLimit(t *testing.T) {
	ti, c := newTestInput(t, "", WithMaxWidth(8, true))
	typeString(ti, c, "abcdefghi")

	if l, r, off := ti.Renderbox(); l != 5 || r != 9 || off != 4 {
		t.Fatalf("unexpected renderbox: [%d %d %d]", l, r, off)
	}
	if got := ti.VisibleText(); got != "...fghi" {
		t.Fatalf("unexpected visible text: %q", got)
	}

	typeString(ti, c, "j")
	if l, r, off := ti.Renderbox(); l != 6 || r != 10 || off != 4 {
		t.Fatalf("unexpected renderbox: [%d %d %d]", l, r, off)
	}
	if got := ti.VisibleText(); got != "...ghij" {
		t.Fatalf("unexpected visible text: %q", got)
	}
}

func TestViewportAfterClear(t *testing.T) {
	ti, c := newTestInput(t, "", WithMaxWidth(8, true))
	typeString(ti, c, "abcdefghi")
	ti.Clear()
	typeString(ti, c, "xy")
	if got := ti.VisibleText(); got != "xy" {
		t.Fatalf("unexpected visible text: %q", got)
	}
}

func TestSelectionPixelSpan(t *testing.T) {
	ti, c := newTestInput(t, "")
	typeString(ti, c, "hello")
	tick(ti, c, 10, KeyDown(KeyHome, 0, Modifiers{}))
	tick(ti, c, 10, KeyDown(KeyShift, 0, Modifiers{}))
	tick(ti, c, 10, right(true), KeyUp(KeyRight))
	tick(ti, c, 10, right(true), KeyUp(KeyRight))

	x, w := ti.SelectionPixelSpan()
	if x != 0 || w != 20 {
		t.Fatalf("unexpected selection span: x=%d w=%d", x, w)
	}
}

func TestBackspaceKeepsWindowConsistent(t *testing.T) {
	ti, c := newTestInput(t, "", WithMaxWidth(4, false))
	typeString(ti, c, "abcdef")
	for i := 0; i < 6; i++ {
		tick(ti, c, 10, KeyDown(KeyBackspace, 0, Modifiers{}), KeyUp(KeyBackspace))
	}
	if got := ti.Text(); got != "" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := ti.VisibleText(); got != "" {
		t.Fatalf("unexpected visible text: %q", got)
	}
}

func TestLeftTravelSlidesWindow(t *testing.T) {
	ti, c := newTestInput(t, "", WithMaxWidth(4, false))
	typeString(ti, c, "abcdef")

	tick(ti, c, 10, KeyDown(KeyLeft, 0, Modifiers{}), KeyUp(KeyLeft))
	if l, r, off := ti.Renderbox(); l != 2 || r != 6 || off != 3 {
		t.Fatalf("unexpected renderbox after one left: [%d %d %d]", l, r, off)
	}

	for i := 0; i < 5; i++ {
		tick(ti, c, 10, KeyDown(KeyLeft, 0, Modifiers{}), KeyUp(KeyLeft))
	}
	if got := ti.Cursor(); got != 0 {
		t.Fatalf("unexpected cursor: %d", got)
	}
	if l, r, off := ti.Renderbox(); l != 0 || r != 4 || off != 0 {
		t.Fatalf("unexpected renderbox at start: [%d %d %d]", l, r, off)
	}
	if got := ti.VisibleText(); got != "abcd..." {
		t.Fatalf("unexpected visible text: %q", got)
	}
}

func TestDeleteForwardKeepsInnerOffset(t *testing.T) {
	ti, c := newTestInput(t, "", WithMaxWidth(4, false))
	typeString(ti, c, "abc")
	tick(ti, c, 10, KeyDown(KeyHome, 0, Modifiers{}))
	tick(ti, c, 10, right(false), KeyUp(KeyRight))

	tick(ti, c, 10, KeyDown(KeyDelete, 0, Modifiers{}), KeyUp(KeyDelete))
	if got := ti.Text(); got != "ac" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := ti.Cursor(); got != 1 {
		t.Fatalf("unexpected cursor: %d", got)
	}
	if _, _, off := ti.Renderbox(); off != 1 {
		t.Fatalf("inner offset = %d, want 1", off)
	}
}
