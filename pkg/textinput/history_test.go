package textinput

import "testing"

func TestUndoRedoWalk(t *testing.T) {
	ti, c := newTestInput(t, "")
	typeString(ti, c, "abc")

	steps := []struct {
		key  Key
		r    rune
		want string
	}{
		{KeyZ, 'z', "ab"},
		{KeyZ, 'z', "a"},
		{KeyZ, 'z', ""},
		{KeyY, 'y', "a"},
		{KeyY, 'y', "ab"},
		{KeyY, 'y', "abc"},
		{KeyY, 'y', "abc"}, // at the newest entry already
	}
	for i, st := range steps {
		tick(ti, c, 10, ctrl(st.key, st.r))
		if got := ti.Text(); got != st.want {
			t.Fatalf("step %d: unexpected text %q, want %q", i, got, st.want)
		}
	}
}

func TestUndoRestoresCursor(t *testing.T) {
	ti, c := newTestInput(t, "")
	typeString(ti, c, "abc")
	tick(ti, c, 10, ctrl(KeyZ, 'z'))
	if got := ti.Text(); got != "ab" {
		t.Fatalf("unexpected text: %q", got)
	}
	if ti.Cursor() != 2 {
		t.Fatalf("unexpected cursor: %d", ti.Cursor())
	}
}

func TestUndoStopsAtOldestEntry(t *testing.T) {
	ti, c := newTestInput(t, "")
	typeString(ti, c, "a")
	tick(ti, c, 10, ctrl(KeyZ, 'z'))
	if got := ti.Text(); got != "" {
		t.Fatalf("unexpected text: %q", got)
	}
	if tick(ti, c, 10, ctrl(KeyZ, 'z')) {
		t.Fatal("undo past the oldest entry must not report an update")
	}
}

// Editing while rewound first re-commits the rewound state, so both the
// abandoned branch and the resumed one stay reachable.
func TestEditAfterUndoDuplicatesTip(t *testing.T) {
	ti, c := newTestInput(t, "")
	typeString(ti, c, "ab")
	tick(ti, c, 10, ctrl(KeyZ, 'z'))
	if got := ti.Text(); got != "a" {
		t.Fatalf("unexpected text after undo: %q", got)
	}
	typeString(ti, c, "c")
	if got := ti.Text(); got != "ac" {
		t.Fatalf("unexpected text after branch edit: %q", got)
	}

	for i, want := range []string{"a", "ab", "a", ""} {
		tick(ti, c, 10, ctrl(KeyZ, 'z'))
		if got := ti.Text(); got != want {
			t.Fatalf("undo %d: unexpected text %q, want %q", i, got, want)
		}
	}
}

func TestHistoryDepthEvictsOldest(t *testing.T) {
	ti, c := newTestInput(t, "", WithHistoryDepth(2))
	typeString(ti, c, "abc")
	tick(ti, c, 10, ctrl(KeyZ, 'z'))
	if got := ti.Text(); got != "ab" {
		t.Fatalf("unexpected text: %q", got)
	}
	if tick(ti, c, 10, ctrl(KeyZ, 'z')) {
		t.Fatal("evicted entries must not be reachable")
	}
	if got := ti.Text(); got != "ab" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestHistoryDisabled(t *testing.T) {
	snd := &soundCounter{}
	ti, c := newTestInput(t, "", WithHistoryDepth(0))
	ti.SetSounds(snd)
	typeString(ti, c, "ab")
	tick(ti, c, 10, ctrl(KeyZ, 'z'))
	if got := ti.Text(); got != "ab" {
		t.Fatalf("undo with history disabled must be a no-op, got %q", got)
	}
	if snd.errs != 1 {
		t.Fatalf("expected error feedback, got %d", snd.errs)
	}
}

func TestCutAllThenUndo(t *testing.T) {
	clip := &memClipboard{}
	ti, c := newTestInput(t, "")
	ti.SetClipboard(clip)
	typeString(ti, c, "ab")
	tick(ti, c, 10, ctrl(KeyX, 'x'))
	if got := ti.Text(); got != "" {
		t.Fatalf("cut without selection must clear all, got %q", got)
	}
	if clip.data != "ab" {
		t.Fatalf("unexpected clipboard: %q", clip.data)
	}
	tick(ti, c, 10, KeyUp(KeyX), ctrl(KeyZ, 'z'))
	if got := ti.Text(); got != "ab" {
		t.Fatalf("undo after cut must restore, got %q", got)
	}
}

func TestSelectionRemovalIsOneUndoStep(t *testing.T) {
	ti, c := newTestInput(t, "")
	typeString(ti, c, "abcd")
	tick(ti, c, 10, KeyDown(KeyHome, 0, Modifiers{}))
	tick(ti, c, 10, KeyDown(KeyShift, 0, Modifiers{}))
	tick(ti, c, 10, KeyDown(KeyRight, 0, Modifiers{Shift: true}), KeyUp(KeyRight))
	tick(ti, c, 10, KeyDown(KeyRight, 0, Modifiers{Shift: true}), KeyUp(KeyRight))
	if got := ti.SelectedText(); got != "ab" {
		t.Fatalf("unexpected selection: %q", got)
	}
	tick(ti, c, 10, KeyUp(KeyShift))
	tick(ti, c, 10, KeyDown(KeyBackspace, 0, Modifiers{}), KeyUp(KeyBackspace))
	if got := ti.Text(); got != "cd" {
		t.Fatalf("unexpected text after selection delete: %q", got)
	}
	tick(ti, c, 10, ctrl(KeyZ, 'z'))
	if got := ti.Text(); got != "abcd" {
		t.Fatalf("one undo must restore the whole run, got %q", got)
	}
}
