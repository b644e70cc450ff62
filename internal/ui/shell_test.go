package ui

import "testing"

func TestComputeLayoutFieldRows(t *testing.T) {
	theme := DefaultTheme()
	layout := ComputeLayout(900, 560, theme, 1, 3)

	if len(layout.Fields) != 3 {
		t.Fatalf("want 3 field rows, got %d", len(layout.Fields))
	}
	for i, r := range layout.Fields {
		if r.W <= 0 || r.H <= 0 {
			t.Fatalf("field %d has empty rect %+v", i, r)
		}
		if r.X < layout.PanelX || r.X+r.W > layout.PanelX+layout.PanelW {
			t.Fatalf("field %d overflows panel horizontally: %+v", i, r)
		}
		if i > 0 && r.Y <= layout.Fields[i-1].Y+layout.Fields[i-1].H {
			t.Fatalf("field %d overlaps previous row", i)
		}
	}
	if layout.StatusBar != 560-layout.StatusH {
		t.Fatalf("status bar at %d, want %d", layout.StatusBar, 560-layout.StatusH)
	}
}

func TestComputeLayoutClampsScale(t *testing.T) {
	theme := DefaultTheme()
	layout := ComputeLayout(900, 560, theme, 0, 1)
	if layout.TopBarH != theme.TopBarHeightDp {
		t.Fatalf("zero scale should fall back to 1, got top bar %d", layout.TopBarH)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	if !r.Contains(10, 10) || !r.Contains(29, 19) {
		t.Fatal("inclusive top-left / exclusive bottom-right broken")
	}
	if r.Contains(30, 10) || r.Contains(10, 20) {
		t.Fatal("Contains accepts points outside the rect")
	}
}
