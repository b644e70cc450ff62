package ui

import (
	"image"

	"fieldbox/internal/render"
	"fieldbox/pkg/textinput"
)

// Widget is the capability surface the shell needs from an input widget:
// per-frame update, placement, focus and the committed value.
type Widget interface {
	Update(events []textinput.Event) bool
	SetBounds(r image.Rectangle)
	SetFocused(focused bool)
	Focused() bool
	Value() any
}

// PlaceWidgets assigns one layout row to each widget, in order. Extra
// widgets keep their previous bounds.
func PlaceWidgets(layout Layout, widgets []Widget) {
	for i, w := range widgets {
		if i >= len(layout.Fields) {
			break
		}
		r := layout.Fields[i]
		w.SetBounds(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H))
	}
}

type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// DrawFieldBox paints the chrome of one input row. Text itself is drawn by
// the caller, directly on the screen layer.
func DrawFieldBox(fb *render.FrameBuffer, theme Theme, r Rect, focused bool) {
	bg := theme.FieldBg
	border := theme.Border
	if focused {
		bg = theme.FieldBgFocused
		border = theme.BorderFocused
	}
	fb.FillRect(r.X, r.Y, r.W, r.H, bg)
	fb.StrokeRect(r.X, r.Y, r.W, r.H, 1, border)
}

// DrawSelection blends the translucent selection band over the field body.
// x and w are pixel offsets relative to the text origin inside the box.
func DrawSelection(fb *render.FrameBuffer, theme Theme, r Rect, x, w, padX int) {
	if w <= 0 {
		return
	}
	fb.FillRectAlpha(r.X+padX+x, r.Y+3, w, r.H-6, theme.Selection)
}

func DrawCursor(fb *render.FrameBuffer, theme Theme, r Rect, x, padX int) {
	fb.FillRect(r.X+padX+x, r.Y+5, 2, r.H-10, theme.Cursor)
}

// DrawUnderline draws the guide line beneath the field text, offset by
// vmargin below the box bottom edge.
func DrawUnderline(fb *render.FrameBuffer, theme Theme, r Rect, x, w, padX, vmargin int) {
	if w <= 0 {
		return
	}
	fb.HLine(r.X+padX+x, r.Y+r.H+vmargin, w, theme.Accent)
}
