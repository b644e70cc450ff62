package ui

import (
	"fieldbox/internal/render"
)

type Layout struct {
	TopBarH   int
	StatusH   int
	PanelX    int
	PanelY    int
	PanelW    int
	PanelH    int
	Fields    []Rect
	LabelYOff int
	StatusBar int
}

// ComputeLayout sizes the centered form panel and one row per field.
func ComputeLayout(w, h int, theme Theme, scale float32, fieldCount int) Layout {
	if scale <= 0 {
		scale = 1
	}

	dp := func(v int) int { return int(float32(v) * scale) }

	topH := dp(theme.TopBarHeightDp)
	statusH := dp(theme.StatusHeightDp)
	margin := dp(theme.PanelMarginDp)
	fieldH := dp(theme.FieldHeightDp)
	gap := dp(theme.FieldGapDp)
	labelH := dp(18)

	panelW := w - margin*2
	maxPanelW := dp(640)
	if panelW > maxPanelW {
		panelW = maxPanelW
	}
	if panelW < dp(320) {
		panelW = dp(320)
	}

	rowH := labelH + fieldH + gap
	panelH := dp(28)*2 + rowH*fieldCount - gap
	maxPanelH := h - topH - statusH - margin*2
	if panelH > maxPanelH && maxPanelH > 0 {
		panelH = maxPanelH
	}

	panelX := (w - panelW) / 2
	panelY := topH + margin
	pad := dp(28)

	fields := make([]Rect, 0, fieldCount)
	y := panelY + pad + labelH
	for i := 0; i < fieldCount; i++ {
		fields = append(fields, Rect{
			X: panelX + pad,
			Y: y,
			W: panelW - pad*2,
			H: fieldH,
		})
		y += fieldH + gap + labelH
	}

	return Layout{
		TopBarH:   topH,
		StatusH:   statusH,
		PanelX:    panelX,
		PanelY:    panelY,
		PanelW:    panelW,
		PanelH:    panelH,
		Fields:    fields,
		LabelYOff: labelH,
		StatusBar: h - statusH,
	}
}

func DrawShell(fb *render.FrameBuffer, theme Theme, scale float32, fieldCount int) Layout {
	layout := ComputeLayout(fb.W, fb.H, theme, scale, fieldCount)

	fb.Clear(theme.AppBackground)

	// Top bar
	fb.FillRect(0, 0, fb.W, layout.TopBarH, theme.TopBar)
	fb.StrokeRect(0, 0, fb.W, layout.TopBarH, 1, theme.Border)

	// Centered panel
	fb.FillRect(layout.PanelX+2, layout.PanelY+2, layout.PanelW, layout.PanelH, theme.Shadow)
	fb.FillRect(layout.PanelX, layout.PanelY, layout.PanelW, layout.PanelH, theme.Panel)
	fb.StrokeRect(layout.PanelX, layout.PanelY, layout.PanelW, layout.PanelH, 1, theme.Border)

	// Accent line at top of panel as visual anchor.
	accentH := int(3 * scale)
	if accentH < 1 {
		accentH = 1
	}
	fb.FillRect(layout.PanelX, layout.PanelY, layout.PanelW, accentH, theme.Accent)

	// Status bar
	fb.FillRect(0, layout.StatusBar, fb.W, layout.StatusH, theme.StatusBar)
	fb.StrokeRect(0, layout.StatusBar, fb.W, layout.StatusH, 1, theme.Border)

	return layout
}
