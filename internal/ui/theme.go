package ui

import "image/color"

type Theme struct {
	AppBackground  color.RGBA
	TopBar         color.RGBA
	Panel          color.RGBA
	FieldBg        color.RGBA
	FieldBgFocused color.RGBA
	Border         color.RGBA
	BorderFocused  color.RGBA
	StatusBar      color.RGBA
	Accent         color.RGBA
	Shadow         color.RGBA
	TitleText      color.RGBA
	ValueText      color.RGBA
	HintText       color.RGBA
	Selection      color.RGBA
	Cursor         color.RGBA
	TopBarHeightDp int
	StatusHeightDp int
	PanelMarginDp  int
	FieldHeightDp  int
	FieldGapDp     int
}

func DefaultTheme() Theme {
	return Theme{
		AppBackground:  color.RGBA{0xF3, 0xF5, 0xF8, 0xFF},
		TopBar:         color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		Panel:          color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		FieldBg:        color.RGBA{0xF7, 0xF9, 0xFC, 0xFF},
		FieldBgFocused: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Border:         color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		BorderFocused:  color.RGBA{0x4D, 0x86, 0xCD, 0xFF},
		StatusBar:      color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		Accent:         color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		Shadow:         color.RGBA{0xC8, 0xCF, 0xDB, 0xFF},
		TitleText:      color.RGBA{0x2C, 0x3A, 0x52, 0xFF},
		ValueText:      color.RGBA{0x20, 0x20, 0x20, 0xFF},
		HintText:       color.RGBA{0x6E, 0x7C, 0x94, 0xFF},
		Selection:      color.RGBA{0x1E, 0x1E, 0x1E, 0x64},
		Cursor:         color.RGBA{0x15, 0x54, 0xA4, 0xFF},
		TopBarHeightDp: 34,
		StatusHeightDp: 28,
		PanelMarginDp:  24,
		FieldHeightDp:  38,
		FieldGapDp:     18,
	}
}
