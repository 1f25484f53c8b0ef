package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/asciihex/config"
)

// Theme defines semantic colors for the table window
type Theme struct {
	WindowBg tcell.Color
	WindowFg tcell.Color
	TableBg  tcell.Color
	TableFg  tcell.Color
	InputBg  tcell.Color
	InputFg  tcell.Color

	HeaderFg    tcell.Color
	Border      tcell.Color
	Highlight   tcell.Color // search matches
	HighlightFg tcell.Color
	CursorBg    tcell.Color
	CursorFg    tcell.Color
	ControlFg   tcell.Color // bracketed non-printable entries
	HintFg      tcell.Color
	ErrorFg     tcell.Color
	SuccessFg   tcell.Color
	MenuBg      tcell.Color
	MenuFg      tcell.Color
	MenuSelBg   tcell.Color
}

// LightTheme mirrors a stock desktop window: white table, yellow matches
var LightTheme = Theme{
	WindowBg:    tcell.NewRGBColor(240, 240, 240),
	WindowFg:    tcell.NewRGBColor(20, 20, 20),
	TableBg:     tcell.NewRGBColor(255, 255, 255),
	TableFg:     tcell.NewRGBColor(0, 0, 0),
	InputBg:     tcell.NewRGBColor(255, 255, 255),
	InputFg:     tcell.NewRGBColor(0, 0, 0),
	HeaderFg:    tcell.NewRGBColor(80, 80, 80),
	Border:      tcell.NewRGBColor(170, 170, 170),
	Highlight:   tcell.NewRGBColor(255, 255, 0),
	HighlightFg: tcell.NewRGBColor(0, 0, 0),
	CursorBg:    tcell.NewRGBColor(48, 140, 198),
	CursorFg:    tcell.NewRGBColor(255, 255, 255),
	ControlFg:   tcell.NewRGBColor(130, 130, 130),
	HintFg:      tcell.NewRGBColor(60, 110, 160),
	ErrorFg:     tcell.NewRGBColor(200, 30, 30),
	SuccessFg:   tcell.NewRGBColor(30, 130, 30),
	MenuBg:      tcell.NewRGBColor(225, 225, 225),
	MenuFg:      tcell.NewRGBColor(0, 0, 0),
	MenuSelBg:   tcell.NewRGBColor(180, 200, 230),
}

// DarkTheme uses the #2b2b2b / #3c3f41 / #555555 palette
var DarkTheme = Theme{
	WindowBg:    tcell.NewHexColor(0x2b2b2b),
	WindowFg:    tcell.NewHexColor(0xf0f0f0),
	TableBg:     tcell.NewHexColor(0x3c3f41),
	TableFg:     tcell.NewHexColor(0xf0f0f0),
	InputBg:     tcell.NewHexColor(0x555555),
	InputFg:     tcell.NewHexColor(0xf0f0f0),
	HeaderFg:    tcell.NewRGBColor(170, 170, 170),
	Border:      tcell.NewRGBColor(90, 90, 90),
	Highlight:   tcell.NewRGBColor(180, 160, 0),
	HighlightFg: tcell.NewRGBColor(0, 0, 0),
	CursorBg:    tcell.NewRGBColor(50, 90, 140),
	CursorFg:    tcell.NewHexColor(0xf0f0f0),
	ControlFg:   tcell.NewRGBColor(140, 140, 140),
	HintFg:      tcell.NewRGBColor(100, 180, 200),
	ErrorFg:     tcell.NewRGBColor(255, 90, 90),
	SuccessFg:   tcell.NewRGBColor(100, 210, 100),
	MenuBg:      tcell.NewRGBColor(70, 72, 75),
	MenuFg:      tcell.NewHexColor(0xf0f0f0),
	MenuSelBg:   tcell.NewRGBColor(50, 90, 140),
}

// ThemeFor returns the palette for a configured theme
func ThemeFor(t config.Theme) Theme {
	if t == config.ThemeDark {
		return DarkTheme
	}
	return LightTheme
}

// Metrics is the grid cell footprint derived from a font size
type Metrics struct {
	CellW int // columns per cell, including padding
	CellH int // rows per cell
}

// MetricsFor maps the menu font sizes onto terminal cell sizes. The widest
// label is "[127]", so every size leaves room for it.
func MetricsFor(size config.FontSize) Metrics {
	switch size {
	case config.FontSmall:
		return Metrics{CellW: 6, CellH: 1}
	case config.FontLarge:
		return Metrics{CellW: 10, CellH: 2}
	default:
		return Metrics{CellW: 8, CellH: 1}
	}
}

// Preferences are the presentation toggles passed to the renderer
type Preferences struct {
	Theme    config.Theme
	FontSize config.FontSize
}
