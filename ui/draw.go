package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/asciihex/codetable"
	"github.com/mattn/go-runewidth"
)

const searchPlaceholder = "Search ASCII, Dec, Hex..."

// drawText writes str at (x, y) and returns the x after the last cell
func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func fillRect(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawBox draws a single-line border and clears its interior
func drawBox(s tcell.Screen, x, y, w, h int, style tcell.Style, title string) {
	fillRect(s, x, y, w, h, style)
	for col := x + 1; col < x+w-1; col++ {
		s.SetContent(col, y, tcell.RuneHLine, nil, style)
		s.SetContent(col, y+h-1, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		s.SetContent(x, row, tcell.RuneVLine, nil, style)
		s.SetContent(x+w-1, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
	if title != "" {
		drawText(s, x+2, y, " "+title+" ", style.Bold(true))
	}
}

// Draw renders the whole model onto s
func Draw(s tcell.Screen, m *Model, l Layout) {
	th := ThemeFor(m.Prefs.Theme)
	base := tcell.StyleDefault.Background(th.WindowBg).Foreground(th.WindowFg)

	s.SetStyle(base)
	s.Clear()
	s.HideCursor()
	fillRect(s, 0, 0, l.Width, l.Height, base)

	drawText(s, 0, titleRow, center(Title, l.Width), base.Bold(true).Reverse(true))
	drawSearch(s, m, l, th, base)
	drawGrid(s, m, l, th, base)
	drawFooter(s, m, l, th, base)

	switch m.Overlay {
	case OverlayMenu:
		drawMenu(s, m, l, th)
	case OverlayHelp:
		drawLines(s, l, th, "How to Use ASCIIHEX", helpLines)
	case OverlayAbout:
		drawAbout(s, m, l, th)
	}

	if m.Focus == FocusExport {
		drawExportPrompt(s, m, l, th)
	}
}

func drawSearch(s tcell.Screen, m *Model, l Layout, th Theme, base tcell.Style) {
	x := drawText(s, 1, searchRow, "Search: ", base.Bold(true))
	w := l.Width - x - 1
	if w < 10 {
		w = 10
	}
	input := tcell.StyleDefault.Background(th.InputBg).Foreground(th.InputFg)

	value := m.Query.Value()
	if value == "" && m.Focus != FocusSearch {
		drawText(s, x, searchRow, fit(searchPlaceholder, w), input.Foreground(th.HintFg).Italic(true))
		return
	}
	drawText(s, x, searchRow, fit(value, w), input)

	if m.Focus == FocusSearch {
		cx := x + runewidth.StringWidth(string(m.Query.Text[:m.Query.Cursor]))
		if cx < x+w {
			s.ShowCursor(cx, searchRow)
		}
	}
}

func drawGrid(s tcell.Screen, m *Model, l Layout, th Theme, base tcell.Style) {
	cw, ch := l.Metrics.CellW, l.Metrics.CellH
	header := base.Foreground(th.HeaderFg)

	for col := 0; col < codetable.Columns; col++ {
		label := "Col " + strconv.Itoa(col)
		drawText(s, l.GridX+col*cw, gridTop, center(label, cw), header)
	}

	table := m.Table()
	for row := 0; row < codetable.Rows; row++ {
		drawText(s, 0, l.GridY+row*ch, fit("Row "+strconv.Itoa(row), rowLabelW), header)

		for col := 0; col < codetable.Columns; col++ {
			p := codetable.Position{Row: row, Col: col}
			e, _ := table.At(p)

			style := tcell.StyleDefault.Background(th.TableBg).Foreground(th.TableFg)
			if e.Code < 32 || e.Code == 127 {
				style = style.Foreground(th.ControlFg)
			}
			if m.Highlights.Has(e.Code) {
				style = style.Background(th.Highlight).Foreground(th.HighlightFg).Bold(true)
			}
			if p == m.Cursor && m.Focus == FocusGrid {
				style = style.Background(th.CursorBg).Foreground(th.CursorFg)
			}

			x, y := l.CellOrigin(p)
			fillRect(s, x, y, cw, ch, style)
			// The cell edge is a column separator
			drawText(s, x, y+(ch-1)/2, center(e.Display, cw-1), style)
			s.SetContent(x+cw-1, y+(ch-1)/2, tcell.RuneVLine, nil, style.Foreground(th.Border))
		}
	}
}

func drawFooter(s tcell.Screen, m *Model, l Layout, th Theme, base tcell.Style) {
	y := l.GridBottom() + 1
	drawText(s, 0, y, center(m.OutputLabel(), l.Width), base.Bold(true))
	drawText(s, 0, y+1, center(m.Tooltip(), l.Width), base.Foreground(th.HintFg))

	status := base
	switch m.StatusKind {
	case StatusSuccess:
		status = base.Foreground(th.SuccessFg)
	case StatusError:
		status = base.Foreground(th.ErrorFg)
	}
	drawText(s, 1, y+2, fit(m.Status, l.Width-2), status)

	keys := "/ search  Enter select  m menu  c copy  e export  d dark  1-3 font  ? help  a about  q quit"
	drawText(s, 1, y+3, fit(keys, l.Width-2), base.Foreground(th.HeaderFg))
}

// menuRect anchors the context menu just below the cursor cell
func menuRect(m *Model, l Layout) (x, y, w, h int) {
	w = m.Menu.Width() + 4
	h = len(m.Menu.Items) + 2
	x, y = l.CellOrigin(m.Cursor)
	y += l.Metrics.CellH
	if x+w > l.Width {
		x = l.Width - w
	}
	if y+h > l.Height {
		y = l.Height - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y, w, h
}

// menuItemAt returns the menu item under a screen position
func menuItemAt(m *Model, l Layout, px, py int) (int, bool) {
	x, y, w, h := menuRect(m, l)
	if px <= x || px >= x+w-1 || py <= y || py >= y+h-1 {
		return 0, false
	}
	return py - y - 1, true
}

func drawMenu(s tcell.Screen, m *Model, l Layout, th Theme) {
	x, y, w, h := menuRect(m, l)
	style := tcell.StyleDefault.Background(th.MenuBg).Foreground(th.MenuFg)
	drawBox(s, x, y, w, h, style, "")

	for i, it := range m.Menu.Items {
		item := style
		if i == m.Menu.Selected {
			item = style.Background(th.MenuSelBg)
		}
		drawText(s, x+1, y+1+i, fit(" "+it.Label, w-2), item)
	}
}

// drawLines shows a centered box holding lines
func drawLines(s tcell.Screen, l Layout, th Theme, title string, lines []string) {
	w := textWidth(title) + 6
	for _, ln := range lines {
		if n := textWidth(ln) + 4; n > w {
			w = n
		}
	}
	if w > l.Width {
		w = l.Width
	}
	h := len(lines) + 2
	x := (l.Width - w) / 2
	y := (l.Height - h) / 2
	if y < 0 {
		y = 0
	}

	style := tcell.StyleDefault.Background(th.MenuBg).Foreground(th.MenuFg)
	drawBox(s, x, y, w, h, style, title)
	for i, ln := range lines {
		drawText(s, x+2, y+1+i, fit(ln, w-4), style)
	}
}

func drawAbout(s tcell.Screen, m *Model, l Layout, th Theme) {
	tab := aboutTabs[m.AboutTab]

	tabs := ""
	for i, t := range aboutTabs {
		if i == m.AboutTab {
			tabs += "[" + t.Name + "] "
		} else {
			tabs += " " + t.Name + "  "
		}
	}

	lines := append([]string{tabs, ""}, tab.Lines...)
	lines = append(lines, "", "Tab switches tabs, any key closes")
	drawLines(s, l, th, "About ASCII / Hex Table", lines)
}

func drawExportPrompt(s tcell.Screen, m *Model, l Layout, th Theme) {
	w := l.Width - 8
	if w > 70 {
		w = 70
	}
	h := 5
	x := (l.Width - w) / 2
	y := (l.Height - h) / 2

	style := tcell.StyleDefault.Background(th.MenuBg).Foreground(th.MenuFg)
	drawBox(s, x, y, w, h, style, "Export ASCII Table")

	fx := drawText(s, x+2, y+1, "File: ", style)
	fw := x + w - 2 - fx
	input := tcell.StyleDefault.Background(th.InputBg).Foreground(th.InputFg)
	drawText(s, fx, y+1, fit(m.ExportPath.Value(), fw), input)
	drawText(s, x+2, y+3, fit("Enter save   Esc cancel", w-4), style.Foreground(th.HintFg))

	cx := fx + runewidth.StringWidth(string(m.ExportPath.Text[:m.ExportPath.Cursor]))
	if cx < fx+fw {
		s.ShowCursor(cx, y+1)
	}
}
