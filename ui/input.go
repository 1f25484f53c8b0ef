package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/asciihex/config"
)

// HandleEvent applies one tcell event to the model. The layout is the one
// the last frame was drawn with, used to resolve mouse positions.
func (m *Model) HandleEvent(ev tcell.Event, l Layout) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		m.handleKey(ev)
	case *tcell.EventMouse:
		m.handleMouse(ev, l)
	}
}

func (m *Model) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		m.Quit()
		return
	}

	switch {
	case m.Focus == FocusExport:
		m.handleExportKey(ev)
	case m.Overlay != OverlayNone:
		m.handleOverlayKey(ev)
	case m.Focus == FocusSearch:
		m.handleSearchKey(ev)
	default:
		m.handleGridKey(ev)
	}
}

// editField applies line-editing keys; returns true if the text changed
func editField(f *TextField, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		f.Insert(ev.Rune())
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return f.DeleteBackward()
	case tcell.KeyDelete:
		return f.DeleteForward()
	case tcell.KeyCtrlW:
		return f.DeleteWordBackward()
	case tcell.KeyCtrlU:
		if len(f.Text) == 0 {
			return false
		}
		f.Clear()
		return true
	case tcell.KeyLeft:
		f.MoveLeft()
	case tcell.KeyRight:
		f.MoveRight()
	case tcell.KeyHome, tcell.KeyCtrlA:
		f.Home()
	case tcell.KeyEnd, tcell.KeyCtrlE:
		f.End()
	}
	return false
}

func (m *Model) handleSearchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyTab, tcell.KeyDown:
		m.Focus = FocusGrid
		return
	}
	if editField(m.Query, ev) {
		m.SearchChanged()
	}
}

func (m *Model) handleExportKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		m.CancelExport()
		return
	case tcell.KeyEnter:
		m.ConfirmExport()
		return
	}
	editField(m.ExportPath, ev)
}

func (m *Model) handleOverlayKey(ev *tcell.EventKey) {
	if m.Overlay == OverlayMenu {
		switch ev.Key() {
		case tcell.KeyUp:
			m.Menu.Move(-1)
		case tcell.KeyDown, tcell.KeyTab:
			m.Menu.Move(1)
		case tcell.KeyEnter:
			m.ActivateMenu()
		case tcell.KeyEscape:
			m.CloseOverlay()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'k':
				m.Menu.Move(-1)
			case 'j':
				m.Menu.Move(1)
			case 'q':
				m.CloseOverlay()
			}
		}
		return
	}

	if m.Overlay == OverlayAbout && (ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyRight || ev.Key() == tcell.KeyLeft) {
		m.NextAboutTab()
		return
	}
	// Any other key dismisses help and about
	m.CloseOverlay()
}

func (m *Model) handleGridKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		m.MoveCursor(-1, 0)
	case tcell.KeyDown:
		m.MoveCursor(1, 0)
	case tcell.KeyLeft:
		m.MoveCursor(0, -1)
	case tcell.KeyRight:
		m.MoveCursor(0, 1)
	case tcell.KeyEnter:
		m.Select(m.Cursor)
	case tcell.KeyTab:
		m.Focus = FocusSearch
	case tcell.KeyEscape:
		if m.Query.Value() != "" {
			m.SetQuery("")
		}
	case tcell.KeyCtrlY:
		m.CopySelection()
	case tcell.KeyCtrlE:
		m.BeginExport()
	case tcell.KeyCtrlD:
		m.ToggleTheme()
	case tcell.KeyF1:
		m.ShowHelp()
	case tcell.KeyRune:
		m.handleGridRune(ev.Rune())
	}
}

func (m *Model) handleGridRune(r rune) {
	switch r {
	case 'k':
		m.MoveCursor(-1, 0)
	case 'j':
		m.MoveCursor(1, 0)
	case 'h':
		m.MoveCursor(0, -1)
	case 'l':
		m.MoveCursor(0, 1)
	case ' ':
		m.Select(m.Cursor)
	case '/':
		m.Focus = FocusSearch
	case 'c':
		m.CopySelection()
	case 'm':
		m.OpenMenu(m.Cursor)
	case 'e':
		m.BeginExport()
	case 'd':
		m.ToggleTheme()
	case '1':
		m.SetFontSize(config.FontSmall)
	case '2':
		m.SetFontSize(config.FontMedium)
	case '3':
		m.SetFontSize(config.FontLarge)
	case '?':
		m.ShowHelp()
	case 'a':
		m.ShowAbout()
	case 'q':
		m.Quit()
	}
}

func (m *Model) handleMouse(ev *tcell.EventMouse, l Layout) {
	btn := ev.Buttons()
	if btn&(tcell.Button1|tcell.Button2) == 0 {
		return
	}

	x, y := ev.Position()

	if m.Overlay == OverlayMenu {
		// Click inside the menu activates the item under the pointer
		if idx, ok := menuItemAt(m, l, x, y); ok {
			m.Menu.Selected = idx
			m.ActivateMenu()
			return
		}
		m.CloseOverlay()
	} else if m.Overlay != OverlayNone {
		m.CloseOverlay()
		return
	}

	if y == searchRow {
		m.Focus = FocusSearch
		return
	}

	p, ok := l.CellAt(x, y)
	if !ok {
		return
	}
	m.Focus = FocusGrid
	if btn&tcell.Button2 != 0 {
		m.OpenMenu(p)
		return
	}
	m.Select(p)
}
