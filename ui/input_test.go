package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/asciihex/codetable"
	"github.com/lixenwraith/asciihex/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func typeText(m *Model, l Layout, s string) {
	for _, r := range s {
		m.HandleEvent(runeKey(r), l)
	}
}

func testLayout() Layout {
	return NewLayout(100, 40, MetricsFor(config.FontMedium))
}

func TestSearchTyping(t *testing.T) {
	m := newFixture(t).model
	l := testLayout()

	m.HandleEvent(runeKey('/'), l)
	assert.Equal(t, FocusSearch, m.Focus)

	typeText(m, l, " A ")
	assert.Equal(t, []int{10, 65, 97}, m.Highlights.Codes())

	// Backspace re-runs the match on every change
	m.HandleEvent(key(tcell.KeyBackspace2), l)
	m.HandleEvent(key(tcell.KeyBackspace2), l)
	assert.Equal(t, " ", m.Query.Value())
	assert.True(t, m.Highlights.Empty())

	m.HandleEvent(key(tcell.KeyEscape), l)
	assert.Equal(t, FocusGrid, m.Focus)
}

// Grid shortcuts must not fire while typing a query
func TestSearchCapturesShortcuts(t *testing.T) {
	m := newFixture(t).model
	l := testLayout()

	m.HandleEvent(key(tcell.KeyTab), l)
	typeText(m, l, "q")
	assert.False(t, m.Done())
	assert.Equal(t, "q", m.Query.Value())
	assert.Equal(t, []int{113}, m.Highlights.Codes())
}

func TestGridNavigationAndSelect(t *testing.T) {
	m := newFixture(t).model
	l := testLayout()

	for i := 0; i < 8; i++ {
		m.HandleEvent(key(tcell.KeyDown), l)
	}
	m.HandleEvent(runeKey('l'), l)
	m.HandleEvent(key(tcell.KeyEnter), l)

	assert.Equal(t, codetable.Position{Row: 8, Col: 1}, m.Cursor)
	assert.Equal(t, "Selected: A | Dec: 65 | Hex: 41", m.OutputLabel())

	m.HandleEvent(key(tcell.KeyUp), l)
	assert.Equal(t, "Dec: 57 | Hex: 39", m.Tooltip())
}

func TestGridShortcuts(t *testing.T) {
	m := newFixture(t).model
	l := testLayout()

	m.HandleEvent(runeKey('d'), l)
	assert.Equal(t, config.ThemeDark, m.Prefs.Theme)

	m.HandleEvent(runeKey('1'), l)
	assert.Equal(t, config.FontSmall, m.Prefs.FontSize)

	m.HandleEvent(runeKey('?'), l)
	assert.Equal(t, OverlayHelp, m.Overlay)
	m.HandleEvent(runeKey('x'), l)
	assert.Equal(t, OverlayNone, m.Overlay)

	m.HandleEvent(runeKey('c'), l)
	assert.Equal(t, "No selection to copy.", m.Status)

	m.HandleEvent(runeKey('q'), l)
	assert.True(t, m.Done())
}

func TestEscapeClearsQuery(t *testing.T) {
	m := newFixture(t).model
	m.SetQuery("a")
	m.HandleEvent(key(tcell.KeyEscape), testLayout())
	assert.Equal(t, "", m.Query.Value())
	assert.True(t, m.Highlights.Empty())
}

func TestMenuKeys(t *testing.T) {
	f := newFixture(t)
	m := f.model
	l := testLayout()

	m.HandleEvent(runeKey('m'), l)
	assert.Equal(t, OverlayMenu, m.Overlay)

	m.HandleEvent(key(tcell.KeyDown), l)
	m.HandleEvent(key(tcell.KeyEnter), l)
	assert.Equal(t, OverlayNone, m.Overlay)
	assert.Equal(t, "0", f.clip.Text())
}

func TestExportPromptKeys(t *testing.T) {
	f := newFixture(t)
	m := f.model
	l := testLayout()

	m.HandleEvent(runeKey('e'), l)
	assert.Equal(t, FocusExport, m.Focus)

	m.HandleEvent(key(tcell.KeyCtrlU), l)
	typeText(m, l, "out.csv")
	m.HandleEvent(key(tcell.KeyEnter), l)

	assert.Equal(t, FocusGrid, m.Focus)
	exists, err := afero.Exists(f.fs, "out.csv")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestExportPromptCancel(t *testing.T) {
	f := newFixture(t)
	m := f.model
	l := testLayout()

	m.HandleEvent(key(tcell.KeyCtrlE), l)
	m.HandleEvent(key(tcell.KeyEscape), l)

	assert.Equal(t, FocusGrid, m.Focus)
	exists, _ := afero.Exists(f.fs, "ascii_table.csv")
	assert.False(t, exists)
}

func TestCtrlCQuitsFromAnyFocus(t *testing.T) {
	m := newFixture(t).model
	m.Focus = FocusSearch
	m.HandleEvent(key(tcell.KeyCtrlC), testLayout())
	assert.True(t, m.Done())
}

func TestMouseSelect(t *testing.T) {
	f := newFixture(t)
	m := f.model
	l := testLayout()

	x, y := l.CellOrigin(codetable.PositionOf(65))
	m.HandleEvent(tcell.NewEventMouse(x+1, y, tcell.Button1, tcell.ModNone), l)
	assert.Equal(t, "Selected: A | Dec: 65 | Hex: 41", m.OutputLabel())

	x, y = l.CellOrigin(codetable.PositionOf(9))
	m.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button2, tcell.ModNone), l)
	assert.Equal(t, OverlayMenu, m.Overlay)
	assert.Equal(t, "Copy Char: [9]", m.Menu.Items[0].Label)

	// Click on the last menu item copies the full form
	mx, my, _, h := menuRect(m, l)
	m.HandleEvent(tcell.NewEventMouse(mx+2, my+h-2, tcell.Button1, tcell.ModNone), l)
	assert.Equal(t, OverlayNone, m.Overlay)
	assert.Equal(t, "[9] | Dec: 9 | Hex: 9", f.clip.Text())
}

func TestMouseOutsideGridIgnored(t *testing.T) {
	m := newFixture(t).model
	l := testLayout()

	m.HandleEvent(tcell.NewEventMouse(0, l.GridY, tcell.Button1, tcell.ModNone), l)
	_, ok := m.Selected()
	assert.False(t, ok)

	m.HandleEvent(tcell.NewEventMouse(20, searchRow, tcell.Button1, tcell.ModNone), l)
	assert.Equal(t, FocusSearch, m.Focus)
}
