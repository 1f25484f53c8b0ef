package ui

import (
	"errors"

	"github.com/lixenwraith/asciihex/audio"
	"github.com/lixenwraith/asciihex/clip"
	"github.com/lixenwraith/asciihex/codetable"
	"github.com/lixenwraith/asciihex/config"
	"github.com/lixenwraith/asciihex/export"
	"github.com/lixenwraith/asciihex/search"
	"github.com/spf13/afero"
)

// Title is shown in the header bar
const Title = "ASCII Conversion Table v1.2"

const noSelectionLabel = "Selected: None | Dec: - | Hex: -"

// Focus is the widget receiving key input
type Focus uint8

const (
	FocusGrid Focus = iota
	FocusSearch
	FocusExport // export path prompt
)

// Overlay is a floating layer drawn above the grid
type Overlay uint8

const (
	OverlayNone Overlay = iota
	OverlayMenu
	OverlayHelp
	OverlayAbout
)

// Severity styles the status line
type Severity uint8

const (
	StatusInfo Severity = iota
	StatusSuccess
	StatusError
)

// Deps are the collaborators the model acts through
type Deps struct {
	Table     *codetable.Table
	Clipboard clip.Clipboard
	Sound     audio.Player
	Exporter  *export.Writer
}

// Model is the whole window state. It is owned by one goroutine.
type Model struct {
	table     *codetable.Table
	matcher   *search.Matcher
	clipboard clip.Clipboard
	sound     audio.Player
	exporter  *export.Writer

	Prefs      Preferences
	Cursor     codetable.Position
	Query      *TextField
	ExportPath *TextField
	Highlights search.Set
	Focus      Focus
	Overlay    Overlay
	Menu       ContextMenu
	AboutTab   int

	Status     string
	StatusKind Severity

	selected     codetable.Entry
	hasSelection bool
	quit         bool
}

type silent struct{}

func (silent) Play(audio.SoundType) {}

// NewModel builds a model from preferences and collaborators. Missing
// collaborators get in-process stand-ins.
func NewModel(cfg *config.Config, deps Deps) *Model {
	if deps.Table == nil {
		deps.Table = codetable.Default()
	}
	if deps.Clipboard == nil {
		deps.Clipboard = &clip.Memory{}
	}
	if deps.Sound == nil {
		deps.Sound = silent{}
	}
	if deps.Exporter == nil {
		deps.Exporter = export.NewWriter(afero.NewOsFs(), cfg.Delimiter)
	}

	return &Model{
		table:      deps.Table,
		matcher:    search.NewMatcher(deps.Table),
		clipboard:  deps.Clipboard,
		sound:      deps.Sound,
		exporter:   deps.Exporter,
		Prefs:      Preferences{Theme: cfg.Theme, FontSize: cfg.FontSize},
		Query:      NewTextField(""),
		ExportPath: NewTextField(cfg.ExportPath),
	}
}

// Table returns the table being displayed
func (m *Model) Table() *codetable.Table { return m.table }

// Done reports whether the user asked to quit
func (m *Model) Done() bool { return m.quit }

// Quit ends the event loop after the current event
func (m *Model) Quit() { m.quit = true }

func (m *Model) setStatus(kind Severity, msg string) {
	m.Status = msg
	m.StatusKind = kind
}

// --- Search ---

// SearchChanged recomputes highlights for the current query; the previous
// highlight set is replaced, never merged
func (m *Model) SearchChanged() {
	m.Highlights = m.matcher.Match(m.Query.Value())
}

// SetQuery replaces the search text
func (m *Model) SetQuery(q string) {
	m.Query.SetValue(q)
	m.SearchChanged()
}

// --- Selection ---

// Select makes the entry at p the current selection
func (m *Model) Select(p codetable.Position) error {
	e, err := m.table.At(p)
	if err != nil {
		m.setStatus(StatusError, err.Error())
		m.sound.Play(audio.SoundError)
		return err
	}
	m.Cursor = p
	m.selected = e
	m.hasSelection = true
	return nil
}

// Selected returns the current selection, if any
func (m *Model) Selected() (codetable.Entry, bool) {
	return m.selected, m.hasSelection
}

// OutputLabel is the text of the selection line under the grid
func (m *Model) OutputLabel() string {
	if !m.hasSelection {
		return noSelectionLabel
	}
	return "Selected: " + codetable.FormatFull(m.selected)
}

// Tooltip describes the cell under the cursor
func (m *Model) Tooltip() string {
	e, err := m.table.At(m.Cursor)
	if err != nil {
		return ""
	}
	return "Dec: " + e.Decimal + " | Hex: " + e.Hex
}

// MoveCursor shifts the grid cursor, wrapping at the edges
func (m *Model) MoveCursor(dr, dc int) {
	m.Cursor = m.Cursor.Move(dr, dc)
}

// --- Clipboard ---

// CopySelection copies the full form of the last selection
func (m *Model) CopySelection() {
	if !m.hasSelection {
		m.setStatus(StatusInfo, "No selection to copy.")
		return
	}
	m.CopyText(codetable.FormatFull(m.selected))
}

// CopyText puts text on the clipboard and reports the outcome
func (m *Model) CopyText(text string) {
	err := m.clipboard.WriteText(text)
	switch {
	case err == nil:
		m.setStatus(StatusSuccess, "Copied: "+text)
		m.sound.Play(audio.SoundBell)
	case errors.Is(err, clip.ErrUnavailable):
		m.setStatus(StatusError, "Copy failed: system clipboard unavailable")
		m.sound.Play(audio.SoundError)
	default:
		m.setStatus(StatusError, "Copy failed: "+err.Error())
		m.sound.Play(audio.SoundError)
	}
}

// --- Context menu ---

// OpenMenu selects p and shows its copy actions
func (m *Model) OpenMenu(p codetable.Position) {
	if err := m.Select(p); err != nil {
		return
	}
	m.Menu = NewContextMenu(m.selected)
	m.Overlay = OverlayMenu
}

// ActivateMenu runs the highlighted menu item and closes the menu
func (m *Model) ActivateMenu() {
	item, ok := m.Menu.Current()
	m.CloseOverlay()
	if ok {
		m.CopyText(item.Text)
	}
}

// CloseOverlay hides whatever overlay is open
func (m *Model) CloseOverlay() {
	m.Overlay = OverlayNone
}

// --- Export ---

// BeginExport opens the path prompt
func (m *Model) BeginExport() {
	m.CloseOverlay()
	m.ExportPath.End()
	m.Focus = FocusExport
}

// CancelExport closes the prompt without writing
func (m *Model) CancelExport() {
	m.Focus = FocusGrid
}

// ConfirmExport writes the table to the prompted path
func (m *Model) ConfirmExport() error {
	m.Focus = FocusGrid
	path := m.ExportPath.Value()

	if err := m.exporter.Write(path, m.table); err != nil {
		m.setStatus(StatusError, export.FailureMessage(err))
		m.sound.Play(audio.SoundError)
		return err
	}
	m.setStatus(StatusSuccess, export.SuccessMessage(path))
	m.sound.Play(audio.SoundBell)
	return nil
}

// --- Presentation ---

// ToggleTheme switches between light and dark
func (m *Model) ToggleTheme() {
	m.Prefs.Theme = m.Prefs.Theme.Toggle()
}

// SetFontSize changes the cell size
func (m *Model) SetFontSize(size config.FontSize) {
	m.Prefs.FontSize = size
	m.setStatus(StatusInfo, "Font "+size.String())
}

// ShowHelp opens the usage overlay
func (m *Model) ShowHelp() { m.Overlay = OverlayHelp }

// ShowAbout opens the about overlay on its first tab
func (m *Model) ShowAbout() {
	m.Overlay = OverlayAbout
	m.AboutTab = 0
}

// NextAboutTab cycles the about overlay tabs
func (m *Model) NextAboutTab() {
	m.AboutTab = (m.AboutTab + 1) % len(aboutTabs)
}
