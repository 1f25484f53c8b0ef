package ui

import "github.com/lixenwraith/asciihex/codetable"

// MenuItem is one copy action; Text is what lands on the clipboard
type MenuItem struct {
	Label string
	Text  string
}

// ContextMenu lists the copy actions for one entry
type ContextMenu struct {
	Items    []MenuItem
	Selected int
}

// NewContextMenu builds the four copy actions for e
func NewContextMenu(e codetable.Entry) ContextMenu {
	full := codetable.FormatFull(e)
	return ContextMenu{
		Items: []MenuItem{
			{Label: "Copy Char: " + e.Display, Text: e.Display},
			{Label: "Copy Dec: " + e.Decimal, Text: e.Decimal},
			{Label: "Copy Hex: " + e.Hex, Text: e.Hex},
			{Label: "Copy Full: " + full, Text: full},
		},
	}
}

// Move shifts the highlighted item, wrapping
func (c *ContextMenu) Move(d int) {
	n := len(c.Items)
	if n == 0 {
		return
	}
	c.Selected = ((c.Selected+d)%n + n) % n
}

// Current returns the highlighted item
func (c *ContextMenu) Current() (MenuItem, bool) {
	if c.Selected < 0 || c.Selected >= len(c.Items) {
		return MenuItem{}, false
	}
	return c.Items[c.Selected], true
}

// Width is the widest label in runes
func (c *ContextMenu) Width() int {
	w := 0
	for _, it := range c.Items {
		if n := textWidth(it.Label); n > w {
			w = n
		}
	}
	return w
}

var helpLines = []string{
	"How to Use ASCIIHEX Table",
	"",
	"This application displays the standard ASCII characters",
	"along with their decimal and hexadecimal values.",
	"",
	"  Click or Enter     view a cell's ASCII, decimal and hex values",
	"  Right-click or m   copy its data in various formats",
	"  / or Tab           search by char, decimal or hex code",
	"  e or Ctrl+E        export the table as CSV",
	"  c or Ctrl+Y        copy the last selection",
	"  1 2 3              font small, medium, large",
	"  d or Ctrl+D        toggle dark mode",
	"  ? or F1            this help      a  about",
	"  q or Ctrl+C        quit",
	"",
	"Version 1.2",
}

type aboutTab struct {
	Name  string
	Lines []string
}

var aboutTabs = []aboutTab{
	{Name: "About", Lines: []string{"ASCII / Hex Table", "Version 1.2"}},
	{Name: "Technologies", Lines: []string{"Go", "tcell", "beep", "afero", "Tested on Linux"}},
}
