package ui

import (
	"github.com/lixenwraith/asciihex/codetable"
	"github.com/mattn/go-runewidth"
)

// Fixed rows around the grid
const (
	titleRow     = 0
	searchRow    = 2
	gridTop      = 4 // column header row
	rowLabelW    = 8 // "Row 15" plus gap
	footerHeight = 4 // output label, hint, status, key help
)

// Layout is the screen geometry for one frame
type Layout struct {
	Width, Height int
	Metrics       Metrics
	GridX, GridY  int // top-left of cell (0,0)
}

// NewLayout places the grid for a screen of w x h
func NewLayout(w, h int, m Metrics) Layout {
	return Layout{
		Width:   w,
		Height:  h,
		Metrics: m,
		GridX:   rowLabelW,
		GridY:   gridTop + 1,
	}
}

// GridBottom is the first screen row below the grid
func (l Layout) GridBottom() int {
	return l.GridY + codetable.Rows*l.Metrics.CellH
}

// CellOrigin is the top-left screen position of a cell
func (l Layout) CellOrigin(p codetable.Position) (x, y int) {
	return l.GridX + p.Col*l.Metrics.CellW, l.GridY + p.Row*l.Metrics.CellH
}

// CellAt maps a screen position to a grid cell
func (l Layout) CellAt(x, y int) (codetable.Position, bool) {
	if x < l.GridX || y < l.GridY {
		return codetable.Position{}, false
	}
	p := codetable.Position{
		Row: (y - l.GridY) / l.Metrics.CellH,
		Col: (x - l.GridX) / l.Metrics.CellW,
	}
	return p, p.Valid()
}

// MinSize is the smallest screen that shows the whole grid
func (l Layout) MinSize() (w, h int) {
	return l.GridX + codetable.Columns*l.Metrics.CellW, l.GridBottom() + footerHeight
}

// textWidth is the display width of s in cells
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// fit truncates or pads s to exactly w cells
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

// center pads s on both sides to w cells
func center(s string, w int) string {
	sw := textWidth(s)
	if sw >= w {
		return fit(s, w)
	}
	left := (w - sw) / 2
	return fit(runewidth.FillLeft(s, sw+left), w)
}
