package codetable

// Position is a grid cell, derived from a code as (code/8, code%8)
type Position struct {
	Row int
	Col int
}

// PositionOf returns the grid cell for code. Callers pass codes in [0,127].
func PositionOf(code int) Position {
	return Position{Row: code / Columns, Col: code % Columns}
}

// Code maps the cell back to its code point
func (p Position) Code() int {
	return p.Row*Columns + p.Col
}

// Valid reports whether the cell lies inside the 16x8 grid
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Columns
}

// Move returns p shifted by (dr, dc), wrapping within the grid
func (p Position) Move(dr, dc int) Position {
	r := ((p.Row+dr)%Rows + Rows) % Rows
	c := ((p.Col+dc)%Columns + Columns) % Columns
	return Position{Row: r, Col: c}
}
