// Package codetable holds the fixed 128-entry character table and its
// string representations.
package codetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/segmentio/asm/ascii"
)

const (
	// Size is the number of code points in the table
	Size = 128

	// Columns and Rows describe the grid the table is laid out in
	Columns = 8
	Rows    = Size / Columns
)

// ErrOutOfRange is returned for codes or positions outside the table
var ErrOutOfRange = errors.New("code point out of range")

// Entry is one immutable row of the table.
// Hex is uppercase base-16 without a prefix ("41", "7F").
type Entry struct {
	Code    int
	Display string
	Decimal string
	Hex     string
}

// Table is the read-only set of all 128 entries, indexed by code
type Table struct {
	entries [Size]Entry
}

var defaultTable = Build()

// Default returns the process-wide table built at start-up
func Default() *Table {
	return defaultTable
}

// Build constructs a fresh table
func Build() *Table {
	t := &Table{}
	for code := 0; code < Size; code++ {
		t.entries[code] = newEntry(code)
	}
	return t
}

func newEntry(code int) Entry {
	return Entry{
		Code:    code,
		Display: displayOf(code),
		Decimal: strconv.Itoa(code),
		Hex:     strings.ToUpper(strconv.FormatInt(int64(code), 16)),
	}
}

// displayOf renders printable codes as themselves, everything else as "[code]"
func displayOf(code int) string {
	if ascii.ValidPrintByte(byte(code)) {
		return string(rune(code))
	}
	return "[" + strconv.Itoa(code) + "]"
}

// EntryAt returns the entry for code, or ErrOutOfRange
func (t *Table) EntryAt(code int) (Entry, error) {
	if code < 0 || code >= Size {
		return Entry{}, fmt.Errorf("%w: %d", ErrOutOfRange, code)
	}
	return t.entries[code], nil
}

// At returns the entry shown at a grid position
func (t *Table) At(p Position) (Entry, error) {
	if !p.Valid() {
		return Entry{}, fmt.Errorf("%w: row %d col %d", ErrOutOfRange, p.Row, p.Col)
	}
	return t.entries[p.Code()], nil
}

// Entries returns a copy of all entries in ascending code order
func (t *Table) Entries() []Entry {
	out := make([]Entry, Size)
	copy(out, t.entries[:])
	return out
}

// Len is always Size; present so callers can range without the constant
func (t *Table) Len() int {
	return Size
}

// FormatFull is the single-line form used for the selection label,
// clipboard copy and CLI output
func FormatFull(e Entry) string {
	return e.Display + " | Dec: " + e.Decimal + " | Hex: " + e.Hex
}

// ExportHeader is the first row of every export
var ExportHeader = []string{"Dec", "Hex", "Char"}

// ExportRows returns the header followed by one [Dec, Hex, Char] row per code
func (t *Table) ExportRows() [][]string {
	rows := make([][]string, 0, Size+1)
	rows = append(rows, append([]string(nil), ExportHeader...))
	for _, e := range t.entries {
		rows = append(rows, []string{e.Decimal, e.Hex, e.Display})
	}
	return rows
}
