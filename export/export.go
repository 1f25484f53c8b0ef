// Package export writes the code table as delimited text
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/asciihex/codetable"
	"github.com/spf13/afero"
)

// DefaultDelimiter is the comma of a plain CSV file
const DefaultDelimiter = ','

// ErrBadDelimiter is returned for delimiters encoding/csv rejects
var ErrBadDelimiter = errors.New("invalid delimiter")

// Writer exports tables onto a filesystem
type Writer struct {
	Fs        afero.Fs
	Delimiter rune
}

// NewWriter returns a writer on fs using delim, or the comma when delim is 0
func NewWriter(fs afero.Fs, delim rune) *Writer {
	if delim == 0 {
		delim = DefaultDelimiter
	}
	return &Writer{Fs: fs, Delimiter: delim}
}

// Write creates or truncates path and writes all table rows into it
func (w *Writer) Write(path string, t *codetable.Table) (err error) {
	if path == "" {
		return fmt.Errorf("export: empty path")
	}

	f, err := w.Fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, t, w.Delimiter); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// Encode writes the header and 128 data rows to out
func Encode(out io.Writer, t *codetable.Table, delim rune) error {
	cw := csv.NewWriter(out)
	if delim != 0 {
		cw.Comma = delim
	}
	if !validDelim(cw.Comma) {
		return fmt.Errorf("%w: %q", ErrBadDelimiter, cw.Comma)
	}

	if err := cw.WriteAll(t.ExportRows()); err != nil {
		return err
	}
	return cw.Error()
}

// validDelim mirrors the checks encoding/csv applies before writing
func validDelim(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && r != 0xFFFD
}

// SuccessMessage is the text shown after a completed export
func SuccessMessage(path string) string {
	return "Table exported successfully to " + path
}

// FailureMessage is the text shown after a failed export
func FailureMessage(err error) string {
	return fmt.Sprintf("Failed to export: %v", err)
}
