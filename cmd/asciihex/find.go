package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/asciihex/codetable"
	"github.com/lixenwraith/asciihex/search"
)

// runFind prints one full line per match; no match is exit status 1
func runFind(w io.Writer, table *codetable.Table, query string) int {
	matches := search.Match(query, table)
	if matches.Empty() {
		fmt.Fprintf(os.Stderr, "no match for %q\n", query)
		return 1
	}
	for _, code := range matches.Codes() {
		e, err := table.EntryAt(code)
		if err != nil {
			continue
		}
		fmt.Fprintln(w, codetable.FormatFull(e))
	}
	return 0
}
