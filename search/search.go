// Package search decides which table entries a user query highlights.
//
// A query is trimmed and lower-cased, then compared for exact equality
// against each entry's lower-cased display form, its decimal string and its
// lower-cased hex string. There is no substring or fuzzy matching. Hex has
// no prefix, so numeric queries can hit both forms: "11" matches code 11 by
// decimal and code 17 by hex.
package search

import (
	"strings"

	"github.com/lixenwraith/asciihex/codetable"
	"github.com/segmentio/asm/ascii"
)

// Normalize trims surrounding whitespace and lower-cases the query
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Match returns the codes in t matching query. An empty normalized query
// yields the empty set, which the UI treats as "clear highlights".
func Match(query string, t *codetable.Table) Set {
	var s Set

	q := Normalize(query)
	if q == "" {
		return s
	}
	// Every representation is ASCII, so non-ASCII queries cannot match
	if !ascii.ValidString(q) {
		return s
	}

	for _, e := range t.Entries() {
		if matches(q, e) {
			s.Add(e.Code)
		}
	}
	return s
}

func matches(q string, e codetable.Entry) bool {
	return q == strings.ToLower(e.Display) ||
		q == e.Decimal ||
		q == strings.ToLower(e.Hex)
}

// Matcher binds a table so the UI can call Match on every keystroke
type Matcher struct {
	table *codetable.Table
}

// NewMatcher creates a matcher over t
func NewMatcher(t *codetable.Table) *Matcher {
	return &Matcher{table: t}
}

// Match runs the package-level Match against the bound table
func (m *Matcher) Match(query string) Set {
	return Match(query, m.table)
}
