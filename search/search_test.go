package search

import (
	"testing"

	"github.com/lixenwraith/asciihex/codetable"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a", Normalize("  A \t"))
	assert.Equal(t, "[9]", Normalize("[9]"))
	assert.Equal(t, "", Normalize("   "))
}

func TestMatch(t *testing.T) {
	tbl := codetable.Default()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty", "", []int{}},
		{"whitespace only", " \t ", []int{}},
		{"lower letter hits hex A too", "a", []int{10, 65, 97}},
		{"padded upper letter", " A ", []int{10, 65, 97}},
		{"decimal and hex overlap", "41", []int{41, 65}},
		{"single digit hits display of 57", "9", []int{9, 57}},
		{"bracketed control", "[9]", []int{9}},
		{"bracketed delete", "[127]", []int{127}},
		{"bracketed upper case is same", "[10]", []int{10}},
		{"ambiguous eleven", "11", []int{11, 17}},
		{"hex letters", "7f", []int{127}},
		{"hex letters upper", "7F", []int{127}},
		{"hex single letter", "f", []int{15, 70, 102}},
		{"no substring", "12a", []int{}},
		{"no prefix form", "0x41", []int{}},
		{"space is trimmed away", " ", []int{}},
		{"non ascii", "é", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.query, tbl)
			assert.ElementsMatch(t, tt.want, got.Codes())
		})
	}
}

// A lone space cannot be searched because trimming empties the query
func TestMatchSpaceCharacterUnreachable(t *testing.T) {
	assert.True(t, Match(" ", codetable.Default()).Empty())
	assert.True(t, Match("32", codetable.Default()).Has(32))
}

func TestMatchCaseAndWhitespaceInsensitive(t *testing.T) {
	tbl := codetable.Default()
	assert.Equal(t, Match("a", tbl), Match(" A ", tbl))
	assert.Equal(t, Match("[9]", tbl), Match("  [9]\n", tbl))
}

// Every entry must be reachable through its decimal string
func TestMatchEveryDecimal(t *testing.T) {
	tbl := codetable.Default()
	for _, e := range tbl.Entries() {
		assert.True(t, Match(e.Decimal, tbl).Has(e.Code), "decimal %s", e.Decimal)
	}
}

func TestMatcher(t *testing.T) {
	m := NewMatcher(codetable.Default())
	assert.Equal(t, SetOf(10, 65, 97), m.Match("A"))
	assert.True(t, m.Match("").Empty())
}
