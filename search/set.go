package search

import (
	"math/bits"

	"github.com/lixenwraith/asciihex/codetable"
)

// Set is a fixed 128-bit set of code points. The zero value is empty.
type Set struct {
	words [codetable.Size / 64]uint64
}

// Add inserts code; values outside [0,127] are ignored
func (s *Set) Add(code int) {
	if code < 0 || code >= codetable.Size {
		return
	}
	s.words[code>>6] |= 1 << uint(code&63)
}

// Has reports whether code is in the set
func (s Set) Has(code int) bool {
	if code < 0 || code >= codetable.Size {
		return false
	}
	return s.words[code>>6]&(1<<uint(code&63)) != 0
}

// Len returns the number of codes in the set
func (s Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether the set has no members
func (s Set) Empty() bool {
	return s.Len() == 0
}

// Codes returns the members in ascending order
func (s Set) Codes() []int {
	out := make([]int, 0, s.Len())
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, i*64+b)
			w &= w - 1
		}
	}
	return out
}

// SetOf builds a set from codes
func SetOf(codes ...int) Set {
	var s Set
	for _, c := range codes {
		s.Add(c)
	}
	return s
}
