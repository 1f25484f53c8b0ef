package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	var s Set
	assert.True(t, s.Empty())
	assert.Equal(t, []int{}, s.Codes())

	s.Add(127)
	s.Add(0)
	s.Add(64)
	s.Add(64)
	s.Add(-1)
	s.Add(128)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{0, 64, 127}, s.Codes())
	assert.True(t, s.Has(64))
	assert.False(t, s.Has(63))
	assert.False(t, s.Has(200))
}

func TestSetOf(t *testing.T) {
	assert.Equal(t, []int{9, 17}, SetOf(17, 9).Codes())
}
