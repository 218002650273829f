package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseSet(t *testing.T) {
	var s SparseSet[string]

	s.Set(3, "c")
	s.Set(1, "a")
	s.Set(0, "ignored")
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Has(0))
	assert.False(t, s.Has(2))
	assert.False(t, s.Has(99))

	v, ok := s.Get(3)
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	s.Set(3, "cc")
	v, _ = s.Get(3)
	assert.Equal(t, "cc", v)
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Remove(3))
	assert.False(t, s.Remove(3))
	assert.False(t, s.Has(3))
	assert.Equal(t, []uint32{1}, s.IDs())
	assert.Equal(t, []string{"a"}, s.Values())

	_, ok = s.Get(3)
	assert.False(t, ok)
}

func TestSparseSetRemoveKeepsIndexConsistent(t *testing.T) {
	var s SparseSet[int]
	for id := uint32(1); id <= 5; id++ {
		s.Set(id, int(id)*10)
	}
	s.Remove(2)
	s.Remove(5)

	for _, id := range []uint32{1, 3, 4} {
		v, ok := s.Get(id)
		assert.True(t, ok, "id %d", id)
		assert.Equal(t, int(id)*10, v)
	}
	assert.ElementsMatch(t, []uint32{1, 3, 4}, s.IDs())
}

func TestSparseSetNil(t *testing.T) {
	var s *SparseSet[int]
	assert.False(t, s.Has(1))
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.IDs())
	assert.False(t, s.Remove(1))
}
