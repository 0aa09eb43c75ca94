package bruteforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOrdersByAscendingDistance(t *testing.T) {
	idx := New(3)
	idx.Insert(0, []float32{1, 0, 0})
	idx.Insert(1, []float32{0, 1, 0})
	idx.Insert(2, []float32{0.9, 0.1, 0})

	got := idx.Search([]float32{1, 0, 0}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, uint32(0), got[0])
	assert.Equal(t, uint32(2), got[1])
}

func TestSearchEmptyIndex(t *testing.T) {
	idx := New(3)
	got := idx.Search([]float32{1, 2, 3}, 5)
	assert.Empty(t, got)
}

func TestSearchConcurrentMatchesSerial(t *testing.T) {
	idx := New(4)
	for i := uint32(0); i < 100; i++ {
		idx.Insert(i, []float32{float32(i), 0, 0, 0})
	}

	query := []float32{50, 0, 0, 0}
	serial := idx.Search(query, 5)
	concurrent := idx.SearchConcurrent(query, 5, 4)

	serialSet := map[uint32]bool{}
	for _, id := range serial {
		serialSet[id] = true
	}
	for _, id := range concurrent {
		assert.True(t, serialSet[id], "concurrent result %d not in serial top-k", id)
	}
	assert.Len(t, concurrent, len(serial))
}

func TestCount(t *testing.T) {
	idx := New(2)
	assert.Equal(t, 0, idx.Count())
	idx.Insert(0, []float32{1, 2})
	assert.Equal(t, 1, idx.Count())
}
