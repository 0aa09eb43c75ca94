package hnsw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContiguousStorePutGet(t *testing.T) {
	s := newContiguousStore(4, 3)
	s.put(0, []float32{1, 2, 3})
	s.put(1, []float32{4, 5, 6})

	assert.Equal(t, []float32{1, 2, 3}, s.get(0))
	assert.Equal(t, []float32{4, 5, 6}, s.get(1))
}

func TestPerSlotStorePutGet(t *testing.T) {
	s := newPerSlotStore(4, 3)
	s.put(0, []float32{1, 2, 3})
	s.put(1, []float32{4, 5, 6})

	assert.Equal(t, []float32{1, 2, 3}, s.get(0))
	assert.Equal(t, []float32{4, 5, 6}, s.get(1))
}

// TestStoreBackendsAgree checks both backends produce the same views for
// the same inputs, since the graph core must be indifferent to which one
// is active.
func TestStoreBackendsAgree(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	contiguous := newVectorStore(Contiguous, 3, 3)
	perSlot := newVectorStore(PerSlot, 3, 3)

	for i, v := range vectors {
		contiguous.put(uint32(i), v)
		perSlot.put(uint32(i), v)
	}

	for i := range vectors {
		assert.Equal(t, contiguous.get(uint32(i)), perSlot.get(uint32(i)))
	}
}

func TestPerSlotStorePutCopiesInput(t *testing.T) {
	s := newPerSlotStore(1, 3)
	src := []float32{1, 2, 3}
	s.put(0, src)
	src[0] = 999

	assert.Equal(t, float32(1), s.get(0)[0], "store must own a copy, not alias the caller's slice")
}
