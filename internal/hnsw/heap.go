package hnsw

// candidateItem pairs a node id with its distance to the active query,
// the unit pushed through both priority queues in searchLayer.
type candidateItem struct {
	id   uint32
	dist float32
}

// candidateHeap is the ascending ("closest first") min-heap of nodes
// still to expand.
type candidateHeap []candidateItem

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidateItem)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// reset truncates the heap to length zero without discarding its backing
// array, so the same allocation serves every searchLayer call on this
// index.
func (h *candidateHeap) reset() { *h = (*h)[:0] }

// resultHeap is the descending ("furthest first") max-heap bounding the
// current result set to ef entries; its root is always the worst member,
// the one evicted first when a closer candidate arrives.
type resultHeap []candidateItem

func (h resultHeap) Len() int            { return len(h) }
func (h resultHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h resultHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x interface{}) { *h = append(*h, x.(candidateItem)) }
func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (h *resultHeap) reset() { *h = (*h)[:0] }

// visitedSet is a bitset sized to the index's capacity. Rather than zero
// the whole bitset after every searchLayer call, it tracks which words
// were touched and only re-zeroes those, so reset cost is proportional
// to nodes visited, not to total capacity.
type visitedSet struct {
	words   []uint64
	touched []uint32
}

func newVisitedSet(capacity int) *visitedSet {
	return &visitedSet{
		words: make([]uint64, (capacity+63)/64),
	}
}

func (v *visitedSet) isVisited(id uint32) bool {
	return v.words[id/64]&(1<<(id%64)) != 0
}

func (v *visitedSet) visit(id uint32) {
	v.words[id/64] |= 1 << (id % 64)
	v.touched = append(v.touched, id)
}

// reset clears every bit set since the last reset. Zeroing a word more
// than once (two touched ids sharing a word) is harmless.
func (v *visitedSet) reset() {
	for _, id := range v.touched {
		v.words[id/64] = 0
	}
	v.touched = v.touched[:0]
}
