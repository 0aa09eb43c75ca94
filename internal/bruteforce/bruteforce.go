// Package bruteforce implements exact nearest-neighbor search by linear
// scan. It serves as an exact reference HNSW results can be compared
// against and as an alternative search backend the HTTP façade can
// select.
package bruteforce

import (
	"container/heap"
	"sync"

	"github.com/documind/hnswindex/internal/hnsw"
)

// Index implements exact nearest neighbor search using linear scan. Use
// it for correctness verification and small datasets; it is safe for
// concurrent use, unlike the HNSW core, since every operation is
// independent of graph state.
type Index struct {
	dimensions int

	mu      sync.RWMutex
	ids     []uint32
	vectors [][]float32
}

// New creates a brute-force index over vectors of the given dimensions.
func New(dimensions int) *Index {
	return &Index{dimensions: dimensions}
}

// Insert appends a vector under the given id.
func (idx *Index) Insert(id uint32, vec []float32) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	own := make([]float32, len(vec))
	copy(own, vec)
	idx.ids = append(idx.ids, id)
	idx.vectors = append(idx.vectors, own)
}

// Search returns up to k ids whose vectors are closest to query under
// squared Euclidean distance, ascending.
func (idx *Index) Search(query []float32, k int) []uint32 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.ids) == 0 {
		return []uint32{}
	}

	h := &resultHeap{}
	heap.Init(h)

	for i, v := range idx.vectors {
		d := hnsw.SquaredScalar(query, v)
		pushBounded(h, result{id: idx.ids[i], dist: d}, k)
	}

	return drain(h)
}

// SearchConcurrent splits the scan across numWorkers goroutines and
// merges the partial top-k results, a classic chunked-scan idiom for an
// embarrassingly parallel linear scan; useful once dataset size makes a
// single-threaded scan the bottleneck in benchmarking.
func (idx *Index) SearchConcurrent(query []float32, k, numWorkers int) []uint32 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.ids) == 0 {
		return []uint32{}
	}
	if numWorkers <= 0 {
		numWorkers = 4
	}

	chunkSize := (len(idx.ids) + numWorkers - 1) / numWorkers
	resultsChan := make(chan []result, numWorkers)

	var wg sync.WaitGroup
	for start := 0; start < len(idx.ids); start += chunkSize {
		end := start + chunkSize
		if end > len(idx.ids) {
			end = len(idx.ids)
		}

		wg.Add(1)
		go func(ids []uint32, vectors [][]float32) {
			defer wg.Done()
			resultsChan <- searchChunk(query, ids, vectors, k)
		}(idx.ids[start:end], idx.vectors[start:end])
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	h := &resultHeap{}
	heap.Init(h)
	for partial := range resultsChan {
		for _, r := range partial {
			pushBounded(h, r, k)
		}
	}
	return drain(h)
}

func searchChunk(query []float32, ids []uint32, vectors [][]float32, k int) []result {
	h := &resultHeap{}
	heap.Init(h)
	for i, v := range vectors {
		pushBounded(h, result{id: ids[i], dist: hnsw.SquaredScalar(query, v)}, k)
	}
	return []result(*h)
}

// Count returns the number of vectors in the index.
func (idx *Index) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.ids)
}

// result pairs an id with its distance to the active query.
type result struct {
	id   uint32
	dist float32
}

// resultHeap is a max-heap by distance: the worst of the current top-k is
// always at the root, ready to be evicted when a closer candidate shows
// up.
type resultHeap []result

func (h resultHeap) Len() int            { return len(h) }
func (h resultHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h resultHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x interface{}) { *h = append(*h, x.(result)) }
func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func pushBounded(h *resultHeap, r result, k int) {
	if h.Len() < k {
		heap.Push(h, r)
	} else if h.Len() > 0 && r.dist < (*h)[0].dist {
		heap.Pop(h)
		heap.Push(h, r)
	}
}

// drain empties h into an ascending-distance slice of ids.
func drain(h *resultHeap) []uint32 {
	out := make([]uint32, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(result).id
	}
	return out
}
