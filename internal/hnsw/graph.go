// Package hnsw implements an in-memory approximate nearest neighbor index
// using the Hierarchical Navigable Small World algorithm of Malkov &
// Yashunin (arXiv:1603.09320). The index is built incrementally via
// Insert and queried via Search; it is not persistent and assumes a
// single mutator thread (see Index's doc comment for the concurrency
// contract).
package hnsw

import (
	"container/heap"
	"fmt"
	"time"
)

// Index is the in-memory HNSW graph: it owns the entry point, the
// current maximum layer, the vector and adjacency stores, and the
// scratch heaps/bitset the graph core reuses across calls.
//
// Index is not safe for concurrent use. It assumes a single mutator
// thread and no suspension points; any caller that needs to share an
// Index across goroutines (the HTTP façade in internal/httpapi does)
// must serialize access itself.
type Index struct {
	cfg   Config
	store vectorStore

	// adjacency[id][layer] is node id's neighbor list at that layer.
	// len(adjacency[id]) == topLayer[id]+1.
	adjacency [][]adjacencyList
	topLayer  []int

	hasEntryPoint bool
	entryPoint    uint32
	maxLayer      int
	nextID        uint32

	levelGen *levelGenerator

	// Scratch state reused across searchLayer calls on this index.
	// Never observed outside a single call.
	candidates candidateHeap
	results    resultHeap
	visited    *visitedSet

	cumulativeInsertTime time.Duration
}

// New constructs an index with the given configuration. Every parameter
// is validated eagerly; an invalid configuration is a programmer error
// and panics rather than returning an error.
func New(cfg Config) *Index {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return &Index{
		cfg:       cfg,
		store:     newVectorStore(cfg.Storage, cfg.Capacity, cfg.Dimensions),
		adjacency: make([][]adjacencyList, cfg.Capacity),
		topLayer:  make([]int, cfg.Capacity),
		levelGen:  newLevelGenerator(cfg.M, cfg.Seed),
		visited:   newVisitedSet(cfg.Capacity),
		maxLayer:  -1,
	}
}

// capFor returns the per-layer neighbor cap: 2M at layer 0, M above it.
func capFor(layer, m int) int {
	if layer == 0 {
		return 2 * m
	}
	return m
}

func (idx *Index) distanceTo(id uint32, q []float32) float32 {
	return Squared(idx.store.get(id), q)
}

func (idx *Index) distanceBetween(a, b uint32) float32 {
	return Squared(idx.store.get(a), idx.store.get(b))
}

// Insert adds a vector to the index and returns its assigned id, which
// equals the previous node count.
//
// Panics if the index is at capacity or vec's length doesn't match the
// index's configured dimensions.
func (idx *Index) Insert(vec []float32) uint32 {
	start := time.Now()

	if len(vec) != idx.cfg.Dimensions {
		panic(fmt.Sprintf("hnsw: insert: expected %d dimensions, got %d", idx.cfg.Dimensions, len(vec)))
	}
	if int(idx.nextID) >= idx.cfg.Capacity {
		panic(fmt.Sprintf("hnsw: insert: index at capacity %d", idx.cfg.Capacity))
	}

	newID := idx.nextID
	idx.nextID++

	newTop := idx.levelGen.sampleLevel()
	idx.store.put(newID, vec)

	layers := make([]adjacencyList, newTop+1)
	for l := range layers {
		layers[l] = newAdjacencyList(layerCapacityHint(l, idx.cfg.M))
	}
	idx.adjacency[newID] = layers
	idx.topLayer[newID] = newTop

	if !idx.hasEntryPoint {
		idx.hasEntryPoint = true
		idx.entryPoint = newID
		idx.maxLayer = newTop
		idx.cumulativeInsertTime += time.Since(start)
		return newID
	}

	cur := idx.entryPoint
	for l := idx.maxLayer; l > newTop; l-- {
		cur = idx.searchLayer(vec, cur, 1, l)[0].id
	}

	top := newTop
	if idx.maxLayer < top {
		top = idx.maxLayer
	}
	for l := top; l >= 0; l-- {
		cands := idx.searchLayer(vec, cur, idx.cfg.EfConstruction, l)
		cur = cands[0].id

		chosen := idx.selectNeighbors(cands, idx.cfg.M)

		ownList := &idx.adjacency[newID][l]
		capAtLayer := capFor(l, idx.cfg.M)
		for _, nb := range chosen {
			ownList.append(nb)

			nbList := &idx.adjacency[nb][l]
			if nbList.size() < capAtLayer {
				nbList.append(newID)
			} else {
				idx.shrink(nb, l, newID, capAtLayer)
			}
		}
	}

	if newTop > idx.maxLayer {
		idx.entryPoint = newID
		idx.maxLayer = newTop
	}

	idx.cumulativeInsertTime += time.Since(start)
	return newID
}

// Search returns up to k ids closest to query, sorted by ascending
// distance. Returns an empty slice on an empty index. efSearch >= k is a
// documented precondition; violating it is not an error, but the result
// then holds at most efSearch ids.
//
// Panics if k <= 0, ef_search <= 0, or query's length doesn't match the
// index's configured dimensions.
func (idx *Index) Search(query []float32, k, efSearch int) []uint32 {
	if k <= 0 {
		panic(fmt.Sprintf("hnsw: search: k must be positive, got %d", k))
	}
	if efSearch <= 0 {
		panic(fmt.Sprintf("hnsw: search: ef_search must be positive, got %d", efSearch))
	}
	if len(query) != idx.cfg.Dimensions {
		panic(fmt.Sprintf("hnsw: search: expected %d dimensions, got %d", idx.cfg.Dimensions, len(query)))
	}

	if !idx.hasEntryPoint {
		return []uint32{}
	}

	cur := idx.entryPoint
	for l := idx.maxLayer; l > 0; l-- {
		cur = idx.searchLayer(query, cur, 1, l)[0].id
	}

	results := idx.searchLayer(query, cur, efSearch, 0)

	n := k
	if len(results) < n {
		n = len(results)
	}
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = results[i].id
	}
	return out
}

// searchLayer is the beam search at the core of both Insert and Search:
// it finds up to ef nodes in layer closest to q, starting from entry,
// and returns them in
// ascending distance order. The candidate/result heaps and the visited
// bitset are scratch state owned by idx and fully reset before this call
// returns.
func (idx *Index) searchLayer(q []float32, entry uint32, ef, layer int) []candidateItem {
	idx.candidates.reset()
	idx.results.reset()
	defer idx.candidates.reset()
	defer idx.visited.reset()

	d0 := idx.distanceTo(entry, q)
	heap.Push(&idx.candidates, candidateItem{id: entry, dist: d0})
	heap.Push(&idx.results, candidateItem{id: entry, dist: d0})
	idx.visited.visit(entry)

	for idx.candidates.Len() > 0 {
		c := heap.Pop(&idx.candidates).(candidateItem)
		worst := idx.results[0]
		if c.dist > worst.dist {
			break
		}

		if layer >= len(idx.adjacency[c.id]) {
			continue
		}
		list := &idx.adjacency[c.id][layer]
		for i := 0; i < list.size(); i++ {
			n := list.get(i)
			if idx.visited.isVisited(n) {
				continue
			}
			idx.visited.visit(n)

			d := idx.distanceTo(n, q)
			if idx.results.Len() < ef || d < idx.results[0].dist {
				heap.Push(&idx.candidates, candidateItem{id: n, dist: d})
				heap.Push(&idx.results, candidateItem{id: n, dist: d})
				if idx.results.Len() > ef {
					heap.Pop(&idx.results)
				}
			}
		}
	}

	out := make([]candidateItem, idx.results.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&idx.results).(candidateItem)
	}
	return out
}
