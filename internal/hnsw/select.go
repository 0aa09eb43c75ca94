package hnsw

import "sort"

// selectNeighbors applies a diversity heuristic: candidates (already
// sorted ascending by distance to the target) are kept if they're closer
// to the target than to every neighbor already chosen, and the result is
// topped up from the discards if the first pass didn't fill cap.
func (idx *Index) selectNeighbors(candidates []candidateItem, cap int) []uint32 {
	selected := make([]uint32, 0, cap)
	discarded := make([]uint32, 0, len(candidates))

	for _, c := range candidates {
		if len(selected) >= cap {
			break
		}
		diverse := true
		for _, s := range selected {
			if idx.distanceBetween(s, c.id) < c.dist {
				diverse = false
				break
			}
		}
		if diverse {
			selected = append(selected, c.id)
		} else {
			discarded = append(discarded, c.id)
		}
	}

	for i := 0; len(selected) < cap && i < len(discarded); i++ {
		selected = append(selected, discarded[i])
	}

	return selected
}

// shrink re-prunes an existing node's layer-l neighbor list back down to
// cap after the bidirectional install of newID pushed it over. The
// default strategy reruns the diversity heuristic over the node's
// current neighbors plus newID; the Greedy strategy is a speed/quality
// knob that skips diversity and just keeps the cap-1 closest plus newID
// unconditionally.
func (idx *Index) shrink(nb uint32, layer int, newID uint32, cap int) {
	list := &idx.adjacency[nb][layer]
	n := list.size()

	cands := make([]candidateItem, 0, n+1)
	for i := 0; i < n; i++ {
		id := list.get(i)
		cands = append(cands, candidateItem{id: id, dist: idx.distanceBetween(nb, id)})
	}
	cands = append(cands, candidateItem{id: newID, dist: idx.distanceBetween(nb, newID)})

	sort.Slice(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	var chosen []uint32
	if idx.cfg.Shrink == Greedy {
		chosen = make([]uint32, 0, cap)
		limit := cap - 1
		for _, c := range cands {
			if c.id == newID {
				continue
			}
			if len(chosen) >= limit {
				break
			}
			chosen = append(chosen, c.id)
		}
		chosen = append(chosen, newID)
	} else {
		chosen = idx.selectNeighbors(cands, cap)
	}

	list.replaceAll(chosen)
}
