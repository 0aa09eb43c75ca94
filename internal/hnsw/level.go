package hnsw

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// levelProbabilityFloor is the point at which the level generator's
// precomputed table stops growing; probabilities below this contribute
// negligibly to the expected layer count for any reasonable M.
const levelProbabilityFloor = 1e-9

// levelGenerator samples a node's top layer from the exponential-decay
// distribution HNSW assigns per insert. It is seedable so two runs with
// the same seed and the same insertion order produce the same graph.
type levelGenerator struct {
	table []float64
	rng   *rand.Rand
}

// newLevelGenerator builds the table once at construction: p(l) =
// e^(-l/mu) * (1 - e^(-1/mu)), mu = 1/ln(M).
func newLevelGenerator(m int, seed int64) *levelGenerator {
	mu := 1.0 / math32.Log(float32(m))
	retention := float32(1) - math32.Exp(-1/mu)

	var table []float64
	for l := 0; ; l++ {
		p := math32.Exp(-float32(l)/mu) * retention
		if p < levelProbabilityFloor && l > 0 {
			break
		}
		table = append(table, float64(p))
	}

	return &levelGenerator{
		table: table,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// sampleLevel draws one uniform u in [0,1) and walks the table: if u <
// p(i), return i; else subtract p(i) and continue. Exhausting the table
// returns its last index.
func (g *levelGenerator) sampleLevel() int {
	u := g.rng.Float64()
	for i, p := range g.table {
		if u < p {
			return i
		}
		u -= p
	}
	return len(g.table) - 1
}
