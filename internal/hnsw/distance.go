package hnsw

import (
	"github.com/viterin/vek/vek32"
)

// Squared returns the squared Euclidean distance between a and b. It
// never takes the square root: ordering under squared distance is
// identical to ordering under true distance, and skipping the root saves
// a transcendental call on every edge the graph core touches.
//
// Mismatched lengths are a precondition violation, not a runtime error;
// vek32.Sub rejects slices of unequal length with a panic, so a caller
// that violates the precondition gets a panic rather than a silent wrong
// answer.
//
// Both vector store backends hand the graph core a []float32 view — a
// borrowed sub-slice of the contiguous block, or the owned per-slot
// array — so unlike a systems language with separate
// "resident"/"foreign" pointer types, Go's slice already is the single
// type that covers a vector wherever it lives. A second overload for the
// "one side is off-heap" case would just be this function under a
// different name.
//
// The SIMD path is vek32.Sub for the difference vector followed by
// vek32.Dot of that vector with itself; vek32.Distance is not used
// because it returns the Euclidean distance, square root included.
func Squared(a, b []float32) float32 {
	diff := vek32.Sub(a, b)
	return vek32.Dot(diff, diff)
}

// SquaredScalar is the reference (non-SIMD) implementation, kept for
// ulp-agreement testing against the SIMD kernel and as the distance
// function for the brute-force oracle.
func SquaredScalar(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
