// Package tsp — cost utilities for the closed tour representation.
//
// A Tour of length n encodes a Hamiltonian cycle implicitly: the closing
// edge from perm[n-1] back to perm[0] is never stored, only implied. These
// helpers compute and stabilize that cost.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Defensive checks (Inf/NaN/negative) even though DistanceMatrix
//     implementations are expected to be pre-validated once at construction.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(n) time for a tour of length n, O(1) extra space.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// TourCost sums the closed-cycle cost of perm against dist: every
// consecutive pair perm[i]→perm[i+1] plus the closing edge
// perm[n-1]→perm[0].
//
// Contract:
//   - len(perm) must equal dist.Size() and perm must be a valid permutation
//     of [0, n).
//   - Returns ErrDimensionMismatch, ErrNegativeWeight on invalid input.
//
// Complexity: O(n).
func TourCost(dist DistanceMatrix, perm []int) (float64, error) {
	if dist == nil || perm == nil {
		return 0, ErrDimensionMismatch
	}
	n := dist.Size()
	if len(perm) != n || n < 2 {
		return 0, ErrDimensionMismatch
	}

	var sum float64
	for i := 0; i < n; i++ {
		u := perm[i]
		v := perm[(i+1)%n]
		w, err := edgeCost(dist, u, v)
		if err != nil {
			return 0, err
		}
		sum += w
	}
	return round1e9(sum), nil
}

// edgeCost fetches the weight for a single edge u–v with strict validation.
// Used by TourCost to keep sentinel semantics centralized.
//
// Complexity: O(1).
func edgeCost(dist DistanceMatrix, u, v int) (float64, error) {
	n := dist.Size()
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrDimensionMismatch
	}
	w, err := dist.At(u, v)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, ErrDimensionMismatch
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}
	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Keeps costs stable across platforms without affecting algorithmic correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
