// Package tsp — variable-neighborhood local search.
//
// Both modes scan index pairs (i, j) within some range, generate the four
// mutation-operator neighbors at (i, j), and replace the tour in place with
// the cheapest neighbor whenever it improves on the current cost. The
// windowed mode restricts the range to a randomly sampled sub-window so a
// single pass over a large population stays bounded.
package tsp

import (
	"math"
	"math/rand"
)

// neighborOperators lists the four operators tried at every candidate pair.
var neighborOperators = [4]MutationOperator{SwapOperator, LeftRotation, RightRotation, Inversion}

// improveTourInRange runs one descent pass over all pairs (i, j) with
// lo <= i < j <= hi: at each pair in turn, t's permutation is replaced by
// the cheapest of that pair's four neighbors whenever it improves on the
// current cost. Returns true if t was improved.
//
// Complexity: O((hi-lo)^2) candidate pairs, each evaluated by applying an
// operator to a scratch copy and recomputing cost in O(n); acceptable for
// the moderate instance sizes this solver targets.
func improveTourInRange(t *Tour, lo, hi int) (bool, error) {
	improved := false
	currentCost, err := t.Cost()
	if err != nil {
		return false, err
	}

	for i := lo; i < hi; i++ {
		for j := i + 1; j <= hi; j++ {
			bestCost := currentCost
			var bestPerm []int

			for _, op := range neighborOperators {
				if (op == LeftRotation || op == RightRotation) && i >= j {
					continue
				}
				candidate := CopyTour(t.Raw())
				if err := applyMutationOperator(op, candidate, i, j); err != nil {
					continue
				}
				c, err := TourCost(t.Matrix(), candidate)
				if err != nil {
					continue
				}
				if c < bestCost {
					bestCost = c
					bestPerm = candidate
				}
			}

			if bestPerm != nil {
				copy(t.Raw(), bestPerm)
				t.InvalidateCost()
				currentCost = bestCost
				improved = true
			}
		}
	}
	return improved, nil
}

// ExhaustiveLocalSearchPass runs a full O(N) x O(N) neighborhood descent
// over t: every index pair (i, j) with 0 <= i < j < N is tried. Pairs
// anchored at i==0 can move the depot city off position 0, so the tour is
// rotated back to depot-0 before returning, restoring the invariant every
// individual must satisfy on re-entering the population.
func ExhaustiveLocalSearchPass(t *Tour) (bool, error) {
	n := t.Len()
	if n < 3 {
		return false, nil
	}
	improved, err := improveTourInRange(t, 0, n-1)
	if err != nil {
		return false, err
	}
	if err := t.RotateToStart(0); err != nil {
		return false, err
	}
	return improved, nil
}

// WindowedLocalSearchPass samples a bounded window (lb, ub) within [1, N-1]
// via L = log2(2N/5), delta_min = floor(L), delta_max = floor(3.5*L), and
// runs the same descent as ExhaustiveLocalSearchPass restricted to
// lb <= i < j <= ub. The window already excludes position 0, but the
// depot is rotated back to position 0 regardless, matching
// ExhaustiveLocalSearchPass and keeping the invariant enforced in one
// place rather than relying on the window bounds alone.
func WindowedLocalSearchPass(t *Tour, rng *rand.Rand) (bool, error) {
	n := t.Len()
	if n < 4 {
		return false, nil
	}
	l := math.Log2(2 * float64(n) / 5)
	deltaMin := maxInt(int(math.Floor(l)), 0)
	deltaMax := maxInt(int(math.Floor(3.5*l)), deltaMin)

	lb, ub, err := SampleConstrainedWindow(1, n-1, deltaMin, deltaMax, rng)
	if err != nil {
		return false, err
	}
	improved, err := improveTourInRange(t, lb, ub)
	if err != nil {
		return false, err
	}
	if err := t.RotateToStart(0); err != nil {
		return false, err
	}
	return improved, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
