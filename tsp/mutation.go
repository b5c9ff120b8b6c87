// Package tsp — permutation mutation operators and the per-offspring
// mutation procedure.
package tsp

import "math/rand"

// Swap exchanges the cities at positions x and y. A no-op when x == y.
//
// Complexity: O(1).
func Swap(perm []int, x, y int) error {
	if x < 0 || x >= len(perm) || y < 0 || y >= len(perm) {
		return ErrDimensionMismatch
	}
	perm[x], perm[y] = perm[y], perm[x]
	return nil
}

// LeftRotationOp left-rotates the subrange [x, y] by one position:
// perm[x..y-1] <- perm[x+1..y]; perm[y] <- old perm[x]. Requires x < y.
//
// Complexity: O(y-x).
func LeftRotationOp(perm []int, x, y int) error {
	if x < 0 || y >= len(perm) || x >= y {
		return ErrDimensionMismatch
	}
	left := perm[x]
	copy(perm[x:y], perm[x+1:y+1])
	perm[y] = left
	return nil
}

// RightRotationOp right-rotates the subrange [x, y] by one position, the
// mirror of LeftRotationOp. Requires x < y.
//
// Complexity: O(y-x).
func RightRotationOp(perm []int, x, y int) error {
	if x < 0 || y >= len(perm) || x >= y {
		return ErrDimensionMismatch
	}
	right := perm[y]
	copy(perm[x+1:y+1], perm[x:y])
	perm[x] = right
	return nil
}

// InversionOp reverses the subrange [x, y] in place — the 2-opt move.
//
// Complexity: O(y-x).
func InversionOp(perm []int, x, y int) error {
	return reverseArcInPlace(perm, x, y)
}

// applyMutationOperator dispatches to the operator selected by op, sorting
// (x, y) first when the operator requires x < y.
func applyMutationOperator(op MutationOperator, perm []int, x, y int) error {
	if x > y {
		x, y = y, x
	}
	switch op {
	case SwapOperator:
		return Swap(perm, x, y)
	case LeftRotation:
		return LeftRotationOp(perm, x, y)
	case RightRotation:
		return RightRotationOp(perm, x, y)
	case Inversion:
		return InversionOp(perm, x, y)
	default:
		return ErrInvalidParams
	}
}

// mutateOffspring applies the per-offspring mutation procedure to t in
// place: draw N-1 independent uniforms (one per position starting at index
// 1, keeping the depot fixed), collect the positions whose draws are <=
// mutationProbability, drop the last one if the count is odd, then apply op
// to every consecutive pair.
//
// Complexity: O(n) to draw and scan, plus O(n) worst case per applied pair.
func mutateOffspring(t *Tour, op MutationOperator, mutationProbability float64, rng *rand.Rand) error {
	n := t.Len()
	if n < 2 {
		return nil
	}
	probs := SampleProbabilities(n-1, rng)

	positions := make([]int, 0, n-1)
	for i, p := range probs {
		if p <= mutationProbability {
			positions = append(positions, i+1)
		}
	}
	if len(positions)%2 != 0 {
		positions = positions[:len(positions)-1]
	}

	perm := t.Raw()
	for i := 0; i+1 < len(positions); i += 2 {
		if err := applyMutationOperator(op, perm, positions[i], positions[i+1]); err != nil {
			return err
		}
	}
	if len(positions) > 0 {
		t.InvalidateCost()
	}
	return nil
}
