// Package tsp — order crossover (OX) and the recombination gate.
package tsp

import "math/rand"

// orderCrossoverChild builds one OX offspring: positions [x, y] are copied
// verbatim from keep; the remaining positions are filled, in order, by
// scanning source cyclically starting at rotFrom, skipping values already
// placed. rotFrom is the position right after whichever cut governs the
// *source* parent's contribution — for single-cut OX that is the shared
// cut's end, for two-cut OX it is the other parent's own cut end.
//
// Complexity: O(n).
func orderCrossoverChild(keep []int, x, y int, source []int, rotFrom int) []int {
	n := len(keep)
	offspring := make([]int, n)
	copy(offspring, keep)

	placed := make([]bool, n)
	for i := x; i <= y; i++ {
		placed[keep[i]] = true
	}

	rotated := make([]int, 0, n)
	rotated = append(rotated, source[rotFrom:]...)
	rotated = append(rotated, source[:rotFrom]...)

	pos := 0
	fill := func(idx int) {
		for placed[rotated[pos]] {
			pos++
		}
		offspring[idx] = rotated[pos]
		placed[rotated[pos]] = true
		pos++
	}
	for idx := 0; idx < x; idx++ {
		fill(idx)
	}
	for idx := y + 1; idx < n; idx++ {
		fill(idx)
	}
	return offspring
}

// OrderCrossoverSingleCut implements the single-cut OX variant: one sorted
// cut (x, y) shared by both offspring, each filled from the other parent
// cyclically starting right after the cut.
//
// Complexity: O(n).
func OrderCrossoverSingleCut(parent1, parent2 []int, x, y int) ([]int, []int) {
	child1 := orderCrossoverChild(parent1, x, y, parent2, y+1)
	child2 := orderCrossoverChild(parent2, x, y, parent1, y+1)
	return child1, child2
}

// OrderCrossoverTwoCut implements the two-cut OX variant: offspring 1 keeps
// cut (x, y) from parent 1 and is filled from parent 2 cyclically starting
// right after parent 2's own cut (w, z); offspring 2 keeps cut (w, z) from
// parent 2 and is filled from parent 1 starting right after (x, y). Each
// child's fill rotation point comes from the *other* parent's cut, not its
// own.
//
// Complexity: O(n).
func OrderCrossoverTwoCut(parent1, parent2 []int, x, y, w, z int) ([]int, []int) {
	child1 := orderCrossoverChild(parent1, x, y, parent2, z+1)
	child2 := orderCrossoverChild(parent2, w, z, parent1, y+1)
	return child1, child2
}

// crossoverPermutations produces two offspring permutations from two parent
// permutations of length n according to variant.
//
// Complexity: O(n).
func crossoverPermutations(parent1, parent2 []int, variant CrossoverVariant, rng *rand.Rand) ([]int, []int, error) {
	n := len(parent1)
	if n != len(parent2) {
		return nil, nil, ErrDimensionMismatch
	}

	switch variant {
	case SingleCutOrderCrossover:
		x, y, err := SamplePair(0, n, true, rng)
		if err != nil {
			return nil, nil, err
		}
		c1, c2 := OrderCrossoverSingleCut(parent1, parent2, x, y)
		return c1, c2, nil
	case TwoCutOrderCrossover:
		x, y, err := SamplePair(0, n, true, rng)
		if err != nil {
			return nil, nil, err
		}
		w, z, err := SamplePair(0, n, true, rng)
		if err != nil {
			return nil, nil, err
		}
		c1, c2 := OrderCrossoverTwoCut(parent1, parent2, x, y, w, z)
		return c1, c2, nil
	default:
		return nil, nil, ErrInvalidParams
	}
}

// sequentialCrossover pairs up the mating pool sequentially — (0,1), (2,3),
// and so on — and runs recombinePair over each pair, flattening the
// resulting offspring into a single slice. A trailing unpaired parent (odd
// mating pool size) is carried through as a clone of itself.
//
// Complexity: O(len(mating)*n).
func sequentialCrossover(mating []*Tour, variant CrossoverVariant, crossoverRate float64, rng *rand.Rand) ([]*Tour, error) {
	offspring := make([]*Tour, 0, len(mating))
	i := 0
	for ; i+1 < len(mating); i += 2 {
		child1, child2, err := recombinePair(mating[i], mating[i+1], variant, crossoverRate, rng)
		if err != nil {
			return nil, err
		}
		offspring = append(offspring, child1, child2)
	}
	if i < len(mating) {
		offspring = append(offspring, mating[i].Clone())
	}
	return offspring, nil
}

// recombinePair applies the crossover gate to one consecutive pair of the
// mating pool: draw u in [0,1); if u >= crossoverRate, recombine via OX and
// rotate both offspring so city 0 sits at position 0, otherwise clone both
// parents unchanged.
//
// The gate polarity (u >= crossoverRate triggers recombination) mirrors the
// reference metaheuristic verbatim; a crossoverRate near 1 therefore
// suppresses recombination almost entirely.
//
// Complexity: O(n).
func recombinePair(parent1, parent2 *Tour, variant CrossoverVariant, crossoverRate float64, rng *rand.Rand) (*Tour, *Tour, error) {
	u := rng.Float64()
	if u < crossoverRate {
		return parent1.Clone(), parent2.Clone(), nil
	}

	c1, c2, err := crossoverPermutations(parent1.Raw(), parent2.Raw(), variant, rng)
	if err != nil {
		return nil, nil, err
	}

	dist := parent1.Matrix()
	child1, err := NewTour(c1, dist)
	if err != nil {
		return nil, nil, err
	}
	child2, err := NewTour(c2, dist)
	if err != nil {
		return nil, nil, err
	}
	if err := child1.RotateToStart(0); err != nil {
		return nil, nil, err
	}
	if err := child2.RotateToStart(0); err != nil {
		return nil, nil, err
	}
	child1.InvalidateCost()
	child2.InvalidateCost()
	return child1, child2, nil
}
