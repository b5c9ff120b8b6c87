// Package tsp — farthest-insertion constructive heuristic.
//
// Produces a Hamiltonian tour that seeds the initial population: start from
// the two farthest cities, then repeatedly insert the remaining city with
// the largest minimum distance to the current partial tour, at whichever
// position minimizes the resulting closed-circuit cost.
package tsp

import "math"

// FarthestInsertion builds a seed Tour over dist using the farthest-
// insertion heuristic, cyclically shifted so city 0 occupies position 0.
//
// Complexity: O(n^2) time, O(n) space.
func FarthestInsertion(dist DistanceMatrix) (*Tour, error) {
	n := dist.Size()
	if n < 2 {
		return nil, ErrTooFewCities
	}

	i, j, err := dist.TwoFarthestVertices()
	if err != nil {
		return nil, err
	}

	circuit := make([]int, 0, n)
	circuit = append(circuit, i, j)

	inCircuit := make([]bool, n)
	inCircuit[i], inCircuit[j] = true, true

	// minDist[r] holds the current minimum distance from r to the partial
	// circuit, or -1 once r has been inserted. Indexed by city, not a map,
	// so ties are broken deterministically by ascending city index rather
	// than by Go's randomized map iteration order.
	minDist := make([]float64, n)
	remaining := 0
	for r := 0; r < n; r++ {
		if inCircuit[r] {
			minDist[r] = -1
			continue
		}
		di, err := dist.At(r, i)
		if err != nil {
			return nil, err
		}
		dj, err := dist.At(r, j)
		if err != nil {
			return nil, err
		}
		minDist[r] = math.Min(di, dj)
		remaining++
	}

	for remaining > 0 {
		r := argmaxMinDist(minDist)
		minDist[r] = -1
		remaining--
		inCircuit[r] = true

		pos, err := bestInsertionPosition(circuit, r, dist)
		if err != nil {
			return nil, err
		}
		circuit = insertAt(circuit, pos, r)

		for other := 0; other < n; other++ {
			if inCircuit[other] {
				continue
			}
			dr, err := dist.At(other, r)
			if err != nil {
				return nil, err
			}
			if dr < minDist[other] {
				minDist[other] = dr
			}
		}
	}

	tour, err := NewTour(circuit, dist)
	if err != nil {
		return nil, err
	}
	if err := tour.RotateToStart(0); err != nil {
		return nil, err
	}
	return tour, nil
}

// argmaxMinDist returns the city index with the largest value in minDist,
// skipping entries marked -1 (already inserted). Ties are broken by
// ascending index, keeping the heuristic deterministic for a given matrix.
func argmaxMinDist(minDist []float64) int {
	best := -1
	var bestVal float64
	for k, v := range minDist {
		if v < 0 {
			continue
		}
		if best == -1 || v > bestVal {
			best, bestVal = k, v
		}
	}
	return best
}

// bestInsertionPosition finds the arc (circuit[pos], circuit[pos+1 mod n])
// whose replacement by (circuit[pos], r, circuit[pos+1 mod n]) minimizes the
// increase in total closed-circuit cost, and returns the index at which r
// should be inserted (i.e. pos+1).
func bestInsertionPosition(circuit []int, r int, dist DistanceMatrix) (int, error) {
	n := len(circuit)
	bestPos := -1
	var bestDelta float64
	for pos := 0; pos < n; pos++ {
		prev := circuit[pos]
		next := circuit[(pos+1)%n]
		dPrevR, err := dist.At(prev, r)
		if err != nil {
			return 0, err
		}
		dRNext, err := dist.At(r, next)
		if err != nil {
			return 0, err
		}
		dPrevNext, err := dist.At(prev, next)
		if err != nil {
			return 0, err
		}
		delta := dPrevR + dRNext - dPrevNext
		if bestPos == -1 || delta < bestDelta {
			bestPos, bestDelta = pos, delta
		}
	}
	return bestPos + 1, nil
}

// insertAt inserts v at index pos in perm (pos may equal len(perm)).
func insertAt(perm []int, pos, v int) []int {
	perm = append(perm, 0)
	copy(perm[pos+1:], perm[pos:len(perm)-1])
	perm[pos] = v
	return perm
}
