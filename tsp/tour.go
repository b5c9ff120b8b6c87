// Package tsp — the Tour type and permutation utilities.
//
// A Tour wraps a permutation of [0, N) together with the DistanceMatrix it
// was built against, and lazily memoizes its own cost. The permutation IS
// the tour: perm[i] and perm[(i+1)%n] are adjacent, including the wraparound
// edge perm[n-1]→perm[0]. The depot (city 0) is expected at position 0 for
// every individual that re-enters the population.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - Cost-changing mutating methods invalidate the memoized cost;
//     RotateToStart and Clone preserve it.
//   - O(n) time for most helpers; in-place mutations avoid extra allocations.
package tsp

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n <= 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// Tour is a permutation-encoded closed tour with a lazily-memoized cost.
type Tour struct {
	perm      []int
	dist      DistanceMatrix
	cost      float64
	costValid bool
}

// NewTour builds a Tour from perm against dist. perm is taken by reference,
// not copied; callers that need an independent permutation should CopyTour
// it first.
//
// Complexity: O(n) time for validation.
func NewTour(perm []int, dist DistanceMatrix) (*Tour, error) {
	if dist == nil {
		return nil, ErrDimensionMismatch
	}
	if err := ValidatePermutation(perm, dist.Size()); err != nil {
		return nil, err
	}
	return &Tour{perm: perm, dist: dist}, nil
}

// Len returns the number of cities in the tour.
func (t *Tour) Len() int { return len(t.perm) }

// At returns the city at position i.
func (t *Tour) At(i int) int { return t.perm[i] }

// Perm returns an independent copy of the underlying permutation.
//
// Complexity: O(n).
func (t *Tour) Perm() []int { return CopyTour(t.perm) }

// Raw exposes the underlying permutation slice without copying. Callers
// that mutate it directly must call InvalidateCost afterwards.
func (t *Tour) Raw() []int { return t.perm }

// Matrix returns the DistanceMatrix this tour was built against.
func (t *Tour) Matrix() DistanceMatrix { return t.dist }

// Cost returns the closed-cycle cost, computing and memoizing it on first
// access after construction or the last invalidating mutation.
//
// Complexity: O(1) amortized; O(n) on a cache miss.
func (t *Tour) Cost() (float64, error) {
	if t.costValid {
		return t.cost, nil
	}
	c, err := TourCost(t.dist, t.perm)
	if err != nil {
		return 0, err
	}
	t.cost = c
	t.costValid = true
	return c, nil
}

// InvalidateCost clears the memoized cost. Every cost-changing mutating
// method on Tour calls this (RotateToStart does not, since rotation keeps
// the cost); it is exported so operators that mutate Raw() directly can
// keep the invariant.
func (t *Tour) InvalidateCost() { t.costValid = false }

// Swap exchanges the cities at positions i and j and invalidates the cost.
//
// Complexity: O(1).
func (t *Tour) Swap(i, j int) error {
	n := len(t.perm)
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrDimensionMismatch
	}
	t.perm[i], t.perm[j] = t.perm[j], t.perm[i]
	t.InvalidateCost()
	return nil
}

// ReverseSegment reverses the inclusive segment perm[i..k] in place and
// invalidates the cost. This is the primitive behind inversion mutation and
// 2-opt-style local search moves.
//
// Complexity: O(k-i).
func (t *Tour) ReverseSegment(i, k int) error {
	if err := reverseArcInPlace(t.perm, i, k); err != nil {
		return err
	}
	t.InvalidateCost()
	return nil
}

// RotateToStart cyclically shifts the permutation in place so that start
// occupies position 0. The set of edges (and therefore the cost) is
// unchanged by rotation, so the memoized cost survives.
//
// Complexity: O(n) time, O(n) space for the rotation buffer.
func (t *Tour) RotateToStart(start int) error {
	n := len(t.perm)
	pivot := IndexOfStart(t.perm, start)
	if pivot == -1 {
		return ErrDimensionMismatch
	}
	if pivot == 0 {
		return nil
	}
	rotated := make([]int, n)
	for i := 0; i < n; i++ {
		rotated[i] = t.perm[(pivot+i)%n]
	}
	copy(t.perm, rotated)
	return nil
}

// Clone returns an independent Tour with a copied permutation. The memoized
// cost, if present, is carried over since cloning does not mutate anything.
//
// Complexity: O(n).
func (t *Tour) Clone() *Tour {
	return &Tour{
		perm:      CopyTour(t.perm),
		dist:      t.dist,
		cost:      t.cost,
		costValid: t.costValid,
	}
}

// String returns a compact printable representation, e.g. "[0 3 1 2]".
func (t *Tour) String() string { return DebugString(t.perm) }

// reverseArcInPlace reverses the inclusive segment perm[i..k] in place.
//
// Contracts: 0 ≤ i < k ≤ len(perm)-1.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(perm []int, i, k int) error {
	if i < 0 || k >= len(perm) || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		perm[i], perm[k] = perm[k], perm[i]
		i++
		k--
	}
	return nil
}

// IndexOfStart returns the index of the first occurrence of start within
// perm. Returns -1 if not found.
//
// Complexity: O(n).
func IndexOfStart(perm []int, start int) int {
	for i, v := range perm {
		if v == start {
			return i
		}
	}
	return -1
}

// CopyTour returns an independent copy of the input permutation.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(perm []int) []int {
	if perm == nil {
		return nil
	}
	out := make([]int, len(perm))
	copy(out, perm)
	return out
}

// EqualToursModuloRotation checks equality of two permutations under
// rotation, comparing in the same direction (no reflection).
//
// Complexity: O(n).
func EqualToursModuloRotation(a, b []int) bool {
	n := len(a)
	if n != len(b) || n == 0 {
		return false
	}
	p := IndexOfStart(b, a[0])
	if p == -1 {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}
	return true
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2]".
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(perm []int) string {
	s := "["
	for i, v := range perm {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", v)
	}
	return s + "]"
}
