// Package tsp implements a steady-state evolutionary solver for the
// symmetric Traveling Salesman Problem over permutation-encoded tours.
//
// The package owns the hard parts of the search: population management,
// parent selection, order-based recombination, mutation, neighborhood local
// search, generational replacement with elitism, and cooperative
// time-bounded termination. It consumes a DistanceMatrix built by an
// external collaborator (see package geo) and never parses instance files,
// reads CLI flags, or reports results — those are the caller's job.
package tsp

import "errors"

// Sentinel errors returned by the tsp package. Callers branch on these with
// errors.Is; none of them are ever wrapped with message-only fmt.Errorf.
var (
	// ErrDimensionMismatch indicates a permutation/tour of the wrong length,
	// with out-of-range or duplicate entries, or a matrix of the wrong shape.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare signals a distance matrix that is not n×n.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNegativeWeight signals a negative entry in the distance matrix.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrStartOutOfRange signals a start/depot vertex outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrMatrixMismatch signals an operation mixing tours built against two
	// different DistanceMatrix instances.
	ErrMatrixMismatch = errors.New("tsp: tour and matrix disagree on size")

	// ErrInvalidParams signals a MetaHeuristicParams combination rejected at
	// construction time (mu/lambda parity, tournament_k range, probabilities
	// out of [0,1], non-positive generation caps).
	ErrInvalidParams = errors.New("tsp: invalid solver parameters")

	// ErrTooFewCities signals n < 2, too small for a non-trivial tour.
	ErrTooFewCities = errors.New("tsp: fewer than 2 cities")

	// ErrNonZeroDiagonal signals a distance matrix whose diagonal is not ~0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal")

	// ErrAsymmetry signals a distance matrix that is not symmetric within
	// tolerance; the solver is defined only over symmetric instances.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")
)

// DistanceMatrix is the core's read-only view of a complete, symmetric,
// nonnegative weighted graph over [0, Size()). It is constructed once by an
// external collaborator (package geo) before the solver starts and must
// outlive every Tour built against it.
type DistanceMatrix interface {
	// At returns the distance between i and j. Implementations must return
	// ErrDimensionMismatch for out-of-range indices.
	At(i, j int) (float64, error)

	// Size returns N, the number of cities.
	Size() int

	// TwoFarthestVertices returns any pair (i, j) maximizing At(i, j) over
	// the strict upper triangle.
	TwoFarthestVertices() (int, int, error)
}

// Result holds the outcome of a solver run.
type Result struct {
	// Tour is a permutation of [0, N) with Tour[0] == 0 (the depot).
	Tour []int

	// Cost is the closed-circuit cost of Tour.
	Cost float64

	// Generations is the number of generations actually run.
	Generations int

	// WasInterrupted is true iff the cooperative stop flag tripped before
	// should_continue() would otherwise have returned false.
	WasInterrupted bool
}
