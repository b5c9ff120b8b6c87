// Package tsp - validation utilities for solver parameters and matrices.
//
// This file contains small, tight, well-documented helpers that:
//  1. Validate MetaHeuristicParams field combinations that only make sense
//     once every field is set (mu vs. lambda, tournament_k vs. mu).
//  2. Validate distance matrices (shape, diagonal, negativity, symmetry).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size; no hidden allocations.
package tsp

import "math"

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
const symTol = 1e-12

// validateParams checks internal consistency of MetaHeuristicParams that
// cannot be judged by a single Option constructor in isolation.
//
// Complexity: O(1).
func validateParams(p MetaHeuristicParams) error {
	if p.MutationProbability < 0 || p.MutationProbability > 1 {
		return ErrInvalidParams
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return ErrInvalidParams
	}
	if p.Mu <= 0 || p.Lambda <= 0 {
		return ErrInvalidParams
	}
	if p.Mu%2 != 0 || p.Lambda%2 != 0 {
		return ErrInvalidParams
	}
	if p.Lambda < p.Mu+1 {
		// The offspring pool must strictly outnumber the survivor pool for
		// (mu, lambda) replacement to have anything to choose from.
		return ErrInvalidParams
	}
	if p.TournamentK < 2 || p.TournamentK > p.Mu {
		return ErrInvalidParams
	}
	if p.MaxGenerations <= 0 || p.MaxGenerationsWithoutImprovement <= 0 {
		return ErrInvalidParams
	}
	return nil
}

// validateDistanceMatrix performs full matrix validation:
//   - non-nil, square, n>=2,
//   - diagonal ≈ 0 (|a_ii| ≤ tol), finite,
//   - no negative off-diagonal distances, no NaN/Inf,
//   - |a_ij − a_ji| ≤ tol (the solver is symmetric-only).
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistanceMatrix(dist DistanceMatrix) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	n := dist.Size()
	if n < 2 {
		return 0, ErrTooFewCities
	}

	for i := 0; i < n; i++ {
		aii, err := dist.At(i, i)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(aii) || math.IsInf(aii, 0) {
			return 0, ErrDimensionMismatch
		}
		if math.Abs(aii) > symTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, err := dist.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			aji, err := dist.At(j, i)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(aij) || math.IsNaN(aji) || math.IsInf(aij, 0) || math.IsInf(aji, 0) {
				return 0, ErrDimensionMismatch
			}
			if aij < 0 || aji < 0 {
				return 0, ErrNegativeWeight
			}
			if math.Abs(aij-aji) > symTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
