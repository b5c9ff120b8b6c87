// Package geo — DistanceMatrix construction from a parsed Instance.
package geo

import (
	"github.com/varkade/evotsp/matrix"
	"github.com/varkade/evotsp/tsp"
)

// Matrix adapts a matrix.Dense symmetric distance table to tsp.DistanceMatrix.
type Matrix struct {
	dense *matrix.Dense
	n     int
}

// NewMatrix builds the full symmetric distance table for inst's points
// under inst's EdgeWeightType: the upper triangle is computed once and
// mirrored, exactly as the reference DistanceMatrix does.
//
// Complexity: O(n^2).
func NewMatrix(inst *Instance) (*Matrix, error) {
	n := inst.Dimension
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := Distance(inst.EdgeWeightType, inst.Points[i], inst.Points[j])
			if err != nil {
				return nil, err
			}
			if err := dense.Set(i, j, d); err != nil {
				return nil, err
			}
			if err := dense.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}
	return &Matrix{dense: dense, n: n}, nil
}

// At returns the distance between i and j, or tsp.ErrDimensionMismatch for
// out-of-range indices.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, tsp.ErrDimensionMismatch
	}
	return m.dense.At(i, j)
}

// Size returns the number of cities.
func (m *Matrix) Size() int { return m.n }

// TwoFarthestVertices returns any pair (i, j) maximizing At(i, j) over the
// strict upper triangle.
//
// Complexity: O(n^2).
func (m *Matrix) TwoFarthestVertices() (int, int, error) {
	if m.n < 2 {
		return 0, 0, tsp.ErrTooFewCities
	}
	bestI, bestJ := 0, 1
	bestD, err := m.dense.At(0, 1)
	if err != nil {
		return 0, 0, err
	}
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			d, err := m.dense.At(i, j)
			if err != nil {
				return 0, 0, err
			}
			if d > bestD {
				bestD, bestI, bestJ = d, i, j
			}
		}
	}
	return bestI, bestJ, nil
}
