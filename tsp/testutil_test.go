package tsp_test

import "github.com/varkade/evotsp/tsp"

// denseMatrix is a minimal tsp.DistanceMatrix test double backed by a plain
// [][]float64, avoiding any dependency on the geo package (which itself
// depends on tsp) from these tests.
type denseMatrix struct {
	rows [][]float64
}

func newDenseMatrix(rows [][]float64) *denseMatrix {
	return &denseMatrix{rows: rows}
}

func (m *denseMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.rows) {
		return 0, tsp.ErrDimensionMismatch
	}
	return m.rows[i][j], nil
}

func (m *denseMatrix) Size() int { return len(m.rows) }

func (m *denseMatrix) TwoFarthestVertices() (int, int, error) {
	n := len(m.rows)
	if n < 2 {
		return 0, 0, tsp.ErrTooFewCities
	}
	bestI, bestJ, bestD := 0, 1, m.rows[0][1]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.rows[i][j] > bestD {
				bestI, bestJ, bestD = i, j, m.rows[i][j]
			}
		}
	}
	return bestI, bestJ, nil
}

// squareMatrix returns the 4-city unit-square distance matrix used by
// spec-derived tests: cities 0,1,2,3 at the corners (0,0),(0,1),(1,1),(1,0).
func squareMatrix() *denseMatrix {
	return newDenseMatrix([][]float64{
		{0, 1, sqrt2, 1},
		{1, 0, 1, sqrt2},
		{sqrt2, 1, 0, 1},
		{1, sqrt2, 1, 0},
	})
}

const sqrt2 = 1.4142135623730951
