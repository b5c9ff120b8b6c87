package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/varkade/evotsp/tsp"
)

func TestNewSolverRejectsOddMu(t *testing.T) {
	params := tsp.DefaultParams(tsp.WithMu(41))
	_, err := tsp.NewSolver(squareMatrix(), params)
	assert.ErrorIs(t, err, tsp.ErrInvalidParams)
}

func TestNewSolverRejectsLambdaNotStrictlyGreaterThanMu(t *testing.T) {
	params := tsp.DefaultParams(tsp.WithMu(10), tsp.WithLambda(10))
	_, err := tsp.NewSolver(squareMatrix(), params)
	assert.ErrorIs(t, err, tsp.ErrInvalidParams)
}

func TestNewSolverRejectsTournamentKAboveMu(t *testing.T) {
	params := tsp.DefaultParams(tsp.WithMu(4), tsp.WithLambda(6), tsp.WithTournamentK(4))
	_, err := tsp.NewSolver(squareMatrix(), params)
	assert.NoError(t, err) // k == mu is allowed

	params2 := tsp.DefaultParams(tsp.WithMu(4), tsp.WithLambda(6))
	params2.TournamentK = 5
	_, err = tsp.NewSolver(squareMatrix(), params2)
	assert.ErrorIs(t, err, tsp.ErrInvalidParams)
}

func TestNewSolverRejectsMatrixTooSmall(t *testing.T) {
	dist := newDenseMatrix([][]float64{{0}})
	_, err := tsp.NewSolver(dist, tsp.DefaultParams())
	assert.ErrorIs(t, err, tsp.ErrTooFewCities)
}

func TestNewSolverRejectsAsymmetricMatrix(t *testing.T) {
	dist := newDenseMatrix([][]float64{
		{0, 1, 2},
		{1, 0, 2},
		{2, 3, 0}, // asymmetric with [2][1]
	})
	_, err := tsp.NewSolver(dist, tsp.DefaultParams(tsp.WithMu(2), tsp.WithLambda(4), tsp.WithTournamentK(2)))
	assert.ErrorIs(t, err, tsp.ErrAsymmetry)
}

func TestNewSolverRejectsNonZeroDiagonal(t *testing.T) {
	dist := newDenseMatrix([][]float64{
		{1, 1, 2},
		{1, 0, 2},
		{2, 2, 0},
	})
	_, err := tsp.NewSolver(dist, tsp.DefaultParams(tsp.WithMu(2), tsp.WithLambda(4), tsp.WithTournamentK(2)))
	assert.ErrorIs(t, err, tsp.ErrNonZeroDiagonal)
}
