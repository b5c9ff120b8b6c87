package tsp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkade/evotsp/tsp"
)

func TestSolverOnSquareFindsOptimalCost(t *testing.T) {
	params := tsp.DefaultParams(
		tsp.WithMu(8),
		tsp.WithLambda(12),
		tsp.WithTournamentK(4),
		tsp.WithMaxGenerations(10),
		tsp.WithMaxGenerationsWithoutImprovement(10),
		tsp.WithSeed(42),
	)
	solver, err := tsp.NewSolver(squareMatrix(), params)
	require.NoError(t, err)

	result, err := solver.Run()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, result.Cost, 1e-9)
	assert.False(t, result.WasInterrupted)
	assert.GreaterOrEqual(t, result.Generations, 1)
}

func TestSolverOnColinearFindsOptimalCost(t *testing.T) {
	params := tsp.DefaultParams(
		tsp.WithMu(8),
		tsp.WithLambda(12),
		tsp.WithTournamentK(4),
		tsp.WithMaxGenerations(20),
		tsp.WithMaxGenerationsWithoutImprovement(20),
		tsp.WithSeed(7),
	)
	solver, err := tsp.NewSolver(colinearMatrix(), params)
	require.NoError(t, err)

	result, err := solver.Run()
	require.NoError(t, err)
	assert.InDelta(t, 8.0, result.Cost, 1e-9)
}

func TestSolverBestCostIsMonotoneAcrossGenerations(t *testing.T) {
	params := tsp.DefaultParams(
		tsp.WithMu(10),
		tsp.WithLambda(16),
		tsp.WithTournamentK(4),
		tsp.WithMaxGenerations(1),
		tsp.WithMaxGenerationsWithoutImprovement(1),
		tsp.WithSeed(3),
	)

	prevCost := -1.0
	for gen := 1; gen <= 25; gen++ {
		p := params
		p.MaxGenerations = gen
		p.MaxGenerationsWithoutImprovement = gen + 1
		solver, err := tsp.NewSolver(colinearMatrix(), p)
		require.NoError(t, err)
		result, err := solver.Run()
		require.NoError(t, err)
		if prevCost >= 0 {
			assert.LessOrEqual(t, result.Cost, prevCost+1e-9)
		}
		prevCost = result.Cost
	}
}

func TestSolverRunWithContextHonorsCancellation(t *testing.T) {
	params := tsp.DefaultParams(
		tsp.WithMu(40),
		tsp.WithLambda(60),
		tsp.WithTournamentK(13),
		tsp.WithMaxGenerations(1_000_000),
		tsp.WithMaxGenerationsWithoutImprovement(1_000_000),
		tsp.WithSeed(1),
	)
	solver, err := tsp.NewSolver(colinearMatrix(), params)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result, err := solver.RunWithContext(ctx)
	require.NoError(t, err)
	assert.True(t, result.WasInterrupted)
	assert.NotEmpty(t, result.Tour)
}
