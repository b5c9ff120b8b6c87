package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkade/evotsp/tsp"
)

func TestExhaustiveLocalSearchImprovesBadTour(t *testing.T) {
	dist := squareMatrix()
	tour, err := tsp.NewTour([]int{0, 2, 1, 3}, dist) // crosses diagonals: cost = 2*sqrt2 + 2
	require.NoError(t, err)
	before, err := tour.Cost()
	require.NoError(t, err)

	improved, err := tsp.ExhaustiveLocalSearchPass(tour)
	require.NoError(t, err)
	assert.True(t, improved)

	after, err := tour.Cost()
	require.NoError(t, err)
	assert.Less(t, after, before)
	assert.InDelta(t, 4.0, after, 1e-9)
}

func TestExhaustiveLocalSearchNoOpOnOptimalTour(t *testing.T) {
	dist := squareMatrix()
	tour, err := tsp.NewTour([]int{0, 1, 2, 3}, dist)
	require.NoError(t, err)
	improved, err := tsp.ExhaustiveLocalSearchPass(tour)
	require.NoError(t, err)
	assert.False(t, improved)
}

func TestWindowedLocalSearchNeverWorsensTour(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	dist := squareMatrix()
	tour, err := tsp.NewTour([]int{0, 2, 1, 3}, dist)
	require.NoError(t, err)
	before, err := tour.Cost()
	require.NoError(t, err)

	_, err = tsp.WindowedLocalSearchPass(tour, rng)
	require.NoError(t, err)

	after, err := tour.Cost()
	require.NoError(t, err)
	assert.LessOrEqual(t, after, before)
}

func TestExhaustiveLocalSearchKeepsDepotAtPositionZero(t *testing.T) {
	dist := squareMatrix()
	tour, err := tsp.NewTour([]int{0, 2, 1, 3}, dist)
	require.NoError(t, err)

	_, err = tsp.ExhaustiveLocalSearchPass(tour)
	require.NoError(t, err)

	assert.Equal(t, 0, tour.At(0))
	require.NoError(t, tsp.ValidatePermutation(tour.Raw(), 4))
}

func TestWindowedLocalSearchKeepsDepotAtPositionZero(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	dist := squareMatrix()
	tour, err := tsp.NewTour([]int{0, 2, 1, 3}, dist)
	require.NoError(t, err)

	_, err = tsp.WindowedLocalSearchPass(tour, rng)
	require.NoError(t, err)

	assert.Equal(t, 0, tour.At(0))
	require.NoError(t, tsp.ValidatePermutation(tour.Raw(), 4))
}
