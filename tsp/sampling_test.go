package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkade/evotsp/tsp"
)

func TestSampleIndexesDistinctAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	idx, err := tsp.SampleIndexes(2, 10, 5, rng)
	require.NoError(t, err)
	assert.Len(t, idx, 5)
	seen := map[int]bool{}
	for _, v := range idx {
		assert.GreaterOrEqual(t, v, 2)
		assert.Less(t, v, 10)
		assert.False(t, seen[v], "duplicate index %d", v)
		seen[v] = true
	}
}

func TestSampleIndexesFailsFastWhenKTooLarge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := tsp.SampleIndexes(0, 3, 4, rng)
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestSamplePairSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		a, b, err := tsp.SamplePair(0, 20, true, rng)
		require.NoError(t, err)
		assert.Less(t, a, b)
	}
}

func TestSampleProbabilitiesInUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	probs := tsp.SampleProbabilities(1000, rng)
	assert.Len(t, probs, 1000)
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.Less(t, p, 1.0)
	}
}

func TestSampleConstrainedWindowRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		a1, a2, err := tsp.SampleConstrainedWindow(1, 20, 2, 5, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, a1, 1)
		assert.LessOrEqual(t, a2, 20)
		assert.Less(t, a1, a2)
		delta := a2 - a1
		assert.GreaterOrEqual(t, delta, 2)
		assert.LessOrEqual(t, delta, 5)
	}
}

func TestWeightedSampleWithoutReplacementNoDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	weights := []float64{1, 2, 3, 4, 5}
	idx, err := tsp.WeightedSample(weights, 3, false, rng)
	require.NoError(t, err)
	assert.Len(t, idx, 3)
	seen := map[int]bool{}
	for _, v := range idx {
		assert.False(t, seen[v])
		seen[v] = true
	}
}

func TestWeightedSampleWithReplacementAllowsDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	weights := []float64{1, 0, 0, 0}
	idx, err := tsp.WeightedSample(weights, 5, true, rng)
	require.NoError(t, err)
	for _, v := range idx {
		assert.Equal(t, 0, v) // only weight-bearing index can be drawn
	}
}

func TestWeightedSampleRejectsZeroTotalWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := tsp.WeightedSample([]float64{0, 0, 0}, 2, true, rng)
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
