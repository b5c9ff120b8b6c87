package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclideanDistance(t *testing.T) {
	d, err := Distance(EUC2D, Point{X: 0, Y: 0}, Point{X: 3, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)
}

func TestEuclideanDistanceRounds(t *testing.T) {
	d, err := Distance(EUC2D, Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, d) // sqrt(2) ~= 1.41 rounds to 1
}

func TestGeodesicSymmetric(t *testing.T) {
	a := Point{X: 38.24, Y: 20.42}
	b := Point{X: 39.57, Y: 26.15}
	dab, err := Distance(GEO, a, b)
	require.NoError(t, err)
	dba, err := Distance(GEO, b, a)
	require.NoError(t, err)
	assert.Equal(t, dab, dba)
	assert.Greater(t, dab, 0.0)
}

func TestGeodesicSamePointIsOne(t *testing.T) {
	// The TSPLIB GEO formula's +1 truncation offset means coincident points
	// report distance 1, not 0 — acos(1) collapses the great-circle term.
	a := Point{X: 38.24, Y: 20.42}
	d, err := Distance(GEO, a, a)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}
