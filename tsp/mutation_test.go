package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkade/evotsp/tsp"
)

func TestSwapNoOpWhenEqual(t *testing.T) {
	perm := []int{0, 1, 2, 3}
	require.NoError(t, tsp.Swap(perm, 2, 2))
	assert.Equal(t, []int{0, 1, 2, 3}, perm)
}

func TestInversionAtAdjacentEqualsSwap(t *testing.T) {
	a := []int{0, 1, 2, 3}
	b := []int{0, 1, 2, 3}
	require.NoError(t, tsp.InversionOp(a, 1, 2))
	require.NoError(t, tsp.Swap(b, 1, 2))
	assert.Equal(t, b, a)
}

func TestInversionExample(t *testing.T) {
	perm := []int{0, 1, 2, 3, 4, 5}
	require.NoError(t, tsp.InversionOp(perm, 1, 4))
	assert.Equal(t, []int{0, 4, 3, 2, 1, 5}, perm)
}

func TestInversionIsSelfInverse(t *testing.T) {
	perm := []int{0, 1, 2, 3, 4, 5}
	original := tsp.CopyTour(perm)
	require.NoError(t, tsp.InversionOp(perm, 1, 4))
	require.NoError(t, tsp.InversionOp(perm, 1, 4))
	assert.Equal(t, original, perm)
}

func TestRotationsAreMutualInverses(t *testing.T) {
	perm := []int{0, 1, 2, 3, 4, 5}
	original := tsp.CopyTour(perm)

	require.NoError(t, tsp.LeftRotationOp(perm, 1, 4))
	require.NoError(t, tsp.RightRotationOp(perm, 1, 4))
	assert.Equal(t, original, perm)

	require.NoError(t, tsp.RightRotationOp(perm, 1, 4))
	require.NoError(t, tsp.LeftRotationOp(perm, 1, 4))
	assert.Equal(t, original, perm)
}

func TestLeftRotationRequiresXLessThanY(t *testing.T) {
	perm := []int{0, 1, 2, 3}
	assert.ErrorIs(t, tsp.LeftRotationOp(perm, 2, 2), tsp.ErrDimensionMismatch)
	assert.ErrorIs(t, tsp.LeftRotationOp(perm, 3, 1), tsp.ErrDimensionMismatch)
}
