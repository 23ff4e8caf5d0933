package filtermargin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnystrom/eppp-go/filtermargin"
)

func TestTransitionRatio_Doubling(t *testing.T) {
	ratio, err := filtermargin.TransitionRatio(1000, 2000)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, ratio, 1e-9)
}

func TestTransitionRatio_RejectsNonPositive(t *testing.T) {
	_, err := filtermargin.TransitionRatio(0, 2000)
	assert.ErrorIs(t, err, filtermargin.ErrNonPositive)
}

func TestTransitionRatio_RejectsInvertedEdges(t *testing.T) {
	_, err := filtermargin.TransitionRatio(2000, 1000)
	assert.ErrorIs(t, err, filtermargin.ErrInvalidEdges)
}

func TestMarginOctaves_Doubling(t *testing.T) {
	octaves, err := filtermargin.MarginOctaves(1000, 2000)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, octaves, 1e-9)
}

func TestButterworthOrder_OneOctaveMargin(t *testing.T) {
	n, err := filtermargin.ButterworthOrder(1000, 2000, 1, 40)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestChebyshevOrder_SameSpecNeedsFewerOrders(t *testing.T) {
	butterworth, err := filtermargin.ButterworthOrder(1000, 2000, 1, 40)
	require.NoError(t, err)

	chebyshev, err := filtermargin.ChebyshevOrder(1000, 2000, 1, 40)
	require.NoError(t, err)

	assert.Equal(t, 5, chebyshev)
	assert.Less(t, chebyshev, butterworth)
}

func TestButterworthOrder_WiderMarginNeedsFewerOrders(t *testing.T) {
	narrow, err := filtermargin.ButterworthOrder(1000, 2000, 1, 40)
	require.NoError(t, err)

	wide, err := filtermargin.ButterworthOrder(1000, 8000, 1, 40)
	require.NoError(t, err)

	assert.Less(t, wide, narrow)
}

func TestButterworthOrder_RejectsInvalidSpec(t *testing.T) {
	_, err := filtermargin.ButterworthOrder(1000, 2000, 40, 1)
	assert.ErrorIs(t, err, filtermargin.ErrInvalidSpec)
}

func TestChebyshevOrder_RejectsInvalidSpec(t *testing.T) {
	_, err := filtermargin.ChebyshevOrder(1000, 2000, 40, 1)
	assert.ErrorIs(t, err, filtermargin.ErrInvalidSpec)
}

func TestButterworthOrder_RejectsNonPositive(t *testing.T) {
	_, err := filtermargin.ButterworthOrder(0, 2000, 1, 40)
	assert.ErrorIs(t, err, filtermargin.ErrNonPositive)
}
