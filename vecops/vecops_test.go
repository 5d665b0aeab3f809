// SPDX-License-Identifier: MIT

package vecops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultlens/vaultlens/vecops"
)

const tol = 1e-10

// TestNormalize_Basic checks the canonical [3,4] → [0.6,0.8] case and
// that already-unit vectors pass through.
func TestNormalize_Basic(t *testing.T) {
	out, err := vecops.Normalize([][]float64{{3, 4}, {1, 0}})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.InDelta(t, 0.6, out[0][0], tol)
	assert.InDelta(t, 0.8, out[0][1], tol)
	assert.InDelta(t, 1.0, out[1][0], tol)
	assert.InDelta(t, 0.0, out[1][1], tol)
}

// TestNormalize_UnitNorm verifies the unit-norm property on arbitrary
// nonzero vectors.
func TestNormalize_UnitNorm(t *testing.T) {
	out, err := vecops.Normalize([][]float64{
		{2, -7, 0.5},
		{1e-3, 1e-3, 1e-3},
		{-9, 0, 0},
	})
	require.NoError(t, err)

	for i, v := range out {
		norm := 0.0
		for _, x := range v {
			norm += x * x
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), tol, "vector %d must have unit norm", i)
	}
}

// TestNormalize_ZeroVector verifies fail-fast ErrZeroNorm with no
// partial output.
func TestNormalize_ZeroVector(t *testing.T) {
	out, err := vecops.Normalize([][]float64{{1, 1}, {0, 0}})
	assert.Nil(t, out, "no partial output on error")
	assert.ErrorIs(t, err, vecops.ErrZeroNorm)
}

// TestNormalize_EpsilonOverride verifies the configurable zero-norm
// cutoff: a tiny-but-nonzero vector fails under the default epsilon and
// succeeds under a smaller one.
func TestNormalize_EpsilonOverride(t *testing.T) {
	tiny := [][]float64{{1e-12, 0}}

	_, err := vecops.Normalize(tiny)
	assert.ErrorIs(t, err, vecops.ErrZeroNorm, "below DefaultZeroNormEps must fail")

	out, err := vecops.Normalize(tiny, vecops.WithZeroNormEps(1e-15))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[0][0], tol)
}

// TestNormalize_DoesNotMutateInput guards the copy semantics.
func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := [][]float64{{3, 4}}
	_, err := vecops.Normalize(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, in[0], "input must not be scaled in place")
}

// TestWithZeroNormEps_Panics documents programmer-error panics.
func TestWithZeroNormEps_Panics(t *testing.T) {
	assert.Panics(t, func() { vecops.WithZeroNormEps(-1) })
	assert.Panics(t, func() { vecops.WithZeroNormEps(math.NaN()) })
	assert.Panics(t, func() { vecops.WithZeroNormEps(math.Inf(1)) })
}

// TestEuclideanDistance_Known checks the canonical sqrt(27) scenario.
func TestEuclideanDistance_Known(t *testing.T) {
	d, err := vecops.EuclideanDistance([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 5.196152422706632, d, tol)
}

// TestEuclideanDistance_Properties verifies symmetry, non-negativity,
// and identity of indiscernibles.
func TestEuclideanDistance_Properties(t *testing.T) {
	a := []float64{1, -2, 0.5}
	b := []float64{-3, 4, 2}

	dab, err := vecops.EuclideanDistance(a, b)
	require.NoError(t, err)
	dba, err := vecops.EuclideanDistance(b, a)
	require.NoError(t, err)

	assert.Equal(t, dab, dba, "distance must be symmetric")
	assert.Positive(t, dab)

	daa, err := vecops.EuclideanDistance(a, a)
	require.NoError(t, err)
	assert.Zero(t, daa, "d(a,a) must be exactly zero")
}

// TestEuclideanDistance_Mismatch verifies the structured dimension error.
func TestEuclideanDistance_Mismatch(t *testing.T) {
	_, err := vecops.EuclideanDistance([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, vecops.ErrDimensionMismatch)

	var de *vecops.DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 3, de.Expected)
	assert.Equal(t, 2, de.Got)
}

// TestSameLength covers the shared validator used by reduce and cluster.
func TestSameLength(t *testing.T) {
	dim, err := vecops.SameLength([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, dim)

	_, err = vecops.SameLength(nil)
	assert.ErrorIs(t, err, vecops.ErrInsufficientData)

	var ide *vecops.InsufficientDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, 1, ide.Required)
	assert.Equal(t, 0, ide.Provided)

	_, err = vecops.SameLength([][]float64{{1, 2}, {3, 4}, {5}})
	var de *vecops.DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Expected)
	assert.Equal(t, 1, de.Got)
	assert.Equal(t, 2, de.Index, "error must name the first offending vector")
}
