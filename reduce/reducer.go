// SPDX-License-Identifier: MIT

package reduce

// Reducer is the dimensionality-reduction capability: project a set of
// equal-length dense vectors onto targetDims dimensions.
//
// Implementations must be pure (no retained state across calls, safe for
// concurrent use) and fail-fast on degenerate input:
//   - empty input            -> *vecops.InsufficientDataError{1, 0}
//   - ragged dimensionality  -> *vecops.DimensionError (first offender)
//   - strategy failure       -> *ReductionError
type Reducer interface {
	// Reduce returns one vector of length targetDims per input vector,
	// input order preserved.
	Reduce(vectors [][]float64, targetDims int) ([][]float64, error)

	// Method returns the strategy name used in ReductionError reporting.
	Method() string
}
