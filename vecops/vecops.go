// SPDX-License-Identifier: MIT
// Package vecops: dense-vector kernels.
//
// Purpose:
//   - Normalize: scale every vector to unit Euclidean norm.
//   - EuclideanDistance: L2 distance between two equal-length vectors.
//   - SameLength: canonical uniform-dimensionality validator shared by
//     the reduction and clustering kernels.
//
// Determinism & Policy:
//   - Fixed traversal order; no randomness, no global state.
//   - Fail-fast: the first degenerate vector or ragged length aborts the
//     whole operation; no partial output is ever returned.
//   - Inputs are never mutated; every result is freshly allocated.

package vecops

import "gonum.org/v1/gonum/floats"

// SameLength verifies that all vectors share the dimensionality of the
// first one and returns that dimensionality.
//
// Errors:
//   - *DimensionError naming the first offending index (errors.Is:
//     ErrDimensionMismatch).
//   - *InsufficientDataError{1, 0} when vectors is empty.
//
// Complexity: O(n) over the vector count; element data is not touched.
func SameLength(vectors [][]float64) (int, error) {
	if len(vectors) == 0 {
		return 0, &InsufficientDataError{Required: 1, Provided: 0}
	}

	dim := len(vectors[0])
	for i := 1; i < len(vectors); i++ {
		if len(vectors[i]) != dim {
			return 0, &DimensionError{Expected: dim, Got: len(vectors[i]), Index: i}
		}
	}

	return dim, nil
}

// Normalize returns a copy of vectors with every vector scaled to unit
// Euclidean norm. Vectors may have differing lengths; each is normalized
// independently.
//
// A vector whose norm falls below the zero-norm epsilon
// (DefaultZeroNormEps unless overridden via WithZeroNormEps) fails the
// whole call with ErrZeroNorm: normalization is undefined for the zero
// vector and must not silently pass it through or divide by zero.
//
// Complexity: O(total elements). Inputs are not mutated.
func Normalize(vectors [][]float64, opts ...Option) ([][]float64, error) {
	o := gatherOptions(opts...)

	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		norm := floats.Norm(v, 2)
		if norm < o.zeroNormEps {
			return nil, ErrZeroNorm
		}
		u := make([]float64, len(v))
		floats.ScaleTo(u, 1/norm, v)
		out[i] = u
	}

	return out, nil
}

// EuclideanDistance returns the L2 distance between a and b.
//
// Errors:
//   - *DimensionError{Expected: len(a), Got: len(b)} when lengths differ
//     (errors.Is: ErrDimensionMismatch).
//
// The distance is symmetric, non-negative, and zero iff a == b.
// Complexity: O(dim).
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionError{Expected: len(a), Got: len(b), Index: 0}
	}

	return floats.Distance(a, b, 2), nil
}
