// SPDX-License-Identifier: MIT
// Package reduce: SVD-based reduction strategy.
//
// Purpose:
//   - Project an N×dim matrix of row vectors onto its top targetDims
//     principal directions via thin singular value decomposition.
//
// Algorithm Outline:
//  1. Validate: non-empty input, uniform dimensionality, 1 ≤ targetDims ≤ dim.
//  2. Optionally center columns (subtract mean) and scale them (divide by
//     the per-column standard deviation, floored).
//  3. Factorize X = U·Σ·Vᵀ (thin SVD, σ non-increasing).
//  4. Emit row i as (U[i][0]·σ[0], …, U[i][targetDims-1]·σ[targetDims-1]).
//
// Determinism:
//   - Closed-form factorization, fixed loop orders, no randomness.
//
// Complexity:
//   - Time O(N·dim·min(N,dim)) for the factorization; Space O(N·dim).

package reduce

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/vaultlens/vaultlens/vecops"
)

const methodSVD = "SVD"

// SVD reduces dimensionality by singular value decomposition of the
// (optionally centered/scaled) data matrix. With centering on (the
// default) the projection is exactly PCA: axes are ranked by preserved
// variance. The zero value is not ready for use; construct via NewSVD.
type SVD struct {
	opts options
}

// NewSVD returns an SVD reducer. Defaults: centering on, scaling off,
// scale floor DefaultScaleFloor; override via WithCentering, WithScaling,
// WithScaleFloor.
func NewSVD(opts ...Option) *SVD {
	return &SVD{opts: gatherOptions(opts...)}
}

// Method returns "SVD".
func (r *SVD) Method() string { return methodSVD }

// Reduce projects vectors onto their top targetDims principal directions.
//
// Errors:
//   - *vecops.InsufficientDataError{1, 0} when vectors is empty.
//   - *vecops.DimensionError naming the first ragged vector.
//   - *ReductionError when targetDims is not in [1, dim], when the
//     factorization cannot converge, or when fewer than targetDims
//     singular values exist (more output axes requested than points).
//
// The input is never mutated; centering and scaling operate on a copy.
func (r *SVD) Reduce(vectors [][]float64, targetDims int) ([][]float64, error) {
	dim, err := vecops.SameLength(vectors)
	if err != nil {
		return nil, err
	}
	if targetDims < 1 {
		return nil, &ReductionError{
			Method: methodSVD,
			Reason: fmt.Sprintf("target dimensions (%d) must be at least 1", targetDims),
		}
	}
	if targetDims > dim {
		return nil, &ReductionError{
			Method: methodSVD,
			Reason: fmt.Sprintf("target dimensions (%d) cannot exceed input dimensions (%d)", targetDims, dim),
		}
	}

	n := len(vectors)
	X := mat.NewDense(n, dim, nil)
	for i := 0; i < n; i++ {
		X.SetRow(i, vectors[i])
	}

	if r.opts.center {
		centerColumns(X)
	}
	if r.opts.scale {
		scaleColumns(X, r.opts.scaleFloor)
	}

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return nil, &ReductionError{Method: methodSVD, Reason: "factorization failed to converge"}
	}

	sigma := svd.Values(nil)
	if targetDims > len(sigma) {
		// Thin SVD yields min(n, dim) components; with fewer points than
		// requested output axes the projection is undefined.
		return nil, &ReductionError{
			Method: methodSVD,
			Reason: fmt.Sprintf("only %d singular values available for %d target dimensions", len(sigma), targetDims),
		}
	}

	var u mat.Dense
	svd.UTo(&u)

	// Row i of the result is U[i][j]·σ[j] for j < targetDims: the
	// coordinates of point i along the top principal directions.
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, targetDims)
		for j := 0; j < targetDims; j++ {
			row[j] = u.At(i, j) * sigma[j]
		}
		out[i] = row
	}

	return out, nil
}

// centerColumns subtracts each column's mean in place.
func centerColumns(X *mat.Dense) {
	n, dim := X.Dims()
	col := make([]float64, n)
	for j := 0; j < dim; j++ {
		mat.Col(col, j, X)
		m := stat.Mean(col, nil)
		for i := 0; i < n; i++ {
			X.Set(i, j, col[i]-m)
		}
	}
}

// scaleColumns divides each column by its population standard deviation
// (root mean square about zero), floored to keep constant columns from
// blowing up the division.
func scaleColumns(X *mat.Dense, floor float64) {
	n, dim := X.Dims()
	col := make([]float64, n)
	for j := 0; j < dim; j++ {
		mat.Col(col, j, X)
		sd := floats.Norm(col, 2) / math.Sqrt(float64(n))
		if sd < floor {
			sd = floor
		}
		for i := 0; i < n; i++ {
			X.Set(i, j, col[i]/sd)
		}
	}
}
