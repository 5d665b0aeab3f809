// SPDX-License-Identifier: MIT
// Package vaultlens — pipeline facade.
//
// Purpose:
//   - Provide one well-documented entry point composing the canonical
//     kernels: links → matrix rows → reduced coordinates → cluster labels.
//   - No logic of its own: validation, numerics and error reporting all
//     live in the component packages; errors pass through untouched so
//     callers still branch with errors.Is / errors.As on the component
//     variants.

package vaultlens

import (
	"github.com/vaultlens/vaultlens/cluster"
	"github.com/vaultlens/vaultlens/linkgraph"
	"github.com/vaultlens/vaultlens/reduce"
)

// VaultMap is the result of one MapVault run: a low-dimensional position
// and a cluster label per note, both indexed by note index.
type VaultMap struct {
	Coords   [][]float64 // len == number of notes; each of length targetDims
	Clusters []int       // len == number of notes; values in [0, k)
}

// PipelineOption configures one MapVault call.
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	laplacian bool
	reducer   reduce.Reducer
}

// WithLaplacian feeds Laplacian rows (L = D − A) into the reduction
// stage instead of raw adjacency rows, emphasizing spectral structure.
func WithLaplacian() PipelineOption {
	return func(o *pipelineOptions) { o.laplacian = true }
}

// WithReducer substitutes the reduction strategy (default reduce.NewSVD()).
func WithReducer(r reduce.Reducer) PipelineOption {
	return func(o *pipelineOptions) { o.reducer = r }
}

// MapVault runs the full pipeline for one vault snapshot: builds the
// sparse graph matrix over notePaths, materializes its rows as dense
// vectors, reduces them to targetDims dimensions and clusters the
// reduced coordinates into k groups.
//
// Errors from any stage surface unchanged: linkgraph.ErrLinkIndex,
// vecops.ErrInsufficientData / ErrDimensionMismatch, reduce.ErrReduction.
// Deterministic: identical input always yields an identical VaultMap.
func MapVault(notePaths []string, links []linkgraph.Link, targetDims, k int, opts ...PipelineOption) (*VaultMap, error) {
	o := pipelineOptions{reducer: reduce.NewSVD()}
	for _, set := range opts {
		set(&o)
	}

	b := linkgraph.NewBuilder(notePaths)

	build := b.Build
	if o.laplacian {
		build = b.BuildLaplacian
	}
	m, err := build(links)
	if err != nil {
		return nil, err
	}

	coords, err := o.reducer.Reduce(b.MatrixToVectors(m), targetDims)
	if err != nil {
		return nil, err
	}

	labels, err := cluster.KMeans(coords, k)
	if err != nil {
		return nil, err
	}

	return &VaultMap{Coords: coords, Clusters: labels}, nil
}
