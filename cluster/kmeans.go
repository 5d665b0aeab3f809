// SPDX-License-Identifier: MIT
// Package cluster: the k-means kernel.
//
// Algorithm Outline:
//  1. Validate: non-empty input, 1 ≤ k ≤ len(vectors), uniform dims.
//  2. Seed k centroids deterministically (farthest-point heuristic).
//  3. Lloyd loop, capped at MaxIterations:
//     a. assign each point to its nearest centroid (ties → lowest index);
//     b. stop when no assignment changed (converged);
//     c. recompute each centroid as the mean of its members; a centroid
//     with zero members keeps its previous position and stays eligible.
//  4. Return one cluster index per input vector, input order preserved.
//
// Determinism:
//   - Fixed scan orders everywhere; strict comparisons keep the first
//     occurrence on ties. Identical input ⇒ identical output.
//
// Complexity:
//   - Seeding O(k·n·dim); Lloyd O(iter·k·n·dim); Space O(k·dim + n).

package cluster

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/vaultlens/vaultlens/vecops"
)

// KMeans partitions vectors into k clusters and returns the cluster
// index of each input vector.
//
// Errors:
//   - *vecops.InsufficientDataError when vectors is empty, k < 1, or
//     k > len(vectors) (errors.Is: vecops.ErrInsufficientData).
//   - *vecops.DimensionError naming the first ragged vector
//     (errors.Is: vecops.ErrDimensionMismatch).
//
// Centroids live only for the duration of the call; the input is never
// mutated.
func KMeans(vectors [][]float64, k int, opts ...Option) ([]int, error) {
	o := gatherOptions(opts...)

	if len(vectors) == 0 || k < 1 {
		return nil, &vecops.InsufficientDataError{Required: 1, Provided: 0}
	}
	if k > len(vectors) {
		return nil, &vecops.InsufficientDataError{Required: k, Provided: len(vectors)}
	}
	dim, err := vecops.SameLength(vectors)
	if err != nil {
		return nil, err
	}

	centroids := seedCentroids(vectors, k)
	assignments := make([]int, len(vectors))

	for iter := 0; iter < o.maxIterations; iter++ {
		changed := false

		// Assignment: nearest centroid, lowest index wins on ties.
		for i, v := range vectors {
			best, bestDist := 0, math.Inf(1)
			for c := 0; c < k; c++ {
				if d := floats.Distance(v, centroids[c], 2); d < bestDist {
					best, bestDist = c, d
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			break // converged
		}

		updateCentroids(centroids, vectors, assignments, dim)
	}

	return assignments, nil
}

// seedCentroids picks k starting centroids deterministically: the first
// input vector, then repeatedly the point whose minimum distance to the
// chosen set is maximal (farthest-point heuristic, a deterministic
// stand-in for probabilistic k-means++ sampling). Strict > comparison
// keeps the first occurrence on ties.
func seedCentroids(vectors [][]float64, k int) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, cloneVec(vectors[0]))

	minDist := make([]float64, len(vectors))
	for len(centroids) < k {
		latest := centroids[len(centroids)-1]

		// Maintain each point's squared distance to the nearest chosen
		// centroid; only the latest addition can lower it.
		farthest, farthestDist := 0, math.Inf(-1)
		for i, v := range vectors {
			d := floats.Distance(v, latest, 2)
			sq := d * d
			if len(centroids) == 1 || sq < minDist[i] {
				minDist[i] = sq
			}
			if minDist[i] > farthestDist {
				farthest, farthestDist = i, minDist[i]
			}
		}

		centroids = append(centroids, cloneVec(vectors[farthest]))
	}

	return centroids
}

// updateCentroids recomputes each centroid as the coordinate-wise mean
// of its assigned points. A centroid with zero members is left unchanged
// rather than zeroed, so it stays meaningful and may regain members.
func updateCentroids(centroids, vectors [][]float64, assignments []int, dim int) {
	k := len(centroids)
	sums := make([][]float64, k)
	counts := make([]int, k)
	for c := 0; c < k; c++ {
		sums[c] = make([]float64, dim)
	}

	for i, v := range vectors {
		floats.Add(sums[assignments[i]], v)
		counts[assignments[i]]++
	}

	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		centroids[c] = sums[c]
	}
}

// cloneVec returns an independent copy of v; centroids must never alias
// caller-owned input data.
func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
