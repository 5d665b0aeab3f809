// Package cluster partitions sets of equal-length dense vectors into k
// groups using Lloyd's k-means with a deterministic k-means++-style
// seeding.
//
// 🚀 Determinism over randomness
//
//	The classic k-means++ seeding samples centroids with probability
//	proportional to squared distance. Here the sampling is replaced by a
//	farthest-point scan: the first centroid is the first input vector,
//	each subsequent one is the point whose minimum distance to the
//	already-chosen centroids is maximal (ties keep the first occurrence).
//	Identical input therefore always yields identical assignments —
//	which is what a visualization host needs for stable layouts.
//
// ⚙️ Usage:
//
//	import "github.com/vaultlens/vaultlens/cluster"
//
//	labels, err := cluster.KMeans(vectors, 3)
//	// labels[i] ∈ [0, 3) is the cluster of vectors[i]
//
// The result is a local optimum: different seedings could yield different
// partitions; determinism means reproducibility, not global optimality.
//
// Errors are the shared vecops variants: insufficient data (empty input,
// k == 0, k > len(vectors)) and dimension mismatch for ragged input.
package cluster
