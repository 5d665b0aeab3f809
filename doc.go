// Package vaultlens turns a vault's note-link graph into geometric and
// statistical representations usable for visualization and clustering.
//
// 🚀 What is vaultlens?
//
//	A small, deterministic numeric engine that brings together:
//		• linkgraph/ — sparse adjacency & Laplacian matrices from note links
//		• vecops/    — normalization, Euclidean distance, shared validation
//		• reduce/    — SVD (PCA) dimensionality reduction behind a Reducer capability
//		• cluster/   — k-means with deterministic k-means++-style seeding
//
// ✨ Why vaultlens?
//
//   - Plain data in, plain data out — hosts exchange only []string,
//     []Link, [][]float64 and []int; no internal matrix type ever leaks
//   - Deterministic — identical input always yields identical output;
//     no hidden randomness anywhere in the pipeline
//   - Fail-fast — the first invalid link, ragged vector or degenerate
//     parameter aborts the whole operation with a typed error
//   - Call-scoped — no persistence, no background work, no state beyond
//     the immutable note index; concurrent callers need no locks
//
// Quick pipeline example (links → matrix rows → 2-D coords → clusters):
//
//	m, err := vaultlens.MapVault(
//		[]string{"a.md", "b.md", "c.md"},
//		[]linkgraph.Link{{From: 0, To: 1}, {From: 0, To: 2}},
//		2, // target dimensions
//		2, // clusters
//	)
//	// m.Coords[i] is the 2-D position of note i, m.Clusters[i] its group.
//
// Each stage is also usable on its own; see the package docs of
// linkgraph, vecops, reduce and cluster.
package vaultlens
