// Package linkgraph turns a vault's note-link list into sparse weighted
// graph matrices usable for spectral and geometric analysis.
//
// The linkgraph package provides:
//
//   - Builder, an immutable note-path → index map constructed once per
//     vault snapshot, with adjacency and Laplacian matrix builders.
//   - Sparse, a compressed-sparse-row (CSR) matrix whose memory scales
//     with the number of links rather than the square of the vault size.
//   - A dense-row bridge (MatrixToVectors) feeding the reduce and
//     cluster packages, which consume plain [][]float64.
//
// Adjacency entry (i,j) counts the directed links from note i to note j;
// duplicate links accumulate and self-loops count normally. The Laplacian
// is L = D − A with the out-degree diagonal D, so it is not symmetric for
// a directed vault.
//
// All builds are fail-fast: the first link referencing a nonexistent note
// aborts the whole build with ErrLinkIndex, and no partial matrix is
// returned.
package linkgraph
