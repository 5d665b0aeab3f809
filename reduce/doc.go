// Package reduce projects sets of equal-length dense vectors onto
// lower-dimensional subspaces for visualization and clustering.
//
// 🚀 What lives here?
//
//	The Reducer capability — "reduce N vectors of dimension d to
//	targetDims" — with one concrete strategy:
//	  • SVD: centered (optionally scaled) singular value decomposition,
//	    equivalent to PCA; deterministic and closed-form, it keeps the
//	    directions of maximal variance.
//
// Alternative strategies (a future t-SNE, UMAP, …) slot in behind the
// same interface without touching callers.
//
// ⚙️ Usage:
//
//	import "github.com/vaultlens/vaultlens/reduce"
//
//	r := reduce.NewSVD()                       // center on, scale off
//	coords, err := r.Reduce(vectors, 2)        // one [x, y] per input row
//
// Outputs are unconstrained reals (may be negative, not normalized);
// output vector count equals input vector count.
//
// Errors are the shared vecops variants (insufficient data, dimension
// mismatch) plus ReductionError for strategy-specific failures such as
// targetDims exceeding the source dimensionality or the factorization
// failing to converge.
package reduce
