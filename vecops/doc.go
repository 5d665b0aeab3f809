// Package vecops provides the shared dense-vector algebra used across the
// vaultlens engine: unit-norm normalization, Euclidean distance, and the
// uniform-dimensionality validator that reduction and clustering build on.
//
// All operations are pure functions over their inputs: no shared state,
// no I/O, safe for concurrent callers.
//
// The package also owns the error variants common to every vector
// consumer (dimension mismatch, insufficient data, zero norm), so that
// reduce and cluster report ragged input identically. Each variant is a
// typed struct carrying structured context and unwraps to a package
// sentinel, so callers may branch with errors.Is or inspect fields with
// errors.As.
package vecops
