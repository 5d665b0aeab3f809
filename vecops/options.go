// SPDX-License-Identifier: MIT
// Package vecops: functional configuration for the normalization kernel.
// Defaults are exported constants (single source of truth); WithX
// constructors panic only on nonsensical values (programmer error).

package vecops

import "math"

// DefaultZeroNormEps is the norm threshold below which a vector is
// treated as the zero vector and normalization fails with ErrZeroNorm.
// The value matches double-precision practice for data that is expected
// to be O(1) in magnitude.
const DefaultZeroNormEps = 1e-10

const panicZeroNormEpsInvalid = "vecops: WithZeroNormEps: eps must be finite, non-negative"

// Option mutates normalization options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	zeroNormEps float64
}

// WithZeroNormEps overrides the zero-norm cutoff used by Normalize.
// Panics if eps is NaN, ±Inf or negative.
func WithZeroNormEps(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicZeroNormEpsInvalid)
	}

	return func(o *options) { o.zeroNormEps = eps }
}

// gatherOptions resolves option setters against the documented defaults.
// Last-writer-wins; deterministic for a given sequence of opts.
func gatherOptions(opts ...Option) options {
	o := options{zeroNormEps: DefaultZeroNormEps}
	for _, set := range opts {
		set(&o)
	}

	return o
}
