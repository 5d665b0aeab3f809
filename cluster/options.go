// SPDX-License-Identifier: MIT
// Package cluster: functional configuration for the k-means kernel.
// Defaults are exported constants (single source of truth); WithX
// constructors panic only on nonsensical values (programmer error).

package cluster

// DefaultMaxIterations caps the Lloyd assign/update loop. Convergence
// (no assignment changes) usually stops the loop far earlier; the cap
// bounds worst-case work on oscillating inputs.
const DefaultMaxIterations = 100

const panicMaxIterationsInvalid = "cluster: WithMaxIterations: n must be positive"

// Option mutates k-means options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	maxIterations int
}

// WithMaxIterations overrides the Lloyd iteration cap.
// Panics if n is not positive.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *options) { o.maxIterations = n }
}

// gatherOptions resolves option setters against the documented defaults.
// Last-writer-wins; deterministic for a given sequence of opts.
func gatherOptions(opts ...Option) options {
	o := options{maxIterations: DefaultMaxIterations}
	for _, set := range opts {
		set(&o)
	}

	return o
}
