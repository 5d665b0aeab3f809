// SPDX-License-Identifier: MIT
// Package reduce: functional configuration for reduction strategies.
// Defaults are exported constants (single source of truth); WithX
// constructors panic only on nonsensical values (programmer error).

package reduce

import "math"

const (
	// DefaultCentering subtracts each column's mean before factorizing.
	// Centering makes the projection variance-maximizing (PCA).
	DefaultCentering = true

	// DefaultScaling divides each column by its standard deviation.
	// Off by default: scaling changes relative feature importance.
	DefaultScaling = false

	// DefaultScaleFloor is the lower bound applied to per-column standard
	// deviations during scaling, preventing division blow-up on constant
	// columns.
	DefaultScaleFloor = 1e-10
)

const panicScaleFloorInvalid = "reduce: WithScaleFloor: floor must be finite, positive"

// Option mutates reducer options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	center     bool
	scale      bool
	scaleFloor float64
}

// WithCentering toggles column-mean subtraction before factorization.
func WithCentering(on bool) Option {
	return func(o *options) { o.center = on }
}

// WithScaling toggles per-column standard-deviation scaling.
func WithScaling(on bool) Option {
	return func(o *options) { o.scale = on }
}

// WithScaleFloor overrides the standard-deviation floor used by scaling.
// Panics if floor is NaN, ±Inf or not positive.
func WithScaleFloor(floor float64) Option {
	if math.IsNaN(floor) || math.IsInf(floor, 0) || floor <= 0 {
		panic(panicScaleFloorInvalid)
	}

	return func(o *options) { o.scaleFloor = floor }
}

// gatherOptions resolves option setters against the documented defaults.
// Last-writer-wins; deterministic for a given sequence of opts.
func gatherOptions(opts ...Option) options {
	o := options{
		center:     DefaultCentering,
		scale:      DefaultScaling,
		scaleFloor: DefaultScaleFloor,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
