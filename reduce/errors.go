// SPDX-License-Identifier: MIT
// Package reduce: sentinel error set. Dimension and data-sufficiency
// failures reuse the shared vecops variants; only strategy-specific
// failures are defined here.

package reduce

import (
	"errors"
	"fmt"
)

// ErrReduction indicates a parameter or numerical failure inside a
// reduction strategy. The typed variant ReductionError carries the
// strategy name and reason.
var ErrReduction = errors.New("reduce: dimensionality reduction failed")

// ReductionError reports a failure specific to one reduction strategy.
type ReductionError struct {
	Method string // strategy name, e.g. "SVD"
	Reason string // human-readable cause
}

// Error implements error.
func (e *ReductionError) Error() string {
	return fmt.Sprintf("reduce: %s: %s", e.Method, e.Reason)
}

// Unwrap ties the variant to ErrReduction for errors.Is.
func (e *ReductionError) Unwrap() error { return ErrReduction }
