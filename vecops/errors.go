// SPDX-License-Identifier: MIT
// Package vecops: sentinel error set shared by every vector consumer.
// Typed variants below carry structured context and unwrap to these
// sentinels, so both errors.Is (kind) and errors.As (fields) work.
// Do not %w-wrap the sentinels directly when a typed variant exists.

package vecops

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates ragged input: a vector whose length
	// differs from the expected dimensionality of the operation.
	ErrDimensionMismatch = errors.New("vecops: vector dimension mismatch")

	// ErrInsufficientData indicates too few points (or clusters requested)
	// for the operation to be well-defined.
	ErrInsufficientData = errors.New("vecops: insufficient data")

	// ErrZeroNorm indicates a vector whose Euclidean norm is below the
	// zero-norm epsilon; normalization is undefined for the zero vector.
	ErrZeroNorm = errors.New("vecops: zero-norm vector")
)

// DimensionError reports the first vector whose length differs from the
// expected dimensionality. Index is the position of the offending vector
// in the input (0 for pairwise operations such as EuclideanDistance).
type DimensionError struct {
	Expected int // dimensionality established by the first vector
	Got      int // length of the offending vector
	Index    int // position of the offending vector in the input
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("vecops: vector %d has dimension %d, expected %d", e.Index, e.Got, e.Expected)
}

// Unwrap ties the variant to ErrDimensionMismatch for errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// InsufficientDataError reports how many points (or clusters) an
// operation required versus how many were provided.
type InsufficientDataError struct {
	Required int
	Provided int
}

// Error implements error.
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("vecops: insufficient data: required %d, provided %d", e.Required, e.Provided)
}

// Unwrap ties the variant to ErrInsufficientData for errors.Is.
func (e *InsufficientDataError) Unwrap() error { return ErrInsufficientData }
