// SPDX-License-Identifier: MIT
// Package linkgraph: sentinel error set.
// Builders and the Sparse type return these sentinels (or typed variants
// that unwrap to them); tests match via errors.Is. No kernel panics on
// user-triggered conditions.

package linkgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrLinkIndex indicates a link endpoint referencing a nonexistent
	// note. The typed variant LinkIndexError carries (From, To, Max).
	ErrLinkIndex = errors.New("linkgraph: link index out of range")

	// ErrBadShape is returned when a requested matrix shape is invalid
	// (rows <= 0 or cols <= 0).
	ErrBadShape = errors.New("linkgraph: invalid shape")

	// ErrOutOfRange indicates a row or column index outside matrix bounds.
	// Public indexers (At, DenseRow, RowSum) return this, never panic.
	ErrOutOfRange = errors.New("linkgraph: index out of range")
)

// LinkIndexError reports the first link whose endpoints fall outside the
// valid note index space [0, Max].
type LinkIndexError struct {
	From int // source index of the offending link
	To   int // target index of the offending link
	Max  int // greatest valid note index (NumNotes-1)
}

// Error implements error.
func (e *LinkIndexError) Error() string {
	return fmt.Sprintf("linkgraph: link (%d -> %d) out of range: max valid index is %d", e.From, e.To, e.Max)
}

// Unwrap ties the variant to ErrLinkIndex for errors.Is.
func (e *LinkIndexError) Unwrap() error { return ErrLinkIndex }
