// SPDX-License-Identifier: MIT
// Package linkgraph: compressed-sparse-row matrix storage.
//
// Purpose:
//   - Hold the weighted link graph with memory proportional to the
//     number of nonzero cells, not rows*cols.
//   - Provide bounds-safe accessors and the dense bridge consumed by the
//     vector pipeline.
//
// Determinism:
//   - Entries are sorted by (row, col) before compression, so identical
//     inputs produce identical storage regardless of ingestion order.

package linkgraph

import "sort"

// Entry is one nonzero cell (Row, Col, Val) used to assemble a Sparse.
type Entry struct {
	Row int
	Col int
	Val float64
}

// Sparse is an immutable CSR matrix: for row i, the nonzero columns are
// colIdx[rowPtr[i]:rowPtr[i+1]] with matching values in val.
type Sparse struct {
	rows, cols int
	rowPtr     []int     // len rows+1; monotone non-decreasing
	colIdx     []int     // len NNZ; ascending within each row
	val        []float64 // len NNZ
}

// NewSparse assembles a rows×cols CSR matrix from triplet entries.
// Duplicate (Row, Col) entries are summed; entries whose summed value is
// exactly zero are still stored (callers that want them dropped filter
// beforehand).
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0.
//   - ErrOutOfRange on the first entry outside the matrix bounds.
//
// Complexity: O(nnz log nnz) for the sort, O(rows + nnz) to compress.
func NewSparse(rows, cols int, entries []Entry) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	for i := range entries {
		e := entries[i]
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, ErrOutOfRange
		}
	}

	// Sort a private copy by (row, col); the caller keeps its slice.
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}

		return sorted[a].Col < sorted[b].Col
	})

	s := &Sparse{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1),
		colIdx: make([]int, 0, len(sorted)),
		val:    make([]float64, 0, len(sorted)),
	}

	// Compress, folding duplicate (row, col) pairs into a single cell.
	// After the sort duplicates are adjacent, so one backward look suffices.
	prevRow, prevCol := -1, -1
	for i := 0; i < len(sorted); i++ {
		e := sorted[i]
		if e.Row == prevRow && e.Col == prevCol {
			s.val[len(s.val)-1] += e.Val
			continue
		}
		s.colIdx = append(s.colIdx, e.Col)
		s.val = append(s.val, e.Val)
		s.rowPtr[e.Row+1]++
		prevRow, prevCol = e.Row, e.Col
	}
	for i := 0; i < rows; i++ {
		s.rowPtr[i+1] += s.rowPtr[i]
	}

	return s, nil
}

// Rows returns the number of rows. O(1).
func (s *Sparse) Rows() int { return s.rows }

// Cols returns the number of columns. O(1).
func (s *Sparse) Cols() int { return s.cols }

// NNZ returns the number of stored cells. O(1).
func (s *Sparse) NNZ() int { return len(s.val) }

// At returns the value at (i, j); absent cells read as zero.
// Returns ErrOutOfRange for indices outside the matrix bounds.
// Complexity: O(log nnz(row)) via binary search within the row.
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return 0, ErrOutOfRange
	}

	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	k := lo + sort.SearchInts(s.colIdx[lo:hi], j)
	if k < hi && s.colIdx[k] == j {
		return s.val[k], nil
	}

	return 0, nil
}

// RowSum returns the sum of row i (the weighted out-degree for an
// adjacency matrix). Returns ErrOutOfRange for an invalid row.
// Complexity: O(nnz(row)).
func (s *Sparse) RowSum(i int) (float64, error) {
	if i < 0 || i >= s.rows {
		return 0, ErrOutOfRange
	}

	sum := 0.0
	for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
		sum += s.val[k]
	}

	return sum, nil
}

// DenseRow materializes row i as a zero-filled dense vector of length
// Cols. Returns ErrOutOfRange for an invalid row.
// Complexity: O(cols + nnz(row)).
func (s *Sparse) DenseRow(i int) ([]float64, error) {
	if i < 0 || i >= s.rows {
		return nil, ErrOutOfRange
	}

	row := make([]float64, s.cols)
	for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
		row[s.colIdx[k]] = s.val[k]
	}

	return row, nil
}

// Dense materializes the whole matrix as one dense vector per row.
// This is the bridge from sparse storage to the [][]float64 contract of
// the reduce and cluster packages. Complexity: O(rows*cols).
func (s *Sparse) Dense() [][]float64 {
	out := make([][]float64, s.rows)
	for i := 0; i < s.rows; i++ {
		out[i], _ = s.DenseRow(i) // bounds are valid by construction
	}

	return out
}
