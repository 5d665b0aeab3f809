// SPDX-License-Identifier: MIT
// Package linkgraph: canonical builders for adjacency and Laplacian
// matrices from note links.
//
// Policy & Contracts:
//   - Adjacency cell (i,j) counts directed links i→j; duplicates
//     accumulate, self-loops count normally.
//   - Laplacian L = D − A with out-degree diagonal D; zero out-degree
//     rows contribute no diagonal entry, and L cells that cancel to zero
//     are not stored.
//   - Fail-fast: the first out-of-range endpoint aborts the build with a
//     LinkIndexError; no partial matrix is returned.
//
// Determinism:
//   - Link counts are accumulated in a map but compressed through sorted
//     triplets, so identical inputs yield identical CSR layouts.

package linkgraph

// Link is one directed reference between two notes, identified by their
// indices in the Builder's note index space.
type Link struct {
	From int // source note index
	To   int // target note index
}

// pairKey is an ordered (from, to) pair used to accumulate parallel
// links into a single weighted cell. Ints keep the key hash-friendly.
type pairKey struct {
	from int
	to   int
}

// Builder assigns stable indices to note paths and builds sparse graph
// matrices over that index space. It is immutable after construction and
// safe to share read-only across concurrent calls.
type Builder struct {
	numNotes int
	index    map[string]int
}

// NewBuilder assigns indices 0..len(notePaths)-1 in input order.
// Duplicate paths collapse to one map entry with the last occurrence
// winning; numNotes still counts every input position, so the index
// space stays dense. Never fails.
func NewBuilder(notePaths []string) *Builder {
	index := make(map[string]int, len(notePaths))
	for i, p := range notePaths {
		index[p] = i
	}

	return &Builder{numNotes: len(notePaths), index: index}
}

// NumNotes returns the size of the note index space. O(1).
func (b *Builder) NumNotes() int { return b.numNotes }

// NoteIndex returns the index assigned to path, if any. O(1).
func (b *Builder) NoteIndex(path string) (int, bool) {
	i, ok := b.index[path]

	return i, ok
}

// countLinks validates every endpoint and accumulates one weight per
// distinct (from, to) pair. Fail-fast on the first invalid link.
func (b *Builder) countLinks(links []Link) (map[pairKey]float64, error) {
	counts := make(map[pairKey]float64, len(links))
	for _, l := range links {
		if l.From < 0 || l.From >= b.numNotes || l.To < 0 || l.To >= b.numNotes {
			return nil, &LinkIndexError{From: l.From, To: l.To, Max: b.numNotes - 1}
		}
		counts[pairKey{from: l.From, to: l.To}]++
	}

	return counts, nil
}

// assemble turns a cell map into a CSR matrix over the note index space,
// dropping cells whose value is exactly zero (semantically absent).
func (b *Builder) assemble(cells map[pairKey]float64) *Sparse {
	if b.numNotes == 0 {
		// Empty vault: a 0×0 matrix with no storage.
		return &Sparse{rowPtr: make([]int, 1)}
	}

	entries := make([]Entry, 0, len(cells))
	for k, v := range cells {
		if v == 0 {
			continue
		}
		entries = append(entries, Entry{Row: k.from, Col: k.to, Val: v})
	}
	s, _ := NewSparse(b.numNotes, b.numNotes, entries) // shape and ranges are valid by construction

	return s
}

// Build returns the sparse weighted adjacency matrix for links: cell
// (i,j) holds the number of links from note i to note j as a float64.
//
// Errors:
//   - *LinkIndexError on the first endpoint outside [0, NumNotes-1]
//     (errors.Is: ErrLinkIndex). No partial matrix is returned.
//
// Complexity: O(E) accumulation + O(nnz log nnz) compression.
func (b *Builder) Build(links []Link) (*Sparse, error) {
	counts, err := b.countLinks(links)
	if err != nil {
		return nil, err
	}

	return b.assemble(counts), nil
}

// BuildLaplacian returns the directed graph Laplacian L = D − A, where D
// is the out-degree diagonal (D[i][i] = sum of adjacency row i).
// Diagonal entries equal the out-degree minus any self-loop count;
// off-diagonal L[i][j] = −A[i][j]. An isolated note's row is all zero.
//
// Error behavior matches Build (same validation, fail-fast).
// Complexity: O(E) accumulation + O(nnz log nnz) compression.
func (b *Builder) BuildLaplacian(links []Link) (*Sparse, error) {
	counts, err := b.countLinks(links)
	if err != nil {
		return nil, err
	}

	// Out-degree per source row.
	degree := make(map[int]float64, len(counts))
	for k, v := range counts {
		degree[k.from] += v
	}

	// L cells: D on the diagonal, −A everywhere (the two overlap on
	// self-loops and may cancel; assemble drops exact zeros).
	cells := make(map[pairKey]float64, len(counts)+len(degree))
	for i, d := range degree {
		cells[pairKey{from: i, to: i}] = d
	}
	for k, v := range counts {
		cells[k] -= v
	}

	return b.assemble(cells), nil
}

// MatrixToVectors materializes each sparse row as a dense vector of
// length NumNotes, zero-filled where no cell exists. This is the bridge
// from sparse storage to the dense-vector contract consumed by the
// reduce and cluster packages. Complexity: O(n²).
func (b *Builder) MatrixToVectors(m *Sparse) [][]float64 {
	if m == nil {
		return nil
	}

	return m.Dense()
}
