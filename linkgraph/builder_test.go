// SPDX-License-Identifier: MIT

package linkgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultlens/vaultlens/linkgraph"
)

// TestNewBuilder_IndexAssignment verifies insertion-order indices and the
// pure accessors.
func TestNewBuilder_IndexAssignment(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md", "note2.md", "note3.md"})

	assert.Equal(t, 3, b.NumNotes(), "three paths must yield three indices")

	i, ok := b.NoteIndex("note1.md")
	assert.True(t, ok)
	assert.Equal(t, 0, i, "first path gets index 0")

	i, ok = b.NoteIndex("note3.md")
	assert.True(t, ok)
	assert.Equal(t, 2, i, "third path gets index 2")

	_, ok = b.NoteIndex("missing.md")
	assert.False(t, ok, "unknown path must not resolve")
}

// TestNewBuilder_DuplicatePaths documents the last-occurrence-wins policy
// for duplicate path strings.
func TestNewBuilder_DuplicatePaths(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"a.md", "b.md", "a.md"})

	assert.Equal(t, 3, b.NumNotes(), "index space counts every input position")

	i, ok := b.NoteIndex("a.md")
	assert.True(t, ok)
	assert.Equal(t, 2, i, "last occurrence wins for duplicate paths")
}

// TestBuild_SimpleAdjacency checks the canonical three-note scenario:
// links (0→1), (0→2), (1→2).
func TestBuild_SimpleAdjacency(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md", "note2.md", "note3.md"})

	m, err := b.Build([]linkgraph.Link{
		{From: 0, To: 1},
		{From: 0, To: 2},
		{From: 1, To: 2},
	})
	require.NoError(t, err)

	rows := b.MatrixToVectors(m)
	require.Len(t, rows, 3)
	assert.Equal(t, []float64{0, 1, 1}, rows[0], "note1 links to note2 and note3")
	assert.Equal(t, []float64{0, 0, 1}, rows[1], "note2 links to note3")
	assert.Equal(t, []float64{0, 0, 0}, rows[2], "note3 has no outgoing links")
	assert.Equal(t, 3, m.NNZ(), "one cell per distinct link pair")
}

// TestBuild_DuplicateLinks verifies that parallel links accumulate rather
// than deduplicate.
func TestBuild_DuplicateLinks(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md", "note2.md"})

	m, err := b.Build([]linkgraph.Link{
		{From: 0, To: 1},
		{From: 0, To: 1},
	})
	require.NoError(t, err)

	rows := b.MatrixToVectors(m)
	assert.Equal(t, []float64{0, 2}, rows[0], "two parallel links must count as weight 2")
}

// TestBuild_SelfLoop verifies that self-loops are valid and counted.
func TestBuild_SelfLoop(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md", "note2.md"})

	m, err := b.Build([]linkgraph.Link{{From: 0, To: 0}})
	require.NoError(t, err)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "self-loop counts on the diagonal")
}

// TestBuild_InvalidIndex checks fail-fast behavior and the structured
// error context.
func TestBuild_InvalidIndex(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md", "note2.md"})

	m, err := b.Build([]linkgraph.Link{
		{From: 0, To: 5},
		{From: 0, To: 1}, // never reached: fail-fast on the first violation
	})
	assert.Nil(t, m, "no partial matrix on error")
	assert.ErrorIs(t, err, linkgraph.ErrLinkIndex)

	var lie *linkgraph.LinkIndexError
	require.ErrorAs(t, err, &lie)
	assert.Equal(t, 0, lie.From)
	assert.Equal(t, 5, lie.To)
	assert.Equal(t, 1, lie.Max, "max must be NumNotes-1")
}

// TestBuild_NegativeIndex ensures negative endpoints are rejected too.
func TestBuild_NegativeIndex(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md", "note2.md"})

	_, err := b.Build([]linkgraph.Link{{From: -1, To: 0}})
	assert.ErrorIs(t, err, linkgraph.ErrLinkIndex)
}

// TestBuildLaplacian_Simple verifies L = D − A on the canonical scenario:
// rows [2,-1,-1], [0,1,-1], [0,0,0].
func TestBuildLaplacian_Simple(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md", "note2.md", "note3.md"})

	m, err := b.BuildLaplacian([]linkgraph.Link{
		{From: 0, To: 1},
		{From: 0, To: 2},
		{From: 1, To: 2},
	})
	require.NoError(t, err)

	rows := b.MatrixToVectors(m)
	assert.Equal(t, []float64{2, -1, -1}, rows[0], "diag = out-degree, off-diag = -A")
	assert.Equal(t, []float64{0, 1, -1}, rows[1])
	assert.Equal(t, []float64{0, 0, 0}, rows[2], "sink note has an all-zero row")
}

// TestBuildLaplacian_Isolated verifies that a vault with no links yields
// an all-zero Laplacian with no stored cells.
func TestBuildLaplacian_Isolated(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md", "note2.md"})

	m, err := b.BuildLaplacian(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, m.NNZ(), "isolated notes contribute no diagonal entry")
	rows := b.MatrixToVectors(m)
	assert.Equal(t, []float64{0, 0}, rows[0])
	assert.Equal(t, []float64{0, 0}, rows[1])
}

// TestBuildLaplacian_SelfLoop checks the self-loop cancellation:
// L[0][0] = out-degree(0) − A[0][0].
func TestBuildLaplacian_SelfLoop(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md", "note2.md"})

	m, err := b.BuildLaplacian([]linkgraph.Link{
		{From: 0, To: 0},
		{From: 0, To: 1},
	})
	require.NoError(t, err)

	rows := b.MatrixToVectors(m)
	assert.Equal(t, []float64{1, -1}, rows[0], "deg 2 minus self-loop 1 on the diagonal")
	assert.Equal(t, []float64{0, 0}, rows[1])
}

// TestBuildLaplacian_InvalidIndex ensures the Laplacian builder shares
// Build's fail-fast validation.
func TestBuildLaplacian_InvalidIndex(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"note1.md"})

	_, err := b.BuildLaplacian([]linkgraph.Link{{From: 2, To: 0}})
	assert.ErrorIs(t, err, linkgraph.ErrLinkIndex)
}

// TestBuild_Deterministic verifies identical inputs produce identical
// CSR layouts regardless of link order.
func TestBuild_Deterministic(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"a.md", "b.md", "c.md", "d.md"})

	links := []linkgraph.Link{
		{From: 3, To: 0}, {From: 1, To: 2}, {From: 0, To: 3},
		{From: 2, To: 2}, {From: 1, To: 2}, {From: 0, To: 1},
	}
	reversed := make([]linkgraph.Link, len(links))
	for i, l := range links {
		reversed[len(links)-1-i] = l
	}

	m1, err := b.Build(links)
	require.NoError(t, err)
	m2, err := b.Build(reversed)
	require.NoError(t, err)

	assert.Equal(t, b.MatrixToVectors(m1), b.MatrixToVectors(m2), "ingestion order must not matter")
	assert.Equal(t, m1.NNZ(), m2.NNZ())
}

// TestBuild_EmptyVault documents the 0-note edge: no links is fine,
// any link is out of range with Max = -1.
func TestBuild_EmptyVault(t *testing.T) {
	b := linkgraph.NewBuilder(nil)

	m, err := b.Build(nil)
	require.NoError(t, err)
	assert.Empty(t, b.MatrixToVectors(m))

	_, err = b.Build([]linkgraph.Link{{From: 0, To: 0}})
	var lie *linkgraph.LinkIndexError
	require.ErrorAs(t, err, &lie)
	assert.Equal(t, -1, lie.Max)
}

// TestMatrixToVectors_Nil keeps the bridge total on nil input.
func TestMatrixToVectors_Nil(t *testing.T) {
	b := linkgraph.NewBuilder([]string{"a.md"})
	assert.Nil(t, b.MatrixToVectors(nil))
}
