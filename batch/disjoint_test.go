// SPDX-License-Identifier: MIT
// Package batch_test contains unit tests for the disjoint-union builder.
package batch_test

import (
	"testing"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
	"github.com/stretchr/testify/require"
)

// threePairs builds three 2-node single-edge records with per-graph edge
// weights 1, 2, 3 and attribute bases 0, 100, 200.
func threePairs(t *testing.T, f int) []*batch.Record {
	t.Helper()
	out := make([]*batch.Record, 3)
	for g := 0; g < 3; g++ {
		w := float64(g + 1)
		adj, err := matrix.NewDenseFrom(2, 2, []float64{
			0, w,
			w, 0,
		})
		require.NoError(t, err)
		out[g], err = batch.NewRecord(adj, attrs(t, 2, f, float64(100*g)), nil)
		require.NoError(t, err)
	}

	return out
}

// TestBuildThreePairs walks the canonical small case end to end: three
// 2-node graphs union into a 6x6 three-block adjacency, a 6x4 attribute
// stack and the segment index [0 0 1 1 2 2].
func TestBuildThreePairs(t *testing.T) {
	res, err := batch.Build(threePairs(t, 4))
	require.NoError(t, err)

	require.Equal(t, 3, res.Graphs())
	require.Equal(t, 6, res.Nodes())

	adj := res.Adjacency()
	require.Equal(t, 6, adj.Rows())
	require.Equal(t, 6, adj.Cols())

	// Each graph's edge sits inside its own diagonal block, offset by 2g.
	for g := 0; g < 3; g++ {
		base := 2 * g
		w := float64(g + 1)
		require.Equal(t, w, at(t, adj, base, base+1))
		require.Equal(t, w, at(t, adj, base+1, base))
		require.Equal(t, 0.0, at(t, adj, base, base)) // diagonal stays clear
	}

	// Everything outside the blocks is zero; with 6 stored entries the
	// sparse union proves it by count alone.
	require.Equal(t, 6, matrix.CountNonZero(adj))

	// Attribute row 2g+i is graph g's row i: base 100g + 10i + d.
	stacked := res.NodeAttributes()
	require.Equal(t, 6, stacked.Rows())
	require.Equal(t, 4, stacked.Cols())
	require.Equal(t, 0.0, at(t, stacked, 0, 0))     // g=0, i=0, d=0
	require.Equal(t, 113.0, at(t, stacked, 3, 3))   // g=1, i=1, d=3
	require.Equal(t, 200.0, at(t, stacked, 4, 0))   // g=2, i=0, d=0
	require.Equal(t, 213.0, at(t, stacked, 5, 3))   // g=2, i=1, d=3

	require.Equal(t, []int{0, 0, 1, 1, 2, 2}, res.SegmentIndex())

	// No edge attributes were supplied, so none exist downstream.
	require.False(t, res.HasEdgeAttributes())
	_, err = res.EdgeAttributes()
	require.ErrorIs(t, err, batch.ErrComponentUnavailable)
}

// TestBuildSingleRecord verifies the union of one graph is that graph.
func TestBuildSingleRecord(t *testing.T) {
	rec := pairRecord(t, 3, 0)
	res, err := batch.Build([]*batch.Record{rec})
	require.NoError(t, err)

	require.Equal(t, 1, res.Graphs())
	require.Equal(t, 2, res.Nodes())
	require.True(t, matrix.Equal(rec.Adjacency(), res.Adjacency()))
	require.True(t, matrix.Equal(rec.NodeAttrs(), res.NodeAttributes()))
	require.Equal(t, []int{0, 0}, res.SegmentIndex())
}

// TestBuildVaryingSizes unions graphs of different node counts; per-graph
// N may vary freely as long as attribute widths agree.
func TestBuildVaryingSizes(t *testing.T) {
	one, err := matrix.NewDenseFrom(1, 1, []float64{0}) // isolated node
	require.NoError(t, err)
	single, err := batch.NewRecord(one, attrs(t, 1, 2, 500), nil)
	require.NoError(t, err)

	tri, err := matrix.NewDenseFrom(3, 3, []float64{
		0, 1, 1,
		1, 0, 1,
		1, 1, 0,
	})
	require.NoError(t, err)
	triangle, err := batch.NewRecord(tri, attrs(t, 3, 2, 700), nil)
	require.NoError(t, err)

	res, err := batch.Build([]*batch.Record{single, triangle, pairRecord(t, 2, 900)})
	require.NoError(t, err)

	require.Equal(t, 6, res.Nodes()) // 1 + 3 + 2
	require.Equal(t, []int{0, 1, 1, 1, 2, 2}, res.SegmentIndex())

	// Triangle block occupies rows 1..3; its edges shift by offset 1.
	require.Equal(t, 1.0, at(t, res.Adjacency(), 1, 2))
	require.Equal(t, 1.0, at(t, res.Adjacency(), 3, 1))
	require.Equal(t, 0.0, at(t, res.Adjacency(), 0, 1)) // cross-block zero
	require.Equal(t, 0.0, at(t, res.Adjacency(), 4, 3)) // cross-block zero

	// Attribute rows follow the same offsets.
	require.Equal(t, 500.0, at(t, res.NodeAttributes(), 0, 0))
	require.Equal(t, 700.0, at(t, res.NodeAttributes(), 1, 0))
	require.Equal(t, 900.0, at(t, res.NodeAttributes(), 4, 0))
}

// TestBuildEdgeAttributes verifies per-channel block-diagonal embedding.
func TestBuildEdgeAttributes(t *testing.T) {
	r1, err := batch.NewRecord(pairAdjacency(t), attrs(t, 2, 2, 0), edgeTensor(t, 2, 10))
	require.NoError(t, err)
	r2, err := batch.NewRecord(pairAdjacency(t), attrs(t, 2, 2, 100), edgeTensor(t, 2, 20))
	require.NoError(t, err)

	res, err := batch.Build([]*batch.Record{r1, r2})
	require.NoError(t, err)
	require.True(t, res.HasEdgeAttributes())

	tsr, err := res.EdgeAttributes()
	require.NoError(t, err)
	rows, cols, s := tsr.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 4, cols)
	require.Equal(t, 2, s)

	for ch := 0; ch < 2; ch++ {
		v, aErr := tsr.At(0, 1, ch) // graph 0 edge, channel ch
		require.NoError(t, aErr)
		require.Equal(t, 10.0+float64(ch), v)

		v, aErr = tsr.At(2, 3, ch) // graph 1 edge shifted by offset 2
		require.NoError(t, aErr)
		require.Equal(t, 20.0+float64(ch), v)

		v, aErr = tsr.At(0, 3, ch) // cross-block cell stays zero
		require.NoError(t, aErr)
		require.Equal(t, 0.0, v)
	}
}

// TestBuildDenseUnionEquivalence verifies the dense opt-in produces the
// same cells as the sparse default.
func TestBuildDenseUnionEquivalence(t *testing.T) {
	records := threePairs(t, 2)

	sparse, err := batch.Build(records)
	require.NoError(t, err)
	dense, err := batch.Build(records, batch.WithDenseUnion())
	require.NoError(t, err)

	require.IsType(t, &matrix.COO{}, sparse.Adjacency())
	require.IsType(t, &matrix.Dense{}, dense.Adjacency())
	require.True(t, matrix.Equal(sparse.Adjacency(), dense.Adjacency()))
	require.Equal(t, sparse.SegmentIndex(), dense.SegmentIndex())
}

// TestBuildWorkersEquivalence verifies parallel assembly is content-equal
// to the sequential run: each record owns a precomputed disjoint range, so
// worker count must never leak into the output.
func TestBuildWorkersEquivalence(t *testing.T) {
	records := make([]*batch.Record, 0, 9)
	records = append(records, threePairs(t, 3)...)
	records = append(records, threePairs(t, 3)...)
	records = append(records, threePairs(t, 3)...)

	seq, err := batch.Build(records)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 16} {
		par, pErr := batch.Build(records, batch.WithWorkers(workers))
		require.NoError(t, pErr)
		require.True(t, matrix.Equal(seq.Adjacency(), par.Adjacency()))
		require.True(t, matrix.Equal(seq.NodeAttributes(), par.NodeAttributes()))
		require.Equal(t, seq.SegmentIndex(), par.SegmentIndex())
	}
}

// TestBuildValidation covers the fail-fast stage shared with Classify.
func TestBuildValidation(t *testing.T) {
	_, err := batch.Build(nil)
	require.ErrorIs(t, err, batch.ErrEmptyInput)

	_, err = batch.Build([]*batch.Record{nil})
	require.ErrorIs(t, err, batch.ErrNilRecord)

	_, err = batch.Build([]*batch.Record{pairRecord(t, 4, 0), pairRecord(t, 5, 0)})
	require.ErrorIs(t, err, batch.ErrAttributeWidth)

	withEdges, err := batch.NewRecord(pairAdjacency(t), attrs(t, 2, 4, 0), edgeTensor(t, 1, 1))
	require.NoError(t, err)
	_, err = batch.Build([]*batch.Record{pairRecord(t, 4, 0), withEdges})
	require.ErrorIs(t, err, batch.ErrEdgeAttrMismatch)
}

// TestBuildSparseInputs verifies records carrying sparse adjacency flow
// through the union untouched.
func TestBuildSparseInputs(t *testing.T) {
	sp, err := matrix.NewCOOFrom(2, 2, []int{0, 1}, []int{1, 0}, []float64{7, 7})
	require.NoError(t, err)
	rec, err := batch.NewRecord(sp, attrs(t, 2, 1, 0), nil)
	require.NoError(t, err)

	res, err := batch.Build([]*batch.Record{rec, pairRecord(t, 1, 0)})
	require.NoError(t, err)
	require.Equal(t, 7.0, at(t, res.Adjacency(), 0, 1))
	require.Equal(t, 1.0, at(t, res.Adjacency(), 2, 3))
	require.Equal(t, 4, matrix.CountNonZero(res.Adjacency()))
}
