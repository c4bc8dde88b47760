// SPDX-License-Identifier: MIT
// Package batch_test contains unit tests for the result selector protocol
// and diagonal-block extraction.
package batch_test

import (
	"testing"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
	"github.com/stretchr/testify/require"
)

// TestComponentString covers the tag names and the out-of-range fallback.
func TestComponentString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Adjacency", batch.CompAdjacency.String())
	require.Equal(t, "NodeAttributes", batch.CompNodeAttributes.String())
	require.Equal(t, "EdgeAttributes", batch.CompEdgeAttributes.String())
	require.Equal(t, "SegmentIndex", batch.CompSegmentIndex.String())
	require.Equal(t, "Component(9)", batch.Component(9).String())
}

// TestSelectOrder verifies components come back in requested order with
// request-specific dynamic types.
func TestSelectOrder(t *testing.T) {
	res, err := batch.Build(threePairs(t, 4))
	require.NoError(t, err)

	got, err := res.Select(batch.CompSegmentIndex, batch.CompNodeAttributes)
	require.NoError(t, err)
	require.Len(t, got, 2)

	seg, ok := got[0].([]int) // first requested tag arrives first
	require.True(t, ok)
	require.Equal(t, []int{0, 0, 1, 1, 2, 2}, seg)

	na, ok := got[1].(*matrix.Dense)
	require.True(t, ok)
	require.Same(t, res.NodeAttributes(), na) // shared reference, no copy
}

// TestSelectDuplicates verifies duplicate tags return the same object twice.
func TestSelectDuplicates(t *testing.T) {
	res, err := batch.Build(threePairs(t, 2))
	require.NoError(t, err)

	got, err := res.Select(batch.CompAdjacency, batch.CompAdjacency)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Same(t, got[0], got[1]) // same backing component
}

// TestSelectErrors covers unknown tags and unavailable components.
func TestSelectErrors(t *testing.T) {
	res, err := batch.Build(threePairs(t, 2)) // no edge attributes
	require.NoError(t, err)

	_, err = res.Select(batch.Component(42))
	require.ErrorIs(t, err, batch.ErrUnknownComponent)

	_, err = res.Select(batch.CompAdjacency, batch.CompEdgeAttributes)
	require.ErrorIs(t, err, batch.ErrComponentUnavailable)
}

// TestSelectEdgeAttributes verifies the tensor component when built.
func TestSelectEdgeAttributes(t *testing.T) {
	rec, err := batch.NewRecord(pairAdjacency(t), attrs(t, 2, 2, 0), edgeTensor(t, 2, 5))
	require.NoError(t, err)
	res, err := batch.Build([]*batch.Record{rec})
	require.NoError(t, err)

	got, err := res.Select(batch.CompEdgeAttributes)
	require.NoError(t, err)
	tsr, ok := got[0].(matrix.Tensor)
	require.True(t, ok)
	_, _, s := tsr.Dims()
	require.Equal(t, 2, s)
}

// TestResultMode verifies the mode recorded at build time matches what
// Classify reports for the same records.
func TestResultMode(t *testing.T) {
	records := threePairs(t, 2) // distinct weights: Batch
	res, err := batch.Build(records)
	require.NoError(t, err)
	require.Equal(t, batch.ModeBatch, res.Mode())

	solo, err := batch.Build(records[:1])
	require.NoError(t, err)
	require.Equal(t, batch.ModeSingle, solo.Mode())

	shared := pairAdjacency(t)
	r1, err := batch.NewRecord(shared, attrs(t, 2, 2, 0), nil)
	require.NoError(t, err)
	r2, err := batch.NewRecord(shared, attrs(t, 2, 2, 50), nil)
	require.NoError(t, err)
	mixed, err := batch.Build([]*batch.Record{r1, r2})
	require.NoError(t, err)
	require.Equal(t, batch.ModeMixed, mixed.Mode())
}

// TestBlockRoundTrip verifies that every diagonal block reproduces its
// source adjacency exactly, in local coordinates.
func TestBlockRoundTrip(t *testing.T) {
	records := threePairs(t, 2)
	res, err := batch.Build(records)
	require.NoError(t, err)

	for g, rec := range records {
		blk, bErr := res.Block(g)
		require.NoError(t, bErr)
		require.Truef(t, matrix.Equal(rec.Adjacency(), blk),
			"block %d differs from its source adjacency", g)
	}
}

// TestBlockEdgeFree verifies extraction of a block with no edges.
func TestBlockEdgeFree(t *testing.T) {
	one, err := matrix.NewDenseFrom(1, 1, []float64{0})
	require.NoError(t, err)
	isolated, err := batch.NewRecord(one, attrs(t, 1, 2, 0), nil)
	require.NoError(t, err)

	res, err := batch.Build([]*batch.Record{pairRecord(t, 2, 0), isolated})
	require.NoError(t, err)

	blk, err := res.Block(1)
	require.NoError(t, err)
	require.Equal(t, 1, blk.Rows())
	require.Equal(t, 0, matrix.CountNonZero(blk))
}

// TestBlockOutOfRange covers index validation.
func TestBlockOutOfRange(t *testing.T) {
	res, err := batch.Build(threePairs(t, 2))
	require.NoError(t, err)

	_, err = res.Block(-1)
	require.ErrorIs(t, err, batch.ErrBlockOutOfRange)
	_, err = res.Block(3)
	require.ErrorIs(t, err, batch.ErrBlockOutOfRange)
}

// TestBlockFromDenseUnion verifies extraction works over the dense
// representation too.
func TestBlockFromDenseUnion(t *testing.T) {
	records := threePairs(t, 2)
	res, err := batch.Build(records, batch.WithDenseUnion())
	require.NoError(t, err)

	blk, err := res.Block(2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(records[2].Adjacency(), blk))
}
