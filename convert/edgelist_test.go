// SPDX-License-Identifier: MIT
// Package convert_test contains unit tests for edge-list ingestion.
package convert_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gnnbatch/convert"
	"github.com/katalvlaran/gnnbatch/matrix"
	"github.com/stretchr/testify/require"
)

// edgeAt reads the adjacency cell (i,j) of a record built in this file.
func edgeAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// TestFromEdgeListDirected verifies default directed interpretation with
// preserved weights.
func TestFromEdgeListDirected(t *testing.T) {
	rec, err := convert.FromEdgeList(3,
		[]convert.Edge{
			{From: 0, To: 1, Weight: 2.5},
			{From: 2, To: 0, Weight: 4},
		},
		[][]float64{{1}, {2}, {3}})
	require.NoError(t, err)

	adj := rec.Adjacency()
	require.Equal(t, 2.5, edgeAt(t, adj, 0, 1))
	require.Equal(t, 0.0, edgeAt(t, adj, 1, 0)) // no mirror by default
	require.Equal(t, 4.0, edgeAt(t, adj, 2, 0))
	require.Equal(t, 2, matrix.CountNonZero(adj))
}

// TestFromEdgeListUndirected verifies mirroring, with loops written once.
func TestFromEdgeListUndirected(t *testing.T) {
	rec, err := convert.FromEdgeList(2,
		[]convert.Edge{
			{From: 0, To: 1, Weight: 3},
			{From: 1, To: 1, Weight: 7}, // loop
		},
		[][]float64{{1}, {2}},
		convert.WithUndirected())
	require.NoError(t, err)

	adj := rec.Adjacency()
	require.Equal(t, 3.0, edgeAt(t, adj, 0, 1))
	require.Equal(t, 3.0, edgeAt(t, adj, 1, 0)) // mirrored
	require.Equal(t, 7.0, edgeAt(t, adj, 1, 1)) // loop stored once
	require.Equal(t, 3, matrix.CountNonZero(adj))
}

// TestFromEdgeListBinary verifies unit weights under the binary policy.
func TestFromEdgeListBinary(t *testing.T) {
	rec, err := convert.FromEdgeList(2,
		[]convert.Edge{{From: 0, To: 1, Weight: 42}},
		[][]float64{{1}, {2}},
		convert.WithBinary())
	require.NoError(t, err)

	require.Equal(t, 1.0, edgeAt(t, rec.Adjacency(), 0, 1))
}

// TestFromEdgeListDuplicateLastWins verifies repeated coordinates collapse
// to the last listed weight, matching dense-cell overwrite semantics.
func TestFromEdgeListDuplicateLastWins(t *testing.T) {
	rec, err := convert.FromEdgeList(2,
		[]convert.Edge{
			{From: 0, To: 1, Weight: 1},
			{From: 0, To: 1, Weight: 9}, // overwrites
		},
		[][]float64{{1}, {2}})
	require.NoError(t, err)

	require.Equal(t, 9.0, edgeAt(t, rec.Adjacency(), 0, 1))
	require.Equal(t, 1, matrix.CountNonZero(rec.Adjacency()))
}

// TestFromEdgeListValidation covers vertex-space and numeric failures.
func TestFromEdgeListValidation(t *testing.T) {
	na := [][]float64{{1}, {2}}

	_, err := convert.FromEdgeList(0, nil, nil)
	require.ErrorIs(t, err, convert.ErrNoNodes) // no vertex space

	_, err = convert.FromEdgeList(2,
		[]convert.Edge{{From: 0, To: 2, Weight: 1}}, na)
	require.ErrorIs(t, err, convert.ErrVertexRange) // endpoint past n

	_, err = convert.FromEdgeList(2,
		[]convert.Edge{{From: -1, To: 0, Weight: 1}}, na)
	require.ErrorIs(t, err, convert.ErrVertexRange) // negative endpoint

	_, err = convert.FromEdgeList(2,
		[]convert.Edge{{From: 0, To: 1, Weight: math.NaN()}}, na)
	require.ErrorIs(t, err, matrix.ErrNaNInf) // non-finite weight

	_, err = convert.FromEdgeList(2,
		[]convert.Edge{{From: 0, To: 1, Weight: 1}},
		[][]float64{{1}}) // attribute rows must cover every vertex
	require.ErrorIs(t, err, convert.ErrRagged)
}

// TestFromEdgeListNoEdges verifies an edge-free vertex set still builds.
func TestFromEdgeListNoEdges(t *testing.T) {
	rec, err := convert.FromEdgeList(3, nil, [][]float64{{1}, {2}, {3}})
	require.NoError(t, err)
	require.Equal(t, 3, rec.N())
	require.Equal(t, 0, matrix.CountNonZero(rec.Adjacency()))
}
