// SPDX-License-Identifier: MIT
// Package batch_test contains unit tests for access-mode classification.
package batch_test

import (
	"testing"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
	"github.com/stretchr/testify/require"
)

// TestModeString covers the enum names and the out-of-range fallback.
func TestModeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Single", batch.ModeSingle.String())
	require.Equal(t, "Batch", batch.ModeBatch.String())
	require.Equal(t, "Mixed", batch.ModeMixed.String())
	require.Equal(t, "Mode(7)", batch.Mode(7).String())
}

// TestClassifySingle verifies that exactly one record is always Single,
// whatever its topology.
func TestClassifySingle(t *testing.T) {
	mode, err := batch.Classify([]*batch.Record{pairRecord(t, 2, 0)})
	require.NoError(t, err)
	require.Equal(t, batch.ModeSingle, mode)
}

// TestClassifyMixedSharedObject covers the pointer-identity fast path:
// every record references the same adjacency object.
func TestClassifyMixedSharedObject(t *testing.T) {
	shared := pairAdjacency(t) // one topology object
	r1, err := batch.NewRecord(shared, attrs(t, 2, 3, 0), nil)
	require.NoError(t, err)
	r2, err := batch.NewRecord(shared, attrs(t, 2, 3, 100), nil)
	require.NoError(t, err)
	r3, err := batch.NewRecord(shared, attrs(t, 2, 3, 200), nil)
	require.NoError(t, err)

	mode, err := batch.Classify([]*batch.Record{r1, r2, r3})
	require.NoError(t, err)
	require.Equal(t, batch.ModeMixed, mode)
}

// TestClassifyMixedEqualValue covers the value-equality fallback: distinct
// adjacency objects carrying the same entries still classify as Mixed,
// even across dense and sparse representations.
func TestClassifyMixedEqualValue(t *testing.T) {
	dense := pairRecord(t, 2, 0) // dense 2-node edge

	sp, err := matrix.NewCOOFrom(2, 2, []int{0, 1}, []int{1, 0}, []float64{1, 1})
	require.NoError(t, err)
	sparse, err := batch.NewRecord(sp, attrs(t, 2, 2, 50), nil)
	require.NoError(t, err)

	mode, err := batch.Classify([]*batch.Record{dense, sparse})
	require.NoError(t, err)
	require.Equal(t, batch.ModeMixed, mode)
}

// TestClassifyBatch verifies that any differing adjacency settles Batch.
func TestClassifyBatch(t *testing.T) {
	weighted, err := matrix.NewDenseFrom(2, 2, []float64{
		0, 2, // same sparsity as pairAdjacency, different weight
		2, 0,
	})
	require.NoError(t, err)
	other, err := batch.NewRecord(weighted, attrs(t, 2, 2, 0), nil)
	require.NoError(t, err)

	mode, err := batch.Classify([]*batch.Record{pairRecord(t, 2, 0), other})
	require.NoError(t, err)
	require.Equal(t, batch.ModeBatch, mode)
}

// TestClassifyValidation covers the shared fail-fast checks and their
// priority: empty, nil entry, attribute width, edge-attribute presence.
func TestClassifyValidation(t *testing.T) {
	_, err := batch.Classify(nil)
	require.ErrorIs(t, err, batch.ErrEmptyInput) // empty set

	_, err = batch.Classify([]*batch.Record{pairRecord(t, 2, 0), nil})
	require.ErrorIs(t, err, batch.ErrNilRecord) // nil entry

	_, err = batch.Classify([]*batch.Record{pairRecord(t, 4, 0), pairRecord(t, 5, 0)})
	require.ErrorIs(t, err, batch.ErrAttributeWidth) // F mismatch (4 vs 5)

	withEdges, err := batch.NewRecord(pairAdjacency(t), attrs(t, 2, 2, 0), edgeTensor(t, 1, 1))
	require.NoError(t, err)
	_, err = batch.Classify([]*batch.Record{withEdges, pairRecord(t, 2, 0)})
	require.ErrorIs(t, err, batch.ErrEdgeAttrMismatch) // partial edge presence

	s2, err := batch.NewRecord(pairAdjacency(t), attrs(t, 2, 2, 0), edgeTensor(t, 2, 1))
	require.NoError(t, err)
	_, err = batch.Classify([]*batch.Record{withEdges, s2})
	require.ErrorIs(t, err, batch.ErrAttributeWidth) // S mismatch (1 vs 2)
}
