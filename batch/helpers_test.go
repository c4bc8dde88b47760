// SPDX-License-Identifier: MIT
// Package batch_test — shared fixtures for the batch tests. Fixtures build
// small graphs by hand so expected union shapes stay obvious in the
// assertions.
package batch_test

import (
	"testing"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
	"github.com/stretchr/testify/require"
)

// pairAdjacency returns the 2x2 adjacency of a single undirected edge.
func pairAdjacency(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(2, 2, []float64{
		0, 1,
		1, 0,
	})
	require.NoError(t, err)

	return m
}

// attrs builds an n×f Dense whose cell (i,d) is base + 10*i + d; distinct
// values per cell make row-placement mistakes visible in assertions.
func attrs(t *testing.T, n, f int, base float64) *matrix.Dense {
	t.Helper()
	data := make([]float64, 0, n*f)
	for i := 0; i < n; i++ {
		for d := 0; d < f; d++ {
			data = append(data, base+float64(10*i+d))
		}
	}
	m, err := matrix.NewDenseFrom(n, f, data)
	require.NoError(t, err)

	return m
}

// pairRecord returns a validated 2-node single-edge record with f-wide
// attributes offset by base.
func pairRecord(t *testing.T, f int, base float64) *batch.Record {
	t.Helper()
	rec, err := batch.NewRecord(pairAdjacency(t), attrs(t, 2, f, base), nil)
	require.NoError(t, err)

	return rec
}

// edgeTensor builds a 2x2xS tensor carrying val on both off-diagonal cells
// of every channel, zero elsewhere (matching pairAdjacency's sparsity).
func edgeTensor(t *testing.T, s int, val float64) matrix.Tensor {
	t.Helper()
	tsr, err := matrix.NewDenseTensor(2, 2, s)
	require.NoError(t, err)
	for ch := 0; ch < s; ch++ {
		require.NoError(t, tsr.Set(0, 1, ch, val+float64(ch)))
		require.NoError(t, tsr.Set(1, 0, ch, val+float64(ch)))
	}

	return tsr
}

// at reads m[i][j] or fails the test.
func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
