// SPDX-License-Identifier: MIT

// Package convert: raw matrix-triple ingestion. This is the stable input
// contract for external loaders: three nested slices, validated for
// rectangularity here, validated for graph invariants in batch.NewRecord.
package convert

import (
	"fmt"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
)

// FromMatrices builds a Record from row-slice data:
// adjacency n×n, node attributes n×f, edge attributes n×n×s or nil.
//
// Implementation:
//   - Stage 1 (Validate): non-nil adjacency, every nested slice
//     rectangular — ragged data fails with ErrRagged before any copy.
//   - Stage 2 (Prepare): flatten into row-major (channel-last for the
//     tensor) backing slices, single allocation each.
//   - Stage 3 (Finalize): delegate invariant checks to batch.NewRecord.
//
// Errors:
//   - ErrNilInput, ErrRagged (stage 1); batch/matrix sentinels (stage 3).
//
// Complexity:
//   - O(n² + n·f + n²·s) time and memory — one pass, one copy.
func FromMatrices(adj, nodeAttrs [][]float64, edgeAttrs [][][]float64, opts ...Option) (*batch.Record, error) {
	o := gatherOptions(opts...)

	// Stage 1+2: adjacency.
	if len(adj) == 0 {
		return nil, fmt.Errorf("FromMatrices: adjacency: %w", ErrNilInput)
	}
	n := len(adj)
	adjDense, err := denseFromRows(adj, n, n)
	if err != nil {
		return nil, fmt.Errorf("FromMatrices: adjacency: %w", err)
	}

	// Stage 1+2: node attributes (width taken from the first row).
	if len(nodeAttrs) != n {
		return nil, fmt.Errorf("FromMatrices: node attributes: %d rows, want %d: %w",
			len(nodeAttrs), n, ErrRagged)
	}
	attrDense, err := denseFromRows(nodeAttrs, n, len(nodeAttrs[0]))
	if err != nil {
		return nil, fmt.Errorf("FromMatrices: node attributes: %w", err)
	}

	// Stage 1+2: optional edge attributes.
	var tensor matrix.Tensor
	if edgeAttrs != nil {
		tensor, err = tensorFromSlices(edgeAttrs, n)
		if err != nil {
			return nil, fmt.Errorf("FromMatrices: edge attributes: %w", err)
		}
	}

	// Stage 3: graph invariants live in one place — the record boundary.
	return batch.NewRecord(adjDense, attrDense, tensor, o.recordOpts...)
}

// denseFromRows flattens rows into a wantRows×wantCols Dense, rejecting
// ragged input. Complexity: O(rows·cols).
func denseFromRows(rows [][]float64, wantRows, wantCols int) (*matrix.Dense, error) {
	if len(rows) != wantRows {
		return nil, fmt.Errorf("%d rows, want %d: %w", len(rows), wantRows, ErrRagged)
	}
	if wantCols <= 0 {
		return nil, matrix.ErrInvalidDimensions
	}
	data := make([]float64, 0, wantRows*wantCols)
	for i, row := range rows {
		if len(row) != wantCols {
			return nil, fmt.Errorf("row %d has %d cols, want %d: %w",
				i, len(row), wantCols, ErrRagged)
		}
		data = append(data, row...)
	}

	return matrix.NewDenseFrom(wantRows, wantCols, data)
}

// tensorFromSlices flattens an n×n×s nested slice into a channel-last
// DenseTensor, rejecting ragged input. A uniform channel count of zero
// yields nil (equivalent to "no edge attributes").
// Complexity: O(n²·s).
func tensorFromSlices(cube [][][]float64, n int) (matrix.Tensor, error) {
	if len(cube) != n {
		return nil, fmt.Errorf("%d rows, want %d: %w", len(cube), n, ErrRagged)
	}
	if len(cube[0]) == 0 {
		return nil, fmt.Errorf("row 0 is empty: %w", ErrRagged)
	}
	s := len(cube[0][0])
	if s == 0 {
		return nil, nil // zero channels: no edge attributes
	}
	data := make([]float64, 0, n*n*s)
	for i, face := range cube {
		if len(face) != n {
			return nil, fmt.Errorf("row %d has %d cols, want %d: %w",
				i, len(face), n, ErrRagged)
		}
		for j, fibre := range face {
			if len(fibre) != s {
				return nil, fmt.Errorf("entry (%d,%d) has %d channels, want %d: %w",
					i, j, len(fibre), s, ErrRagged)
			}
			data = append(data, fibre...)
		}
	}

	return matrix.NewDenseTensorFrom(n, n, s, data)
}
