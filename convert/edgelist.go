// SPDX-License-Identifier: MIT

// Package convert: edge-list ingestion. Loaders that enumerate edges
// (citation pairs, bonds, grid neighbors) land here; the adapter produces
// a sparse adjacency without ever materializing the n×n zero region.
package convert

import (
	"fmt"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
)

// Edge is one weighted adjacency entry over indexed vertices.
type Edge struct {
	From   int     // source vertex index, in [0, n)
	To     int     // target vertex index, in [0, n)
	Weight float64 // adjacency entry; 1 for unweighted data
}

// FromEdgeList builds a Record with sparse adjacency from a weighted edge
// list over n vertices.
//
// Implementation:
//   - Stage 1 (Validate): n ≥ 1, every endpoint in range, every weight
//     finite.
//   - Stage 2 (Execute): append entries into a pre-sized sparse builder;
//     WithUndirected mirrors (u,v) into (v,u), loops written once;
//     WithBinary replaces weights with unit entries.
//   - Stage 3 (Finalize): Finish sorts and collapses duplicates
//     (last-write-wins, matching dense-cell overwrite semantics), then
//     batch.NewRecord enforces the graph invariants.
//
// Behavior highlights:
//   - Zero-weight edges are structural zeros and vanish from the sparse
//     form; use WithBinary for unweighted topologies.
//
// Errors:
//   - ErrNoNodes, ErrVertexRange, matrix.ErrNaNInf (stage 1);
//     batch sentinels (stage 3).
//
// Complexity:
//   - O(E log E) worst case (sort on unordered input), O(E) when edges
//     arrive row-major; memory O(E).
func FromEdgeList(n int, edges []Edge, nodeAttrs [][]float64, opts ...Option) (*batch.Record, error) {
	o := gatherOptions(opts...)

	// Stage 1: vertex-space and numeric validation before any writes.
	if n < 1 {
		return nil, fmt.Errorf("FromEdgeList: n=%d: %w", n, ErrNoNodes)
	}
	for k, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("FromEdgeList: edge %d (%d→%d): %w",
				k, e.From, e.To, ErrVertexRange)
		}
		if err := matrix.ValidateFinite(e.Weight); err != nil {
			return nil, fmt.Errorf("FromEdgeList: edge %d: %w", k, err)
		}
	}

	// Stage 2: pre-size for the worst case (every edge mirrored).
	capHint := len(edges)
	if !o.directed {
		capHint *= 2
	}
	b, err := matrix.NewCOOBuilder(n, n, capHint)
	if err != nil {
		return nil, fmt.Errorf("FromEdgeList: %w", err)
	}
	for _, e := range edges {
		w := e.Weight
		if o.binary {
			w = unitWeight
		}
		// In-range appends cannot fail; capacity was sized above.
		_ = b.Append(e.From, e.To, w)
		if !o.directed && e.From != e.To {
			_ = b.Append(e.To, e.From, w) // mirror; loops written once
		}
	}
	adj, err := b.Finish()
	if err != nil {
		return nil, fmt.Errorf("FromEdgeList: %w", err)
	}

	// Stage 3: attributes and record invariants.
	attrDense, err := denseFromRows(nodeAttrs, n, attrWidth(nodeAttrs))
	if err != nil {
		return nil, fmt.Errorf("FromEdgeList: node attributes: %w", err)
	}

	return batch.NewRecord(adj, attrDense, nil, o.recordOpts...)
}

// attrWidth reports the width of the first attribute row, 0 for empty
// input (denseFromRows then rejects the shape).
func attrWidth(rows [][]float64) int {
	if len(rows) == 0 {
		return 0
	}

	return len(rows[0])
}
