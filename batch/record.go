// SPDX-License-Identifier: MIT

// Package batch: Record is the validated per-graph value every other
// operation builds on. Validation happens exactly once, at the boundary;
// internal code then assumes fixed shapes and types.
package batch

import (
	"fmt"

	"github.com/katalvlaran/gnnbatch/matrix"
)

// Record holds one graph's adjacency, node-attribute and edge-attribute
// matrices plus its node count. Immutable once constructed; the union
// builder never mutates a record, and callers must not mutate the matrices
// they handed in.
type Record struct {
	n         int           // node count (adjacency side length)
	f         int           // node-attribute width
	s         int           // edge-attribute channel count; 0 == absent
	adj       matrix.Matrix // N×N, binary or weighted, sparse-eligible
	nodeAttrs *matrix.Dense // N×F
	edgeAttrs matrix.Tensor // N×N×S, nil when s == 0
}

// NewRecord validates and wraps one graph.
//
// Validation order (fail-fast, first violation wins):
//   - Stage 1: adjacency non-nil and square.
//   - Stage 2: node attributes non-nil with exactly N rows.
//   - Stage 3: edge attributes, when present, have N×N faces; a tensor
//     with zero channels normalizes to "absent" (the two are equivalent).
//   - Stage 4: numeric policy — NaN/±Inf rejected unless disabled via
//     WithNoValidateNaNInf.
//
// Errors:
//   - ErrShapeMismatch (stages 1–3, wrapping the matrix-level sentinel),
//   - matrix.ErrNaNInf (stage 4).
//
// Determinism:
//   - Pure value construction; no side effects, no input mutation.
//
// Complexity:
//   - O(1) shape checks + O(cells) numeric scan under the default policy.
func NewRecord(adj matrix.Matrix, nodeAttrs *matrix.Dense, edgeAttrs matrix.Tensor, opts ...Option) (*Record, error) {
	o := gatherOptions(opts...)

	// Stage 1: adjacency shape.
	if err := matrix.ValidateNotNil(adj); err != nil {
		return nil, fmt.Errorf("NewRecord: adjacency: %v: %w", err, ErrShapeMismatch)
	}
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("NewRecord: adjacency: %v: %w", err, ErrShapeMismatch)
	}
	n := adj.Rows()

	// Stage 2: node-attribute alignment.
	if nodeAttrs == nil {
		return nil, fmt.Errorf("NewRecord: node attributes: %w", ErrShapeMismatch)
	}
	if err := matrix.ValidateRows(nodeAttrs, n); err != nil {
		return nil, fmt.Errorf("NewRecord: node attributes: %v: %w", err, ErrShapeMismatch)
	}

	// Stage 3: edge-attribute faces; zero channels normalizes to absent.
	s := 0
	if edgeAttrs != nil {
		_, _, s = edgeAttrs.Dims()
		if s == 0 {
			edgeAttrs = nil // S=0 and "no edge attributes" are equivalent
		} else if err := matrix.ValidateTensorFace(edgeAttrs, n); err != nil {
			return nil, fmt.Errorf("NewRecord: edge attributes: %v: %w", err, ErrShapeMismatch)
		}
	}

	// Stage 4: numeric policy.
	if o.validateNaNInf {
		if err := matrix.ValidateFiniteMatrix(adj); err != nil {
			return nil, fmt.Errorf("NewRecord: adjacency: %w", err)
		}
		if err := matrix.ValidateFiniteMatrix(nodeAttrs); err != nil {
			return nil, fmt.Errorf("NewRecord: node attributes: %w", err)
		}
		if edgeAttrs != nil {
			if err := matrix.ValidateFiniteTensor(edgeAttrs); err != nil {
				return nil, fmt.Errorf("NewRecord: edge attributes: %w", err)
			}
		}
	}

	return &Record{
		n:         n,
		f:         nodeAttrs.Cols(),
		s:         s,
		adj:       adj,
		nodeAttrs: nodeAttrs,
		edgeAttrs: edgeAttrs,
	}, nil
}

// N returns the node count. Complexity: O(1).
func (r *Record) N() int { return r.n }

// AttrWidth returns the node-attribute width F. Complexity: O(1).
func (r *Record) AttrWidth() int { return r.f }

// EdgeAttrWidth returns the edge-attribute channel count S, 0 when the
// record carries no edge attributes. Complexity: O(1).
func (r *Record) EdgeAttrWidth() int { return r.s }

// HasEdgeAttrs reports whether the record carries edge attributes.
// Complexity: O(1).
func (r *Record) HasEdgeAttrs() bool { return r.s > 0 }

// Adjacency returns the N×N adjacency matrix (shared, read-only).
func (r *Record) Adjacency() matrix.Matrix { return r.adj }

// NodeAttrs returns the N×F node-attribute matrix (shared, read-only).
func (r *Record) NodeAttrs() *matrix.Dense { return r.nodeAttrs }

// EdgeAttrs returns the N×N×S edge-attribute tensor, nil when absent.
func (r *Record) EdgeAttrs() matrix.Tensor { return r.edgeAttrs }
