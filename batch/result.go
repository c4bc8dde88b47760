// SPDX-License-Identifier: MIT

// Package batch: Result is the read-only view over the builder output.
// The Component selector is the sole consumption contract — downstream
// layers pick components by symbolic tag, never by reaching into fields,
// so alternate implementations may change internal layout transparently.
package batch

import (
	"fmt"

	"github.com/katalvlaran/gnnbatch/matrix"
)

// Component tags the selectable parts of a Result.
type Component uint8

const (
	// CompAdjacency — the ΣN×ΣN block-diagonal union adjacency.
	CompAdjacency Component = iota

	// CompNodeAttributes — the ΣN×F row-stacked node-attribute matrix.
	CompNodeAttributes

	// CompEdgeAttributes — the ΣN×ΣN×S per-channel block-diagonal tensor;
	// unavailable when the batch carried no edge attributes.
	CompEdgeAttributes

	// CompSegmentIndex — the length-ΣN vector mapping union node k to its
	// source graph index, non-decreasing by construction.
	CompSegmentIndex
)

// componentNames is indexed by Component; kept in declaration order.
var componentNames = [...]string{
	"Adjacency", "NodeAttributes", "EdgeAttributes", "SegmentIndex",
}

// String renders the tag name, or "Component(n)" outside the enum.
func (c Component) String() string {
	if int(c) < len(componentNames) {
		return componentNames[c]
	}

	return fmt.Sprintf("Component(%d)", uint8(c))
}

// Result is the immutable output of one Build invocation. It holds no
// caches and no resources; discard it when consumers are done. Safe for
// concurrent reads without locking.
type Result struct {
	adj       matrix.Matrix // block-diagonal, ΣN×ΣN
	nodeAttrs *matrix.Dense // ΣN×F, rows in input order
	edgeAttrs matrix.Tensor // per-channel block-diagonal; nil when absent
	segment   []int         // length ΣN, non-decreasing
	offsets   []int         // length k+1 node-count prefix sums (for Block)
	mode      Mode          // resolved at build time from the input set
}

// Select returns the requested components in requested order.
//
// Behavior highlights:
//   - Duplicate tags are permitted and return the same component object
//     multiple times — shared read-only references, never copies, which is
//     sound because the result is immutable.
//   - Dynamic types per tag: CompAdjacency → matrix.Matrix,
//     CompNodeAttributes → *matrix.Dense, CompEdgeAttributes →
//     matrix.Tensor, CompSegmentIndex → []int.
//
// Errors:
//   - ErrUnknownComponent for a tag outside the enum,
//   - ErrComponentUnavailable for CompEdgeAttributes when none were built.
//
// Complexity:
//   - O(len(tags)); no data is copied.
func (r *Result) Select(tags ...Component) ([]any, error) {
	out := make([]any, 0, len(tags))
	for _, tag := range tags {
		switch tag {
		case CompAdjacency:
			out = append(out, r.adj)
		case CompNodeAttributes:
			out = append(out, r.nodeAttrs)
		case CompEdgeAttributes:
			if r.edgeAttrs == nil {
				return nil, fmt.Errorf("Select(%s): %w", tag, ErrComponentUnavailable)
			}
			out = append(out, r.edgeAttrs)
		case CompSegmentIndex:
			out = append(out, r.segment)
		default:
			return nil, fmt.Errorf("Select(%s): %w", tag, ErrUnknownComponent)
		}
	}

	return out, nil
}

// ---------- Typed facades (delegate to the same backing data) ----------

// Adjacency returns the union adjacency (shared, read-only).
func (r *Result) Adjacency() matrix.Matrix { return r.adj }

// NodeAttributes returns the stacked node-attribute matrix (shared,
// read-only). Row k belongs to the same node as adjacency index k.
func (r *Result) NodeAttributes() *matrix.Dense { return r.nodeAttrs }

// EdgeAttributes returns the union edge-attribute tensor, or
// ErrComponentUnavailable when the batch carried none.
func (r *Result) EdgeAttributes() (matrix.Tensor, error) {
	if r.edgeAttrs == nil {
		return nil, fmt.Errorf("EdgeAttributes: %w", ErrComponentUnavailable)
	}

	return r.edgeAttrs, nil
}

// HasEdgeAttributes reports whether edge attributes were built.
// Complexity: O(1).
func (r *Result) HasEdgeAttributes() bool { return r.edgeAttrs != nil }

// SegmentIndex returns the segment-index vector (shared, read-only —
// consumers must not mutate it).
func (r *Result) SegmentIndex() []int { return r.segment }

// Mode returns the access mode resolved from the input set at build time,
// identical to what Classify would report for the same records.
// Complexity: O(1).
func (r *Result) Mode() Mode { return r.mode }

// Graphs returns the number of input records. Complexity: O(1).
func (r *Result) Graphs() int { return len(r.offsets) - 1 }

// Nodes returns the union node total ΣN. Complexity: O(1).
func (r *Result) Nodes() int { return r.offsets[len(r.offsets)-1] }

// Block extracts the g-th diagonal block of the union adjacency — the
// rows/cols whose segment index equals g — reproducing the g-th input
// adjacency exactly.
//
// Implementation:
//   - Stage 1 (Validate): g within [0, Graphs()).
//   - Stage 2 (Execute): enumerate union non-zeros, keep entries inside
//     the block's offset range, re-base both axes.
//
// Errors:
//   - ErrBlockOutOfRange.
//
// Complexity:
//   - O(union nnz) sparse, O(T²) dense; block assembly is O(block nnz).
func (r *Result) Block(g int) (matrix.Matrix, error) {
	if g < 0 || g >= r.Graphs() {
		return nil, fmt.Errorf("Block(%d): %w", g, ErrBlockOutOfRange)
	}
	lo, hi := r.offsets[g], r.offsets[g+1]

	// Collect block entries re-based to local coordinates. Union entries
	// are row-major, so the collected slices stay row-major.
	var ri, ci []int
	var vv []float64
	forEachNonZero(r.adj, func(i, j int, v float64) {
		if i >= lo && i < hi && j >= lo && j < hi {
			ri = append(ri, i-lo)
			ci = append(ci, j-lo)
			vv = append(vv, v)
		}
	})

	// An edge-free block still has a well-defined shape.
	side := hi - lo
	out, err := matrix.NewCOOFrom(side, side, ri, ci, vv)
	if err != nil {
		return nil, fmt.Errorf("Block(%d): %w", g, err)
	}

	return out, nil
}
