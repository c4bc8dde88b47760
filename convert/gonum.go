// SPDX-License-Identifier: MIT

// Package convert: gonum graph interop. Import path for graph algorithms
// and generators living in gonum.org/v1/gonum; export path for handing a
// record's topology back to that ecosystem. Node ordering is by ascending
// node ID — the only deterministic order a graph.Graph offers.
package convert

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
)

// NodeAttrFn produces the node-attribute value for one node and one
// attribute dimension. It MUST be pure: FromGonum calls it exactly once
// per (node, dim) pair, in row-major order.
type NodeAttrFn func(node graph.Node, dim int) float64

// FromGonum builds a Record from any gonum graph.
//
// Implementation:
//   - Stage 1 (Validate): non-nil graph and attribute function, width ≥ 1,
//     at least one node.
//   - Stage 2 (Prepare): materialize nodes, sort by ID ascending, build
//     the ID→row index; materialize and sort each adjacency row so sparse
//     appends arrive pre-ordered.
//   - Stage 3 (Execute): append one entry per (u, v) neighbor pair; when
//     the graph implements graph.Weighted its edge weights are preserved,
//     otherwise entries are unit. Undirected gonum graphs report each
//     neighbor from both endpoints, so the adjacency comes out symmetric
//     without mirroring here.
//   - Stage 4 (Finalize): fill node attributes via fn, delegate invariants
//     to batch.NewRecord. Gonum carries no per-edge channel data, so the
//     record has no edge attributes.
//
// Errors:
//   - ErrNilInput, ErrNilAttrFn, ErrNoNodes, matrix.ErrInvalidDimensions;
//     batch sentinels from record construction.
//
// Determinism:
//   - Output depends only on the graph content, never on iterator order.
//
// Complexity:
//   - O(V log V + E log E) for the orderings, O(V·width + E) for the fill.
func FromGonum(g graph.Graph, width int, fn NodeAttrFn, opts ...Option) (*batch.Record, error) {
	o := gatherOptions(opts...)

	// Stage 1: boundary validation.
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilInput)
	}
	if fn == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilAttrFn)
	}
	if width < 1 {
		return nil, fmt.Errorf("FromGonum: width=%d: %w", width, matrix.ErrInvalidDimensions)
	}

	// Stage 2: deterministic node order and index.
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return nil, fmt.Errorf("FromGonum: %w", ErrNoNodes)
	}
	sort.Slice(nodes, func(a, b int) bool { return nodes[a].ID() < nodes[b].ID() })
	n := len(nodes)
	index := make(map[int64]int, n) // node ID → row
	for i, u := range nodes {
		index[u.ID()] = i
	}

	// Materialize and order every adjacency row; count entries for the
	// pre-sized builder in the same pass.
	nbrs := make([][]graph.Node, n)
	nnz := 0
	for i, u := range nodes {
		row := graph.NodesOf(g.From(u.ID()))
		sort.Slice(row, func(a, b int) bool { return row[a].ID() < row[b].ID() })
		nbrs[i] = row
		nnz += len(row)
	}

	// Stage 3: sparse adjacency, entries pre-ordered row-major.
	wg, weighted := g.(graph.Weighted)
	b, err := matrix.NewCOOBuilder(n, n, nnz)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i, u := range nodes {
		for _, v := range nbrs[i] {
			w := unitWeight
			if weighted && !o.binary {
				if ew, ok := wg.Weight(u.ID(), v.ID()); ok {
					w = ew
				}
			}
			// Index and bounds are valid by construction of index map.
			_ = b.Append(i, index[v.ID()], w)
		}
	}
	adj, err := b.Finish()
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	// Stage 4: node attributes in row-major (node, dim) order.
	attrData := make([]float64, 0, n*width)
	for _, u := range nodes {
		for d := 0; d < width; d++ {
			attrData = append(attrData, fn(u, d))
		}
	}
	attrs, err := matrix.NewDenseFrom(n, width, attrData)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: attributes: %w", err)
	}

	return batch.NewRecord(adj, attrs, nil, o.recordOpts...)
}

// ToGonum exports a record's topology as a weighted directed gonum graph:
// node row i becomes node ID i, every non-zero adjacency entry becomes a
// weighted edge. Simple graphs reject self edges, so a non-zero diagonal
// fails with ErrSelfLoop instead of silently dropping topology.
//
// Complexity: O(V + nnz).
func ToGonum(rec *batch.Record) (*simple.WeightedDirectedGraph, error) {
	if rec == nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilInput)
	}

	// Detect self loops before mutating the output graph: export is
	// all-or-nothing, matching the package's no-partial-result policy.
	var loop error
	adj := rec.Adjacency()
	forEach(adj, func(i, j int, _ float64) {
		if i == j && loop == nil {
			loop = fmt.Errorf("ToGonum: entry (%d,%d): %w", i, j, ErrSelfLoop)
		}
	})
	if loop != nil {
		return nil, loop
	}

	out := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < rec.N(); i++ {
		out.AddNode(simple.Node(i))
	}
	forEach(adj, func(i, j int, v float64) {
		out.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(i),
			T: simple.Node(j),
			W: v,
		})
	})

	return out, nil
}

// forEach enumerates non-zero entries through the sparse fast path when
// available, falling back to a full scan.
func forEach(m matrix.Matrix, fn func(i, j int, v float64)) {
	if nz, ok := m.(matrix.NonZeroer); ok {
		nz.DoNonZero(fn)

		return
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v != 0 {
				fn(i, j, v)
			}
		}
	}
}
