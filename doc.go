// Package gnnbatch turns collections of variably-sized graphs into the
// matrix form that graph neural networks consume — one "supergraph" whose
// adjacency is the block-diagonal union of the inputs, whose node and edge
// attributes are stacked along the node axis, and whose segment index maps
// every union node back to its source graph.
//
// 🚀 What is gnnbatch?
//
//	A small, deterministic, representation-only library:
//		• matrix/  — numeric substrate: row-major Dense, pre-sized sparse COO,
//		             rank-3 edge-attribute tensors, shape validators
//		• batch/   — Record (one validated graph), Classify (Single/Batch/Mixed),
//		             Build (disjoint-union batching), Result (tag-selector access)
//		• convert/ — boundary adapters: matrix triples, edge lists, gonum graphs
//		• gen/     — deterministic synthetic Record constructors for fixtures
//
// ✨ Why choose gnnbatch?
//
//   - Fail-fast contracts – malformed input is rejected before any assembly
//   - Sparse by default – no dense ΣN×ΣN blow-up, no padding
//   - Deterministic – output fully determined by input order, even when the
//     per-graph copy phase runs on multiple workers
//   - Representation only – no file formats, no network, no NN layers inside
//
// Quick ASCII example — three 2-node complete graphs batched into one:
//
//	[1 1]   [1 1]   [1 1]        [1 1 . . . .]
//	[1 1] + [1 1] + [1 1]   ⇒    [1 1 . . . .]
//	                             [. . 1 1 . .]
//	  segment index              [. . 1 1 . .]
//	  [0 0 1 1 2 2]              [. . . . 1 1]
//	                             [. . . . 1 1]
//
// Downstream layers read the result through the Component selector protocol
// (Adjacency, NodeAttributes, EdgeAttributes, SegmentIndex); pooling layers
// additionally read the segment index to know which nodes to pool together.
//
//	go get github.com/katalvlaran/gnnbatch
package gnnbatch
