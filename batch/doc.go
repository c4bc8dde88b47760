// Package batch assembles collections of graphs into the disjoint-union
// form graph neural networks consume.
//
// The batch package provides:
//
//   - Record: one validated, immutable graph — square adjacency, N×F node
//     attributes, optional N×N×S edge attributes.
//   - Classify: shape-driven access-mode resolution (Single / Batch /
//     Mixed), so consumers branch on an explicit Mode value instead of
//     inspecting shape tuples ad hoc.
//   - Build: the disjoint-union builder — block-diagonal adjacency,
//     row-stacked node attributes, per-channel block-diagonal edge
//     attributes, and the segment index mapping union nodes back to their
//     source graphs.
//   - Result: a read-only view over the builder output, consumed through
//     the Component selector protocol.
//
// All failure modes are sentinel errors detected before or during
// assembly; Build either returns a fully valid Result or nothing. Results
// are immutable and safe for concurrent reads without locking.
//
// Consumption contract (honored by downstream layers, not enforced here):
// per-node layers need only NodeAttributes; pooling layers additionally
// read SegmentIndex to know which nodes aggregate together; layers that
// only ever see Single-mode data treat the segment index as all-zero.
package batch
