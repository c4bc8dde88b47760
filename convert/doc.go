// Package convert adapts external graph shapes into batch.Record values
// and back.
//
// The convert package provides:
//
//   - FromMatrices: ingest a raw (adjacency, nodeAttributes,
//     edgeAttributes?) triple of nested float64 slices — the stable input
//     contract every loader boils down to.
//   - FromEdgeList: ingest a weighted edge list over n indexed vertices,
//     with optional undirected mirroring and binary-weight policy.
//   - FromGonum / ToGonum: interop with gonum.org/v1/gonum/graph, with
//     deterministic node ordering by node ID.
//
// The package never parses files or wire formats and never converts one
// external format directly into another; everything passes through the
// validated matrix-triple form, exactly once.
package convert
