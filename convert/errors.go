// SPDX-License-Identifier: MIT
// Package convert: sentinel error set. Callers branch with errors.Is;
// adapters wrap these with per-call context via %w.

package convert

import "errors"

var (
	// ErrNilInput indicates a nil graph, record or adjacency argument.
	ErrNilInput = errors.New("convert: nil input")

	// ErrNoNodes indicates an input graph with no vertices; a record
	// requires at least one node.
	ErrNoNodes = errors.New("convert: graph has no nodes")

	// ErrRagged indicates nested slices of inconsistent length where a
	// rectangular matrix or uniform-channel tensor was expected.
	ErrRagged = errors.New("convert: ragged slice data")

	// ErrVertexRange indicates an edge endpoint outside [0, n).
	ErrVertexRange = errors.New("convert: vertex index out of range")

	// ErrNilAttrFn indicates that FromGonum was called without a
	// node-attribute function.
	ErrNilAttrFn = errors.New("convert: nil attribute function")

	// ErrSelfLoop indicates a non-zero diagonal entry during export to a
	// simple gonum graph, which rejects self edges.
	ErrSelfLoop = errors.New("convert: self loop not representable")
)
