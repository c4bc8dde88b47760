// SPDX-License-Identifier: MIT
// Package batch: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the batch
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are confined to option constructors (WithX).
//
// ERROR PRIORITY (documented, enforced in tests):
// empty input -> nil record -> node-attribute width -> edge-attribute
// presence -> edge-attribute width. Record construction reports
// ErrShapeMismatch before any numeric-policy scan.

package batch

import "errors"

var (
	// ErrShapeMismatch indicates a malformed single graph: non-square
	// adjacency, node-attribute row count ≠ N, or an edge-attribute tensor
	// whose faces are not N×N.
	ErrShapeMismatch = errors.New("batch: record shape mismatch")

	// ErrEmptyInput indicates that an empty record sequence was passed to
	// Classify or Build. There is no meaningful union of zero graphs.
	ErrEmptyInput = errors.New("batch: no records")

	// ErrNilRecord indicates a nil *Record inside the input sequence.
	ErrNilRecord = errors.New("batch: nil record")

	// ErrAttributeWidth indicates non-uniform attribute dimensionality
	// across a record set: node-attribute width F or edge-attribute channel
	// count S differs between records. Per-graph node counts may differ;
	// attribute widths may not, since attributes stack along a shared axis.
	ErrAttributeWidth = errors.New("batch: inconsistent attribute width")

	// ErrEdgeAttrMismatch indicates partial edge-attribute presence across
	// a record set: some records carry edge attributes and others do not.
	// The policy is all-or-none.
	ErrEdgeAttrMismatch = errors.New("batch: partial edge-attribute presence")

	// ErrComponentUnavailable indicates a selector request for a component
	// that was never built (e.g. EdgeAttributes on an attribute-free batch).
	ErrComponentUnavailable = errors.New("batch: component not built")

	// ErrUnknownComponent indicates a selector tag outside the Component
	// enum. Distinct from ErrComponentUnavailable: an unknown tag is a
	// programming error at the call site, not a property of this result.
	ErrUnknownComponent = errors.New("batch: unknown component tag")

	// ErrBlockOutOfRange indicates a diagonal-block index g outside
	// [0, Graphs()).
	ErrBlockOutOfRange = errors.New("batch: block index out of range")
)
