// SPDX-License-Identifier: MIT

// Package batch: access-mode resolution. A Mode is a classification of a
// SET of records, derived from their shapes — never stored on a record,
// never an entity with its own lifecycle. Centralizing the classification
// here lets consumers branch on an explicit enum instead of re-deriving it
// from shape tuples at every call site.
package batch

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/gnnbatch/matrix"
)

// Mode classifies how a set of graphs' topology and attributes are shaped
// relative to each other.
type Mode uint8

const (
	// ModeSingle — exactly one graph; consumers take the dense
	// single-graph code path and treat the segment index as all-zero.
	ModeSingle Mode = iota

	// ModeBatch — several graphs of independent topology; consumers take
	// the stacked/segmented code path.
	ModeBatch

	// ModeMixed — one shared topology, varying attributes: every record
	// carries the identical adjacency (same object, or equal value).
	ModeMixed
)

// modeNames is indexed by Mode; kept in declaration order.
var modeNames = [...]string{"Single", "Batch", "Mixed"}

// String renders the mode name, or "Mode(n)" for values outside the enum.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}

	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Classify inspects a record set and resolves its access mode.
//
// Implementation:
//   - Stage 1: validate the set (empty, nil entries, uniform F and S) —
//     the same fail-fast checks Build runs, shared via validateSet, run
//     BEFORE any shape comparison work.
//   - Stage 2: one record ⇒ Single.
//   - Stage 3: all adjacencies identical ⇒ Mixed (pointer identity fast
//     path, exact value equality fallback); otherwise Batch.
//
// Errors:
//   - ErrEmptyInput, ErrNilRecord, ErrAttributeWidth, ErrEdgeAttrMismatch.
//
// Determinism:
//   - Pure function of the input sequence; fixed comparison order.
//
// Complexity:
//   - O(k) validation; Mixed detection is O(1) per pair on the identity
//     fast path and O(n²) (or O(nnz) for two sparse operands) on the value
//     fallback, short-circuiting at the first differing pair.
func Classify(records []*Record) (Mode, error) {
	// Stage 1: shared fail-fast validation.
	if err := validateSet(records); err != nil {
		return 0, fmt.Errorf("Classify: %w", err)
	}

	// Stages 2+3 are shared with Build, which records the resolved mode
	// on its Result.
	return resolveMode(records), nil
}

// resolveMode decides the mode of an already-validated record set.
// One record ⇒ Single. Otherwise Mixed iff every adjacency is the first
// one, by object or by value; any mismatch settles the set as Batch.
func resolveMode(records []*Record) Mode {
	if len(records) == 1 {
		return ModeSingle
	}
	first := records[0].adj
	for _, rec := range records[1:] {
		if sameRef(first, rec.adj) {
			continue // identical object: no value comparison needed
		}
		if !matrix.Equal(first, rec.adj) {
			return ModeBatch
		}
	}

	return ModeMixed
}

// sameRef reports whether a and b are the same underlying object. Both
// sides must be pointer-shaped for the comparison to be meaningful; the
// reflect guard keeps the check safe for third-party Matrix
// implementations backed by non-comparable types.
// Complexity: O(1).
func sameRef(a, b matrix.Matrix) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	return va.Kind() == reflect.Pointer && vb.Kind() == reflect.Pointer &&
		va.Pointer() == vb.Pointer()
}

// validateSet runs the shared fail-fast checks over a record sequence:
// non-empty, no nil entries, uniform node-attribute width F, all-or-none
// edge-attribute presence, uniform channel count S. It MUST run before any
// assembly or classification work so failures never leave partial state.
//
// Error priority: empty → nil → F width → edge presence → S width.
// Complexity: O(k).
func validateSet(records []*Record) error {
	if len(records) == 0 {
		return ErrEmptyInput
	}
	for g, rec := range records {
		if rec == nil {
			return fmt.Errorf("record %d: %w", g, ErrNilRecord)
		}
	}
	f := records[0].f
	hasEdge := records[0].s > 0
	s := records[0].s
	for g, rec := range records[1:] {
		if rec.f != f {
			return fmt.Errorf("record %d: node-attribute width %d, want %d: %w",
				g+1, rec.f, f, ErrAttributeWidth)
		}
		if (rec.s > 0) != hasEdge {
			return fmt.Errorf("record %d: %w", g+1, ErrEdgeAttrMismatch)
		}
		if rec.s != s {
			return fmt.Errorf("record %d: edge-attribute width %d, want %d: %w",
				g+1, rec.s, s, ErrAttributeWidth)
		}
	}

	return nil
}
