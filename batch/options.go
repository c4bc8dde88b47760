// SPDX-License-Identifier: MIT

// Package batch: functional configuration for record construction and the
// union builder. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error) inside WithX constructors; operations themselves never panic.

package batch

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultWorkers is the number of goroutines used for the per-record
	// copy phase. 1 means fully sequential; the copy phase is
	// embarrassingly parallel because each record writes to a disjoint
	// offset range, so higher values are safe.
	DefaultWorkers = 1

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// record construction. NaN/±Inf in adjacency or attributes is rejected
	// with matrix.ErrNaNInf before the record exists.
	DefaultValidateNaNInf = true

	// DefaultDenseUnion controls the union adjacency representation.
	// false ⇒ sparse COO (the point of disjoint union over padding);
	// true  ⇒ dense, acceptable only for small totals.
	DefaultDenseUnion = false
)

// Internal panic messages (no magic strings).
const panicWorkersInvalid = "batch: WithWorkers: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	workers        int  // ≥ 1; DefaultWorkers
	validateNaNInf bool // DefaultValidateNaNInf
	denseUnion     bool // DefaultDenseUnion
}

// WithWorkers sets the goroutine count for the per-record copy phase.
// Panics when n < 1 (programmer error). Output is identical for any n:
// every worker owns pre-computed disjoint offset ranges, so parallelism
// changes wall time, never content.
// Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithValidateNaNInf enables strict finite-value validation on record
// construction (the default). Complexity: O(1) to set; the scan itself is
// O(cells) at NewRecord time.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value scan. Use only when
// ingesting pre-validated data and the O(cells) scan is measurable.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDenseUnion makes Build materialize the union adjacency (and edge
// channels) as dense matrices instead of sparse COO. Intended for small
// totals where consumers want O(1) random access; for large batches the
// dense form costs O(T²) memory and defeats the disjoint-union design.
// Complexity: O(1).
func WithDenseUnion() Option {
	return func(o *Options) { o.denseUnion = true }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins semantics; pure function, no side effects.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:        DefaultWorkers,
		validateNaNInf: DefaultValidateNaNInf,
		denseUnion:     DefaultDenseUnion,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins
	}

	return o
}
