// SPDX-License-Identifier: MIT

// Package convert: functional configuration for the boundary adapters.
// Defaults mirror the representation layer's posture: edges are taken as
// given (directed, weights preserved); undirected mirroring and binary
// weights are explicit opt-ins.

package convert

import "github.com/katalvlaran/gnnbatch/batch"

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultDirected controls edge-list interpretation.
	// true ⇒ each (From, To) pair writes exactly one adjacency entry.
	DefaultDirected = true

	// DefaultBinary controls weight handling.
	// false ⇒ preserve edge weights; true ⇒ every edge writes 1.
	DefaultBinary = false
)

// unitWeight is the adjacency entry written under the binary policy.
const unitWeight = 1.0

// Option mutates internal adapter options.
type Option func(*options)

// options stores the effective configuration after applying setters.
type options struct {
	directed   bool           // DefaultDirected
	binary     bool           // DefaultBinary
	recordOpts []batch.Option // forwarded to batch.NewRecord
}

// WithUndirected mirrors every edge-list entry (u,v) into (v,u). Loops are
// written once. Complexity: O(1).
func WithUndirected() Option {
	return func(o *options) { o.directed = false }
}

// WithBinary ignores edge weights and writes unit entries, producing a
// {0,1} adjacency for topology-only pipelines. Complexity: O(1).
func WithBinary() Option {
	return func(o *options) { o.binary = true }
}

// WithRecordOptions forwards batch options (numeric policy, ...) to the
// batch.NewRecord call each adapter ends in. Complexity: O(1).
func WithRecordOptions(opts ...batch.Option) Option {
	return func(o *options) { o.recordOpts = opts }
}

// gatherOptions applies setters on top of defaults, last-writer-wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) options {
	o := options{
		directed: DefaultDirected,
		binary:   DefaultBinary,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
