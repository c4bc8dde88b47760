// SPDX-License-Identifier: MIT
// Package gen: functional options and deterministic defaults.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     topology constructors themselves never panic.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand.
//   - No hidden globals; everything flows through config.

package gen

import "math/rand"

// AttrFn produces the node-attribute value for (node, dim).
type AttrFn func(node, dim int) float64

// EdgeAttrFn produces the edge-attribute value for entry (u, v) on
// channel ch. It is consulted only where the adjacency is non-zero.
type EdgeAttrFn func(u, v, ch int) float64

// Deterministic defaults (named, no magic numbers).
const (
	defaultAttrValue = 1.0 // constant node attribute
	defaultEdgeValue = 1.0 // constant edge-channel attribute
	defaultChannels  = 0   // no edge attributes unless requested
)

// config aggregates all knobs used by constructors.
// It is passed by value to builders (immutable to callers).
type config struct {
	rng       *rand.Rand // RNG for stochastic topologies; nil ⇒ none
	attrFn    AttrFn     // node-attribute generator
	channels  int        // edge-attribute channel count
	edgeFn    EdgeAttrFn // edge-attribute generator
	selfLoops bool       // include diagonal entries
}

// Option customizes a constructor by mutating config before building.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes. Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic topologies.
// Panics on nil; prefer WithSeed for reproducible runs. Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("gen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithAttrFn sets the node-attribute generator. Panics on nil.
// Complexity: O(1).
func WithAttrFn(fn AttrFn) Option {
	if fn == nil {
		panic("gen: WithAttrFn(nil)")
	}

	return func(c *config) { c.attrFn = fn }
}

// WithEdgeChannels enables s edge-attribute channels filled by fn on every
// adjacency non-zero. Panics when s < 1 or fn is nil. Complexity: O(1).
func WithEdgeChannels(s int, fn EdgeAttrFn) Option {
	if s < 1 {
		panic("gen: WithEdgeChannels(s<1)")
	}
	if fn == nil {
		panic("gen: WithEdgeChannels(nil fn)")
	}

	return func(c *config) {
		c.channels = s
		c.edgeFn = fn
	}
}

// WithSelfLoops includes diagonal entries in generated topologies.
// Complexity: O(1).
func WithSelfLoops() Option {
	return func(c *config) { c.selfLoops = true }
}

// newConfig resolves options against deterministic defaults, in order,
// last-writer-wins. Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      nil, // no RNG unless explicitly set
		attrFn:   func(int, int) float64 { return defaultAttrValue },
		channels: defaultChannels,
		edgeFn:   func(int, int, int) float64 { return defaultEdgeValue },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
