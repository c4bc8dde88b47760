// Package gen provides deterministic constructors for synthetic
// batch.Record fixtures, in functional-options style.
//
// The package offers:
//
//   - Topology constructors:
//     – Complete(n, f): the complete simple graph K_n.
//     – Path(n, f):     the path graph P_n.
//     – RandomSparse(n, f, p): G(n,p), requires a seeded RNG.
//   - Attribute policies:
//     – WithAttrFn:       node-attribute generator (node, dim) → value.
//     – WithEdgeChannels: per-edge attribute channels and their generator.
//   - Structure knobs:
//     – WithSelfLoops:    include diagonal entries.
//     – WithSeed/WithRand: RNG for stochastic topologies.
//
// Guarantees:
//
//   - Deterministic output for equal parameters, options and seed.
//   - Fast-fail on invalid parameters via sentinel errors; panics are
//     confined to option constructors.
//   - Produced records pass batch.NewRecord validation by construction.
//
// The constructors exist for tests, benchmarks and examples; they are not
// dataset loaders and never touch I/O.
package gen
