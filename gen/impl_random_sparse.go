// SPDX-License-Identifier: MIT
// Package gen: RandomSparse(n, f, p) — the Erdős–Rényi model G(n, p),
// symmetric by construction (one Bernoulli draw per unordered pair).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes), f ≥ 1 (else ErrBadWidth).
//   - p ∈ [0, 1] (else ErrInvalidProbability).
//   - An RNG is mandatory (WithSeed or WithRand); without one the
//     constructor fails with ErrNeedRandSource instead of silently
//     seeding from the clock.
//   - Diagonal entries are drawn with the same probability p only
//     under WithSelfLoops.
//
// Determinism: fixed seed ⇒ identical output; draw order is the
// upper-triangle row-major scan, independent of any map iteration.
// Complexity: O(n²) draws + O(n·f) attributes.

package gen

import (
	"fmt"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
)

// RandomSparse builds G(n, p) with f-wide node attributes. The adjacency is
// dense storage: random graphs near p=0.5 defeat sparse bookkeeping anyway,
// and the union layer accepts any Matrix.
func RandomSparse(n, f int, p float64, opts ...Option) (*batch.Record, error) {
	cfg := newConfig(opts...)

	if err := validateShape(methodRandomSparse, n, minRandomSparseNodes, f); err != nil {
		return nil, err
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}

	// One draw per unordered pair keeps the matrix exactly symmetric.
	for i := 0; i < n; i++ {
		if cfg.selfLoops && cfg.rng.Float64() < p {
			_ = adj.Set(i, i, 1)
		}
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				_ = adj.Set(i, j, 1)
				_ = adj.Set(j, i, 1)
			}
		}
	}

	return assembleRecord(adj, n, f, cfg)
}
