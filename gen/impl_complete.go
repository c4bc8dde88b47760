// SPDX-License-Identifier: MIT
// Package gen: Complete(n, f) — the complete simple graph K_n.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes), f ≥ 1 (else ErrBadWidth).
//   - Emits every ordered pair (i, j), i ≠ j, with unit weight; the
//     diagonal joins under WithSelfLoops.
//   - Entries are appended in row-major order, so the sparse builder
//     never sorts.
//
// Determinism: pure function of (n, f, options); no RNG involved.
// Complexity: O(n²) adjacency + O(n·f) attributes (+ O(n²·s) channels).

package gen

import (
	"fmt"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
)

// File-local constants for method tagging and parameter minima.
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n with f-wide node attributes.
func Complete(n, f int, opts ...Option) (*batch.Record, error) {
	cfg := newConfig(opts...)

	// Early parameter validation: K_n is defined for n ≥ 1.
	if err := validateShape(methodComplete, n, minCompleteNodes, f); err != nil {
		return nil, err
	}

	// Pre-size exactly: n(n-1) off-diagonal entries, +n under self loops.
	nnz := n * (n - 1)
	if cfg.selfLoops {
		nnz += n
	}
	b, err := matrix.NewCOOBuilder(n, n, nnz)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	// Row-major emission: row i touches columns 0..n-1 in order.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j && !cfg.selfLoops {
				continue
			}
			// In-range unit entries cannot fail; capacity is exact.
			_ = b.Append(i, j, 1)
		}
	}
	adj, err := b.Finish()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	return assembleRecord(adj, n, f, cfg)
}
