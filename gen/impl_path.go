// SPDX-License-Identifier: MIT
// Package gen: Path(n, f) — the path graph P_n (undirected: both
// directions of every consecutive pair are present).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes), f ≥ 1 (else ErrBadWidth).
//   - Row i connects to i-1 and i+1 where those exist; diagonal joins
//     under WithSelfLoops. Row-major emission, exact pre-sizing.
//
// Determinism: pure function of (n, f, options).
// Complexity: O(n) adjacency + O(n·f) attributes.

package gen

import (
	"fmt"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n with f-wide node attributes.
func Path(n, f int, opts ...Option) (*batch.Record, error) {
	cfg := newConfig(opts...)

	if err := validateShape(methodPath, n, minPathNodes, f); err != nil {
		return nil, err
	}

	// Pre-size exactly: 2(n-1) mirrored pair entries, +n under self loops.
	nnz := 2 * (n - 1)
	if cfg.selfLoops {
		nnz += n
	}
	b, err := matrix.NewCOOBuilder(n, n, nnz)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}

	// Row-major emission: columns i-1, i, i+1 appear in ascending order.
	for i := 0; i < n; i++ {
		if i > 0 {
			_ = b.Append(i, i-1, 1)
		}
		if cfg.selfLoops {
			_ = b.Append(i, i, 1)
		}
		if i < n-1 {
			_ = b.Append(i, i+1, 1)
		}
	}
	adj, err := b.Finish()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}

	return assembleRecord(adj, n, f, cfg)
}
