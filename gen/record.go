// SPDX-License-Identifier: MIT
// Package gen: shared assembly from a finished adjacency to a validated
// record — node attributes via cfg.attrFn, optional edge channels via
// cfg.edgeFn on every adjacency non-zero.

package gen

import (
	"fmt"

	"github.com/katalvlaran/gnnbatch/batch"
	"github.com/katalvlaran/gnnbatch/matrix"
)

// assembleRecord fills attributes for a built adjacency and runs the result
// through the record boundary. All gen constructors end here, so every
// fixture is validated exactly like production input.
// Complexity: O(n·f + n²·s) attribute fill.
func assembleRecord(adj matrix.Matrix, n, f int, cfg config) (*batch.Record, error) {
	// Node attributes in row-major (node, dim) order.
	attrData := make([]float64, 0, n*f)
	for node := 0; node < n; node++ {
		for dim := 0; dim < f; dim++ {
			attrData = append(attrData, cfg.attrFn(node, dim))
		}
	}
	attrs, err := matrix.NewDenseFrom(n, f, attrData)
	if err != nil {
		return nil, fmt.Errorf("gen: attributes: %w", err)
	}

	// Optional edge channels, aligned with the adjacency sparsity pattern.
	var tensor matrix.Tensor
	if cfg.channels > 0 {
		dt, tErr := matrix.NewDenseTensor(n, n, cfg.channels)
		if tErr != nil {
			return nil, fmt.Errorf("gen: edge attributes: %w", tErr)
		}
		var u, v, ch int
		var a float64
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				a, _ = adj.At(u, v)
				if a == 0 {
					continue // channels carry values on edges only
				}
				for ch = 0; ch < cfg.channels; ch++ {
					_ = dt.Set(u, v, ch, cfg.edgeFn(u, v, ch))
				}
			}
		}
		tensor = dt
	}

	return batch.NewRecord(adj, attrs, tensor)
}

// validateShape runs the common (n, f) parameter checks for a topology
// with the given node minimum. Complexity: O(1).
func validateShape(method string, n, minNodes, f int) error {
	if n < minNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minNodes, ErrTooFewNodes)
	}
	if f < 1 {
		return fmt.Errorf("%s: f=%d: %w", method, f, ErrBadWidth)
	}

	return nil
}
