// SPDX-License-Identifier: MIT
// Package matrix — shared helpers over the Matrix interface.
//
// Purpose:
//   - Provide the handful of cross-type operations the batch builder needs
//     (non-zero counting, exact equality, row stacking) in one place, with
//     fast paths for the package's own concrete types.
//
// Determinism & Policy:
//   - All loops run in fixed row-major order; results are reproducible.
//   - Equal compares exactly (no epsilon): "same topology object reused"
//     is an identity question, not a numeric-closeness question.

package matrix

import "fmt"

// CountNonZero returns the number of structurally non-zero entries of m.
// Stage 1 (Fast path): COO answers from its entry count, NonZeroer types
// enumerate stored entries.
// Stage 2 (Generic): full O(r*c) scan through the interface.
// Complexity: O(1) for COO, O(nnz)–O(r*c) otherwise.
func CountNonZero(m Matrix) int {
	if s, ok := m.(*COO); ok {
		return s.NNZ()
	}
	n := 0
	if nz, ok := m.(NonZeroer); ok {
		nz.DoNonZero(func(_, _ int, _ float64) { n++ })

		return n
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v != 0 {
				n++
			}
		}
	}

	return n
}

// Equal reports whether a and b have the same shape and exactly equal
// entries. Exact float comparison is deliberate: the Mixed-mode check asks
// whether two records carry the same adjacency value, not whether two
// different matrices are numerically close.
// Stage 1 (Fast path): *Dense/*Dense compares backing slices,
// *COO/*COO compares entry lists.
// Stage 2 (Generic): entry-wise At comparison.
// Complexity: O(r*c) worst case; O(nnz) for two COO operands.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	// Dense/Dense: one flat pass over both backing slices.
	if da, ok := a.(*Dense); ok {
		if db, ok2 := b.(*Dense); ok2 {
			for k := range da.data {
				if da.data[k] != db.data[k] {
					return false
				}
			}

			return true
		}
	}
	// COO/COO: sorted entry lists are equal iff the matrices are.
	if sa, ok := a.(*COO); ok {
		if sb, ok2 := b.(*COO); ok2 {
			if len(sa.v) != len(sb.v) {
				return false
			}
			for k := range sa.v {
				if sa.ri[k] != sb.ri[k] || sa.ci[k] != sb.ci[k] || sa.v[k] != sb.v[k] {
					return false
				}
			}

			return true
		}
	}
	// Generic: entry-wise comparison through the interface.
	var i, j int
	var va, vb float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			va, _ = a.At(i, j)
			vb, _ = b.At(i, j)
			if va != vb {
				return false
			}
		}
	}

	return true
}

// StackRows concatenates same-width Dense blocks along the row axis,
// preserving block order. Row k of the result corresponds to the same
// position the disjoint-union offset arithmetic assigns to node k.
// Stage 1 (Validate): at least one block, no nils, uniform column count.
// Stage 2 (Prepare): allocate the Σrows × cols result once.
// Stage 3 (Execute): one bulk copy per block at its running offset.
// Complexity: O(total cells) time and memory.
func StackRows(blocks ...*Dense) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, ErrInvalidDimensions
	}
	if blocks[0] == nil {
		return nil, fmt.Errorf("StackRows: block 0: %w", ErrNilMatrix)
	}
	cols := blocks[0].c
	total := 0
	for k, blk := range blocks {
		if blk == nil {
			return nil, fmt.Errorf("StackRows: block %d: %w", k, ErrNilMatrix)
		}
		if blk.c != cols {
			return nil, fmt.Errorf("StackRows: block %d has %d cols, want %d: %w",
				k, blk.c, cols, ErrDimensionMismatch)
		}
		total += blk.r
	}

	out, err := NewDense(total, cols)
	if err != nil {
		return nil, fmt.Errorf("StackRows: %w", err)
	}
	off := 0 // running row offset into the result
	for _, blk := range blocks {
		copy(out.data[off*cols:], blk.data)
		off += blk.r
	}

	return out, nil
}
