// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep builders and the batch package minimal by delegating shape/nil
//    checks here.
//  - Return sentinel errors wrapped with a validator tag, so call sites can
//    add their own context and callers still branch via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Finite-value scans run in row-major order and fail on the first hit.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
// Returns ErrNonSquare on violation. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRows ensures m has exactly n rows. Used to align attribute blocks
// with their adjacency (node-attribute matrices must have N rows).
// Complexity: O(1).
func ValidateRows(m Matrix, n int) error {
	if m.Rows() != n {
		return validatorErrorf("ValidateRows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf under the strict numeric policy.
// Returns ErrNaNInf on violation. Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// ValidateTensorFace ensures t's first two axes are both n — i.e. every
// channel face is shaped like an N×N adjacency matrix.
// Returns ErrNilMatrix on nil, ErrDimensionMismatch on shape violation.
// Complexity: O(1).
func ValidateTensorFace(t Tensor, n int) error {
	if t == nil {
		return validatorErrorf("ValidateTensorFace", ErrNilMatrix)
	}
	r, c, _ := t.Dims()
	if r != n || c != n {
		return validatorErrorf("ValidateTensorFace", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteMatrix scans all entries of m under the strict numeric
// policy, failing on the first NaN/±Inf. Sparse matrices scan stored
// entries only.
// Complexity: O(nnz) for NonZeroer implementations, O(r*c) otherwise.
func ValidateFiniteMatrix(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	// Fast path: enumerate stored entries only.
	if nz, ok := m.(NonZeroer); ok {
		bad := false
		nz.DoNonZero(func(_, _ int, v float64) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad = true
			}
		})
		if bad {
			return validatorErrorf("ValidateFiniteMatrix", ErrNaNInf)
		}

		return nil
	}
	// Generic path: full scan through the interface.
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // bounds are valid inside the loop ranges
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFiniteMatrix", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateFiniteTensor scans all entries of t under the strict numeric
// policy, failing on the first NaN/±Inf.
// Complexity: O(r*c*s) through the interface.
func ValidateFiniteTensor(t Tensor) error {
	if t == nil {
		return validatorErrorf("ValidateFiniteTensor", ErrNilMatrix)
	}
	r, c, s := t.Dims()
	var i, j, k int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			for k = 0; k < s; k++ {
				v, _ = t.At(i, j, k)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return validatorErrorf("ValidateFiniteTensor", ErrNaNInf)
				}
			}
		}
	}

	return nil
}
