// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and kernels MUST return these sentinels and tests
// MUST check them via errors.Is. No routine panics on user-triggered error
// conditions; panics are reserved for programmer errors in option builders.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix or tensor
	// dimensions are out of range (rows/cols ≤ 0, channels < 0).
	// Constructors must validate shape before any allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions out of range")

	// ErrOutOfRange indicates that an index (row, column or channel) is
	// outside valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: stacking blocks of different widths, backing slices whose
	// length disagrees with the declared shape, tensor faces of mixed size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular (adjacency matrices must be square).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix or Tensor (receiver or
	// argument) was used where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy
	// requires finite values (ingestion, Set, attribute scans).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrCapacityExceeded is returned by COOBuilder.Append when more
	// entries are written than the builder was pre-sized for. The pre-sized
	// contract exists to avoid incremental resizing; overflowing it is a
	// bookkeeping bug at the call site, surfaced eagerly.
	ErrCapacityExceeded = errors.New("matrix: sparse builder capacity exceeded")

	// ErrUnsorted indicates that raw COO data was not in strict row-major
	// order ((i,j) strictly increasing), which COO requires for binary
	// search lookups and deterministic iteration.
	ErrUnsorted = errors.New("matrix: sparse entries not in row-major order")
)
