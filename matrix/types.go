// SPDX-License-Identifier: MIT

// Package matrix: domain-facing interfaces shared by the batch builder and
// the boundary adapters. Concrete types (Dense, COO, DenseTensor,
// ChannelTensor) live in dedicated files; errors live in errors.go per the
// package conventions.
package matrix

// Matrix is a read-oriented two-dimensional view of float64 values.
// Records are immutable once constructed, so the consumption surface is
// read-only; mutation happens only inside pre-sized builders and the
// package-private assembly helpers.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c) for
// dense, O(nnz) for sparse) and At on sparse types (O(log nnz_row)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// NonZeroer is implemented by matrices that can enumerate their non-zero
// entries without a full O(r*c) scan. Iteration order MUST be row-major
// ((i,j) strictly increasing): the disjoint-union copy loop relies on this
// order to emit pre-sorted sparse entries at known offsets.
type NonZeroer interface {
	// DoNonZero calls fn once per structurally non-zero entry, in
	// row-major order. fn must not retain references past the call.
	DoNonZero(fn func(i, j int, v float64))
}

// Tensor is a read-oriented rank-3 view: rows × cols × channels. It carries
// per-edge attributes, where the (rows × cols) face of channel k is shaped
// like an adjacency matrix.
type Tensor interface {
	// Dims returns the three axis lengths (rows, cols, channels).
	// Complexity: O(1).
	Dims() (rows, cols, channels int)

	// At retrieves the element at position (i, j, k).
	// Returns ErrOutOfRange when any index is outside its axis.
	At(i, j, k int) (float64, error)
}
