// SPDX-License-Identifier: MIT

// Package matrix: rank-3 tensors for edge attributes. Two shapes exist on
// purpose: DenseTensor is the ingestion form (one flat slice, channel-last,
// the layout boundary adapters produce), ChannelTensor is the union form
// (one block-diagonal matrix per channel, the layout the disjoint-union
// builder emits without materializing a dense T×T×S block).
package matrix

import "fmt"

// tensorErrorf wraps an underlying error with tensor method context.
func tensorErrorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("Tensor.%s(%d,%d,%d): %w", method, i, j, k, err)
}

// DenseTensor is a flat, channel-last rank-3 array: element (i, j, k) lives
// at data[(i*cols+j)*channels + k].
type DenseTensor struct {
	r, c, s int       // rows, cols, channels
	data    []float64 // flat backing storage, length == r*c*s
}

// NewDenseTensor creates an r×c×s tensor initialized to zeros.
// Stage 1 (Validate): rows, cols, channels > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c*s) time and memory.
func NewDenseTensor(rows, cols, channels int) (*DenseTensor, error) {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &DenseTensor{r: rows, c: cols, s: channels,
		data: make([]float64, rows*cols*channels)}, nil
}

// NewDenseTensorFrom wraps a channel-last flat slice as an r×c×s tensor.
// The slice is owned by the tensor afterwards.
// Complexity: O(1).
func NewDenseTensorFrom(rows, cols, channels int, data []float64) (*DenseTensor, error) {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols*channels {
		return nil, fmt.Errorf("NewDenseTensorFrom: len(data)=%d, want %d: %w",
			len(data), rows*cols*channels, ErrDimensionMismatch)
	}

	return &DenseTensor{r: rows, c: cols, s: channels, data: data}, nil
}

// Dims returns (rows, cols, channels). Complexity: O(1).
func (t *DenseTensor) Dims() (int, int, int) { return t.r, t.c, t.s }

// indexOf computes the flat index for (i, j, k) or returns ErrOutOfRange.
func (t *DenseTensor) indexOf(method string, i, j, k int) (int, error) {
	if i < 0 || i >= t.r || j < 0 || j >= t.c || k < 0 || k >= t.s {
		return 0, tensorErrorf(method, i, j, k, ErrOutOfRange)
	}

	return (i*t.c+j)*t.s + k, nil
}

// At retrieves the element at (i, j, k). Complexity: O(1).
func (t *DenseTensor) At(i, j, k int) (float64, error) {
	idx, err := t.indexOf("At", i, j, k)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Set assigns value v at (i, j, k). Complexity: O(1).
func (t *DenseTensor) Set(i, j, k int, v float64) error {
	idx, err := t.indexOf("Set", i, j, k)
	if err != nil {
		return err
	}
	t.data[idx] = v

	return nil
}

// Channel extracts face k as an independent Dense copy.
// Complexity: O(r*c) time and memory.
func (t *DenseTensor) Channel(k int) (*Dense, error) {
	if k < 0 || k >= t.s {
		return nil, tensorErrorf("Channel", 0, 0, k, ErrOutOfRange)
	}
	out, _ := NewDense(t.r, t.c) // shape already validated at construction
	var i, j int
	for i = 0; i < t.r; i++ {
		for j = 0; j < t.c; j++ {
			out.data[i*t.c+j] = t.data[(i*t.c+j)*t.s+k]
		}
	}

	return out, nil
}

// ChannelTensor stacks same-shaped matrices along the channel axis.
// Face k answers At(i, j, k); the faces themselves may be sparse, which is
// exactly how a per-channel block-diagonal union avoids O(T²·S) memory.
type ChannelTensor struct {
	r, c  int
	faces []Matrix
}

// NewChannelTensor builds a tensor from one matrix per channel.
// Stage 1 (Validate): at least one face, no nil faces, uniform shape.
// Stage 2 (Finalize): share the faces (read-only by package convention).
// Complexity: O(channels) validation; no data copies.
func NewChannelTensor(faces ...Matrix) (*ChannelTensor, error) {
	if len(faces) == 0 {
		return nil, ErrInvalidDimensions
	}
	if err := ValidateNotNil(faces[0]); err != nil {
		return nil, fmt.Errorf("NewChannelTensor: face 0: %w", err)
	}
	r, c := faces[0].Rows(), faces[0].Cols()
	for k := 1; k < len(faces); k++ {
		if err := ValidateNotNil(faces[k]); err != nil {
			return nil, fmt.Errorf("NewChannelTensor: face %d: %w", k, err)
		}
		if faces[k].Rows() != r || faces[k].Cols() != c {
			return nil, fmt.Errorf("NewChannelTensor: face %d is %dx%d, want %dx%d: %w",
				k, faces[k].Rows(), faces[k].Cols(), r, c, ErrDimensionMismatch)
		}
	}

	return &ChannelTensor{r: r, c: c, faces: faces}, nil
}

// Dims returns (rows, cols, channels). Complexity: O(1).
func (t *ChannelTensor) Dims() (int, int, int) { return t.r, t.c, len(t.faces) }

// At retrieves the element at (i, j, k) by delegating to face k.
// Complexity: the face's At cost (O(1) dense, O(log nnz) sparse).
func (t *ChannelTensor) At(i, j, k int) (float64, error) {
	if k < 0 || k >= len(t.faces) {
		return 0, tensorErrorf("At", i, j, k, ErrOutOfRange)
	}

	return t.faces[k].At(i, j)
}

// Face returns the k-th channel matrix (shared, read-only).
// Complexity: O(1).
func (t *ChannelTensor) Face(k int) (Matrix, error) {
	if k < 0 || k >= len(t.faces) {
		return nil, tensorErrorf("Face", 0, 0, k, ErrOutOfRange)
	}

	return t.faces[k], nil
}
