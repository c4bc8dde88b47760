// SPDX-License-Identifier: MIT

// Package matrix: COO is an immutable sparse coordinate matrix plus its
// pre-sized builder. The builder exists because the disjoint-union batch
// assembly knows its totals (size, non-zero count) before writing a single
// entry: allocate once at full size, write each entry exactly once at a
// known offset, never resize.
package matrix

import (
	"fmt"
	"sort"
)

// COO is a sparse matrix in coordinate form. Entries are stored in strict
// row-major order ((row, col) strictly increasing), which makes iteration
// deterministic and lets At run a binary search over the entry list.
// A COO is immutable after construction and safe for concurrent reads.
type COO struct {
	r, c int       // logical shape
	ri   []int     // row index per entry, row-major sorted
	ci   []int     // column index per entry
	v    []float64 // entry values, aligned with ri/ci
}

// cooErrorf wraps an underlying error with COO method context.
func cooErrorf(method string, err error) error {
	return fmt.Errorf("COO.%s: %w", method, err)
}

// NewCOOFrom wraps raw coordinate data as a COO without copying.
// The three slices are owned by the matrix afterwards.
// Stage 1 (Validate): shape > 0, aligned slice lengths.
// Stage 2 (Validate): every entry in bounds, strict row-major order.
// Stage 3 (Finalize): wrap the slices.
// Complexity: O(nnz) time, O(1) extra memory.
func NewCOOFrom(rows, cols int, ri, ci []int, v []float64) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(ri) != len(ci) || len(ri) != len(v) {
		return nil, fmt.Errorf("NewCOOFrom: slice lengths %d/%d/%d: %w",
			len(ri), len(ci), len(v), ErrDimensionMismatch)
	}
	var k int
	for k = 0; k < len(ri); k++ {
		// Bounds check every coordinate before trusting the data.
		if ri[k] < 0 || ri[k] >= rows || ci[k] < 0 || ci[k] >= cols {
			return nil, fmt.Errorf("NewCOOFrom: entry %d at (%d,%d): %w",
				k, ri[k], ci[k], ErrOutOfRange)
		}
		// Strict row-major order: (prev row, prev col) < (row, col).
		if k > 0 && (ri[k] < ri[k-1] || (ri[k] == ri[k-1] && ci[k] <= ci[k-1])) {
			return nil, fmt.Errorf("NewCOOFrom: entry %d at (%d,%d): %w",
				k, ri[k], ci[k], ErrUnsorted)
		}
	}

	return &COO{r: rows, c: cols, ri: ri, ci: ci, v: v}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *COO) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *COO) Cols() int { return m.c }

// NNZ returns the number of stored entries. Complexity: O(1).
func (m *COO) NNZ() int { return len(m.v) }

// At retrieves the element at (row, col); absent coordinates read as zero.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): binary search over the sorted entry list.
// Complexity: O(log nnz).
func (m *COO) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, cooErrorf(fmt.Sprintf("At(%d,%d)", row, col), ErrOutOfRange)
	}
	// First entry with (ri,ci) >= (row,col) under row-major order.
	k := sort.Search(len(m.ri), func(k int) bool {
		return m.ri[k] > row || (m.ri[k] == row && m.ci[k] >= col)
	})
	if k < len(m.ri) && m.ri[k] == row && m.ci[k] == col {
		return m.v[k], nil
	}

	// Structural zero.
	return 0, nil
}

// Clone returns a deep copy of the COO matrix.
// Complexity: O(nnz) time and memory.
func (m *COO) Clone() Matrix {
	ri := make([]int, len(m.ri))
	ci := make([]int, len(m.ci))
	v := make([]float64, len(m.v))
	copy(ri, m.ri)
	copy(ci, m.ci)
	copy(v, m.v)

	return &COO{r: m.r, c: m.c, ri: ri, ci: ci, v: v}
}

// DoNonZero calls fn once per stored entry in row-major order.
// Complexity: O(nnz); no allocation.
func (m *COO) DoNonZero(fn func(i, j int, v float64)) {
	for k := 0; k < len(m.v); k++ { // entry order == row-major order
		fn(m.ri[k], m.ci[k], m.v[k])
	}
}

// ToDense materializes the sparse matrix as a Dense copy.
// Intended for small matrices and tests; the union builder never calls it.
// Complexity: O(r*c + nnz) time, O(r*c) memory.
func (m *COO) ToDense() *Dense {
	// Shape was validated at construction; NewDense cannot fail here.
	out, _ := NewDense(m.r, m.c)
	for k := 0; k < len(m.v); k++ {
		out.data[m.ri[k]*m.c+m.ci[k]] = m.v[k]
	}

	return out
}

// COOBuilder accumulates sparse entries into pre-allocated storage.
// The builder is single-use: Finish hands the storage to the COO and the
// builder must not be touched afterwards. Not safe for concurrent use;
// concurrent assembly writes into raw slices and goes through NewCOOFrom.
type COOBuilder struct {
	r, c   int
	ri     []int
	ci     []int
	v      []float64
	sorted bool // appends so far are in strict row-major order
	done   bool // Finish was called
}

// NewCOOBuilder creates a builder for a rows×cols sparse matrix with
// capacity for nnzCap entries.
// Stage 1 (Validate): rows and cols > 0, nnzCap ≥ 0.
// Stage 2 (Prepare): allocate the three parallel slices once, at full size.
// Complexity: O(nnzCap) allocation, no further growth.
func NewCOOBuilder(rows, cols, nnzCap int) (*COOBuilder, error) {
	if rows <= 0 || cols <= 0 || nnzCap < 0 {
		return nil, ErrInvalidDimensions
	}

	return &COOBuilder{
		r:      rows,
		c:      cols,
		ri:     make([]int, 0, nnzCap),
		ci:     make([]int, 0, nnzCap),
		v:      make([]float64, 0, nnzCap),
		sorted: true,
	}, nil
}

// Append records the entry (i, j) = val. Zero values are skipped: COO
// stores structural non-zeros only, and dropping zeros here keeps NNZ
// meaningful for capacity bookkeeping upstream.
// Stage 1 (Validate): bounds and remaining capacity.
// Stage 2 (Execute): write into pre-sized storage, track ordering.
// Complexity: O(1).
func (b *COOBuilder) Append(i, j int, val float64) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return fmt.Errorf("COOBuilder.Append(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if val == 0 {
		return nil // structural zero: nothing to store
	}
	if len(b.v) == cap(b.v) {
		return fmt.Errorf("COOBuilder.Append(%d,%d): cap=%d: %w",
			i, j, cap(b.v), ErrCapacityExceeded)
	}
	// Ordering check against the previous entry (cheap, branch-predictable).
	if n := len(b.ri); n > 0 && (i < b.ri[n-1] || (i == b.ri[n-1] && j <= b.ci[n-1])) {
		b.sorted = false
	}
	b.ri = append(b.ri, i)
	b.ci = append(b.ci, j)
	b.v = append(b.v, val)

	return nil
}

// Finish seals the builder and returns the immutable COO.
// If entries arrived out of row-major order they are sorted here (stable),
// and duplicate coordinates collapse to the LAST appended value — the same
// last-write-wins policy dense adjacency cells follow.
// Complexity: O(nnz) when appends were ordered, O(nnz log nnz) otherwise.
func (b *COOBuilder) Finish() (*COO, error) {
	if b.done {
		return nil, cooErrorf("Finish", ErrNilMatrix)
	}
	b.done = true
	if !b.sorted {
		sort.Stable(cooSorter{b})
		b.dedupLastWins()
	}

	return &COO{r: b.r, c: b.c, ri: b.ri, ci: b.ci, v: b.v}, nil
}

// dedupLastWins collapses runs of equal coordinates, keeping the last value
// of each run. Requires sorted entries. Complexity: O(nnz).
func (b *COOBuilder) dedupLastWins() {
	if len(b.ri) == 0 {
		return
	}
	w := 0 // write cursor
	for k := 1; k < len(b.ri); k++ {
		if b.ri[k] == b.ri[w] && b.ci[k] == b.ci[w] {
			b.v[w] = b.v[k] // same coordinate: later append overwrites
			continue
		}
		w++
		b.ri[w], b.ci[w], b.v[w] = b.ri[k], b.ci[k], b.v[k]
	}
	b.ri = b.ri[:w+1]
	b.ci = b.ci[:w+1]
	b.v = b.v[:w+1]
}

// cooSorter orders builder entries row-major, swapping all three slices in
// lockstep. Stability preserves append order within equal coordinates so
// dedupLastWins sees appends in their original sequence.
type cooSorter struct{ b *COOBuilder }

func (s cooSorter) Len() int { return len(s.b.ri) }

func (s cooSorter) Less(x, y int) bool {
	if s.b.ri[x] != s.b.ri[y] {
		return s.b.ri[x] < s.b.ri[y]
	}

	return s.b.ci[x] < s.b.ci[y]
}

func (s cooSorter) Swap(x, y int) {
	s.b.ri[x], s.b.ri[y] = s.b.ri[y], s.b.ri[x]
	s.b.ci[x], s.b.ci[y] = s.b.ci[y], s.b.ci[x]
	s.b.v[x], s.b.v[y] = s.b.v[y], s.b.v[x]
}
