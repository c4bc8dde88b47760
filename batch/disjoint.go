// SPDX-License-Identifier: MIT

// Package batch: the disjoint-union builder. The union adjacency is the
// block-diagonal composition of the inputs; node attributes stack along the
// row axis; edge attributes embed block-diagonally channel by channel; the
// segment index repeats each graph index N_g times. The block-diagonal
// invariant is guaranteed by construction — the copy loop only ever writes
// entries shifted by a single graph's offset on both axes, so a cross-block
// entry cannot exist regardless of input data.
package batch

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/gnnbatch/matrix"
)

// Build assembles an ordered record sequence into one supergraph.
//
// Implementation:
//   - Stage 1 (Validate): validateSet — empty, nil entries, uniform F,
//     all-or-none edge attributes, uniform S. No partial builder state on
//     failure.
//   - Stage 2 (Prepare): node-count and non-zero prefix sums give every
//     record its offset into the union index space and into the pre-sized
//     sparse storage. Sequential by necessity (each offset depends on all
//     previous records).
//   - Stage 3 (Adjacency): per record, copy non-zero entries shifted by
//     the record's offset on both axes into storage pre-sized by stage 2.
//   - Stage 4 (Node attributes): stack N×F blocks along the row axis in
//     input order; result row k belongs to the same node as union index k.
//   - Stage 5 (Edge attributes): when present, per channel s, embed the
//     N×N faces exactly as stage 3 and stack the channels.
//   - Stage 6 (Segment index): repeat graph index g exactly N_g times.
//
// Behavior highlights:
//   - Stages 3 and 5 fan out over records when WithWorkers(n>1) is set;
//     every record writes a disjoint pre-computed range, so the output is
//     byte-identical to the sequential run.
//   - No dense T×T matrix is materialized unless WithDenseUnion opts in.
//   - The input set's access mode is resolved once and recorded on the
//     Result, so consumers never re-run Classify.
//
// Errors:
//   - ErrEmptyInput, ErrNilRecord, ErrAttributeWidth, ErrEdgeAttrMismatch
//     (stage 1); nothing after stage 1 can fail on well-formed records.
//
// Determinism:
//   - Output fully determined by input order; no randomization.
//
// Complexity:
//   - Time O(total non-zero adjacency entries + total attribute cells),
//     Space O(same). The sparse union never touches the T² zero region.
func Build(records []*Record, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: fail fast, before any assembly work.
	if err := validateSet(records); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// Stage 2: prefix sums — offsets into the union index space and into
	// the pre-sized sparse storage.
	k := len(records)
	offsets := make([]int, k+1) // offsets[g] = Σ N_i for i<g
	nnzOff := make([]int, k+1)  // nnzOff[g] = Σ nnz_i for i<g
	for g, rec := range records {
		offsets[g+1] = offsets[g] + rec.n
		nnzOff[g+1] = nnzOff[g] + matrix.CountNonZero(rec.adj)
	}
	total := offsets[k]

	// Stage 3: block-diagonal adjacency.
	var adj matrix.Matrix
	var err error
	if o.denseUnion {
		adj, err = buildDenseUnion(records, offsets, o.workers)
	} else {
		adj, err = buildSparseUnion(records, offsets, nnzOff, o.workers)
	}
	if err != nil {
		return nil, fmt.Errorf("Build: adjacency: %w", err)
	}

	// Stage 4: row-stacked node attributes, input order preserved.
	blocks := make([]*matrix.Dense, k)
	for g, rec := range records {
		blocks[g] = rec.nodeAttrs
	}
	nodeAttrs, err := matrix.StackRows(blocks...)
	if err != nil {
		return nil, fmt.Errorf("Build: node attributes: %w", err)
	}

	// Stage 5: per-channel block-diagonal edge attributes (all-or-none
	// presence was settled in stage 1).
	var edgeAttrs matrix.Tensor
	if records[0].s > 0 {
		edgeAttrs, err = buildEdgeUnion(records, offsets, o)
		if err != nil {
			return nil, fmt.Errorf("Build: edge attributes: %w", err)
		}
	}

	// Stage 6: segment index — graph index g repeated N_g times.
	segment := make([]int, total)
	for g := 0; g < k; g++ {
		for i := offsets[g]; i < offsets[g+1]; i++ {
			segment[i] = g
		}
	}

	return &Result{
		adj:       adj,
		nodeAttrs: nodeAttrs,
		edgeAttrs: edgeAttrs,
		segment:   segment,
		offsets:   offsets,
		mode:      resolveMode(records),
	}, nil
}

// buildSparseUnion writes every record's non-zero entries into raw COO
// storage at pre-computed positions. Entries arrive row-major within each
// record and blocks ascend by offset, so the result is globally row-major
// and NewCOOFrom validates it in a single O(nnz) pass.
func buildSparseUnion(records []*Record, offsets, nnzOff []int, workers int) (*matrix.COO, error) {
	k := len(records)
	total := offsets[k]
	nnz := nnzOff[k]
	ri := make([]int, nnz)
	ci := make([]int, nnz)
	v := make([]float64, nnz)

	runPerRecord(k, workers, func(g int) {
		base := offsets[g] // shift on both axes: stays inside block g
		pos := nnzOff[g]   // this record's slot range in the entry storage
		forEachNonZero(records[g].adj, func(i, j int, val float64) {
			ri[pos] = base + i
			ci[pos] = base + j
			v[pos] = val
			pos++
		})
	})

	return matrix.NewCOOFrom(total, total, ri, ci, v)
}

// buildDenseUnion materializes the union adjacency densely (opt-in via
// WithDenseUnion). Each record writes only its own diagonal block, so
// concurrent fills touch disjoint rows.
func buildDenseUnion(records []*Record, offsets []int, workers int) (*matrix.Dense, error) {
	total := offsets[len(records)]
	out, err := matrix.NewDense(total, total)
	if err != nil {
		return nil, err
	}

	runPerRecord(len(records), workers, func(g int) {
		base := offsets[g]
		forEachNonZero(records[g].adj, func(i, j int, val float64) {
			_ = out.Set(base+i, base+j, val) // in bounds by construction
		})
	})

	return out, nil
}

// buildEdgeUnion assembles the union edge-attribute tensor channel by
// channel: each N×N face is treated as an adjacency-like matrix and
// block-diagonal-embedded exactly like the union adjacency, then the S
// block-diagonal faces stack along the last axis.
func buildEdgeUnion(records []*Record, offsets []int, o Options) (matrix.Tensor, error) {
	s := records[0].s
	faces := make([]matrix.Matrix, s)

	var err error
	for ch := 0; ch < s; ch++ {
		if o.denseUnion {
			faces[ch], err = buildDenseFace(records, offsets, ch, o.workers)
		} else {
			faces[ch], err = buildSparseFace(records, offsets, ch, o.workers)
		}
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}
	}

	return matrix.NewChannelTensor(faces...)
}

// buildSparseFace embeds channel ch of every record block-diagonally into
// one sparse T×T matrix. A counting pass sizes the storage, then the copy
// pass fills pre-computed disjoint ranges (parallel-safe).
func buildSparseFace(records []*Record, offsets []int, ch, workers int) (*matrix.COO, error) {
	k := len(records)
	total := offsets[k]

	// Counting pass: per-record non-zero prefix sums for this channel.
	cnt := make([]int, k+1)
	for g, rec := range records {
		cnt[g+1] = cnt[g] + countFaceNonZero(rec.edgeAttrs, rec.n, ch)
	}

	ri := make([]int, cnt[k])
	ci := make([]int, cnt[k])
	v := make([]float64, cnt[k])
	runPerRecord(k, workers, func(g int) {
		base := offsets[g]
		pos := cnt[g]
		forEachFaceNonZero(records[g].edgeAttrs, records[g].n, ch, func(i, j int, val float64) {
			ri[pos] = base + i
			ci[pos] = base + j
			v[pos] = val
			pos++
		})
	})

	return matrix.NewCOOFrom(total, total, ri, ci, v)
}

// buildDenseFace is the dense counterpart of buildSparseFace.
func buildDenseFace(records []*Record, offsets []int, ch, workers int) (*matrix.Dense, error) {
	total := offsets[len(records)]
	out, err := matrix.NewDense(total, total)
	if err != nil {
		return nil, err
	}

	runPerRecord(len(records), workers, func(g int) {
		base := offsets[g]
		forEachFaceNonZero(records[g].edgeAttrs, records[g].n, ch, func(i, j int, val float64) {
			_ = out.Set(base+i, base+j, val)
		})
	})

	return out, nil
}

// forEachNonZero enumerates m's non-zero entries in row-major order,
// using the NonZeroer fast path when available.
// Complexity: O(nnz) or O(r*c).
func forEachNonZero(m matrix.Matrix, fn func(i, j int, v float64)) {
	if nz, ok := m.(matrix.NonZeroer); ok {
		nz.DoNonZero(fn)

		return
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v != 0 {
				fn(i, j, v)
			}
		}
	}
}

// countFaceNonZero counts non-zero entries of channel ch over an n×n face.
// Complexity: O(n²) through the Tensor interface.
func countFaceNonZero(t matrix.Tensor, n, ch int) int {
	cnt := 0
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = t.At(i, j, ch)
			if v != 0 {
				cnt++
			}
		}
	}

	return cnt
}

// forEachFaceNonZero enumerates non-zero entries of channel ch in
// row-major order. Complexity: O(n²).
func forEachFaceNonZero(t matrix.Tensor, n, ch int, fn func(i, j int, v float64)) {
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = t.At(i, j, ch)
			if v != 0 {
				fn(i, j, v)
			}
		}
	}
}

// runPerRecord executes fn(g) for every record index. With workers ≤ 1 (or
// a single record) the loop is plainly sequential; otherwise records are
// striped across workers. Correctness does not depend on scheduling: every
// fn(g) writes only to ranges pre-computed for record g.
func runPerRecord(k, workers int, fn func(g int)) {
	if workers <= 1 || k < 2 {
		for g := 0; g < k; g++ {
			fn(g)
		}

		return
	}
	if workers > k {
		workers = k
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			for g := start; g < k; g += workers {
				fn(g)
			}
		}(w)
	}
	wg.Wait()
}
