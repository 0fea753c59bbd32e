// SPDX-License-Identifier: MIT
// Package: lvlsparse/builder
//
// impl_random_banded.go - implementation of RandomBanded(...) constructor.
//
// Canonical model:
//   - Per-row entry count: targetNNZ/rows plus a uniform jitter in
//     (-variance/2, +variance/2), clamped into [0, min(2/3·cols, bandwidth)].
//   - Column positions: uniform within ±bandwidth/2 of the diagonal, wrapped
//     into [0, cols); duplicate positions rejected and redrawn.
//   - Values: uniform draw from the configured range.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrBadDimension).
//   - targetNNZ ≥ 0 (else ErrBadNNZ); variance ≥ 0 (else ErrBadVariance).
//   - bandwidth ≥ 1 (else ErrBadBandwidth).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable trial order: rows ascending, slots ascending, redraw loop per
//     slot. Fixed seed ⇒ identical matrix.
//
// Complexity:
//   - Time: O(rows + nnz·w) where w is the expected redraw count (bounded
//     because the entry count is clamped below the reachable band width).
//   - Space: O(nnz) output, O(bandwidth) duplicate-check scratch per row.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/crs"
)

const (
	methodRandomBanded = "RandomBanded"

	// maxRowFillRatio caps per-row entries at 2/3 of the columns so the
	// rejection sampling terminates quickly even on dense requests.
	maxRowFillRatio = 2.0 / 3.0
)

// RandomBanded samples a rows×cols CRS matrix with ~targetNNZ entries,
// per-row size jitter of ±variance/2 and columns confined to a band of the
// given width around the diagonal.
func RandomBanded(rows, cols, targetNNZ, variance, bandwidth int, opts ...Option) (*crs.Matrix, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: rows=%d cols=%d: %w", methodRandomBanded, rows, cols, ErrBadDimension)
	}
	if targetNNZ < 0 {
		return nil, fmt.Errorf("%s: targetNNZ=%d: %w", methodRandomBanded, targetNNZ, ErrBadNNZ)
	}
	if variance < 0 {
		return nil, fmt.Errorf("%s: variance=%d: %w", methodRandomBanded, variance, ErrBadVariance)
	}
	if bandwidth < 1 {
		return nil, fmt.Errorf("%s: bandwidth=%d: %w", methodRandomBanded, bandwidth, ErrBadBandwidth)
	}
	cfg := gatherOptions(opts)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomBanded, ErrNeedRandSource)
	}

	// 2) Draw per-row entry counts and prefix-sum them into row offsets.
	perRow := targetNNZ / rows
	rowCap := int(maxRowFillRatio * float64(cols))
	// The band draw reaches at most bandwidth-1 distinct offsets (integer
	// truncation of a (-bw/2, bw/2) draw), so cap entries below that or the
	// rejection loop could never find a free slot.
	reach := bandwidth - 1
	if reach < 1 {
		reach = 1
	}
	if rowCap > reach {
		rowCap = reach
	}
	ptr := make([]int, rows+1)
	var row, entries int
	for row = 0; row < rows; row++ {
		jitter := int((cfg.rng.Float64() - 0.5) * float64(variance))
		entries = perRow + jitter
		if entries < 0 {
			entries = 0
		}
		if entries > rowCap {
			entries = rowCap
		}
		ptr[row+1] = ptr[row] + entries
	}

	// 3) Fill column indices by rejection sampling inside the band.
	nnz := ptr[rows]
	ind := make([]int, nnz)
	val := make([]float64, nnz)
	var k, pos int
	for row = 0; row < rows; row++ {
		for k = ptr[row]; k < ptr[row+1]; k++ {
			for {
				// Uniform offset in (-bandwidth/2, +bandwidth/2), wrapped into range.
				pos = int((cfg.rng.Float64()-0.5)*float64(bandwidth)) + row
				for pos < 0 {
					pos += cols
				}
				for pos >= cols {
					pos -= cols
				}
				if !containsInt(ind[ptr[row]:k], pos) {
					ind[k] = pos
					break
				}
			}
			val[k] = cfg.drawValue()
		}
	}

	// 4) Re-enter through crs.New so the result carries the validity guarantee.
	return crs.New(rows, cols, ptr, ind, val)
}

// containsInt reports whether x occurs in s (rows are short; linear scan).
func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}

	return false
}
