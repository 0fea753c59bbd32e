// SPDX-License-Identifier: MIT
// Package: lvlsparse/builder
//
// impl_dominant.go - implementation of DiagonallyDominant(...) constructor.
//
// Canonical model:
//   - Banded random pattern as in RandomBanded, but every row reserves its
//     LAST slot for the diagonal entry, valued dominance·Σ|off-diagonal|.
//   - Every row holds at least the diagonal (≥1 entry), so the result always
//     satisfies the KEEP_DIAG invariant required by the symbolic ILU phase.
//
// Contract:
//   - rows ≥ 1, cols ≥ rows' diagonal reach (square use is typical).
//   - dominance > 0 (else ErrBadDominance); remaining domains as RandomBanded.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism: stable trial order as RandomBanded; fixed seed ⇒ identical
// matrix, including the derived diagonal values.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsparse/crs"
)

const (
	methodDominant = "DiagonallyDominant"

	// dominantRowFillRatio caps the jitter at 3/4 of the columns.
	dominantRowFillRatio = 0.75
)

// DiagonallyDominant samples a rows×cols CRS matrix whose diagonal entry
// dominates the absolute row sum by the given factor.
func DiagonallyDominant(rows, cols, targetNNZ, variance, bandwidth int, dominance float64, opts ...Option) (*crs.Matrix, error) {
	// 1) Parameter domains.
	if rows < 1 || cols < rows {
		return nil, fmt.Errorf("%s: rows=%d cols=%d: %w", methodDominant, rows, cols, ErrBadDimension)
	}
	if targetNNZ < 0 {
		return nil, fmt.Errorf("%s: targetNNZ=%d: %w", methodDominant, targetNNZ, ErrBadNNZ)
	}
	if variance < 0 {
		return nil, fmt.Errorf("%s: variance=%d: %w", methodDominant, variance, ErrBadVariance)
	}
	if bandwidth < 1 {
		return nil, fmt.Errorf("%s: bandwidth=%d: %w", methodDominant, bandwidth, ErrBadBandwidth)
	}
	if dominance <= 0 || math.IsNaN(dominance) || math.IsInf(dominance, 0) {
		return nil, fmt.Errorf("%s: dominance=%g: %w", methodDominant, dominance, ErrBadDominance)
	}
	cfg := gatherOptions(opts)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodDominant, ErrNeedRandSource)
	}

	// 2) Per-row entry counts: jitter clamped to [1, 3/4·cols], then bounded
	//    by the band's reachable off-diagonal positions plus the diagonal.
	perRow := targetNNZ / rows
	offCap := bandwidth - 2 // reachable band offsets minus the diagonal slot
	if offCap < 0 {
		offCap = 0
	}
	if lim := int(dominantRowFillRatio * float64(cols)); offCap > lim {
		offCap = lim
	}
	ptr := make([]int, rows+1)
	var row, entries int
	for row = 0; row < rows; row++ {
		jitter := int((cfg.rng.Float64() - 0.5) * float64(variance))
		if jitter < 1 {
			jitter = 1
		}
		entries = perRow + jitter
		if entries < 1 {
			entries = 1
		}
		if entries > offCap+1 {
			entries = offCap + 1
		}
		ptr[row+1] = ptr[row] + entries
	}

	// 3) Fill off-diagonal slots by rejection sampling, then the diagonal.
	nnz := ptr[rows]
	ind := make([]int, nnz)
	val := make([]float64, nnz)
	var k, pos int
	var total float64
	for row = 0; row < rows; row++ {
		total = 0
		for k = ptr[row]; k < ptr[row+1]-1; k++ {
			for {
				pos = int((cfg.rng.Float64()-0.5)*float64(bandwidth)) + row
				for pos < 0 {
					pos += cols
				}
				for pos >= cols {
					pos -= cols
				}
				if pos != row && !containsInt(ind[ptr[row]:k], pos) {
					ind[k] = pos
					break
				}
			}
			val[k] = cfg.drawValue()
			total += math.Abs(val[k])
		}
		// Diagonal last; a row with no off-diagonal mass still gets a
		// non-zero pivot.
		if total == 0 {
			total = 1
		}
		ind[ptr[row+1]-1] = row
		val[ptr[row+1]-1] = total * dominance
	}

	// 4) Validate through crs.New.
	return crs.New(rows, cols, ptr, ind, val)
}
