// SPDX-License-Identifier: MIT
// Package spiluk: handle state and lifecycle.
//
// Contract:
//   - The Handle owns every derived array of the symbolic phase and reuses
//     the allocations across Reset/Symbolic cycles (grow-only).
//   - Mutation (Reset, Symbolic) is single-writer; once IsSymbolicComplete
//     reports true the handle is safe for concurrent reads.
//   - Schedule accessors are guarded: before completion they return
//     ErrSymbolicIncomplete, never partially populated data.

package spiluk

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/crs"
)

// phase is the handle's lifecycle position.
type phase int

const (
	phaseConstructed phase = iota
	phaseResetDone
	phaseSymbolicComplete
)

// iwSentinel marks an unused slot in the column-to-position scratch.
const iwSentinel = -1

// Handle owns the symbolic-phase state for one matrix pattern: the ILU(k)
// fill prediction, the level schedule, and the chunking metadata for
// parallel dispatch. Construct with NewHandle, populate with Symbolic.
type Handle struct {
	alg   Algorithm
	cfg   config
	phase phase

	nrows int
	nnzL  int // capacity estimate until Symbolic, exact count after
	nnzU  int

	// Level schedule (populated by Symbolic).
	nlevels              int
	levelList            []int // row -> level id
	levelPtr             []int // CSR-style offsets into levelIdx
	levelIdx             []int // row ids grouped by level
	levelNChunks         []int // TP1: chunks per level
	levelNRowsPerChunk   []int // TP1: chunk size per level
	levelMaxRows         int
	levelMaxRowsPerChunk int

	// Predicted factor patterns (structure only, KEEP_DIAG both sides).
	lRowPtr []int
	lColInd []int
	uRowPtr []int
	uColInd []int
	uLev    []int // fill level per U entry, consumed during expansion

	// iw maps column index -> working position for the current row of the
	// symbolic pass; every touched slot is restored to iwSentinel before
	// the next row.
	iw []int
}

// NewHandle constructs a handle for an nrows×nrows factorization with the
// given dispatch policy and initial fill estimates. The estimates size the
// first allocation only; Symbolic grows them as needed. Negative arguments
// return ErrBadDimension, an out-of-range algorithm ErrUnknownAlgorithm.
func NewHandle(alg Algorithm, nrows, nnzL, nnzU int, opts ...Option) (*Handle, error) {
	if !alg.valid() {
		return nil, fmt.Errorf("NewHandle: %v: %w", alg, ErrUnknownAlgorithm)
	}

	h := &Handle{
		alg:   alg,
		cfg:   gatherOptions(opts),
		phase: phaseConstructed,
	}
	if err := h.Reset(nrows, nnzL, nnzU); err != nil {
		return nil, err
	}

	return h, nil
}

// Reset prepares the handle for a fresh symbolic pass on an nrows×nrows
// pattern with the given fill estimates. Existing allocations are reused
// when large enough (grow-only); all derived state is cleared, the iw
// scratch re-armed with its sentinel, and completion revoked. Single-writer.
func (h *Handle) Reset(nrows, nnzL, nnzU int) error {
	// 1) Validate the dimension domain.
	if nrows < 0 || nnzL < 0 || nnzU < 0 {
		return fmt.Errorf("Reset: nrows=%d nnzL=%d nnzU=%d: %w", nrows, nnzL, nnzU, ErrBadDimension)
	}

	// 2) Size the per-row arrays, reusing capacity where possible.
	h.nrows = nrows
	h.nnzL = nnzL
	h.nnzU = nnzU
	h.levelList = growInts(h.levelList, nrows)
	h.levelIdx = growInts(h.levelIdx, nrows)
	h.lRowPtr = growInts(h.lRowPtr, nrows+1)
	h.uRowPtr = growInts(h.uRowPtr, nrows+1)
	h.lColInd = growInts(h.lColInd[:0], 0)
	h.uColInd = growInts(h.uColInd[:0], 0)
	h.uLev = growInts(h.uLev[:0], 0)

	// 3) Re-arm the scratch: every slot back to the sentinel.
	h.iw = growInts(h.iw, nrows)
	for i := range h.iw {
		h.iw[i] = iwSentinel
	}

	// 4) Clear the schedule and revoke completion.
	h.nlevels = 0
	h.levelPtr = h.levelPtr[:0]
	h.levelNChunks = h.levelNChunks[:0]
	h.levelNRowsPerChunk = h.levelNRowsPerChunk[:0]
	h.levelMaxRows = 0
	h.levelMaxRowsPerChunk = 0
	h.phase = phaseResetDone

	return nil
}

// growInts reslices s to length n, reallocating only when capacity falls
// short.
func growInts(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}

// Algorithm reports the dispatch policy. Always readable.
func (h *Handle) Algorithm() Algorithm { return h.alg }

// FillLevel reports k of ILU(k). Always readable.
func (h *Handle) FillLevel() int { return h.cfg.fillLevel }

// TeamSize reports the executor team-size hint (0 = auto). Always readable.
func (h *Handle) TeamSize() int { return h.cfg.teamSize }

// VectorSize reports the executor vector-length hint (0 = auto). Always readable.
func (h *Handle) VectorSize() int { return h.cfg.vectorSize }

// NumRows reports the pattern dimension the handle is sized for. Always readable.
func (h *Handle) NumRows() int { return h.nrows }

// IsSymbolicComplete reports whether a successful symbolic pass populated
// the schedule. Always readable.
func (h *Handle) IsSymbolicComplete() bool { return h.phase == phaseSymbolicComplete }

// guard rejects schedule reads before completion.
func (h *Handle) guard(op string) error {
	if h.phase != phaseSymbolicComplete {
		return fmt.Errorf("%s: %w", op, ErrSymbolicIncomplete)
	}
	return nil
}

// NumLevels returns the number of levels in the schedule.
func (h *Handle) NumLevels() (int, error) {
	if err := h.guard("NumLevels"); err != nil {
		return 0, err
	}
	return h.nlevels, nil
}

// LevelPtr returns the CSR-style level offsets: level k owns rows
// LevelIdx()[levelPtr[k]:levelPtr[k+1]]. The slice is a read-only view.
func (h *Handle) LevelPtr() ([]int, error) {
	if err := h.guard("LevelPtr"); err != nil {
		return nil, err
	}
	return h.levelPtr, nil
}

// LevelIdx returns row ids grouped by level. Read-only view.
func (h *Handle) LevelIdx() ([]int, error) {
	if err := h.guard("LevelIdx"); err != nil {
		return nil, err
	}
	return h.levelIdx, nil
}

// LevelList returns the per-row level assignment. Read-only view.
func (h *Handle) LevelList() ([]int, error) {
	if err := h.guard("LevelList"); err != nil {
		return nil, err
	}
	return h.levelList, nil
}

// LevelNChunks returns the per-level chunk counts (TP1 policy; RP reports
// one chunk per level). Read-only view.
func (h *Handle) LevelNChunks() ([]int, error) {
	if err := h.guard("LevelNChunks"); err != nil {
		return nil, err
	}
	return h.levelNChunks, nil
}

// LevelNRowsPerChunk returns the per-level chunk sizes. Read-only view.
func (h *Handle) LevelNRowsPerChunk() ([]int, error) {
	if err := h.guard("LevelNRowsPerChunk"); err != nil {
		return nil, err
	}
	return h.levelNRowsPerChunk, nil
}

// LevelMaxRows returns the size of the largest level, used to dimension
// numeric-phase buffers.
func (h *Handle) LevelMaxRows() (int, error) {
	if err := h.guard("LevelMaxRows"); err != nil {
		return 0, err
	}
	return h.levelMaxRows, nil
}

// LevelMaxRowsPerChunk returns the largest chunk size across levels.
func (h *Handle) LevelMaxRowsPerChunk() (int, error) {
	if err := h.guard("LevelMaxRowsPerChunk"); err != nil {
		return 0, err
	}
	return h.levelMaxRowsPerChunk, nil
}

// NNZL returns the predicted structural nonzero count of L (diagonal
// included).
func (h *Handle) NNZL() (int, error) {
	if err := h.guard("NNZL"); err != nil {
		return 0, err
	}
	return h.nnzL, nil
}

// NNZU returns the predicted structural nonzero count of U (diagonal
// included).
func (h *Handle) NNZU() (int, error) {
	if err := h.guard("NNZU"); err != nil {
		return 0, err
	}
	return h.nnzU, nil
}

// LPattern materializes the predicted L pattern as a unit-valued CRS
// matrix (diagonal present in every row, KEEP_DIAG).
func (h *Handle) LPattern() (*crs.Matrix, error) {
	if err := h.guard("LPattern"); err != nil {
		return nil, err
	}
	return patternMatrix(h.nrows, h.lRowPtr, h.lColInd)
}

// UPattern materializes the predicted U pattern as a unit-valued CRS
// matrix.
func (h *Handle) UPattern() (*crs.Matrix, error) {
	if err := h.guard("UPattern"); err != nil {
		return nil, err
	}
	return patternMatrix(h.nrows, h.uRowPtr, h.uColInd)
}

func patternMatrix(n int, rowPtr, colInd []int) (*crs.Matrix, error) {
	ones := make([]float64, len(colInd))
	for i := range ones {
		ones[i] = 1
	}
	// Copies keep the handle's backing arrays private to the next Reset.
	ptr := append([]int(nil), rowPtr...)
	ind := append([]int(nil), colInd...)

	return crs.New(n, n, ptr, ind, ones)
}

// Schedule is an immutable snapshot of a completed level schedule, safe to
// hand to concurrent numeric-phase consumers independently of the handle's
// later Reset cycles.
type Schedule struct {
	levelPtr []int
	levelIdx []int
}

// Schedule snapshots the completed schedule. Guarded like every other
// accessor.
func (h *Handle) Schedule() (*Schedule, error) {
	if err := h.guard("Schedule"); err != nil {
		return nil, err
	}
	return &Schedule{
		levelPtr: append([]int(nil), h.levelPtr...),
		levelIdx: append([]int(nil), h.levelIdx...),
	}, nil
}

// NumLevels reports the level count of the snapshot.
func (s *Schedule) NumLevels() int { return len(s.levelPtr) - 1 }

// Rows returns the row ids of level k as a read-only view.
func (s *Schedule) Rows(k int) []int {
	return s.levelIdx[s.levelPtr[k]:s.levelPtr[k+1]]
}
