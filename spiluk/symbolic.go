// SPDX-License-Identifier: MIT
// Package spiluk: the symbolic pass — ILU(k) fill prediction and level
// scheduling.
//
// Contract:
//   - Input: a square crs.Matrix with a full structural diagonal; rows may
//     be unsorted (the pass normalizes order internally).
//   - Output: L and U patterns with fill level <= k (diagonal kept in
//     both), the per-row level assignment, the levelPtr/levelIdx buckets,
//     and the TP1 chunk subdivision. All of it lands in the Handle and
//     becomes readable atomically when the pass succeeds.
//   - The pass is sequential and single-writer; it runs once per pattern
//     change, off the numeric throughput path.

package spiluk

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/lvlsparse/crs"
)

// listEnd terminates the sorted working list of the fill pass.
const listEnd = -1

// Symbolic runs the full symbolic phase on a: validates the pattern,
// expands ILU(k) fill into the handle's L/U patterns, layers rows into
// dependency levels, buckets them into levelPtr/levelIdx and, for the TP1
// policy, subdivides each level into dispatch chunks. Requires a handle in
// the ResetDone phase (fresh from NewHandle or Reset); on success the
// handle enters SymbolicComplete and every accessor becomes readable.
func (h *Handle) Symbolic(a *crs.Matrix) error {
	// 1) Phase and input validation. Everything fails fast, before any
	//    derived state is touched.
	if h.phase != phaseResetDone {
		return fmt.Errorf("Symbolic: %w (Reset the handle first)", ErrPhase)
	}
	if a == nil {
		return fmt.Errorf("Symbolic: %w", ErrNilMatrix)
	}
	if a.Rows() != a.Cols() {
		return fmt.Errorf("Symbolic: %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}
	if a.Rows() != h.nrows {
		return fmt.Errorf("Symbolic: matrix has %d rows, handle sized for %d: %w",
			a.Rows(), h.nrows, ErrSizeMismatch)
	}
	full, err := a.HasFullDiagonal()
	if err != nil {
		return fmt.Errorf("Symbolic: %w", err)
	}
	if !full {
		return fmt.Errorf("Symbolic: %w", ErrMissingDiagonal)
	}

	// 2) ILU(k) fill expansion into the L/U patterns.
	h.expandFill(a)

	// 3) Longest-path layering over the L pattern.
	if err = h.assignLevels(); err != nil {
		return err
	}

	// 4) Counting-sort rows into levelPtr/levelIdx.
	h.bucketLevels()

	// 5) Chunk subdivision for dispatch.
	h.subdivideChunks()

	// 6) Publish: only now do the guarded accessors open up.
	h.phase = phaseSymbolicComplete

	return nil
}

// expandFill predicts the structural patterns of L and U under ILU(k).
//
// Classical row-merge formulation: row i starts as A's pattern at fill
// level 0; for every working column j < i (in ascending order) the U row
// of j is merged in, a candidate c entering at level lev(j)+lev(j,c)+1.
// Candidates above k are discarded, so the working set only ever holds
// entries that survive. The working set lives in a column-sorted singly
// linked list; h.iw marks membership and is restored to its sentinel
// row by row.
func (h *Handle) expandFill(a *crs.Matrix) {
	var (
		n      = h.nrows
		k      = h.cfg.fillLevel
		next   = make([]int, n) // sorted-list links, valid only for listed cols
		curLev = make([]int, n) // working fill level, valid only for listed cols
		head   int
		listed int
	)

	// insert splices column c into the sorted list. O(list length), which
	// is bounded by the final row width.
	insert := func(c int) {
		if head == listEnd || c < head {
			next[c] = head
			head = c
		} else {
			p := head
			for next[p] != listEnd && next[p] < c {
				p = next[p]
			}
			next[c] = next[p]
			next[p] = c
		}
		h.iw[c] = listed
		listed++
	}

	h.lRowPtr[0] = 0
	h.uRowPtr[0] = 0

	for i := 0; i < n; i++ {
		head = listEnd
		listed = 0

		// 1) Seed with A's row pattern at fill level 0. Duplicate columns
		//    collapse onto one slot.
		cols, _ := a.Row(i)
		for _, c := range cols {
			if h.iw[c] == iwSentinel {
				insert(c)
				curLev[c] = 0
			}
		}

		// 2) Merge pass: walk the working columns left of the diagonal in
		//    ascending order. Merging j may splice in columns right of j,
		//    which the walk then reaches naturally.
		for j := head; j != listEnd && j < i; j = next[j] {
			for p := h.uRowPtr[j]; p < h.uRowPtr[j+1]; p++ {
				c := h.uColInd[p]
				if c == j {
					continue // diagonal of the merged row
				}
				lev := curLev[j] + h.uLev[p] + 1
				if lev > k {
					continue
				}
				if h.iw[c] == iwSentinel {
					insert(c)
					curLev[c] = lev
				} else if lev < curLev[c] {
					curLev[c] = lev
				}
			}
		}

		// 3) Emit the surviving pattern in ascending column order, the
		//    diagonal landing in both factors, and restore the scratch.
		for c := head; c != listEnd; c = next[c] {
			switch {
			case c < i:
				h.lColInd = append(h.lColInd, c)
			case c == i:
				h.lColInd = append(h.lColInd, i) // unit-diagonal slot
				h.uColInd = append(h.uColInd, i)
				h.uLev = append(h.uLev, 0)
			default:
				h.uColInd = append(h.uColInd, c)
				h.uLev = append(h.uLev, curLev[c])
			}
			h.iw[c] = iwSentinel
		}
		h.lRowPtr[i+1] = len(h.lColInd)
		h.uRowPtr[i+1] = len(h.uColInd)
	}

	// Estimates become exact counts.
	h.nnzL = len(h.lColInd)
	h.nnzU = len(h.uColInd)
}

// assignLevels layers rows by longest dependency path: level(i) is one
// more than the maximum level among i's sub-diagonal L columns, or 0 when
// the row only holds its diagonal. Index order is a valid topological
// order here because every dependency satisfies j < i; the pass verifies
// that instead of assuming it, so a corrupt pattern is detected rather
// than mis-scheduled.
func (h *Handle) assignLevels() error {
	for i := 0; i < h.nrows; i++ {
		lev := 0
		for p := h.lRowPtr[i]; p < h.lRowPtr[i+1]; p++ {
			j := h.lColInd[p]
			if j == i {
				continue
			}
			if j > i {
				return fmt.Errorf("assignLevels: row %d depends on row %d: %w",
					i, j, ErrNotLowerTriangular)
			}
			if h.levelList[j]+1 > lev {
				lev = h.levelList[j] + 1
			}
		}
		h.levelList[i] = lev
	}

	return nil
}

// bucketLevels counting-sorts rows by level id into levelPtr/levelIdx and
// records nlevels and levelMaxRows.
func (h *Handle) bucketLevels() {
	// 1) Level count.
	nlev := 0
	for _, lev := range h.levelList[:h.nrows] {
		if lev+1 > nlev {
			nlev = lev + 1
		}
	}
	h.nlevels = nlev

	// 2) Per-level sizes, then prefix-sum into offsets.
	h.levelPtr = growInts(h.levelPtr, nlev+1)
	for i := range h.levelPtr {
		h.levelPtr[i] = 0
	}
	for _, lev := range h.levelList[:h.nrows] {
		h.levelPtr[lev+1]++
	}
	h.levelMaxRows = 0
	for k := 0; k < nlev; k++ {
		if h.levelPtr[k+1] > h.levelMaxRows {
			h.levelMaxRows = h.levelPtr[k+1]
		}
		h.levelPtr[k+1] += h.levelPtr[k]
	}

	// 3) Scatter row ids with a per-level write cursor. Ascending row
	//    order within each level keeps the schedule deterministic.
	cursor := append([]int(nil), h.levelPtr[:nlev]...)
	for i := 0; i < h.nrows; i++ {
		lev := h.levelList[i]
		h.levelIdx[cursor[lev]] = i
		cursor[lev]++
	}
}

// subdivideChunks records how each level's rows split into dispatch units.
// RP keeps one chunk per level (rows dispatch individually anyway); TP1
// targets defaultChunkDivisor chunks per processor unless WithRowsPerChunk
// pinned the size. The last chunk of a level may be partial.
func (h *Handle) subdivideChunks() {
	h.levelNChunks = growInts(h.levelNChunks, h.nlevels)
	h.levelNRowsPerChunk = growInts(h.levelNRowsPerChunk, h.nlevels)
	h.levelMaxRowsPerChunk = 0

	for k := 0; k < h.nlevels; k++ {
		rows := h.levelPtr[k+1] - h.levelPtr[k]

		perChunk := rows
		if h.alg == SeqLevelTP1 {
			if h.cfg.rowsPerChunk > 0 {
				perChunk = h.cfg.rowsPerChunk
			} else {
				target := defaultChunkDivisor * runtime.GOMAXPROCS(0)
				perChunk = (rows + target - 1) / target
				if perChunk < 1 {
					perChunk = 1
				}
			}
		}

		h.levelNRowsPerChunk[k] = perChunk
		h.levelNChunks[k] = (rows + perChunk - 1) / perChunk
		if perChunk > h.levelMaxRowsPerChunk {
			h.levelMaxRowsPerChunk = perChunk
		}
	}
}
