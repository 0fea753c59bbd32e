// SPDX-License-Identifier: MIT
package spiluk

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlsparse/parallel"
)

// Sweep drives a numeric-phase consumer over a completed schedule: levels
// strictly in order with a full barrier between them, rows within a level
// dispatched concurrently through parallel.For. The dispatch grain follows
// the handle's policy — one row per work item under SeqLevelRP, one chunk
// under SeqLevelTP1. The first error from visit (or a context
// cancellation) aborts the sweep; no later level starts after a failure.
//
// visit may run from multiple goroutines at once, but only for rows of the
// same level, so a visit body that touches row-local state plus already
// finished rows needs no locking of its own.
func Sweep(ctx context.Context, h *Handle, visit func(row int) error) error {
	if err := h.guard("Sweep"); err != nil {
		return err
	}

	for k := 0; k < h.nlevels; k++ {
		rows := h.levelIdx[h.levelPtr[k]:h.levelPtr[k+1]]

		grain := 1
		if h.alg == SeqLevelTP1 {
			grain = h.levelNRowsPerChunk[k]
		}

		// parallel.For returns only after every block of this level
		// finished — the inter-level barrier.
		err := parallel.For(ctx, len(rows), grain, func(lo, hi int) error {
			for t := lo; t < hi; t++ {
				if err := visit(rows[t]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("Sweep: level %d: %w", k, err)
		}
	}

	return nil
}
