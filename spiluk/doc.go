// SPDX-License-Identifier: MIT

// Package spiluk implements the symbolic phase of incomplete LU
// factorization with level-of-fill k — ILU(k) — over crs matrices:
// fill-pattern prediction for the L and U factors plus the level schedule
// that lets numeric-phase kernels process independent rows in parallel.
//
// Level scheduling
//
//	Row i depends on row j (j < i) when j appears among i's sub-diagonal
//	columns in the predicted L pattern. The schedule is the classical
//	longest-path layering of that DAG:
//
//	    level(i) = 1 + max(level(j) for all dependencies j), or 0.
//
//	Rows sharing a level have no dependency path between them and may run
//	concurrently; levels themselves run strictly in order.
//
//	        col  0 1 2 3 4
//	    row 0    ◆            level 0 ┐
//	    row 1      ◆          level 0 ├─ rows {0,1,3} independent
//	    row 2    ● ● ◆        level 1 │  row 2 waits for 0,1
//	    row 3          ◆      level 0 ┘
//	    row 4    ● ● ● ● ◆    level 2    row 4 waits for everything
//
// Lifecycle
//
//	A Handle moves through three phases:
//
//	    NewHandle ──► ResetDone ──Symbolic──► SymbolicComplete
//	                      ▲                         │
//	                      └──────── Reset ──────────┘
//
//	Schedule accessors are readable only in SymbolicComplete; before that
//	they return ErrSymbolicIncomplete. A completed handle is safe for
//	concurrent reads; mutation (Reset, Symbolic) is single-writer.
//
// Two dispatch policies shape how a level's rows reach the executor:
// SeqLevelRP treats each row as one work item, SeqLevelTP1 groups rows
// into fixed-size chunks for coarser dispatch. The policies never change
// which levels exist, only the granularity Sweep hands to parallel.For.
//
// Complexity: Symbolic is O(nnz(L+U after fill)) time for the level pass
// plus the fill expansion itself, which is bounded by O(n·w²) for band
// width w at fill level k; memory is owned by the Handle and reused across
// Reset/Symbolic cycles.
package spiluk
