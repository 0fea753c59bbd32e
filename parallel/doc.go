// Package parallel provides a minimal data-parallel for/reduce abstraction
// over half-open index ranges, used by the numeric-phase consumers of a
// level schedule.
//
// The model is deliberately simple: split [0,n) into contiguous blocks of
// at least `grain` indices, run the blocks on up to GOMAXPROCS goroutines,
// and join at a barrier before returning. The first error (or a context
// cancellation) aborts the whole range; no partial results are reported.
//
// Complexity:
//
//   - For:    O(n/P) wall time for P workers, O(P) goroutines
//   - Reduce: as For plus an O(P) sequential join
package parallel
