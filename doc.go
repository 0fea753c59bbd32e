// Package lvlsparse is your in-memory toolkit for sparse numerical kernels —
// compressed-row matrices, sparse I/O, synthetic generators, dense BLAS-1
// reductions, and the symbolic level-scheduling engine behind parallel
// incomplete-LU factorization.
//
// 🚀 What is lvlsparse?
//
//	A focused, deterministic library that brings together:
//		• CRS primitives: validated compressed-row storage + block (BSR) variant
//		• Sparse I/O: MatrixMarket, raw binary and whitespace-text formats
//		• Generators: banded random, diagonally dominant, triangular, diagonal
//		• SPILUK symbolic phase: ILU(k) fill prediction + level scheduling
//		• BLAS-1: Nrm2 / Iamax behind a pluggable capability registry
//		• Parallel sweep: level-by-level dispatch with in-level parallelism
//
// ✨ Why choose lvlsparse?
//
//   - Deterministic – fixed seed and fixed pattern ⇒ identical schedule
//   - Fail-fast – malformed CRS and non-triangular inputs are errors, never UB
//   - Guarded state – schedules are unreadable until the symbolic pass completes
//   - Extensible – register vendor-optimized BLAS backends per (type, layout, device)
//
// Under the hood, everything is organized under five subpackages:
//
//	blas1/    — dense-vector reductions with capability-based dispatch
//	builder/  — synthetic CRS generators with controllable structure
//	crs/      — compressed-row matrix type, validation and file formats
//	parallel/ — minimal data-parallel for/reduce over index ranges
//	spiluk/   — the level-scheduling handle and symbolic ILU(k) engine
//
// Quick ASCII example — a 5×5 lower-triangular pattern and its levels:
//
//	row 0: ●              levels:
//	row 1: · ●              level 0: rows {0, 1, 3}
//	row 2: ● ● ●            level 1: row  {2}
//	row 3: · · · ●          level 2: row  {4}
//	row 4: ● ● ● ● ●
//
//	rows in one level share no dependency path and run concurrently;
//	levels run strictly in order.
//
// Dive into spiluk/doc.go for the scheduling model and crs/doc.go for the
// storage contract.
//
//	go get github.com/katalvlaran/lvlsparse
package lvlsparse
