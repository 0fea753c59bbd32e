// SPDX-License-Identifier: MIT

// Package builder constructs synthetic sparse matrices in CRS form for
// tests, benchmarks and factorization experiments.
//
// Constructors:
//
//   - RandomBanded        — banded random pattern with per-row size variance
//   - DiagonallyDominant  — banded random pattern with a dominant diagonal
//   - Triangular          — dense lower or upper triangular pattern
//   - Diagonal            — diagonal matrix with values 1..n (or reciprocals)
//
// Contract (strict, matching the lvlath builder rules):
//   - Constructors validate parameters first and return only sentinel
//     errors; they never panic at runtime.
//   - Option constructors (WithX...) validate and PANIC on meaningless
//     inputs — programmer errors surface early.
//   - Stochastic constructors require an explicit RNG (WithRand/WithSeed);
//     there is no hidden global randomness. A fixed seed reproduces the
//     matrix bit for bit: trial order is stable (rows ascending, slots
//     ascending, bounded rejection loop per slot).
//
// Complexity: all constructors are O(nnz) in time and output space, with
// an O(bandwidth) expected constant on the rejection loops.
package builder
