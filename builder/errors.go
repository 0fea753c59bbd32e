// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
// Callers MUST branch via errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrBadDimension indicates a non-positive row or column count.
var ErrBadDimension = errors.New("builder: invalid dimension")

// ErrBadNNZ indicates a negative or unsatisfiable target entry count.
var ErrBadNNZ = errors.New("builder: invalid target nnz")

// ErrBadBandwidth indicates a non-positive bandwidth for a banded generator.
var ErrBadBandwidth = errors.New("builder: invalid bandwidth")

// ErrBadVariance indicates a negative row-size variance.
var ErrBadVariance = errors.New("builder: invalid row-size variance")

// ErrBadDominance indicates a diagonal dominance factor <= 0.
var ErrBadDominance = errors.New("builder: invalid dominance factor")

// ErrBadUplo indicates an Uplo value other than Lower or Upper.
var ErrBadUplo = errors.New("builder: invalid triangle selector")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without an RNG (supply WithRand or WithSeed).
var ErrNeedRandSource = errors.New("builder: rng is required")
