// SPDX-License-Identifier: MIT
package spiluk

import "errors"

var (
	// ErrUnknownAlgorithm - algorithm name failed to parse (unrecognized configuration).
	ErrUnknownAlgorithm = errors.New("spiluk: unrecognized algorithm")
	// ErrBadDimension - negative row count or negative fill estimate.
	ErrBadDimension = errors.New("spiluk: invalid dimension")
	// ErrNilMatrix - Symbolic received a nil matrix.
	ErrNilMatrix = errors.New("spiluk: nil matrix")
	// ErrNonSquare - factorization requires rows == cols.
	ErrNonSquare = errors.New("spiluk: matrix is not square")
	// ErrMissingDiagonal - a row has no structural diagonal entry.
	ErrMissingDiagonal = errors.New("spiluk: structural zero on diagonal")
	// ErrNotLowerTriangular - a dependency edge points at j >= i.
	ErrNotLowerTriangular = errors.New("spiluk: dependency is not sub-diagonal")
	// ErrSymbolicIncomplete - schedule read before a successful symbolic pass.
	ErrSymbolicIncomplete = errors.New("spiluk: symbolic phase not complete")
	// ErrPhase - operation not valid in the handle's current phase.
	ErrPhase = errors.New("spiluk: operation invalid in current phase")
	// ErrSizeMismatch - matrix dimension differs from the handle's nrows.
	ErrSizeMismatch = errors.New("spiluk: matrix size does not match handle")
)
