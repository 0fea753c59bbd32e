// SPDX-License-Identifier: MIT
// Package crs: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the crs
// package. All constructors and readers MUST return these sentinels and tests
// MUST check them via errors.Is. No routine panics on user-triggered error
// conditions.

package crs

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are negative, or when
	// a block dimension is < 1.
	ErrBadShape = errors.New("crs: invalid shape")

	// ErrBadRowPtr indicates a malformed row-offset array: wrong length,
	// rowPtr[0] != 0, a decreasing step, or rowPtr[rows] != len(colInd).
	ErrBadRowPtr = errors.New("crs: malformed row pointer array")

	// ErrColOutOfRange indicates a column index outside [0, cols).
	ErrColOutOfRange = errors.New("crs: column index out of range")

	// ErrLengthMismatch indicates len(values) != len(colInd), or a block
	// values array whose length is not nnz*blockDim².
	ErrLengthMismatch = errors.New("crs: parallel array length mismatch")

	// ErrRowOutOfRange indicates a row index outside [0, rows).
	ErrRowOutOfRange = errors.New("crs: row index out of range")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (triangular split, diagonal checks).
	ErrNonSquare = errors.New("crs: matrix is not square")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("crs: nil matrix")

	// I/O sentinels.

	// ErrBadHeader indicates an unparseable MatrixMarket banner or size line.
	ErrBadHeader = errors.New("crs: malformed MatrixMarket header")

	// ErrUnsupportedField indicates a recognized but unsupported MatrixMarket
	// field or symmetry (complex, hermitian): lvlsparse stores float64 only.
	ErrUnsupportedField = errors.New("crs: unsupported MatrixMarket field")

	// ErrBadEntry indicates a malformed or out-of-range coordinate entry.
	ErrBadEntry = errors.New("crs: malformed matrix entry")

	// ErrUnknownFormat indicates a file extension that maps to no known
	// reader/writer (.mtx/.mm, .bin, .crs are supported).
	ErrUnknownFormat = errors.New("crs: unknown file format")

	// ErrNonSymmetrizable indicates a symmetric/skew-symmetric header on a
	// non-square size line.
	ErrNonSymmetrizable = errors.New("crs: non-square matrix cannot be symmetrized")
)
