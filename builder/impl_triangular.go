// SPDX-License-Identifier: MIT
// Package: lvlsparse/builder
//
// impl_triangular.go - Triangular and Diagonal pattern constructors.
// Both are fully deterministic (no RNG involved) and exist chiefly to drive
// the degenerate scheduling cases: a dense triangle yields one row per
// level, a diagonal yields a single level holding every row.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/crs"
)

const (
	methodTriangular = "Triangular"
	methodDiagonal   = "Diagonal"
)

// Uplo selects the triangle kept by Triangular.
type Uplo int

const (
	// Lower keeps entries with col <= row.
	Lower Uplo = iota
	// Upper keeps entries with col >= row.
	Upper
)

// String implements fmt.Stringer for diagnostics.
func (u Uplo) String() string {
	switch u {
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	default:
		return fmt.Sprintf("Uplo(%d)", int(u))
	}
}

// Triangular builds a dense n×n lower or upper triangular pattern with unit
// values: row i holds columns 0..i (Lower) or i..n-1 (Upper).
func Triangular(uplo Uplo, n int) (*crs.Matrix, error) {
	// 1) Domains.
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodTriangular, n, ErrBadDimension)
	}
	if uplo != Lower && uplo != Upper {
		return nil, fmt.Errorf("%s: %v: %w", methodTriangular, uplo, ErrBadUplo)
	}

	// 2) Row offsets: row i holds i+1 (Lower) or n-i (Upper) entries.
	ptr := make([]int, n+1)
	var i int
	for i = 0; i < n; i++ {
		if uplo == Lower {
			ptr[i+1] = ptr[i] + i + 1
		} else {
			ptr[i+1] = ptr[i] + n - i
		}
	}

	// 3) Columns ascending inside each row; values all one.
	ind := make([]int, ptr[n])
	val := make([]float64, ptr[n])
	var k int
	for i = 0; i < n; i++ {
		for k = ptr[i]; k < ptr[i+1]; k++ {
			if uplo == Lower {
				ind[k] = k - ptr[i]
			} else {
				ind[k] = i + (k - ptr[i])
			}
			val[k] = 1
		}
	}

	return crs.New(n, n, ptr, ind, val)
}

// Diagonal builds an n×n diagonal matrix with values 1..n, or their
// reciprocals when invert is true (the exact inverse of the former).
func Diagonal(n int, invert bool) (*crs.Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodDiagonal, n, ErrBadDimension)
	}

	ptr := make([]int, n+1)
	ind := make([]int, n)
	val := make([]float64, n)
	for i := 0; i < n; i++ {
		ptr[i+1] = i + 1
		ind[i] = i
		if invert {
			val[i] = 1 / float64(i+1)
		} else {
			val[i] = float64(i + 1)
		}
	}

	return crs.New(n, n, ptr, ind, val)
}
