// SPDX-License-Identifier: MIT
// Package crs: block compressed-row storage (BSR).
//
// A BlockMatrix stores one dense blockDim×blockDim tile per structural entry
// of an underlying block pattern. Tiles are laid out row-major, one after
// another, in stored-entry order. Block structure is layered on top of the
// plain CRS contract; the scheduling core only ever sees the expanded form.

package crs

import "fmt"

// BlockMatrix is an immutable block compressed-row sparse matrix.
type BlockMatrix struct {
	blockDim             int
	blockRows, blockCols int
	rowPtr               []int     // len blockRows+1
	colInd               []int     // len bnnz, block column indices
	values               []float64 // len bnnz * blockDim²; row-major tiles
}

// NewBlock builds a BlockMatrix from a raw block-CRS triple. rowPtr/colInd
// follow the plain CRS contract over block coordinates; values must hold
// exactly blockDim² scalars per block entry.
func NewBlock(blockDim, blockRows, blockCols int, rowPtr, colInd []int, values []float64) (*BlockMatrix, error) {
	// 1) Block dimension domain.
	if blockDim < 1 {
		return nil, fmt.Errorf("NewBlock: blockDim=%d: %w", blockDim, ErrBadShape)
	}
	// 2) Reuse the scalar constructor for the structural validation; the
	//    values slice is checked separately because of tile scaling.
	pattern := make([]float64, len(colInd))
	if _, err := New(blockRows, blockCols, rowPtr, colInd, pattern); err != nil {
		return nil, err
	}
	// 3) Tile payload must cover every block entry exactly.
	if want := len(colInd) * blockDim * blockDim; len(values) != want {
		return nil, fmt.Errorf("NewBlock: len(values)=%d want %d: %w", len(values), want, ErrLengthMismatch)
	}

	return &BlockMatrix{
		blockDim:  blockDim,
		blockRows: blockRows,
		blockCols: blockCols,
		rowPtr:    rowPtr,
		colInd:    colInd,
		values:    values,
	}, nil
}

// BlockDim returns the tile edge length.
func (b *BlockMatrix) BlockDim() int { return b.blockDim }

// BlockRows returns the number of block rows.
func (b *BlockMatrix) BlockRows() int { return b.blockRows }

// BlockCols returns the number of block columns.
func (b *BlockMatrix) BlockCols() int { return b.blockCols }

// Rows returns the scalar row count (blockRows * blockDim).
func (b *BlockMatrix) Rows() int { return b.blockRows * b.blockDim }

// Cols returns the scalar column count (blockCols * blockDim).
func (b *BlockMatrix) Cols() int { return b.blockCols * b.blockDim }

// NNZB returns the number of structural block entries.
func (b *BlockMatrix) NNZB() int { return b.rowPtr[b.blockRows] }

// Block returns the k-th stored tile as a shared row-major subslice.
func (b *BlockMatrix) Block(k int) []float64 {
	sq := b.blockDim * b.blockDim
	return b.values[k*sq : (k+1)*sq]
}

// Expand flattens the block structure into an equivalent plain CRS Matrix,
// emitting every scalar of every tile (including explicit zeros inside
// tiles, which remain structural in BSR semantics).
func (b *BlockMatrix) Expand() *Matrix {
	d := b.blockDim
	n := b.Rows()
	perBlockRow := make([]int, b.blockRows) // block entries per block row
	for i := 0; i < b.blockRows; i++ {
		perBlockRow[i] = b.rowPtr[i+1] - b.rowPtr[i]
	}

	// Scalar row i = blockRow*d + r holds perBlockRow[blockRow]*d entries.
	ptr := make([]int, n+1)
	for i := 0; i < n; i++ {
		ptr[i+1] = ptr[i] + perBlockRow[i/d]*d
	}
	ind := make([]int, ptr[n])
	val := make([]float64, ptr[n])

	var cur int
	for br := 0; br < b.blockRows; br++ {
		for r := 0; r < d; r++ {
			cur = ptr[br*d+r]
			for k := b.rowPtr[br]; k < b.rowPtr[br+1]; k++ {
				tile := b.Block(k)
				base := b.colInd[k] * d
				for c := 0; c < d; c++ {
					ind[cur] = base + c
					val[cur] = tile[r*d+c]
					cur++
				}
			}
		}
	}

	return &Matrix{rows: n, cols: b.Cols(), rowPtr: ptr, colInd: ind, values: val}
}
