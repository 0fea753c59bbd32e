// SPDX-License-Identifier: MIT
// Package crs: raw binary (.bin) layout.
//
// Layout (all fields little-endian, fixed width):
//
//	int64   rows
//	int64   nnz
//	int64   rowPtr[rows+1]
//	int64   colInd[nnz]
//	float64 values[nnz]
//
// The layout carries no column count; it is defined for square matrices
// only (cols == rows), matching the graph-oriented origin of the format.

package crs

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadBinary decodes the fixed-width binary layout into a square Matrix.
func ReadBinary(r io.Reader) (*Matrix, error) {
	var head [2]int64
	if err := binary.Read(r, binary.LittleEndian, head[:]); err != nil {
		return nil, fmt.Errorf("ReadBinary: header: %w", err)
	}
	rows, nnz := head[0], head[1]
	if rows < 0 || nnz < 0 {
		return nil, fmt.Errorf("ReadBinary: rows=%d nnz=%d: %w", rows, nnz, ErrBadShape)
	}

	ptr64 := make([]int64, rows+1)
	if err := binary.Read(r, binary.LittleEndian, ptr64); err != nil {
		return nil, fmt.Errorf("ReadBinary: rowPtr: %w", err)
	}
	ind64 := make([]int64, nnz)
	if err := binary.Read(r, binary.LittleEndian, ind64); err != nil {
		return nil, fmt.Errorf("ReadBinary: colInd: %w", err)
	}
	values := make([]float64, nnz)
	if err := binary.Read(r, binary.LittleEndian, values); err != nil {
		return nil, fmt.Errorf("ReadBinary: values: %w", err)
	}

	ptr := make([]int, rows+1)
	for i, v := range ptr64 {
		ptr[i] = int(v)
	}
	ind := make([]int, nnz)
	for i, v := range ind64 {
		ind[i] = int(v)
	}

	return New(int(rows), int(rows), ptr, ind, values)
}

// WriteBinary encodes a square Matrix into the fixed-width binary layout.
// Rectangular matrices are rejected with ErrNonSquare; use MatrixMarket
// for those.
func WriteBinary(w io.Writer, m *Matrix) error {
	if m == nil {
		return fmt.Errorf("WriteBinary: %w", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return fmt.Errorf("WriteBinary: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	if err := binary.Write(w, binary.LittleEndian, [2]int64{int64(m.rows), int64(m.NNZ())}); err != nil {
		return fmt.Errorf("WriteBinary: header: %w", err)
	}
	ptr64 := make([]int64, len(m.rowPtr))
	for i, v := range m.rowPtr {
		ptr64[i] = int64(v)
	}
	if err := binary.Write(w, binary.LittleEndian, ptr64); err != nil {
		return fmt.Errorf("WriteBinary: rowPtr: %w", err)
	}
	ind64 := make([]int64, len(m.colInd))
	for i, v := range m.colInd {
		ind64[i] = int64(v)
	}
	if err := binary.Write(w, binary.LittleEndian, ind64); err != nil {
		return fmt.Errorf("WriteBinary: colInd: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m.values); err != nil {
		return fmt.Errorf("WriteBinary: values: %w", err)
	}

	return nil
}
