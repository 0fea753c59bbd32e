// SPDX-License-Identifier: MIT
// Package crs: whitespace-delimited text (.crs) layout.
//
// Logical field order matches the binary layout:
//
//	rows nnz
//	rowPtr[0] .. rowPtr[rows]
//	colInd[0] .. colInd[nnz-1]
//	values[0] .. values[nnz-1]
//
// The reader is token-oriented: any whitespace (spaces or newlines) between
// fields is accepted, so the writer's row-per-line grouping of colInd is a
// presentation choice, not part of the contract. Square matrices only, like
// the binary layout.

package crs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadText decodes the whitespace-delimited layout into a square Matrix.
func ReadText(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<16), 1<<22)
	sc.Split(bufio.ScanWords)

	nextInt := func(what string) (int, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("ReadText: missing %s: %w", what, ErrBadEntry)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("ReadText: %s %q: %w", what, sc.Text(), ErrBadEntry)
		}
		return v, nil
	}

	rows, err := nextInt("row count")
	if err != nil {
		return nil, err
	}
	nnz, err := nextInt("nnz count")
	if err != nil {
		return nil, err
	}
	if rows < 0 || nnz < 0 {
		return nil, fmt.Errorf("ReadText: rows=%d nnz=%d: %w", rows, nnz, ErrBadShape)
	}

	ptr := make([]int, rows+1)
	for i := range ptr {
		if ptr[i], err = nextInt("rowPtr entry"); err != nil {
			return nil, err
		}
	}
	ind := make([]int, nnz)
	for i := range ind {
		if ind[i], err = nextInt("colInd entry"); err != nil {
			return nil, err
		}
	}
	values := make([]float64, nnz)
	for i := range values {
		if !sc.Scan() {
			return nil, fmt.Errorf("ReadText: missing value %d: %w", i, ErrBadEntry)
		}
		if values[i], err = strconv.ParseFloat(sc.Text(), 64); err != nil {
			return nil, fmt.Errorf("ReadText: value %q: %w", sc.Text(), ErrBadEntry)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}

	return New(rows, rows, ptr, ind, values)
}

// WriteText encodes a square Matrix into the whitespace-delimited layout:
// header line, rowPtr line, one colInd line per row, values line.
func WriteText(w io.Writer, m *Matrix) error {
	if m == nil {
		return fmt.Errorf("WriteText: %w", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return fmt.Errorf("WriteText: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", m.rows, m.NNZ()); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}
	for i, v := range m.rowPtr {
		sep := " "
		if i == len(m.rowPtr)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(bw, "%d%s", v, sep); err != nil {
			return fmt.Errorf("WriteText: %w", err)
		}
	}
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if _, err := fmt.Fprintf(bw, "%d ", m.colInd[k]); err != nil {
				return fmt.Errorf("WriteText: %w", err)
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return fmt.Errorf("WriteText: %w", err)
		}
	}
	for _, v := range m.values {
		if _, err := fmt.Fprintf(bw, "%.17g ", v); err != nil {
			return fmt.Errorf("WriteText: %w", err)
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return bw.Flush()
}
