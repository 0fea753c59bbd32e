// SPDX-License-Identifier: MIT
// Package crs: the Matrix type and its construction-time validation.
//
// Contract:
//   - New validates the full CRS triple before the Matrix exists; a Matrix in
//     the wild is always internally consistent (violations are construction
//     errors, never later faults).
//   - The Matrix does NOT copy its input slices. Ownership transfers to the
//     Matrix; callers must not mutate the arrays afterwards.
//   - Row views are O(1) subslices into the shared arrays.
//
// Determinism:
//   - No global state; every operation is a pure function of the receiver.

package crs

import "fmt"

// Matrix is an immutable compressed-row sparse matrix.
// The zero value is not usable; construct via New or a reader.
type Matrix struct {
	rows, cols int
	rowPtr     []int     // len rows+1, rowPtr[0]=0, rowPtr[rows]=nnz
	colInd     []int     // len nnz, each in [0, cols)
	values     []float64 // len nnz
}

// New builds a Matrix from a raw CRS triple, validating every invariant of
// the storage contract (see package doc). The slices are adopted, not copied.
func New(rows, cols int, rowPtr, colInd []int, values []float64) (*Matrix, error) {
	// 1) Shape domain: dimensions must be non-negative.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New: rows=%d cols=%d: %w", rows, cols, ErrBadShape)
	}
	// 2) Row pointer length and anchors.
	if len(rowPtr) != rows+1 {
		return nil, fmt.Errorf("New: len(rowPtr)=%d want %d: %w", len(rowPtr), rows+1, ErrBadRowPtr)
	}
	if rowPtr[0] != 0 {
		return nil, fmt.Errorf("New: rowPtr[0]=%d: %w", rowPtr[0], ErrBadRowPtr)
	}
	// 3) Monotonicity: each row range must be non-negative.
	for i := 0; i < rows; i++ {
		if rowPtr[i+1] < rowPtr[i] {
			return nil, fmt.Errorf("New: rowPtr decreases at row %d (%d→%d): %w",
				i, rowPtr[i], rowPtr[i+1], ErrBadRowPtr)
		}
	}
	// 4) Terminal anchor must equal nnz, and parallel arrays must agree.
	nnz := rowPtr[rows]
	if nnz != len(colInd) {
		return nil, fmt.Errorf("New: rowPtr[rows]=%d len(colInd)=%d: %w", nnz, len(colInd), ErrBadRowPtr)
	}
	if len(values) != len(colInd) {
		return nil, fmt.Errorf("New: len(values)=%d len(colInd)=%d: %w",
			len(values), len(colInd), ErrLengthMismatch)
	}
	// 5) Every column index must reference a valid column.
	for k, c := range colInd {
		if c < 0 || c >= cols {
			return nil, fmt.Errorf("New: colInd[%d]=%d cols=%d: %w", k, c, cols, ErrColOutOfRange)
		}
	}

	return &Matrix{rows: rows, cols: cols, rowPtr: rowPtr, colInd: colInd, values: values}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of structural entries.
func (m *Matrix) NNZ() int { return m.rowPtr[m.rows] }

// RowPtr exposes the row-offset array. Read-only by contract.
func (m *Matrix) RowPtr() []int { return m.rowPtr }

// ColInd exposes the column-index array. Read-only by contract.
func (m *Matrix) ColInd() []int { return m.colInd }

// Values exposes the value array. Read-only by contract.
func (m *Matrix) Values() []float64 { return m.values }

// Row returns the column indices and values of row i as shared subslices.
// i must be in [0, Rows()); use RowChecked when i comes from outside.
func (m *Matrix) Row(i int) (cols []int, vals []float64) {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	return m.colInd[lo:hi], m.values[lo:hi]
}

// RowChecked is Row with bounds checking on the row index.
func (m *Matrix) RowChecked(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= m.rows {
		return nil, nil, fmt.Errorf("RowChecked: i=%d rows=%d: %w", i, m.rows, ErrRowOutOfRange)
	}
	cols, vals = m.Row(i)

	return cols, vals, nil
}

// HasFullDiagonal reports whether every row i of a square matrix holds a
// structural entry at column i (the KEEP_DIAG invariant required by the
// symbolic ILU phase). Returns ErrNonSquare for rectangular matrices.
func (m *Matrix) HasFullDiagonal() (bool, error) {
	if m.rows != m.cols {
		return false, fmt.Errorf("HasFullDiagonal: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}
	for i := 0; i < m.rows; i++ {
		found := false
		for _, c := range m.colInd[m.rowPtr[i]:m.rowPtr[i+1]] {
			if c == i {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}

	return true, nil
}

// SplitTriangular partitions a square matrix's pattern into its lower and
// upper triangular halves, both keeping the diagonal (KEEP_DIAG):
//
//	L: entries with col <= row  (diagonal included)
//	U: entries with col >= row  (diagonal included)
//
// Rows need not be sorted; stored order is preserved within each half.
func (m *Matrix) SplitTriangular() (lower, upper *Matrix, err error) {
	// 1) Only square matrices have a triangular factorization pattern.
	if m.rows != m.cols {
		return nil, nil, fmt.Errorf("SplitTriangular: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}
	n := m.rows

	// 2) Count per-row membership of each half.
	lPtr := make([]int, n+1)
	uPtr := make([]int, n+1)
	var i, c int
	for i = 0; i < n; i++ {
		for _, c = range m.colInd[m.rowPtr[i]:m.rowPtr[i+1]] {
			if c <= i {
				lPtr[i+1]++
			}
			if c >= i {
				uPtr[i+1]++
			}
		}
	}
	// 3) Prefix-sum the counts into offsets.
	for i = 0; i < n; i++ {
		lPtr[i+1] += lPtr[i]
		uPtr[i+1] += uPtr[i]
	}
	// 4) Scatter entries, preserving stored order inside each row.
	lInd := make([]int, lPtr[n])
	lVal := make([]float64, lPtr[n])
	uInd := make([]int, uPtr[n])
	uVal := make([]float64, uPtr[n])
	lCur, uCur := 0, 0
	var k int
	for i = 0; i < n; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			c = m.colInd[k]
			if c <= i {
				lInd[lCur] = c
				lVal[lCur] = m.values[k]
				lCur++
			}
			if c >= i {
				uInd[uCur] = c
				uVal[uCur] = m.values[k]
				uCur++
			}
		}
	}

	// 5) Re-enter through New so the halves carry the same validity guarantee.
	if lower, err = New(n, n, lPtr, lInd, lVal); err != nil {
		return nil, nil, err
	}
	if upper, err = New(n, n, uPtr, uInd, uVal); err != nil {
		return nil, nil, err
	}

	return lower, upper, nil
}

// Transpose returns a new Matrix holding the transpose. The result has
// sorted rows as a side effect of the counting-sort construction.
func (m *Matrix) Transpose() *Matrix {
	nnz := m.NNZ()
	tPtr := make([]int, m.cols+1)
	tInd := make([]int, nnz)
	tVal := make([]float64, nnz)

	// Counting sort over destination rows (= source columns).
	for _, c := range m.colInd {
		tPtr[c+1]++
	}
	for j := 0; j < m.cols; j++ {
		tPtr[j+1] += tPtr[j]
	}
	cursor := make([]int, m.cols)
	copy(cursor, tPtr[:m.cols])
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			c := m.colInd[k]
			tInd[cursor[c]] = i
			tVal[cursor[c]] = m.values[k]
			cursor[c]++
		}
	}

	t := &Matrix{rows: m.cols, cols: m.rows, rowPtr: tPtr, colInd: tInd, values: tVal}

	return t
}
