package crs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsparse/crs"
)

// mustNew builds a Matrix or fails the test.
func mustNew(t *testing.T, rows, cols int, ptr, ind []int, val []float64) *crs.Matrix {
	t.Helper()
	m, err := crs.New(rows, cols, ptr, ind, val)
	require.NoError(t, err)

	return m
}

// TestNew_Validation verifies that every malformed triple is rejected at
// construction time with the documented sentinel.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
		ptr  []int
		ind  []int
		val  []float64
		err  error
	}{
		{"NegativeRows", -1, 2, []int{0}, nil, nil, crs.ErrBadShape},
		{"NegativeCols", 2, -1, []int{0, 0, 0}, nil, nil, crs.ErrBadShape},
		{"ShortRowPtr", 2, 2, []int{0, 1}, []int{0}, []float64{1}, crs.ErrBadRowPtr},
		{"NonZeroAnchor", 1, 1, []int{1, 1}, []int{0}, []float64{1}, crs.ErrBadRowPtr},
		{"Decreasing", 2, 2, []int{0, 2, 1}, []int{0, 1}, []float64{1, 2}, crs.ErrBadRowPtr},
		{"NNZMismatch", 1, 2, []int{0, 3}, []int{0, 1}, []float64{1, 2}, crs.ErrBadRowPtr},
		{"ValueLenMismatch", 1, 2, []int{0, 2}, []int{0, 1}, []float64{1}, crs.ErrLengthMismatch},
		{"ColNegative", 1, 2, []int{0, 1}, []int{-1}, []float64{1}, crs.ErrColOutOfRange},
		{"ColTooLarge", 1, 2, []int{0, 1}, []int{2}, []float64{1}, crs.ErrColOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := crs.New(tc.rows, tc.cols, tc.ptr, tc.ind, tc.val)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_EmptyAndValid covers the degenerate 0×0 matrix and a small
// well-formed one.
func TestNew_EmptyAndValid(t *testing.T) {
	empty := mustNew(t, 0, 0, []int{0}, nil, nil)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 0, empty.NNZ())

	m := mustNew(t, 2, 3,
		[]int{0, 2, 3},
		[]int{0, 2, 1},
		[]float64{1, 2, 3},
	)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 3, m.NNZ())

	cols, vals := m.Row(0)
	assert.Equal(t, []int{0, 2}, cols)
	assert.Equal(t, []float64{1, 2}, vals)

	cols, vals = m.Row(1)
	assert.Equal(t, []int{1}, cols)
	assert.Equal(t, []float64{3}, vals)
}

// TestRowChecked verifies the guarded row accessor.
func TestRowChecked(t *testing.T) {
	m := mustNew(t, 1, 1, []int{0, 1}, []int{0}, []float64{4})

	cols, vals, err := m.RowChecked(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, cols)
	assert.Equal(t, []float64{4}, vals)

	_, _, err = m.RowChecked(1)
	assert.ErrorIs(t, err, crs.ErrRowOutOfRange)
	_, _, err = m.RowChecked(-1)
	assert.ErrorIs(t, err, crs.ErrRowOutOfRange)
}

// TestHasFullDiagonal covers present/missing diagonals and the square guard.
func TestHasFullDiagonal(t *testing.T) {
	full := mustNew(t, 2, 2, []int{0, 2, 3}, []int{1, 0, 1}, []float64{5, 1, 2})
	ok, err := full.HasFullDiagonal()
	require.NoError(t, err)
	assert.True(t, ok)

	missing := mustNew(t, 2, 2, []int{0, 1, 2}, []int{1, 1}, []float64{1, 2})
	ok, err = missing.HasFullDiagonal()
	require.NoError(t, err)
	assert.False(t, ok)

	rect := mustNew(t, 1, 2, []int{0, 1}, []int{0}, []float64{1})
	_, err = rect.HasFullDiagonal()
	assert.ErrorIs(t, err, crs.ErrNonSquare)
}

// TestSplitTriangular checks the KEEP_DIAG split on a 3×3 example with an
// unsorted row, asserting that the diagonal lands in both halves.
func TestSplitTriangular(t *testing.T) {
	// [ 1 2 . ]
	// [ 3 4 5 ]   (row 1 stored unsorted: 5, 3, 4)
	// [ . 6 7 ]
	m := mustNew(t, 3, 3,
		[]int{0, 2, 5, 7},
		[]int{0, 1, 2, 0, 1, 1, 2},
		[]float64{1, 2, 5, 3, 4, 6, 7},
	)

	l, u, err := m.SplitTriangular()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 5}, l.RowPtr())
	assert.Equal(t, []int{0, 0, 1, 1, 2}, l.ColInd())
	assert.Equal(t, []float64{1, 3, 4, 6, 7}, l.Values())

	assert.Equal(t, []int{0, 2, 4, 5}, u.RowPtr())
	assert.Equal(t, []int{0, 1, 2, 1, 2}, u.ColInd())
	assert.Equal(t, []float64{1, 2, 5, 4, 7}, u.Values())

	for _, half := range []*crs.Matrix{l, u} {
		ok, diagErr := half.HasFullDiagonal()
		require.NoError(t, diagErr)
		assert.True(t, ok, "split halves must keep the diagonal")
	}

	rect := mustNew(t, 1, 2, []int{0, 1}, []int{1}, []float64{1})
	_, _, err = rect.SplitTriangular()
	assert.ErrorIs(t, err, crs.ErrNonSquare)
}

// TestTranspose round-trips a rectangular matrix through two transposes.
func TestTranspose(t *testing.T) {
	m := mustNew(t, 2, 3,
		[]int{0, 2, 3},
		[]int{2, 0, 1},
		[]float64{2, 1, 3},
	)

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, []int{0, 1, 2, 3}, tr.RowPtr())
	assert.Equal(t, []int{0, 1, 0}, tr.ColInd())
	assert.Equal(t, []float64{1, 3, 2}, tr.Values())

	back := tr.Transpose()
	assert.Equal(t, m.Rows(), back.Rows())
	assert.Equal(t, m.Cols(), back.Cols())
	// Transpose sorts rows, so compare against the sorted original.
	assert.Equal(t, []int{0, 2, 3}, back.RowPtr())
	assert.Equal(t, []int{0, 2, 1}, back.ColInd())
	assert.Equal(t, []float64{1, 2, 3}, back.Values())
}

// TestNewBlock_Validation exercises tile-specific construction errors.
func TestNewBlock_Validation(t *testing.T) {
	_, err := crs.NewBlock(0, 1, 1, []int{0, 1}, []int{0}, []float64{1})
	assert.ErrorIs(t, err, crs.ErrBadShape)

	_, err = crs.NewBlock(2, 1, 1, []int{0, 1}, []int{0}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, crs.ErrLengthMismatch)

	_, err = crs.NewBlock(2, 1, 1, []int{0, 2}, []int{0}, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, crs.ErrBadRowPtr)
}

// TestBlockExpand expands a 2-block-row BSR matrix and checks the scalar
// pattern tile by tile.
func TestBlockExpand(t *testing.T) {
	// Block pattern (blockDim=2):
	//   [ A . ]
	//   [ B C ]
	// with tiles A=[1 2;3 4], B=[5 6;7 8], C=[9 10;11 12].
	b, err := crs.NewBlock(2, 2, 2,
		[]int{0, 1, 3},
		[]int{0, 0, 1},
		[]float64{
			1, 2, 3, 4, // A
			5, 6, 7, 8, // B
			9, 10, 11, 12, // C
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, 4, b.Cols())
	assert.Equal(t, 3, b.NNZB())
	assert.Equal(t, []float64{5, 6, 7, 8}, b.Block(1))

	m := b.Expand()
	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, 12, m.NNZ())
	assert.Equal(t, []int{0, 2, 4, 8, 12}, m.RowPtr())

	cols, vals := m.Row(0)
	assert.Equal(t, []int{0, 1}, cols)
	assert.Equal(t, []float64{1, 2}, vals)

	cols, vals = m.Row(2)
	assert.Equal(t, []int{0, 1, 2, 3}, cols)
	assert.Equal(t, []float64{5, 6, 9, 10}, vals)

	cols, vals = m.Row(3)
	assert.Equal(t, []int{0, 1, 2, 3}, cols)
	assert.Equal(t, []float64{7, 8, 11, 12}, vals)
}
