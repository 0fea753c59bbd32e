package spiluk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsparse/crs"
	"github.com/katalvlaran/lvlsparse/spiluk"
)

// mustCRS builds a validated unit-valued pattern matrix or fails the test.
func mustCRS(t *testing.T, n int, rowPtr, colInd []int) *crs.Matrix {
	t.Helper()
	vals := make([]float64, len(colInd))
	for i := range vals {
		vals[i] = 1
	}
	m, err := crs.New(n, n, rowPtr, colInd, vals)
	require.NoError(t, err)
	return m
}

// scenario5 is the 5×5 lower-triangular pattern where rows 2 and 4 depend
// on all earlier rows and rows 0, 1, 3 are diagonal-only.
func scenario5(t *testing.T) *crs.Matrix {
	t.Helper()
	return mustCRS(t, 5,
		[]int{0, 1, 2, 5, 6, 11},
		[]int{0, 1, 0, 1, 2, 3, 0, 1, 2, 3, 4})
}

// TestParseAlgorithm covers the name table and the failure sentinel.
func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		name string
		want spiluk.Algorithm
		err  error
	}{
		{"SPILUK_DEFAULT", spiluk.SeqLevelRP, nil},
		{"SPILUK_RANGEPOLICY", spiluk.SeqLevelRP, nil},
		{"SPILUK_TEAMPOLICY1", spiluk.SeqLevelTP1, nil},
		{"spiluk_teampolicy1", spiluk.SeqLevelTP1, nil},
		{"  spiluk_default ", spiluk.SeqLevelRP, nil},
		{"SPILUK_TEAMPOLICY2", 0, spiluk.ErrUnknownAlgorithm},
		{"", 0, spiluk.ErrUnknownAlgorithm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := spiluk.ParseAlgorithm(tc.name)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestNewHandle_Validation covers the configuration error domain.
func TestNewHandle_Validation(t *testing.T) {
	_, err := spiluk.NewHandle(spiluk.Algorithm(99), 5, 5, 5)
	assert.ErrorIs(t, err, spiluk.ErrUnknownAlgorithm)

	_, err = spiluk.NewHandle(spiluk.SeqLevelRP, -1, 5, 5)
	assert.ErrorIs(t, err, spiluk.ErrBadDimension)

	_, err = spiluk.NewHandle(spiluk.SeqLevelRP, 5, -1, 5)
	assert.ErrorIs(t, err, spiluk.ErrBadDimension)

	_, err = spiluk.NewHandle(spiluk.SeqLevelRP, 5, 5, -1)
	assert.ErrorIs(t, err, spiluk.ErrBadDimension)
}

// TestOptionPanics verifies that option constructors fail fast.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { spiluk.WithFillLevel(-1) })
	assert.Panics(t, func() { spiluk.WithTeamSize(0) })
	assert.Panics(t, func() { spiluk.WithVectorSize(0) })
	assert.Panics(t, func() { spiluk.WithRowsPerChunk(0) })
}

// TestHandle_Hints checks the always-readable configuration surface.
func TestHandle_Hints(t *testing.T) {
	h, err := spiluk.NewHandle(spiluk.SeqLevelTP1, 8, 8, 8,
		spiluk.WithFillLevel(2), spiluk.WithTeamSize(4), spiluk.WithVectorSize(8))
	require.NoError(t, err)

	assert.Equal(t, spiluk.SeqLevelTP1, h.Algorithm())
	assert.Equal(t, 2, h.FillLevel())
	assert.Equal(t, 4, h.TeamSize())
	assert.Equal(t, 8, h.VectorSize())
	assert.Equal(t, 8, h.NumRows())
	assert.False(t, h.IsSymbolicComplete())
}

// TestGuardedAccess asserts that every schedule accessor rejects reads on
// a handle that never completed a symbolic pass.
func TestGuardedAccess(t *testing.T) {
	h, err := spiluk.NewHandle(spiluk.SeqLevelRP, 5, 10, 10)
	require.NoError(t, err)

	_, err = h.NumLevels()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.LevelPtr()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.LevelIdx()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.LevelList()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.LevelNChunks()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.LevelNRowsPerChunk()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.LevelMaxRows()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.LevelMaxRowsPerChunk()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.NNZL()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.NNZU()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.LPattern()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.UPattern()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
	_, err = h.Schedule()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)
}

// TestPhaseMachine checks that a second symbolic pass requires Reset and
// that Reset revokes completion.
func TestPhaseMachine(t *testing.T) {
	a := scenario5(t)
	h, err := spiluk.NewHandle(spiluk.SeqLevelRP, 5, 11, 11)
	require.NoError(t, err)

	require.NoError(t, h.Symbolic(a))
	assert.True(t, h.IsSymbolicComplete())

	// No implicit re-run: the handle must go through Reset.
	assert.ErrorIs(t, h.Symbolic(a), spiluk.ErrPhase)

	require.NoError(t, h.Reset(5, 11, 11))
	assert.False(t, h.IsSymbolicComplete())
	_, err = h.LevelPtr()
	assert.ErrorIs(t, err, spiluk.ErrSymbolicIncomplete)

	require.NoError(t, h.Symbolic(a))
	assert.True(t, h.IsSymbolicComplete())
}

// TestReset_Idempotence verifies that reset + rerun on the same pattern
// reproduces the schedule exactly.
func TestReset_Idempotence(t *testing.T) {
	a := scenario5(t)
	h, err := spiluk.NewHandle(spiluk.SeqLevelRP, 5, 11, 11)
	require.NoError(t, err)
	require.NoError(t, h.Symbolic(a))

	ptr1, err := h.LevelPtr()
	require.NoError(t, err)
	idx1, err := h.LevelIdx()
	require.NoError(t, err)
	list1, err := h.LevelList()
	require.NoError(t, err)
	ptr1 = append([]int(nil), ptr1...)
	idx1 = append([]int(nil), idx1...)
	list1 = append([]int(nil), list1...)

	require.NoError(t, h.Reset(5, 11, 11))
	require.NoError(t, h.Symbolic(a))

	ptr2, err := h.LevelPtr()
	require.NoError(t, err)
	idx2, err := h.LevelIdx()
	require.NoError(t, err)
	list2, err := h.LevelList()
	require.NoError(t, err)

	assert.Equal(t, ptr1, ptr2)
	assert.Equal(t, idx1, idx2)
	assert.Equal(t, list1, list2)
}

// TestReset_Validation covers the dimension domain of Reset.
func TestReset_Validation(t *testing.T) {
	h, err := spiluk.NewHandle(spiluk.SeqLevelRP, 5, 5, 5)
	require.NoError(t, err)

	assert.ErrorIs(t, h.Reset(-1, 5, 5), spiluk.ErrBadDimension)
	assert.ErrorIs(t, h.Reset(5, -1, 5), spiluk.ErrBadDimension)
	assert.ErrorIs(t, h.Reset(5, 5, -1), spiluk.ErrBadDimension)
}

// TestReset_Resize checks that a handle can move to a larger and then a
// smaller pattern between passes.
func TestReset_Resize(t *testing.T) {
	h, err := spiluk.NewHandle(spiluk.SeqLevelRP, 2, 2, 2)
	require.NoError(t, err)

	require.NoError(t, h.Reset(5, 11, 11))
	require.NoError(t, h.Symbolic(scenario5(t)))
	n, err := h.NumLevels()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, h.Reset(2, 2, 2))
	small := mustCRS(t, 2, []int{0, 1, 2}, []int{0, 1})
	require.NoError(t, h.Symbolic(small))
	n, err = h.NumLevels()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestSchedule_Snapshot checks that Schedule survives a later Reset.
func TestSchedule_Snapshot(t *testing.T) {
	h, err := spiluk.NewHandle(spiluk.SeqLevelRP, 5, 11, 11)
	require.NoError(t, err)
	require.NoError(t, h.Symbolic(scenario5(t)))

	s, err := h.Schedule()
	require.NoError(t, err)

	// Invalidate the handle; the snapshot must not notice.
	require.NoError(t, h.Reset(5, 11, 11))

	require.Equal(t, 3, s.NumLevels())
	assert.Equal(t, []int{0, 1, 3}, s.Rows(0))
	assert.Equal(t, []int{2}, s.Rows(1))
	assert.Equal(t, []int{4}, s.Rows(2))
}
