// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netinfer/matrix"
)

// hide wraps a Matrix so kernels cannot type-assert to *Dense and must use
// the interface path.
type hide struct{ matrix.Matrix }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

func dump(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

func TestNewDense(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, dump(t, m))

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims=%v", dims)
	}
}

func TestNewDenseFrom_Copies(t *testing.T) {
	t.Parallel()

	data := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, data)
	require.NoError(t, err)
	data[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom(0, 2, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseRows(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, dump(t, m))

	_, err := matrix.NewDenseRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AccessorsOutOfRange(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RowView(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_RowAndClone(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = -1
	view, err := m.RowView(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, view, "Row must return a copy")

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "Clone must be independent")

	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
