// SPDX-License-Identifier: MIT
package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netinfer/matrix"
	"github.com/katalvlaran/netinfer/series"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

func rowOf(t *testing.T, m *matrix.Dense, i int) []float64 {
	t.Helper()
	r, err := m.Row(i)
	require.NoError(t, err)

	return r
}

func TestEstimate_TwoReplicates(t *testing.T) {
	t.Parallel()

	// Two units, two replicates of three points each.
	traj := mustRows(t, [][]float64{
		{0, 1, 3, 10, 10, 4},
		{1, 1, 1, 2, 4, 8},
	})
	s, err := series.Estimate(traj, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Units())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 3, s.Length)
	assert.Equal(t, 2, s.Replicates)

	// No difference spans the replicate boundary (3 → 10).
	assert.Equal(t, []float64{0.5, 2, 10, 7}, rowOf(t, s.X, 0))
	assert.Equal(t, []float64{1, 2, 0, -6}, rowOf(t, s.DX, 0))
	assert.Equal(t, []float64{1, 1, 3, 6}, rowOf(t, s.X, 1))
	assert.Equal(t, []float64{0, 0, 2, 4}, rowOf(t, s.DX, 1))
}

func TestEstimate_Transform(t *testing.T) {
	t.Parallel()

	traj := mustRows(t, [][]float64{{6, 7, -1, -2}})
	s, err := series.Estimate(traj, 2, 2, series.WithTransform(series.WrapPhase))
	require.NoError(t, err)

	x := rowOf(t, s.X, 0)
	assert.InDelta(t, 6.5-2*math.Pi, x[0], 1e-12)
	assert.InDelta(t, 2*math.Pi-1.5, x[1], 1e-12)
	// Derivatives use raw values, never the transformed midpoints.
	assert.Equal(t, []float64{1, -1}, rowOf(t, s.DX, 0))

	plain, err := series.Estimate(traj, 2, 2, series.WithTransform(nil))
	require.NoError(t, err)
	assert.Equal(t, []float64{6.5, -1.5}, rowOf(t, plain.X, 0))
}

func TestEstimate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	traj := mustRows(t, [][]float64{{1, 2, 4}})
	_, err := series.Estimate(traj, 3, 1, series.WithTransform(func(v float64) float64 { return -v }))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, rowOf(t, traj, 0))
}

func TestEstimate_Errors(t *testing.T) {
	t.Parallel()

	good := mustRows(t, [][]float64{{1, 2, 3, 4}})
	bad := mustRows(t, [][]float64{{1, math.NaN(), 3, 4}})

	tests := []struct {
		name       string
		traj       *matrix.Dense
		length     int
		replicates int
		want       error
	}{
		{"short", good, 1, 4, series.ErrShortSeries},
		{"no replicates", good, 4, 0, series.ErrBadReplicates},
		{"nil", nil, 2, 2, matrix.ErrNilMatrix},
		{"cols mismatch", good, 3, 2, matrix.ErrDimensionMismatch},
		{"nan", bad, 2, 2, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := series.Estimate(tc.traj, tc.length, tc.replicates)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, s)
		})
	}
}

func TestWrapPhase(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0, 1, math.Pi, 2 * math.Pi, 7, -0.5, -2 * math.Pi, -1e-18, -100, 1e6} {
		w := series.WrapPhase(x)
		assert.GreaterOrEqual(t, w, 0.0, "x=%v", x)
		assert.Less(t, w, 2*math.Pi, "x=%v", x)
		assert.InDelta(t, math.Sin(x), math.Sin(w), 1e-9, "x=%v", x)
	}
	assert.Equal(t, 0.0, series.WrapPhase(-1e-18))
	assert.InDelta(t, 2*math.Pi-0.5, series.WrapPhase(-0.5), 1e-12)
}
