// SPDX-License-Identifier: MIT

package reconstruct_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netinfer/basis"
	"github.com/katalvlaran/netinfer/matrix"
)

// randomStates returns an n×t matrix of uniform values in [-1, 1) from a
// fixed seed, so every test run sees the same data.
func randomStates(tb testing.TB, seed int64, n, t int) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, t)
		for s := range rows[i] {
			rows[i][s] = 2*rng.Float64() - 1
		}
	}
	x, err := matrix.NewDenseRows(rows)
	require.NoError(tb, err)

	return x
}

// plantedTarget builds dx = 2·x1 − x3², exactly representable by the
// polynomial basis of order 3 on units 1 and 3.
func plantedTarget(tb testing.TB, x *matrix.Dense) []float64 {
	tb.Helper()
	x1, err := x.RowView(1)
	require.NoError(tb, err)
	x3, err := x.RowView(3)
	require.NoError(tb, err)

	out := make([]float64, len(x1))
	for s := range out {
		out[s] = 2*x1[s] - x3[s]*x3[s]
	}

	return out
}

func expand(tb testing.TB, x *matrix.Dense, order int, kind basis.Kind) *basis.Tensor {
	tb.Helper()
	y, err := basis.Expand(x, order, kind, 0)
	require.NoError(tb, err)

	return y
}
