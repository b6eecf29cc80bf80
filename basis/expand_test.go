// SPDX-License-Identifier: MIT
package basis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netinfer/basis"
	"github.com/katalvlaran/netinfer/matrix"
)

const tol = 1e-12

// states is a 3-unit, 2-sample state matrix shared by the value tests.
func states(t *testing.T) *matrix.Dense {
	t.Helper()
	x, err := matrix.NewDenseRows([][]float64{{0, 1}, {2, 3}, {4, 5}})
	require.NoError(t, err)

	return x
}

// slab returns Y[:, :, n] as nested rows.
func slab(t *testing.T, y *basis.Tensor, n int) [][]float64 {
	t.Helper()
	b, ts, _ := y.Dims()
	out := make([][]float64, b)
	for k := range out {
		out[k] = make([]float64, ts)
		for s := range out[k] {
			v, err := y.At(k, s, n)
			require.NoError(t, err)
			out[k][s] = v
		}
	}

	return out
}

func assertSlab(t *testing.T, want, got [][]float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for k := range want {
		assert.InDeltaSlice(t, want[k], got[k], tol, "row %d", k)
	}
}

func TestExpand_ConstantPolynomial(t *testing.T) {
	t.Parallel()

	y, err := basis.Expand(states(t), 1, basis.Polynomial, 0)
	require.NoError(t, err)
	b, ts, n := y.Dims()
	assert.Equal(t, [3]int{1, 2, 3}, [3]int{b, ts, n})
	for u := 0; u < n; u++ {
		assert.Equal(t, [][]float64{{1, 1}}, slab(t, y, u), "0^0 counts as 1")
	}
}

func TestExpand_Values(t *testing.T) {
	t.Parallel()

	// Unit 2 against reference 1: xn = [4, 5], xr = [2, 3].
	tests := []struct {
		kind  basis.Kind
		order int
		want  [][]float64
	}{
		{basis.Polynomial, 3, [][]float64{{1, 1}, {4, 5}, {16, 25}}},
		{basis.PolynomialDiff, 3, [][]float64{{1, 1}, {2, 2}, {4, 4}}},
		{basis.Fourier, 2, [][]float64{
			{0, 0}, {1, 1},
			{math.Sin(4), math.Sin(5)}, {math.Cos(4), math.Cos(5)},
		}},
		{basis.FourierDiff, 2, [][]float64{
			{0, 0}, {1, 1},
			{math.Sin(2), math.Sin(2)}, {math.Cos(2), math.Cos(2)},
		}},
		{basis.PowerSeries, 2, [][]float64{{1, 1}, {4, 5}, {2, 3}, {8, 15}}},
		{basis.RBF, 2, [][]float64{
			{math.Sqrt(2), math.Sqrt(4)},
			{math.Sqrt(4), math.Sqrt(2)},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			t.Parallel()
			y, err := basis.Expand(states(t), tc.order, tc.kind, 1)
			require.NoError(t, err)
			b, _, _ := y.Dims()
			assert.Equal(t, tc.kind.Width(tc.order), b)
			assert.Equal(t, tc.kind, y.Kind())
			assert.Equal(t, tc.order, y.Order())
			assert.Equal(t, 1, y.Reference())
			assertSlab(t, tc.want, slab(t, y, 2))
		})
	}
}

func TestExpand_RelativeKindsZeroOnReference(t *testing.T) {
	t.Parallel()

	y, err := basis.Expand(states(t), 3, basis.PolynomialDiff, 1)
	require.NoError(t, err)
	assertSlab(t, [][]float64{{1, 1}, {0, 0}, {0, 0}}, slab(t, y, 1))
}

func TestWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, basis.Polynomial.Width(4))
	assert.Equal(t, 4, basis.PolynomialDiff.Width(4))
	assert.Equal(t, 8, basis.Fourier.Width(4))
	assert.Equal(t, 8, basis.FourierDiff.Width(4))
	assert.Equal(t, 16, basis.PowerSeries.Width(4))
	assert.Equal(t, 4, basis.RBF.Width(4))
	assert.Equal(t, 0, basis.Polynomial.Width(0))
	assert.Equal(t, 0, basis.Kind(0).Width(3))
}

func TestExpand_Errors(t *testing.T) {
	t.Parallel()

	nan, err := matrix.NewDenseRows([][]float64{{0, math.Inf(1)}})
	require.NoError(t, err)

	tests := []struct {
		name  string
		x     *matrix.Dense
		order int
		kind  basis.Kind
		ref   int
		want  error
	}{
		{"kind", states(t), 2, basis.Kind(0), 0, basis.ErrUnknownKind},
		{"kind above range", states(t), 2, basis.Kind(200), 0, basis.ErrUnknownKind},
		{"order", states(t), 0, basis.Polynomial, 0, basis.ErrBadOrder},
		{"nil", nil, 2, basis.Polynomial, 0, matrix.ErrNilMatrix},
		{"ref negative", states(t), 2, basis.Polynomial, -1, basis.ErrBadReference},
		{"ref too large", states(t), 2, basis.Polynomial, 3, basis.ErrBadReference},
		{"rbf anchors", states(t), 3, basis.RBF, 0, basis.ErrOrderExceedsSamples},
		{"non finite", nan, 1, basis.Fourier, 0, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			y, err := basis.Expand(tc.x, tc.order, tc.kind, tc.ref)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, y)
		})
	}
}

func TestKind_Text(t *testing.T) {
	t.Parallel()

	for _, k := range basis.Kinds() {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var back basis.Kind
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, k, back)
	}
	assert.Len(t, basis.Kinds(), 6)

	k, err := basis.ParseKind("fourier_diff")
	require.NoError(t, err)
	assert.Equal(t, basis.FourierDiff, k)
	assert.Equal(t, "RBF", basis.RBF.String())

	_, err = basis.ParseKind("rbf")
	assert.ErrorIs(t, err, basis.ErrUnknownKind)
	_, err = basis.Kind(0).MarshalText()
	assert.ErrorIs(t, err, basis.ErrUnknownKind)
	var bad basis.Kind
	assert.ErrorIs(t, bad.UnmarshalText([]byte("spline")), basis.ErrUnknownKind)
	assert.False(t, bad.Valid())
	assert.Equal(t, "Kind(0)", bad.String())
}

// TestExpand_Overflow: finite states whose basis values overflow are rejected
// at the call boundary instead of reaching the pseudoinverse.
func TestExpand_Overflow(t *testing.T) {
	t.Parallel()

	x, err := matrix.NewDenseRows([][]float64{{1e100, 2, 3, 4}, {1, 2, 3, 5}, {2, 1, 0, 1}})
	require.NoError(t, err)
	y, err := basis.Expand(x, 5, basis.Polynomial, 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Nil(t, y)

	// Order 3 stays below the overflow point.
	_, err = basis.Expand(x, 3, basis.Polynomial, 0)
	assert.NoError(t, err)

	wide, err := matrix.NewDenseRows([][]float64{{1e200, -1e200}, {0, 0}})
	require.NoError(t, err)
	_, err = basis.Expand(wide, 1, basis.RBF, 1)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
