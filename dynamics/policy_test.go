// SPDX-License-Identifier: MIT

package dynamics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netinfer/dynamics"
	"github.com/katalvlaran/netinfer/matrix"
)

func square(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range dynamics.Names() {
		p, err := dynamics.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name)
		assert.NoError(t, p.Validate())
	}
	assert.Equal(t, []string{"generic", "kuramoto1", "kuramoto2", "michaelis_menten", "roessler", "roessler_node"}, dynamics.Names())

	_, err := dynamics.Lookup("lorenz")
	assert.ErrorIs(t, err, dynamics.ErrUnknownModel)
}

func TestKuramoto_WrapsPhases(t *testing.T) {
	t.Parallel()
	p, err := dynamics.Lookup("kuramoto2")
	require.NoError(t, err)
	require.NotNil(t, p.Transform)

	for _, x := range []float64{-7, -0.1, 0, 3, 2 * math.Pi, 40} {
		w := p.Transform(x)
		assert.GreaterOrEqual(t, w, 0.0)
		assert.Less(t, w, 2*math.Pi)
	}
}

// TestRoessler_TruthRow expands a 2×2 adjacency to the 6 state rows:
// x-components carry the couplings, the unit's own y and z rows are drivers.
func TestRoessler_TruthRow(t *testing.T) {
	t.Parallel()
	truth := square(t, [][]float64{
		{0, 0.7},
		{0.4, 0},
	})

	row, err := dynamics.Roessler.TruthRow(truth, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 0.7, 0, 0}, row)

	row, err = dynamics.Roessler.TruthRow(truth, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.4, 0, 0, 0, 1, 1}, row)

	assert.Equal(t, 3, dynamics.Roessler.TargetRow(1))
	assert.Equal(t, 3, dynamics.Roessler.ReferenceRow(1))
	assert.Equal(t, 3, dynamics.RoesslerNode.TargetRow(1))
	assert.Equal(t, 1, dynamics.RoesslerNode.ReferenceRow(1))
	assert.Equal(t, 2, dynamics.Generic.ReferenceRow(2))
	assert.Equal(t, 2, dynamics.Roessler.Units(6))
	assert.Equal(t, 0.7, mustAt(t, truth, 0, 1), "truth must not be mutated")
}

func TestMichaelisMenten_SelfLoop(t *testing.T) {
	t.Parallel()
	truth := square(t, [][]float64{
		{0, 1, 0},
		{0, 0, 0},
		{1, 1, 0},
	})

	row, err := dynamics.MichaelisMenten.TruthRow(truth, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, row)

	row, err = dynamics.Generic.TruthRow(truth, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, row, "generic adds nothing")
	assert.Zero(t, mustAt(t, truth, 1, 1))
}

func TestTruthRow_Errors(t *testing.T) {
	t.Parallel()
	truth := square(t, [][]float64{{0, 1}, {1, 0}})

	_, err := dynamics.Generic.TruthRow(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = dynamics.Generic.TruthRow(truth, 2)
	assert.ErrorIs(t, err, dynamics.ErrBadUnit)

	_, err = dynamics.Generic.TruthRow(square(t, [][]float64{{0, 1, 0}}), 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = dynamics.Policy{Name: "broken"}.TruthRow(truth, 0)
	assert.ErrorIs(t, err, dynamics.ErrBadComponents)
}

func mustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
