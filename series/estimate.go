// SPDX-License-Identifier: MIT

package series

import (
	"fmt"

	"github.com/katalvlaran/netinfer/matrix"
)

const opEstimate = "series.Estimate"

// Estimate converts a concatenated multi-replicate trajectory into midpoint
// states and derivative estimates.
//
// Inputs:
//   - traj: N × (replicates·length) matrix, replicates concatenated in time order.
//   - length: M, points per replicate (≥ 2).
//   - replicates: S (≥ 1).
//
// Errors (all reported before any allocation):
//   - ErrShortSeries, ErrBadReplicates,
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (cols ≠ S·M),
//   - matrix.ErrNaNInf (non-finite trajectory value).
//
// Complexity: O(N·S·M).
func Estimate(traj *matrix.Dense, length, replicates int, opts ...Option) (*Samples, error) {
	// 1) Parameter validation (fail fast; zero side-effects on invalid input).
	if length < 2 {
		return nil, fmt.Errorf("%s: length=%d: %w", opEstimate, length, ErrShortSeries)
	}
	if replicates < 1 {
		return nil, fmt.Errorf("%s: replicates=%d: %w", opEstimate, replicates, ErrBadReplicates)
	}
	if err := matrix.ValidateNotNil(traj); err != nil {
		return nil, fmt.Errorf("%s: %w", opEstimate, err)
	}
	if traj.Cols() != length*replicates {
		return nil, fmt.Errorf("%s: %d columns for %d×%d samples: %w",
			opEstimate, traj.Cols(), replicates, length, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(traj); err != nil {
		return nil, fmt.Errorf("%s: %w", opEstimate, err)
	}

	var o options
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	// 2) Midpoints and forward differences, replicate by replicate.
	n := traj.Rows()
	steps := length - 1
	cols := replicates * steps
	xs := make([]float64, n*cols)
	dxs := make([]float64, n*cols)

	var i, s, t int
	for i = 0; i < n; i++ {
		row, err := traj.RowView(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opEstimate, err)
		}
		out := i * cols
		for s = 0; s < replicates; s++ {
			seg := row[s*length : (s+1)*length] // replicate s of unit i
			for t = 0; t < steps; t++ {
				mid := (seg[t] + seg[t+1]) * 0.5
				if o.transform != nil {
					mid = o.transform(mid)
				}
				xs[out] = mid
				dxs[out] = seg[t+1] - seg[t]
				out++
			}
		}
	}

	// 3) Wrap into Dense containers.
	x, err := matrix.NewDenseFrom(n, cols, xs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEstimate, err)
	}
	dx, err := matrix.NewDenseFrom(n, cols, dxs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEstimate, err)
	}

	return &Samples{X: x, DX: dx, Length: length, Replicates: replicates}, nil
}
