// SPDX-License-Identifier: MIT

package reconstruct

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netinfer/basis"
	"github.com/katalvlaran/netinfer/matrix"
)

const opReconstruct = "reconstruct.Reconstruct"

// Reconstruct ranks the incoming connections of unit from the derivative row
// target (length T) and the basis tensor y ([B, T, N]).
//
// Validation happens before any work: y non-nil, unit in [0, N), target of
// length T and finite. Everything after that is numerically total: singular
// trial matrices are absorbed by the pseudoinverse and never fail.
//
// Errors:
//   - ErrNilTensor, ErrBadTarget, matrix.ErrNilMatrix (nil target),
//     matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
//   - ErrAborted (wrapping ctx.Err()) with a non-nil partial Result.
func Reconstruct(ctx context.Context, target []float64, y *basis.Tensor, unit int, opts ...Option) (*Result, error) {
	// 1) Boundary validation (fail fast, nothing allocated yet).
	if y == nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, ErrNilTensor)
	}
	b, t, n := y.Dims()
	if unit < 0 || unit >= n {
		return nil, fmt.Errorf("%s: unit=%d with %d units: %w", opReconstruct, unit, n, ErrBadTarget)
	}
	if err := matrix.ValidateVecLen(target, t); err != nil {
		return nil, fmt.Errorf("%s: target: %w", opReconstruct, err)
	}
	if err := matrix.ValidateVecFinite(target); err != nil {
		return nil, fmt.Errorf("%s: target: %w", opReconstruct, err)
	}

	o := gatherOptions(opts...)
	norm := o.normalization
	if norm == 0 {
		norm = t
	}
	skip := -1
	if o.excludeTarget {
		skip = unit
	}

	// 2) Per-call state: nothing here is shared with other calls.
	s := &selector{
		target: target,
		y:      y,
		block:  b * t,
		cols:   t,
		norm:   float64(norm),
		rcond:  matrix.WithRcond(o.rcond),
		pool:   newPool(n, skip),
		spread: make([]float64, n),
		cost:   make([]float64, n),
	}
	res := &Result{Target: unit, Scores: make([]float64, n), Stop: StopExhausted}
	log := o.logger.With(slog.Int("unit", unit), slog.String("basis", y.Kind().String()), slog.Int("order", y.Order()))

	// 3) Strictly sequential rounds; parallel candidates inside each round.
	for s.pool.Len() > 0 {
		if err := ctx.Err(); err != nil {
			res.Stop = StopAborted
			o.recorder.ObserveStop(unit, res.Stop, len(res.Selected))
			log.Info("reconstruction aborted", slog.Int("rounds", res.Rounds), slog.Int("selected", len(res.Selected)))

			return res, fmt.Errorf("%s: %w", opReconstruct, errors.Join(ErrAborted, err))
		}

		start := time.Now()
		cands := s.pool.Sorted()
		if err := s.evaluate(cands, o.workers); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", opReconstruct, res.Rounds, err)
		}
		res.Rounds++
		o.recorder.ObserveRound(unit, len(cands), time.Since(start))

		spreads := make([]float64, len(cands))
		for i, c := range cands {
			spreads[i] = s.spread[c]
		}

		// Stopping rule: remaining candidates are statistically indistinguishable.
		if dev := stat.PopStdDev(spreads, nil); dev < o.threshold {
			res.Stop = StopIndistinguishable
			log.Debug("stopping rule fired", slog.Int("round", res.Rounds-1), slog.Float64("spread_std", dev))
			break
		}

		// argmin over spread; cands is ascending so strict < keeps the lowest index on ties.
		best := cands[0]
		for _, c := range cands[1:] {
			if s.spread[c] < s.spread[best] {
				best = c
			}
		}

		s.pool.Remove(best)
		s.z = append(s.z, mustSlab(y, best)...)
		res.Selected = append(res.Selected, best)
		res.Scores[best] = s.spread[best]
		res.Costs = append(res.Costs, s.cost[best])
		log.Debug("selected unit",
			slog.Int("round", res.Rounds-1),
			slog.Int("source", best),
			slog.Float64("spread", s.spread[best]),
			slog.Float64("cost", s.cost[best]),
		)

		if o.onRound != nil {
			o.onRound(Round{
				Index:      res.Rounds - 1,
				Chosen:     best,
				Spread:     s.spread[best],
				Cost:       s.cost[best],
				Evaluated:  cands,
				Spreads:    spreads,
				Selected:   slices.Clone(res.Selected),
				Candidates: s.pool.Sorted(),
			})
		}
	}

	o.recorder.ObserveStop(unit, res.Stop, len(res.Selected))
	log.Info("reconstruction finished",
		slog.String("stop", res.Stop.String()),
		slog.Int("rounds", res.Rounds),
		slog.Any("selected", res.Selected),
	)

	return res, nil
}

// selector carries the mutable state of one call.
type selector struct {
	target []float64
	y      *basis.Tensor
	block  int     // B·T values per unit slab
	cols   int     // T
	norm   float64 // M in cost = ‖e‖₂/M
	rcond  matrix.Option

	pool   *pool
	z      []float64 // stacked slabs of the selected units, row-major
	spread []float64 // indexed by unit; valid for the current round's candidates
	cost   []float64 // indexed by unit
}

// evaluate scores every candidate of the round. Each task writes only to
// spread[c] and cost[c], and Z is read-only during the round.
func (s *selector) evaluate(cands []int, workers int) error {
	var g errgroup.Group
	g.SetLimit(workers)
	for _, c := range cands {
		g.Go(func() error {
			buf := make([]float64, len(s.z), len(s.z)+s.block)
			copy(buf, s.z)
			buf, err := s.y.AppendBlock(buf, c)
			if err != nil {
				return err
			}
			r, err := matrix.NewDenseFrom(len(buf)/s.cols, s.cols, buf)
			if err != nil {
				return err
			}
			e, err := matrix.ProjectResidual(s.target, r, s.rcond)
			if err != nil {
				return err
			}
			s.spread[c] = stat.PopStdDev(e, nil)
			s.cost[c] = floats.Norm(e, 2) / s.norm

			return nil
		})
	}

	return g.Wait()
}

// mustSlab returns the slab of a unit already validated as in range.
func mustSlab(y *basis.Tensor, u int) []float64 {
	slab, err := y.AppendBlock(nil, u)
	if err != nil {
		panic(err) // u comes from the pool, which only holds indices in [0, N)
	}

	return slab
}
