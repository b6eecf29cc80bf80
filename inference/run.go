// SPDX-License-Identifier: MIT

package inference

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netinfer/basis"
	"github.com/katalvlaran/netinfer/dynamics"
	"github.com/katalvlaran/netinfer/evaluate"
	"github.com/katalvlaran/netinfer/matrix"
	"github.com/katalvlaran/netinfer/reconstruct"
	"github.com/katalvlaran/netinfer/series"
)

const opRun = "inference.Run"

// Input is everything one reconstruction needs.
type Input struct {
	// Trajectory is N × (Replicates·Length), replicates concatenated in time.
	Trajectory *matrix.Dense
	Length     int // M, points per replicate
	Replicates int // S

	// Unit is the target, indexed over units (not state rows).
	Unit int

	Basis basis.Kind
	Order int

	// Truth is the optional Ns×Ns adjacency; nil skips evaluation.
	Truth *matrix.Dense

	// Policy defaults to dynamics.Generic when its Name is empty.
	Policy dynamics.Policy
}

// Report is the outcome of Run.
type Report struct {
	Unit       int
	Policy     string
	Result     *reconstruct.Result
	Evaluation *evaluate.Evaluation // nil when Input.Truth is nil
}

// Run validates in, reconstructs the incoming links of in.Unit and, when a
// truth matrix is given, scores the ranking.
//
// The cost normalization is set to in.Length; opts may override it and
// configure the selector otherwise.
//
// Validation order: policy, basis kind, order, trajectory shape, unit range,
// truth shape and values. No work starts before all of them pass.
//
// On cancellation the partial Report is returned together with the error
// (reconstruct.ErrAborted); Evaluation is nil in that case.
func Run(ctx context.Context, in Input, opts ...reconstruct.Option) (*Report, error) {
	p := in.Policy
	if p.Name == "" {
		p = dynamics.Generic
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	if !in.Basis.Valid() {
		return nil, fmt.Errorf("%s: %s: %w", opRun, in.Basis, basis.ErrUnknownKind)
	}
	if in.Order < 1 {
		return nil, fmt.Errorf("%s: order=%d: %w", opRun, in.Order, basis.ErrBadOrder)
	}
	if err := validateTrajectory(in, p); err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	units := in.Trajectory.Rows() / p.Components
	if in.Unit < 0 || in.Unit >= units {
		return nil, fmt.Errorf("%s: unit=%d with %d units: %w", opRun, in.Unit, units, dynamics.ErrBadUnit)
	}
	var truth *matrix.Dense
	if in.Truth != nil {
		if err := matrix.ValidateShape(in.Truth, units, units); err != nil {
			return nil, fmt.Errorf("%s: truth: %w", opRun, err)
		}
		var err error
		if truth, err = matrix.Binarize(in.Truth); err != nil {
			return nil, fmt.Errorf("%s: truth: %w", opRun, err)
		}
	}

	// Data flow.
	samples, err := series.Estimate(in.Trajectory, in.Length, in.Replicates, series.WithTransform(p.Transform))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	row := p.TargetRow(in.Unit)
	y, err := basis.Expand(samples.X, in.Order, in.Basis, p.ReferenceRow(in.Unit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	target, err := samples.DX.Row(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}

	all := make([]reconstruct.Option, 0, len(opts)+1)
	all = append(all, reconstruct.WithNormalization(in.Length))
	all = append(all, opts...)
	res, err := reconstruct.Reconstruct(ctx, target, y, row, all...)
	rep := &Report{Unit: in.Unit, Policy: p.Name, Result: res}
	if err != nil {
		if errors.Is(err, reconstruct.ErrAborted) {
			return rep, fmt.Errorf("%s: %w", opRun, err)
		}

		return nil, fmt.Errorf("%s: %w", opRun, err)
	}

	if truth != nil {
		truthRow, err := p.TruthRow(truth, in.Unit)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opRun, err)
		}
		if rep.Evaluation, err = evaluate.Evaluate(res, truthRow); err != nil {
			return nil, fmt.Errorf("%s: %w", opRun, err)
		}
	}

	return rep, nil
}

func validateTrajectory(in Input, p dynamics.Policy) error {
	if err := matrix.ValidateNotNil(in.Trajectory); err != nil {
		return err
	}
	if in.Length < 2 {
		return fmt.Errorf("length=%d: %w", in.Length, series.ErrShortSeries)
	}
	if in.Replicates < 1 {
		return fmt.Errorf("replicates=%d: %w", in.Replicates, series.ErrBadReplicates)
	}
	if err := matrix.ValidateShape(in.Trajectory, in.Trajectory.Rows(), in.Length*in.Replicates); err != nil {
		return err
	}
	if in.Trajectory.Rows()%p.Components != 0 {
		return fmt.Errorf("%d state rows for %d components per unit: %w",
			in.Trajectory.Rows(), p.Components, matrix.ErrDimensionMismatch)
	}
	if in.Basis == basis.RBF && in.Order > in.Replicates*(in.Length-1) {
		return fmt.Errorf("order=%d: %w", in.Order, basis.ErrOrderExceedsSamples)
	}

	return matrix.ValidateFinite(in.Trajectory)
}
