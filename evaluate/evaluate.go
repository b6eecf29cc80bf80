// SPDX-License-Identifier: MIT

package evaluate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netinfer/matrix"
)

// Sentinel errors for evaluation.
var (
	// ErrNilRanking indicates a nil Ranking.
	ErrNilRanking = errors.New("evaluate: ranking is nil")

	// ErrLengthMismatch indicates a truth row whose length differs from the
	// score vector.
	ErrLengthMismatch = errors.New("evaluate: truth and score lengths differ")
)

// Ranking is the view of a reconstruction the evaluator needs.
// *reconstruct.Result satisfies it.
type Ranking interface {
	// RankedUnits returns the inferred drivers, most confident first.
	RankedUnits() []int
	// ScoreVector returns one score per unit, zero for unselected units.
	ScoreVector() []float64
}

// Status explains whether the AUC is defined.
type Status uint8

const (
	// StatusOK: the curve and AUC are defined.
	StatusOK Status = iota
	// StatusNoSelection: the ranking selected nothing.
	StatusNoSelection
	// StatusNoPositives: the truth row has no links, so TPR is undefined.
	StatusNoPositives
	// StatusNoNegatives: the truth row links every unit, so FPR is undefined.
	StatusNoNegatives
)

// String returns a stable name for reports.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoSelection:
		return "no_selection"
	case StatusNoPositives:
		return "no_positives"
	case StatusNoNegatives:
		return "no_negatives"
	default:
		return "unknown"
	}
}

// Point is one (FPR, TPR) vertex of the ROC curve.
type Point struct {
	FPR, TPR float64
}

// UndefinedPoint is the single vertex of the curve returned when the AUC is
// undefined.
var UndefinedPoint = Point{FPR: math.NaN(), TPR: math.NaN()}

// Defined reports whether p is a real vertex.
func (p Point) Defined() bool { return !math.IsNaN(p.FPR) && !math.IsNaN(p.TPR) }

// Evaluation is the outcome of Evaluate.
type Evaluation struct {
	Status    Status
	AUC       Metric
	Curve     []Point // from (0,0) to (1,1), FPR non-decreasing
	Positives int     // links in the truth row
	Negatives int     // non-links in the truth row
}

// Evaluate compares r against the truth row of the target unit.
//
// Steps:
//  1. Validate lengths and finiteness; binarize truth (nonzero → link).
//  2. Degenerate cases return an undefined AUC with the matching Status.
//  3. Sort |scores| with their labels and sweep all distinct cutoffs.
//  4. Integrate TPR over FPR with the trapezoidal rule.
//
// Errors: ErrNilRanking, ErrLengthMismatch, matrix.ErrNilMatrix (nil truth),
// matrix.ErrNaNInf (NaN in truth or scores).
//
// Complexity: O(N log N).
func Evaluate(r Ranking, truth []float64) (*Evaluation, error) {
	if r == nil {
		return nil, ErrNilRanking
	}
	if truth == nil {
		return nil, fmt.Errorf("evaluate: truth: %w", matrix.ErrNilMatrix)
	}
	scores := r.ScoreVector()
	if len(truth) != len(scores) {
		return nil, fmt.Errorf("evaluate: %d truth entries for %d scores: %w", len(truth), len(scores), ErrLengthMismatch)
	}
	if err := matrix.ValidateVecFinite(scores); err != nil {
		return nil, fmt.Errorf("evaluate: scores: %w", err)
	}
	labels, err := BinarizeRow(truth)
	if err != nil {
		return nil, err
	}

	ev := &Evaluation{}
	for _, l := range labels {
		if l {
			ev.Positives++
		} else {
			ev.Negatives++
		}
	}
	switch {
	case len(r.RankedUnits()) == 0:
		return ev.undefined(StatusNoSelection), nil
	case ev.Positives == 0:
		return ev.undefined(StatusNoPositives), nil
	case ev.Negatives == 0:
		return ev.undefined(StatusNoNegatives), nil
	}

	y := make([]float64, len(scores))
	for i, s := range scores {
		y[i] = math.Abs(s)
	}
	stat.SortWeightedLabeled(y, labels, nil)
	tpr, fpr, _ := stat.ROC(nil, y, labels, nil)

	// stat.ROC starts at the +Inf cutoff; keep the origin explicit anyway.
	if fpr[0] != 0 || tpr[0] != 0 {
		fpr = append([]float64{0}, fpr...)
		tpr = append([]float64{0}, tpr...)
	}
	ev.Curve = make([]Point, len(fpr))
	for i := range fpr {
		ev.Curve[i] = Point{FPR: fpr[i], TPR: tpr[i]}
	}
	ev.AUC = Defined(integrate.Trapezoidal(fpr, tpr))
	ev.Status = StatusOK

	return ev, nil
}

func (ev *Evaluation) undefined(s Status) *Evaluation {
	ev.Status = s
	ev.AUC = Undefined()
	ev.Curve = []Point{UndefinedPoint}

	return ev
}

// BinarizeRow maps nonzero entries to true. NaN is rejected with
// matrix.ErrNaNInf; ±Inf counts as a link.
func BinarizeRow(truth []float64) ([]bool, error) {
	out := make([]bool, len(truth))
	for i, v := range truth {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("evaluate: truth[%d]: %w", i, matrix.ErrNaNInf)
		}
		out[i] = v != 0
	}

	return out, nil
}
