// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"math"

	"github.com/katalvlaran/netinfer/matrix"
)

// Sentinel errors for derivative estimation.
var (
	// ErrShortSeries indicates a replicate length below two points (no difference exists).
	ErrShortSeries = errors.New("series: replicate length must be >= 2")

	// ErrBadReplicates indicates a non-positive replicate count.
	ErrBadReplicates = errors.New("series: replicate count must be >= 1")
)

// Transform maps a single midpoint state value to its model-specific
// representation. Transforms must be pure.
type Transform func(float64) float64

// twoPi is the period used by WrapPhase.
const twoPi = 2 * math.Pi

// WrapPhase wraps an angle into [0, 2π) with floor-modulo semantics:
// negative inputs map to their positive residue.
func WrapPhase(x float64) float64 {
	w := math.Mod(x, twoPi)
	if w < 0 {
		w += twoPi
	}
	// -tiny + 2π rounds to 2π; fold it back into the half-open range.
	if w >= twoPi {
		w = 0
	}

	return w
}

// Samples is the regression input produced by Estimate.
//
// X and DX are N × T with T = Replicates·(Length−1); both are owned by the
// caller after Estimate returns and are never mutated by this module.
type Samples struct {
	X  *matrix.Dense // midpoint states
	DX *matrix.Dense // derivative estimates

	Length     int // M: points per replicate (normalizes fitting costs)
	Replicates int // S: number of replicate series
}

// Units returns N.
func (s *Samples) Units() int { return s.X.Rows() }

// Len returns T, the number of regression samples per unit.
func (s *Samples) Len() int { return s.X.Cols() }

// Option configures Estimate.
type Option func(*options)

type options struct {
	transform Transform
}

// WithTransform applies t to every midpoint state. A nil t is the identity.
func WithTransform(t Transform) Option {
	return func(o *options) { o.transform = t }
}
