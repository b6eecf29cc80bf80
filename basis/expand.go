// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netinfer/matrix"
)

const opExpand = "basis.Expand"

// kernel is one row of the dispatch table: the width of the family and its
// evaluation function. eval fills the slab of unit n (B×T, row-major) given
// the state rows of the candidate (xn) and reference (xr) units.
type kernel struct {
	width func(order int) int
	eval  func(slab, xn, xr []float64, order int)
}

// kernels is the closed dispatch table; every valid Kind has an entry.
var kernels = [kindCount]kernel{
	Polynomial:     {width: linearWidth, eval: evalPolynomial},
	PolynomialDiff: {width: linearWidth, eval: evalPolynomialDiff},
	Fourier:        {width: doubleWidth, eval: evalFourier},
	FourierDiff:    {width: doubleWidth, eval: evalFourierDiff},
	PowerSeries:    {width: squareWidth, eval: evalPowerSeries},
	RBF:            {width: linearWidth, eval: evalRBF},
}

func linearWidth(k int) int { return k }
func doubleWidth(k int) int { return 2 * k }
func squareWidth(k int) int { return k * k }

// Expand evaluates the basis family kind of the given order on the state
// matrix X (N × T), relative to reference unit ref.
//
// Validation happens before any allocation, in this order: kind, order,
// X (nil, then range of ref, then RBF anchor count, then finiteness). The
// filled tensor is checked once more: an overflowing entry fails with
// matrix.ErrNaNInf instead of reaching the selector.
//
// Errors:
//   - ErrUnknownKind, ErrBadOrder, ErrBadReference, ErrOrderExceedsSamples,
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity: O(B·T·N), and O(K·T·N) for RBF.
func Expand(x *matrix.Dense, order int, kind Kind, ref int) (*Tensor, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%s: %s: %w", opExpand, kind, ErrUnknownKind)
	}
	if order < 1 {
		return nil, fmt.Errorf("%s: order=%d: %w", opExpand, order, ErrBadOrder)
	}
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opExpand, err)
	}
	n, t := x.Rows(), x.Cols()
	if ref < 0 || ref >= n {
		return nil, fmt.Errorf("%s: ref=%d with %d units: %w", opExpand, ref, n, ErrBadReference)
	}
	if kind == RBF && order > t {
		return nil, fmt.Errorf("%s: order=%d with %d samples: %w", opExpand, order, t, ErrOrderExceedsSamples)
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opExpand, err)
	}

	k := kernels[kind]
	b := k.width(order)
	y := &Tensor{b: b, t: t, n: n, data: make([]float64, n*b*t), kind: kind, order: order, ref: ref}

	xr, err := x.RowView(ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExpand, err)
	}
	size := b * t
	for u := 0; u < n; u++ {
		xn, err := x.RowView(u)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opExpand, err)
		}
		k.eval(y.data[u*size:(u+1)*size], xn, xr, order)
	}

	// Finite states can still overflow: large x^k, or squared RBF distances.
	if err := matrix.ValidateVecFinite(y.data); err != nil {
		return nil, fmt.Errorf("%s: %s order %d overflows: %w", opExpand, kind, order, err)
	}

	return y, nil
}

// evalPolynomial: row k holds xn^k.
func evalPolynomial(slab, xn, _ []float64, order int) {
	t := len(xn)
	for k := 0; k < order; k++ {
		row := slab[k*t : (k+1)*t]
		for s, v := range xn {
			row[s] = math.Pow(v, float64(k))
		}
	}
}

// evalPolynomialDiff: row k holds (xn − xr)^k.
func evalPolynomialDiff(slab, xn, xr []float64, order int) {
	t := len(xn)
	for k := 0; k < order; k++ {
		row := slab[k*t : (k+1)*t]
		for s := range xn {
			row[s] = math.Pow(xn[s]-xr[s], float64(k))
		}
	}
}

// evalFourier: rows 2k and 2k+1 hold sin(k·xn) and cos(k·xn).
func evalFourier(slab, xn, _ []float64, order int) {
	t := len(xn)
	for k := 0; k < order; k++ {
		sin := slab[(2*k)*t : (2*k+1)*t]
		cos := slab[(2*k+1)*t : (2*k+2)*t]
		fk := float64(k)
		for s, v := range xn {
			sin[s] = math.Sin(fk * v)
			cos[s] = math.Cos(fk * v)
		}
	}
}

// evalFourierDiff: rows 2k and 2k+1 hold sin(k·(xn−xr)) and cos(k·(xn−xr)).
func evalFourierDiff(slab, xn, xr []float64, order int) {
	t := len(xn)
	for k := 0; k < order; k++ {
		sin := slab[(2*k)*t : (2*k+1)*t]
		cos := slab[(2*k+1)*t : (2*k+2)*t]
		fk := float64(k)
		for s := range xn {
			d := xn[s] - xr[s]
			sin[s] = math.Sin(fk * d)
			cos[s] = math.Cos(fk * d)
		}
	}
}

// evalPowerSeries: row K·k1+k2 holds xr^k1 · xn^k2.
func evalPowerSeries(slab, xn, xr []float64, order int) {
	t := len(xn)
	for k1 := 0; k1 < order; k1++ {
		for k2 := 0; k2 < order; k2++ {
			row := slab[(order*k1+k2)*t : (order*k1+k2+1)*t]
			for s := range xn {
				row[s] = math.Pow(xr[s], float64(k1)) * math.Pow(xn[s], float64(k2))
			}
		}
	}
}

// evalRBF: row m1 holds sqrt(2 + ‖a(m1) − a(s)‖²) with a(s) = (xn[s], xr[s]),
// anchored at the first `order` samples.
func evalRBF(slab, xn, xr []float64, order int) {
	t := len(xn)
	for m1 := 0; m1 < order; m1++ {
		row := slab[m1*t : (m1+1)*t]
		for s := range xn {
			dn := xn[m1] - xn[s]
			dr := xr[m1] - xr[s]
			row[s] = math.Sqrt(2.0 + dn*dn + dr*dr)
		}
	}
}
