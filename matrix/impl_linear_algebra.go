// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the
// reconstruction engine: transposition, the Moore–Penrose pseudoinverse
// and least-squares residuals.
//
// Purpose:
//   - Keep every dense loop of the engine in one package with fixed loop orders.
//   - Delegate the singular value decomposition to gonum (LAPACK-grade SVD).
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - Results are freshly allocated; operands are never mutated.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose       = "Transpose"
	opPinv            = "Pinv"
	opProjectResidual = "ProjectResidual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns mᵀ as a fresh Dense.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Pinv computes the Moore–Penrose pseudoinverse of m (r×c) as a c×r Dense.
//
// Implementation:
//   - Stage 1: reject non-finite entries; scale m by its largest magnitude a
//     so the factorization works on values in [-1, 1].
//   - Stage 2: thin SVD m/a = U·diag(s)·Vᵀ via gonum's mat.SVD.
//   - Stage 3: keep singular values s_l > rcond·s_0 (s sorted descending);
//     pinv = V·diag(1/(a·s_l))·Uᵀ over the kept values.
//
// Behavior highlights:
//   - Rank-deficient and all-zero inputs are fine: dropped singular values
//     contribute nothing, an all-zero m yields an all-zero pseudoinverse.
//   - The SVD never sees NaN or ±Inf; gonum's bidiagonal QR does not
//     terminate on them.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrFactorization (SVD did not converge).
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Pinv(m *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	o := gatherOptions(opts...)

	out := &Dense{r: m.c, c: m.r, data: make([]float64, m.c*m.r)}
	var scale float64
	for _, v := range m.data {
		scale = math.Max(scale, math.Abs(v))
	}
	if scale == 0 {
		return out, nil
	}
	scaled := make([]float64, len(m.data))
	for idx, v := range m.data {
		scaled[idx] = v / scale
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(m.r, m.c, scaled), mat.SVDThin); !ok {
		return nil, matrixErrorf(opPinv, ErrFactorization)
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u) // r×k
	svd.VTo(&v) // c×k

	if len(s) == 0 {
		return out, nil
	}
	cutoff := o.rcond * s[0]

	var i, j, l int
	var inv float64
	for l = 0; l < len(s); l++ {
		if s[l] <= cutoff {
			break // descending order: every later value is below the cutoff too
		}
		inv = 1 / s[l] / scale
		for i = 0; i < m.c; i++ {
			vil := v.At(i, l) * inv
			row := out.data[i*m.r : (i+1)*m.r]
			for j = 0; j < m.r; j++ {
				row[j] += vil * u.At(j, l)
			}
		}
	}

	return out, nil
}

// ProjectResidual regresses the row vector y (length c) on the rows of r
// (p×c) and returns the residual y − (y·pinv(r))·r.
//
// Implementation:
//   - Stage 1: validate r and len(y) == r.Cols().
//   - Stage 2: P = Pinv(r) (c×p); a = y·P (length p); fit = a·r (length c).
//   - Stage 3: residual[t] = y[t] − fit[t].
//
// Behavior highlights:
//   - A failed factorization, a non-finite r and a fit that overflows are all
//     absorbed as the zero projection: the residual equals y. Downstream
//     statistics stay finite for singular or ill-conditioned trial matrices.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(p*c*min(p,c)) for the SVD plus O(p*c) for the two products.
func ProjectResidual(y []float64, r *Dense, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(r); err != nil {
		return nil, matrixErrorf(opProjectResidual, err)
	}
	if err := ValidateVecLen(y, r.c); err != nil {
		return nil, matrixErrorf(opProjectResidual, err)
	}

	res := make([]float64, len(y))
	copy(res, y)

	p, err := Pinv(r, opts...)
	if errors.Is(err, ErrFactorization) || errors.Is(err, ErrNaNInf) {
		return res, nil // zero projection
	}
	if err != nil {
		return nil, matrixErrorf(opProjectResidual, err)
	}

	// a = y·P, P is c×p.
	a := make([]float64, r.r)
	var t, k int
	for t = 0; t < r.c; t++ {
		yt := y[t]
		if yt == 0 {
			continue
		}
		prow := p.data[t*r.r : (t+1)*r.r]
		for k = 0; k < r.r; k++ {
			a[k] += yt * prow[k]
		}
	}
	// res = y − a·r.
	for k = 0; k < r.r; k++ {
		ak := a[k]
		if ak == 0 {
			continue
		}
		rrow := r.data[k*r.c : (k+1)*r.c]
		for t = 0; t < r.c; t++ {
			res[t] -= ak * rrow[t]
		}
	}
	if ValidateVecFinite(res) != nil {
		copy(res, y) // overflowing fit
	}

	return res, nil
}
