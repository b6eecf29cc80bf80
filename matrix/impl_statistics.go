// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise transforms used on ground-truth adjacency
//     matrices before scoring (binarization).
//
// Determinism & Performance:
//   - Fixed flat traversal for *Dense; i→j fallback for other implementations.

package matrix

import (
	"fmt"
	"math"
)

const opBinarize = "Binarize"

// Binarize returns a copy of m where every non-zero entry becomes 1 and every
// zero stays 0. NaN entries are rejected with ErrNaNInf; ±Inf count as
// non-zero (an infinite coupling is still a coupling).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Binarize(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opBinarize, err)
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opBinarize, err)
	}

	// Dense fast-path: single flat loop.
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if math.IsNaN(v) {
				return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", opBinarize, idx/d.c, idx%d.c), ErrNaNInf)
			}
			if v != 0 {
				out.data[idx] = 1
			}
		}

		return out, nil
	}

	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opBinarize, err)
			}
			if math.IsNaN(v) {
				return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", opBinarize, i, j), ErrNaNInf)
			}
			if v != 0 {
				out.data[i*out.c+j] = 1
			}
		}
	}

	return out, nil
}
