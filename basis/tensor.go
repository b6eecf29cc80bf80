// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	"github.com/katalvlaran/netinfer/matrix"
)

// Tensor holds Y[k, t, n] with logical shape [B, T, N].
//
// Storage is unit-major: the B×T slab of unit n is contiguous, so composing
// trial matrices is a sequence of block copies. A Tensor is read-only after
// Expand returns and is safe for concurrent readers.
type Tensor struct {
	b, t, n int
	data    []float64 // len == n*b*t; offset(k,s,n) = (n*b+k)*t + s

	kind  Kind
	order int
	ref   int
}

// Dims returns (B, T, N).
func (y *Tensor) Dims() (b, t, n int) { return y.b, y.t, y.n }

// Kind returns the basis family the tensor was expanded with.
func (y *Tensor) Kind() Kind { return y.kind }

// Order returns the expansion order K.
func (y *Tensor) Order() int { return y.order }

// Reference returns the reference unit r used by relative kinds.
func (y *Tensor) Reference() int { return y.ref }

// At returns Y[k, s, n]. It returns matrix.ErrOutOfRange on bad indices.
func (y *Tensor) At(k, s, n int) (float64, error) {
	if k < 0 || k >= y.b || s < 0 || s >= y.t || n < 0 || n >= y.n {
		return 0, fmt.Errorf("basis: At(%d,%d,%d) on [%d,%d,%d]: %w", k, s, n, y.b, y.t, y.n, matrix.ErrOutOfRange)
	}

	return y.data[y.offset(k, s, n)], nil
}

// Block returns a copy of the B×T slab Y[:, :, n].
func (y *Tensor) Block(n int) (*matrix.Dense, error) {
	slab, err := y.slab(n)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(y.b, y.t, slab)
}

// AppendBlock appends the slab of unit n (row-major, B·T values) to dst and
// returns the extended slice. It is the allocation-free path used to compose
// trial matrices.
func (y *Tensor) AppendBlock(dst []float64, n int) ([]float64, error) {
	slab, err := y.slab(n)
	if err != nil {
		return nil, err
	}

	return append(dst, slab...), nil
}

func (y *Tensor) slab(n int) ([]float64, error) {
	if n < 0 || n >= y.n {
		return nil, fmt.Errorf("basis: block %d of %d units: %w", n, y.n, matrix.ErrOutOfRange)
	}
	size := y.b * y.t

	return y.data[n*size : (n+1)*size], nil
}

func (y *Tensor) offset(k, s, n int) int { return (n*y.b+k)*y.t + s }
