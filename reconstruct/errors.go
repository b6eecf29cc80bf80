// SPDX-License-Identifier: MIT

package reconstruct

import "errors"

// Sentinel errors for the selector. Numerical edge cases never produce errors.
var (
	// ErrNilTensor indicates a nil basis tensor.
	ErrNilTensor = errors.New("reconstruct: basis tensor is nil")

	// ErrBadTarget indicates a target unit outside [0, N).
	ErrBadTarget = errors.New("reconstruct: target unit out of range")

	// ErrAborted indicates the context ended between rounds; the partial
	// Result returned alongside is consistent.
	ErrAborted = errors.New("reconstruct: aborted between rounds")
)
