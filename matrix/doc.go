// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric kernel behind netinfer.
//
// What & Why:
//
//	Dense is a row-major float64 matrix with bounds-checked At/Set and a flat
//	backing slice that kernels in this package walk directly. On top of it the
//	package offers exactly what the reconstruction engine needs:
//
//	  • Pinv       — SVD-based Moore–Penrose pseudoinverse (gonum mat.SVD)
//	  • ProjectResidual — least-squares residual y − (y·pinv(R))·R
//	  • Transpose  — layout changes for readers (time-major files)
//	  • Binarize   — nonzero → 1 for ground-truth adjacency
//
// Numeric policy:
//
//	Pinv drops singular values s ≤ rcond·max(s) (DefaultRcond = 1e-15, the
//	numpy default). The operand is scaled by its largest magnitude before
//	the SVD. Rank deficiency never fails; NaN/Inf operands and SVD
//	non-convergence surface as ErrNaNInf / ErrFactorization from Pinv and as
//	the zero projection from ProjectResidual.
//
// Errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is.
package matrix
