// SPDX-License-Identifier: MIT

// Package inference is the call boundary of the reconstruction pipeline.
//
// Run validates every parameter up front, then chains the components:
//
//	trajectory ─▶ series.Estimate ─▶ basis.Expand ─▶ reconstruct.Reconstruct ─▶ evaluate.Evaluate
//
// The per-model policy (dynamics.Policy) decides the midpoint transform, the
// state row of the target and how the ground truth is augmented.
package inference
