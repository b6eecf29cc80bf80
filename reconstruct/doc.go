// SPDX-License-Identifier: MIT

// Package reconstruct implements the greedy subspace selection that ranks the
// incoming connections of one target unit.
//
// 🚀 Algorithm (one call = one target unit):
//
//	L ← ∅ (selected, ordered), C ← candidate units
//	repeat:
//	  Z ← [Y[:,:,u] for u in L]                       stacked basis blocks
//	  for n in C (in parallel):
//	    R ← [Z; Y[:,:,n]]
//	    e ← dx − (dx·pinv(R))·R                       least-squares residual
//	    spread[n] ← std(e), cost[n] ← ‖e‖₂ / M
//	  if std(spread over C) < θ: stop                 candidates indistinguishable
//	  n* ← argmin spread (ties → lowest unit index)
//	  move n* from C to L; score[n*] ← spread[n*]; append cost[n*]
//	until C = ∅
//
// ✨ Guarantees:
//   - Deterministic: candidate evaluations write to unit-indexed slots and the
//     argmin runs after the barrier, so any worker count gives the same result.
//   - Partition: Selected ∩ Candidates = ∅ and their union is the candidate
//     domain at every round boundary (observable through WithOnRound).
//   - Cancellation only between rounds; an aborted call returns the consistent
//     partial Result together with an error wrapping ErrAborted.
//
// ⚙️ Usage:
//
//	res, err := reconstruct.Reconstruct(ctx, dx, y, unit,
//	    reconstruct.WithNormalization(samples.Length),
//	    reconstruct.WithLogger(logger))
//
// Complexity per round: |C| pseudoinverses of a (|L|+1)·B × T matrix.
package reconstruct
