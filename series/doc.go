// SPDX-License-Identifier: MIT

// Package series turns raw multi-replicate trajectories into regression
// samples: midpoint states X and finite-difference derivatives DX.
//
// 🚀 What does it compute?
//
//	For every replicate segment of M points and every t = 0..M−2:
//	  X[:, t]  = (x[t] + x[t+1]) / 2      midpoint state
//	  DX[:, t] = x[t+1] − x[t]            derivative estimate
//	Segments are concatenated in replicate order, so X and DX are N × S·(M−1).
//
// ✨ Injected policies:
//   - Transform: a per-value map applied to midpoints only (WrapPhase for
//     phase oscillators). The estimator never decides it on its own.
//
// ⚙️ Usage:
//
//	s, err := series.Estimate(traj, M, S, series.WithTransform(series.WrapPhase))
//
// Complexity: O(N·S·M) time and memory.
package series
