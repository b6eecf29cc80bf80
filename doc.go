// Package netinfer reconstructs the connectivity of a network of interacting
// units from their measured time series, without knowing the equations that
// govern them.
//
// 🚀 What is netinfer?
//
//	A small, deterministic engine that, for one target unit at a time:
//		• Estimates derivatives and midpoint states from replicate series
//		• Expands every unit's states into a basis family (polynomial, Fourier, RBF…)
//		• Greedily selects the units whose basis blocks best explain the target's
//		  derivative, stopping once the remaining candidates look alike
//		• Scores the ranking against a known adjacency matrix (ROC curve, AUC)
//
// ✨ Why netinfer?
//
//   - Model-free – no equations, only sampled trajectories
//   - Deterministic – identical rankings for any worker count
//   - Observable – slog logging, Prometheus counters, per-round hooks
//   - Pure Go – gonum for the SVD, the statistics and the integration
//
// Packages:
//
//	matrix/      — Dense storage, transposition, pseudoinverse, least-squares residuals
//	series/      — midpoint states and forward differences per replicate
//	basis/       — the six basis families and the [B, T, N] tensor
//	reconstruct/ — greedy subspace selection with its stopping rule
//	evaluate/    — ROC curve and trapezoidal AUC against the true links
//	dynamics/    — per-model policies (Kuramoto, Michaelis–Menten, Roessler…)
//	inference/   — one-call pipeline: series → basis → reconstruct → evaluate
//	cmd/netinfer — CLI over the on-disk Data/ layout
//
// Quick sketch:
//
//	    x1 ──▶ x0 ◀── x3        Reconstruct(dx0, Y, 0) → Selected [1 3]
//	           ▲
//	    x2 ────┘ (no link)      Evaluate → AUC 1.0
//
//	go install github.com/katalvlaran/netinfer/cmd/netinfer@latest
package netinfer
