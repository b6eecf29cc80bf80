// SPDX-License-Identifier: MIT

// Package basis evaluates nonlinear candidate functions on observed states.
//
// Expand(X, K, kind, r) returns a Tensor Y with logical shape [B, T, N]:
// Y[k, t, n] is basis function k of candidate source unit n at sample t,
// optionally relative to the reference (target) unit r.
//
//	Kind            B    Y[k,t,n]
//	Polynomial      K    X[n,t]^k
//	PolynomialDiff  K    (X[n,t]−X[r,t])^k
//	Fourier         2K   sin(k·X[n,t]), cos(k·X[n,t]) interleaved
//	FourierDiff     2K   same on X[n,t]−X[r,t]
//	PowerSeries     K²   X[r,t]^k1 · X[n,t]^k2 at K·k1+k2
//	RBF             K    sqrt(2 + ‖(X[n,m1],X[r,m1]) − (X[n,t],X[r,t])‖²), m1 < K
//
// RBF uses the first K samples as kernel anchors, so K is both the number of
// basis functions and the anchor count; K must not exceed T.
//
// Kind is a closed set: every value has exactly one evaluation function in
// the package dispatch table, and ParseKind accepts only the names above in
// their canonical snake-case spelling ("RBF" for the radial basis).
package basis
