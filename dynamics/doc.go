// SPDX-License-Identifier: MIT

// Package dynamics holds per-model policies: how observed states are
// transformed before expansion, how units map onto state rows, and how a
// ground-truth adjacency row is augmented before scoring.
//
// Policies are plain values injected into the pipeline; the registry only
// names the built-in ones (kuramoto1, kuramoto2, michaelis_menten, roessler,
// roessler_node, generic).
package dynamics
