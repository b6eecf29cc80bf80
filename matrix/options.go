// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRcond is the relative singular-value cutoff used by Pinv:
	// singular values s ≤ rcond·max(s) are treated as zero. It matches the
	// default of numpy.linalg.pinv so rankings agree with reference runs.
	DefaultRcond = 1e-15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRcondInvalid = "matrix: WithRcond: rcond must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rcond float64 // >= 0; DefaultRcond
}

// WithRcond sets the relative singular-value cutoff used by Pinv and
// ProjectResidual.
//
// Inputs:
//   - rcond: non-negative finite tolerance. Zero keeps every non-zero
//     singular value.
//
// Errors:
//   - Panics with a stable message when rcond is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithRcond(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 {
		panic(panicRcondInvalid)
	}

	return func(o *Options) { o.rcond = rcond }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in kernels.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		rcond: DefaultRcond,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
