// SPDX-License-Identifier: MIT

package reconstruct

import (
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/netinfer/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is θ: the loop stops when the standard deviation of the
	// remaining candidates' spread scores falls below it. Lower it to recover
	// longer lists of possible links.
	DefaultThreshold = 1e-4

	// DefaultExcludeTarget keeps the target among its own candidates, so an
	// intrinsic (self) term can be inferred.
	DefaultExcludeTarget = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid     = "reconstruct: WithThreshold: threshold must be finite, non-negative"
	panicWorkersInvalid       = "reconstruct: WithWorkers: workers must be >= 0"
	panicNormalizationInvalid = "reconstruct: WithNormalization: m must be >= 1"
)

// Option configures Reconstruct. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	threshold     float64
	rcond         float64
	workers       int // 0 → GOMAXPROCS
	normalization int // 0 → T
	excludeTarget bool
	logger        *slog.Logger
	recorder      Recorder
	onRound       func(Round)
}

// WithThreshold sets the stopping threshold θ (≥ 0). θ = 0 never stops early.
func WithThreshold(theta float64) Option {
	if math.IsNaN(theta) || math.IsInf(theta, 0) || theta < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = theta }
}

// WithRcond sets the pseudoinverse cutoff; see matrix.WithRcond.
func WithRcond(rcond float64) Option {
	_ = matrix.WithRcond(rcond) // validates (panics) eagerly

	return func(o *options) { o.rcond = rcond }
}

// WithWorkers bounds the number of concurrent candidate evaluations within a
// round. Zero selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithNormalization sets M in cost = ‖e‖₂/M; pass the single-replicate length.
// Without it the sample count T is used.
func WithNormalization(m int) Option {
	if m < 1 {
		panic(panicNormalizationInvalid)
	}

	return func(o *options) { o.normalization = m }
}

// WithExcludeTarget removes the target unit from its own candidate set.
func WithExcludeTarget() Option {
	return func(o *options) { o.excludeTarget = true }
}

// WithLogger routes round and stop events to l. A nil l discards them.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRecorder installs a metrics recorder. A nil r disables recording.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithOnRound installs a hook invoked synchronously after every accepted
// selection, at the round boundary.
func WithOnRound(fn func(Round)) Option {
	return func(o *options) { o.onRound = fn }
}

func gatherOptions(user ...Option) options {
	o := options{
		threshold:     DefaultThreshold,
		rcond:         matrix.DefaultRcond,
		excludeTarget: DefaultExcludeTarget,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}

	return o
}
