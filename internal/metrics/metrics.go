// SPDX-License-Identifier: MIT

// Package metrics implements reconstruct.Recorder on Prometheus collectors.
//
// The CLI registers a Recorder on a private registry and, when asked,
// dumps it in the text exposition format for node_exporter's textfile
// collector.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/netinfer/reconstruct"
)

// Recorder counts selector rounds and stop reasons.
// It is safe for concurrent use.
type Recorder struct {
	rounds        prometheus.Counter
	roundDuration prometheus.Histogram
	candidates    prometheus.Counter
	stops         *prometheus.CounterVec
	selected      *prometheus.GaugeVec
}

var _ reconstruct.Recorder = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		rounds: f.NewCounter(prometheus.CounterOpts{
			Name: "netinfer_rounds_total",
			Help: "Selection rounds evaluated, including stopping rounds.",
		}),
		roundDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name: "netinfer_round_duration_seconds",
			Help: "Wall time of one selection round.",
			// One small SVD (sub-ms) up to hundreds of wide candidates.
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}),
		candidates: f.NewCounter(prometheus.CounterOpts{
			Name: "netinfer_candidates_evaluated_total",
			Help: "Candidate subspaces projected across all rounds.",
		}),
		stops: f.NewCounterVec(prometheus.CounterOpts{
			Name: "netinfer_stops_total",
			Help: "Finished reconstructions by stop reason.",
		}, []string{"reason"}),
		selected: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "netinfer_selected_units",
			Help: "Inferred incoming links of the last reconstruction per target.",
		}, []string{"target"}),
	}
}

// ObserveRound implements reconstruct.Recorder.
func (r *Recorder) ObserveRound(_ int, candidates int, elapsed time.Duration) {
	r.rounds.Inc()
	r.candidates.Add(float64(candidates))
	r.roundDuration.Observe(elapsed.Seconds())
}

// ObserveStop implements reconstruct.Recorder.
func (r *Recorder) ObserveStop(target int, reason reconstruct.StopReason, selected int) {
	r.stops.WithLabelValues(reason.String()).Inc()
	r.selected.WithLabelValues(strconv.Itoa(target)).Set(float64(selected))
}

// WriteTextfile writes everything g gathers to path in the text format.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}
