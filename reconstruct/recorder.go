// SPDX-License-Identifier: MIT

package reconstruct

import "time"

// Recorder receives per-round measurements. Implementations must be safe for
// concurrent use when several reconstructions share one Recorder.
type Recorder interface {
	// ObserveRound is called once per evaluation round with the number of
	// candidates evaluated and the wall time of the round.
	ObserveRound(target, candidates int, elapsed time.Duration)

	// ObserveStop is called once per call with the final reason and |L|.
	ObserveStop(target int, reason StopReason, selected int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRound(int, int, time.Duration) {}
func (nopRecorder) ObserveStop(int, StopReason, int) {}
