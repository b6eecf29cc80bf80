// SPDX-License-Identifier: MIT

package reconstruct

// StopReason records why the greedy loop ended.
type StopReason uint8

const (
	// StopExhausted: every candidate was selected.
	StopExhausted StopReason = iota
	// StopIndistinguishable: the spread scores of the remaining candidates
	// had a standard deviation below the threshold.
	StopIndistinguishable
	// StopAborted: the context ended between rounds.
	StopAborted
)

// String returns a stable, label-friendly name.
func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopIndistinguishable:
		return "indistinguishable"
	case StopAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result is the outcome of one reconstruction call.
type Result struct {
	// Target is the unit whose incoming connections were ranked.
	Target int

	// Selected lists inferred drivers in discovery order, most confident first.
	Selected []int

	// Costs is parallel to Selected: the fitting cost ‖e‖₂/M at selection.
	Costs []float64

	// Scores has one entry per unit: the winning spread score for selected
	// units, zero otherwise.
	Scores []float64

	// Rounds counts evaluation rounds, including the one that stopped.
	Rounds int

	// Stop is the termination reason.
	Stop StopReason
}

// RankedUnits returns Selected; it lets *Result act as an evaluate.Ranking.
func (r *Result) RankedUnits() []int { return r.Selected }

// ScoreVector returns Scores; it lets *Result act as an evaluate.Ranking.
func (r *Result) ScoreVector() []float64 { return r.Scores }

// Round is a snapshot handed to WithOnRound after each accepted selection.
// All slices are fresh copies owned by the hook.
type Round struct {
	Index      int       // 0-based round number
	Chosen     int       // unit selected in this round
	Spread     float64   // its spread score
	Cost       float64   // its fitting cost
	Evaluated  []int     // candidates evaluated this round, ascending
	Spreads    []float64 // spread per Evaluated entry
	Selected   []int     // L after the selection
	Candidates []int     // C after the selection, ascending
}
