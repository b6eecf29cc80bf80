// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/netinfer/inference"

// runReport is the YAML document printed by reconstruct.
type runReport struct {
	RunID   string       `yaml:"run_id"`
	Model   string       `yaml:"model"`
	Basis   string       `yaml:"basis"`
	Order   int          `yaml:"order"`
	Units   []unitReport `yaml:"units"`
	MeanAUC string       `yaml:"mean_auc,omitempty"`
}

type unitReport struct {
	Unit     int       `yaml:"unit"`
	Row      int       `yaml:"row"` // state row reconstructed
	Selected []int     `yaml:"selected,flow"`
	Costs    []float64 `yaml:"costs,flow"`
	Rounds   int       `yaml:"rounds"`
	Stop     string    `yaml:"stop"`
	AUC      string    `yaml:"auc,omitempty"`
	Status   string    `yaml:"status,omitempty"`
}

func newUnitReport(r *inference.Report) unitReport {
	u := unitReport{
		Unit:     r.Unit,
		Row:      r.Result.Target,
		Selected: r.Result.Selected,
		Costs:    r.Result.Costs,
		Rounds:   r.Result.Rounds,
		Stop:     r.Result.Stop.String(),
	}
	if u.Selected == nil {
		u.Selected = []int{}
	}
	if u.Costs == nil {
		u.Costs = []float64{}
	}
	if r.Evaluation != nil {
		u.AUC = r.Evaluation.AUC.String()
		u.Status = r.Evaluation.Status.String()
	}

	return u
}
