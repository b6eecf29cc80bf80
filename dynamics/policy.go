// SPDX-License-Identifier: MIT

package dynamics

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/netinfer/matrix"
	"github.com/katalvlaran/netinfer/series"
)

// Sentinel errors for model policies.
var (
	// ErrUnknownModel indicates a model name missing from the registry.
	ErrUnknownModel = errors.New("dynamics: unknown model")

	// ErrBadComponents indicates a policy with fewer than one component per unit.
	ErrBadComponents = errors.New("dynamics: components must be >= 1")

	// ErrBadUnit indicates a unit outside the truth matrix.
	ErrBadUnit = errors.New("dynamics: unit out of range")
)

// Policy describes one family of dynamical systems.
type Policy struct {
	// Name is the registry key.
	Name string

	// Components is the number of state rows per unit. Unit u owns rows
	// u·Components .. u·Components+Components−1; row u·Components is the one
	// whose derivative is reconstructed.
	Components int

	// Transform is applied to midpoint states before expansion; nil is identity.
	Transform series.Transform

	// SelfLoop marks the target as its own driver in the truth row
	// (intrinsic decay terms).
	SelfLoop bool

	// NodeReference makes relative basis kinds use the bare unit index as
	// their reference row instead of TargetRow(unit). The two only differ
	// when Components > 1; the node index then names a component row of
	// another unit.
	NodeReference bool
}

// Validate checks the policy is usable.
func (p Policy) Validate() error {
	if p.Components < 1 {
		return fmt.Errorf("dynamics: %s: components=%d: %w", p.Name, p.Components, ErrBadComponents)
	}

	return nil
}

// TargetRow returns the state row reconstructed for unit.
func (p Policy) TargetRow(unit int) int { return unit * p.Components }

// ReferenceRow returns the state row that relative basis kinds
// (polynomial_diff, fourier_diff, power_series, RBF) are expanded against.
func (p Policy) ReferenceRow(unit int) int {
	if p.NodeReference {
		return unit
	}

	return p.TargetRow(unit)
}

// Units returns the number of units covered by rows state rows.
func (p Policy) Units(rows int) int { return (rows + p.Components - 1) / p.Components }

// TruthRow builds the comparison row for unit from an Ns×Ns adjacency.
//
// The row has one entry per state row (Ns·Components). Entry
// j·Components carries truth[unit, j]; for multi-component units the
// unit's own auxiliary components are marked as drivers, and SelfLoop marks
// the unit's primary row. The truth matrix is never mutated.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
// ErrBadUnit, ErrBadComponents.
func (p Policy) TruthRow(truth *matrix.Dense, unit int) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(truth); err != nil {
		return nil, fmt.Errorf("dynamics: truth: %w", err)
	}
	ns := truth.Rows()
	if err := matrix.ValidateShape(truth, ns, ns); err != nil {
		return nil, fmt.Errorf("dynamics: truth must be square: %w", err)
	}
	if unit < 0 || unit >= ns {
		return nil, fmt.Errorf("dynamics: unit=%d with %d units: %w", unit, ns, ErrBadUnit)
	}
	row, err := truth.RowView(unit)
	if err != nil {
		return nil, fmt.Errorf("dynamics: %w", err)
	}

	out := make([]float64, ns*p.Components)
	for j, v := range row {
		out[j*p.Components] = v
	}
	base := unit * p.Components
	for c := 1; c < p.Components; c++ {
		out[base+c] = 1
	}
	if p.SelfLoop {
		out[base] = 1
	}

	return out, nil
}

// Built-in policies.
var (
	Kuramoto1       = Policy{Name: "kuramoto1", Components: 1, Transform: series.WrapPhase}
	Kuramoto2       = Policy{Name: "kuramoto2", Components: 1, Transform: series.WrapPhase}
	MichaelisMenten = Policy{Name: "michaelis_menten", Components: 1, SelfLoop: true}
	Roessler        = Policy{Name: "roessler", Components: 3}
	RoesslerNode    = Policy{Name: "roessler_node", Components: 3, NodeReference: true}
	Generic         = Policy{Name: "generic", Components: 1}
)

var registry = map[string]Policy{
	Kuramoto1.Name:       Kuramoto1,
	Kuramoto2.Name:       Kuramoto2,
	MichaelisMenten.Name: MichaelisMenten,
	Roessler.Name:        Roessler,
	RoesslerNode.Name:    RoesslerNode,
	Generic.Name:         Generic,
}

// Lookup returns the built-in policy registered under name.
func Lookup(name string) (Policy, error) {
	p, ok := registry[name]
	if !ok {
		return Policy{}, fmt.Errorf("dynamics: %q: %w", name, ErrUnknownModel)
	}

	return p, nil
}

// Names lists the registered model names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}
