// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netinfer/basis"
	"github.com/katalvlaran/netinfer/dynamics"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "netinfer",
		Short: "Model-free reconstruction of directed network links",
		Long: `netinfer ranks the incoming connections of a unit in a network of
coupled dynamical units, using only observed multivariate time series.

For each target unit the derivative is regressed on nonlinear basis
expansions of candidate units; candidates are added greedily while they
reduce the projection error distinguishably.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReconstructCmd(), newListCmd())

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported models and basis kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := make([]string, 0, len(basis.Kinds()))
			for _, k := range basis.Kinds() {
				kinds = append(kinds, k.String())
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "models: %s\n", strings.Join(dynamics.Names(), ", "))
			fmt.Fprintf(out, "bases:  %s\n", strings.Join(kinds, ", "))

			return nil
		},
	}
}
