// SPDX-License-Identifier: MIT

package reconstruct_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/netinfer/basis"
	"github.com/katalvlaran/netinfer/matrix"
	"github.com/katalvlaran/netinfer/reconstruct"
)

// ExampleReconstruct ranks the drivers of unit 0 when its derivative is
// 2·x1 − x3². Units 1 and 3 are recovered, strongest first.
func ExampleReconstruct() {
	rng := rand.New(rand.NewSource(1))
	const n, t = 5, 200
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, t)
		for s := range rows[i] {
			rows[i][s] = 2*rng.Float64() - 1
		}
	}
	x, _ := matrix.NewDenseRows(rows)
	target := make([]float64, t)
	for s := range target {
		target[s] = 2*rows[1][s] - rows[3][s]*rows[3][s]
	}

	y, err := basis.Expand(x, 3, basis.Polynomial, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := reconstruct.Reconstruct(context.Background(), target, y, 0, reconstruct.WithRcond(1e-10))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("selected:", res.Selected)
	fmt.Println("stop:", res.Stop)
	// Output:
	// selected: [1 3]
	// stop: indistinguishable
}
