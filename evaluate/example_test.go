// SPDX-License-Identifier: MIT

package evaluate_test

import (
	"fmt"

	"github.com/katalvlaran/netinfer/evaluate"
)

// ExampleEvaluate scores a ranking whose two selected units are the only
// true links.
func ExampleEvaluate() {
	r := ranking{selected: []int{3, 1}, scores: []float64{0, 0.02, 0, 0.01, 0}}

	ev, err := evaluate.Evaluate(r, []float64{0, 1, 0, 0.8, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("status:", ev.Status)
	fmt.Println("AUC:", ev.AUC)
	// Output:
	// status: ok
	// AUC: 1.0000
}
