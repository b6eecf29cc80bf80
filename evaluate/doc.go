// SPDX-License-Identifier: MIT

// Package evaluate scores a reconstruction against a known adjacency row.
//
// 🚀 What it does
//
//   - Binarizes the ground-truth row (nonzero → link).
//   - Sweeps every distinct |score| as a cutoff to build the ROC curve
//     (gonum stat.ROC) and integrates it with the trapezoidal rule
//     (gonum integrate.Trapezoidal).
//
// ✨ Degenerate inputs are not errors
//
// An empty selection, a truth row without links, or a truth row with only
// links leaves the AUC undefined. That is reported explicitly through Metric
// and Status rather than as NaN or a silent zero, so averaging code can
// skip it (see Mean).
//
// ⚙️ Usage
//
//	ev, err := evaluate.Evaluate(result, truthRow)
//	if v, ok := ev.AUC.Value(); ok {
//		fmt.Printf("AUC=%.3f\n", v)
//	}
package evaluate
