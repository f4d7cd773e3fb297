package roc

import "fmt"

// Curve holds one receiver operating characteristic curve as parallel
// coordinate sequences. FPR and TPR ascend from (0, 0) to (1, 1) as the
// decision threshold sweeps from least to most permissive; Thresholds
// carries the matching cutoffs in descending order.
type Curve struct {
	FPR        []float64 `json:"fpr"`
	TPR        []float64 `json:"tpr"`
	Thresholds []float64 `json:"thresholds"`
}

// Len returns the number of operating points on the curve.
func (c Curve) Len() int { return len(c.FPR) }

// Validate checks the structural invariants: parallel sequences of
// equal length, monotonically non-decreasing rates, and curve endpoints
// at (0, 0) and (1, 1).
func (c Curve) Validate() error {
	if len(c.TPR) != len(c.FPR) || len(c.Thresholds) != len(c.FPR) {
		return fmt.Errorf("roc: unbalanced curve: %d fpr, %d tpr, %d thresholds",
			len(c.FPR), len(c.TPR), len(c.Thresholds))
	}
	for i := 1; i < len(c.FPR); i++ {
		if c.FPR[i] < c.FPR[i-1] {
			return fmt.Errorf("roc: fpr decreases at point %d", i)
		}
		if c.TPR[i] < c.TPR[i-1] {
			return fmt.Errorf("roc: tpr decreases at point %d", i)
		}
	}
	if n := len(c.FPR); n > 0 {
		if c.FPR[0] != 0 || c.TPR[0] != 0 {
			return fmt.Errorf("roc: curve starts at (%g, %g), want (0, 0)", c.FPR[0], c.TPR[0])
		}
		if c.FPR[n-1] != 1 || c.TPR[n-1] != 1 {
			return fmt.Errorf("roc: curve ends at (%g, %g), want (1, 1)", c.FPR[n-1], c.TPR[n-1])
		}
	}
	return nil
}
