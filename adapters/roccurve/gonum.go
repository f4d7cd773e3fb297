package roccurve

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"fairviz/domain/core"
	"fairviz/domain/roc"
)

// Gonum computes ROC curves with gonum's stat package. It implements
// ports.CurveComputer.
type Gonum struct{}

func NewGonum() *Gonum {
	return &Gonum{}
}

// Curve computes the ROC curve over all distinct score thresholds.
// Labels must be strictly 0 or 1, with 1 the positive class, and must
// contain at least one of each; anything else is an error rather than a
// NaN-valued curve.
func (g *Gonum) Curve(labels, scores []float64) (roc.Curve, error) {
	if len(labels) != len(scores) {
		return roc.Curve{}, core.NewLengthMismatchError("labels", len(scores), len(labels))
	}

	n := len(scores)
	classes := make([]bool, n)
	var pos, neg int
	for i, l := range labels {
		switch l {
		case 0:
			neg++
		case 1:
			classes[i] = true
			pos++
		default:
			return roc.Curve{}, core.NewNonBinaryLabelError(i, l)
		}
	}
	if pos == 0 || neg == 0 {
		return roc.Curve{}, core.ErrDegenerateLabels
	}

	// stat.ROC wants scores ascending with classes aligned.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return scores[order[i]] < scores[order[j]]
	})
	sortedScores := make([]float64, n)
	sortedClasses := make([]bool, n)
	for i, j := range order {
		sortedScores[i] = scores[j]
		sortedClasses[i] = classes[j]
	}

	// stat.ROC already uses the conventional orientation: rates ascend
	// from (0,0) to (1,1) while thresholds descend from +Inf.
	tpr, fpr, thresh := stat.ROC(nil, sortedScores, sortedClasses, nil)

	curve := roc.Curve{FPR: fpr, TPR: tpr, Thresholds: thresh}
	if err := curve.Validate(); err != nil {
		return roc.Curve{}, err
	}
	return curve, nil
}
