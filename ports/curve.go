package ports

import "fairviz/domain/roc"

// CurveComputer computes a ROC curve from binary labels and classifier
// scores. Label value 1 is the positive class.
type CurveComputer interface {
	// Curve returns the FPR/TPR/threshold sequences over every distinct
	// threshold implied by the scores. Implementations fail when the
	// labels contain no positive or no negative example.
	Curve(labels, scores []float64) (roc.Curve, error)
}
