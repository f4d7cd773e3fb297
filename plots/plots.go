// Package plots builds chart specifications for fairness analysis of
// classifier scores across demographic groups. The builders are pure:
// they reshape aligned slices into figure traces and delegate both the
// ROC math and the rendering to external collaborators.
package plots

import (
	"fairviz/adapters/roccurve"
	"fairviz/domain/core"
	"fairviz/domain/figure"
	"fairviz/domain/groups"
	"fairviz/ports"
)

// GroupBoxPlots builds a box-plot figure with one trace per distinct
// value in attr. A trace's points are the (groups[i], scores[i]) pairs
// at the indices its attribute value selects; the layout requests
// grouped rendering so same-category boxes sit side by side. Empty
// inputs yield a figure with an empty trace list. Trace order follows
// map iteration over the distinct values and is not deterministic.
func GroupBoxPlots(scores []float64, grps, attr []string) (figure.Figure, error) {
	if len(grps) != len(scores) {
		return figure.Figure{}, core.NewLengthMismatchError("groups", len(scores), len(grps))
	}
	if len(attr) != len(scores) {
		return figure.Figure{}, core.NewLengthMismatchError("attr", len(scores), len(attr))
	}

	part := groups.New(attr)
	data := make([]figure.Trace, 0, len(part))
	for a, idx := range part {
		data = append(data, figure.BoxTrace{
			Name: a,
			X:    groups.SelectStrings(grps, idx),
			Y:    groups.SelectFloats(scores, idx),
		})
	}

	return figure.Figure{
		Data:   data,
		Layout: figure.Layout{BoxMode: figure.BoxModeGroup},
	}, nil
}

// GroupROCCurves builds a ROC figure with one line trace per distinct
// value in attr, plotting false positive rate against true positive
// rate for that group's (labels, scores) subset. Labels are binary with
// 1 the positive class. A nil CurveComputer defaults to the gonum
// adapter. Errors from the curve computation, including a group whose
// labels are all one class, propagate untranslated. Empty inputs yield
// a figure with an empty trace list.
func GroupROCCurves(labels, scores []float64, attr []string, cc ports.CurveComputer) (figure.Figure, error) {
	if len(labels) != len(scores) {
		return figure.Figure{}, core.NewLengthMismatchError("labels", len(scores), len(labels))
	}
	if len(attr) != len(scores) {
		return figure.Figure{}, core.NewLengthMismatchError("attr", len(scores), len(attr))
	}
	if cc == nil {
		cc = roccurve.NewGonum()
	}

	part := groups.New(attr)
	data := make([]figure.Trace, 0, len(part))
	for a, idx := range part {
		curve, err := cc.Curve(groups.SelectFloats(labels, idx), groups.SelectFloats(scores, idx))
		if err != nil {
			return figure.Figure{}, err
		}
		data = append(data, figure.ScatterTrace{Name: a, X: curve.FPR, Y: curve.TPR})
	}

	return figure.Figure{
		Data: data,
		Layout: figure.Layout{
			XAxis: figure.Axis{Title: "False Positive Rate"},
			YAxis: figure.Axis{Title: "True Positive Rate"},
		},
	}, nil
}
