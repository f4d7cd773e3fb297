package roccurve

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"fairviz/domain/core"
)

func TestGonum_PerfectClassifier(t *testing.T) {
	cc := NewGonum()

	// Scores fully separate the classes, so the curve must pass through
	// (0, 1) on its way from (0, 0) to (1, 1).
	curve, err := cc.Curve([]float64{0, 0, 1, 1}, []float64{0.1, 0.2, 0.8, 0.9})
	if err != nil {
		t.Fatalf("Curve failed: %v", err)
	}
	if err := curve.Validate(); err != nil {
		t.Fatalf("invalid curve: %v", err)
	}

	if !reflect.DeepEqual(curve.FPR, []float64{0, 0, 0, 0.5, 1}) {
		t.Errorf("FPR = %v, want [0 0 0 0.5 1]", curve.FPR)
	}
	if !reflect.DeepEqual(curve.TPR, []float64{0, 0.5, 1, 1, 1}) {
		t.Errorf("TPR = %v, want [0 0.5 1 1 1]", curve.TPR)
	}
	if len(curve.Thresholds) != curve.Len() {
		t.Errorf("got %d thresholds for %d points", len(curve.Thresholds), curve.Len())
	}
	// Thresholds descend from +Inf (the everything-negative cutoff) down
	// to the lowest score.
	if !math.IsInf(curve.Thresholds[0], 1) {
		t.Errorf("Thresholds[0] = %g, want +Inf", curve.Thresholds[0])
	}
	for i := 1; i < len(curve.Thresholds); i++ {
		if curve.Thresholds[i] > curve.Thresholds[i-1] {
			t.Fatalf("thresholds not descending at %d: %v", i, curve.Thresholds)
		}
	}
}

func TestGonum_UnsortedInput(t *testing.T) {
	cc := NewGonum()

	// Scores arrive in caller order; the adapter owns the sorting.
	curve, err := cc.Curve([]float64{0, 1, 0, 1}, []float64{0.1, 0.9, 0.2, 0.8})
	if err != nil {
		t.Fatalf("Curve failed: %v", err)
	}
	if err := curve.Validate(); err != nil {
		t.Fatalf("invalid curve: %v", err)
	}

	n := curve.Len()
	if curve.FPR[0] != 0 || curve.TPR[0] != 0 {
		t.Errorf("curve starts at (%g, %g), want (0, 0)", curve.FPR[0], curve.TPR[0])
	}
	if curve.FPR[n-1] != 1 || curve.TPR[n-1] != 1 {
		t.Errorf("curve ends at (%g, %g), want (1, 1)", curve.FPR[n-1], curve.TPR[n-1])
	}
}

func TestGonum_TiedScores(t *testing.T) {
	cc := NewGonum()

	curve, err := cc.Curve([]float64{1, 0, 0, 1}, []float64{0.5, 0.5, 0.3, 0.7})
	if err != nil {
		t.Fatalf("Curve failed: %v", err)
	}
	if err := curve.Validate(); err != nil {
		t.Fatalf("invalid curve: %v", err)
	}
	// Three distinct scores collapse the tied pair into one threshold.
	if curve.Len() != 4 {
		t.Errorf("got %d operating points, want 4", curve.Len())
	}
}

func TestGonum_DegenerateLabels(t *testing.T) {
	cc := NewGonum()

	cases := map[string][]float64{
		"all positive": {1, 1, 1},
		"all negative": {0, 0, 0},
		"empty":        {},
	}
	for name, labels := range cases {
		scores := make([]float64, len(labels))
		if _, err := cc.Curve(labels, scores); !errors.Is(err, core.ErrDegenerateLabels) {
			t.Errorf("%s: err = %v, want ErrDegenerateLabels", name, err)
		}
	}
}

func TestGonum_NonBinaryLabel(t *testing.T) {
	cc := NewGonum()

	_, err := cc.Curve([]float64{0, 2, 1}, []float64{0.1, 0.2, 0.3})
	if !errors.Is(err, core.ErrNonBinaryLabel) {
		t.Errorf("err = %v, want ErrNonBinaryLabel", err)
	}
}

func TestGonum_LengthMismatch(t *testing.T) {
	cc := NewGonum()

	_, err := cc.Curve([]float64{0, 1}, []float64{0.5})
	if !core.IsLengthMismatchError(err) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestGonum_DoesNotMutateInput(t *testing.T) {
	cc := NewGonum()

	labels := []float64{0, 1, 0, 1}
	scores := []float64{0.9, 0.1, 0.8, 0.2}
	if _, err := cc.Curve(labels, scores); err != nil {
		t.Fatalf("Curve failed: %v", err)
	}
	if !reflect.DeepEqual(scores, []float64{0.9, 0.1, 0.8, 0.2}) {
		t.Errorf("scores mutated: %v", scores)
	}
	if !reflect.DeepEqual(labels, []float64{0, 1, 0, 1}) {
		t.Errorf("labels mutated: %v", labels)
	}
}
