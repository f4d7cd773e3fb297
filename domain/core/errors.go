package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input shape errors
	ErrLengthMismatch = errors.New("input slices have mismatched lengths")

	// Label errors
	ErrNonBinaryLabel   = errors.New("label value is not binary")
	ErrDegenerateLabels = errors.New("labels contain no positive or no negative examples")

	// Rendering errors
	ErrUnsupportedTrace = errors.New("unsupported trace kind")
	ErrMixedTraceKinds  = errors.New("figure mixes trace kinds")
)

// Error constructors with context
func NewLengthMismatchError(name string, want, got int) error {
	return fmt.Errorf("%w: %s has %d values, want %d", ErrLengthMismatch, name, got, want)
}

func NewNonBinaryLabelError(index int, value float64) error {
	return fmt.Errorf("%w: labels[%d] = %g, want 0 or 1", ErrNonBinaryLabel, index, value)
}

func NewUnsupportedTraceError(renderer, kind string) error {
	return fmt.Errorf("%w: %s renderer cannot draw %q traces", ErrUnsupportedTrace, renderer, kind)
}

// Error checking helpers
func IsLengthMismatchError(err error) bool {
	return errors.Is(err, ErrLengthMismatch)
}

func IsDegenerateLabelsError(err error) bool {
	return errors.Is(err, ErrDegenerateLabels)
}
