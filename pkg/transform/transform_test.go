package transform

import (
	"errors"
	"math"
	"testing"
)

func TestApply_Identity(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1, 42.5} {
		got, err := Apply(v, Identity)
		if err != nil {
			t.Fatalf("Apply(%g, Identity) error = %v", v, err)
		}
		if got != v {
			t.Errorf("Apply(%g, Identity) = %g, want %g", v, got, v)
		}
	}
}

func TestApply_SquareRoot(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1, 4, 42.5} {
		got, err := Apply(v, SquareRoot)
		if err != nil {
			t.Fatalf("Apply(%g, SquareRoot) error = %v", v, err)
		}
		if want := math.Sqrt(v); got != want {
			t.Errorf("Apply(%g, SquareRoot) = %g, want %g", v, got, want)
		}
	}
}

func TestApply_LogSquaredToPercent(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1, 4} {
		got, err := Apply(v, LogSquaredToPercent)
		if err != nil {
			t.Fatalf("Apply(%g, LogSquaredToPercent) error = %v", v, err)
		}
		want := (math.Exp(math.Sqrt(v)) - 1.0) * 100.0
		if got != want {
			t.Errorf("Apply(%g, LogSquaredToPercent) = %g, want %g", v, got, want)
		}
	}

	// Zero loss maps to zero percent error.
	got, err := Apply(0, LogSquaredToPercent)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Apply(0, LogSquaredToPercent) = %g, want 0", got)
	}
}

func TestApply_NegativeLoss(t *testing.T) {
	for _, mode := range []Mode{Identity, SquareRoot, LogSquaredToPercent} {
		_, err := Apply(-0.1, mode)
		if !errors.Is(err, ErrNegativeLoss) {
			t.Errorf("Apply(-0.1, %v) error = %v, want ErrNegativeLoss", mode, err)
		}
	}
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		sqrt, percent bool
		want          Mode
	}{
		{false, false, Identity},
		{true, false, SquareRoot},
		{false, true, LogSquaredToPercent},
		// Percent takes priority when both are set.
		{true, true, LogSquaredToPercent},
	}

	for _, tt := range tests {
		if got := ModeFor(tt.sqrt, tt.percent); got != tt.want {
			t.Errorf("ModeFor(%v, %v) = %v, want %v", tt.sqrt, tt.percent, got, tt.want)
		}
	}
}

func TestMetricLabel(t *testing.T) {
	if got := Identity.MetricLabel(); got != "loss" {
		t.Errorf("Identity.MetricLabel() = %q, want \"loss\"", got)
	}
	if got := SquareRoot.MetricLabel(); got != "loss" {
		t.Errorf("SquareRoot.MetricLabel() = %q, want \"loss\"", got)
	}
	if got := LogSquaredToPercent.MetricLabel(); got != "%loss" {
		t.Errorf("LogSquaredToPercent.MetricLabel() = %q, want \"%%loss\"", got)
	}
}
