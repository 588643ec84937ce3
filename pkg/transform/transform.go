// Package transform provides the loss transforms applied to every value
// extracted from a progress log.
package transform

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeLoss is returned when a transform is applied to a negative
// loss value. Loss metrics are squared-error quantities and must be >= 0.
var ErrNegativeLoss = errors.New("negative loss value")

// Mode selects the transform applied to raw loss values.
// Exactly one mode is active per invocation; it is chosen once at startup
// and applied uniformly during parsing.
type Mode int

const (
	// Identity plots raw loss values unchanged.
	Identity Mode = iota

	// SquareRoot plots the square root of the raw value, for logs that
	// report a squared-error loss.
	SquareRoot

	// LogSquaredToPercent plots (e^sqrt(raw) - 1) * 100, mapping a
	// log-squared loss to a percentage error.
	LogSquaredToPercent
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Identity:
		return "identity"
	case SquareRoot:
		return "sqrt"
	case LogSquaredToPercent:
		return "percent"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MetricLabel returns the display name of the plotted metric under this
// mode: "%loss" for percent mode, "loss" otherwise. It drives the default
// Y-axis label and the chart legend title.
func (m Mode) MetricLabel() string {
	if m == LogSquaredToPercent {
		return "%loss"
	}
	return "loss"
}

// ModeFor maps the sqrt/percent option pair to a Mode. Percent takes
// priority when both are set; callers are expected to reject that
// combination up front.
func ModeFor(sqrt, percent bool) Mode {
	switch {
	case percent:
		return LogSquaredToPercent
	case sqrt:
		return SquareRoot
	default:
		return Identity
	}
}

// Apply transforms a raw loss value under the given mode.
// Returns ErrNegativeLoss for raw < 0.
func Apply(raw float64, m Mode) (float64, error) {
	if raw < 0 {
		return 0, fmt.Errorf("%w: %g", ErrNegativeLoss, raw)
	}

	switch m {
	case SquareRoot:
		return math.Sqrt(raw), nil
	case LogSquaredToPercent:
		return (math.Exp(math.Sqrt(raw)) - 1.0) * 100.0, nil
	default:
		return raw, nil
	}
}
