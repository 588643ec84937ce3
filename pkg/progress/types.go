// Package progress extracts per-run loss sequences from training-progress
// logs.
package progress

import "errors"

// ErrNoProgressData is returned when the input contains no recognizable
// progress lines at all.
var ErrNoProgressData = errors.New("no recognizable progress data in input")

// LossSequence is the ordered loss values of a single training run,
// insertion order matching temporal order within the run. It is never
// mutated after the run's terminal line (or end of input) is reached.
type LossSequence []float64

// Last returns the final (most recent) value of the sequence.
func (s LossSequence) Last() float64 {
	return s[len(s)-1]
}

// RunCollection holds one LossSequence per detected run, in detection
// order. Every sequence in a collection returned by Extract is non-empty.
type RunCollection []LossSequence
