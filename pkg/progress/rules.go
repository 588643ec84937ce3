package progress

import (
	"regexp"
	"strconv"
)

// Kind classifies an input line.
type Kind int

const (
	// Unrecognized lines carry no progress data and are skipped.
	Unrecognized Kind = iota

	// Iteration lines start with a decimal number: the loss reported for
	// one training iteration. No other field on the line is consumed.
	Iteration

	// Summary lines report the run's average loss and terminate the run.
	Summary
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Iteration:
		return "iteration"
	case Summary:
		return "summary"
	default:
		return "unrecognized"
	}
}

// Line is the classification of one input line. Value is only meaningful
// for Iteration and Summary kinds.
type Line struct {
	Kind  Kind
	Value float64
}

// The two recognized line shapes, checked in order. Everything else is
// ignored.
var (
	iterationPattern = regexp.MustCompile(`^([0-9.]+)`)
	summaryPattern   = regexp.MustCompile(`^average loss\s*=\s*([0-9.]+)`)
)

// Classify matches a raw line against the recognized shapes and extracts
// the loss value. A leading match that does not parse as a float (e.g. a
// line starting "1.2.3" or bare dots) is treated as unrecognized rather
// than an error.
func Classify(line string) Line {
	if m := iterationPattern.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Line{Kind: Iteration, Value: v}
		}
		return Line{Kind: Unrecognized}
	}

	if m := summaryPattern.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Line{Kind: Summary, Value: v}
		}
		return Line{Kind: Unrecognized}
	}

	return Line{Kind: Unrecognized}
}
