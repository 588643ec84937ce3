package progress

import (
	"context"
	"io"

	"github.com/convplot/convplot/pkg/parser"
)

// SurveyResult summarizes how the input's lines classify, for diagnosing
// inputs that yield no chart.
type SurveyResult struct {
	// TotalLines is the number of input lines examined.
	TotalLines int

	// IterationLines counts lines matching the iteration shape.
	IterationLines int

	// SummaryLines counts lines matching the run-summary shape.
	SummaryLines int

	// UnrecognizedLines counts lines matching neither shape.
	UnrecognizedLines int

	// Runs is the number of runs Extract would detect on this input.
	Runs int

	// SampleIteration and SampleSummary hold the first line seen of each
	// shape, when any matched.
	SampleIteration string
	SampleSummary   string
}

// Survey consumes the line source to completion and reports per-shape
// line counts without building sequences or applying a transform.
func Survey(ctx context.Context, source parser.LineSource) (*SurveyResult, error) {
	result := &SurveyResult{}

	// Iteration lines seen since the last summary; a trailing group
	// counts as one more run, mirroring Extract.
	pending := 0

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		result.TotalLines++

		switch Classify(line).Kind {
		case Iteration:
			result.IterationLines++
			pending++
			if result.SampleIteration == "" {
				result.SampleIteration = line
			}
		case Summary:
			result.SummaryLines++
			result.Runs++
			pending = 0
			if result.SampleSummary == "" {
				result.SampleSummary = line
			}
		default:
			result.UnrecognizedLines++
		}
	}

	if pending > 0 {
		result.Runs++
	}

	return result, nil
}
