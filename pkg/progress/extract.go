package progress

import (
	"context"
	"fmt"
	"io"

	"github.com/convplot/convplot/pkg/parser"
	"github.com/convplot/convplot/pkg/transform"
)

// Extract consumes the line source to completion and returns one
// LossSequence per detected run, with the given transform applied to
// every extracted value.
//
// A summary line is the run boundary: its value is appended and the
// accumulated sequence is flushed onto the collection. A trailing run
// without a summary line (truncated log) is still captured. Unrecognized
// lines are skipped silently; several logs concatenated on one stream
// segment into several runs.
//
// Returns ErrNoProgressData if no run was detected at all.
func Extract(ctx context.Context, source parser.LineSource, mode transform.Mode) (RunCollection, error) {
	var runs RunCollection
	var acc LossSequence

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		cl := Classify(line)
		switch cl.Kind {
		case Iteration:
			v, err := transform.Apply(cl.Value, mode)
			if err != nil {
				return nil, fmt.Errorf("transforming iteration loss: %w", err)
			}
			acc = append(acc, v)

		case Summary:
			v, err := transform.Apply(cl.Value, mode)
			if err != nil {
				return nil, fmt.Errorf("transforming run summary loss: %w", err)
			}
			acc = append(acc, v)
			runs = append(runs, acc)
			acc = nil
		}
	}

	// Input ended without a trailing summary line: keep the partial run.
	if len(acc) > 0 {
		runs = append(runs, acc)
	}

	if len(runs) == 0 {
		return nil, ErrNoProgressData
	}

	return runs, nil
}
