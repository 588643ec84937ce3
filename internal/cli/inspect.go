package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/convplot/convplot/pkg/progress"
)

// NewInspectCommand creates the inspect command, which reports how the
// input's lines classify without plotting. Useful for working out why an
// input yields "no recognizable progress data".
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [logfile|glob ...]",
		Short: "Report which input lines carry progress data",
		Long: `Inspect classifies every input line against the recognized shapes
(iteration loss, run summary) and reports counts, sample lines, and the
number of runs a plot would contain. No chart is produced.`,
		Args: cobra.ArbitraryArgs,
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	source, err := newSource(cmd, args)
	if err != nil {
		return err
	}
	defer source.Close()

	result, err := progress.Survey(ctx, source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Lines examined: %d\n", result.TotalLines)
	fmt.Fprintf(out, "  iteration lines: %d", result.IterationLines)
	if result.SampleIteration != "" {
		fmt.Fprintf(out, "  (e.g. %q)", result.SampleIteration)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  run summaries:   %d", result.SummaryLines)
	if result.SampleSummary != "" {
		fmt.Fprintf(out, "  (e.g. %q)", result.SampleSummary)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  unrecognized:    %d\n", result.UnrecognizedLines)
	fmt.Fprintf(out, "Runs detected: %d\n", result.Runs)

	if result.Runs == 0 {
		fmt.Fprintln(out, color.New(color.FgYellow).Sprint("No plottable progress data in this input."))
	}

	return nil
}
