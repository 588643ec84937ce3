// Package cli provides the command-line interface for ConvPlot.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command. The plot pipeline runs
// directly at the root; inspect and version are subcommands.
func NewRootCommand() *cobra.Command {
	opts := &PlotOptions{}

	rootCmd := &cobra.Command{
		Use:   "convplot [flags] [logfile|glob ...]",
		Short: "Plot training convergence from progress logs",
		Long: `ConvPlot converts textual training-progress logs into a single overlaid
convergence chart, one line series per run.

It recognizes two line shapes:
  - iteration lines starting with a decimal loss value ("0.532 ...")
  - run summaries ("average loss = 0.2"), which terminate a run

Several logs concatenated on one stream segment into several runs; a
truncated log without a trailing summary still plots as a partial run.
With no file arguments, input is read from stdin.

The chart is rendered through an external statistical plotting engine
(default: R on PATH), falling back to a built-in raster backend when the
engine is unavailable. Output format follows the file extension:
.ps/.eps postscript, .jpg jpeg, anything else PNG.

Exit codes:
  0 - Chart produced
  2 - No progress data, output path conflict, or renderer failure`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addPlotFlags(rootCmd, opts)

	// Add subcommands
	rootCmd.AddCommand(NewInspectCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
