// ConvPlot - Training Convergence Plotter
//
// ConvPlot turns textual training-progress logs into a single overlaid
// convergence chart. Feed it one or more run logs (or concatenate them on
// stdin) and it plots every run's loss curve on shared axes.
package main

import (
	"os"

	"github.com/convplot/convplot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
