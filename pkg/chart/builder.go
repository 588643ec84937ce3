package chart

import (
	"strconv"

	"github.com/convplot/convplot/pkg/progress"
)

// Options carries the resolved styling configuration for one chart.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int

	// LegendTitle is the metric name shown above the legend entries.
	LegendTitle string
}

// Build assembles the rendering request for a run collection: one series
// per run with a cyclically-assigned palette color and a fixed marker,
// and one legend entry per series labelled with the series' final value.
// The collection must be non-empty (guaranteed by progress.Extract).
func Build(runs progress.RunCollection, opts Options) *Spec {
	spec := &Spec{
		Title:       opts.Title,
		XLabel:      opts.XLabel,
		YLabel:      opts.YLabel,
		Width:       opts.Width,
		Height:      opts.Height,
		LegendTitle: opts.LegendTitle,
		Series:      make([]Series, 0, len(runs)),
		Legend:      make([]LegendEntry, 0, len(runs)),
	}

	for i, run := range runs {
		colorIndex := i % len(Palette)

		spec.Series = append(spec.Series, Series{
			Values:     run,
			ColorIndex: colorIndex,
			Marker:     MarkerFilledCircle,
		})

		spec.Legend = append(spec.Legend, LegendEntry{
			Label:      strconv.FormatFloat(run.Last(), 'f', 4, 64),
			ColorIndex: colorIndex,
			Marker:     MarkerFilledCircle,
		})
	}

	return spec
}
