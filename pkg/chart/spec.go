// Package chart builds a backend-agnostic rendering request from a
// collection of loss sequences.
package chart

// MarkerFilledCircle is the point marker used for every series (the
// plotting engine's filled-circle code).
const MarkerFilledCircle = 19

// Series is one plotted loss sequence with its assigned style.
type Series struct {
	// Values are the transformed loss values, in temporal order.
	Values []float64

	// ColorIndex indexes into Palette.
	ColorIndex int

	// Marker is the point marker code.
	Marker int
}

// LegendEntry labels one series in the chart legend with its final value.
type LegendEntry struct {
	// Label is the series' last value formatted to 4 decimal places.
	Label string

	// ColorIndex and Marker match the series' style.
	ColorIndex int
	Marker     int
}

// Spec is a complete rendering request: axes, dimensions, styled series
// and legend. It is built once from a RunCollection and consumed exactly
// once by the render dispatcher; no backend-specific detail appears here.
type Spec struct {
	Title  string
	XLabel string
	YLabel string

	// Width and Height are pixel dimensions.
	Width  int
	Height int

	// Series in run-detection order. The first series defines the axes;
	// the rest overlay onto them.
	Series []Series

	// LegendTitle is the metric name ("loss" or "%loss").
	LegendTitle string

	// Legend entries in series order.
	Legend []LegendEntry
}
