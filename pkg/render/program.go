package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/convplot/convplot/pkg/chart"
)

// legendInset keeps the legend box slightly inside the plot region.
const legendInset = 0.02

// Program generates the complete plotting program for one chart: a
// device-open statement sized to the spec, a plot statement for the first
// series, a line statement per subsequent series, the legend, and the
// device close. cairoPNG selects the enhanced PNG backend when the probe
// found it available; it only affects PNG targets.
func Program(spec *chart.Spec, target Target, cairoPNG bool) string {
	var b strings.Builder

	writeDeviceOpen(&b, spec, target, cairoPNG)

	// First series declares the axes; the rest overlay.
	for i, s := range spec.Series {
		if i == 0 {
			fmt.Fprintf(&b, "plot(%s, type=\"o\", col=%q, pch=%d, xlab=%q, ylab=%q, main=%q)\n",
				vector(s.Values), chart.ColorAt(s.ColorIndex).Name, s.Marker,
				spec.XLabel, spec.YLabel, spec.Title)
			b.WriteString("grid()\n")
			continue
		}
		fmt.Fprintf(&b, "lines(%s, type=\"o\", col=%q, pch=%d)\n",
			vector(s.Values), chart.ColorAt(s.ColorIndex).Name, s.Marker)
	}

	writeLegend(&b, spec)

	b.WriteString("dev.off()\n")
	return b.String()
}

func writeDeviceOpen(b *strings.Builder, spec *chart.Spec, target Target, cairoPNG bool) {
	switch target.Device {
	case Postscript:
		// Vector devices are sized in inches at 96 dpi.
		fmt.Fprintf(b, "postscript(file=%q, width=%s, height=%s, horizontal=FALSE, paper=\"special\")\n",
			target.Path, inches(spec.Width), inches(spec.Height))
	case JPEG:
		fmt.Fprintf(b, "jpeg(filename=%q, width=%d, height=%d)\n",
			target.Path, spec.Width, spec.Height)
	default:
		if cairoPNG {
			fmt.Fprintf(b, "png(filename=%q, width=%d, height=%d, type=\"cairo\")\n",
				target.Path, spec.Width, spec.Height)
		} else {
			fmt.Fprintf(b, "png(filename=%q, width=%d, height=%d)\n",
				target.Path, spec.Width, spec.Height)
		}
	}
}

func writeLegend(b *strings.Builder, spec *chart.Spec) {
	labels := make([]string, len(spec.Legend))
	colors := make([]string, len(spec.Legend))
	for i, e := range spec.Legend {
		labels[i] = strconv.Quote(e.Label)
		colors[i] = strconv.Quote(chart.ColorAt(e.ColorIndex).Name)
	}

	fmt.Fprintf(b, "legend(\"topright\", inset=%g, title=%q, legend=c(%s), col=c(%s), pch=%d)\n",
		legendInset, spec.LegendTitle,
		strings.Join(labels, ", "), strings.Join(colors, ", "),
		chart.MarkerFilledCircle)
}

// vector formats values as an engine vector literal: c(0.5, 0.3, 0.2).
func vector(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "c(" + strings.Join(parts, ", ") + ")"
}

func inches(pixels int) string {
	return strconv.FormatFloat(float64(pixels)/96.0, 'f', 2, 64)
}
