package render

import (
	"strings"
	"testing"

	"github.com/convplot/convplot/pkg/chart"
	"github.com/convplot/convplot/pkg/progress"
)

func sampleSpec() *chart.Spec {
	runs := progress.RunCollection{
		{0.5, 0.3, 0.2},
		{0.9, 0.1},
		{0.7},
	}
	return chart.Build(runs, chart.Options{
		Title:       "mean loss",
		XLabel:      "progress iteration",
		YLabel:      "mean loss",
		Width:       800,
		Height:      600,
		LegendTitle: "loss",
	})
}

func TestProgram_Structure(t *testing.T) {
	program := Program(sampleSpec(), TargetFor("out.png"), false)

	// Exactly one device-open, one plot, one lines per extra series,
	// one legend, one device close.
	counts := map[string]int{
		"png(":    1,
		"plot(":   1,
		"lines(":  2,
		"legend(": 1,
		"grid()":  1,
		"dev.off": 1,
	}
	for marker, want := range counts {
		if got := strings.Count(program, marker); got != want {
			t.Errorf("Program contains %d of %q, want %d\n%s", got, marker, want, program)
		}
	}
}

func TestProgram_FirstSeriesDeclaresAxes(t *testing.T) {
	program := Program(sampleSpec(), TargetFor("out.png"), false)

	if !strings.Contains(program, `xlab="progress iteration"`) {
		t.Errorf("Program missing xlab:\n%s", program)
	}
	if !strings.Contains(program, `ylab="mean loss"`) {
		t.Errorf("Program missing ylab:\n%s", program)
	}
	if !strings.Contains(program, `main="mean loss"`) {
		t.Errorf("Program missing title:\n%s", program)
	}
	// Axes are declared once, on the plot statement only.
	if strings.Count(program, "xlab=") != 1 {
		t.Errorf("Axes declared more than once:\n%s", program)
	}
}

func TestProgram_SeriesDataAndColors(t *testing.T) {
	program := Program(sampleSpec(), TargetFor("out.png"), false)

	if !strings.Contains(program, "c(0.5, 0.3, 0.2)") {
		t.Errorf("Program missing first series data:\n%s", program)
	}
	if !strings.Contains(program, `lines(c(0.9, 0.1), type="o", col="red", pch=19)`) {
		t.Errorf("Program missing second series line:\n%s", program)
	}
	if !strings.Contains(program, `col="green3"`) {
		t.Errorf("Program missing third series color:\n%s", program)
	}
}

func TestProgram_Legend(t *testing.T) {
	program := Program(sampleSpec(), TargetFor("out.png"), false)

	if !strings.Contains(program, `legend("topright", inset=0.02, title="loss", legend=c("0.2000", "0.1000", "0.7000"), col=c("black", "red", "green3"), pch=19)`) {
		t.Errorf("Legend statement wrong:\n%s", program)
	}
}

func TestProgram_Devices(t *testing.T) {
	spec := sampleSpec()

	png := Program(spec, TargetFor("out.png"), false)
	if !strings.Contains(png, `png(filename="out.png", width=800, height=600)`) {
		t.Errorf("PNG device-open wrong:\n%s", png)
	}

	cairo := Program(spec, TargetFor("out.png"), true)
	if !strings.Contains(cairo, `type="cairo"`) {
		t.Errorf("Enhanced PNG device-open missing cairo type:\n%s", cairo)
	}

	jpg := Program(spec, TargetFor("out.jpg"), false)
	if !strings.Contains(jpg, `jpeg(filename="out.jpg", width=800, height=600)`) {
		t.Errorf("JPEG device-open wrong:\n%s", jpg)
	}

	ps := Program(spec, TargetFor("out.ps"), false)
	if !strings.Contains(ps, `postscript(file="out.ps", width=8.33, height=6.25, horizontal=FALSE, paper="special")`) {
		t.Errorf("Postscript device-open wrong:\n%s", ps)
	}
	// The cairo flag only affects PNG targets.
	if strings.Contains(ps, "cairo") {
		t.Errorf("Postscript program mentions cairo:\n%s", ps)
	}
}
