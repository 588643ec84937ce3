package render

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/convplot/convplot/pkg/chart"
)

// NativeBackend renders the chart spec in-process instead of shelling
// out to the external engine. It covers the raster devices only; vector
// postscript output still requires the engine.
type NativeBackend struct {
	// JPEGQuality is the encoder quality for .jpg targets (default 90).
	JPEGQuality int
}

// Render draws the spec and writes the target file.
func (b *NativeBackend) Render(ctx context.Context, spec *chart.Spec, target Target) error {
	if target.Device == Postscript {
		return fmt.Errorf("%w: postscript output requires the external engine", ErrBackend)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	ch := gochart.Chart{
		Title:  spec.Title,
		Width:  spec.Width,
		Height: spec.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{Name: spec.XLabel},
		YAxis: gochart.YAxis{Name: spec.YLabel},
	}

	for i, s := range spec.Series {
		ch.Series = append(ch.Series, nativeSeries(s, spec.Legend[i].Label))
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return fmt.Errorf("%w: native render: %v", ErrBackend, err)
	}

	data := buf.Bytes()
	if target.Device == JPEG {
		transcoded, err := b.toJPEG(data)
		if err != nil {
			return err
		}
		data = transcoded
	}

	if err := os.WriteFile(target.Path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrBackend, target.Path, err)
	}

	return nil
}

// nativeSeries converts one spec series. The legend label doubles as the
// series name so the built-in legend shows final values, matching the
// engine output.
func nativeSeries(s chart.Series, label string) gochart.Series {
	pc := chart.ColorAt(s.ColorIndex)
	col := drawing.Color{R: pc.R, G: pc.G, B: pc.B, A: 255}

	xs := make([]float64, len(s.Values))
	for i := range s.Values {
		xs[i] = float64(i + 1)
	}
	ys := append([]float64(nil), s.Values...)

	// Pad to at least two X values for go-chart
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	return gochart.ContinuousSeries{
		Name:    label,
		XValues: xs,
		YValues: ys,
		Style: gochart.Style{
			StrokeColor: col,
			StrokeWidth: 1.5,
			DotColor:    col,
			DotWidth:    3,
		},
	}
}

func (b *NativeBackend) toJPEG(pngData []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding rendered image: %v", ErrBackend, err)
	}

	quality := b.JPEGQuality
	if quality == 0 {
		quality = 90
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("%w: encoding jpeg: %v", ErrBackend, err)
	}
	return out.Bytes(), nil
}
