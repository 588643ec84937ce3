package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/convplot/convplot/pkg/chart"
	"github.com/convplot/convplot/pkg/config"
	"github.com/convplot/convplot/pkg/parser"
	"github.com/convplot/convplot/pkg/progress"
	"github.com/convplot/convplot/pkg/render"
	"github.com/convplot/convplot/pkg/transform"
	"github.com/convplot/convplot/pkg/viewer"
)

// PlotOptions holds command-line options for the plot pipeline.
type PlotOptions struct {
	Sqrt    bool
	Percent bool

	Output string
	XLabel string
	YLabel string
	Title  string
	Width  int
	Height int

	NoDisplay  bool
	Native     bool
	ConfigPath string
}

func addPlotFlags(cmd *cobra.Command, opts *PlotOptions) {
	cmd.Flags().BoolVarP(&opts.Sqrt, "sqrt", "q", false, "Plot sqrt(loss), for squared-error metrics")
	cmd.Flags().BoolVarP(&opts.Percent, "percent", "Q", false, "Plot (e^sqrt(loss)-1)*100, for log-squared metrics")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (default: temp PNG; format by extension)")
	cmd.Flags().StringVarP(&opts.XLabel, "xlabel", "x", config.DefaultXLabel, "X-axis label")
	cmd.Flags().StringVarP(&opts.YLabel, "ylabel", "y", "", "Y-axis label (default \"mean loss\" or \"mean %loss\")")
	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Chart title (default: the Y-axis label)")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", config.DefaultWidth, "Chart width in pixels")
	// -h is taken by help, so height gets the capital shorthand.
	cmd.Flags().IntVarP(&opts.Height, "height", "H", config.DefaultHeight, "Chart height in pixels")
	cmd.Flags().BoolVarP(&opts.NoDisplay, "no-display", "d", false, "Print the output path instead of opening the viewer")
	cmd.Flags().BoolVar(&opts.Native, "native", false, "Use the built-in raster backend instead of the external engine")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file with persistent defaults (YAML)")

	cmd.MarkFlagsMutuallyExclusive("sqrt", "percent")
}

func runPlot(cmd *cobra.Command, args []string, opts *PlotOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(ctx, opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	mode := transform.ModeFor(opts.Sqrt, opts.Percent)

	source, err := newSource(cmd, args)
	if err != nil {
		return err
	}
	defer source.Close()

	runs, err := progress.Extract(ctx, source, mode)
	if err != nil {
		return err
	}

	spec := chart.Build(runs, resolveStyle(cmd, opts, cfg, mode))

	target := render.DefaultTarget()
	if opts.Output != "" {
		target = render.TargetFor(opts.Output)
	}

	dispatcher := render.NewDispatcher(selectBackend(ctx, cfg, opts.Native || cfg.Native, target))
	if err := dispatcher.Dispatch(ctx, spec, target); err != nil {
		return err
	}

	return viewer.Present(ctx, target, opts.NoDisplay, cmd.OutOrStdout(), viewer.NewExecViewer(cfg.Viewer))
}

// newSource reads the given files (with glob expansion) as one
// concatenated stream, or stdin when no arguments are given.
func newSource(cmd *cobra.Command, args []string) (parser.LineSource, error) {
	if len(args) == 0 {
		return parser.NewReaderSource(cmd.InOrStdin()), nil
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return nil, fmt.Errorf("expanding input patterns: %w", err)
	}
	return parser.NewFileSource(files), nil
}

// resolveStyle merges styling sources: an explicit flag wins over the
// config file, which wins over mode-derived defaults.
func resolveStyle(cmd *cobra.Command, opts *PlotOptions, cfg *config.Config, mode transform.Mode) chart.Options {
	flags := cmd.Flags()

	style := chart.Options{
		XLabel:      opts.XLabel,
		Width:       opts.Width,
		Height:      opts.Height,
		LegendTitle: mode.MetricLabel(),
	}

	if !flags.Changed("xlabel") && cfg.XLabel != "" {
		style.XLabel = cfg.XLabel
	}
	if !flags.Changed("width") && cfg.Width > 0 {
		style.Width = cfg.Width
	}
	if !flags.Changed("height") && cfg.Height > 0 {
		style.Height = cfg.Height
	}

	style.YLabel = opts.YLabel
	if style.YLabel == "" {
		style.YLabel = cfg.YLabel
	}
	if style.YLabel == "" {
		style.YLabel = "mean " + mode.MetricLabel()
	}

	style.Title = opts.Title
	if style.Title == "" {
		style.Title = cfg.Title
	}
	if style.Title == "" {
		// Default title is derived from the Y label.
		style.Title = style.YLabel
	}

	return style
}

// selectBackend picks the rendering backend: the external engine unless
// the native backend is forced or the engine binary is missing and the
// target is raster. The enhanced-PNG capability is probed once here and
// injected, never queried during rendering.
func selectBackend(ctx context.Context, cfg *config.Config, forceNative bool, target render.Target) render.Backend {
	if forceNative {
		return &render.NativeBackend{}
	}

	engine := render.NewExecEngine(cfg.Engine)
	if !engine.Available() && target.Device != render.Postscript {
		return &render.NativeBackend{}
	}

	backend := &render.EngineBackend{Engine: engine}
	if target.Device == render.PNG {
		backend.CairoPNG = render.CairoAvailable(ctx, engine)
	}
	return backend
}
