// Package config provides the immutable styling and collaborator
// configuration for a plot invocation.
package config

// Config holds persistent defaults for plotting. It is resolved once at
// startup (built-in defaults, then an optional YAML file, then flags) and
// threaded as an explicit value; nothing reads ambient global state.
type Config struct {
	// Engine is the external plotting engine command line. The generated
	// program is written to its standard input.
	Engine []string `yaml:"engine"`

	// Viewer is the external image viewer command line.
	Viewer []string `yaml:"viewer"`

	// Native forces the built-in raster backend instead of the external
	// engine.
	Native bool `yaml:"native"`

	// XLabel, YLabel and Title are the chart's default labels. Empty
	// YLabel and Title are derived from the transform mode at plot time.
	XLabel string `yaml:"xlabel"`
	YLabel string `yaml:"ylabel"`
	Title  string `yaml:"title"`

	// Width and Height are pixel dimensions.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}
