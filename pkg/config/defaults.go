package config

// Default dimensions and labels.
const (
	DefaultXLabel = "progress iteration"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: []string{"R", "--vanilla", "--no-echo"},
		Viewer: []string{"display"},
		XLabel: DefaultXLabel,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}
