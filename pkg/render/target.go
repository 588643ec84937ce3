// Package render turns a chart spec into an image file through either the
// external plotting engine or the built-in raster backend.
package render

import (
	"os"
	"path/filepath"
	"strings"
)

// DeviceKind is the output device the renderer draws to.
type DeviceKind int

const (
	// PNG is the default raster device.
	PNG DeviceKind = iota

	// JPEG is the raster device for .jpg targets.
	JPEG

	// Postscript is the vector device for .ps/.eps targets.
	Postscript
)

// String returns the device name.
func (d DeviceKind) String() string {
	switch d {
	case JPEG:
		return "jpeg"
	case Postscript:
		return "postscript"
	default:
		return "png"
	}
}

// Target is a resolved output destination.
type Target struct {
	// Path is the output file path.
	Path string

	// Device is inferred from the path's extension.
	Device DeviceKind

	// AutoTemp marks the tool's own default temp path, which is unlinked
	// before each render so repeated runs never collide with a stale
	// file. User-specified paths are never unlinked.
	AutoTemp bool
}

// DefaultTargetName is the file name of the auto-generated output under
// the system temp directory.
const DefaultTargetName = "convplot.png"

// TargetFor resolves a user-specified output path. The device is a pure
// function of the extension: .ps/.eps postscript, .jpg/.jpeg jpeg,
// anything else png.
func TargetFor(path string) Target {
	return Target{Path: path, Device: deviceFor(path)}
}

// DefaultTarget returns the auto-generated temp target used when no
// output path is given.
func DefaultTarget() Target {
	return Target{
		Path:     filepath.Join(os.TempDir(), DefaultTargetName),
		Device:   PNG,
		AutoTemp: true,
	}
}

func deviceFor(path string) DeviceKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ps", ".eps":
		return Postscript
	case ".jpg", ".jpeg":
		return JPEG
	default:
		return PNG
	}
}
