// Package viewer presents a rendered chart file to the operator.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/convplot/convplot/pkg/render"
)

// ErrMissingOutput is returned when the rendered file is gone before it
// can be displayed. The dispatcher verifies the file after rendering, so
// hitting this indicates an internal-consistency violation.
var ErrMissingOutput = errors.New("rendered output file is missing")

// Viewer displays an image file. rotate requests a 90-degree rotation,
// used for portrait-oriented vector output.
type Viewer interface {
	Show(ctx context.Context, path string, rotate bool) error
}

// ExecViewer shells out to an external image viewer command.
type ExecViewer struct {
	argv []string
}

// NewExecViewer creates a viewer client for the given command line.
func NewExecViewer(argv []string) *ExecViewer {
	return &ExecViewer{argv: argv}
}

// Show invokes the viewer on the file, appending a rotation flag when
// requested. It blocks until the viewer exits.
func (v *ExecViewer) Show(ctx context.Context, path string, rotate bool) error {
	if len(v.argv) == 0 {
		return errors.New("no viewer command configured")
	}

	args := append([]string(nil), v.argv[1:]...)
	if rotate {
		args = append(args, "-rotate", "90")
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, v.argv[0], args...) // #nosec G204 -- viewer command comes from user config
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("viewer %s: %w", v.argv[0], err)
	}
	return nil
}

// Present completes the pipeline for a rendered target: print the path
// when display is suppressed, otherwise hand the file to the viewer.
// Postscript targets get the rotation hint, since those devices render
// portrait-oriented by default.
func Present(ctx context.Context, target render.Target, suppress bool, out io.Writer, v Viewer) error {
	if _, err := os.Stat(target.Path); err != nil {
		return fmt.Errorf("%w: %s", ErrMissingOutput, target.Path)
	}

	if suppress {
		fmt.Fprintln(out, target.Path)
		return nil
	}

	return v.Show(ctx, target.Path, target.Device == render.Postscript)
}
