package render

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/convplot/convplot/pkg/chart"
)

// ErrOutputExists is returned instead of clobbering a pre-existing
// user-specified output file.
var ErrOutputExists = errors.New("output file already exists")

// Backend renders a chart spec to a target file.
type Backend interface {
	Render(ctx context.Context, spec *chart.Spec, target Target) error
}

// EngineBackend renders by generating a plotting program and submitting
// it to the external engine.
type EngineBackend struct {
	// Engine receives the generated program.
	Engine Engine

	// CairoPNG selects the enhanced PNG device. Probe it once with
	// CairoAvailable and inject the result; it is not queried ad hoc.
	CairoPNG bool
}

// Render generates the program for the spec and submits it.
func (b *EngineBackend) Render(ctx context.Context, spec *chart.Spec, target Target) error {
	return b.Engine.Submit(ctx, Program(spec, target, b.CairoPNG))
}

// Dispatcher guards the output path and drives a backend.
type Dispatcher struct {
	backend Backend
}

// NewDispatcher creates a dispatcher over the given backend.
func NewDispatcher(backend Backend) *Dispatcher {
	return &Dispatcher{backend: backend}
}

// Dispatch renders the spec to the target. The default temp target is
// unlinked first so repeated runs never collide with a stale file; a
// pre-existing user-specified target is refused with ErrOutputExists.
// A backend that returns success without producing the file is reported
// as ErrBackend.
func (d *Dispatcher) Dispatch(ctx context.Context, spec *chart.Spec, target Target) error {
	if target.AutoTemp {
		if err := os.Remove(target.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing stale output %s: %w", target.Path, err)
		}
	} else if _, err := os.Stat(target.Path); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, target.Path)
	}

	if err := d.backend.Render(ctx, spec, target); err != nil {
		return err
	}

	if _, err := os.Stat(target.Path); err != nil {
		return fmt.Errorf("%w: renderer produced no output at %s", ErrBackend, target.Path)
	}

	return nil
}
