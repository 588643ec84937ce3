package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/convplot/convplot/pkg/chart"
	"github.com/convplot/convplot/pkg/progress"
)

// fakeEngine captures submitted programs and optionally simulates the
// engine writing the output file or failing.
type fakeEngine struct {
	programs   []string
	writeFiles []string
	err        error
}

func (e *fakeEngine) Submit(ctx context.Context, program string) error {
	e.programs = append(e.programs, program)
	if e.err != nil {
		return e.err
	}
	for _, path := range e.writeFiles {
		if err := os.WriteFile(path, []byte("image"), 0644); err != nil {
			return err
		}
	}
	return nil
}

func specForDispatch() *chart.Spec {
	return chart.Build(progress.RunCollection{{0.5, 0.2}}, chart.Options{
		Width: 800, Height: 600, LegendTitle: "loss",
	})
}

func TestDispatch_SubmitsGeneratedProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	engine := &fakeEngine{writeFiles: []string{path}}
	d := NewDispatcher(&EngineBackend{Engine: engine})

	if err := d.Dispatch(context.Background(), specForDispatch(), TargetFor(path)); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if len(engine.programs) != 1 {
		t.Fatalf("Engine received %d programs, want 1", len(engine.programs))
	}
	if !strings.Contains(engine.programs[0], "plot(") {
		t.Errorf("Submitted program has no plot statement:\n%s", engine.programs[0])
	}
}

func TestDispatch_RefusesExistingUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("precious"), 0644); err != nil {
		t.Fatal(err)
	}

	engine := &fakeEngine{writeFiles: []string{path}}
	d := NewDispatcher(&EngineBackend{Engine: engine})

	err := d.Dispatch(context.Background(), specForDispatch(), TargetFor(path))
	if !errors.Is(err, ErrOutputExists) {
		t.Fatalf("Dispatch() error = %v, want ErrOutputExists", err)
	}

	// The engine must not have been invoked, and the file is untouched.
	if len(engine.programs) != 0 {
		t.Error("Engine was invoked despite pre-existing output")
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "precious" {
		t.Errorf("Pre-existing file was modified: %q, %v", data, err)
	}
}

func TestDispatch_TempTargetIsIdempotent(t *testing.T) {
	// A stale default temp file is unlinked, so repeated runs succeed.
	path := filepath.Join(t.TempDir(), DefaultTargetName)
	target := Target{Path: path, Device: PNG, AutoTemp: true}

	engine := &fakeEngine{writeFiles: []string{path}}
	d := NewDispatcher(&EngineBackend{Engine: engine})

	for i := 0; i < 2; i++ {
		if err := d.Dispatch(context.Background(), specForDispatch(), target); err != nil {
			t.Fatalf("Dispatch() run %d error = %v", i+1, err)
		}
	}

	if len(engine.programs) != 2 {
		t.Errorf("Engine received %d programs, want 2", len(engine.programs))
	}
}

func TestDispatch_EngineFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	engine := &fakeEngine{err: ErrBackend}
	d := NewDispatcher(&EngineBackend{Engine: engine})

	err := d.Dispatch(context.Background(), specForDispatch(), TargetFor(path))
	if !errors.Is(err, ErrBackend) {
		t.Errorf("Dispatch() error = %v, want ErrBackend", err)
	}
}

func TestDispatch_NoOutputProduced(t *testing.T) {
	// A backend claiming success without writing the file is an error.
	path := filepath.Join(t.TempDir(), "out.png")
	engine := &fakeEngine{} // succeeds but writes nothing
	d := NewDispatcher(&EngineBackend{Engine: engine})

	err := d.Dispatch(context.Background(), specForDispatch(), TargetFor(path))
	if !errors.Is(err, ErrBackend) {
		t.Errorf("Dispatch() error = %v, want ErrBackend", err)
	}
}

func TestEngineBackend_CairoFlagReachesProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	engine := &fakeEngine{writeFiles: []string{path}}
	d := NewDispatcher(&EngineBackend{Engine: engine, CairoPNG: true})

	if err := d.Dispatch(context.Background(), specForDispatch(), TargetFor(path)); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if !strings.Contains(engine.programs[0], `type="cairo"`) {
		t.Errorf("Program missing cairo device:\n%s", engine.programs[0])
	}
}

func TestCairoAvailable(t *testing.T) {
	if !CairoAvailable(context.Background(), &fakeEngine{}) {
		t.Error("CairoAvailable() = false for a succeeding engine")
	}
	if CairoAvailable(context.Background(), &fakeEngine{err: ErrBackend}) {
		t.Error("CairoAvailable() = true for a failing engine")
	}
}

func TestExecEngine_MissingBinary(t *testing.T) {
	engine := NewExecEngine([]string{"/no/such/engine-binary"})

	if engine.Available() {
		t.Error("Available() = true for missing binary")
	}

	err := engine.Submit(context.Background(), "plot(c(1))\n")
	if !errors.Is(err, ErrBackend) {
		t.Errorf("Submit() error = %v, want ErrBackend", err)
	}
}
