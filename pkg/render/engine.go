package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrBackend is returned when the rendering backend cannot be invoked,
// exits abnormally, or produces no output file.
var ErrBackend = errors.New("render backend failed")

// Engine submits a plotting program to the external engine. The program
// is written wholesale to the engine's input; there is no interaction.
type Engine interface {
	Submit(ctx context.Context, program string) error
}

// ExecEngine runs the external plotting engine as a subprocess and feeds
// it the program on standard input.
type ExecEngine struct {
	argv []string
}

// NewExecEngine creates an engine client for the given command line.
func NewExecEngine(argv []string) *ExecEngine {
	return &ExecEngine{argv: argv}
}

// Available reports whether the engine binary can be found on PATH.
func (e *ExecEngine) Available() bool {
	if len(e.argv) == 0 {
		return false
	}
	_, err := exec.LookPath(e.argv[0])
	return err == nil
}

// Submit writes the program to the engine's stdin and waits for it to
// exit. The write pipe is closed on every path so a partially written
// program is never left buffered; a hung engine hangs the caller (no
// timeout is enforced beyond ctx).
func (e *ExecEngine) Submit(ctx context.Context, program string) error {
	if len(e.argv) == 0 {
		return fmt.Errorf("%w: no engine command configured", ErrBackend)
	}

	cmd := exec.CommandContext(ctx, e.argv[0], e.argv[1:]...) // #nosec G204 -- engine command comes from user config
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: opening engine input: %v", ErrBackend, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: starting %s: %v", ErrBackend, e.argv[0], err)
	}

	_, werr := io.WriteString(stdin, program)
	// Close unconditionally: the engine only runs the program once its
	// input channel is closed and flushed.
	cerr := stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBackend, e.argv[0], err)
	}
	if werr != nil {
		return fmt.Errorf("%w: writing program to %s: %v", ErrBackend, e.argv[0], werr)
	}
	if cerr != nil {
		return fmt.Errorf("%w: closing engine input: %v", ErrBackend, cerr)
	}

	return nil
}

// cairoProbeProgram exits zero only when the engine's enhanced (cairo)
// PNG backend is compiled in.
const cairoProbeProgram = `quit(status = if (isTRUE(capabilities("cairo")[[1]])) 0 else 1)` + "\n"

// CairoAvailable probes the engine once for the enhanced PNG backend.
// A missing or failing engine simply reports false; the fallback to the
// baseline PNG device is a capability decision, not an error path.
func CairoAvailable(ctx context.Context, engine Engine) bool {
	return engine.Submit(ctx, cairoProbeProgram) == nil
}
