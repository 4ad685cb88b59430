package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/aretw0/mhcwrap/pkg/domain"
)

// ErrNotAllowed is returned when a command's executable is not on the allow-list.
var ErrNotAllowed = errors.New("executable not allowed")

// Runner executes commands as local processes attached to the caller's terminal.
// It follows a Strict Registry pattern for security (Allow-Listing): only
// executables registered with Allow may be started.
type Runner struct {
	allowed map[string]struct{}
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithAllowed adds executables to the allow-list.
func WithAllowed(paths ...string) RunnerOption {
	return func(r *Runner) {
		r.Allow(paths...)
	}
}

// WithStdio replaces the process standard streams. Nil values keep the defaults.
func WithStdio(in io.Reader, out, errOut io.Writer) RunnerOption {
	return func(r *Runner) {
		if in != nil {
			r.stdin = in
		}
		if out != nil {
			r.stdout = out
		}
		if errOut != nil {
			r.stderr = errOut
		}
	}
}

// NewRunner creates a new Process Runner wired to os.Stdin/Stdout/Stderr.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		allowed: make(map[string]struct{}),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Allow adds trusted executables to the allow-list.
func (r *Runner) Allow(paths ...string) {
	for _, p := range paths {
		r.allowed[p] = struct{}{}
	}
}

// Execute runs cmd synchronously and blocks until it exits.
// There is no timeout; the context only cancels a run the caller gives up on.
// A non-zero exit is returned as an error wrapping *exec.ExitError.
func (r *Runner) Execute(ctx context.Context, cmd domain.Command) error {
	if cmd.Path == "" {
		return domain.ErrEmptyCommand
	}
	if _, ok := r.allowed[cmd.Path]; !ok {
		return fmt.Errorf("%w: %s", ErrNotAllowed, cmd.Path)
	}

	proc := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	proc.Stdin = r.stdin
	proc.Stdout = r.stdout
	proc.Stderr = r.stderr

	if err := proc.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Operation, err)
	}
	return nil
}

// ExitCode extracts the exit status carried by err.
// The boolean is false when the process never ran to completion (e.g. not found).
func ExitCode(err error) (int, bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return -1, false
}
