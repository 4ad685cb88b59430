package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/mhcwrap/internal/config"
	"github.com/aretw0/mhcwrap/internal/logging"
	"github.com/aretw0/mhcwrap/internal/metrics"
	"github.com/aretw0/mhcwrap/internal/presentation/tui"
	"github.com/aretw0/mhcwrap/pkg/adapters/process"
	"github.com/aretw0/mhcwrap/pkg/command"
	"github.com/aretw0/mhcwrap/pkg/runner"
	"github.com/spf13/cobra"
)

// app holds the process level collaborators so tests can swap them.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// tty enables the banner and markdown rendering.
	tty bool

	// stdinTTY hands the raw terminal to child processes instead of the prompt reader.
	stdinTTY bool

	// newExecutor builds the executor for a run. Tests replace it with a recorder.
	newExecutor func(cfg config.Config, dryRun bool, stdio childStdio) runner.Executor

	// executableDir is where a relative environment definition file is looked up.
	executableDir func() string
}

func newApp() *app {
	return &app{
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		tty:           tui.IsTerminal(os.Stdout),
		stdinTTY:      tui.IsTerminal(os.Stdin),
		newExecutor:   defaultExecutor,
		executableDir: executableDir,
	}
}

// childStdio are the streams an executed command inherits.
type childStdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func defaultExecutor(cfg config.Config, dryRun bool, stdio childStdio) runner.Executor {
	if dryRun {
		return process.NewDryRun(stdio.out)
	}
	return process.NewRunner(
		process.WithAllowed(cfg.Environment.Conda),
		process.WithStdio(stdio.in, stdio.out, stdio.err),
	)
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	ConfigPath  string
	EnvName     string
	Debug       bool
	DryRun      bool
	MetricsFile string

	// FetchBundles overrides the configured bundles when non-empty.
	FetchBundles []string
}

// session is everything a single command invocation needs.
type session struct {
	runner  *runner.Runner
	logger  *slog.Logger
	metrics *metrics.Recorder
	opts    globalOptions
}

func (a *app) newSession(opts globalOptions) (*session, error) {
	logger := logging.ForDebug(opts.Debug)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.EnvName != "" {
		cfg.Environment.Name = opts.EnvName
	}
	if len(opts.FetchBundles) > 0 {
		cfg.Environment.FetchBundles = opts.FetchBundles
	}
	logger.Debug("config loaded", "path", opts.ConfigPath, "env", cfg.Environment.Name, "conda", cfg.Environment.Conda)

	var builderOpts []command.Option
	if dir := a.definitionDir(cfg.Environment.DefinitionFile); dir != "" {
		builderOpts = append(builderOpts, command.WithBaseDir(dir))
	}

	var handlerOpts []runner.TextHandlerOption
	if a.tty {
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
	}

	handler := runner.NewTextHandler(a.stdin, a.stdout, handlerOpts...)

	// Piped input may already sit in the prompt buffer past the selected line;
	// the child reads through the same buffer so those bytes are not lost.
	// A terminal is handed over directly since a copy loop would block on it.
	stdio := childStdio{in: handler.Reader, out: a.stdout, err: a.stderr}
	if a.stdinTTY {
		stdio.in = a.stdin
	}

	rec := metrics.NewRecorder()
	r := runner.NewRunner(
		command.NewBuilder(cfg.Environment, builderOpts...),
		a.newExecutor(cfg, opts.DryRun, stdio),
		runner.WithHandler(handler),
		runner.WithLogger(logger),
		runner.WithFallbackOutput(cfg.FallbackOutput),
		runner.WithLifecycleHooks(rec.Hooks()),
	)

	return &session{runner: r, logger: logger, metrics: rec, opts: opts}, nil
}

// definitionDir returns the executable's directory when the definition file
// lives next to it; otherwise the file stays relative to the working directory.
func (a *app) definitionDir(file string) string {
	if file == "" || filepath.IsAbs(file) || a.executableDir == nil {
		return ""
	}
	dir := a.executableDir()
	if dir == "" {
		return ""
	}
	if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
		return ""
	}
	return dir
}

// finish applies the exit policy: a command that ran and exited non-zero is
// logged but does not change our own exit status. Failing to start it does.
func (s *session) finish(err error) error {
	if s.opts.MetricsFile != "" {
		if werr := s.metrics.WriteFile(s.opts.MetricsFile); werr != nil {
			s.logger.Error("metrics not written", "path", s.opts.MetricsFile, "error", werr)
		}
	}
	if err == nil {
		return nil
	}
	if code, ran := process.ExitCode(err); ran {
		s.logger.Warn("external command failed", "exit_code", code, "error", err)
		return nil
	}
	return err
}

func (s *session) run(ctx context.Context, fn func(context.Context, *runner.Runner) error) error {
	return s.finish(fn(ctx, s.runner))
}

// readGlobals reads the persistent flags of cmd.
func readGlobals(cmd *cobra.Command) globalOptions {
	flags := cmd.Flags()
	var opts globalOptions
	opts.ConfigPath, _ = flags.GetString("config")
	opts.EnvName, _ = flags.GetString("env-name")
	opts.Debug, _ = flags.GetBool("debug")
	opts.DryRun, _ = flags.GetBool("dry-run")
	opts.MetricsFile, _ = flags.GetString("metrics-file")
	return opts
}

// usageError marks errors caused by how the program was invoked.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func isUsageError(err error) bool {
	var u usageError
	return errors.As(err, &u)
}
