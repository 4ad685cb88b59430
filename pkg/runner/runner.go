package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/mhcwrap/pkg/command"
	"github.com/aretw0/mhcwrap/pkg/domain"
	"github.com/aretw0/mhcwrap/pkg/validate"
)

// Runner drives one pass of the wrapper flow and hands the resulting command
// to its Executor.
type Runner struct {
	// Handler is the terminal IO strategy.
	Handler *TextHandler

	// Builder renders operations into commands.
	Builder *command.Builder

	// Executor runs the built command.
	Executor Executor

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Hooks are fired around command execution.
	Hooks domain.LifecycleHooks

	// Fallback replaces output paths whose directory does not exist.
	Fallback string

	now func() time.Time
}

type state int

const (
	stateShowMenu state = iota
	stateAwaitSelection
	stateCollectInputs
	stateBuildCommand
	stateExecute
	stateDone
)

var stateNames = [...]string{
	stateShowMenu:       "show_menu",
	stateAwaitSelection: "await_selection",
	stateCollectInputs:  "collect_inputs",
	stateBuildCommand:   "build_command",
	stateExecute:        "execute",
	stateDone:           "done",
}

func (s state) String() string { return stateNames[s] }

var operationNotices = map[domain.Operation]string{
	domain.OpPredictScan:    "Running mhcflurry_predict_scan...",
	domain.OpDownloadsInfo:  "Showing status of mhcflurry-downloads model data...",
	domain.OpDownloadsFetch: "Fetching default mhcflurry-downloads data...",
	domain.OpSetupEnv:       "Setting up the run environment...",
	domain.OpTeardownEnv:    "Removing run environment...",
}

// NewRunner creates a Runner reading Stdin and writing Stdout unless
// WithHandler says otherwise.
func NewRunner(builder *command.Builder, executor Executor, opts ...Option) *Runner {
	r := &Runner{
		Builder:  builder,
		Executor: executor,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}
	return r
}

// Run shows the menu and executes the selected operation. It returns after
// a single command; there is no loop back to the menu.
func (r *Runner) Run(ctx context.Context) error {
	return r.walk(ctx, stateShowMenu, 0)
}

// RunOperation skips the menu and enters the flow for op.
func (r *Runner) RunOperation(ctx context.Context, op domain.Operation) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownOperation, int(op))
	}
	r.notice(op)
	next := stateBuildCommand
	if op.NeedsInputs() {
		next = stateCollectInputs
	}
	return r.walk(ctx, next, op)
}

// RunPredict builds and executes predict-scan for values given up front.
// Invalid values are rejected instead of prompted for again.
func (r *Runner) RunPredict(ctx context.Context, req domain.PredictRequest) error {
	if !validate.Sequence(req.Sequence) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSequence, req.Sequence)
	}
	if !validate.Allele(req.Allele) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAllele, req.Allele)
	}
	req.Output = r.collector().ResolveOutput(req.Output)

	cmd := r.Builder.PredictScan(req)
	return r.execute(ctx, cmd)
}

func (r *Runner) walk(ctx context.Context, st state, op domain.Operation) error {
	var (
		req domain.PredictRequest
		cmd domain.Command
		err error
	)

	for st != stateDone {
		r.Logger.Debug("state", "state", st.String(), "operation", op.String())

		switch st {
		case stateShowMenu:
			NewMenu(r.Handler).Show()
			st = stateAwaitSelection

		case stateAwaitSelection:
			if op, err = NewMenu(r.Handler).Select(ctx); err != nil {
				return err
			}
			r.notice(op)
			st = stateBuildCommand
			if op.NeedsInputs() {
				st = stateCollectInputs
			}

		case stateCollectInputs:
			if req, err = r.collector().Collect(ctx); err != nil {
				return err
			}
			st = stateBuildCommand

		case stateBuildCommand:
			if cmd, err = r.Builder.Build(op, req); err != nil {
				return err
			}
			st = stateExecute

		case stateExecute:
			err = r.execute(ctx, cmd)
			st = stateDone
		}
	}
	return err
}

func (r *Runner) execute(ctx context.Context, cmd domain.Command) error {
	r.Logger.Info("executing command", "operation", cmd.Operation.String(), "command", cmd.String())

	start := r.now()
	if r.Hooks.OnCommandStart != nil {
		r.Hooks.OnCommandStart(ctx, &domain.CommandEvent{
			Timestamp: start,
			Type:      domain.EventCommandStart,
			Command:   cmd,
		})
	}

	err := r.Executor.Execute(ctx, cmd)

	finished := r.now()
	if r.Hooks.OnCommandFinish != nil {
		r.Hooks.OnCommandFinish(ctx, &domain.CommandEvent{
			Timestamp: finished,
			Type:      domain.EventCommandFinish,
			Command:   cmd,
			Duration:  finished.Sub(start),
			Err:       err,
		})
	}

	if err != nil {
		r.Logger.Debug("command returned error", "operation", cmd.Operation.String(), "error", err)
	}
	return err
}

func (r *Runner) notice(op domain.Operation) {
	if msg, ok := operationNotices[op]; ok {
		r.Handler.Print("\n%s", msg)
	}
}

func (r *Runner) collector() *Collector {
	return NewCollector(r.Handler, r.Fallback, r.Logger)
}
