package runner

import (
	"log/slog"

	"github.com/aretw0/mhcwrap/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithHandler configures the terminal IO handler.
func WithHandler(handler *TextHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithFallbackOutput sets the path used when the requested output directory is missing.
func WithFallbackOutput(path string) Option {
	return func(r *Runner) {
		r.Fallback = path
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = hooks
	}
}
