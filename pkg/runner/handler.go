package runner

import (
	"context"

	"github.com/aretw0/mhcwrap/pkg/domain"
)

// Executor runs a built command. It decouples the flow from how (or whether)
// a process is actually started.
type Executor interface {
	Execute(ctx context.Context, cmd domain.Command) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, cmd domain.Command) error

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, cmd domain.Command) error {
	return f(ctx, cmd)
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
