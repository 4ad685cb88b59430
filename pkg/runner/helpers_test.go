package runner

import (
	"bytes"
	"context"
	"strings"

	"github.com/aretw0/mhcwrap/internal/config"
	"github.com/aretw0/mhcwrap/pkg/command"
	"github.com/aretw0/mhcwrap/pkg/domain"
)

// recorder is an Executor that keeps every command it was given.
type recorder struct {
	commands []domain.Command
	err      error
}

func (r *recorder) Execute(_ context.Context, cmd domain.Command) error {
	r.commands = append(r.commands, cmd)
	return r.err
}

func newHandler(input string) (*TextHandler, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewTextHandler(strings.NewReader(input), out), out
}

func newTestRunner(input string, exec Executor, opts ...Option) (*Runner, *bytes.Buffer) {
	h, out := newHandler(input)
	opts = append([]Option{WithHandler(h)}, opts...)
	return NewRunner(command.NewBuilder(config.Default().Environment), exec, opts...), out
}
