// Package command turns operations into external conda invocations.
//
// Commands are built as argument lists. "Activating" the isolated runtime is
// expressed as `conda run -n <env>` so no shell ever re-parses user input.
// The builder does not validate sequences or alleles; callers do that first.
package command

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/mhcwrap/internal/config"
	"github.com/aretw0/mhcwrap/pkg/domain"
)

// Builder renders commands for a single named environment.
type Builder struct {
	env     config.Environment
	baseDir string
}

// Option configures a Builder.
type Option func(*Builder)

// WithBaseDir sets the directory a relative environment definition file is
// resolved against. By default it is left relative to the working directory.
func WithBaseDir(dir string) Option {
	return func(b *Builder) {
		b.baseDir = dir
	}
}

// NewBuilder creates a Builder for env.
func NewBuilder(env config.Environment, opts ...Option) *Builder {
	b := &Builder{env: env}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders the command for op. req is only read for OpPredictScan.
func (b *Builder) Build(op domain.Operation, req domain.PredictRequest) (domain.Command, error) {
	switch op {
	case domain.OpPredictScan:
		return b.PredictScan(req), nil
	case domain.OpDownloadsInfo:
		return b.DownloadsInfo(), nil
	case domain.OpDownloadsFetch:
		return b.DownloadsFetch(), nil
	case domain.OpSetupEnv:
		return b.Setup(), nil
	case domain.OpTeardownEnv:
		return b.Teardown(), nil
	}
	return domain.Command{}, fmt.Errorf("%w: %d", domain.ErrUnknownOperation, int(op))
}

// Setup creates the environment from its declarative definition file.
func (b *Builder) Setup() domain.Command {
	return b.conda(domain.OpSetupEnv, "env", "create", "-f", b.definitionFile())
}

// Teardown removes the named environment and everything installed in it.
func (b *Builder) Teardown() domain.Command {
	return b.conda(domain.OpTeardownEnv, "remove", "--name", b.env.Name, "--all", "--yes")
}

// DownloadsInfo reports the status of the locally cached model data.
func (b *Builder) DownloadsInfo() domain.Command {
	return b.inEnv(domain.OpDownloadsInfo, b.env.DownloadsTool, "info")
}

// DownloadsFetch fetches model data. Without configured bundles the tool picks
// its defaults (models_class1_presentation, data_curated, models_class1).
func (b *Builder) DownloadsFetch() domain.Command {
	args := append([]string{"fetch"}, b.env.FetchBundles...)
	return b.inEnv(domain.OpDownloadsFetch, b.env.DownloadsTool, args...)
}

// PredictScan runs the prediction tool over req.
func (b *Builder) PredictScan(req domain.PredictRequest) domain.Command {
	return b.inEnv(domain.OpPredictScan, b.env.PredictTool,
		"--sequences", req.Sequence,
		"--allele", req.Allele,
		"--out", req.Output,
	)
}

func (b *Builder) inEnv(op domain.Operation, tool string, args ...string) domain.Command {
	full := make([]string, 0, len(args)+5)
	full = append(full, "run", "--no-capture-output", "-n", b.env.Name, tool)
	full = append(full, args...)
	return b.conda(op, full...)
}

func (b *Builder) conda(op domain.Operation, args ...string) domain.Command {
	return domain.Command{
		Operation: op,
		Path:      b.env.Conda,
		Args:      args,
	}
}

func (b *Builder) definitionFile() string {
	file := b.env.DefinitionFile
	if b.baseDir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(b.baseDir, file)
}
