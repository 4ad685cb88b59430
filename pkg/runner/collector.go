package runner

import (
	"context"
	"log/slog"

	"github.com/aretw0/mhcwrap/internal/config"
	"github.com/aretw0/mhcwrap/pkg/domain"
	"github.com/aretw0/mhcwrap/pkg/validate"
)

const (
	sequencePrompt = "Sequence to be tested: "
	allelePrompt   = "Allele to be tested: "
	outputPrompt   = "Location of output file: "
)

// Collector gathers the inputs of a predict-scan run.
type Collector struct {
	handler  *TextHandler
	fallback string
	logger   *slog.Logger
}

// NewCollector creates a collector. An empty fallback uses config.DefaultFallbackOutput.
func NewCollector(h *TextHandler, fallback string, logger *slog.Logger) *Collector {
	if fallback == "" {
		fallback = config.DefaultFallbackOutput
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Collector{handler: h, fallback: fallback, logger: logger}
}

// Collect asks for a sequence until it is valid, then an allele until it is
// valid, then the output path once.
func (c *Collector) Collect(ctx context.Context) (domain.PredictRequest, error) {
	var req domain.PredictRequest
	var err error

	if req.Sequence, err = c.until(ctx, sequencePrompt, validate.Sequence); err != nil {
		return domain.PredictRequest{}, err
	}
	if req.Allele, err = c.until(ctx, allelePrompt, validate.Allele); err != nil {
		return domain.PredictRequest{}, err
	}

	output, err := c.handler.Prompt(ctx, outputPrompt)
	if err != nil {
		return domain.PredictRequest{}, err
	}
	req.Output = c.ResolveOutput(output)
	return req, nil
}

// ResolveOutput swaps in the fallback when the parent directory of output is missing.
func (c *Collector) ResolveOutput(output string) string {
	resolved, substituted := validate.OutputPath(output, c.fallback)
	if substituted {
		c.logger.Warn("output directory missing", "requested", output, "using", resolved)
		c.handler.Print("No such directory exists, defaulting to '%s'", resolved)
	}
	return resolved
}

func (c *Collector) until(ctx context.Context, label string, valid func(string) bool) (string, error) {
	for {
		value, err := c.handler.Prompt(ctx, label)
		if err != nil {
			return "", err
		}
		if valid(value) {
			return value, nil
		}
	}
}
