// Package metrics records command executions with Prometheus collectors and
// exports them in the node_exporter textfile format.
package metrics

import (
	"context"
	"fmt"

	"github.com/aretw0/mhcwrap/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder owns a private registry so nothing leaks into the default one.
type Recorder struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mhcwrap_commands_total",
				Help: "External commands executed, by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mhcwrap_command_duration_seconds",
				Help:    "Wall time of external commands.",
				Buckets: []float64{0.1, 1, 5, 30, 60, 300, 900, 3600},
			},
			[]string{"operation"},
		),
	}
	r.registry.MustRegister(r.commands, r.duration)
	return r
}

// Hooks returns lifecycle hooks that feed the recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommandFinish: func(_ context.Context, ev *domain.CommandEvent) {
			r.Observe(ev)
		},
	}
}

// Observe records a finished command.
func (r *Recorder) Observe(ev *domain.CommandEvent) {
	op := ev.Command.Operation.String()
	outcome := OutcomeSuccess
	if ev.Err != nil {
		outcome = OutcomeFailure
	}
	r.commands.WithLabelValues(op, outcome).Inc()
	r.duration.WithLabelValues(op).Observe(ev.Duration.Seconds())
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteFile writes the current metrics to path atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
