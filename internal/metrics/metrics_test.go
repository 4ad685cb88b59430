package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/mhcwrap/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Hooks(t *testing.T) {
	rec := NewRecorder()
	hooks := rec.Hooks()
	require.NotNil(t, hooks.OnCommandFinish)

	ctx := context.Background()
	hooks.OnCommandFinish(ctx, &domain.CommandEvent{
		Command:  domain.Command{Operation: domain.OpPredictScan},
		Duration: 2 * time.Second,
	})
	hooks.OnCommandFinish(ctx, &domain.CommandEvent{
		Command: domain.Command{Operation: domain.OpPredictScan},
		Err:     errors.New("exit status 1"),
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.commands.WithLabelValues("mhcflurry-predict-scan", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.commands.WithLabelValues("mhcflurry-predict-scan", OutcomeFailure)))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.duration))

	count, err := testutil.GatherAndCount(rec.Gatherer(), "mhcwrap_commands_total", "mhcwrap_command_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "two outcome series plus one histogram")
}

func TestRecorder_WriteFile(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(&domain.CommandEvent{Command: domain.Command{Operation: domain.OpDownloadsInfo}})

	path := filepath.Join(t.TempDir(), "mhcwrap.prom")
	require.NoError(t, rec.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `mhcwrap_commands_total{operation="mhcflurry-downloads info",outcome="success"} 1`)
}
