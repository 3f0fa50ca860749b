package telemetry

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/alexanderramin/focusflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExporter_DisabledIsAnError(t *testing.T) {
	_, err := NewExporter(context.Background(), Config{Enabled: false, Endpoint: "localhost:4317"})
	assert.Error(t, err)

	_, err = NewExporter(context.Background(), Config{Enabled: true})
	assert.Error(t, err)
}

func TestExporter_RecordSession(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	e, err := newExporter(provider)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close(ctx) })

	require.NoError(t, e.RecordSession(ctx, *testutil.NewTestSession("a", 25, testutil.WithTags("work"))))
	require.NoError(t, e.RecordSession(ctx, *testutil.NewTestSession("b", 10, testutil.WithTags("work"))))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	sums := map[string]int64{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
			for _, dp := range sum.DataPoints {
				sums[m.Name] += dp.Value
			}
		}
	}
	assert.Equal(t, int64(2), sums["focusflow_sessions_total"])
	assert.Equal(t, int64(35), sums["focusflow_focus_minutes_total"])
}

func TestNoOpRecorder(t *testing.T) {
	var r Recorder = NoOpRecorder{}
	assert.NoError(t, r.RecordSession(context.Background(), *testutil.NewTestSession("a", 1)))
	assert.NoError(t, r.Close(context.Background()))
}
