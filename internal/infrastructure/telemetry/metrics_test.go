package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap/zaptest"
)

func newManualMeter(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return reader, provider
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	ctx := context.Background()
	mp, err := NewMeterProvider(ctx, config.TelemetryConfig{Enabled: false}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("test"))
	assert.NoError(t, mp.Shutdown(ctx))
}

func TestNewMeterProvider_Enabled(t *testing.T) {
	ctx := context.Background()
	mp, err := NewMeterProvider(ctx, config.TelemetryConfig{
		Enabled:           true,
		CollectorEndpoint: "localhost:14317",
		ServiceName:       "queueblaze-test",
		Insecure:          true,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.True(t, mp.IsEnabled())

	shutdownCtx, cancel := context.WithCancel(ctx)
	cancel()
	_ = mp.Shutdown(shutdownCtx)
}

func TestCounterAndHistogram(t *testing.T) {
	reader, provider := newManualMeter(t)
	meter := provider.Meter("test")
	ctx := context.Background()

	counter, err := NewCounter(meter, "widgets_total", "Widgets", "{widget}")
	require.NoError(t, err)
	counter.Inc(ctx, AttrOutcome.String("ok"))
	counter.Add(ctx, 2, AttrOutcome.String("ok"))

	hist, err := NewHistogram(meter, HistogramOpts{
		Name:       "widget_seconds",
		Unit:       "s",
		Boundaries: HTTPDurationBuckets,
	})
	require.NoError(t, err)
	hist.RecordDuration(ctx, 250*time.Millisecond)

	metrics := collect(t, reader)

	sum, ok := metrics["widgets_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)
	outcome, _ := sum.DataPoints[0].Attributes.Value(AttrOutcome)
	assert.Equal(t, "ok", outcome.AsString())

	h, ok := metrics["widget_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, h.DataPoints, 1)
	assert.Equal(t, uint64(1), h.DataPoints[0].Count)
	assert.InDelta(t, 0.25, h.DataPoints[0].Sum, 1e-9)
	assert.Equal(t, HTTPDurationBuckets, h.DataPoints[0].Bounds)
}

func TestRegisterDBPoolMetrics(t *testing.T) {
	reader, provider := newManualMeter(t)
	db := openSQLite(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, RegisterDBPoolMetrics(provider.Meter("db"), sqlDB))

	metrics := collect(t, reader)

	gauge, ok := metrics["db_pool_connections"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	states := make(map[string]bool)
	for _, dp := range gauge.DataPoints {
		v, _ := dp.Attributes.Value(AttrDBPoolState)
		states[v.AsString()] = true
	}
	assert.Equal(t, map[string]bool{"in_use": true, "idle": true}, states)

	maxOpen, ok := metrics["db_pool_max_open_connections"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, maxOpen.DataPoints, 1)
	assert.Equal(t, int64(1), maxOpen.DataPoints[0].Value)

	_, ok = metrics["db_pool_wait_total"]
	assert.True(t, ok)
}
