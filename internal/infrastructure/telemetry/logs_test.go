package telemetry

import (
	"context"
	"testing"

	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerProvider_Disabled(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{"telemetry off", config.TelemetryConfig{Enabled: false, LogsEnabled: true}},
		{"logs off", config.TelemetryConfig{Enabled: true, LogsEnabled: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lp, err := NewLoggerProvider(ctx, tt.cfg, zaptest.NewLogger(t))
			require.NoError(t, err)
			assert.False(t, lp.IsEnabled())
			assert.NoError(t, lp.Shutdown(ctx))

			core := NewZapOTELCore(lp, zapcore.InfoLevel)
			assert.False(t, core.Enabled(zapcore.ErrorLevel))
		})
	}
}

func TestNewLoggerProvider_Enabled(t *testing.T) {
	ctx := context.Background()
	lp, err := NewLoggerProvider(ctx, config.TelemetryConfig{
		Enabled:           true,
		LogsEnabled:       true,
		CollectorEndpoint: "localhost:14317",
		ServiceName:       "queueblaze-test",
		Insecure:          true,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.True(t, lp.IsEnabled())

	core := NewZapOTELCore(lp, zapcore.WarnLevel)
	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))

	shutdownCtx, cancel := context.WithCancel(ctx)
	cancel()
	_ = lp.Shutdown(shutdownCtx)
}

func TestLevelFilterCore(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(newLevelFilterCore(inner, zapcore.WarnLevel)).With(zap.String("component", "intake"))

	log.Info("dropped")
	log.Warn("kept")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Message)
	assert.Equal(t, "intake", entries[0].ContextMap()["component"])
}

func TestBridgeLogger(t *testing.T) {
	baseCore, baseLogs := observer.New(zapcore.InfoLevel)
	otelCore, otelLogs := observer.New(zapcore.InfoLevel)

	log := BridgeLogger(zap.New(baseCore), newLevelFilterCore(otelCore, zapcore.ErrorLevel))
	log.Info("info only")
	log.Error("both")

	assert.Equal(t, 2, baseLogs.Len())
	require.Equal(t, 1, otelLogs.Len())
	assert.Equal(t, "both", otelLogs.All()[0].Message)
}
