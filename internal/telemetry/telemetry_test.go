package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zaptest"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/config"
)

// saveAndRestoreGlobalProviders snapshots the global OTel providers and
// restores them when the test ends.
func saveAndRestoreGlobalProviders(t *testing.T) {
	t.Helper()
	origTP := otel.GetTracerProvider()
	origMP := otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(origTP)
		otel.SetMeterProvider(origMP)
	})
}

func TestInit_Disabled(t *testing.T) {
	saveAndRestoreGlobalProviders(t)
	before := otel.GetTracerProvider()

	p, err := Init(context.Background(), config.TelemetryConfig{Enabled: false}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Nil(t, p.tp)
	assert.Nil(t, p.mp)
	assert.Equal(t, before, otel.GetTracerProvider(), "global provider untouched")
	assert.NotNil(t, p.Tracer("test"))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestInit_Enabled(t *testing.T) {
	saveAndRestoreGlobalProviders(t)

	cfg := config.TelemetryConfig{
		Enabled:      true,
		OTLPEndpoint: "localhost:4317",
		ServiceName:  "agentsmith-test",
		SampleRate:   0.5,
	}

	p, err := Init(context.Background(), cfg, zaptest.NewLogger(t), WithVersion("1.2.3"))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = p.Shutdown(ctx)
	})

	assert.NotNil(t, p.tp)
	assert.NotNil(t, p.mp)

	_, tpIsSDK := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	_, mpIsSDK := otel.GetMeterProvider().(*sdkmetric.MeterProvider)
	assert.True(t, tpIsSDK)
	assert.True(t, mpIsSDK)
}

func TestInit_WithSpanExporter(t *testing.T) {
	saveAndRestoreGlobalProviders(t)
	exporter := tracetest.NewInMemoryExporter()

	cfg := config.TelemetryConfig{Enabled: true, ServiceName: "agentsmith-test", SampleRate: 1}
	p, err := Init(context.Background(), cfg, nil, WithSpanExporter(exporter))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	assert.Nil(t, p.mp, "no metric exporter with a custom span exporter")

	_, span := p.Tracer("telemetry-test").Start(context.Background(), "work")
	span.End()

	require.NoError(t, p.tp.ForceFlush(context.Background()))
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "work", spans[0].Name)
}

func TestProviders_NilReceiver(t *testing.T) {
	var p *Providers
	assert.NoError(t, p.Shutdown(context.Background()))
	assert.NotNil(t, p.Tracer("nil"))
}
