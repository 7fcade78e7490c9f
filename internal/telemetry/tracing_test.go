package telemetry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"taste-heaven/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// restoreGlobals puts back the tracer provider and propagator after a test.
func restoreGlobals(t *testing.T) {
	t.Helper()
	tp := otel.GetTracerProvider()
	prop := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(prop)
	})
}

func TestSetup_None(t *testing.T) {
	restoreGlobals(t)
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), config.TracingConfig{Exporter: config.TraceExporterNone}, "taste-heaven", nil)

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
	assert.IsType(t, propagation.TraceContext{}, otel.GetTextMapPropagator())
}

func TestSetup_StdoutExportsSpans(t *testing.T) {
	restoreGlobals(t)
	var buf bytes.Buffer

	shutdown, err := Setup(context.Background(), config.TracingConfig{Exporter: config.TraceExporterStdout, SampleRatio: 1}, "taste-heaven", &buf)
	require.NoError(t, err)
	assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())

	_, span := otel.Tracer("test").Start(context.Background(), "orders.create")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	out := buf.String()
	assert.Contains(t, out, `"Name":"orders.create"`)
	assert.Contains(t, out, "taste-heaven")
}

func TestSetup_ZeroRatioSamplesNothing(t *testing.T) {
	restoreGlobals(t)
	var buf bytes.Buffer

	shutdown, err := Setup(context.Background(), config.TracingConfig{Exporter: config.TraceExporterStdout, SampleRatio: 0}, "taste-heaven", &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "orders.create")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Empty(t, buf.String())
}

func TestSetup_OTLPConnectsLazily(t *testing.T) {
	restoreGlobals(t)

	shutdown, err := Setup(context.Background(), config.TracingConfig{Exporter: config.TraceExporterOTLP, OTLPEndpoint: "127.0.0.1:4317", SampleRatio: 1}, "taste-heaven", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestSetup_UnknownExporter(t *testing.T) {
	restoreGlobals(t)

	_, err := Setup(context.Background(), config.TracingConfig{Exporter: "jaeger"}, "taste-heaven", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown trace exporter")
}
