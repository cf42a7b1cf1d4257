// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/samdwyer/dungeonsofdoom/internal/config"
)

const (
	serviceName    = "dungeonsofdoom"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Setup initializes OpenTelemetry with an OTLP HTTP exporter pointed at Honeycomb.
// Standard OTEL_* environment variables still override the endpoint.
//
// When telemetry is disabled, or no API key is configured, a no-op provider is
// installed and the returned shutdown does nothing.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (shutdown func(context.Context) error, err error) {
	if !cfg.Enabled || cfg.APIKey == "" {
		Disable()
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(honeycombEndpoint),
		otlptracehttp.WithHeaders(map[string]string{
			"x-honeycomb-team":    cfg.APIKey,
			"x-honeycomb-dataset": cfg.Dataset,
		}),
	)
	if err != nil {
		return nil, err
	}

	// Own resource rather than merging with resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
// Before Setup runs this is backed by the global default provider, which
// records nothing, so tests and tools can open spans freely.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("dungeonsofdoom/" + name)
}

// Disable installs a no-op tracer provider.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
