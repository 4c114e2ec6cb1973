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
)

const (
	serviceName    = "careers"
	serviceVersion = "0.1.0"
)

// Config holds exporter settings, read from the environment.
type Config struct {
	Enabled  bool   `env:"CAREERS_TELEMETRY" envDefault:"true"`
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"https://api.honeycomb.io"`
	APIKey   string `env:"HONEYCOMB_CAREERS_API_KEY"`
	Dataset  string `env:"HONEYCOMB_CAREERS_DATASET" envDefault:"careers"`
}

// Headers returns the OTLP headers Honeycomb expects.
// No headers are sent without an API key.
func (c Config) Headers() map[string]string {
	if c.APIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    c.APIKey,
		"x-honeycomb-dataset": c.Dataset,
	}
}

// Exporting reports whether spans are exported, which requires an API key.
func (c Config) Exporting() bool {
	return c.Enabled && c.APIKey != ""
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter.
// Returns a shutdown function that should be called on application exit.
// When nothing is exported a no-op tracer provider is installed instead.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if !cfg.Exporting() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(cfg.Endpoint)}
	if headers := cfg.Headers(); headers != nil {
		opts = append(opts, otlptracehttp.WithHeaders(headers))
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	// We create our own resource without merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
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
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
