// Package otel wires OpenTelemetry tracing for dashboard commands.
package otel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// EnvEndpoint names the OTLP/HTTP collector URL.
	EnvEndpoint = "OPTIONS_DASHBOARD_OTEL_ENDPOINT"
	// EnvEnabled turns tracing off when set to "false".
	EnvEnabled = "OPTIONS_DASHBOARD_OTEL_ENABLED"
)

// Shutdown flushes and stops whatever Setup installed.
type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// collectorEndpoint returns the configured collector URL, or "" when tracing
// is off.
func collectorEndpoint() string {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(EnvEnabled)), "false") {
		return ""
	}
	return strings.TrimSpace(os.Getenv(EnvEndpoint))
}

// Setup registers a global tracer provider exporting to the collector named
// by OPTIONS_DASHBOARD_OTEL_ENDPOINT. Without an endpoint, or with
// OPTIONS_DASHBOARD_OTEL_ENABLED=false, nothing is registered and the
// returned Shutdown does nothing.
func Setup(ctx context.Context, serviceName string) (Shutdown, error) {
	endpoint := collectorEndpoint()
	if endpoint == "" {
		return noopShutdown, nil
	}

	tp, err := newProvider(ctx, endpoint, serviceName)
	if err != nil {
		return noopShutdown, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

func newProvider(ctx context.Context, endpoint, serviceName string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}
