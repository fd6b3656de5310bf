package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/slyt3/fyyur/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const version = "1.0.0"

var tracerProvider *sdktrace.TracerProvider

// SetupTracing installs a global tracer provider exporting over OTLP gRPC.
// It returns nil, nil when tracing is disabled.
func SetupTracing(cfg *config.Config) (*sdktrace.TracerProvider, error) {
	if !cfg.Telemetry.Enabled || cfg.Telemetry.OtlpEndpoint == "" {
		return nil, nil
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.App.Name),
			semconv.ServiceVersionKey.String(version),
			attribute.String("environment", cfg.App.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(collectorAddr(cfg.Telemetry.OtlpEndpoint)),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(samplerFor(cfg.Telemetry.SampleRatio)),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tracerProvider, nil
}

// collectorAddr strips the scheme; the gRPC exporter wants host:port.
func collectorAddr(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimPrefix(endpoint, "https://")
}

// samplerFor samples everything for ratios outside (0, 1).
func samplerFor(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.TraceIDRatioBased(ratio)
}

// Shutdown flushes and stops the tracer provider, if one was started.
func Shutdown(ctx context.Context) error {
	if tracerProvider != nil {
		return tracerProvider.Shutdown(ctx)
	}
	return nil
}
