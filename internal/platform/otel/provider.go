// Package otel wires OpenTelemetry tracing for registry processes.
package otel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/louisbranch/assetregistry/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Exporter names accepted by ASSET_REGISTRY_OTEL_EXPORTER.
const (
	ExporterOTLPHTTP = "otlphttp"
	ExporterOTLPGRPC = "otlpgrpc"
	ExporterStdout   = "stdout"
)

type setupEnv struct {
	Enabled  string `env:"OTEL_ENABLED"`
	Endpoint string `env:"OTEL_ENDPOINT"`
	Exporter string `env:"OTEL_EXPORTER" envDefault:"otlphttp"`
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when ASSET_REGISTRY_OTEL_ENABLED is "false", or no
// endpoint is configured for an OTLP exporter, Setup returns a no-op
// shutdown function and no global provider is registered. The stdout
// exporter needs no endpoint.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	var cfg setupEnv
	if err := config.ParseEnv(&cfg); err != nil {
		return noop, err
	}
	if strings.EqualFold(cfg.Enabled, "false") {
		return noop, nil
	}

	exporterName := strings.ToLower(strings.TrimSpace(cfg.Exporter))
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" && exporterName != ExporterStdout {
		return noop, nil
	}

	exporter, err := newExporter(ctx, exporterName, endpoint)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, name, endpoint string) (sdktrace.SpanExporter, error) {
	switch name {
	case "", ExporterOTLPHTTP:
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	case ExporterOTLPGRPC:
		return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpointURL(endpoint))
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
	default:
		return nil, fmt.Errorf("unknown otel exporter %q", name)
	}
}
