package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/assetregistry/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("ASSET_REGISTRY_OTEL_ENDPOINT", "")
	t.Setenv("ASSET_REGISTRY_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("ASSET_REGISTRY_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("ASSET_REGISTRY_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesHTTPProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no actual export happens.
	t.Setenv("ASSET_REGISTRY_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("ASSET_REGISTRY_OTEL_ENABLED", "")
	t.Setenv("ASSET_REGISTRY_OTEL_EXPORTER", "otlphttp")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_StdoutExporterNeedsNoEndpoint(t *testing.T) {
	t.Setenv("ASSET_REGISTRY_OTEL_ENDPOINT", "")
	t.Setenv("ASSET_REGISTRY_OTEL_ENABLED", "")
	t.Setenv("ASSET_REGISTRY_OTEL_EXPORTER", "stdout")

	shutdown, err := otel.Setup(context.Background(), "stdout-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsUnknownExporter(t *testing.T) {
	t.Setenv("ASSET_REGISTRY_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("ASSET_REGISTRY_OTEL_ENABLED", "")
	t.Setenv("ASSET_REGISTRY_OTEL_EXPORTER", "carrier-pigeon")

	shutdown, err := otel.Setup(context.Background(), "bad-exporter")
	if err == nil {
		t.Fatal("expected error for unknown exporter")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetup_NoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv("ASSET_REGISTRY_OTEL_ENDPOINT", "")
	t.Setenv("ASSET_REGISTRY_OTEL_ENABLED", "")
	t.Setenv("ASSET_REGISTRY_OTEL_EXPORTER", "")

	shutdown, err := otel.Setup(context.Background(), "noop-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
