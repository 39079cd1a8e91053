package requestctx

import (
	"context"
	"testing"
)

func TestPrincipalFromContextRoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), "alice")
	if got := PrincipalFromContext(ctx); got != "alice" {
		t.Fatalf("PrincipalFromContext = %q, want %q", got, "alice")
	}
}

func TestWithPrincipalTrimsWhitespace(t *testing.T) {
	ctx := WithPrincipal(context.Background(), "  bob \n")
	if got := PrincipalFromContext(ctx); got != "bob" {
		t.Fatalf("PrincipalFromContext = %q, want %q", got, "bob")
	}
}

func TestPrincipalFromContextEmpty(t *testing.T) {
	if got := PrincipalFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty principal, got %q", got)
	}
}

func TestPrincipalFromContextNil(t *testing.T) {
	if got := PrincipalFromContext(nil); got != "" {
		t.Fatalf("expected empty principal for nil context, got %q", got)
	}
}

func TestWithPrincipalNilContext(t *testing.T) {
	ctx := WithPrincipal(nil, "carol")
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if got := PrincipalFromContext(ctx); got != "carol" {
		t.Fatalf("PrincipalFromContext = %q, want %q", got, "carol")
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("RequestIDFromContext = %q, want req-1", got)
	}
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty request id for nil context, got %q", got)
	}
}
