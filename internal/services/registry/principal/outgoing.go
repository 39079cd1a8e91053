package principal

import (
	"context"
	"fmt"

	"google.golang.org/grpc/metadata"
)

// Attacher adds caller identity to an outgoing gRPC context.
type Attacher func(ctx context.Context, caller string) (context.Context, error)

// AttachHeader sends caller as trusted header metadata.
func AttachHeader(ctx context.Context, caller string) (context.Context, error) {
	return metadata.AppendToOutgoingContext(ctx, HeaderPrincipal, caller), nil
}

// AttachToken mints a bearer token for caller on every call.
func AttachToken(cfg Config) Attacher {
	return func(ctx context.Context, caller string) (context.Context, error) {
		token, err := IssueToken(caller, cfg)
		if err != nil {
			return nil, fmt.Errorf("issue token for %s: %w", caller, err)
		}
		return metadata.AppendToOutgoingContext(ctx, HeaderAuthorization, "Bearer "+token), nil
	}
}

// AttacherFor picks the strategy matching the server auth mode.
func AttacherFor(cfg Config) Attacher {
	if cfg.Mode == ModeJWT {
		return AttachToken(cfg)
	}
	return AttachHeader
}
