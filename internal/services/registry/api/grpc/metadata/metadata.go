// Package metadata defines the request headers the registry reads from gRPC
// metadata and the interceptors that turn them into request context.
package metadata

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	"github.com/louisbranch/assetregistry/internal/platform/requestctx"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the gRPC metadata key for request correlation IDs.
const RequestIDHeader = "x-registry-request-id"

// AcceptLanguageHeader selects the locale of user-facing error messages.
const AcceptLanguageHeader = "accept-language"

// IsPrintableASCII reports whether a string contains only printable ASCII characters.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII metadata value for a key.
func FirstMetadataValue(md metadata.MD, key string) string {
	if len(md) == 0 {
		return ""
	}
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

// IncomingValue returns the first printable value of header in the incoming metadata.
func IncomingValue(ctx context.Context, header string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	return FirstMetadataValue(md, header)
}

// LocaleFromContext returns the caller's accept-language value.
func LocaleFromContext(ctx context.Context) string {
	return IncomingValue(ctx, AcceptLanguageHeader)
}

// Options configures the registry server interceptors.
type Options struct {
	// Principals resolves the caller identity from metadata.
	Principals principal.Config
	// Logger receives one line per completed call.
	Logger zerolog.Logger
	// IDGenerator creates request IDs for calls that do not carry one.
	IDGenerator func() (string, error)
}

func (o Options) idGenerator() func() (string, error) {
	if o.IDGenerator != nil {
		return o.IDGenerator
	}
	return func() (string, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		return id.String(), nil
	}
}

// UnaryServerInterceptor attaches request ID and principal to unary calls and
// logs their outcome.
func UnaryServerInterceptor(opts Options) grpc.UnaryServerInterceptor {
	idGenerator := opts.idGenerator()
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		updatedCtx, requestID, err := ensureRequestContext(ctx, idGenerator, opts.Principals)
		if err != nil {
			logCall(opts.Logger, info.FullMethod, requestID, start, err)
			return nil, err
		}
		if headerErr := grpc.SetHeader(updatedCtx, metadata.Pairs(RequestIDHeader, requestID)); headerErr != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", headerErr)
		}

		resp, err := handler(updatedCtx, req)
		logCall(opts.Logger, info.FullMethod, requestID, start, err)
		return resp, err
	}
}

// StreamServerInterceptor attaches request ID and principal to streaming calls.
func StreamServerInterceptor(opts Options) grpc.StreamServerInterceptor {
	idGenerator := opts.idGenerator()
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		updatedCtx, requestID, err := ensureRequestContext(stream.Context(), idGenerator, opts.Principals)
		if err != nil {
			logCall(opts.Logger, info.FullMethod, requestID, start, err)
			return err
		}
		if headerErr := stream.SetHeader(metadata.Pairs(RequestIDHeader, requestID)); headerErr != nil {
			return status.Errorf(codes.Internal, "set response metadata: %v", headerErr)
		}

		err = handler(srv, &wrappedServerStream{ServerStream: stream, ctx: updatedCtx})
		logCall(opts.Logger, info.FullMethod, requestID, start, err)
		return err
	}
}

// wrappedServerStream overrides the context for a gRPC stream.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the updated stream context.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

// ensureRequestContext stores the request ID and resolved principal in ctx.
// A token that fails validation is rejected here, before any handler runs.
func ensureRequestContext(ctx context.Context, idGenerator func() (string, error), principals principal.Config) (context.Context, string, error) {
	requestID := IncomingValue(ctx, RequestIDHeader)
	if requestID == "" {
		generatedID, err := idGenerator()
		if err != nil {
			return nil, "", status.Errorf(codes.Internal, "generate request id: %v", err)
		}
		requestID = generatedID
	}
	updatedCtx := requestctx.WithRequestID(ctx, requestID)

	caller, err := principals.Resolve(func(header string) string {
		return IncomingValue(ctx, header)
	})
	if err != nil {
		return nil, requestID, apperrors.HandleError(err, LocaleFromContext(ctx))
	}
	if caller != "" {
		updatedCtx = requestctx.WithPrincipal(updatedCtx, caller)
	}
	return updatedCtx, requestID, nil
}

func logCall(logger zerolog.Logger, method, requestID string, start time.Time, err error) {
	code := status.Code(err)
	event := logger.Info()
	if code == codes.Internal || code == codes.Unknown {
		event = logger.Error().Err(err)
	}
	event.
		Str("request_id", requestID).
		Str("method", method).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Msg("grpc call")
}
