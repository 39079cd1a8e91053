package registry

import (
	"context"
	"testing"
	"time"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	"github.com/louisbranch/assetregistry/internal/platform/requestctx"
	grpcmeta "github.com/louisbranch/assetregistry/internal/services/registry/api/grpc/metadata"
	"github.com/louisbranch/assetregistry/internal/services/registry/ledger"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage/memory"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	registry, err := ledger.New(memory.New(), ledger.WithClock(func() time.Time {
		return time.Unix(100, 0)
	}))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return NewService(registry)
}

func as(principal string) context.Context {
	return requestctx.WithPrincipal(context.Background(), principal)
}

func assertStatus(t *testing.T, err error, code codes.Code, domainCode apperrors.Code) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("status code = %s, want %s (err: %v)", status.Code(err), code, err)
	}
	if domainCode != "" && apperrors.CodeFromStatus(err) != domainCode {
		t.Fatalf("domain code = %s, want %s", apperrors.CodeFromStatus(err), domainCode)
	}
}

func TestNilRequests(t *testing.T) {
	svc := newTestService(t)
	ctx := as("alice")

	if _, err := svc.RegisterAsset(ctx, nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("register nil: %v", err)
	}
	if _, err := svc.VerifyAsset(ctx, nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("verify nil: %v", err)
	}
	if _, err := svc.TransferOwnership(ctx, nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("transfer nil: %v", err)
	}
	if _, err := svc.GetAssetHashAtIndex(ctx, nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("index nil: %v", err)
	}
}

func TestUnconfiguredService(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.GetAssetCount(context.Background(), &registryv1.GetAssetCountRequest{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %s, want Internal", status.Code(err))
	}
}

func TestRegisterVerifyTransferFlow(t *testing.T) {
	svc := newTestService(t)

	registered, err := svc.RegisterAsset(as("alice"), &registryv1.RegisterAssetRequest{AssetHash: "h1", Metadata: "ipfs://a"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.GetAsset().GetOwner() != "alice" || registered.GetAsset().GetRegisteredAt().AsTime().Unix() != 100 {
		t.Fatalf("registered = %+v", registered.GetAsset())
	}

	verified, err := svc.VerifyAsset(context.Background(), &registryv1.VerifyAssetRequest{AssetHash: "h1"})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !proto.Equal(verified.GetAsset(), registered.GetAsset()) {
		t.Fatalf("verified = %+v, want %+v", verified.GetAsset(), registered.GetAsset())
	}

	transferred, err := svc.TransferOwnership(as("alice"), &registryv1.TransferOwnershipRequest{AssetHash: "h1", NewOwner: "bob"})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if transferred.GetPreviousOwner() != "alice" || transferred.GetAsset().GetOwner() != "bob" {
		t.Fatalf("transferred = %+v", transferred)
	}

	count, err := svc.GetAssetCount(context.Background(), &registryv1.GetAssetCountRequest{})
	if err != nil || count.GetCount() != 1 {
		t.Fatalf("count = %d, %v", count.GetCount(), err)
	}
	exists, err := svc.AssetExists(context.Background(), &registryv1.AssetExistsRequest{AssetHash: "h1"})
	if err != nil || !exists.GetExists() {
		t.Fatalf("exists = %v, %v", exists.GetExists(), err)
	}
	at, err := svc.GetAssetHashAtIndex(context.Background(), &registryv1.GetAssetHashAtIndexRequest{Index: 0})
	if err != nil || at.GetAssetHash() != "h1" {
		t.Fatalf("index 0 = %q, %v", at.GetAssetHash(), err)
	}

	events, err := svc.ListEvents(context.Background(), &registryv1.ListEventsRequest{})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events.GetEvents()) != 2 || events.GetEvents()[1].GetType() != registryv1.EventType_EVENT_TYPE_OWNERSHIP_TRANSFERRED {
		t.Fatalf("events = %+v", events.GetEvents())
	}
}

func TestErrorStatuses(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.RegisterAsset(as("alice"), &registryv1.RegisterAssetRequest{AssetHash: "h1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.RegisterAsset(as("alice"), &registryv1.RegisterAssetRequest{AssetHash: ""})
	assertStatus(t, err, codes.InvalidArgument, apperrors.CodeAssetHashEmpty)

	_, err = svc.RegisterAsset(as("bob"), &registryv1.RegisterAssetRequest{AssetHash: "h1"})
	assertStatus(t, err, codes.AlreadyExists, apperrors.CodeAssetAlreadyRegistered)

	_, err = svc.RegisterAsset(context.Background(), &registryv1.RegisterAssetRequest{AssetHash: "h2"})
	assertStatus(t, err, codes.Unauthenticated, apperrors.CodeCallerMissing)

	_, err = svc.RegisterAsset(context.Background(), &registryv1.RegisterAssetRequest{AssetHash: ""})
	assertStatus(t, err, codes.InvalidArgument, apperrors.CodeAssetHashEmpty)

	_, err = svc.VerifyAsset(context.Background(), &registryv1.VerifyAssetRequest{AssetHash: "nope"})
	assertStatus(t, err, codes.NotFound, apperrors.CodeAssetNotFound)

	_, err = svc.TransferOwnership(as("bob"), &registryv1.TransferOwnershipRequest{AssetHash: "h1", NewOwner: "bob"})
	assertStatus(t, err, codes.PermissionDenied, apperrors.CodeAssetNotOwner)

	_, err = svc.TransferOwnership(as("alice"), &registryv1.TransferOwnershipRequest{AssetHash: "h1"})
	assertStatus(t, err, codes.InvalidArgument, apperrors.CodeAssetNewOwnerEmpty)

	_, err = svc.GetAssetHashAtIndex(context.Background(), &registryv1.GetAssetHashAtIndexRequest{Index: 1})
	assertStatus(t, err, codes.OutOfRange, apperrors.CodeAssetIndexOutOfRange)

	_, err = svc.ListAssets(context.Background(), &registryv1.ListAssetsRequest{PageToken: "x"})
	assertStatus(t, err, codes.InvalidArgument, apperrors.CodePageTokenInvalid)
}

func TestErrorsAreLocalized(t *testing.T) {
	svc := newTestService(t)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(grpcmeta.AcceptLanguageHeader, "pt-BR"))

	_, err := svc.VerifyAsset(ctx, &registryv1.VerifyAssetRequest{AssetHash: "h9"})
	if got := apperrors.LocalizedMessageFromStatus(err); got != "O ativo h9 não está registrado" {
		t.Fatalf("localized message = %q", got)
	}

	_, err = svc.GetAssetHashAtIndex(context.Background(), &registryv1.GetAssetHashAtIndexRequest{Index: 0})
	if got := apperrors.LocalizedMessageFromStatus(err); got != "Index 0 is out of range (asset count is 0)" {
		t.Fatalf("default message = %q", got)
	}
}

func TestListAssetsPaging(t *testing.T) {
	svc := newTestService(t)
	for _, hash := range []string{"a", "b", "c"} {
		if _, err := svc.RegisterAsset(as("alice"), &registryv1.RegisterAssetRequest{AssetHash: hash}); err != nil {
			t.Fatalf("register %s: %v", hash, err)
		}
	}

	first, err := svc.ListAssets(context.Background(), &registryv1.ListAssetsRequest{PageSize: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first.GetAssets()) != 2 || first.GetNextPageToken() != "2" {
		t.Fatalf("first page = %+v", first)
	}
	second, err := svc.ListAssets(context.Background(), &registryv1.ListAssetsRequest{PageSize: 2, PageToken: first.GetNextPageToken()})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second.GetAssets()) != 1 || second.GetAssets()[0].GetAssetHash() != "c" || second.GetNextPageToken() != "" {
		t.Fatalf("second page = %+v", second)
	}
}
