// Package registry exposes the asset registry over gRPC.
package registry

import (
	"context"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	grpcmeta "github.com/louisbranch/assetregistry/internal/services/registry/api/grpc/metadata"
	"github.com/louisbranch/assetregistry/internal/services/registry/ledger"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Service exposes registry.v1 gRPC operations.
type Service struct {
	registryv1.UnimplementedAssetRegistryServiceServer
	registry *ledger.Registry
}

// NewService creates a registry service backed by registry.
func NewService(registry *ledger.Registry) *Service {
	return &Service{registry: registry}
}

func (s *Service) ready() error {
	if s == nil || s.registry == nil {
		return status.Error(codes.Internal, "asset registry is not configured")
	}
	return nil
}

// handleError maps ledger errors to a status localized for the caller.
func handleError(ctx context.Context, err error) error {
	return apperrors.HandleError(err, grpcmeta.LocaleFromContext(ctx))
}

// RegisterAsset records a new asset owned by the caller.
func (s *Service) RegisterAsset(ctx context.Context, in *registryv1.RegisterAssetRequest) (*registryv1.RegisterAssetResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "register asset request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	asset, err := s.registry.Register(ctx, in.GetAssetHash(), in.GetMetadata())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &registryv1.RegisterAssetResponse{Asset: AssetToProto(asset)}, nil
}

// VerifyAsset returns the stored record for an asset hash.
func (s *Service) VerifyAsset(ctx context.Context, in *registryv1.VerifyAssetRequest) (*registryv1.VerifyAssetResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "verify asset request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	asset, err := s.registry.Verify(ctx, in.GetAssetHash())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &registryv1.VerifyAssetResponse{Asset: AssetToProto(asset)}, nil
}

// TransferOwnership moves an asset from the caller to a new owner.
func (s *Service) TransferOwnership(ctx context.Context, in *registryv1.TransferOwnershipRequest) (*registryv1.TransferOwnershipResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "transfer ownership request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	transfer, err := s.registry.TransferOwnership(ctx, in.GetAssetHash(), in.GetNewOwner())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &registryv1.TransferOwnershipResponse{
		Asset:         AssetToProto(transfer.Asset),
		PreviousOwner: transfer.PreviousOwner,
	}, nil
}

// GetAssetCount returns the number of registered assets.
func (s *Service) GetAssetCount(ctx context.Context, _ *registryv1.GetAssetCountRequest) (*registryv1.GetAssetCountResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	count, err := s.registry.AssetCount(ctx)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &registryv1.GetAssetCountResponse{Count: count}, nil
}

// AssetExists reports whether an asset hash is registered.
func (s *Service) AssetExists(ctx context.Context, in *registryv1.AssetExistsRequest) (*registryv1.AssetExistsResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	exists, err := s.registry.AssetExists(ctx, in.GetAssetHash())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &registryv1.AssetExistsResponse{Exists: exists}, nil
}

// GetAssetHashAtIndex returns the hash at a registration index.
func (s *Service) GetAssetHashAtIndex(ctx context.Context, in *registryv1.GetAssetHashAtIndexRequest) (*registryv1.GetAssetHashAtIndexResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get asset hash at index request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	hash, err := s.registry.AssetHashAtIndex(ctx, in.GetIndex())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &registryv1.GetAssetHashAtIndexResponse{AssetHash: hash}, nil
}

// ListAssets returns a page of assets in registration order.
func (s *Service) ListAssets(ctx context.Context, in *registryv1.ListAssetsRequest) (*registryv1.ListAssetsResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	page, err := s.registry.ListAssets(ctx, in.GetPageSize(), in.GetPageToken())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	resp := &registryv1.ListAssetsResponse{
		Assets:        make([]*registryv1.Asset, 0, len(page.Assets)),
		NextPageToken: page.NextPageToken,
	}
	for _, asset := range page.Assets {
		resp.Assets = append(resp.Assets, AssetToProto(asset))
	}
	return resp, nil
}

// ListEvents returns journaled events after a sequence.
func (s *Service) ListEvents(ctx context.Context, in *registryv1.ListEventsRequest) (*registryv1.ListEventsResponse, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	events, err := s.registry.ListEvents(ctx, in.GetAfterSequence(), in.GetPageSize())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	resp := &registryv1.ListEventsResponse{Events: make([]*registryv1.Event, 0, len(events))}
	for _, event := range events {
		resp.Events = append(resp.Events, EventToProto(event))
	}
	return resp, nil
}

// WatchEvents streams journaled events after a sequence and then follows
// new ones until the client goes away.
func (s *Service) WatchEvents(in *registryv1.WatchEventsRequest, stream grpc.ServerStreamingServer[registryv1.Event]) error {
	if err := s.ready(); err != nil {
		return err
	}
	ctx := stream.Context()
	err := s.registry.WatchEvents(ctx, in.GetAfterSequence(), func(event storage.Event) error {
		return stream.Send(EventToProto(event))
	})
	if err == nil || ctx.Err() != nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return handleError(ctx, err)
}

// AssetToProto converts a stored asset to its wire form.
func AssetToProto(asset storage.Asset) *registryv1.Asset {
	return &registryv1.Asset{
		AssetHash:    asset.AssetHash,
		Owner:        asset.Owner,
		RegisteredAt: timestamppb.New(asset.RegisteredAt),
		Metadata:     asset.Metadata,
	}
}

// EventToProto converts a journaled event to its wire form.
func EventToProto(event storage.Event) *registryv1.Event {
	return &registryv1.Event{
		Sequence:      event.Sequence,
		Type:          EventTypeToProto(event.Type),
		AssetHash:     event.AssetHash,
		Owner:         event.Owner,
		PreviousOwner: event.PreviousOwner,
		NewOwner:      event.NewOwner,
		OccurredAt:    timestamppb.New(event.OccurredAt),
	}
}

// EventTypeToProto maps a journal event type to its wire enum.
func EventTypeToProto(eventType storage.EventType) registryv1.EventType {
	switch eventType {
	case storage.EventAssetRegistered:
		return registryv1.EventType_EVENT_TYPE_ASSET_REGISTERED
	case storage.EventOwnershipTransferred:
		return registryv1.EventType_EVENT_TYPE_OWNERSHIP_TRANSFERRED
	default:
		return registryv1.EventType_EVENT_TYPE_UNSPECIFIED
	}
}
