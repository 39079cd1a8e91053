// Package ledger implements the asset ownership registry: registration,
// verification, owner transfer and enumeration over a single store.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	"github.com/louisbranch/assetregistry/internal/platform/grpc/pagination"
	"github.com/louisbranch/assetregistry/internal/platform/requestctx"
	"github.com/louisbranch/assetregistry/internal/services/registry/notify"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/assetregistry/internal/services/registry/ledger"

const (
	defaultListAssetsPageSize = 25
	maxListAssetsPageSize     = 100
	defaultListEventsPageSize = 100
	maxListEventsPageSize     = 500
)

// Transfer describes a completed ownership change.
type Transfer struct {
	Asset         storage.Asset
	PreviousOwner string
	Event         storage.Event
}

// AssetPage is one page of assets in registration order.
type AssetPage struct {
	Assets        []storage.Asset
	NextPageToken string
}

// Registry owns the asset mapping and enumeration sequence. Mutations hold
// the write lock for their whole check-and-write; reads share the read lock.
type Registry struct {
	mu     sync.RWMutex
	store  storage.Store
	clock  func() time.Time
	logger zerolog.Logger
	tracer trace.Tracer
	hub    *notify.Hub
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock used for registration and event timestamps.
func WithClock(clock func() time.Time) Option {
	return func(r *Registry) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithLogger sets the registry logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithTracer sets the tracer for operation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Registry) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

// WithHub sets the hub signaled after each journaled event.
func WithHub(hub *notify.Hub) Option {
	return func(r *Registry) {
		if hub != nil {
			r.hub = hub
		}
	}
}

// New creates a registry over store.
func New(store storage.Store, opts ...Option) (*Registry, error) {
	if store == nil {
		return nil, errors.New("registry store is required")
	}
	r := &Registry{
		store:  store,
		clock:  time.Now,
		logger: zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
		hub:    notify.NewHub(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Hub returns the hub signaled on every journal append.
func (r *Registry) Hub() *notify.Hub {
	return r.hub
}

func (r *Registry) now() time.Time {
	return r.clock().UTC().Truncate(time.Millisecond)
}

func (r *Registry) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, "registry."+name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func callerFrom(ctx context.Context) (string, error) {
	caller := requestctx.PrincipalFromContext(ctx)
	if caller == "" {
		return "", apperrors.New(apperrors.CodeCallerMissing, "caller principal is required")
	}
	return caller, nil
}

func hashMetadata(assetHash string) map[string]string {
	return map[string]string{"AssetHash": assetHash}
}

func notFound(assetHash string) error {
	return apperrors.WithMetadata(apperrors.CodeAssetNotFound, "asset not found", hashMetadata(assetHash))
}

// storageFault logs and wraps an unexpected storage error. Context errors
// pass through unwrapped so callers can map them to cancellation.
func (r *Registry) storageFault(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	r.logger.Error().Err(err).Str("op", op).Msg("registry storage failure")
	return fmt.Errorf("%s: %w", op, err)
}

// Register records a new asset owned by the calling principal.
func (r *Registry) Register(ctx context.Context, assetHash, metadata string) (asset storage.Asset, err error) {
	ctx, span := r.startSpan(ctx, "register", attribute.String("asset.hash", assetHash))
	defer func() { endSpan(span, err) }()

	if assetHash == "" {
		return storage.Asset{}, apperrors.New(apperrors.CodeAssetHashEmpty, "asset hash is required")
	}
	caller, err := callerFrom(ctx)
	if err != nil {
		return storage.Asset{}, err
	}
	if err := ctx.Err(); err != nil {
		return storage.Asset{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	asset = storage.Asset{
		AssetHash:    assetHash,
		Owner:        caller,
		RegisteredAt: now,
		Metadata:     metadata,
	}
	event, err := r.store.InsertAsset(ctx, asset, storage.Event{
		Type:       storage.EventAssetRegistered,
		AssetHash:  assetHash,
		Owner:      caller,
		OccurredAt: now,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return storage.Asset{}, apperrors.WithMetadata(apperrors.CodeAssetAlreadyRegistered, "asset already registered", hashMetadata(assetHash))
		}
		return storage.Asset{}, r.storageFault("register asset", err)
	}

	r.logger.Info().
		Str("asset_hash", assetHash).
		Str("owner", caller).
		Int64("sequence", event.Sequence).
		Msg("asset registered")
	r.hub.Publish()
	return asset, nil
}

// Verify returns the stored record for assetHash.
func (r *Registry) Verify(ctx context.Context, assetHash string) (asset storage.Asset, err error) {
	ctx, span := r.startSpan(ctx, "verify", attribute.String("asset.hash", assetHash))
	defer func() { endSpan(span, err) }()

	if assetHash == "" {
		return storage.Asset{}, apperrors.New(apperrors.CodeAssetHashEmpty, "asset hash is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, err = r.store.GetAsset(ctx, assetHash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Asset{}, notFound(assetHash)
		}
		return storage.Asset{}, r.storageFault("verify asset", err)
	}
	return asset, nil
}

// TransferOwnership hands assetHash from the calling principal to newOwner.
// Checks run in order: asset exists, caller owns it, newOwner is set.
// Transferring to the current owner is allowed and still journaled.
func (r *Registry) TransferOwnership(ctx context.Context, assetHash, newOwner string) (transfer Transfer, err error) {
	ctx, span := r.startSpan(ctx, "transfer_ownership",
		attribute.String("asset.hash", assetHash),
		attribute.String("asset.new_owner", newOwner),
	)
	defer func() { endSpan(span, err) }()

	caller, err := callerFrom(ctx)
	if err != nil {
		return Transfer{}, err
	}
	if err := ctx.Err(); err != nil {
		return Transfer{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if assetHash == "" {
		return Transfer{}, notFound(assetHash)
	}
	current, err := r.store.GetAsset(ctx, assetHash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Transfer{}, notFound(assetHash)
		}
		return Transfer{}, r.storageFault("transfer ownership", err)
	}
	if current.Owner != caller {
		return Transfer{}, apperrors.WithMetadata(apperrors.CodeAssetNotOwner, "caller is not the asset owner", hashMetadata(assetHash))
	}
	if newOwner == "" {
		return Transfer{}, apperrors.New(apperrors.CodeAssetNewOwnerEmpty, "new owner is required")
	}

	updated, event, err := r.store.UpdateOwner(ctx, assetHash, caller, newOwner, storage.Event{
		Type:          storage.EventOwnershipTransferred,
		AssetHash:     assetHash,
		PreviousOwner: caller,
		NewOwner:      newOwner,
		OccurredAt:    r.now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return Transfer{}, notFound(assetHash)
		case errors.Is(err, storage.ErrOwnerMismatch):
			return Transfer{}, apperrors.WithMetadata(apperrors.CodeAssetNotOwner, "caller is not the asset owner", hashMetadata(assetHash))
		}
		return Transfer{}, r.storageFault("transfer ownership", err)
	}

	r.logger.Info().
		Str("asset_hash", assetHash).
		Str("previous_owner", caller).
		Str("new_owner", newOwner).
		Int64("sequence", event.Sequence).
		Msg("ownership transferred")
	r.hub.Publish()
	return Transfer{Asset: updated, PreviousOwner: caller, Event: event}, nil
}

// AssetCount returns the number of assets ever registered.
func (r *Registry) AssetCount(ctx context.Context) (count int64, err error) {
	ctx, span := r.startSpan(ctx, "asset_count")
	defer func() { endSpan(span, err) }()

	r.mu.RLock()
	defer r.mu.RUnlock()

	count, err = r.store.CountAssets(ctx)
	if err != nil {
		return 0, r.storageFault("count assets", err)
	}
	return count, nil
}

// AssetExists reports whether assetHash is registered.
func (r *Registry) AssetExists(ctx context.Context, assetHash string) (exists bool, err error) {
	ctx, span := r.startSpan(ctx, "asset_exists", attribute.String("asset.hash", assetHash))
	defer func() { endSpan(span, err) }()

	if assetHash == "" {
		return false, ctx.Err()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, err := r.store.GetAsset(ctx, assetHash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, r.storageFault("asset exists", err)
	}
	return true, nil
}

// AssetHashAtIndex returns the hash registered at the 0-based index.
func (r *Registry) AssetHashAtIndex(ctx context.Context, index int64) (assetHash string, err error) {
	ctx, span := r.startSpan(ctx, "asset_hash_at_index", attribute.Int64("asset.index", index))
	defer func() { endSpan(span, err) }()

	r.mu.RLock()
	defer r.mu.RUnlock()

	count, err := r.store.CountAssets(ctx)
	if err != nil {
		return "", r.storageFault("asset hash at index", err)
	}
	if index < 0 || index >= count {
		return "", outOfRange(index, count)
	}
	assetHash, err = r.store.AssetHashAt(ctx, index)
	if err != nil {
		if errors.Is(err, storage.ErrOutOfRange) {
			return "", outOfRange(index, count)
		}
		return "", r.storageFault("asset hash at index", err)
	}
	return assetHash, nil
}

func outOfRange(index, count int64) error {
	return apperrors.WithMetadata(apperrors.CodeAssetIndexOutOfRange, "asset index out of range", map[string]string{
		"Index": strconv.FormatInt(index, 10),
		"Count": strconv.FormatInt(count, 10),
	})
}

// ListAssets returns a page of assets in registration order. The page token
// is the index of the first asset on the page.
func (r *Registry) ListAssets(ctx context.Context, pageSize int32, pageToken string) (page AssetPage, err error) {
	ctx, span := r.startSpan(ctx, "list_assets")
	defer func() { endSpan(span, err) }()

	offset, err := pagination.ParseOffsetToken(pageToken)
	if err != nil {
		return AssetPage{}, apperrors.Wrap(apperrors.CodePageTokenInvalid, "invalid page token", err)
	}
	limit := pagination.ClampPageSize(pageSize, pagination.PageSizeConfig{
		Default: defaultListAssetsPageSize,
		Max:     maxListAssetsPageSize,
	})

	r.mu.RLock()
	defer r.mu.RUnlock()

	count, err := r.store.CountAssets(ctx)
	if err != nil {
		return AssetPage{}, r.storageFault("list assets", err)
	}
	assets, err := r.store.ListAssets(ctx, offset, limit)
	if err != nil {
		return AssetPage{}, r.storageFault("list assets", err)
	}
	return AssetPage{
		Assets:        assets,
		NextPageToken: pagination.NextOffsetToken(offset, len(assets), count),
	}, nil
}

// ListEvents returns journaled events with a sequence above afterSequence.
func (r *Registry) ListEvents(ctx context.Context, afterSequence int64, pageSize int32) (events []storage.Event, err error) {
	ctx, span := r.startSpan(ctx, "list_events", attribute.Int64("event.after_sequence", afterSequence))
	defer func() { endSpan(span, err) }()

	limit := pagination.ClampPageSize(pageSize, pagination.PageSizeConfig{
		Default: defaultListEventsPageSize,
		Max:     maxListEventsPageSize,
	})
	events, err = r.store.ListEvents(ctx, afterSequence, limit)
	if err != nil {
		return nil, r.storageFault("list events", err)
	}
	return events, nil
}

// WatchEvents replays events after afterSequence and then follows new ones
// until ctx ends or send fails. Delivery is at least once in sequence order;
// consumers de-duplicate by sequence.
func (r *Registry) WatchEvents(ctx context.Context, afterSequence int64, send func(storage.Event) error) error {
	if send == nil {
		return errors.New("event sink is required")
	}
	sub := r.hub.Subscribe()
	defer sub.Close()

	cursor := afterSequence
	for {
		events, err := r.store.ListEvents(ctx, cursor, defaultListEventsPageSize)
		if err != nil {
			return r.storageFault("watch events", err)
		}
		for _, event := range events {
			if err := send(event); err != nil {
				return err
			}
			cursor = event.Sequence
		}
		if len(events) == defaultListEventsPageSize {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sub.C:
		}
	}
}
