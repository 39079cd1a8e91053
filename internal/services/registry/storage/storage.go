// Package storage defines persistence contracts for registry state.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested asset is not registered.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates the asset hash is already registered.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrOwnerMismatch indicates the stored owner differs from the expected owner.
	ErrOwnerMismatch = errors.New("owner mismatch")
	// ErrOutOfRange indicates an enumeration index at or beyond the asset count.
	ErrOutOfRange = errors.New("index out of range")
)

// EventType names a journaled registry event.
type EventType string

const (
	// EventAssetRegistered records a new asset.
	EventAssetRegistered EventType = "ASSET_REGISTERED"
	// EventOwnershipTransferred records an owner change.
	EventOwnershipTransferred EventType = "OWNERSHIP_TRANSFERRED"
)

// Asset stores one registered asset. Presence of the record is what makes
// an asset registered; Owner is never empty for a stored asset.
type Asset struct {
	AssetHash    string
	Owner        string
	RegisteredAt time.Time
	Metadata     string
}

// Event stores one journaled notification. Sequence is assigned by the
// store on append and starts at 1.
type Event struct {
	Sequence      int64
	Type          EventType
	AssetHash     string
	Owner         string
	PreviousOwner string
	NewOwner      string
	OccurredAt    time.Time
}

// AssetStore persists assets together with their registration order.
type AssetStore interface {
	// InsertAsset stores asset at the next enumeration index and appends
	// event in the same transaction. Returns ErrAlreadyExists for a
	// duplicate hash.
	InsertAsset(ctx context.Context, asset Asset, event Event) (Event, error)
	// UpdateOwner replaces the owner when it still equals expectedOwner and
	// appends event in the same transaction. Returns ErrNotFound or
	// ErrOwnerMismatch without writing anything.
	UpdateOwner(ctx context.Context, assetHash, expectedOwner, newOwner string, event Event) (Asset, Event, error)
	GetAsset(ctx context.Context, assetHash string) (Asset, error)
	CountAssets(ctx context.Context) (int64, error)
	// AssetHashAt returns the hash at a 0-based registration index or ErrOutOfRange.
	AssetHashAt(ctx context.Context, index int64) (string, error)
	// ListAssets returns up to limit assets in registration order from offset.
	ListAssets(ctx context.Context, offset int64, limit int) ([]Asset, error)
}

// EventStore reads the event journal.
type EventStore interface {
	// ListEvents returns up to limit events with Sequence > afterSequence in order.
	ListEvents(ctx context.Context, afterSequence int64, limit int) ([]Event, error)
}

// Store is the full registry persistence contract.
type Store interface {
	AssetStore
	EventStore
	Close() error
}
