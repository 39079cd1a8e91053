// Package memory provides an in-process registry store for tests and demos.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/louisbranch/assetregistry/internal/services/registry/storage"
)

// Store keeps registry state in memory. State is lost on Close.
type Store struct {
	mu     sync.RWMutex
	assets map[string]storage.Asset
	order  []string
	events []storage.Event
}

// New creates an empty memory store.
func New() *Store {
	return &Store{assets: make(map[string]storage.Asset)}
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// InsertAsset stores a new asset and journals its event.
func (s *Store) InsertAsset(ctx context.Context, asset storage.Asset, event storage.Event) (storage.Event, error) {
	if err := ctx.Err(); err != nil {
		return storage.Event{}, err
	}
	hash := asset.AssetHash
	if hash == "" {
		return storage.Event{}, fmt.Errorf("asset hash is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assets[hash]; ok {
		return storage.Event{}, storage.ErrAlreadyExists
	}
	s.assets[hash] = asset
	s.order = append(s.order, hash)
	return s.appendEventLocked(event), nil
}

// UpdateOwner swaps the owner when it matches expectedOwner.
func (s *Store) UpdateOwner(ctx context.Context, assetHash, expectedOwner, newOwner string, event storage.Event) (storage.Asset, storage.Event, error) {
	if err := ctx.Err(); err != nil {
		return storage.Asset{}, storage.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	asset, ok := s.assets[assetHash]
	if !ok {
		return storage.Asset{}, storage.Event{}, storage.ErrNotFound
	}
	if asset.Owner != expectedOwner {
		return storage.Asset{}, storage.Event{}, storage.ErrOwnerMismatch
	}
	asset.Owner = newOwner
	s.assets[assetHash] = asset
	return asset, s.appendEventLocked(event), nil
}

func (s *Store) appendEventLocked(event storage.Event) storage.Event {
	event.Sequence = int64(len(s.events)) + 1
	s.events = append(s.events, event)
	return event
}

// GetAsset returns one asset by hash.
func (s *Store) GetAsset(ctx context.Context, assetHash string) (storage.Asset, error) {
	if err := ctx.Err(); err != nil {
		return storage.Asset{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.assets[assetHash]
	if !ok {
		return storage.Asset{}, storage.ErrNotFound
	}
	return asset, nil
}

// CountAssets returns the number of registered assets.
func (s *Store) CountAssets(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.order)), nil
}

// AssetHashAt returns the hash registered at index.
func (s *Store) AssetHashAt(ctx context.Context, index int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= int64(len(s.order)) {
		return "", storage.ErrOutOfRange
	}
	return s.order[index], nil
}

// ListAssets returns a page of assets in registration order.
func (s *Store) ListAssets(ctx context.Context, offset int64, limit int) ([]storage.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if offset < 0 || offset >= int64(len(s.order)) {
		return []storage.Asset{}, nil
	}
	end := min(offset+int64(limit), int64(len(s.order)))
	assets := make([]storage.Asset, 0, end-offset)
	for _, hash := range s.order[offset:end] {
		assets = append(assets, s.assets[hash])
	}
	return assets, nil
}

// ListEvents returns journaled events after afterSequence.
func (s *Store) ListEvents(ctx context.Context, afterSequence int64, limit int) ([]storage.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := max(afterSequence, 0)
	if start >= int64(len(s.events)) {
		return []storage.Event{}, nil
	}
	end := min(start+int64(limit), int64(len(s.events)))
	events := make([]storage.Event, end-start)
	copy(events, s.events[start:end])
	return events, nil
}

var _ storage.Store = (*Store)(nil)
