// Package bolt provides a single-file BoltDB registry store.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/boltdb/bolt"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage"
)

var (
	assetsBucket    = []byte("assets")
	positionsBucket = []byte("positions")
	eventsBucket    = []byte("events")
)

// record is the stored form of an asset.
type record struct {
	AssetHash    string `json:"asset_hash"`
	Owner        string `json:"owner"`
	RegisteredAt int64  `json:"registered_at"`
	Metadata     string `json:"metadata"`
}

type eventRecord struct {
	Type          string `json:"type"`
	AssetHash     string `json:"asset_hash"`
	Owner         string `json:"owner,omitempty"`
	PreviousOwner string `json:"previous_owner,omitempty"`
	NewOwner      string `json:"new_owner,omitempty"`
	OccurredAt    int64  `json:"occurred_at"`
}

// Store persists registry state in a bolt database file. The positions
// bucket sequence tracks the asset count.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the bolt file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{assetsBucket, positionsBucket, eventsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the bolt file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func toRecord(asset storage.Asset) record {
	return record{
		AssetHash:    asset.AssetHash,
		Owner:        asset.Owner,
		RegisteredAt: asset.RegisteredAt.UTC().UnixMilli(),
		Metadata:     asset.Metadata,
	}
}

func (r record) asset() storage.Asset {
	return storage.Asset{
		AssetHash:    r.AssetHash,
		Owner:        r.Owner,
		RegisteredAt: time.UnixMilli(r.RegisteredAt).UTC(),
		Metadata:     r.Metadata,
	}
}

func getRecord(tx *bolt.Tx, assetHash string) (record, error) {
	val := tx.Bucket(assetsBucket).Get([]byte(assetHash))
	if val == nil {
		return record{}, storage.ErrNotFound
	}
	var rec record
	if err := json.Unmarshal(val, &rec); err != nil {
		return record{}, fmt.Errorf("decode asset %s: %w", assetHash, err)
	}
	return rec, nil
}

func putRecord(tx *bolt.Tx, rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode asset %s: %w", rec.AssetHash, err)
	}
	return tx.Bucket(assetsBucket).Put([]byte(rec.AssetHash), data)
}

func appendEvent(tx *bolt.Tx, event storage.Event) (storage.Event, error) {
	b := tx.Bucket(eventsBucket)
	seq, err := b.NextSequence()
	if err != nil {
		return storage.Event{}, fmt.Errorf("next event sequence: %w", err)
	}
	data, err := json.Marshal(eventRecord{
		Type:          string(event.Type),
		AssetHash:     event.AssetHash,
		Owner:         event.Owner,
		PreviousOwner: event.PreviousOwner,
		NewOwner:      event.NewOwner,
		OccurredAt:    event.OccurredAt.UTC().UnixMilli(),
	})
	if err != nil {
		return storage.Event{}, fmt.Errorf("encode event: %w", err)
	}
	if err := b.Put(itob(seq), data); err != nil {
		return storage.Event{}, fmt.Errorf("put event: %w", err)
	}
	event.Sequence = int64(seq)
	event.OccurredAt = time.UnixMilli(event.OccurredAt.UTC().UnixMilli()).UTC()
	return event, nil
}

// InsertAsset stores one asset at the next position and journals event.
func (s *Store) InsertAsset(ctx context.Context, asset storage.Asset, event storage.Event) (storage.Event, error) {
	if err := ctx.Err(); err != nil {
		return storage.Event{}, err
	}
	if asset.AssetHash == "" {
		return storage.Event{}, fmt.Errorf("asset hash is required")
	}

	var stored storage.Event
	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(assetsBucket).Get([]byte(asset.AssetHash)) != nil {
			return storage.ErrAlreadyExists
		}
		if err := putRecord(tx, toRecord(asset)); err != nil {
			return err
		}
		positions := tx.Bucket(positionsBucket)
		position := positions.Sequence()
		if err := positions.Put(itob(position), []byte(asset.AssetHash)); err != nil {
			return fmt.Errorf("put position: %w", err)
		}
		if err := positions.SetSequence(position + 1); err != nil {
			return fmt.Errorf("advance position: %w", err)
		}
		var err error
		stored, err = appendEvent(tx, event)
		return err
	})
	if err != nil {
		return storage.Event{}, err
	}
	return stored, nil
}

// UpdateOwner swaps the owner when it still matches expectedOwner.
func (s *Store) UpdateOwner(ctx context.Context, assetHash, expectedOwner, newOwner string, event storage.Event) (storage.Asset, storage.Event, error) {
	if err := ctx.Err(); err != nil {
		return storage.Asset{}, storage.Event{}, err
	}

	var (
		updated storage.Asset
		stored  storage.Event
	)
	err := s.db.Update(func(tx *bolt.Tx) error {
		rec, err := getRecord(tx, assetHash)
		if err != nil {
			return err
		}
		if rec.Owner != expectedOwner {
			return storage.ErrOwnerMismatch
		}
		rec.Owner = newOwner
		if err := putRecord(tx, rec); err != nil {
			return err
		}
		updated = rec.asset()
		stored, err = appendEvent(tx, event)
		return err
	})
	if err != nil {
		return storage.Asset{}, storage.Event{}, err
	}
	return updated, stored, nil
}

// GetAsset returns one asset by hash.
func (s *Store) GetAsset(ctx context.Context, assetHash string) (storage.Asset, error) {
	if err := ctx.Err(); err != nil {
		return storage.Asset{}, err
	}
	var asset storage.Asset
	err := s.db.View(func(tx *bolt.Tx) error {
		rec, err := getRecord(tx, assetHash)
		if err != nil {
			return err
		}
		asset = rec.asset()
		return nil
	})
	return asset, err
}

// CountAssets returns the number of registered assets.
func (s *Store) CountAssets(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count int64
	err := s.db.View(func(tx *bolt.Tx) error {
		count = int64(tx.Bucket(positionsBucket).Sequence())
		return nil
	})
	return count, err
}

// AssetHashAt returns the hash registered at index.
func (s *Store) AssetHashAt(ctx context.Context, index int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if index < 0 {
		return "", storage.ErrOutOfRange
	}
	var hash string
	err := s.db.View(func(tx *bolt.Tx) error {
		val := tx.Bucket(positionsBucket).Get(itob(uint64(index)))
		if val == nil {
			return storage.ErrOutOfRange
		}
		hash = string(val)
		return nil
	})
	return hash, err
}

// ListAssets returns a page of assets in registration order.
func (s *Store) ListAssets(ctx context.Context, offset int64, limit int) ([]storage.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	assets := make([]storage.Asset, 0, limit)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(positionsBucket).Cursor()
		for k, v := c.Seek(itob(uint64(max(offset, 0)))); k != nil && len(assets) < limit; k, v = c.Next() {
			rec, err := getRecord(tx, string(v))
			if err != nil {
				return err
			}
			assets = append(assets, rec.asset())
		}
		return nil
	})
	if err != nil {
		return nil, err
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
	events := make([]storage.Event, 0, limit)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(eventsBucket).Cursor()
		start := itob(uint64(max(afterSequence, 0)) + 1)
		for k, v := c.Seek(start); k != nil && len(events) < limit; k, v = c.Next() {
			var rec eventRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode event: %w", err)
			}
			events = append(events, storage.Event{
				Sequence:      int64(binary.BigEndian.Uint64(k)),
				Type:          storage.EventType(rec.Type),
				AssetHash:     rec.AssetHash,
				Owner:         rec.Owner,
				PreviousOwner: rec.PreviousOwner,
				NewOwner:      rec.NewOwner,
				OccurredAt:    time.UnixMilli(rec.OccurredAt).UTC(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

var _ storage.Store = (*Store)(nil)
