// Package sqlite provides a SQLite-backed registry storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/assetregistry/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists registry state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite registry store and applies embedded migrations.
// Write transactions start with BEGIN IMMEDIATE so concurrent processes
// sharing the file serialize on the write lock.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_txlock=immediate"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// InsertAsset stores one asset at the next position and journals event.
func (s *Store) InsertAsset(ctx context.Context, asset storage.Asset, event storage.Event) (storage.Event, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Event{}, err
	}
	if asset.AssetHash == "" {
		return storage.Event{}, fmt.Errorf("asset hash is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.Event{}, fmt.Errorf("begin insert asset: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO assets (asset_hash, position, owner, registered_at, metadata)
		 SELECT ?, COUNT(*), ?, ?, ? FROM assets`,
		asset.AssetHash,
		asset.Owner,
		toMillis(asset.RegisteredAt),
		asset.Metadata,
	)
	if err != nil {
		if isAssetHashUniqueViolation(err) {
			return storage.Event{}, storage.ErrAlreadyExists
		}
		return storage.Event{}, fmt.Errorf("insert asset: %w", err)
	}
	event, err = appendEvent(ctx, tx, event)
	if err != nil {
		return storage.Event{}, err
	}
	if err := tx.Commit(); err != nil {
		return storage.Event{}, fmt.Errorf("commit insert asset: %w", err)
	}
	return event, nil
}

// UpdateOwner swaps the owner when it still matches expectedOwner.
func (s *Store) UpdateOwner(ctx context.Context, assetHash, expectedOwner, newOwner string, event storage.Event) (storage.Asset, storage.Event, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Asset{}, storage.Event{}, err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.Asset{}, storage.Event{}, fmt.Errorf("begin update owner: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(
		ctx,
		`UPDATE assets SET owner = ? WHERE asset_hash = ? AND owner = ?`,
		newOwner,
		assetHash,
		expectedOwner,
	)
	if err != nil {
		return storage.Asset{}, storage.Event{}, fmt.Errorf("update owner: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storage.Asset{}, storage.Event{}, fmt.Errorf("update owner rows: %w", err)
	}
	if affected == 0 {
		if _, err := getAsset(ctx, tx, assetHash); err != nil {
			return storage.Asset{}, storage.Event{}, err
		}
		return storage.Asset{}, storage.Event{}, storage.ErrOwnerMismatch
	}

	asset, err := getAsset(ctx, tx, assetHash)
	if err != nil {
		return storage.Asset{}, storage.Event{}, err
	}
	event, err = appendEvent(ctx, tx, event)
	if err != nil {
		return storage.Asset{}, storage.Event{}, err
	}
	if err := tx.Commit(); err != nil {
		return storage.Asset{}, storage.Event{}, fmt.Errorf("commit update owner: %w", err)
	}
	return asset, event, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getAsset(ctx context.Context, q queryer, assetHash string) (storage.Asset, error) {
	row := q.QueryRowContext(
		ctx,
		`SELECT asset_hash, owner, registered_at, metadata
		   FROM assets
		  WHERE asset_hash = ?`,
		assetHash,
	)
	var asset storage.Asset
	var registeredAt int64
	if err := row.Scan(&asset.AssetHash, &asset.Owner, &registeredAt, &asset.Metadata); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Asset{}, storage.ErrNotFound
		}
		return storage.Asset{}, fmt.Errorf("get asset: %w", err)
	}
	asset.RegisteredAt = fromMillis(registeredAt)
	return asset, nil
}

func appendEvent(ctx context.Context, tx *sql.Tx, event storage.Event) (storage.Event, error) {
	result, err := tx.ExecContext(
		ctx,
		`INSERT INTO events (event_type, asset_hash, owner, previous_owner, new_owner, occurred_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(event.Type),
		event.AssetHash,
		event.Owner,
		event.PreviousOwner,
		event.NewOwner,
		toMillis(event.OccurredAt),
	)
	if err != nil {
		return storage.Event{}, fmt.Errorf("append event: %w", err)
	}
	seq, err := result.LastInsertId()
	if err != nil {
		return storage.Event{}, fmt.Errorf("append event id: %w", err)
	}
	event.Sequence = seq
	event.OccurredAt = fromMillis(toMillis(event.OccurredAt))
	return event, nil
}

// GetAsset returns one asset by hash.
func (s *Store) GetAsset(ctx context.Context, assetHash string) (storage.Asset, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Asset{}, err
	}
	return getAsset(ctx, s.sqlDB, assetHash)
}

// CountAssets returns the number of registered assets.
func (s *Store) CountAssets(ctx context.Context) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	var count int64
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count assets: %w", err)
	}
	return count, nil
}

// AssetHashAt returns the hash registered at index.
func (s *Store) AssetHashAt(ctx context.Context, index int64) (string, error) {
	if err := s.ready(ctx); err != nil {
		return "", err
	}
	if index < 0 {
		return "", storage.ErrOutOfRange
	}
	var hash string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT asset_hash FROM assets WHERE position = ?`, index).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrOutOfRange
		}
		return "", fmt.Errorf("asset hash at %d: %w", index, err)
	}
	return hash, nil
}

// ListAssets returns a page of assets in registration order.
func (s *Store) ListAssets(ctx context.Context, offset int64, limit int) ([]storage.Asset, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT asset_hash, owner, registered_at, metadata
		   FROM assets
		  WHERE position >= ?
		  ORDER BY position ASC
		  LIMIT ?`,
		max(offset, 0),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]storage.Asset, 0, limit)
	for rows.Next() {
		var asset storage.Asset
		var registeredAt int64
		if err := rows.Scan(&asset.AssetHash, &asset.Owner, &registeredAt, &asset.Metadata); err != nil {
			return nil, fmt.Errorf("list assets: %w", err)
		}
		asset.RegisteredAt = fromMillis(registeredAt)
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

// ListEvents returns journaled events after afterSequence.
func (s *Store) ListEvents(ctx context.Context, afterSequence int64, limit int) ([]storage.Event, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT seq, event_type, asset_hash, owner, previous_owner, new_owner, occurred_at
		   FROM events
		  WHERE seq > ?
		  ORDER BY seq ASC
		  LIMIT ?`,
		afterSequence,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]storage.Event, 0, limit)
	for rows.Next() {
		var event storage.Event
		var eventType string
		var occurredAt int64
		if err := rows.Scan(
			&event.Sequence,
			&eventType,
			&event.AssetHash,
			&event.Owner,
			&event.PreviousOwner,
			&event.NewOwner,
			&occurredAt,
		); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		event.Type = storage.EventType(eventType)
		event.OccurredAt = fromMillis(occurredAt)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func isAssetHashUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "assets.asset_hash")
}

var _ storage.Store = (*Store)(nil)
