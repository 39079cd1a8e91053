// Package storagetest holds the conformance suite shared by registry stores.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/louisbranch/assetregistry/internal/services/registry/storage"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Opener returns a fresh, empty store. The store is closed by the suite.
type Opener func(t *testing.T) storage.Store

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func open(t *testing.T, opener Opener) storage.Store {
	t.Helper()
	store := opener(t)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func registered(hash, owner string, at time.Time) (storage.Asset, storage.Event) {
	return storage.Asset{
			AssetHash:    hash,
			Owner:        owner,
			RegisteredAt: at,
			Metadata:     "ipfs://" + hash,
		}, storage.Event{
			Type:       storage.EventAssetRegistered,
			AssetHash:  hash,
			Owner:      owner,
			OccurredAt: at,
		}
}

func transferred(hash, from, to string, at time.Time) storage.Event {
	return storage.Event{
		Type:          storage.EventOwnershipTransferred,
		AssetHash:     hash,
		PreviousOwner: from,
		NewOwner:      to,
		OccurredAt:    at,
	}
}

// Run executes the conformance suite against stores produced by opener.
func Run(t *testing.T, opener Opener) {
	t.Run("insert and get", func(t *testing.T) {
		store := open(t, opener)
		ctx := context.Background()

		asset, event := registered("h1", "alice", baseTime)
		stored, err := store.InsertAsset(ctx, asset, event)
		require.NoError(t, err)
		require.Equal(t, int64(1), stored.Sequence)
		require.Equal(t, storage.EventAssetRegistered, stored.Type)

		got, err := store.GetAsset(ctx, "h1")
		require.NoError(t, err)
		require.Equal(t, asset, got)
	})

	t.Run("get missing", func(t *testing.T) {
		store := open(t, opener)
		_, err := store.GetAsset(context.Background(), "missing")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("duplicate insert leaves record unchanged", func(t *testing.T) {
		store := open(t, opener)
		ctx := context.Background()

		asset, event := registered("h1", "alice", baseTime)
		_, err := store.InsertAsset(ctx, asset, event)
		require.NoError(t, err)

		dup, dupEvent := registered("h1", "bob", baseTime.Add(time.Minute))
		dup.Metadata = "other"
		_, err = store.InsertAsset(ctx, dup, dupEvent)
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		got, err := store.GetAsset(ctx, "h1")
		require.NoError(t, err)
		require.Equal(t, asset, got)

		count, err := store.CountAssets(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)

		events, err := store.ListEvents(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
	})

	t.Run("hashes compare byte for byte", func(t *testing.T) {
		store := open(t, opener)
		ctx := context.Background()

		hashes := []string{"h1", "h1 ", " h1", "H1", "sha256/h1"}
		for i, hash := range hashes {
			asset, event := registered(hash, "alice", baseTime.Add(time.Duration(i)*time.Second))
			_, err := store.InsertAsset(ctx, asset, event)
			require.NoError(t, err, "insert %q", hash)
		}
		for i, hash := range hashes {
			got, err := store.GetAsset(ctx, hash)
			require.NoError(t, err)
			require.Equal(t, hash, got.AssetHash)

			at, err := store.AssetHashAt(ctx, int64(i))
			require.NoError(t, err)
			require.Equal(t, hash, at)
		}
		count, err := store.CountAssets(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(len(hashes)), count)
	})

	t.Run("update owner", func(t *testing.T) {
		store := open(t, opener)
		ctx := context.Background()

		asset, event := registered("h1", "alice", baseTime)
		_, err := store.InsertAsset(ctx, asset, event)
		require.NoError(t, err)

		updated, stored, err := store.UpdateOwner(ctx, "h1", "alice", "bob", transferred("h1", "alice", "bob", baseTime.Add(time.Second)))
		require.NoError(t, err)
		require.Equal(t, "bob", updated.Owner)
		require.Equal(t, asset.RegisteredAt, updated.RegisteredAt)
		require.Equal(t, asset.Metadata, updated.Metadata)
		require.Equal(t, int64(2), stored.Sequence)
		require.Equal(t, "alice", stored.PreviousOwner)
		require.Equal(t, "bob", stored.NewOwner)

		got, err := store.GetAsset(ctx, "h1")
		require.NoError(t, err)
		require.Equal(t, "bob", got.Owner)
	})

	t.Run("update owner mismatch and missing", func(t *testing.T) {
		store := open(t, opener)
		ctx := context.Background()

		asset, event := registered("h1", "alice", baseTime)
		_, err := store.InsertAsset(ctx, asset, event)
		require.NoError(t, err)

		_, _, err = store.UpdateOwner(ctx, "h1", "mallory", "mallory", transferred("h1", "mallory", "mallory", baseTime))
		require.ErrorIs(t, err, storage.ErrOwnerMismatch)

		_, _, err = store.UpdateOwner(ctx, "nope", "alice", "bob", transferred("nope", "alice", "bob", baseTime))
		require.ErrorIs(t, err, storage.ErrNotFound)

		got, err := store.GetAsset(ctx, "h1")
		require.NoError(t, err)
		require.Equal(t, "alice", got.Owner)

		events, err := store.ListEvents(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
	})

	t.Run("enumeration order", func(t *testing.T) {
		store := open(t, opener)
		ctx := context.Background()

		hashes := []string{"c", "a", "b"}
		for i, hash := range hashes {
			asset, event := registered(hash, "alice", baseTime.Add(time.Duration(i)*time.Second))
			_, err := store.InsertAsset(ctx, asset, event)
			require.NoError(t, err)
		}

		count, err := store.CountAssets(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(len(hashes)), count)

		for i, want := range hashes {
			got, err := store.AssetHashAt(ctx, int64(i))
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
		_, err = store.AssetHashAt(ctx, count)
		require.ErrorIs(t, err, storage.ErrOutOfRange)
		_, err = store.AssetHashAt(ctx, -1)
		require.ErrorIs(t, err, storage.ErrOutOfRange)
	})

	t.Run("list assets pages", func(t *testing.T) {
		store := open(t, opener)
		ctx := context.Background()

		for i := range 5 {
			asset, event := registered(fmt.Sprintf("h%d", i), "alice", baseTime)
			_, err := store.InsertAsset(ctx, asset, event)
			require.NoError(t, err)
		}

		first, err := store.ListAssets(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, first, 2)
		require.Equal(t, "h0", first[0].AssetHash)
		require.Equal(t, "h1", first[1].AssetHash)

		last, err := store.ListAssets(ctx, 4, 2)
		require.NoError(t, err)
		require.Len(t, last, 1)
		require.Equal(t, "h4", last[0].AssetHash)

		beyond, err := store.ListAssets(ctx, 9, 2)
		require.NoError(t, err)
		require.Empty(t, beyond)
	})

	t.Run("list events after sequence", func(t *testing.T) {
		store := open(t, opener)
		ctx := context.Background()

		asset, event := registered("h1", "alice", baseTime)
		_, err := store.InsertAsset(ctx, asset, event)
		require.NoError(t, err)
		_, _, err = store.UpdateOwner(ctx, "h1", "alice", "bob", transferred("h1", "alice", "bob", baseTime))
		require.NoError(t, err)
		_, _, err = store.UpdateOwner(ctx, "h1", "bob", "bob", transferred("h1", "bob", "bob", baseTime))
		require.NoError(t, err)

		events, err := store.ListEvents(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, int64(2), events[0].Sequence)
		require.Equal(t, int64(3), events[1].Sequence)
		require.Equal(t, storage.EventOwnershipTransferred, events[1].Type)
		require.Equal(t, "bob", events[1].PreviousOwner)

		limited, err := store.ListEvents(ctx, 0, 1)
		require.NoError(t, err)
		require.Len(t, limited, 1)
		require.Equal(t, int64(1), limited[0].Sequence)
	})

	t.Run("canceled context", func(t *testing.T) {
		store := open(t, opener)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		asset, event := registered("h1", "alice", baseTime)
		_, err := store.InsertAsset(ctx, asset, event)
		require.ErrorIs(t, err, context.Canceled)

		count, err := store.CountAssets(context.Background())
		require.NoError(t, err)
		require.Zero(t, count)
	})
}

// RunModel checks random operation sequences against an in-test model of
// the mapping and enumeration sequence.
func RunModel(t *testing.T, opener Opener) {
	rapid.Check(t, func(r *rapid.T) {
		store := open(t, opener)
		ctx := context.Background()

		owners := map[string]string{}
		var order []string
		var events int64

		steps := rapid.IntRange(1, 30).Draw(r, "steps")
		for range steps {
			hash := rapid.SampledFrom([]string{"h1", "h2", "h3", "h4"}).Draw(r, "hash")
			principal := rapid.SampledFrom([]string{"alice", "bob", "carol"}).Draw(r, "principal")
			if rapid.Bool().Draw(r, "register") {
				asset, event := registered(hash, principal, baseTime)
				_, err := store.InsertAsset(ctx, asset, event)
				if _, exists := owners[hash]; exists {
					if !errors.Is(err, storage.ErrAlreadyExists) {
						r.Fatalf("duplicate insert %s: got %v", hash, err)
					}
					continue
				}
				if err != nil {
					r.Fatalf("insert %s: %v", hash, err)
				}
				owners[hash] = principal
				order = append(order, hash)
				events++
				continue
			}

			target := rapid.SampledFrom([]string{"alice", "bob", "carol"}).Draw(r, "target")
			_, _, err := store.UpdateOwner(ctx, hash, principal, target, transferred(hash, principal, target, baseTime))
			current, exists := owners[hash]
			switch {
			case !exists:
				if !errors.Is(err, storage.ErrNotFound) {
					r.Fatalf("update missing %s: got %v", hash, err)
				}
			case current != principal:
				if !errors.Is(err, storage.ErrOwnerMismatch) {
					r.Fatalf("update %s by %s (owner %s): got %v", hash, principal, current, err)
				}
			default:
				if err != nil {
					r.Fatalf("update %s: %v", hash, err)
				}
				owners[hash] = target
				events++
			}
		}

		count, err := store.CountAssets(ctx)
		if err != nil {
			r.Fatalf("count: %v", err)
		}
		if count != int64(len(order)) {
			r.Fatalf("count = %d, want %d", count, len(order))
		}
		for i, want := range order {
			got, err := store.AssetHashAt(ctx, int64(i))
			if err != nil || got != want {
				r.Fatalf("hash at %d = %q, %v; want %q", i, got, err, want)
			}
			asset, err := store.GetAsset(ctx, want)
			if err != nil || asset.Owner != owners[want] {
				r.Fatalf("owner of %s = %q, %v; want %q", want, asset.Owner, err, owners[want])
			}
		}
		journal, err := store.ListEvents(ctx, 0, 1000)
		if err != nil {
			r.Fatalf("list events: %v", err)
		}
		if int64(len(journal)) != events {
			r.Fatalf("events = %d, want %d", len(journal), events)
		}
		for i, event := range journal {
			if event.Sequence != int64(i)+1 {
				r.Fatalf("event[%d].Sequence = %d", i, event.Sequence)
			}
		}
	})
}
