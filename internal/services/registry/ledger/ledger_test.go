package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	"github.com/louisbranch/assetregistry/internal/platform/requestctx"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage/memory"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock(time.Unix(100, 0)))}, opts...)
	registry, err := New(memory.New(), opts...)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return registry
}

func as(principal string) context.Context {
	return requestctx.WithPrincipal(context.Background(), principal)
}

func assertCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", code)
	}
	if got := apperrors.GetCode(err); got != code {
		t.Fatalf("error code = %s, want %s (err: %v)", got, code, err)
	}
}

func TestNewRequiresStore(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func TestRegisterAndVerify(t *testing.T) {
	registry := newTestRegistry(t)

	asset, err := registry.Register(as("alice"), "h1", "ipfs://a")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	want := storage.Asset{
		AssetHash:    "h1",
		Owner:        "alice",
		RegisteredAt: time.Unix(100, 0).UTC(),
		Metadata:     "ipfs://a",
	}
	if asset != want {
		t.Fatalf("register = %+v, want %+v", asset, want)
	}

	got, err := registry.Verify(context.Background(), "h1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != want {
		t.Fatalf("verify = %+v, want %+v", got, want)
	}

	exists, err := registry.AssetExists(context.Background(), "h1")
	if err != nil || !exists {
		t.Fatalf("exists = %v, %v", exists, err)
	}
}

func TestRegisterHashIsOpaque(t *testing.T) {
	registry := newTestRegistry(t)

	hashes := []string{" ", "h1", "h1 ", " h1", "H1", "sha256/abc"}
	for i, hash := range hashes {
		if _, err := registry.Register(as("alice"), hash, fmt.Sprintf("m%d", i)); err != nil {
			t.Fatalf("register %q: %v", hash, err)
		}
	}
	for i, hash := range hashes {
		got, err := registry.Verify(context.Background(), hash)
		if err != nil {
			t.Fatalf("verify %q: %v", hash, err)
		}
		if got.AssetHash != hash || got.Metadata != fmt.Sprintf("m%d", i) {
			t.Fatalf("verify %q = %+v", hash, got)
		}
		at, err := registry.AssetHashAtIndex(context.Background(), int64(i))
		if err != nil || at != hash {
			t.Fatalf("index %d = %q, %v; want %q", i, at, err, hash)
		}
	}
	count, err := registry.AssetCount(context.Background())
	if err != nil || count != int64(len(hashes)) {
		t.Fatalf("count = %d, %v; want %d", count, err, len(hashes))
	}
	exists, err := registry.AssetExists(context.Background(), "h1\n")
	if err != nil || exists {
		t.Fatalf("exists(h1\\n) = %v, %v; want false", exists, err)
	}
}

func TestRegisterEmptyHash(t *testing.T) {
	registry := newTestRegistry(t)

	for _, metadata := range []string{"", "ipfs://a", strings.Repeat("x", 512)} {
		_, err := registry.Register(as("alice"), "", metadata)
		assertCode(t, err, apperrors.CodeAssetHashEmpty)
	}
	_, err := registry.Register(context.Background(), "", "m")
	assertCode(t, err, apperrors.CodeAssetHashEmpty)

	count, err := registry.AssetCount(context.Background())
	if err != nil || count != 0 {
		t.Fatalf("count = %d, %v; want 0", count, err)
	}
}

func TestRegisterRequiresCaller(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Register(context.Background(), "h1", "")
	assertCode(t, err, apperrors.CodeCallerMissing)

	exists, err := registry.AssetExists(context.Background(), "h1")
	if err != nil || exists {
		t.Fatalf("exists = %v, %v; want false", exists, err)
	}
}

func TestRegisterDuplicateKeepsOriginal(t *testing.T) {
	clock := time.Unix(100, 0)
	registry := newTestRegistry(t, WithClock(func() time.Time { return clock }))

	original, err := registry.Register(as("alice"), "h1", "ipfs://a")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	clock = time.Unix(200, 0)
	for _, caller := range []string{"alice", "bob"} {
		_, err := registry.Register(as(caller), "h1", "ipfs://b")
		assertCode(t, err, apperrors.CodeAssetAlreadyRegistered)
		if meta := apperrors.GetMetadata(err); meta["AssetHash"] != "h1" {
			t.Fatalf("metadata = %v", meta)
		}
	}

	got, err := registry.Verify(context.Background(), "h1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != original {
		t.Fatalf("verify = %+v, want %+v", got, original)
	}
	count, _ := registry.AssetCount(context.Background())
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestVerifyMissing(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Verify(context.Background(), "nope")
	assertCode(t, err, apperrors.CodeAssetNotFound)

	_, err = registry.Verify(context.Background(), " ")
	assertCode(t, err, apperrors.CodeAssetNotFound)

	_, err = registry.Verify(context.Background(), "")
	assertCode(t, err, apperrors.CodeAssetHashEmpty)
}

func TestTransferOwnershipScenario(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	if _, err := registry.Register(as("Alice"), "h1", "ipfs://a"); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := registry.Verify(ctx, "h1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.AssetHash != "h1" || got.Owner != "Alice" || got.RegisteredAt.Unix() != 100 || got.Metadata != "ipfs://a" {
		t.Fatalf("verify = %+v", got)
	}
	if count, _ := registry.AssetCount(ctx); count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	transfer, err := registry.TransferOwnership(as("Alice"), "h1", "Bob")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if transfer.Asset.Owner != "Bob" || transfer.PreviousOwner != "Alice" {
		t.Fatalf("transfer = %+v", transfer)
	}
	if transfer.Event.Type != storage.EventOwnershipTransferred ||
		transfer.Event.PreviousOwner != "Alice" || transfer.Event.NewOwner != "Bob" {
		t.Fatalf("event = %+v", transfer.Event)
	}

	_, err = registry.TransferOwnership(as("Alice"), "h1", "Carol")
	assertCode(t, err, apperrors.CodeAssetNotOwner)

	got, _ = registry.Verify(ctx, "h1")
	if got.Owner != "Bob" {
		t.Fatalf("owner = %q, want Bob", got.Owner)
	}

	if _, err := registry.TransferOwnership(as("Bob"), "h1", "Carol"); err != nil {
		t.Fatalf("transfer by new owner: %v", err)
	}

	events, err := registry.ListEvents(ctx, 0, 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	if events[0].Type != storage.EventAssetRegistered || events[0].Owner != "Alice" || events[0].OccurredAt.Unix() != 100 {
		t.Fatalf("registered event = %+v", events[0])
	}
}

func TestTransferOwnershipCheckOrder(t *testing.T) {
	registry := newTestRegistry(t)
	if _, err := registry.Register(as("alice"), "h1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name     string
		ctx      context.Context
		hash     string
		newOwner string
		code     apperrors.Code
	}{
		{name: "missing caller", ctx: context.Background(), hash: "h1", newOwner: "bob", code: apperrors.CodeCallerMissing},
		{name: "missing asset before empty owner", ctx: as("alice"), hash: "nope", newOwner: "", code: apperrors.CodeAssetNotFound},
		{name: "empty hash", ctx: as("alice"), hash: "", newOwner: "bob", code: apperrors.CodeAssetNotFound},
		{name: "not owner before empty owner", ctx: as("bob"), hash: "h1", newOwner: "", code: apperrors.CodeAssetNotOwner},
		{name: "empty new owner", ctx: as("alice"), hash: "h1", newOwner: "", code: apperrors.CodeAssetNewOwnerEmpty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := registry.TransferOwnership(tc.ctx, tc.hash, tc.newOwner)
			assertCode(t, err, tc.code)
		})
	}

	got, _ := registry.Verify(context.Background(), "h1")
	if got.Owner != "alice" {
		t.Fatalf("owner = %q, want alice", got.Owner)
	}
	events, _ := registry.ListEvents(context.Background(), 0, 0)
	if len(events) != 1 {
		t.Fatalf("failed transfers must not journal events, got %d", len(events))
	}
}

func TestSelfTransferEmitsEvent(t *testing.T) {
	registry := newTestRegistry(t)
	if _, err := registry.Register(as("alice"), "h1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	transfer, err := registry.TransferOwnership(as("alice"), "h1", "alice")
	if err != nil {
		t.Fatalf("self transfer: %v", err)
	}
	if transfer.Asset.Owner != "alice" || transfer.Event.Sequence != 2 {
		t.Fatalf("transfer = %+v", transfer)
	}
}

func TestTransferNewOwnerIsOpaque(t *testing.T) {
	registry := newTestRegistry(t)
	if _, err := registry.Register(as("alice"), "h1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	transfer, err := registry.TransferOwnership(as("alice"), "h1", " bob")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if transfer.Asset.Owner != " bob" || transfer.Event.NewOwner != " bob" {
		t.Fatalf("transfer = %+v", transfer)
	}
	_, err = registry.TransferOwnership(as("bob"), "h1", "carol")
	assertCode(t, err, apperrors.CodeAssetNotOwner)
}

func TestAssetCountUnaffectedByTransfers(t *testing.T) {
	registry := newTestRegistry(t)
	for i := range 3 {
		if _, err := registry.Register(as("alice"), fmt.Sprintf("h%d", i), ""); err != nil {
			t.Fatalf("register: %v", err)
		}
	}
	for i := range 3 {
		if _, err := registry.TransferOwnership(as("alice"), fmt.Sprintf("h%d", i), "bob"); err != nil {
			t.Fatalf("transfer: %v", err)
		}
	}
	count, err := registry.AssetCount(context.Background())
	if err != nil || count != 3 {
		t.Fatalf("count = %d, %v; want 3", count, err)
	}
}

func TestAssetHashAtIndex(t *testing.T) {
	registry := newTestRegistry(t)
	hashes := []string{"zeta", "alpha", "mid"}
	for _, hash := range hashes {
		if _, err := registry.Register(as("alice"), hash, ""); err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	for i, want := range hashes {
		got, err := registry.AssetHashAtIndex(context.Background(), int64(i))
		if err != nil {
			t.Fatalf("index %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("index %d = %q, want %q", i, got, want)
		}
	}

	for _, index := range []int64{3, 100, -1} {
		_, err := registry.AssetHashAtIndex(context.Background(), index)
		assertCode(t, err, apperrors.CodeAssetIndexOutOfRange)
	}
	_, err := registry.AssetHashAtIndex(context.Background(), 3)
	meta := apperrors.GetMetadata(err)
	if meta["Index"] != "3" || meta["Count"] != "3" {
		t.Fatalf("metadata = %v", meta)
	}
}

func TestAssetExistsNeverFailsOnDomainInput(t *testing.T) {
	registry := newTestRegistry(t)
	for _, hash := range []string{"", "  ", "missing"} {
		exists, err := registry.AssetExists(context.Background(), hash)
		if err != nil || exists {
			t.Fatalf("exists(%q) = %v, %v", hash, exists, err)
		}
	}
}

func TestListAssetsPages(t *testing.T) {
	registry := newTestRegistry(t)
	for i := range 5 {
		if _, err := registry.Register(as("alice"), fmt.Sprintf("h%d", i), ""); err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	var seen []string
	token := ""
	for {
		page, err := registry.ListAssets(context.Background(), 2, token)
		if err != nil {
			t.Fatalf("list assets: %v", err)
		}
		for _, asset := range page.Assets {
			seen = append(seen, asset.AssetHash)
		}
		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}
	if strings.Join(seen, ",") != "h0,h1,h2,h3,h4" {
		t.Fatalf("seen = %v", seen)
	}

	_, err := registry.ListAssets(context.Background(), 2, "bogus")
	assertCode(t, err, apperrors.CodePageTokenInvalid)
}

func TestCanceledContext(t *testing.T) {
	registry := newTestRegistry(t)
	ctx, cancel := context.WithCancel(as("alice"))
	cancel()

	_, err := registry.Register(ctx, "h1", "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("register err = %v, want context.Canceled", err)
	}
	_, err = registry.AssetCount(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("count err = %v, want context.Canceled", err)
	}
}

type failingStore struct {
	storage.Store
}

func (failingStore) CountAssets(context.Context) (int64, error) {
	return 0, errors.New("disk on fire")
}

func TestStorageFaultIsNotDomainError(t *testing.T) {
	registry, err := New(failingStore{Store: memory.New()})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	_, err = registry.AssetCount(context.Background())
	if err == nil {
		t.Fatal("expected storage error")
	}
	if apperrors.GetCode(err) != apperrors.CodeUnknown {
		t.Fatalf("code = %s, want unknown", apperrors.GetCode(err))
	}
}

func TestConcurrentRegistrationsOfSameHash(t *testing.T) {
	registry := newTestRegistry(t)

	const callers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := registry.Register(as(fmt.Sprintf("p%d", i)), "contested", "")
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			if apperrors.GetCode(err) != apperrors.CodeAssetAlreadyRegistered {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("successes = %d, want 1", successes)
	}
	if count, _ := registry.AssetCount(context.Background()); count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestWatchEventsReplaysAndFollows(t *testing.T) {
	registry := newTestRegistry(t)
	if _, err := registry.Register(as("alice"), "h1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan storage.Event, 8)
	done := make(chan error, 1)
	go func() {
		done <- registry.WatchEvents(ctx, 0, func(event storage.Event) error {
			received <- event
			return nil
		})
	}()

	first := <-received
	if first.Sequence != 1 || first.Type != storage.EventAssetRegistered {
		t.Fatalf("first = %+v", first)
	}

	if _, err := registry.TransferOwnership(as("alice"), "h1", "bob"); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	select {
	case second := <-received:
		if second.Sequence != 2 || second.NewOwner != "bob" {
			t.Fatalf("second = %+v", second)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for followed event")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("watch err = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchEventsStopsOnSendError(t *testing.T) {
	registry := newTestRegistry(t)
	if _, err := registry.Register(as("alice"), "h1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	sendErr := errors.New("client gone")
	err := registry.WatchEvents(context.Background(), 0, func(storage.Event) error { return sendErr })
	if !errors.Is(err, sendErr) {
		t.Fatalf("err = %v, want %v", err, sendErr)
	}
	if registry.Hub().Len() != 0 {
		t.Fatal("watch must release its subscription")
	}
}
