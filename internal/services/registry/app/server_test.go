package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	platformgrpc "github.com/louisbranch/assetregistry/internal/platform/grpc"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"
)

func serve(t *testing.T, srv *Server) {
	t.Helper()
	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Errorf("serve: %v", serveErr)
			}
		case <-time.After(10 * time.Second):
			t.Error("timeout waiting for server shutdown")
		}
	})
}

func as(principal string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "x-registry-principal", principal)
}

func TestServer_BufconnRoundTrip(t *testing.T) {
	listener := bufconn.Listen(1 << 20)
	srv, err := NewWithListener(listener, Options{
		Storage: StorageMemory,
		Logger:  zerolog.Nop(),
		Clock:   func() time.Time { return time.Unix(100, 0) },
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	serve(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := platformgrpc.DialWithHealth(ctx, "passthrough:///bufnet", platformgrpc.DialConfig{
		Timeout: 5 * time.Second,
		Logger:  zerolog.Nop(),
		Options: []grpc.DialOption{
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return listener.DialContext(ctx)
			}),
		},
	})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	client := registryv1.NewAssetRegistryServiceClient(conn)

	var header metadata.MD
	registered, err := client.RegisterAsset(as("alice"), &registryv1.RegisterAssetRequest{AssetHash: "h1"}, grpc.Header(&header))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.GetAsset().GetOwner() != "alice" {
		t.Fatalf("owner = %q, want alice", registered.GetAsset().GetOwner())
	}
	if len(header.Get("x-registry-request-id")) == 0 {
		t.Fatal("expected request id response header")
	}

	if _, err := client.RegisterAsset(context.Background(), &registryv1.RegisterAssetRequest{AssetHash: "h2"}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("anonymous register code = %s, want Unauthenticated", status.Code(err))
	}

	if _, err := client.TransferOwnership(as("bob"), &registryv1.TransferOwnershipRequest{AssetHash: "h1", NewOwner: "carol"}); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("non-owner transfer code = %s, want PermissionDenied", status.Code(err))
	}
	transferred, err := client.TransferOwnership(as("alice"), &registryv1.TransferOwnershipRequest{AssetHash: "h1", NewOwner: "bob"})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if transferred.GetPreviousOwner() != "alice" || transferred.GetAsset().GetOwner() != "bob" {
		t.Fatalf("transfer = %+v", transferred)
	}

	count, err := client.GetAssetCount(context.Background(), &registryv1.GetAssetCountRequest{})
	if err != nil || count.GetCount() != 1 {
		t.Fatalf("count = %d, %v", count.GetCount(), err)
	}

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	stream, err := client.WatchEvents(watchCtx, &registryv1.WatchEventsRequest{})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	for want := int64(1); want <= 2; want++ {
		event, err := stream.Recv()
		if err != nil {
			t.Fatalf("recv %d: %v", want, err)
		}
		if event.GetSequence() != want {
			t.Fatalf("sequence = %d, want %d", event.GetSequence(), want)
		}
	}

	if _, err := client.RegisterAsset(as("carol"), &registryv1.RegisterAssetRequest{AssetHash: "h3"}); err != nil {
		t.Fatalf("register h3: %v", err)
	}
	event, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv live: %v", err)
	}
	if event.GetAssetHash() != "h3" || event.GetType() != registryv1.EventType_EVENT_TYPE_ASSET_REGISTERED {
		t.Fatalf("live event = %+v", event)
	}
}

func TestServer_SQLiteWithGateway(t *testing.T) {
	dbPath := t.TempDir() + "/registry.db"
	t.Setenv("ASSET_REGISTRY_DB_PATH", dbPath)
	t.Setenv("ASSET_REGISTRY_HTTP_ADDR", "127.0.0.1:0")
	t.Setenv("ASSET_REGISTRY_LOG_LEVEL", "disabled")

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if srv.HTTPAddr() == "" {
		t.Fatal("expected gateway address")
	}
	serve(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := platformgrpc.DialWithHealth(ctx, srv.Addr(), platformgrpc.DialConfig{Timeout: 5 * time.Second, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	client := registryv1.NewAssetRegistryServiceClient(conn)

	if _, err := client.RegisterAsset(as("alice"), &registryv1.RegisterAssetRequest{AssetHash: "h1", Metadata: "ipfs://a"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	req, err := http.NewRequest(http.MethodGet, "http://"+srv.HTTPAddr()+"/v1/assets/h1", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("gateway get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("gateway status = %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body registryv1.VerifyAssetResponse
	if err := protojson.Unmarshal(data, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.GetAsset().GetOwner() != "alice" || body.GetAsset().GetMetadata() != "ipfs://a" {
		t.Fatalf("gateway asset = %v", body.GetAsset())
	}
}

func TestNewWithListenerRejectsBadConfig(t *testing.T) {
	listener := bufconn.Listen(1024)
	_, err := NewWithListener(listener, Options{Storage: "cassandra", Logger: zerolog.Nop()})
	if err == nil || !strings.Contains(err.Error(), "unsupported storage backend") {
		t.Fatalf("expected unsupported backend error, got %v", err)
	}

	listener = bufconn.Listen(1024)
	_, err = NewWithListener(listener, Options{
		Storage:    StorageMemory,
		Principals: principal.Config{Mode: principal.ModeJWT, Issuer: "i", Audience: "a", Key: []byte("short")},
	})
	if err == nil {
		t.Fatal("expected short key error")
	}

	if _, err := NewWithListener(nil, Options{}); err == nil {
		t.Fatal("expected listener error")
	}
}

func TestOpenStoreBackends(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{StorageSQLite, StorageBolt, StorageMemory} {
		store, err := openStore(Options{
			Storage:  backend,
			DBPath:   dir + "/nested/registry.db",
			BoltPath: dir + "/nested/registry.bolt",
		})
		if err != nil {
			t.Fatalf("open %s: %v", backend, err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("close %s: %v", backend, err)
		}
	}
}
