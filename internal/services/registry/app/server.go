// Package server wires the registry runtime, its gRPC API and the optional
// HTTP gateway.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	"github.com/louisbranch/assetregistry/internal/platform/config"
	"github.com/louisbranch/assetregistry/internal/platform/logging"
	"github.com/louisbranch/assetregistry/internal/platform/timeouts"
	grpcmeta "github.com/louisbranch/assetregistry/internal/services/registry/api/grpc/metadata"
	registryservice "github.com/louisbranch/assetregistry/internal/services/registry/api/grpc/registry"
	"github.com/louisbranch/assetregistry/internal/services/registry/httpgateway"
	"github.com/louisbranch/assetregistry/internal/services/registry/ledger"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage"
	registrybolt "github.com/louisbranch/assetregistry/internal/services/registry/storage/bolt"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage/memory"
	registrysqlite "github.com/louisbranch/assetregistry/internal/services/registry/storage/sqlite"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageBolt   = "bolt"
	StorageMemory = "memory"
)

type serverEnv struct {
	Storage  string `env:"STORAGE" envDefault:"sqlite"`
	DBPath   string `env:"DB_PATH"`
	BoltPath string `env:"BOLT_PATH"`
	HTTPAddr string `env:"HTTP_ADDR"`
}

// Options configures a registry server.
type Options struct {
	// Storage selects the backend: sqlite, bolt or memory.
	Storage  string
	DBPath   string
	BoltPath string
	// HTTPAddr enables the JSON gateway when set.
	HTTPAddr   string
	Principals principal.Config
	Logger     zerolog.Logger
	// Clock overrides the registry clock.
	Clock func() time.Time
}

// LoadOptions reads server options from the environment.
func LoadOptions() (Options, error) {
	var env serverEnv
	if err := config.ParseEnv(&env); err != nil {
		return Options{}, fmt.Errorf("parse server env: %w", err)
	}
	if strings.TrimSpace(env.DBPath) == "" {
		env.DBPath = filepath.Join("data", "registry.db")
	}
	if strings.TrimSpace(env.BoltPath) == "" {
		env.BoltPath = filepath.Join("data", "registry.bolt")
	}
	principals, err := principal.LoadConfigFromEnv(nil)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Storage:    env.Storage,
		DBPath:     env.DBPath,
		BoltPath:   env.BoltPath,
		HTTPAddr:   strings.TrimSpace(env.HTTPAddr),
		Principals: principals,
		Logger:     logging.New("registry"),
	}, nil
}

// Server hosts the registry gRPC API, the HTTP gateway and the store
// lifecycle.
type Server struct {
	listener     net.Listener
	grpcServer   *grpc.Server
	health       *health.Server
	httpListener net.Listener
	httpServer   *http.Server
	store        storage.Store
	logger       zerolog.Logger
}

// New creates a configured registry server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured registry server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	opts, err := LoadOptions()
	if err != nil {
		return nil, err
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return NewWithListener(listener, opts)
}

// NewWithListener creates a registry server serving gRPC on listener. The
// listener is closed if construction fails.
func NewWithListener(listener net.Listener, opts Options) (*Server, error) {
	if listener == nil {
		return nil, errors.New("listener is required")
	}
	if opts.Principals.Mode == "" {
		opts.Principals.Mode = principal.ModeHeader
	}
	if err := opts.Principals.Validate(); err != nil {
		_ = listener.Close()
		return nil, err
	}

	store, err := openStore(opts)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	ledgerOpts := []ledger.Option{ledger.WithLogger(opts.Logger)}
	if opts.Clock != nil {
		ledgerOpts = append(ledgerOpts, ledger.WithClock(opts.Clock))
	}
	registry, err := ledger.New(store, ledgerOpts...)
	if err != nil {
		_ = store.Close()
		_ = listener.Close()
		return nil, err
	}

	var httpListener net.Listener
	var httpServer *http.Server
	if opts.HTTPAddr != "" {
		httpListener, err = net.Listen("tcp", opts.HTTPAddr)
		if err != nil {
			_ = store.Close()
			_ = listener.Close()
			return nil, fmt.Errorf("listen on %s: %w", opts.HTTPAddr, err)
		}
		httpServer = &http.Server{
			Handler:           httpgateway.NewHandler(registry, opts.Principals, opts.Logger),
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
	}

	interceptorOpts := grpcmeta.Options{Principals: opts.Principals, Logger: opts.Logger}
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcmeta.UnaryServerInterceptor(interceptorOpts)),
		grpc.ChainStreamInterceptor(grpcmeta.StreamServerInterceptor(interceptorOpts)),
	)
	healthServer := health.NewServer()
	registryv1.RegisterAssetRegistryServiceServer(grpcServer, registryservice.NewService(registry))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(registryv1.AssetRegistryService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:     listener,
		grpcServer:   grpcServer,
		health:       healthServer,
		httpListener: httpListener,
		httpServer:   httpServer,
		store:        store,
		logger:       opts.Logger,
	}, nil
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// HTTPAddr returns the gateway listener address, or "" when disabled.
func (s *Server) HTTPAddr() string {
	if s == nil || s.httpListener == nil {
		return ""
	}
	return s.httpListener.Addr().String()
}

// Run creates and serves a registry server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server, and the gateway when enabled, until context
// cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	s.logger.Info().Str("addr", s.Addr()).Msg("registry server listening")
	serveErr := make(chan error, 2)
	go func() {
		if err := s.grpcServer.Serve(s.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			serveErr <- fmt.Errorf("serve gRPC: %w", err)
			return
		}
		serveErr <- nil
	}()
	if s.httpServer != nil {
		s.logger.Info().Str("addr", s.HTTPAddr()).Msg("registry gateway listening")
		go func() {
			if err := s.httpServer.Serve(s.httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- fmt.Errorf("serve HTTP: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		return s.shutdown()
	case err := <-serveErr:
		if err != nil {
			s.logger.Error().Err(err).Msg("registry server stopped")
		}
		if shutdownErr := s.shutdown(); err == nil {
			err = shutdownErr
		}
		return err
	}
}

// shutdown drains the gateway and the gRPC server. Open event watches are
// cut after timeouts.Shutdown.
func (s *Server) shutdown() error {
	if s.health != nil {
		s.health.Shutdown()
	}
	var shutdownErr error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("shutdown HTTP: %w", err)
		}
		cancel()
	}

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(timeouts.Shutdown):
		s.grpcServer.Stop()
		<-stopped
	}
	return shutdownErr
}

// Close releases registry server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.httpListener != nil {
		_ = s.httpListener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error().Err(err).Msg("close registry store")
		}
	}
}

func openStore(opts Options) (storage.Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Storage)) {
	case "", StorageSQLite:
		if err := ensureDir(opts.DBPath); err != nil {
			return nil, err
		}
		store, err := registrysqlite.Open(opts.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open registry sqlite store: %w", err)
		}
		return store, nil
	case StorageBolt:
		if err := ensureDir(opts.BoltPath); err != nil {
			return nil, err
		}
		store, err := registrybolt.Open(opts.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("open registry bolt store: %w", err)
		}
		return store, nil
	case StorageMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", opts.Storage)
	}
}

func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	return nil
}
