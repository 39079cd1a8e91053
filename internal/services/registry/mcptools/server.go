// Package mcptools exposes registry operations as MCP tools acting for one
// configured principal.
package mcptools

import (
	"context"
	"errors"
	"fmt"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	platformgrpc "github.com/louisbranch/assetregistry/internal/platform/grpc"
	"github.com/louisbranch/assetregistry/internal/platform/timeouts"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

const (
	serverName    = "asset-registry"
	serverVersion = "0.1.0"
)

// Config holds MCP bridge configuration.
type Config struct {
	Addr      string `env:"ADDR" envDefault:"localhost:8095"`
	Principal string `env:"MCP_PRINCIPAL"`
}

// Server bridges MCP tool calls to the registry gRPC API.
type Server struct {
	mcpServer *mcp.Server
	client    registryv1.AssetRegistryServiceClient
	conn      *grpc.ClientConn
	principal string
	attach    principal.Attacher
}

// New builds an MCP server over client. Mutating tools fail with
// CALLER_MISSING when caller is empty.
func New(client registryv1.AssetRegistryServiceClient, caller string, attach principal.Attacher) *Server {
	if attach == nil {
		attach = principal.AttachHeader
	}
	s := &Server{
		mcpServer: mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil),
		client:    client,
		principal: caller,
		attach:    attach,
	}
	mcp.AddTool(s.mcpServer, RegisterAssetTool(), s.registerAssetHandler())
	mcp.AddTool(s.mcpServer, VerifyAssetTool(), s.verifyAssetHandler())
	mcp.AddTool(s.mcpServer, TransferOwnershipTool(), s.transferOwnershipHandler())
	mcp.AddTool(s.mcpServer, AssetCountTool(), s.assetCountHandler())
	mcp.AddTool(s.mcpServer, AssetExistsTool(), s.assetExistsHandler())
	mcp.AddTool(s.mcpServer, AssetAtIndexTool(), s.assetAtIndexHandler())
	return s
}

// Dial connects to the registry at cfg.Addr and builds an MCP server for
// cfg.Principal.
func Dial(ctx context.Context, cfg Config, principals principal.Config, logger zerolog.Logger) (*Server, error) {
	conn, err := platformgrpc.DialWithHealth(ctx, cfg.Addr, platformgrpc.DialConfig{
		Timeout: timeouts.GRPCDial,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to registry at %s: %w", cfg.Addr, err)
	}
	s := New(registryv1.NewAssetRegistryServiceClient(conn), cfg.Principal, principal.AttacherFor(principals))
	s.conn = conn
	return s, nil
}

// Serve runs the MCP session on transport until ctx is canceled or the peer
// disconnects.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is not configured")
	}
	if transport == nil {
		return errors.New("mcp transport is required")
	}
	err := s.mcpServer.Run(ctx, transport)
	if err != nil && errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close releases the registry connection.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Run dials the registry and serves MCP over stdio.
func Run(ctx context.Context, cfg Config, principals principal.Config, logger zerolog.Logger) error {
	s, err := Dial(ctx, cfg, principals, logger)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Serve(ctx, &mcp.StdioTransport{})
}
