package mcptools

import (
	"context"
	"fmt"
	"time"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	"github.com/louisbranch/assetregistry/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AssetResult is the tool view of a registered asset.
type AssetResult struct {
	AssetHash    string `json:"asset_hash" jsonschema:"asset content hash"`
	Owner        string `json:"owner" jsonschema:"current owner principal"`
	RegisteredAt string `json:"registered_at" jsonschema:"RFC3339 registration timestamp"`
	Metadata     string `json:"metadata,omitempty" jsonschema:"opaque metadata recorded at registration"`
}

// RegisterAssetInput represents the MCP tool input for registering an asset.
type RegisterAssetInput struct {
	AssetHash string `json:"asset_hash" jsonschema:"asset content hash to claim"`
	Metadata  string `json:"metadata,omitempty" jsonschema:"optional opaque metadata"`
}

// VerifyAssetInput represents the MCP tool input for looking up an asset.
type VerifyAssetInput struct {
	AssetHash string `json:"asset_hash" jsonschema:"asset content hash"`
}

// TransferOwnershipInput represents the MCP tool input for a transfer.
type TransferOwnershipInput struct {
	AssetHash string `json:"asset_hash" jsonschema:"asset content hash"`
	NewOwner  string `json:"new_owner" jsonschema:"principal receiving the asset"`
}

// TransferOwnershipResult represents the MCP tool output for a transfer.
type TransferOwnershipResult struct {
	Asset         AssetResult `json:"asset" jsonschema:"asset after the transfer"`
	PreviousOwner string      `json:"previous_owner" jsonschema:"owner before the transfer"`
}

// AssetCountInput is empty; the count tool takes no arguments.
type AssetCountInput struct{}

// AssetCountResult represents the MCP tool output for the asset count.
type AssetCountResult struct {
	Count int64 `json:"count" jsonschema:"number of registered assets"`
}

// AssetExistsInput represents the MCP tool input for an existence check.
type AssetExistsInput struct {
	AssetHash string `json:"asset_hash" jsonschema:"asset content hash"`
}

// AssetExistsResult represents the MCP tool output for an existence check.
type AssetExistsResult struct {
	Exists bool `json:"exists" jsonschema:"whether the hash is registered"`
}

// AssetAtIndexInput represents the MCP tool input for index enumeration.
type AssetAtIndexInput struct {
	Index int64 `json:"index" jsonschema:"zero-based registration index"`
}

// AssetAtIndexResult represents the MCP tool output for index enumeration.
type AssetAtIndexResult struct {
	AssetHash string `json:"asset_hash" jsonschema:"hash registered at the index"`
}

func RegisterAssetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "asset_register",
		Description: "Register an asset hash owned by the configured principal",
	}
}

func VerifyAssetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "asset_verify",
		Description: "Look up the owner, registration time and metadata of an asset",
	}
}

func TransferOwnershipTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "asset_transfer",
		Description: "Transfer an asset owned by the configured principal to another principal",
	}
}

func AssetCountTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "asset_count",
		Description: "Count registered assets",
	}
}

func AssetExistsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "asset_exists",
		Description: "Check whether an asset hash is registered",
	}
}

func AssetAtIndexTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "asset_at_index",
		Description: "Return the asset hash registered at a zero-based index",
	}
}

func assetResult(asset *registryv1.Asset) AssetResult {
	return AssetResult{
		AssetHash:    asset.GetAssetHash(),
		Owner:        asset.GetOwner(),
		RegisteredAt: asset.GetRegisteredAt().AsTime().Format(time.RFC3339Nano),
		Metadata:     asset.GetMetadata(),
	}
}

// callError renders a registry status as a tool failure message.
func callError(op string, err error) error {
	code := apperrors.CodeFromStatus(err)
	if code == apperrors.CodeUnknown {
		return fmt.Errorf("%s failed: %w", op, err)
	}
	return fmt.Errorf("%s failed: %s: %s", op, code, apperrors.LocalizedMessageFromStatus(err))
}

func (s *Server) callContext(ctx context.Context) (context.Context, context.CancelFunc, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	if s.principal == "" {
		return runCtx, cancel, nil
	}
	callCtx, err := s.attach(runCtx, s.principal)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("attach principal: %w", err)
	}
	return callCtx, cancel, nil
}

func (s *Server) registerAssetHandler() mcp.ToolHandlerFor[RegisterAssetInput, AssetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RegisterAssetInput) (*mcp.CallToolResult, AssetResult, error) {
		callCtx, cancel, err := s.callContext(ctx)
		if err != nil {
			return nil, AssetResult{}, err
		}
		defer cancel()

		response, err := s.client.RegisterAsset(callCtx, &registryv1.RegisterAssetRequest{AssetHash: input.AssetHash, Metadata: input.Metadata})
		if err != nil {
			return nil, AssetResult{}, callError("asset register", err)
		}
		return nil, assetResult(response.GetAsset()), nil
	}
}

func (s *Server) verifyAssetHandler() mcp.ToolHandlerFor[VerifyAssetInput, AssetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input VerifyAssetInput) (*mcp.CallToolResult, AssetResult, error) {
		callCtx, cancel, err := s.callContext(ctx)
		if err != nil {
			return nil, AssetResult{}, err
		}
		defer cancel()

		response, err := s.client.VerifyAsset(callCtx, &registryv1.VerifyAssetRequest{AssetHash: input.AssetHash})
		if err != nil {
			return nil, AssetResult{}, callError("asset verify", err)
		}
		return nil, assetResult(response.GetAsset()), nil
	}
}

func (s *Server) transferOwnershipHandler() mcp.ToolHandlerFor[TransferOwnershipInput, TransferOwnershipResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TransferOwnershipInput) (*mcp.CallToolResult, TransferOwnershipResult, error) {
		callCtx, cancel, err := s.callContext(ctx)
		if err != nil {
			return nil, TransferOwnershipResult{}, err
		}
		defer cancel()

		response, err := s.client.TransferOwnership(callCtx, &registryv1.TransferOwnershipRequest{AssetHash: input.AssetHash, NewOwner: input.NewOwner})
		if err != nil {
			return nil, TransferOwnershipResult{}, callError("asset transfer", err)
		}
		return nil, TransferOwnershipResult{
			Asset:         assetResult(response.GetAsset()),
			PreviousOwner: response.GetPreviousOwner(),
		}, nil
	}
}

func (s *Server) assetCountHandler() mcp.ToolHandlerFor[AssetCountInput, AssetCountResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ AssetCountInput) (*mcp.CallToolResult, AssetCountResult, error) {
		callCtx, cancel, err := s.callContext(ctx)
		if err != nil {
			return nil, AssetCountResult{}, err
		}
		defer cancel()

		response, err := s.client.GetAssetCount(callCtx, &registryv1.GetAssetCountRequest{})
		if err != nil {
			return nil, AssetCountResult{}, callError("asset count", err)
		}
		return nil, AssetCountResult{Count: response.GetCount()}, nil
	}
}

func (s *Server) assetExistsHandler() mcp.ToolHandlerFor[AssetExistsInput, AssetExistsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AssetExistsInput) (*mcp.CallToolResult, AssetExistsResult, error) {
		callCtx, cancel, err := s.callContext(ctx)
		if err != nil {
			return nil, AssetExistsResult{}, err
		}
		defer cancel()

		response, err := s.client.AssetExists(callCtx, &registryv1.AssetExistsRequest{AssetHash: input.AssetHash})
		if err != nil {
			return nil, AssetExistsResult{}, callError("asset exists", err)
		}
		return nil, AssetExistsResult{Exists: response.GetExists()}, nil
	}
}

func (s *Server) assetAtIndexHandler() mcp.ToolHandlerFor[AssetAtIndexInput, AssetAtIndexResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AssetAtIndexInput) (*mcp.CallToolResult, AssetAtIndexResult, error) {
		callCtx, cancel, err := s.callContext(ctx)
		if err != nil {
			return nil, AssetAtIndexResult{}, err
		}
		defer cancel()

		response, err := s.client.GetAssetHashAtIndex(callCtx, &registryv1.GetAssetHashAtIndexRequest{Index: input.Index})
		if err != nil {
			return nil, AssetAtIndexResult{}, callError("asset at index", err)
		}
		return nil, AssetAtIndexResult{AssetHash: response.GetAssetHash()}, nil
	}
}
