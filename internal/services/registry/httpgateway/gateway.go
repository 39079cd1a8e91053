// Package httpgateway serves the registry as a JSON HTTP API.
package httpgateway

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	"github.com/louisbranch/assetregistry/internal/platform/requestctx"
	registryservice "github.com/louisbranch/assetregistry/internal/services/registry/api/grpc/registry"
	"github.com/louisbranch/assetregistry/internal/services/registry/ledger"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// RequestIDHeader echoes the request correlation ID.
const RequestIDHeader = "X-Registry-Request-Id"

var jsonOptions = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

type registerRequest struct {
	AssetHash string `json:"asset_hash"`
	Metadata  string `json:"metadata"`
}

type transferRequest struct {
	NewOwner string `json:"new_owner"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Locale  string `json:"locale"`
}

// Gateway routes HTTP requests to the registry.
type Gateway struct {
	registry   *ledger.Registry
	principals principal.Config
	logger     zerolog.Logger
}

// NewHandler builds the gin engine for the registry JSON API.
func NewHandler(registry *ledger.Registry, principals principal.Config, logger zerolog.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	g := &Gateway{registry: registry, principals: principals, logger: logger}

	r := gin.New()
	// Hashes are opaque and may contain "/"; route on the escaped path.
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(gin.Recovery(), g.requestContext())
	r.POST("/v1/assets", g.handleRegister())
	r.GET("/v1/assets", g.handleListAssets())
	r.GET("/v1/assets/:hash", g.handleVerify())
	r.GET("/v1/assets/:hash/exists", g.handleExists())
	r.POST("/v1/assets/:hash/transfer", g.handleTransfer())
	r.GET("/v1/asset-count", g.handleCount())
	r.GET("/v1/asset-index/:index", g.handleAssetAtIndex())
	r.GET("/v1/events", g.handleListEvents())
	return r
}

// requestContext resolves the caller, tags the request ID and logs the call.
func (g *Gateway) requestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		ctx := requestctx.WithRequestID(c.Request.Context(), requestID)

		caller, err := g.principals.Resolve(c.GetHeader)
		if err != nil {
			g.writeError(c, err)
			c.Abort()
		} else {
			if caller != "" {
				ctx = requestctx.WithPrincipal(ctx, caller)
			}
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		}

		g.logger.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("http call")
	}
}

func (g *Gateway) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, context.Canceled):
		c.JSON(499, gin.H{"error": errorBody{Code: "CANCELED", Message: "request canceled"}})
		return
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": errorBody{Code: "DEADLINE_EXCEEDED", Message: "request deadline exceeded"}})
		return
	}
	code, locale, message := apperrors.Localize(err, c.GetHeader("Accept-Language"))
	if code == apperrors.CodeUnknown {
		g.logger.Error().Err(err).Str("path", c.FullPath()).Msg("registry request failed")
	}
	c.JSON(code.HTTPStatus(), gin.H{"error": errorBody{Code: string(code), Message: message, Locale: locale}})
}

// render writes a registry message with the same field names as the gRPC API.
func (g *Gateway) render(c *gin.Context, status int, msg proto.Message) {
	data, err := jsonOptions.Marshal(msg)
	if err != nil {
		g.writeError(c, err)
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}

func (g *Gateway) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "INVALID_BODY", Message: "invalid request body"}})
			return
		}
		asset, err := g.registry.Register(c.Request.Context(), req.AssetHash, req.Metadata)
		if err != nil {
			g.writeError(c, err)
			return
		}
		g.render(c, http.StatusCreated, &registryv1.RegisterAssetResponse{Asset: registryservice.AssetToProto(asset)})
	}
}

func (g *Gateway) handleVerify() gin.HandlerFunc {
	return func(c *gin.Context) {
		asset, err := g.registry.Verify(c.Request.Context(), c.Param("hash"))
		if err != nil {
			g.writeError(c, err)
			return
		}
		g.render(c, http.StatusOK, &registryv1.VerifyAssetResponse{Asset: registryservice.AssetToProto(asset)})
	}
}

func (g *Gateway) handleExists() gin.HandlerFunc {
	return func(c *gin.Context) {
		exists, err := g.registry.AssetExists(c.Request.Context(), c.Param("hash"))
		if err != nil {
			g.writeError(c, err)
			return
		}
		g.render(c, http.StatusOK, &registryv1.AssetExistsResponse{Exists: exists})
	}
}

func (g *Gateway) handleTransfer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req transferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "INVALID_BODY", Message: "invalid request body"}})
			return
		}
		transfer, err := g.registry.TransferOwnership(c.Request.Context(), c.Param("hash"), req.NewOwner)
		if err != nil {
			g.writeError(c, err)
			return
		}
		g.render(c, http.StatusOK, &registryv1.TransferOwnershipResponse{
			Asset:         registryservice.AssetToProto(transfer.Asset),
			PreviousOwner: transfer.PreviousOwner,
		})
	}
}

func (g *Gateway) handleCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := g.registry.AssetCount(c.Request.Context())
		if err != nil {
			g.writeError(c, err)
			return
		}
		g.render(c, http.StatusOK, &registryv1.GetAssetCountResponse{Count: count})
	}
}

func (g *Gateway) handleAssetAtIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.ParseInt(c.Param("index"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "INVALID_INDEX", Message: "index must be an integer"}})
			return
		}
		hash, err := g.registry.AssetHashAtIndex(c.Request.Context(), index)
		if err != nil {
			g.writeError(c, err)
			return
		}
		g.render(c, http.StatusOK, &registryv1.GetAssetHashAtIndexResponse{AssetHash: hash})
	}
}

func (g *Gateway) handleListAssets() gin.HandlerFunc {
	return func(c *gin.Context) {
		pageSize, _ := strconv.ParseInt(c.Query("page_size"), 10, 32)
		page, err := g.registry.ListAssets(c.Request.Context(), int32(pageSize), c.Query("page_token"))
		if err != nil {
			g.writeError(c, err)
			return
		}
		assets := make([]*registryv1.Asset, 0, len(page.Assets))
		for _, asset := range page.Assets {
			assets = append(assets, registryservice.AssetToProto(asset))
		}
		g.render(c, http.StatusOK, &registryv1.ListAssetsResponse{Assets: assets, NextPageToken: page.NextPageToken})
	}
}

func (g *Gateway) handleListEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		after, _ := strconv.ParseInt(c.Query("after_sequence"), 10, 64)
		pageSize, _ := strconv.ParseInt(c.Query("page_size"), 10, 32)
		events, err := g.registry.ListEvents(c.Request.Context(), after, int32(pageSize))
		if err != nil {
			g.writeError(c, err)
			return
		}
		out := make([]*registryv1.Event, 0, len(events))
		for _, event := range events {
			out = append(out, registryservice.EventToProto(event))
		}
		g.render(c, http.StatusOK, &registryv1.ListEventsResponse{Events: out})
	}
}
