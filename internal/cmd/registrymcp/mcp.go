// Package registrymcp parses MCP bridge flags and serves registry tools on
// stdio.
package registrymcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/assetregistry/internal/platform/cmd"
	"github.com/louisbranch/assetregistry/internal/platform/logging"
	"github.com/louisbranch/assetregistry/internal/services/registry/mcptools"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
)

// Config holds MCP command configuration.
type Config struct {
	MCP mcptools.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var mcpCfg mcptools.Config
	if err := entrypoint.ParseConfig(&mcpCfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&mcpCfg.Addr, "addr", mcpCfg.Addr, "registry server address")
	fs.StringVar(&mcpCfg.Principal, "principal", mcpCfg.Principal, "principal the tools act as")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return Config{MCP: mcpCfg}, nil
}

// Run starts the MCP bridge.
func Run(ctx context.Context, cfg Config) error {
	principals, err := principal.LoadConfigFromEnv(nil)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcptools.Run(ctx, cfg.MCP, principals, logging.New(entrypoint.ServiceMCP))
	})
}
