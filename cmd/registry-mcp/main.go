package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	mcpcmd "github.com/louisbranch/assetregistry/internal/cmd/registrymcp"
	entrypoint "github.com/louisbranch/assetregistry/internal/platform/cmd"
	"github.com/louisbranch/assetregistry/internal/platform/logging"
)

// main starts the registry MCP bridge on stdio.
func main() {
	logger := logging.New(entrypoint.ServiceMCP)
	cfg, err := mcpcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("parse flags")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpcmd.Run(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to serve MCP")
	}
}
