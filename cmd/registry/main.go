// Package main starts the registry gRPC service process lifecycle.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	registrycmd "github.com/louisbranch/assetregistry/internal/cmd/registry"
	entrypoint "github.com/louisbranch/assetregistry/internal/platform/cmd"
	"github.com/louisbranch/assetregistry/internal/platform/logging"
)

func main() {
	logger := logging.New(entrypoint.ServiceRegistry)
	cfg, err := registrycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("parse flags")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := registrycmd.Run(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to serve")
	}
}
