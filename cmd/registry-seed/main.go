package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	seedcmd "github.com/louisbranch/assetregistry/internal/cmd/registryseed"
	entrypoint "github.com/louisbranch/assetregistry/internal/platform/cmd"
	"github.com/louisbranch/assetregistry/internal/platform/logging"
)

// main applies seed fixtures to a running registry.
func main() {
	logger := logging.New(entrypoint.ServiceSeed)
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("parse flags")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedcmd.Run(ctx, cfg, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("seed failed")
	}
}
