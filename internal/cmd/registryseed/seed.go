// Package registryseed parses seed command flags and applies fixtures.
package registryseed

import (
	"context"
	"flag"
	"io"

	entrypoint "github.com/louisbranch/assetregistry/internal/platform/cmd"
	"github.com/louisbranch/assetregistry/internal/platform/logging"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/louisbranch/assetregistry/internal/services/registry/seed"
)

// Config holds seed command configuration.
type Config struct {
	Seed seed.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var seedCfg seed.Config
	if err := entrypoint.ParseConfig(&seedCfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&seedCfg.Addr, "addr", seedCfg.Addr, "registry server address")
	fs.StringVar(&seedCfg.Fixtures, "fixtures", seedCfg.Fixtures, "fixture file or glob")
	fs.BoolVar(&seedCfg.Verbose, "v", false, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return Config{Seed: seedCfg}, nil
}

// Run applies the configured fixtures to the registry.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	principals, err := principal.LoadConfigFromEnv(nil)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		return seed.Run(ctx, cfg.Seed, principals, out, logging.New(entrypoint.ServiceSeed))
	})
}
