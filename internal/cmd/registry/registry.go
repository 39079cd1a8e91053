// Package registry parses registry service flags and launches the service.
package registry

import (
	"context"
	"flag"
	"strings"

	entrypoint "github.com/louisbranch/assetregistry/internal/platform/cmd"
	server "github.com/louisbranch/assetregistry/internal/services/registry/app"
)

// Config holds registry command configuration.
type Config struct {
	Port int `env:"PORT" envDefault:"8095"`
	// Addr overrides Port with a full listen address.
	Addr string `env:"LISTEN_ADDR"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The registry gRPC server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The registry gRPC listen address (overrides -port)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the registry gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRegistry, func(context.Context) error {
		if addr := strings.TrimSpace(cfg.Addr); addr != "" {
			srv, err := server.NewWithAddr(addr)
			if err != nil {
				return err
			}
			return srv.Serve(ctx)
		}
		return server.Run(ctx, cfg.Port)
	})
}
