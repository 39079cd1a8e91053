// Package registryctl implements the registryctl command-line client.
package registryctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	platformgrpc "github.com/louisbranch/assetregistry/internal/platform/grpc"
	"github.com/louisbranch/assetregistry/internal/platform/logging"
	"github.com/louisbranch/assetregistry/internal/platform/timeouts"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Dialer opens a registry client for addr.
type Dialer func(ctx context.Context, addr string) (registryv1.AssetRegistryServiceClient, io.Closer, error)

// Options wires I/O and the dialer; zero values use the process defaults.
type Options struct {
	Out    io.Writer
	Err    io.Writer
	Dialer Dialer
	// Now overrides the token clock.
	Now func() time.Time
}

type app struct {
	v       *viper.Viper
	cfgFile string
	opts    Options
}

// NewRootCommand builds the registryctl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Dialer == nil {
		opts.Dialer = dialRegistry
	}
	a := &app{v: viper.New(), opts: opts}

	root := &cobra.Command{
		Use:           "registryctl",
		Short:         "Register, verify and transfer assets in an asset registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.initConfig()
		},
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ~/.config/assetregistry/registryctl.yaml)")
	flags.String("addr", "localhost:8095", "registry gRPC address")
	flags.StringP("principal", "p", "", "principal the call acts as")
	flags.String("auth-mode", string(principal.ModeHeader), "identity mode: header or jwt")
	flags.String("jwt-hmac-key", "", "base64 HMAC key used to mint tokens in jwt mode")
	flags.String("jwt-issuer", "assetregistry", "token issuer")
	flags.String("jwt-audience", "assetregistry", "token audience")
	flags.Duration("jwt-ttl", time.Hour, "token lifetime")
	flags.StringP("output", "o", "text", "output format: text, json or yaml")
	flags.Duration("timeout", timeouts.GRPCRequest, "per-call timeout")
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.registerCommand(),
		a.verifyCommand(),
		a.transferCommand(),
		a.countCommand(),
		a.existsCommand(),
		a.atCommand(),
		a.listCommand(),
		a.eventsCommand(),
		a.hashCommand(),
		a.tokenCommand(),
	)
	return root
}

// Execute runs registryctl with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(Options{}).ExecuteContext(ctx)
}

func (a *app) initConfig() error {
	a.v.SetEnvPrefix("ASSET_REGISTRY")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	a.v.AddConfigPath(filepath.Join(home, ".config", "assetregistry"))
	a.v.SetConfigName("registryctl")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func (a *app) principalConfig() (principal.Config, error) {
	cfg := principal.Config{
		Mode:     principal.Mode(strings.ToLower(strings.TrimSpace(a.v.GetString("auth-mode")))),
		Issuer:   a.v.GetString("jwt-issuer"),
		Audience: a.v.GetString("jwt-audience"),
		TTL:      a.v.GetDuration("jwt-ttl"),
		Now:      a.opts.Now,
	}
	if raw := strings.TrimSpace(a.v.GetString("jwt-hmac-key")); raw != "" {
		key, err := principal.DecodeKey(raw)
		if err != nil {
			return principal.Config{}, fmt.Errorf("decode jwt-hmac-key: %w", err)
		}
		cfg.Key = key
	}
	if err := cfg.Validate(); err != nil {
		return principal.Config{}, err
	}
	return cfg, nil
}

// call dials the registry and returns a context carrying the configured
// principal.
func (a *app) call(cmd *cobra.Command) (context.Context, registryv1.AssetRegistryServiceClient, func(), error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	principals, err := a.principalConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	client, closer, err := a.opts.Dialer(ctx, a.v.GetString("addr"))
	if err != nil {
		return nil, nil, nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, a.v.GetDuration("timeout"))
	if caller := strings.TrimSpace(a.v.GetString("principal")); caller != "" {
		callCtx, err = principal.AttacherFor(principals)(callCtx, caller)
		if err != nil {
			cancel()
			_ = closer.Close()
			return nil, nil, nil, err
		}
	}
	done := func() {
		cancel()
		_ = closer.Close()
	}
	return callCtx, client, done, nil
}

func dialRegistry(ctx context.Context, addr string) (registryv1.AssetRegistryServiceClient, io.Closer, error) {
	conn, err := platformgrpc.DialWithHealth(ctx, addr, platformgrpc.DialConfig{
		Timeout: timeouts.GRPCDial,
		Logger:  logging.Nop(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to registry at %s: %w", addr, err)
	}
	return registryv1.NewAssetRegistryServiceClient(conn), conn, nil
}
