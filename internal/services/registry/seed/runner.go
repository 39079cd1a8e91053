// Package seed applies TOML fixtures to a running registry through its gRPC
// API.
package seed

import (
	"context"
	"fmt"
	"io"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	apperrors "github.com/louisbranch/assetregistry/internal/platform/errors"
	platformgrpc "github.com/louisbranch/assetregistry/internal/platform/grpc"
	"github.com/louisbranch/assetregistry/internal/platform/timeouts"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/rs/zerolog"
)

// Config holds seed runner configuration.
type Config struct {
	Addr     string `env:"ADDR" envDefault:"localhost:8095"`
	Fixtures string `env:"SEED_FIXTURES" envDefault:"fixtures/*.toml"`
	Verbose  bool
}

// Result counts what a fixture run changed.
type Result struct {
	Registered  int
	Transferred int
	Skipped     int
}

// Runner applies fixtures through a registry client.
type Runner struct {
	client   registryv1.AssetRegistryServiceClient
	identity principal.Attacher
	logger   zerolog.Logger
}

// NewRunner builds a runner. A nil identity sends header principals.
func NewRunner(client registryv1.AssetRegistryServiceClient, identity principal.Attacher, logger zerolog.Logger) *Runner {
	if identity == nil {
		identity = principal.AttachHeader
	}
	return &Runner{client: client, identity: identity, logger: logger}
}

// Apply registers the fixture's assets then performs its transfers in order.
// Entries already reflected in the registry are skipped so fixtures can be
// reapplied.
func (r *Runner) Apply(ctx context.Context, fixture Fixture) (Result, error) {
	var result Result
	for _, asset := range fixture.Assets {
		skipped, err := r.register(ctx, asset)
		if err != nil {
			return result, fmt.Errorf("register %s: %w", asset.Hash, err)
		}
		if skipped {
			result.Skipped++
		} else {
			result.Registered++
		}
	}
	for _, transfer := range fixture.Transfers {
		skipped, err := r.transfer(ctx, transfer)
		if err != nil {
			return result, fmt.Errorf("transfer %s: %w", transfer.Hash, err)
		}
		if skipped {
			result.Skipped++
		} else {
			result.Transferred++
		}
	}
	return result, nil
}

func (r *Runner) call(ctx context.Context, caller string) (context.Context, context.CancelFunc, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	callCtx, err := r.identity(callCtx, caller)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return callCtx, cancel, nil
}

func (r *Runner) register(ctx context.Context, asset AssetFixture) (bool, error) {
	callCtx, cancel, err := r.call(ctx, asset.Owner)
	if err != nil {
		return false, err
	}
	defer cancel()

	_, err = r.client.RegisterAsset(callCtx, &registryv1.RegisterAssetRequest{AssetHash: asset.Hash, Metadata: asset.Metadata})
	if apperrors.CodeFromStatus(err) == apperrors.CodeAssetAlreadyRegistered {
		r.logger.Debug().Str("asset_hash", asset.Hash).Msg("asset already registered")
		return true, nil
	}
	if err != nil {
		return false, err
	}
	r.logger.Info().Str("asset_hash", asset.Hash).Str("owner", asset.Owner).Msg("registered asset")
	return false, nil
}

func (r *Runner) transfer(ctx context.Context, transfer TransferFixture) (bool, error) {
	callCtx, cancel, err := r.call(ctx, transfer.From)
	if err != nil {
		return false, err
	}
	defer cancel()

	_, err = r.client.TransferOwnership(callCtx, &registryv1.TransferOwnershipRequest{AssetHash: transfer.Hash, NewOwner: transfer.To})
	if apperrors.CodeFromStatus(err) == apperrors.CodeAssetNotOwner {
		verified, verifyErr := r.client.VerifyAsset(callCtx, &registryv1.VerifyAssetRequest{AssetHash: transfer.Hash})
		if verifyErr == nil && verified.GetAsset().GetOwner() == transfer.To {
			r.logger.Debug().Str("asset_hash", transfer.Hash).Msg("transfer already applied")
			return true, nil
		}
	}
	if err != nil {
		return false, err
	}
	r.logger.Info().Str("asset_hash", transfer.Hash).Str("from", transfer.From).Str("to", transfer.To).Msg("transferred asset")
	return false, nil
}

// Run dials the registry and applies every fixture matching cfg.Fixtures.
func Run(ctx context.Context, cfg Config, principals principal.Config, out io.Writer, logger zerolog.Logger) error {
	if out == nil {
		out = io.Discard
	}
	fixtures, err := LoadFixtures(cfg.Fixtures)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}
	if cfg.Verbose {
		fmt.Fprintf(out, "Loaded %d fixture(s)\n", len(fixtures))
	}

	conn, err := platformgrpc.DialWithHealth(ctx, cfg.Addr, platformgrpc.DialConfig{
		Timeout: timeouts.GRPCDial,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("dial registry %s: %w", cfg.Addr, err)
	}
	defer conn.Close()

	runner := NewRunner(registryv1.NewAssetRegistryServiceClient(conn), principal.AttacherFor(principals), logger)
	for _, fixture := range fixtures {
		result, err := runner.Apply(ctx, fixture)
		if err != nil {
			return fmt.Errorf("fixture %q: %w", fixture.Name, err)
		}
		fmt.Fprintf(out, "%s: registered %d, transferred %d, skipped %d\n", fixture.Name, result.Registered, result.Transferred, result.Skipped)
	}
	return nil
}
