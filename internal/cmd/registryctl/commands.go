package registryctl

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	registryv1 "github.com/louisbranch/assetregistry/api/registry/v1"
	"github.com/louisbranch/assetregistry/internal/services/registry/fingerprint"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/spf13/cobra"
)

func (a *app) registerCommand() *cobra.Command {
	var metadata, file string
	cmd := &cobra.Command{
		Use:   "register [hash]",
		Short: "Register an asset owned by --principal",
		Long: `Register an asset hash owned by the calling principal.

Examples:
  registryctl register 01ab... -p alice
  registryctl register --file ./poem.txt --metadata ipfs://bafy -p alice`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var hash string
			switch {
			case file != "" && len(args) == 1:
				return errors.New("pass either a hash or --file, not both")
			case file != "":
				computed, err := fingerprint.FromFile(file)
				if err != nil {
					return err
				}
				hash = computed
			case len(args) == 1:
				hash = args[0]
			default:
				return errors.New("a hash or --file is required")
			}

			p, err := a.printer()
			if err != nil {
				return err
			}
			ctx, client, done, err := a.call(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := client.RegisterAsset(ctx, &registryv1.RegisterAssetRequest{AssetHash: hash, Metadata: metadata})
			if err != nil {
				return describeError(err)
			}
			return p.print(resp.GetAsset(), assetText(resp.GetAsset()))
		},
	}
	cmd.Flags().StringVarP(&metadata, "metadata", "m", "", "opaque metadata stored with the asset")
	cmd.Flags().StringVarP(&file, "file", "f", "", "fingerprint this file and register the result")
	return cmd
}

func (a *app) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <hash>",
		Short: "Show the owner and registration details of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer()
			if err != nil {
				return err
			}
			ctx, client, done, err := a.call(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := client.VerifyAsset(ctx, &registryv1.VerifyAssetRequest{AssetHash: args[0]})
			if err != nil {
				return describeError(err)
			}
			return p.print(resp.GetAsset(), assetText(resp.GetAsset()))
		},
	}
}

func (a *app) transferCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <hash> <new-owner>",
		Short: "Transfer an asset owned by --principal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer()
			if err != nil {
				return err
			}
			ctx, client, done, err := a.call(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := client.TransferOwnership(ctx, &registryv1.TransferOwnershipRequest{AssetHash: args[0], NewOwner: args[1]})
			if err != nil {
				return describeError(err)
			}
			text := fmt.Sprintf("%s\t%s -> %s", resp.GetAsset().GetAssetHash(), resp.GetPreviousOwner(), resp.GetAsset().GetOwner())
			return p.print(resp, text)
		},
	}
}

func (a *app) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of registered assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.printer()
			if err != nil {
				return err
			}
			ctx, client, done, err := a.call(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := client.GetAssetCount(ctx, &registryv1.GetAssetCountRequest{})
			if err != nil {
				return describeError(err)
			}
			return p.print(resp, strconv.FormatInt(resp.GetCount(), 10))
		},
	}
}

func (a *app) existsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <hash>",
		Short: "Report whether an asset hash is registered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.printer()
			if err != nil {
				return err
			}
			ctx, client, done, err := a.call(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := client.AssetExists(ctx, &registryv1.AssetExistsRequest{AssetHash: args[0]})
			if err != nil {
				return describeError(err)
			}
			return p.print(resp, strconv.FormatBool(resp.GetExists()))
		},
	}
}

func (a *app) atCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "at <index>",
		Short: "Print the asset hash registered at a zero-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("index must be an integer: %w", err)
			}
			p, err := a.printer()
			if err != nil {
				return err
			}
			ctx, client, done, err := a.call(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := client.GetAssetHashAtIndex(ctx, &registryv1.GetAssetHashAtIndexRequest{Index: index})
			if err != nil {
				return describeError(err)
			}
			return p.print(resp, resp.GetAssetHash())
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	var pageSize int32
	var pageToken string
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.printer()
			if err != nil {
				return err
			}
			ctx, client, done, err := a.call(cmd)
			if err != nil {
				return err
			}
			defer done()

			var assets []*registryv1.Asset
			token := pageToken
			for {
				resp, err := client.ListAssets(ctx, &registryv1.ListAssetsRequest{PageSize: pageSize, PageToken: token})
				if err != nil {
					return describeError(err)
				}
				assets = append(assets, resp.GetAssets()...)
				token = resp.GetNextPageToken()
				if !all || token == "" {
					break
				}
			}

			if p.format != "text" {
				return p.print(&registryv1.ListAssetsResponse{Assets: assets, NextPageToken: token}, "")
			}
			for _, asset := range assets {
				if err := p.print(nil, assetText(asset)); err != nil {
					return err
				}
			}
			if token != "" {
				_, err := fmt.Fprintf(cmd.ErrOrStderr(), "next page token: %s\n", token)
				return err
			}
			return nil
		},
	}
	cmd.Flags().Int32Var(&pageSize, "page-size", 0, "assets per page (server default when 0)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "resume from a previous page token")
	cmd.Flags().BoolVar(&all, "all", false, "follow page tokens until the end")
	return cmd
}

func (a *app) eventsCommand() *cobra.Command {
	var after int64
	var pageSize int32
	var follow bool
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print registry notifications after a sequence",
		Long: `Print AssetRegistered and OwnershipTransferred notifications.

With --follow the command replays from --after and then waits for new
events until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.printer()
			if err != nil {
				return err
			}
			if !follow {
				ctx, client, done, err := a.call(cmd)
				if err != nil {
					return err
				}
				defer done()

				resp, err := client.ListEvents(ctx, &registryv1.ListEventsRequest{AfterSequence: after, PageSize: pageSize})
				if err != nil {
					return describeError(err)
				}
				for _, event := range resp.GetEvents() {
					if err := p.print(event, eventText(event)); err != nil {
						return err
					}
				}
				return nil
			}

			ctx := cmd.Context()
			client, closer, err := a.opts.Dialer(ctx, a.v.GetString("addr"))
			if err != nil {
				return err
			}
			defer closer.Close()

			stream, err := client.WatchEvents(ctx, &registryv1.WatchEventsRequest{AfterSequence: after})
			if err != nil {
				return describeError(err)
			}
			for {
				event, err := stream.Recv()
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					return nil
				}
				if err != nil {
					return describeError(err)
				}
				if err := p.print(event, eventText(event)); err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().Int64Var(&after, "after", 0, "only events with a greater sequence")
	cmd.Flags().Int32Var(&pageSize, "page-size", 0, "events per call without --follow")
	cmd.Flags().BoolVarP(&follow, "follow", "F", false, "keep streaming new events")
	return cmd
}

func (a *app) hashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <file>",
		Short: "Print the SHA3-512 fingerprint of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := fingerprint.FromFile(args[0])
			if err != nil {
				return err
			}
			p, err := a.printer()
			if err != nil {
				return err
			}
			return p.print(map[string]string{"asset_hash": hash, "file": args[0]}, hash)
		},
	}
}

func (a *app) tokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token <subject>",
		Short: "Mint a bearer token for a principal (jwt mode)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.principalConfig()
			if err != nil {
				return err
			}
			if cfg.Mode != principal.ModeJWT {
				return errors.New("token requires --auth-mode jwt")
			}
			token, err := principal.IssueToken(args[0], cfg)
			if err != nil {
				return err
			}
			p, err := a.printer()
			if err != nil {
				return err
			}
			return p.print(map[string]string{"subject": args[0], "token": token}, token)
		},
	}
}
