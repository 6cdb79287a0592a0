package chain

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-rixsdk/internal/config"
	"github/chapool/go-rixsdk/internal/util/command"
	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/rpc"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("chain",
		newInfo(),
		newBlock(),
	)
}

func newClient() (*rpc.Client, config.Server, error) {
	cfg := config.DefaultServiceConfigFromEnv()

	client, err := rpc.NewClient(cfg.RPC.URLs, rpc.WithTimeout(cfg.RPC.Timeout))
	if err != nil {
		return nil, cfg, errors.Wrap(err, "failed to create RPC client")
	}

	return client, cfg, nil
}

func newInfo() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Prints get_info of the configured node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := rpc.WithRequestTimeout(cmd.Context(), cfg.RPC.Timeout)
			defer cancel()

			info, err := client.GetInfo(ctx)
			if err != nil {
				return err
			}

			return command.PrintJSON(cmd, info)
		},
	}
}

func newBlock() *cobra.Command {
	return &cobra.Command{
		Use:   "block [block number or id]",
		Short: "Prints a block header; defaults to the head block",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := rpc.WithRequestTimeout(cmd.Context(), cfg.RPC.Timeout)
			defer cancel()

			blockNumOrID, err := resolveBlock(ctx, client, args)
			if err != nil {
				return err
			}

			block, err := client.GetBlock(ctx, &provider.GetBlockRequest{BlockNumOrID: blockNumOrID})
			if err != nil {
				return err
			}

			return command.PrintJSON(cmd, block)
		},
	}
}

func resolveBlock(ctx context.Context, client provider.RPCProvider, args []string) (string, error) {
	if len(args) == 0 {
		info, err := client.GetInfo(ctx)
		if err != nil {
			return "", err
		}
		return rpc.BlockNumOrID(info.HeadBlockNum), nil
	}

	if n, err := strconv.ParseUint(args[0], 10, 32); err == nil {
		return rpc.BlockNumOrID(uint32(n)), nil
	}

	return args[0], nil
}
