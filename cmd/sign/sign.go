package sign

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-rixsdk/internal/config"
	"github/chapool/go-rixsdk/internal/util"
	"github/chapool/go-rixsdk/internal/util/command"
	"github/chapool/go-rixsdk/internal/wallet/provider"
	"github/chapool/go-rixsdk/internal/wallet/signer"
)

const (
	chainIDFlag string = "chain-id"
	keyFlag     string = "key"
)

type signOutput struct {
	SerializedTransaction string   `json:"serializedTransaction"`
	Signatures            []string `json:"signatures"`
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [serialized transaction]",
		Short: "Signs a serialized transaction with the keys from RIX_SIGNER_PRIVATE_KEYS",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			input, err := command.ReadInput(cmd, args)
			if err != nil {
				return err
			}

			chainID, err := cmd.Flags().GetString(chainIDFlag)
			if err != nil {
				return err
			}
			keys, err := cmd.Flags().GetStringSlice(keyFlag)
			if err != nil {
				return err
			}

			cfg := config.DefaultServiceConfigFromEnv()
			svc, err := signer.NewService(cfg.Signer.PrivateKeys)
			if err != nil {
				return errors.Wrap(err, "failed to create signer service")
			}

			if len(keys) == 0 {
				keys, err = svc.GetAvailableKeys(ctx)
				if err != nil {
					return err
				}
			}

			util.LogFromContext(ctx).Debug().Int("keys", len(keys)).Str("chain_id", chainID).Msg("Signing transaction")

			resp, err := svc.SignTransaction(ctx, &provider.SignatureRequest{
				SerializedTransaction: input,
				SigningPublicKeys:     keys,
				ChainID:               chainID,
			})
			if err != nil {
				return err
			}
			if resp.Error != nil {
				return resp.Error
			}

			return command.PrintJSON(cmd, signOutput{
				SerializedTransaction: resp.SerializedTransaction,
				Signatures:            resp.Signatures,
			})
		},
	}

	cmd.Flags().String(chainIDFlag, "", "Chain id (64 hex characters)")
	cmd.Flags().StringSlice(keyFlag, nil, "Public keys to sign with (default: all configured keys)")
	_ = cmd.MarkFlagRequired(chainIDFlag)

	return cmd
}
