package sig

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-rixsdk/internal/util/command"
	"github/chapool/go-rixsdk/internal/wallet/rix"
)

const (
	chainIDFlag   string = "chain-id"
	txFlag        string = "tx"
	publicKeyFlag string = "public-key"
	rFlag         string = "r"
	sFlag         string = "s"

	pemBegin = "-----BEGIN"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("sig",
		newFromDER(),
		newFromRS(),
		newRecover(),
	)
}

func newFromDER() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-der [der hex]",
		Short: "Converts a DER signature over a transaction to the SIG_ form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := command.ReadInput(cmd, args)
			if err != nil {
				return err
			}

			der, err := hex.DecodeString(input)
			if err != nil {
				return errors.Wrap(err, "der signature is not hex")
			}

			signable, publicPEM, err := signingInputs(cmd)
			if err != nil {
				return err
			}

			out, err := rix.DERSignatureToFormatted(der, signable, publicPEM)
			if err != nil {
				return err
			}

			command.PrintLine(cmd, out)
			return nil
		},
	}

	addSigningFlags(cmd)

	return cmd
}

func newFromRS() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-rs",
		Short: "Converts a raw r/s signature over a transaction to the SIG_ form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := hexFlagInt(cmd, rFlag)
			if err != nil {
				return err
			}
			s, err := hexFlagInt(cmd, sFlag)
			if err != nil {
				return err
			}

			signable, publicPEM, err := signingInputs(cmd)
			if err != nil {
				return err
			}

			out, err := rix.RawRSToFormatted(r, s, signable, publicPEM)
			if err != nil {
				return err
			}

			command.PrintLine(cmd, out)
			return nil
		},
	}

	addSigningFlags(cmd)
	cmd.Flags().String(rFlag, "", "r component (hex)")
	cmd.Flags().String(sFlag, "", "s component (hex)")
	_ = cmd.MarkFlagRequired(rFlag)
	_ = cmd.MarkFlagRequired(sFlag)

	return cmd
}

func newRecover() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover [formatted signature]",
		Short: "Recovers the public key that produced a SIG_ signature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := command.ReadInput(cmd, args)
			if err != nil {
				return err
			}

			signable, err := signableFromFlags(cmd)
			if err != nil {
				return err
			}

			out, err := rix.RecoverPublicKey(input, signable)
			if err != nil {
				return err
			}

			command.PrintLine(cmd, out)
			return nil
		},
	}

	addTransactionFlags(cmd)

	return cmd
}

func addTransactionFlags(cmd *cobra.Command) {
	cmd.Flags().String(chainIDFlag, "", "Chain id (64 hex characters)")
	cmd.Flags().String(txFlag, "", "Serialized transaction (hex)")
	_ = cmd.MarkFlagRequired(chainIDFlag)
	_ = cmd.MarkFlagRequired(txFlag)
}

func addSigningFlags(cmd *cobra.Command) {
	addTransactionFlags(cmd)
	cmd.Flags().String(publicKeyFlag, "", "Signing public key, formatted or PEM")
	_ = cmd.MarkFlagRequired(publicKeyFlag)
}

func signableFromFlags(cmd *cobra.Command) ([]byte, error) {
	chainID, err := cmd.Flags().GetString(chainIDFlag)
	if err != nil {
		return nil, err
	}
	tx, err := cmd.Flags().GetString(txFlag)
	if err != nil {
		return nil, err
	}

	return rix.SignableBytes(tx, chainID)
}

func signingInputs(cmd *cobra.Command) ([]byte, string, error) {
	signable, err := signableFromFlags(cmd)
	if err != nil {
		return nil, "", err
	}

	publicKey, err := cmd.Flags().GetString(publicKeyFlag)
	if err != nil {
		return nil, "", err
	}

	if strings.HasPrefix(publicKey, pemBegin) {
		return signable, publicKey, nil
	}

	publicPEM, err := rix.PublicKeyToPEM(publicKey)
	if err != nil {
		return nil, "", err
	}

	return signable, publicPEM, nil
}

func hexFlagInt(cmd *cobra.Command, name string) (*big.Int, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}

	n, ok := new(big.Int).SetString(strings.TrimPrefix(value, "0x"), 16)
	if !ok {
		return nil, errors.Errorf("--%s is not a hex number", name)
	}

	return n, nil
}
