package key

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-rixsdk/internal/util/command"
	"github/chapool/go-rixsdk/internal/wallet/rix"
	"github/chapool/go-rixsdk/internal/wallet/signer"
)

const (
	legacyFlag string = "legacy"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("key",
		newToPEM(),
		newFromPEM(),
		newInspect(),
		newPublic(),
	)
}

func newToPEM() *cobra.Command {
	return &cobra.Command{
		Use:   "to-pem [formatted key]",
		Short: "Converts a formatted public or private key to PEM",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := command.ReadInput(cmd, args)
			if err != nil {
				return err
			}

			decoded, err := rix.DecodeFormattedKey(input)
			if err != nil {
				return errors.Wrap(err, "failed to decode key")
			}

			var out string
			switch decoded.Role {
			case rix.RolePrivateKey:
				out, err = rix.PrivateKeyToPEM(input)
			case rix.RolePublicKey:
				out, err = rix.PublicKeyToPEM(input)
			default:
				return errors.Errorf("cannot convert a %s value to PEM", decoded.Role)
			}
			if err != nil {
				return err
			}

			command.PrintLine(cmd, out)
			return nil
		},
	}
}

func newFromPEM() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-pem [pem]",
		Short: "Converts a PEM encoded key to its formatted form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := command.ReadInput(cmd, args)
			if err != nil {
				return err
			}

			legacy, err := cmd.Flags().GetBool(legacyFlag)
			if err != nil {
				return err
			}

			var out string
			if strings.Contains(input, "PRIVATE KEY") {
				out, err = rix.PEMToPrivateKey(input)
			} else {
				out, err = rix.PEMToPublicKey(input, legacy)
			}
			if err != nil {
				return err
			}

			command.PrintLine(cmd, out)
			return nil
		},
	}

	cmd.Flags().Bool(legacyFlag, false, "Print K1 public keys in the legacy RSN form")

	return cmd
}

type keyInfo struct {
	Role   string `json:"role"`
	Curve  string `json:"curve"`
	Legacy bool   `json:"legacy"`
	Data   string `json:"data,omitempty"`
}

func newInspect() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [formatted value]",
		Short: "Decodes a formatted key or signature and prints its parts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := command.ReadInput(cmd, args)
			if err != nil {
				return err
			}

			decoded, err := rix.DecodeFormattedKey(input)
			if err != nil {
				return errors.Wrap(err, "failed to decode value")
			}

			info := keyInfo{
				Role:   decoded.Role.String(),
				Curve:  decoded.Curve.String(),
				Legacy: decoded.Legacy,
			}
			// private key material stays hidden
			if decoded.Role != rix.RolePrivateKey {
				info.Data = hex.EncodeToString(decoded.Data)
			}

			return command.PrintJSON(cmd, info)
		},
	}
}

func newPublic() *cobra.Command {
	return &cobra.Command{
		Use:   "public [formatted private key]",
		Short: "Derives the public key of a formatted private key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := command.ReadInput(cmd, args)
			if err != nil {
				return err
			}

			return printPublicKeys(cmd.Context(), cmd, input)
		},
	}
}

func printPublicKeys(ctx context.Context, cmd *cobra.Command, privateKey string) error {
	svc, err := signer.NewService([]string{privateKey})
	if err != nil {
		return errors.Wrap(err, "failed to load private key")
	}

	keys, err := svc.GetAvailableKeys(ctx)
	if err != nil {
		return err
	}

	for _, k := range keys {
		command.PrintLine(cmd, k)
	}

	return nil
}
