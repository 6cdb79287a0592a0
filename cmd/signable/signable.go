package signable

import (
	"github.com/spf13/cobra"
	"github/chapool/go-rixsdk/internal/util/command"
	"github/chapool/go-rixsdk/internal/wallet/rix"
)

const (
	chainIDFlag string = "chain-id"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("signable",
		newBuild(),
		newExtract(),
	)
}

func newBuild() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [serialized transaction]",
		Short: "Wraps a serialized transaction into the hex string that gets signed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := command.ReadInput(cmd, args)
			if err != nil {
				return err
			}

			chainID, err := cmd.Flags().GetString(chainIDFlag)
			if err != nil {
				return err
			}

			out, err := rix.BuildSignable(input, chainID)
			if err != nil {
				return err
			}

			command.PrintLine(cmd, out)
			return nil
		},
	}

	cmd.Flags().String(chainIDFlag, "", "Chain id (64 hex characters)")
	_ = cmd.MarkFlagRequired(chainIDFlag)

	return cmd
}

func newExtract() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [signable transaction]",
		Short: "Recovers the serialized transaction from a signable hex string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := command.ReadInput(cmd, args)
			if err != nil {
				return err
			}

			out, err := rix.ExtractSerialized(input)
			if err != nil {
				return err
			}

			command.PrintLine(cmd, out)
			return nil
		},
	}
}
