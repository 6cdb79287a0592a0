package env

import (
	"github.com/spf13/cobra"
	"github/chapool/go-rixsdk/internal/config"
	"github/chapool/go-rixsdk/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the effective configuration (private keys omitted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.PrintJSON(cmd, config.DefaultServiceConfigFromEnv())
		},
	}
}
