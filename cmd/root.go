package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-rixsdk/cmd/chain"
	"github/chapool/go-rixsdk/cmd/env"
	"github/chapool/go-rixsdk/cmd/key"
	"github/chapool/go-rixsdk/cmd/sig"
	"github/chapool/go-rixsdk/cmd/sign"
	"github/chapool/go-rixsdk/cmd/signable"
	"github/chapool/go-rixsdk/internal/config"
	"github/chapool/go-rixsdk/internal/util"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "rix",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Key, signature and transaction tooling for RIX chains.
Node and signer settings are read from ENV (RIX_*).`, config.ModuleName),
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg := config.DefaultServiceConfigFromEnv()
		util.ConfigureLogger(cfg.Logger.Level, cfg.Logger.PrettyPrintConsole)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		chain.New(),
		env.New(),
		key.New(),
		sig.New(),
		sign.New(),
		signable.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
