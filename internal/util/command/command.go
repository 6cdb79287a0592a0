package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewSubcommandGroup returns a command that only groups the given subcommands and prints its help
// when invoked on its own.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: use + " related subcommands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				cmd.PrintErrln(err)
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// ReadInput returns the first positional argument or, if none was given or it is "-", the trimmed
// content of the command's stdin.
func ReadInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "failed to read stdin")
	}

	input := strings.TrimSpace(string(raw))
	if input == "" {
		return "", errors.New("no input given")
	}

	return input, nil
}

// PrintJSON writes v as indented JSON to the command's stdout.
func PrintJSON(cmd *cobra.Command, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal output")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

	return err
}

// PrintLine writes line to the command's stdout.
func PrintLine(cmd *cobra.Command, line string) {
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
