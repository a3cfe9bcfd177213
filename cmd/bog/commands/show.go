package commands

import (
	"github.com/spf13/cobra"

	"bog/internal/services/identity"
)

// show [usename]: print the public record, never the secret one.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [usename]",
		Short: "Print the public record of the root or an enrolled usename",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := identity.RootLabel
			if len(args) == 1 {
				label = args[0]
			}
			o, err := appCtx.Identity.Resolve(label)
			if err != nil {
				return err
			}
			return o.Cryptoname().Write(cmd.OutOrStdout())
		},
	}
}
