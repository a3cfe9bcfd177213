package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List enrolled usenames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.Identity.Names()
			if err != nil {
				return err
			}
			for _, u := range list {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}
