package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func rerootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reroot",
		Short: "Generate a new root identity, overwriting the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, fp, err := appCtx.Identity.Reroot()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Root identity created.\nFingerprint: %s\n", fp)
			return nil
		},
	}
}
