package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

func attestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attest",
		Short: "Print the root's signature over its own public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := appCtx.Identity.Attest()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(word.Runes()))
			return nil
		},
	}
}
