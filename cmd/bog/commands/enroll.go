package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func enrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll <usename> <record-file>",
		Short: "Bind a public identity record to a usename",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := args[0]

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			c, err := appCtx.Identity.Enroll(label, f)
			if err != nil {
				return fmt.Errorf("enrolling %q: %w", label, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enrolled %s as %s\n", c.Fingerprint(), label)
			return nil
		},
	}
}
