package commands

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// sign [file]: sign a file, or stdin when file is absent or "-".
func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign [file]",
		Short: "Sign a payload with the root identity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			payload, err := readPayload(cmd, name)
			if err != nil {
				return err
			}
			word, err := appCtx.Identity.Sign(payload)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(word.Runes()))
			return nil
		},
	}
}

func readPayload(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	return b, nil
}
