package commands

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bog/internal/names"
)

var errRejected = errors.New("signature rejected")

// verify <usename|root> <file> <signature>: exits non-zero unless affirmed.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <usename|root> <file> <signature>",
		Short: "Verify a base64 signature over a payload",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, file, sig := args[0], args[1], args[2]

			payload, err := readPayload(cmd, file)
			if err != nil {
				return err
			}

			// A signature that does not decode is just another rejection.
			word := names.SilentOldword()
			if raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(sig)); err == nil {
				if w, err := names.OldwordFromRunes(raw); err == nil {
					word = w
				}
			}

			stuff, err := appCtx.Identity.Verify(label, payload, word)
			if err != nil {
				return fmt.Errorf("resolving %q: %w", label, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), stuff)
			if !stuff.IsAffirmed() {
				return errRejected
			}
			return nil
		},
	}
}
