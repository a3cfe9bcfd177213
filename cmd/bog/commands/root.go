package commands

import (
	"github.com/spf13/cobra"

	"bog/internal/app"
)

var (
	home   string
	appCtx *app.Wire
)

// NewRootCommand builds the bog command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "bog",
		Short:        "Local identity and signature store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "identity dir (default $"+app.HomeEnv+" or ~/.bog)")

	root.AddCommand(
		rerootCmd(),
		fingerprintCmd(),
		showCmd(),
		attestCmd(),
		signCmd(),
		verifyCmd(),
		enrollCmd(),
		namesCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
