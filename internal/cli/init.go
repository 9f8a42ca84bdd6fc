package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a config.yaml holding the default settings.\nAn existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.WriteDefault(a.configDir)
			if err != nil {
				return sysErr(err)
			}
			if created {
				a.log.Infow("config written", "path", path)
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
			return nil
		},
	}
}
