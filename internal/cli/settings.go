package cli

import (
	"github.com/spf13/cobra"

	"editbox/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit window defaults in an interactive form",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}
