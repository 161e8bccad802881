package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfg "editbox/internal/config"
)

func init() { rootCmd.AddCommand(configCmd) }

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize and show the settings file",
	Long:  "Create the editbox config directory and settings.json with defaults when missing, then print the effective settings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.SettingsPath()
		if err != nil {
			return err
		}
		s, err := cfg.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if fileExists(p) {
			fmt.Fprintf(out, "• keeping existing settings.json: %s\n", p)
		} else {
			if err := cfg.Save(s); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ created settings.json: %s\n", p)
		}
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", b)
		return nil
	},
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
