package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"editbox/internal/keys"
	"editbox/internal/ui"
)

var keysRaw bool

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().BoolVar(&keysRaw, "raw", false, "print the markdown source")
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the edit box key bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		md := keysMarkdown(keys.DefaultKeyMap())
		if keysRaw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}
		out, err := ui.RenderMarkdown(md, 80, os.Getenv("NO_COLOR") != "")
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func keysMarkdown(km keys.KeyMap) string {
	var sb strings.Builder
	sb.WriteString("# Key bindings\n\n")
	sb.WriteString("| Keys | Action |\n|---|---|\n")
	for _, b := range km.Bindings() {
		fmt.Fprintf(&sb, "| `%s` | %s |\n", strings.Join(b.Keys(), "`, `"), b.Help().Desc)
	}
	sb.WriteString("\nPrintable characters are inserted at the cursor, or replace the\n")
	sb.WriteString("character under it in overwrite mode.\n")
	return sb.String()
}
