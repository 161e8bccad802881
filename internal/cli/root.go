package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"editbox/internal/app"
	"editbox/internal/config"
	"editbox/internal/system"
	"editbox/internal/textbox"
	"editbox/internal/ui"
)

// exitCancelled matches the shell convention for a SIGINT-terminated job.
const exitCancelled = 130

var (
	editRows      int
	editCols      int
	editOverwrite bool
	editText      string
	editFile      string
	editScript    bool
	editDiff      bool
	editDebug     bool
	editLogFile   string
)

var rootCmd = &cobra.Command{
	Use:   "editbox",
	Short: "editbox – a fixed-size Emacs-style text box",
	Long: "editbox opens a rows×cols edit window with Emacs key bindings and prints\n" +
		"the text when you finish with ctrl+g. Window defaults come from settings.json.",
	RunE:          runEdit,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.IntVarP(&editRows, "rows", "r", 0, "window height (default from settings)")
	f.IntVarP(&editCols, "cols", "c", 0, "window width (default from settings)")
	f.BoolVar(&editOverwrite, "overwrite", false, "start in overwrite mode")
	f.StringVarP(&editText, "text", "t", "", "initial window contents")
	f.StringVarP(&editFile, "file", "f", "", "read initial window contents from file")
	f.BoolVar(&editScript, "script", false, "read raw keystrokes from stdin instead of the terminal")
	f.BoolVar(&editDiff, "diff", false, "print a diff of the initial and final text to stderr")
	f.BoolVar(&editDebug, "debug", false, "log every editor command")
	f.StringVar(&editLogFile, "log-file", "", "write logs to this file")
	rootCmd.MarkFlagsMutuallyExclusive("text", "file")
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := effectiveSettings(cmd)
	if err != nil {
		return err
	}
	seed, err := seedText()
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	mode := textbox.Insert
	if s.Overwrite {
		mode = textbox.Overwrite
	}
	plain := os.Getenv("NO_COLOR") != ""
	opts := app.Options{
		Rows:   s.Rows,
		Cols:   s.Cols,
		Mode:   mode,
		Text:   seed,
		Box:    ui.BoxOptions{Border: s.Border, Status: s.Status, Plain: plain},
		Hint:   app.DefaultHint,
		Logger: system.Logger,
		// stdout carries the result, so the box is drawn on stderr
		ProgramOptions: []tea.ProgramOption{tea.WithOutput(cmd.ErrOrStderr())},
	}
	system.Logger.Debug("starting edit", "rows", s.Rows, "cols", s.Cols, "mode", mode, "script", editScript)

	var res app.Result
	if editScript {
		res, err = app.RunScript(cmd.InOrStdin(), opts)
	} else {
		res, err = app.Run(cmd.Context(), opts)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	if editDiff {
		fmt.Fprint(cmd.ErrOrStderr(), ui.RenderDiff(res.Before, res.Text, plain))
	}
	return nil
}

// effectiveSettings loads settings.json and applies explicitly set flags.
func effectiveSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load()
	if err != nil {
		return config.Settings{}, err
	}
	f := cmd.Flags()
	if f.Changed("rows") {
		s.Rows = editRows
	}
	if f.Changed("cols") {
		s.Cols = editCols
	}
	if f.Changed("overwrite") {
		s.Overwrite = editOverwrite
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

func seedText() (string, error) {
	if editFile == "" {
		return editText, nil
	}
	b, err := os.ReadFile(editFile)
	if err != nil {
		return "", fmt.Errorf("read seed file: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

// setupLogging routes the shared logger. The interactive box owns the
// terminal, so logs go to --log-file or nowhere; script mode logs to stderr.
func setupLogging(stderr io.Writer) (func(), error) {
	out := io.Discard
	if editScript {
		out = stderr
	}
	closeFn := func() {}
	if editLogFile != "" {
		lf, err := os.OpenFile(editLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = lf
		closeFn = func() { _ = lf.Close() }
	}
	system.Configure(out, editDebug)
	return closeFn, nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, textbox.ErrCancelled):
		return exitCancelled
	}
	return 1
}

// Execute runs the CLI.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, textbox.ErrCancelled) {
		fmt.Fprintln(os.Stderr, "cancelled")
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}
