package settings

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"editbox/internal/config"
)

// Run launches an interactive form to edit settings.json.
// Current values are preselected and saved on submit.
func Run() error {
	cur, err := config.Load()
	if err != nil {
		return err
	}
	f := newFields(cur)

	// Light theme tweaks inspired by freeze/interactive.go
	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Defaults for the edit window, saved to settings.json"),
			huh.NewInput().Title("Rows").Value(&f.rows).Validate(positive("rows", 1<<16)),
			huh.NewInput().Title("Columns").Value(&f.cols).Validate(positive("cols", config.MaxCols)),
			huh.NewSelect[bool]().
				Title("Mode").
				Options(huh.NewOption("insert", false), huh.NewOption("overwrite", true)).
				Value(&f.s.Overwrite),
			huh.NewConfirm().Title("Status line").Value(&f.s.Status),
			huh.NewConfirm().Title("Border").Value(&f.s.Border),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	next, err := f.settings()
	if err != nil {
		return err
	}
	if err := config.Save(next); err != nil {
		return err
	}
	fmt.Printf("\n✓ saved settings.json (%dx%d, %s)\n\n", next.Rows, next.Cols, modeName(next.Overwrite))
	return nil
}

// fields holds the form's string-typed inputs alongside the settings.
type fields struct {
	s          config.Settings
	rows, cols string
}

func newFields(s config.Settings) *fields {
	return &fields{s: s, rows: strconv.Itoa(s.Rows), cols: strconv.Itoa(s.Cols)}
}

func (f *fields) settings() (config.Settings, error) {
	s := f.s
	var err error
	if s.Rows, err = strconv.Atoi(f.rows); err != nil {
		return config.Settings{}, fmt.Errorf("rows: %w", err)
	}
	if s.Cols, err = strconv.Atoi(f.cols); err != nil {
		return config.Settings{}, fmt.Errorf("cols: %w", err)
	}
	return s, s.Validate()
}

func positive(name string, limit int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > limit {
			return fmt.Errorf("%s must be a number between 1 and %d", name, limit)
		}
		return nil
	}
}

func modeName(overwrite bool) string {
	if overwrite {
		return "overwrite"
	}
	return "insert"
}
