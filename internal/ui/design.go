package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the edit box palette and common styles.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	// Core brand/semantic colors
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Red     lipgloss.Color // #cb7676

	// Text colors
	Text      lipgloss.Color // #dbd7caee
	Secondary lipgloss.Color // #bfbaaa
	Muted     lipgloss.Color // #dedcd590

	// Surfaces
	BgSoft lipgloss.Color // #292929
	Border lipgloss.AdaptiveColor

	// Text on accent backgrounds (chips)
	OnAccent lipgloss.Color // #222

	// Status bar colors
	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Vitesse defines the global design theme.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.AdaptiveColor{Light: "#8a8a8a", Dark: "#5a5a5a"},

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// BoxStyle returns the rounded frame drawn around the edit window.
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Vitesse.Border)
}

// CursorStyle marks the cell under the cursor.
func CursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Reverse(true)
}

// ChipStyle returns a style for colored status segments.
func ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(bg).Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// Muted renders dim hint text.
func Muted(s string) string {
	return lipgloss.NewStyle().Foreground(Vitesse.Muted).Render(s)
}
