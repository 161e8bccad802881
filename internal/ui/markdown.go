package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

// vitesseGlamour adapts the glamour style config to the Vitesse palette.
func vitesseGlamour() ansi.StyleConfig {
	// helper: take lipgloss.Color -> hex without alpha
	hex := func(c lipgloss.Color) string {
		s := string(c)
		if strings.HasPrefix(s, "#") && len(s) == 9 { // #RRGGBBAA
			return s[:7]
		}
		return s
	}
	sp := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }
	up := func(u uint) *uint { return &u }

	text := hex(Vitesse.Text)
	secondary := hex(Vitesse.Secondary)
	blue := hex(Vitesse.Blue)
	yellow := hex(Vitesse.Yellow)
	bgSoft := hex(Vitesse.BgSoft)

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
			Margin:         up(1),
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
		},
		Heading: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true)}},
		H1:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true), Prefix: "# "}},
		H2:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true), Prefix: "## "}},

		Text:   ansi.StylePrimitive{Color: sp(text)},
		Emph:   ansi.StylePrimitive{Italic: bp(true)},
		Strong: ansi.StylePrimitive{Bold: bp(true)},

		Code: ansi.StyleBlock{ // inline code
			StylePrimitive: ansi.StylePrimitive{Color: sp(yellow), BackgroundColor: sp(bgSoft)},
		},

		Table: ansi.StyleTable{
			StyleBlock:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}},
			CenterSeparator: sp("│"),
			ColumnSeparator: sp("│"),
			RowSeparator:    sp("─"),
		},

		DefinitionDescription: ansi.StylePrimitive{Color: sp(secondary)},
	}
}

// RenderMarkdown renders md for the terminal, wrapping at width.
// plain selects glamour's unstyled "notty" output.
func RenderMarkdown(md string, width int, plain bool) (string, error) {
	style := glamour.WithStyles(vitesseGlamour())
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(max(width, 20)))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
