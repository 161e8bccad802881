package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffDel = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAdd = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	faint   = lipgloss.NewStyle().Faint(true)
)

// RenderDiff shows a line diff between the seeded text and the edit result.
// Unchanged lines are prefixed with two spaces, removed with "- " and
// added with "+ ".
func RenderDiff(before, after string, plain bool) string {
	if before == after {
		return "no changes\n"
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	style := func(s lipgloss.Style, text string) string {
		if plain {
			return text
		}
		return s.Render(text)
	}
	var sb strings.Builder
	for _, df := range diffs {
		for _, l := range splitLines(df.Text) {
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(style(diffDel, "- "+l))
			case dmp.DiffInsert:
				sb.WriteString(style(diffAdd, "+ "+l))
			default:
				sb.WriteString("  " + style(faint, l))
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
