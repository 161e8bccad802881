package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"editbox/internal/screen"
	"editbox/internal/textbox"
)

// BoxOptions controls how the edit window is framed.
type BoxOptions struct {
	Border bool
	Status bool
	// Plain disables all styling; used for tests and NO_COLOR terminals.
	Plain bool
}

// StatusInfo is what the status line reports.
type StatusInfo struct {
	Mode     textbox.Mode
	Row, Col int
	Hint     string
}

// RenderBox draws the grid snapshot with the cursor cell highlighted,
// optionally framed and followed by a status line.
func RenderBox(s screen.Snapshot, st StatusInfo, opts BoxOptions) string {
	rows := make([]string, len(s.Rows))
	width := 0
	for r, line := range s.Rows {
		cells := []rune(line)
		if len(cells) > width {
			width = len(cells)
		}
		if r != s.Row || opts.Plain || s.Col >= len(cells) {
			rows[r] = line
			continue
		}
		rows[r] = string(cells[:s.Col]) +
			CursorStyle().Render(string(cells[s.Col])) +
			string(cells[s.Col+1:])
	}
	body := strings.Join(rows, "\n")
	if opts.Border {
		if opts.Plain {
			body = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Render(body)
		} else {
			body = BoxStyle().Render(body)
		}
		width += 2
	}
	if !opts.Status {
		return body
	}
	return body + "\n" + StatusLine(st, width, opts.Plain)
}

// StatusLine composes the mode chip, cursor position and hint, truncated
// to width cells.
func StatusLine(st StatusInfo, width int, plain bool) string {
	pos := fmt.Sprintf("%d:%d", st.Row+1, st.Col+1)
	if plain {
		parts := []string{"[" + st.Mode.String() + "]", pos}
		if st.Hint != "" {
			parts = append(parts, st.Hint)
		}
		return xansi.Truncate(strings.Join(parts, "  "), width, "…")
	}
	chip := Vitesse.Primary
	if st.Mode == textbox.Overwrite {
		chip = Vitesse.Yellow
	}
	line := ChipStyle(chip).Render(st.Mode.String()) +
		StatusBarBase().Render(" "+pos+" ")
	if st.Hint != "" {
		line += " " + Muted(st.Hint)
	}
	if xansi.StringWidth(line) > width {
		line = xansi.Truncate(line, width, "…")
	}
	return line
}
