package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"editbox/internal/keys"
	"editbox/internal/screen"
	"editbox/internal/textbox"
	"editbox/internal/ui"
)

// repaintMsg is sent after the editor refreshes the grid.
type repaintMsg struct{}

// doneMsg is sent once the editor has returned.
type doneMsg struct{}

// model renders the grid and forwards decoded keys to the editor. It never
// touches editor state directly; the mode shown in the status line is
// tracked from the toggle commands it forwards.
type model struct {
	grid   *screen.Grid
	keymap keys.KeyMap
	cmds   chan<- textbox.Command
	done   <-chan struct{}

	box  ui.BoxOptions
	hint string
	mode textbox.Mode

	cancelled bool
	finished  bool
}

func newModel(grid *screen.Grid, opts Options, cmds chan<- textbox.Command, done <-chan struct{}) model {
	return model{
		grid:   grid,
		keymap: opts.KeyMap,
		cmds:   cmds,
		done:   done,
		box:    opts.Box,
		hint:   opts.Hint,
		mode:   opts.Mode,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds, cancel := m.keymap.Decode(msg)
		if cancel {
			m.cancelled = true
			return m, tea.Quit
		}
		for _, c := range cmds {
			if c.Op == textbox.OpToggleMode {
				m.mode = m.mode.Toggle()
			}
			select {
			case m.cmds <- c:
			case <-m.done:
				return m, nil
			}
		}
		return m, nil
	case repaintMsg:
		return m, nil
	case doneMsg:
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.finished || m.cancelled {
		return ""
	}
	s := m.grid.Snapshot()
	return ui.RenderBox(s, ui.StatusInfo{Mode: m.mode, Row: s.Row, Col: s.Col, Hint: m.hint}, m.box)
}
