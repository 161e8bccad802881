// Package keys decodes keystrokes into textbox commands, either from
// bubbletea key messages or from a raw byte stream.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"editbox/internal/textbox"
)

// KeyMap defines the Emacs-style bindings of the edit box.
type KeyMap struct {
	Home, End                   key.Binding
	Left, Right, Up, Down       key.Binding
	DeleteUnder, DeleteBackward key.Binding
	ClearLine, InsertLine       key.Binding
	Newline, Terminate, Refresh key.Binding
	ToggleMode                  key.Binding
	Cancel                      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Home:  key.NewBinding(key.WithKeys("ctrl+a", "home"), key.WithHelp("ctrl+a", "go to left edge of window")),
		Left:  key.NewBinding(key.WithKeys("ctrl+b", "left"), key.WithHelp("ctrl+b/←", "cursor left, wrapping to previous line")),
		Right: key.NewBinding(key.WithKeys("ctrl+f", "right"), key.WithHelp("ctrl+f/→", "cursor right, wrapping to next line")),
		Up:    key.NewBinding(key.WithKeys("ctrl+p", "up"), key.WithHelp("ctrl+p/↑", "cursor up one line")),
		Down:  key.NewBinding(key.WithKeys("ctrl+n", "down"), key.WithHelp("ctrl+n/↓", "cursor down one line")),
		End:   key.NewBinding(key.WithKeys("ctrl+e", "end"), key.WithHelp("ctrl+e", "go to end of line")),

		DeleteUnder:    key.NewBinding(key.WithKeys("ctrl+d", "delete"), key.WithHelp("ctrl+d", "delete character under cursor")),
		DeleteBackward: key.NewBinding(key.WithKeys("ctrl+h", "backspace"), key.WithHelp("ctrl+h/⌫", "delete character backward")),
		ClearLine:      key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "delete blank line, else clear to end of line")),
		InsertLine:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "insert a blank line at cursor")),

		Newline:   key.NewBinding(key.WithKeys("ctrl+j", "enter"), key.WithHelp("ctrl+j/enter", "terminate on a 1-line window, else split line")),
		Terminate: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "terminate, returning the contents")),
		Refresh:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "refresh screen")),

		ToggleMode: key.NewBinding(key.WithKeys("insert", "ctrl+t"), key.WithHelp("ctrl+t/ins", "toggle insert/overwrite")),
		Cancel:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "abandon the edit")),
	}
}

// Bindings lists every binding in help order.
func (km KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		km.Home, km.Left, km.DeleteUnder, km.End, km.Right, km.Terminate,
		km.DeleteBackward, km.Newline, km.ClearLine, km.Refresh, km.Down,
		km.InsertLine, km.Up, km.ToggleMode, km.Cancel,
	}
}

// Decode maps a key message to commands. cancel is true for the abort
// binding. Pasted or multi-rune input yields one InsertChar per rune.
func (km KeyMap) Decode(msg tea.KeyMsg) (cmds []textbox.Command, cancel bool) {
	pairs := []struct {
		b  key.Binding
		op textbox.Op
	}{
		{km.Home, textbox.OpMoveHome},
		{km.Left, textbox.OpMoveLeft},
		{km.DeleteUnder, textbox.OpDeleteUnder},
		{km.End, textbox.OpMoveEnd},
		{km.Right, textbox.OpMoveRight},
		{km.Terminate, textbox.OpTerminate},
		{km.DeleteBackward, textbox.OpDeleteBackward},
		{km.Newline, textbox.OpNewline},
		{km.ClearLine, textbox.OpClearLine},
		{km.Refresh, textbox.OpRefresh},
		{km.Down, textbox.OpMoveDown},
		{km.InsertLine, textbox.OpInsertBlankLine},
		{km.Up, textbox.OpMoveUp},
		{km.ToggleMode, textbox.OpToggleMode},
	}
	if key.Matches(msg, km.Cancel) {
		return nil, true
	}
	for _, p := range pairs {
		if key.Matches(msg, p.b) {
			return []textbox.Command{textbox.Key(p.op)}, false
		}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []textbox.Command{textbox.Char(' ')}, false
	case tea.KeyRunes:
		if msg.Alt {
			return nil, false
		}
		for _, r := range msg.Runes {
			if r == '\n' || r == '\r' {
				cmds = append(cmds, textbox.Key(textbox.OpNewline))
				continue
			}
			cmds = append(cmds, textbox.Char(r))
		}
		return cmds, false
	}
	return nil, false
}
