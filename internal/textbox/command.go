package textbox

import "fmt"

// Op identifies one logical editing command.
type Op int

const (
	OpNone Op = iota
	OpMoveHome
	OpMoveLeft
	OpDeleteUnder
	OpMoveEnd
	OpMoveRight
	OpTerminate
	OpDeleteBackward
	OpNewline
	OpClearLine
	OpRefresh
	OpMoveDown
	OpInsertBlankLine
	OpMoveUp
	OpToggleMode
	OpInsertChar
)

var opNames = [...]string{
	OpNone:            "none",
	OpMoveHome:        "move-home",
	OpMoveLeft:        "move-left",
	OpDeleteUnder:     "delete-under",
	OpMoveEnd:         "move-end",
	OpMoveRight:       "move-right",
	OpTerminate:       "terminate",
	OpDeleteBackward:  "delete-backward",
	OpNewline:         "newline",
	OpClearLine:       "clear-line",
	OpRefresh:         "refresh",
	OpMoveDown:        "move-down",
	OpInsertBlankLine: "insert-blank-line",
	OpMoveUp:          "move-up",
	OpToggleMode:      "toggle-mode",
	OpInsertChar:      "insert-char",
}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Command is a decoded keystroke. Rune is only meaningful for OpInsertChar.
type Command struct {
	Op   Op
	Rune rune
}

// Key returns a command without a character payload.
func Key(op Op) Command { return Command{Op: op} }

// Char returns an OpInsertChar command for r.
func Char(r rune) Command { return Command{Op: OpInsertChar, Rune: r} }

func (c Command) String() string {
	if c.Op == OpInsertChar {
		return fmt.Sprintf("%s(%q)", c.Op, c.Rune)
	}
	return c.Op.String()
}

// Mode selects how InsertChar treats the characters after the cursor.
type Mode int

const (
	Insert Mode = iota
	Overwrite
)

func (m Mode) String() string {
	if m == Overwrite {
		return "OVERWRITE"
	}
	return "INSERT"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Insert {
		return Overwrite
	}
	return Insert
}
