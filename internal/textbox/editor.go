// Package textbox implements an Emacs-style editing widget over a fixed
// rows×cols character window. The Editor owns the buffer and cursor for
// one Edit call; it pulls decoded commands from a Source and paints the
// result on a Window after every command.
package textbox

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

var (
	// ErrSourceExhausted is returned when the command source ends before
	// a terminate command arrives.
	ErrSourceExhausted = errors.New("command source exhausted")
	// ErrCancelled is returned by sources when the user aborts the session.
	ErrCancelled = errors.New("edit cancelled")
)

// Window is the terminal area the editor paints on.
type Window interface {
	Size() (rows, cols int)
	Move(row, col int)
	Put(row, col int, ch rune)
	ClearToEOL(row, col int)
	Refresh()
}

// ContentReader is implemented by windows that already show text which
// should seed the buffer.
type ContentReader interface {
	ReadLines() []string
}

// Source yields decoded commands, blocking until one is available.
type Source interface {
	Next() (Command, error)
}

// Cursor is a position in the buffer. Col may equal the column count,
// the pivot used for wrap decisions.
type Cursor struct {
	Row, Col int
}

// State is a copy of the editor's observable state.
type State struct {
	Lines  []string
	Cursor Cursor
	Mode   Mode
}

// Option configures an Editor.
type Option func(*Editor)

// WithMode sets the initial insert/overwrite mode.
func WithMode(m Mode) Option { return func(e *Editor) { e.mode = m } }

// WithLogger routes per-command debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithText seeds the buffer from text instead of the window content.
func WithText(s string) Option {
	return func(e *Editor) {
		e.seed = &s
	}
}

type Editor struct {
	win  Window
	src  Source
	log  *log.Logger
	buf  *Buffer
	cur  Cursor
	mode Mode
	seed *string

	// painted holds the row contents last sent to win; nil forces a full paint.
	painted []string
}

// New builds an editor sized to win. The buffer is seeded from WithText,
// or from the window itself when it implements ContentReader.
func New(win Window, src Source, opts ...Option) *Editor {
	rows, cols := win.Size()
	e := &Editor{
		win: win,
		src: src,
		log: log.New(io.Discard),
		buf: NewBuffer(rows, cols),
	}
	for _, o := range opts {
		o(e)
	}
	switch {
	case e.seed != nil:
		e.buf.SetText(*e.seed)
	default:
		if cr, ok := win.(ContentReader); ok {
			e.buf.SetLines(cr.ReadLines())
		}
	}
	return e
}

// Edit runs the command loop until terminate and returns the contents.
func (e *Editor) Edit() (string, error) {
	e.paint(true)
	for {
		cmd, err := e.src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrSourceExhausted
			}
			return "", fmt.Errorf("textbox: next command: %w", err)
		}
		if e.Apply(cmd) {
			e.log.Debug("terminate", "row", e.cur.Row, "col", e.cur.Col)
			return e.String(), nil
		}
	}
}

// Apply executes one command and repaints. It reports whether the
// command ends the session.
func (e *Editor) Apply(cmd Command) bool {
	if cmd.Op == OpNone {
		return false
	}
	done, ok := e.step(cmd)
	if done {
		return true
	}
	if !ok {
		e.log.Debug("rejected", "op", cmd, "row", e.cur.Row, "col", e.cur.Col)
	} else {
		e.log.Debug("applied", "op", cmd, "row", e.cur.Row, "col", e.cur.Col)
	}
	e.paint(cmd.Op == OpRefresh)
	return false
}

// Snapshot copies the buffer, cursor and mode.
func (e *Editor) Snapshot() State {
	return State{Lines: e.buf.Lines(), Cursor: e.cur, Mode: e.mode}
}

func (e *Editor) Mode() Mode     { return e.mode }
func (e *Editor) Cursor() Cursor { return e.cur }

// String serializes the buffer.
func (e *Editor) String() string { return e.buf.String() }

// step applies cmd. ok is false when the command was refused or had no
// effect because the cursor sits at an edge.
func (e *Editor) step(cmd Command) (done, ok bool) {
	b := e.buf
	row, col := e.cur.Row, e.cur.Col
	switch cmd.Op {
	case OpMoveHome:
		e.cur.Col = 0
		return false, true
	case OpMoveLeft:
		return false, e.moveLeft()
	case OpMoveRight:
		return false, e.moveRight()
	case OpMoveEnd:
		e.cur.Col = b.Len(row)
		return false, true
	case OpMoveUp:
		if row == 0 {
			return false, false
		}
		e.cur.Row--
		e.clampCol()
		return false, true
	case OpMoveDown:
		if row >= b.Rows()-1 {
			return false, false
		}
		e.cur.Row++
		e.clampCol()
		return false, true
	case OpDeleteUnder:
		switch {
		case col < b.Len(row):
			return false, b.remove(row, col)
		case col == b.Len(row):
			return false, b.join(row)
		}
		// blank padding under the cursor
		return false, true
	case OpDeleteBackward:
		return false, e.deleteBackward()
	case OpClearLine:
		if b.Blank(row) {
			b.deleteLine(row)
			return false, true
		}
		b.truncate(row, col)
		return false, true
	case OpInsertBlankLine:
		if dropped := b.insertLine(row, nil); len(dropped) > 0 {
			e.log.Debug("bottom line discarded", "text", string(dropped))
		}
		return false, true
	case OpNewline:
		if b.Rows() == 1 {
			return true, true
		}
		if !b.split(row, col) {
			return false, false
		}
		e.cur = Cursor{Row: row + 1}
		return false, true
	case OpToggleMode:
		e.mode = e.mode.Toggle()
		return false, true
	case OpRefresh:
		return false, true
	case OpTerminate:
		return true, true
	case OpInsertChar:
		if !Printable(cmd.Rune) {
			return false, false
		}
		var wrote bool
		if e.mode == Insert {
			wrote = b.insert(row, col, cmd.Rune)
		} else {
			wrote = b.put(row, col, cmd.Rune)
		}
		if wrote {
			// a write implies col < cols, so the pivot is the furthest this goes
			e.cur.Col++
		}
		return false, wrote
	}
	return false, false
}

func (e *Editor) moveLeft() bool {
	switch {
	case e.cur.Col > 0:
		e.cur.Col--
	case e.cur.Row > 0:
		e.cur.Row--
		e.cur.Col = e.buf.Len(e.cur.Row)
	default:
		return false
	}
	return true
}

func (e *Editor) moveRight() bool {
	b := e.buf
	switch {
	case e.cur.Col < b.Len(e.cur.Row) && e.cur.Col < b.Cols():
		e.cur.Col++
	case e.cur.Row < b.Rows()-1:
		e.cur.Row++
		e.cur.Col = 0
	default:
		return false
	}
	return true
}

// deleteBackward is move-left plus delete-under as one step. Stepping
// back over padding deletes nothing; a refused join leaves the cursor put.
func (e *Editor) deleteBackward() bool {
	b := e.buf
	row, col := e.cur.Row, e.cur.Col
	switch {
	case col > 0:
		e.cur.Col--
		if e.cur.Col < b.Len(row) {
			b.remove(row, e.cur.Col)
		}
		return true
	case row > 0:
		end := b.Len(row - 1)
		if !b.join(row - 1) {
			return false
		}
		e.cur = Cursor{Row: row - 1, Col: end}
		return true
	}
	return false
}

func (e *Editor) clampCol() {
	if n := e.buf.Len(e.cur.Row); e.cur.Col > n {
		e.cur.Col = n
	}
}

// paint pushes changed rows to the window, then places the cursor. The
// pivot column is shown on the last physical cell.
func (e *Editor) paint(full bool) {
	lines := e.buf.Lines()
	for r, s := range lines {
		if !full && e.painted != nil && e.painted[r] == s {
			continue
		}
		c := 0
		for _, ch := range s {
			e.win.Put(r, c, ch)
			c++
		}
		e.win.ClearToEOL(r, c)
	}
	e.painted = lines
	col := e.cur.Col
	if col >= e.buf.Cols() {
		col = e.buf.Cols() - 1
	}
	e.win.Move(e.cur.Row, col)
	e.win.Refresh()
}
