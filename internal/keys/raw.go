package keys

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"editbox/internal/textbox"
)

const esc = 0x1b

var controlOps = map[rune]textbox.Op{
	0x01: textbox.OpMoveHome,        // ^A
	0x02: textbox.OpMoveLeft,        // ^B
	0x04: textbox.OpDeleteUnder,     // ^D
	0x05: textbox.OpMoveEnd,         // ^E
	0x06: textbox.OpMoveRight,       // ^F
	0x07: textbox.OpTerminate,       // ^G
	0x08: textbox.OpDeleteBackward,  // ^H
	0x0a: textbox.OpNewline,         // ^J
	0x0b: textbox.OpClearLine,       // ^K
	0x0c: textbox.OpRefresh,         // ^L
	0x0d: textbox.OpNewline,         // CR
	0x0e: textbox.OpMoveDown,        // ^N
	0x0f: textbox.OpInsertBlankLine, // ^O
	0x10: textbox.OpMoveUp,          // ^P
	0x14: textbox.OpToggleMode,      // ^T
	0x7f: textbox.OpDeleteBackward,  // DEL, sent by most terminals for backspace
}

// CSI final bytes for the cursor keys.
var csiOps = map[byte]textbox.Op{
	'A': textbox.OpMoveUp,
	'B': textbox.OpMoveDown,
	'C': textbox.OpMoveRight,
	'D': textbox.OpMoveLeft,
	'H': textbox.OpMoveHome,
	'F': textbox.OpMoveEnd,
}

// CSI "n~" sequences.
var tildeOps = map[string]textbox.Op{
	"1": textbox.OpMoveHome,
	"2": textbox.OpToggleMode,
	"3": textbox.OpDeleteUnder,
	"4": textbox.OpMoveEnd,
}

// DecodeRune maps one raw input rune to a command. Unbound control codes
// decode to OpNone.
func DecodeRune(r rune) textbox.Command {
	if op, ok := controlOps[r]; ok {
		return textbox.Key(op)
	}
	if textbox.Printable(r) {
		return textbox.Char(r)
	}
	return textbox.Key(textbox.OpNone)
}

// ReaderSource reads raw keystrokes from an io.Reader. A lone ESC aborts
// the session with textbox.ErrCancelled; ANSI cursor key sequences are
// decoded.
type ReaderSource struct {
	r *bufio.Reader
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

func (s *ReaderSource) Next() (textbox.Command, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return textbox.Command{}, textbox.ErrSourceExhausted
		}
		return textbox.Command{}, fmt.Errorf("read key: %w", err)
	}
	if r != esc {
		return DecodeRune(r), nil
	}
	return s.escape()
}

// escape handles the bytes after ESC. Anything but a complete CSI
// sequence counts as the user pressing escape.
func (s *ReaderSource) escape() (textbox.Command, error) {
	if b, err := s.r.Peek(1); err != nil || b[0] != '[' {
		return textbox.Command{}, textbox.ErrCancelled
	}
	_, _ = s.r.ReadByte()
	var params []byte
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			return textbox.Command{}, textbox.ErrCancelled
		}
		switch {
		case c >= '0' && c <= '9' || c == ';':
			params = append(params, c)
			continue
		case c == '~':
			return textbox.Key(tildeOps[string(params)]), nil
		}
		return textbox.Key(csiOps[c]), nil
	}
}
