package textbox

import (
	"strings"
	"unicode"

	runewidth "github.com/mattn/go-runewidth"
)

// Buffer is a fixed grid of rows lines, each at most cols runes long.
// Lines never store trailing blanks; cells past the end are padding.
type Buffer struct {
	rows, cols int
	lines      [][]rune
}

// NewBuffer returns an empty buffer of the given geometry. Sizes below
// one are raised to one.
func NewBuffer(rows, cols int) *Buffer {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &Buffer{rows: rows, cols: cols, lines: make([][]rune, rows)}
}

func (b *Buffer) Rows() int { return b.rows }
func (b *Buffer) Cols() int { return b.cols }

// Len is the logical length of a line.
func (b *Buffer) Len(row int) int { return len(b.lines[row]) }

// Blank reports whether a line holds no visible characters.
func (b *Buffer) Blank(row int) bool { return len(b.lines[row]) == 0 }

func (b *Buffer) Line(row int) string { return string(b.lines[row]) }

// Lines returns a copy of every line's logical content.
func (b *Buffer) Lines() []string {
	out := make([]string, b.rows)
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// SetLines replaces the content from rows of text. Extra rows and runes
// past cols are dropped, tabs become blanks and other runes that do not
// occupy exactly one cell are removed.
func (b *Buffer) SetLines(src []string) {
	b.lines = make([][]rune, b.rows)
	for i := 0; i < b.rows && i < len(src); i++ {
		line := make([]rune, 0, b.cols)
		for _, r := range src[i] {
			if len(line) == b.cols {
				break
			}
			if r == '\t' {
				r = ' '
			}
			if !Printable(r) {
				continue
			}
			line = append(line, r)
		}
		b.lines[i] = trimBlanks(line)
	}
}

// SetText seeds the buffer from newline separated text.
func (b *Buffer) SetText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	b.SetLines(strings.Split(s, "\n"))
}

// String joins the lines with newlines and strips trailing whitespace.
func (b *Buffer) String() string {
	return strings.TrimRightFunc(strings.Join(b.Lines(), "\n"), unicode.IsSpace)
}

// insert shifts the line right from col and writes r there.
func (b *Buffer) insert(row, col int, r rune) bool {
	if col >= b.cols {
		return false
	}
	line := padded(b.lines[row], col)
	if len(line)+1 > b.cols {
		return false
	}
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	b.lines[row] = trimBlanks(line)
	return true
}

// put replaces the cell at col with r, extending the line if needed.
func (b *Buffer) put(row, col int, r rune) bool {
	if col >= b.cols {
		return false
	}
	line := padded(b.lines[row], col+1)
	line[col] = r
	b.lines[row] = trimBlanks(line)
	return true
}

// remove deletes the rune at col, shifting the rest left.
func (b *Buffer) remove(row, col int) bool {
	l := b.lines[row]
	if col >= len(l) {
		return false
	}
	line := make([]rune, 0, len(l)-1)
	line = append(line, l[:col]...)
	line = append(line, l[col+1:]...)
	b.lines[row] = trimBlanks(line)
	return true
}

// join appends the next line to row and closes the gap it leaves.
func (b *Buffer) join(row int) bool {
	if row >= b.rows-1 {
		return false
	}
	cur, next := b.lines[row], b.lines[row+1]
	if len(cur)+len(next) > b.cols {
		return false
	}
	line := make([]rune, 0, len(cur)+len(next))
	line = append(line, cur...)
	line = append(line, next...)
	b.lines[row] = line
	b.deleteLine(row + 1)
	return true
}

// truncate clears the line from col to its end.
func (b *Buffer) truncate(row, col int) bool {
	l := b.lines[row]
	if col >= len(l) {
		return false
	}
	b.lines[row] = trimBlanks(append([]rune(nil), l[:col]...))
	return true
}

// deleteLine removes row and appends a blank line at the bottom.
func (b *Buffer) deleteLine(row int) {
	lines := make([][]rune, 0, b.rows)
	lines = append(lines, b.lines[:row]...)
	lines = append(lines, b.lines[row+1:]...)
	b.lines = append(lines, nil)
}

// insertLine puts content at row and pushes the rest down. The bottom
// line falls off; its content is returned.
func (b *Buffer) insertLine(row int, content []rune) []rune {
	dropped := b.lines[b.rows-1]
	lines := make([][]rune, 0, b.rows)
	lines = append(lines, b.lines[:row]...)
	lines = append(lines, content)
	lines = append(lines, b.lines[row:b.rows-1]...)
	b.lines = lines
	return dropped
}

// split breaks row at col, moving the tail to a new line below. It
// refuses when no blank line is left to absorb the shift.
func (b *Buffer) split(row, col int) bool {
	if row >= b.rows-1 || !b.Blank(b.rows-1) {
		return false
	}
	l := b.lines[row]
	if col > len(l) {
		col = len(l)
	}
	head := trimBlanks(append([]rune(nil), l[:col]...))
	tail := append([]rune(nil), l[col:]...)
	b.lines[row] = head
	b.insertLine(row+1, tail)
	return true
}

// Printable reports whether r can be stored in a single cell.
func Printable(r rune) bool {
	return unicode.IsPrint(r) && runewidth.RuneWidth(r) == 1
}

// padded copies l, extending it with blanks to at least n runes.
func padded(l []rune, n int) []rune {
	size := len(l)
	if n > size {
		size = n
	}
	out := make([]rune, size, size+1)
	copy(out, l)
	for i := len(l); i < size; i++ {
		out[i] = ' '
	}
	return out
}

func trimBlanks(l []rune) []rune {
	n := len(l)
	for n > 0 && l[n-1] == ' ' {
		n--
	}
	if n == 0 {
		return nil
	}
	return l[:n]
}
