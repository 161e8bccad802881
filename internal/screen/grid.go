// Package screen provides an in-memory character window that the editor
// paints on and the TUI renders from.
package screen

import (
	"strings"
	"sync"
)

// Grid is a rows×cols window of cells. It is safe for one painter and
// any number of readers.
type Grid struct {
	mu         sync.Mutex
	rows, cols int
	cells      [][]rune
	row, col   int
	onRefresh  func()
	refreshes  int
}

// New returns a blank grid. Sizes below one are raised to one.
func New(rows, cols int) *Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	g := &Grid{rows: rows, cols: cols, cells: make([][]rune, rows)}
	for i := range g.cells {
		g.cells[i] = blankRow(cols)
	}
	return g
}

// Fill writes text into the grid as if it had been drawn before the edit,
// clipping at the window edges.
func (g *Grid) Fill(text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for r := 0; r < g.rows; r++ {
		g.cells[r] = blankRow(g.cols)
		if r >= len(lines) {
			continue
		}
		c := 0
		for _, ch := range lines[r] {
			if c == g.cols {
				break
			}
			g.cells[r][c] = ch
			c++
		}
	}
}

// OnRefresh registers fn to run after every Refresh, outside the lock.
func (g *Grid) OnRefresh(fn func()) {
	g.mu.Lock()
	g.onRefresh = fn
	g.mu.Unlock()
}

func (g *Grid) Size() (int, int) { return g.rows, g.cols }

func (g *Grid) Move(row, col int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.row, g.col = clamp(row, g.rows-1), clamp(col, g.cols-1)
}

func (g *Grid) Put(row, col int, ch rune) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inside(row, col) {
		g.cells[row][col] = ch
	}
}

func (g *Grid) ClearToEOL(row, col int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if row < 0 || row >= g.rows {
		return
	}
	for c := max(col, 0); c < g.cols; c++ {
		g.cells[row][c] = ' '
	}
}

func (g *Grid) Refresh() {
	g.mu.Lock()
	g.refreshes++
	fn := g.onRefresh
	g.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// ReadLines returns the visible rows without trailing blanks.
func (g *Grid) ReadLines() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, g.rows)
	for r, row := range g.cells {
		out[r] = strings.TrimRight(string(row), " ")
	}
	return out
}

// Snapshot is a consistent copy of the grid for rendering.
type Snapshot struct {
	Rows      []string
	Row, Col  int
	Refreshes int
}

func (g *Grid) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := Snapshot{Rows: make([]string, g.rows), Row: g.row, Col: g.col, Refreshes: g.refreshes}
	for r, row := range g.cells {
		s.Rows[r] = string(row)
	}
	return s
}

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func blankRow(n int) []rune {
	return []rune(strings.Repeat(" ", n))
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
