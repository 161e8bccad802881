package screen

import (
	"reflect"
	"testing"

	"editbox/internal/textbox"
)

func TestGridFillAndReadLines(t *testing.T) {
	g := New(3, 4)
	g.Fill("hello\nab  \n")
	want := []string{"hell", "ab", ""}
	if got := g.ReadLines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadLines = %q, want %q", got, want)
	}
}

func TestGridIgnoresOutOfRangeWrites(t *testing.T) {
	g := New(2, 2)
	g.Put(5, 0, 'x')
	g.Put(0, 9, 'x')
	g.ClearToEOL(7, 0)
	g.Move(10, 10)
	s := g.Snapshot()
	if s.Rows[0] != "  " || s.Rows[1] != "  " {
		t.Fatalf("rows = %q", s.Rows)
	}
	if s.Row != 1 || s.Col != 1 {
		t.Fatalf("cursor = (%d,%d), want clamped (1,1)", s.Row, s.Col)
	}
}

func TestGridRefreshCallsHook(t *testing.T) {
	g := New(1, 1)
	calls := 0
	g.OnRefresh(func() { calls++ })
	g.Refresh()
	g.Refresh()
	if calls != 2 || g.Snapshot().Refreshes != 2 {
		t.Fatalf("calls = %d, refreshes = %d", calls, g.Snapshot().Refreshes)
	}
}

func TestEditorPaintsGrid(t *testing.T) {
	g := New(2, 6)
	g.Fill("seed")
	src := textbox.Replay(textbox.Key(textbox.OpMoveEnd), textbox.Char('!'),
		textbox.Key(textbox.OpMoveDown), textbox.Char('x'), textbox.Key(textbox.OpTerminate))
	got, err := textbox.New(g, src).Edit()
	if err != nil {
		t.Fatalf("Edit error: %v", err)
	}
	if got != "seed!\nx" {
		t.Fatalf("Edit() = %q", got)
	}
	want := []string{"seed!", "x"}
	if lines := g.ReadLines(); !reflect.DeepEqual(lines, want) {
		t.Fatalf("grid = %q, want %q", lines, want)
	}
	if s := g.Snapshot(); s.Row != 1 || s.Col != 1 {
		t.Fatalf("grid cursor = (%d,%d)", s.Row, s.Col)
	}
}
