package textbox

import (
	"reflect"
	"testing"
)

func TestBufferSeedClipsToGeometry(t *testing.T) {
	b := NewBuffer(2, 4)
	b.SetText("abcdef\nxy  \nlost")
	want := []string{"abcd", "xy"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestBufferSeedDropsWideAndControlRunes(t *testing.T) {
	b := NewBuffer(1, 10)
	b.SetText("a\tb\x01c世d")
	if got := b.Line(0); got != "a bcd" {
		t.Fatalf("line = %q, want %q", got, "a bcd")
	}
}

func TestBufferInsertPadsAndRejectsFull(t *testing.T) {
	b := NewBuffer(1, 5)
	if !b.insert(0, 3, 'x') {
		t.Fatalf("insert into padding failed")
	}
	if got := b.Line(0); got != "   x" {
		t.Fatalf("line = %q", got)
	}
	b.SetText("abcde")
	if b.insert(0, 2, 'z') {
		t.Fatalf("insert into a full line should be refused")
	}
	if got := b.Line(0); got != "abcde" {
		t.Fatalf("refused insert changed the line: %q", got)
	}
}

func TestBufferPutOverwritesAndTrims(t *testing.T) {
	b := NewBuffer(1, 5)
	b.SetText("abc")
	if !b.put(0, 2, ' ') {
		t.Fatalf("put failed")
	}
	if got := b.Line(0); got != "ab" {
		t.Fatalf("line = %q, want trailing blank trimmed", got)
	}
	if b.put(0, 5, 'x') {
		t.Fatalf("put at the pivot column should be refused")
	}
}

func TestBufferJoinRespectsWidth(t *testing.T) {
	b := NewBuffer(3, 5)
	b.SetText("abc\nde\nf")
	if !b.join(0) {
		t.Fatalf("join of fitting lines failed")
	}
	want := []string{"abcde", "f", ""}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if b.join(0) {
		t.Fatalf("join past cols should be refused")
	}
	if b.join(2) {
		t.Fatalf("join on the last row should be refused")
	}
}

func TestBufferInsertLineDropsBottom(t *testing.T) {
	b := NewBuffer(3, 5)
	b.SetText("a\nb\nc")
	dropped := b.insertLine(1, nil)
	if string(dropped) != "c" {
		t.Fatalf("dropped = %q, want c", string(dropped))
	}
	want := []string{"a", "", "b"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestBufferSplitNeedsBlankBottom(t *testing.T) {
	b := NewBuffer(3, 5)
	b.SetText("hello")
	if !b.split(0, 2) {
		t.Fatalf("split failed")
	}
	want := []string{"he", "llo", ""}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	b.SetText("a\nb\nc")
	if b.split(0, 1) {
		t.Fatalf("split with a full bottom line should be refused")
	}
}

func TestBufferStringStripsTrailingWhitespace(t *testing.T) {
	b := NewBuffer(4, 5)
	b.SetText("ab\n\ncd")
	if got := b.String(); got != "ab\n\ncd" {
		t.Fatalf("String() = %q", got)
	}
}
