package ui

import (
	"strings"
	"testing"
)

func TestRenderDiffNoChanges(t *testing.T) {
	if got := RenderDiff("same", "same", true); got != "no changes\n" {
		t.Fatalf("RenderDiff = %q", got)
	}
}

func TestRenderDiffLines(t *testing.T) {
	got := RenderDiff("abc\ndef", "abc\nxyz", true)
	for _, want := range []string{"  abc\n", "- def\n", "+ xyz\n"} {
		if !strings.Contains(got, want) {
			t.Fatalf("diff missing %q:\n%s", want, got)
		}
	}
}
