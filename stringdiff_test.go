package driftdiff

import (
	"strings"
	"testing"
)

func TestInlineStringDiff(t *testing.T) {
	a := "alpha\nbeta\ngamma\ndelta"
	b := "alpha\nbetta\ngamma\ndelta"

	got := inlineStringDiff(a, b)
	if got == "" {
		t.Fatal("expected a detail for close multi-line strings")
	}
	if !strings.Contains(got, "{+") {
		t.Errorf("detail missing insertion marker: %q", got)
	}
	if !strings.Contains(got, "alpha") || !strings.Contains(got, "delta") {
		t.Errorf("detail lost surrounding context: %q", got)
	}
}

func TestInlineStringDiffSingleLine(t *testing.T) {
	if got := inlineStringDiff("abc", "abd"); got != "" {
		t.Errorf("single-line strings should carry no detail, got %q", got)
	}
	if got := inlineStringDiff("a\nb", "xyz"); got != "" {
		t.Errorf("detail requires newlines on both sides, got %q", got)
	}
}

func TestInlineStringDiffReplacement(t *testing.T) {
	// when the edits dwarf what is shared, the values read better side by
	// side than as an inline diff
	if got := inlineStringDiff("aaa\nbbb", "xxx\nyyy\nzzz"); got != "" {
		t.Errorf("wholesale replacement should carry no detail, got %q", got)
	}
}
