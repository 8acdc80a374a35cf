package driftdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// inlineStringDiff renders a compact inline diff of two mismatched strings,
// deletions as [-text-] and insertions as {+text+}. only multi-line pairs
// get one: short scalar strings read better side by side in the mismatch
// message. when the edits cover more than half of the shorter string the
// values are effectively a replacement and the detail is omitted too
func inlineStringDiff(a, b string) string {
	if !strings.Contains(a, "\n") || !strings.Contains(b, "\n") {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	editSize := 0
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			editSize += len(d.Text)
		}
	}
	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	if editSize > shorter/2 {
		return ""
	}

	sb := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(d.Text)
			sb.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(d.Text)
			sb.WriteString("+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
