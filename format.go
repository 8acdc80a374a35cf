package driftdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatReport is a convenience wrapper that renders the report to a string
// instead of an io.Writer
func FormatReport(aName, bName string, recs Records, colorized bool) string {
	buf := &bytes.Buffer{}
	// bytes.Buffer writes never fail
	_ = WriteReport(buf, aName, bName, recs, colorized)
	return buf.String()
}

// WriteReport writes a text report to w: a preamble naming both inputs,
// then either a success line when recs is empty or a count-prefixed
// enumeration of every record. if colorized is true the success line is
// green and the difference header red, regardless of whether w is a
// terminal
func WriteReport(w io.Writer, aName, bName string, recs Records, colorized bool) error {
	okLine := color.New(color.FgGreen)
	badLine := color.New(color.FgRed)
	if colorized {
		okLine.EnableColor()
		badLine.EnableColor()
	} else {
		okLine.DisableColor()
		badLine.DisableColor()
	}

	if _, err := fmt.Fprintf(w, "Comparing '%s' (File 1) with '%s' (File 2)...\n\n", aName, bName); err != nil {
		return err
	}

	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, okLine.Sprint("The documents are structurally and numerically equivalent."))
		return err
	}

	if _, err := fmt.Fprintln(w, badLine.Sprintf("Found %d difference(s):", len(recs))); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "- %s\n", r); err != nil {
			return err
		}
		if r.Detail != "" {
			for _, line := range strings.Split(r.Detail, "\n") {
				if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// FormatSummary prints a one-line rendition of a run summary, e.g.
// "3 differences. 1 key added. 2 value mismatches."
func FormatSummary(s *Summary, colorized bool) string {
	if s == nil {
		return "<nil>"
	}

	totalLine := color.New(color.FgRed)
	if s.Total() == 0 {
		totalLine = color.New(color.FgGreen)
	}
	if colorized {
		totalLine.EnableColor()
	} else {
		totalLine.DisableColor()
	}

	parts := []string{totalLine.Sprint(countWord(s.Total(), "difference", "differences"))}
	for _, seg := range []struct {
		n                int
		singular, plural string
	}{
		{s.TypeMismatches, "type mismatch", "type mismatches"},
		{s.KeysAdded, "key added", "keys added"},
		{s.KeysRemoved, "key removed", "keys removed"},
		{s.LengthMismatches, "length mismatch", "length mismatches"},
		{s.NumberMismatches, "numeric mismatch", "numeric mismatches"},
		{s.ValueMismatches, "value mismatch", "value mismatches"},
		{s.PresenceMismatches, "presence mismatch", "presence mismatches"},
		{s.StatsMismatches, "statistical mismatch", "statistical mismatches"},
		{s.NonFinite, "non-finite value", "non-finite values"},
		{s.DepthExceeded, "subtree truncated", "subtrees truncated"},
	} {
		if seg.n > 0 {
			parts = append(parts, countWord(seg.n, seg.singular, seg.plural))
		}
	}
	return strings.Join(parts, ". ") + ".\n"
}

func countWord(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
