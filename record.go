package driftdiff

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// RecordKind defines the kinds of discrepancy a comparison can report
type RecordKind uint8

const (
	// RecordTypeMismatch means the two values have different kinds.
	// comparison does not descend below a type mismatch
	RecordTypeMismatch RecordKind = iota
	// RecordKeyAdded means an object key exists only in the second document
	RecordKeyAdded
	// RecordKeyRemoved means an object key exists only in the first document
	RecordKeyRemoved
	// RecordLengthMismatch means two non-numeric lists have different lengths
	RecordLengthMismatch
	// RecordNumberMismatch means two numbers differ beyond tolerance
	RecordNumberMismatch
	// RecordValueMismatch means two strings, bools or nulls are unequal
	RecordValueMismatch
	// RecordPresenceMismatch means exactly one of two numeric arrays is empty
	RecordPresenceMismatch
	// RecordStatsMismatch groups the differing summary statistics of two
	// numeric arrays under a single record
	RecordStatsMismatch
	// RecordNonFinite means a NaN or comparison-breaking non-finite value
	// was encountered; reported explicitly instead of letting tolerance
	// checks against NaN silently fail
	RecordNonFinite
	// RecordDepthExceeded means recursion hit the comparer's depth guard
	// and the subtree below this path was skipped
	RecordDepthExceeded
)

func (k RecordKind) String() string {
	switch k {
	case RecordTypeMismatch:
		return "type-mismatch"
	case RecordKeyAdded:
		return "key-added"
	case RecordKeyRemoved:
		return "key-removed"
	case RecordLengthMismatch:
		return "length-mismatch"
	case RecordNumberMismatch:
		return "number-mismatch"
	case RecordValueMismatch:
		return "value-mismatch"
	case RecordPresenceMismatch:
		return "presence-mismatch"
	case RecordStatsMismatch:
		return "stats-mismatch"
	case RecordNonFinite:
		return "non-finite"
	case RecordDepthExceeded:
		return "depth-exceeded"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so kinds encode as their
// names rather than raw integers
func (k RecordKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// StatDelta is one differing summary statistic of a numeric array pair.
// A and B carry the exact float64 statistics; fixed-precision rendering is
// a presentation concern of Record.String and the report writer
type StatDelta struct {
	// Name is one of count, mean, std_dev, min, max
	Name string `json:"name"`
	// A is the statistic of the first array, B of the second
	A float64 `json:"a"`
	B float64 `json:"b"`
	// Delta is B - A
	Delta float64 `json:"delta"`
}

// Record is one reported discrepancy between two documents
type Record struct {
	// the kind of discrepancy
	Kind RecordKind
	// Path locates the discrepancy within the tree, e.g. root.metrics[3]
	Path string
	// Key names the added or removed object key, for key records only
	Key string
	// A and B are the compared values at Path, where meaningful
	A, B Value
	// Delta is B - A for numeric mismatches
	Delta float64
	// Stats holds the differing statistics of a stats-mismatch record
	Stats []StatDelta
	// Detail optionally carries an inline diff for multi-line string
	// mismatches. presentation only, never part of the comparison result
	Detail string
}

// Records is an ordered sequence of discrepancies. order follows traversal
// order: object fields by sorted key, array elements by index
type Records []Record

// Messages renders every record to its human-readable form
func (rs Records) Messages() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}

// String renders the record as a human-readable message. statistics are
// shown at fixed 4-decimal precision; scalar numbers use the shortest
// round-tripping form
func (r Record) String() string {
	switch r.Kind {
	case RecordTypeMismatch:
		return fmt.Sprintf("[%s] Type mismatch: %s vs %s", r.Path, r.A.Kind(), r.B.Kind())
	case RecordKeyAdded:
		return fmt.Sprintf("[%s] Key '%s' added in second file.", r.Path, r.Key)
	case RecordKeyRemoved:
		return fmt.Sprintf("[%s] Key '%s' removed in second file.", r.Path, r.Key)
	case RecordLengthMismatch:
		return fmt.Sprintf("[%s] List length mismatch: %d vs %d", r.Path, r.A.Len(), r.B.Len())
	case RecordNumberMismatch:
		return fmt.Sprintf("[%s] Numeric value mismatch: %s vs %s (Difference: %s)",
			r.Path, formatNumber(r.A.Float()), formatNumber(r.B.Float()), formatNumber(r.Delta))
	case RecordValueMismatch:
		return fmt.Sprintf("[%s] Value mismatch: '%s' vs '%s'", r.Path, r.A, r.B)
	case RecordPresenceMismatch:
		return fmt.Sprintf("[%s] Numeric array presence mismatch (one is empty).", r.Path)
	case RecordStatsMismatch:
		b := &strings.Builder{}
		fmt.Fprintf(b, "[%s] Statistical differences in numeric array:", r.Path)
		for _, sd := range r.Stats {
			b.WriteString("\n")
			b.WriteString(sd.line())
		}
		return b.String()
	case RecordNonFinite:
		if r.A.Kind() == KindArray || r.B.Kind() == KindArray {
			return fmt.Sprintf("[%s] Non-finite values in numeric array.", r.Path)
		}
		return fmt.Sprintf("[%s] Non-finite value encountered: %s vs %s", r.Path, r.A, r.B)
	case RecordDepthExceeded:
		return fmt.Sprintf("[%s] Maximum comparison depth reached, subtree skipped.", r.Path)
	default:
		return fmt.Sprintf("[%s] Unknown difference", r.Path)
	}
}

// line renders one statistic sub-line of a grouped stats record. count is
// an integer, so it renders without decimals; count and mean include the
// signed delta
func (sd StatDelta) line() string {
	switch sd.Name {
	case "count":
		return fmt.Sprintf("  - Count: %d vs %d (Diff: %d)", int(sd.A), int(sd.B), int(sd.Delta))
	case "mean":
		return fmt.Sprintf("  - Mean: %.4f vs %.4f (Diff: %.4f)", sd.A, sd.B, sd.Delta)
	case "std_dev":
		return fmt.Sprintf("  - Std Dev: %.4f vs %.4f", sd.A, sd.B)
	case "min":
		return fmt.Sprintf("  - Min: %.4f vs %.4f", sd.A, sd.B)
	case "max":
		return fmt.Sprintf("  - Max: %.4f vs %.4f", sd.A, sd.B)
	default:
		return fmt.Sprintf("  - %s: %.4f vs %.4f", sd.Name, sd.A, sd.B)
	}
}

// MarshalJSON implements a custom JSON marshaller that only includes the
// fields meaningful for the record's kind
func (r Record) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{
		"kind":    r.Kind,
		"path":    r.Path,
		"message": r.String(),
	}
	switch r.Kind {
	case RecordKeyAdded, RecordKeyRemoved:
		m["key"] = r.Key
	case RecordTypeMismatch, RecordValueMismatch, RecordNonFinite:
		m["a"] = jsonValue(r.A)
		m["b"] = jsonValue(r.B)
	case RecordNumberMismatch:
		m["a"] = jsonValue(r.A)
		m["b"] = jsonValue(r.B)
		m["delta"] = r.Delta
	case RecordLengthMismatch:
		m["lenA"] = r.A.Len()
		m["lenB"] = r.B.Len()
	case RecordStatsMismatch:
		m["stats"] = r.Stats
	}
	return json.Marshal(m)
}

// jsonValue returns a JSON-encodable form of v: the value itself unless it
// contains a non-finite number, which has no JSON encoding and would fail
// the whole records document
func jsonValue(v Value) interface{} {
	if allValuesFinite(v) {
		return v
	}
	return v.String()
}

func allValuesFinite(v Value) bool {
	switch v.Kind() {
	case KindNumber:
		f := v.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case KindArray:
		for _, el := range v.Elems() {
			if !allValuesFinite(el) {
				return false
			}
		}
	case KindObject:
		for _, f := range v.Fields() {
			if !allValuesFinite(f.Value) {
				return false
			}
		}
	}
	return true
}
