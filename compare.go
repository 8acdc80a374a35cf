package driftdiff

import (
	"fmt"
	"math"
)

// Numeric tolerance: two numbers a and b compare equal when
// |a-b| <= AbsTolerance + RelTolerance*|b|. Fixed by contract so that two
// runs over the same inputs always agree
const (
	AbsTolerance = 1e-8
	RelTolerance = 1e-5
)

// DefaultMaxDepth bounds recursion depth as a guard against pathologically
// deep trees exhausting the stack. documents this deep are almost certainly
// malformed
const DefaultMaxDepth = 10000

// Config are any possible configuration parameters for a Comparer
type Config struct {
	// MaxDepth caps recursion depth. descent past it is reported as a
	// depth-exceeded record instead of a crash
	MaxDepth int
	// Provide a non-nil summary pointer & Compare will populate it with
	// per-kind record counts
	Summary *Summary
}

// Option is a function that adjusts a config, zero or more Options can be
// passed to New
type Option func(cfg *Config)

// OptionSetSummary will populate the passed-in summary when Compare is
// called
func OptionSetSummary(s *Summary) Option {
	return func(cfg *Config) {
		cfg.Summary = s
	}
}

// OptionMaxDepth overrides the default recursion depth guard
func OptionMaxDepth(depth int) Option {
	return func(cfg *Config) {
		cfg.MaxDepth = depth
	}
}

// Comparer calculates discrepancy reports for pairs of document trees
type Comparer struct {
	cfg Config
}

// New creates a Comparer with the given options
func New(opts ...Option) *Comparer {
	cfg := Config{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Comparer{cfg: cfg}
}

// Compare reports every discrepancy between a and b using the default
// configuration, with paths rooted at "root"
func Compare(a, b Value) Records {
	return New().Compare(a, b)
}

// Compare reports every discrepancy between a and b, with paths rooted at
// "root". it never fails: malformed or asymmetric inputs produce records,
// not errors
func (c *Comparer) Compare(a, b Value) Records {
	return c.CompareAt(a, b, "root")
}

// CompareAt is Compare with a caller-chosen root path, for embedding the
// report inside a larger document location
func (c *Comparer) CompareAt(a, b Value, path string) Records {
	recs := c.compare(a, b, path, 0)
	if c.cfg.Summary != nil {
		for _, r := range recs {
			c.cfg.Summary.add(r.Kind)
		}
	}
	return recs
}

// compare dispatches on value kind. each recursive call returns its own
// owned slice; the caller concatenates, so there is no shared accumulator
// and the walk is pure
func (c *Comparer) compare(a, b Value, path string, depth int) Records {
	if depth >= c.cfg.MaxDepth {
		return Records{{Kind: RecordDepthExceeded, Path: path}}
	}

	// a kind mismatch short-circuits: nothing below this path is reported
	if a.Kind() != b.Kind() {
		return Records{{Kind: RecordTypeMismatch, Path: path, A: a, B: b}}
	}

	switch a.Kind() {
	case KindObject:
		return c.compareObjects(a, b, path, depth)
	case KindArray:
		return c.compareArrays(a, b, path, depth)
	case KindNumber:
		return compareNumbers(a, b, path)
	case KindString:
		if a.Text() != b.Text() {
			return Records{{
				Kind:   RecordValueMismatch,
				Path:   path,
				A:      a,
				B:      b,
				Detail: inlineStringDiff(a.Text(), b.Text()),
			}}
		}
		return nil
	case KindBool, KindNull:
		if !a.Equal(b) {
			return Records{{Kind: RecordValueMismatch, Path: path, A: a, B: b}}
		}
		return nil
	default:
		// two invalid values: nothing sensible to say beyond a value check
		if !a.Equal(b) {
			return Records{{Kind: RecordValueMismatch, Path: path, A: a, B: b}}
		}
		return nil
	}
}

// compareObjects diffs the key sets, then recurses into common keys. keys
// only in b are "added", keys only in a are "removed". all three groups are
// processed in sorted key order so output is reproducible
func (c *Comparer) compareObjects(a, b Value, path string, depth int) (recs Records) {
	for _, f := range b.Fields() {
		if _, ok := a.Field(f.Key); !ok {
			recs = append(recs, Record{Kind: RecordKeyAdded, Path: path, Key: f.Key})
		}
	}
	for _, f := range a.Fields() {
		if _, ok := b.Field(f.Key); !ok {
			recs = append(recs, Record{Kind: RecordKeyRemoved, Path: path, Key: f.Key})
		}
	}
	for _, f := range a.Fields() {
		bv, ok := b.Field(f.Key)
		if !ok {
			continue
		}
		recs = append(recs, c.compare(f.Value, bv, path+"."+f.Key, depth+1)...)
	}
	return recs
}

// compareArrays delegates purely numeric pairs to the statistical
// comparison, everything else to positional element-wise comparison.
// empty arrays count as all-numeric, so an empty pair matches trivially
func (c *Comparer) compareArrays(a, b Value, path string, depth int) Records {
	if allNumeric(a) && allNumeric(b) {
		return CompareArrayStats(floats(a), floats(b), path)
	}

	var recs Records
	if a.Len() != b.Len() {
		recs = append(recs, Record{Kind: RecordLengthMismatch, Path: path, A: a, B: b})
	}
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	// elements past the shorter length are covered by the length record
	for i := 0; i < n; i++ {
		childPath := fmt.Sprintf("%s[%d]", path, i)
		recs = append(recs, c.compare(a.Elems()[i], b.Elems()[i], childPath, depth+1)...)
	}
	return recs
}

// compareNumbers applies the package tolerance. NaN on either side is
// reported as a dedicated non-finite record rather than falling through a
// tolerance check that would always be false. infinities are equal only to
// an infinity of the same sign
func compareNumbers(a, b Value, path string) Records {
	x, y := a.Float(), b.Float()
	if math.IsNaN(x) || math.IsNaN(y) {
		return Records{{Kind: RecordNonFinite, Path: path, A: a, B: b}}
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		if x == y {
			return nil
		}
		return Records{{Kind: RecordNonFinite, Path: path, A: a, B: b}}
	}
	if isClose(x, y) {
		return nil
	}
	return Records{{Kind: RecordNumberMismatch, Path: path, A: a, B: b, Delta: y - x}}
}

// isClose reports whether a and b are equal within the fixed package
// tolerance: |a-b| <= AbsTolerance + RelTolerance*|b|. both inputs must be
// finite
func isClose(a, b float64) bool {
	return math.Abs(a-b) <= AbsTolerance+RelTolerance*math.Abs(b)
}

func allNumeric(v Value) bool {
	for _, el := range v.Elems() {
		if el.Kind() != KindNumber {
			return false
		}
	}
	return true
}

func floats(v Value) []float64 {
	if v.Len() == 0 {
		return nil
	}
	out := make([]float64, v.Len())
	for i, el := range v.Elems() {
		out[i] = el.Float()
	}
	return out
}
