package driftdiff

import "math"

// ArrayStats is the five-number summary of a numeric sequence, computed
// once per array per comparison
type ArrayStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// NewArrayStats computes summary statistics for xs. StdDev is the
// population standard deviation (divisor = count, no Bessel correction),
// matching standard population-statistics definitions. an empty slice
// yields the zero ArrayStats
func NewArrayStats(xs []float64) ArrayStats {
	if len(xs) == 0 {
		return ArrayStats{}
	}
	st := ArrayStats{Count: len(xs), Min: xs[0], Max: xs[0]}
	sum := 0.0
	for _, x := range xs {
		sum += x
		if x < st.Min {
			st.Min = x
		}
		if x > st.Max {
			st.Max = x
		}
	}
	st.Mean = sum / float64(st.Count)

	sq := 0.0
	for _, x := range xs {
		d := x - st.Mean
		sq += d * d
	}
	st.StdDev = math.Sqrt(sq / float64(st.Count))
	return st
}

// CompareArrayStats compares two purely numeric sequences by their summary
// statistics instead of element by element. count is compared exactly, the
// remaining statistics with the package tolerance. differences are grouped
// into a single stats-mismatch record; when no statistic differs the result
// is empty, header included.
//
// two empty sequences are equivalent. exactly one empty sequence yields a
// single presence-mismatch record. sequences containing NaN or infinities
// yield a single non-finite record and no statistics, since tolerance
// checks against NaN are unconditionally false
func CompareArrayStats(a, b []float64, path string) Records {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	if len(a) == 0 || len(b) == 0 {
		return Records{{Kind: RecordPresenceMismatch, Path: path}}
	}
	if !allFinite(a) || !allFinite(b) {
		return Records{{
			Kind: RecordNonFinite,
			Path: path,
			A:    floatArray(a),
			B:    floatArray(b),
		}}
	}

	sa, sb := NewArrayStats(a), NewArrayStats(b)

	var deltas []StatDelta
	if sa.Count != sb.Count {
		deltas = append(deltas, StatDelta{
			Name:  "count",
			A:     float64(sa.Count),
			B:     float64(sb.Count),
			Delta: float64(sb.Count - sa.Count),
		})
	}
	if !isClose(sa.Mean, sb.Mean) {
		deltas = append(deltas, StatDelta{Name: "mean", A: sa.Mean, B: sb.Mean, Delta: sb.Mean - sa.Mean})
	}
	if !isClose(sa.StdDev, sb.StdDev) {
		deltas = append(deltas, StatDelta{Name: "std_dev", A: sa.StdDev, B: sb.StdDev, Delta: sb.StdDev - sa.StdDev})
	}
	if !isClose(sa.Min, sb.Min) {
		deltas = append(deltas, StatDelta{Name: "min", A: sa.Min, B: sb.Min, Delta: sb.Min - sa.Min})
	}
	if !isClose(sa.Max, sb.Max) {
		deltas = append(deltas, StatDelta{Name: "max", A: sa.Max, B: sb.Max, Delta: sb.Max - sa.Max})
	}

	if len(deltas) == 0 {
		return nil
	}
	return Records{{Kind: RecordStatsMismatch, Path: path, Stats: deltas}}
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func floatArray(xs []float64) Value {
	elems := make([]Value, len(xs))
	for i, x := range xs {
		elems[i] = Number(x)
	}
	return Array(elems...)
}

// Summary holds per-kind counts of the records emitted by one comparison.
// provide a non-nil summary pointer via OptionSetSummary & Compare will
// populate it
type Summary struct {
	TypeMismatches     int `json:"typeMismatches,omitempty"`
	KeysAdded          int `json:"keysAdded,omitempty"`
	KeysRemoved        int `json:"keysRemoved,omitempty"`
	LengthMismatches   int `json:"lengthMismatches,omitempty"`
	NumberMismatches   int `json:"numberMismatches,omitempty"`
	ValueMismatches    int `json:"valueMismatches,omitempty"`
	PresenceMismatches int `json:"presenceMismatches,omitempty"`
	StatsMismatches    int `json:"statsMismatches,omitempty"`
	NonFinite          int `json:"nonFinite,omitempty"`
	DepthExceeded      int `json:"depthExceeded,omitempty"`
}

func (s *Summary) add(k RecordKind) {
	switch k {
	case RecordTypeMismatch:
		s.TypeMismatches++
	case RecordKeyAdded:
		s.KeysAdded++
	case RecordKeyRemoved:
		s.KeysRemoved++
	case RecordLengthMismatch:
		s.LengthMismatches++
	case RecordNumberMismatch:
		s.NumberMismatches++
	case RecordValueMismatch:
		s.ValueMismatches++
	case RecordPresenceMismatch:
		s.PresenceMismatches++
	case RecordStatsMismatch:
		s.StatsMismatches++
	case RecordNonFinite:
		s.NonFinite++
	case RecordDepthExceeded:
		s.DepthExceeded++
	}
}

// Total returns the number of records counted
func (s Summary) Total() int {
	return s.TypeMismatches + s.KeysAdded + s.KeysRemoved + s.LengthMismatches +
		s.NumberMismatches + s.ValueMismatches + s.PresenceMismatches +
		s.StatsMismatches + s.NonFinite + s.DepthExceeded
}
