package driftdiff

import (
	"os"
)

func Example() {
	// start with two slightly drifted documents
	a, err := ParseJSON([]byte(`{"label": "x", "metrics": [1, 2, 3]}`))
	if err != nil {
		panic(err)
	}
	b, err := ParseJSON([]byte(`{"label": "y", "metrics": [1, 2, 3, 100]}`))
	if err != nil {
		panic(err)
	}

	// the numeric array is compared by its summary statistics, everything
	// else structurally
	recs := Compare(a, b)

	if err := WriteReport(os.Stdout, "baseline.json", "candidate.json", recs, false); err != nil {
		panic(err)
	}

	// Output:
	// Comparing 'baseline.json' (File 1) with 'candidate.json' (File 2)...
	//
	// Found 2 difference(s):
	// - [root.label] Value mismatch: 'x' vs 'y'
	// - [root.metrics] Statistical differences in numeric array:
	//   - Count: 3 vs 4 (Diff: 1)
	//   - Mean: 2.0000 vs 26.5000 (Diff: 24.5000)
	//   - Std Dev: 0.8165 vs 42.4411
	//   - Max: 3.0000 vs 100.0000
}
