// Package driftdiff compares two semi-structured documents (parsed JSON or
// YAML trees) and reports every structural and numeric discrepancy between
// them. Unlike strict-equality differs, numeric values are compared with a
// small absolute + relative tolerance, and arrays that contain only numbers
// are compared by their summary statistics (count, mean, standard deviation,
// min, max) instead of element by element.
//
// This makes driftdiff useful for diffing generated or measured data, for
// example simulation outputs or serialized metrics, where exact equality is
// too strict but meaningful drift must still be caught.
//
// Documents are represented as Value, a closed tagged union over the six
// kinds null, bool, number, string, array and object. Values are built with
// ParseJSON, ParseYAML or FromGo, then handed to Compare:
//
//	a, _ := driftdiff.ParseJSON(baselineData)
//	b, _ := driftdiff.ParseJSON(candidateData)
//	for _, rec := range driftdiff.Compare(a, b) {
//		fmt.Println(rec)
//	}
//
// Compare is a pure function: it never fails, never mutates its inputs, and
// turns every data condition (mismatched kinds, missing keys, numeric drift,
// non-finite values) into a Record rather than an error.
package driftdiff
