package driftdiff

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Filter keeps the records for which rule evaluates to true. rule is an
// expression over two variables: path (the record's tree location) and
// kind (the record kind name, e.g. "value-mismatch"). useful for muting
// expected drift without touching the inputs:
//
//	kept, err := driftdiff.Filter(recs, `not (path matches "^root\\.timestamps")`)
func Filter(recs Records, rule string) (Records, error) {
	prog, err := expr.Compile(rule, expr.Env(map[string]interface{}{
		"path": "",
		"kind": "",
	}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", rule, err)
	}
	var out Records
	for _, r := range recs {
		env := map[string]interface{}{
			"path": r.Path,
			"kind": r.Kind.String(),
		}
		keep, err := expr.Run(prog, env)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter %q: %w", rule, err)
		}
		if keep.(bool) {
			out = append(out, r)
		}
	}
	return out, nil
}
