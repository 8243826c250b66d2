package selective

import (
	"fmt"

	"github.com/opsel/opsel/debug"

	"github.com/expr-lang/expr"
)

// Filter returns the subset of r whose operators satisfy predicate, an
// expression over the fields name, is_root_operator,
// is_used_for_training, include_all_overloads and models (the list of
// canonical model strings, nil when unattributed).  For example:
//
//	is_root_operator && !include_all_overloads
//	"mobilenet@v1" in models
func Filter(r Registry, predicate string) (Registry, error) {
	prg, err := expr.Compile(predicate, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling predicate %q: %w", predicate, err)
	}
	res := Registry{}
	for name, op := range r {
		env := map[string]any{
			"name":                   op.Name,
			fieldIsRootOperator:      op.IsRootOperator,
			fieldIsUsedForTraining:   op.IsUsedForTraining,
			fieldIncludeAllOverloads: op.IncludeAllOverloads,
			fieldModels:              modelStrings(op.Models),
		}
		v, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("evaluating predicate for %q: %w", name, err)
		}
		keep, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("predicate %q returned %T, want bool", predicate, v)
		}
		if debug.Filter() {
			debug.Logf("filter %q: %s -> %t\n", predicate, name, keep)
		}
		if keep {
			res[name] = op
		}
	}
	return res, nil
}

func modelStrings(models []*Model) []string {
	if models == nil {
		return nil
	}
	res := make([]string, len(models))
	for i, m := range models {
		res[i] = m.String()
	}
	return res
}
