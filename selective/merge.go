package selective

import "fmt"

// MergeModels returns the union of lhs and rhs deduplicated by
// canonical string, keeping the first occurrence scanning lhs then rhs
// in order.  A nil input is treated as empty; a nil result means the
// union is empty, so merging two nil lists yields nil, not an empty
// list.
func MergeModels(lhs, rhs []*Model) []*Model {
	var res []*Model
	seen := map[string]bool{}
	for _, m := range append(append([]*Model{}, lhs...), rhs...) {
		key := m.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, m)
	}
	return res
}

// Combine merges two declarations of the same operator.  Any source
// asserting a "needed" fact (root, training, all overloads) makes it
// true overall, so the flags combine with logical OR.  The two names
// must be equal: a mismatch is a caller bug and aborts the merge with
// an error wrapping ErrNameMismatch.
func Combine(lhs, rhs *Operator) (*Operator, error) {
	if lhs.Name != rhs.Name {
		return nil, fmt.Errorf(
			"%w: expected both operators to have the same name, but got %q and %q",
			ErrNameMismatch, lhs.Name, rhs.Name,
		)
	}
	return &Operator{
		Name:                lhs.Name,
		IsRootOperator:      lhs.IsRootOperator || rhs.IsRootOperator,
		IsUsedForTraining:   lhs.IsUsedForTraining || rhs.IsUsedForTraining,
		IncludeAllOverloads: lhs.IncludeAllOverloads || rhs.IncludeAllOverloads,
		Models:              MergeModels(lhs.Models, rhs.Models),
	}, nil
}

// Merge folds the entries of lhs then rhs into a fresh registry,
// combining records that share a name.  Since Combine is commutative
// and associative in every field, the result's content does not depend
// on encounter order.  Neither input is mutated.
func Merge(lhs, rhs Registry) (Registry, error) {
	res := make(Registry, len(lhs)+len(rhs))
	for _, reg := range []Registry{lhs, rhs} {
		for name, op := range reg {
			existing, ok := res[name]
			if !ok {
				res[name] = op
				continue
			}
			combined, err := Combine(existing, op)
			if err != nil {
				return nil, err
			}
			res[name] = combined
		}
	}
	return res, nil
}
