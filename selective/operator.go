package selective

import (
	"strings"

	"github.com/opsel/opsel/ir"
)

const (
	fieldIsRootOperator      = "is_root_operator"
	fieldIsUsedForTraining   = "is_used_for_training"
	fieldIncludeAllOverloads = "include_all_overloads"
	fieldModels              = "models"
)

// Operator is the declaration for one operator.  The name may or may
// not carry a dotted overload suffix; when it does not,
// IncludeAllOverloads says whether the declaration covers every
// overload sharing the base name.
//
// A nil Models slice means no consumer-attribution data is available,
// which is distinct from an empty list and is preserved through round
// trips.  Operators are never mutated after construction.
type Operator struct {
	Name string

	// IsRootOperator is true when the operator is invoked directly by
	// top-level calling code, not only transitively by other operators.
	IsRootOperator bool

	// IsUsedForTraining is true when training-specific supporting code
	// must be retained for this operator.
	IsUsedForTraining bool

	// IncludeAllOverloads is meaningful only when Name has no dotted
	// overload suffix.
	IncludeAllOverloads bool

	Models []*Model
}

// OperatorFromNode decodes the per-operator document y.  The name is
// supplied externally: it is the registry key, not part of the
// document.  The three flags default to true when absent.
func OperatorFromNode(name string, y *ir.Node) (*Operator, error) {
	if y.Type != ir.ObjectType {
		return nil, wrongType(name, ir.ObjectType, y.Type)
	}
	op := &Operator{
		Name:                name,
		IsRootOperator:      true,
		IsUsedForTraining:   true,
		IncludeAllOverloads: true,
	}
	for _, flag := range []struct {
		field string
		dst   *bool
	}{
		{fieldIsRootOperator, &op.IsRootOperator},
		{fieldIsUsedForTraining, &op.IsUsedForTraining},
		{fieldIncludeAllOverloads, &op.IncludeAllOverloads},
	} {
		v := ir.Get(y, flag.field)
		if v == nil {
			continue
		}
		if v.Type != ir.BoolType {
			return nil, wrongType(flag.field, ir.BoolType, v.Type)
		}
		*flag.dst = v.Bool
	}
	modelsNode := ir.Get(y, fieldModels)
	if modelsNode == nil {
		return op, nil
	}
	if modelsNode.Type != ir.ArrayType {
		return nil, wrongType(fieldModels, ir.ArrayType, modelsNode.Type)
	}
	op.Models = make([]*Model, 0, len(modelsNode.Values))
	for _, elt := range modelsNode.Values {
		m, err := ModelFromNode(elt)
		if err != nil {
			return nil, err
		}
		op.Models = append(op.Models, m)
	}
	return op, nil
}

// LegacyOperator constructs an operator from a bare name, as found in
// legacy declaration sources that listed names only.  All flags default
// to true and no model attribution is available.
func LegacyOperator(name string) *Operator {
	return &Operator{
		Name:                name,
		IsRootOperator:      true,
		IsUsedForTraining:   true,
		IncludeAllOverloads: true,
	}
}

// Node returns the document form of o.  The name is not emitted; the
// caller keys the registry document with it.  The models field is
// omitted, not empty, when Models is nil.
func (o *Operator) Node() *ir.Node {
	kvs := []ir.KeyVal{
		{Key: fieldIsRootOperator, Val: ir.FromBool(o.IsRootOperator)},
		{Key: fieldIsUsedForTraining, Val: ir.FromBool(o.IsUsedForTraining)},
		{Key: fieldIncludeAllOverloads, Val: ir.FromBool(o.IncludeAllOverloads)},
	}
	if o.Models != nil {
		models := make([]*ir.Node, len(o.Models))
		for i, m := range o.Models {
			models[i] = m.Node()
		}
		kvs = append(kvs, ir.KeyVal{Key: fieldModels, Val: ir.FromSlice(models)})
	}
	return ir.FromKeyVals(kvs)
}

func (o *Operator) Clone() *Operator {
	res := *o
	if o.Models != nil {
		res.Models = make([]*Model, len(o.Models))
		copy(res.Models, o.Models)
	}
	return &res
}

// StripOverload returns the base name of an operator name: the part
// before the first '.' character, or the whole name when there is no
// overload suffix.
func StripOverload(name string) string {
	base, _, _ := strings.Cut(name, ".")
	return base
}
