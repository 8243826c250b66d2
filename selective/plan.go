package selective

import "github.com/opsel/opsel/ir"

const (
	fieldIncludeAllOperators = "include_all_operators"
	fieldOperators           = "operators"
)

// Plan is a merged selection plan: the registry of declared operators
// plus a switch that selects every operator regardless of declarations
// (used by unselective debug builds).
type Plan struct {
	IncludeAllOperators bool
	Operators           Registry
}

func NewPlan() *Plan {
	return &Plan{Operators: Registry{}}
}

// PlanFromNode decodes a plan document of the form
// {include_all_operators, operators}.  Both fields are optional: the
// switch defaults to false and the registry to empty.
func PlanFromNode(y *ir.Node) (*Plan, error) {
	if y.Type != ir.ObjectType {
		return nil, wrongType("plan", ir.ObjectType, y.Type)
	}
	p := NewPlan()
	if v := ir.Get(y, fieldIncludeAllOperators); v != nil {
		if v.Type != ir.BoolType {
			return nil, wrongType(fieldIncludeAllOperators, ir.BoolType, v.Type)
		}
		p.IncludeAllOperators = v.Bool
	}
	if v := ir.Get(y, fieldOperators); v != nil {
		reg, err := RegistryFromNode(v)
		if err != nil {
			return nil, err
		}
		p.Operators = reg
	}
	return p, nil
}

func (p *Plan) Node() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: fieldIncludeAllOperators, Val: ir.FromBool(p.IncludeAllOperators)},
		{Key: fieldOperators, Val: p.Operators.Node()},
	})
}

// MergePlans combines two plans: the switch ORs and the registries
// merge.
func MergePlans(lhs, rhs *Plan) (*Plan, error) {
	ops, err := Merge(lhs.Operators, rhs.Operators)
	if err != nil {
		return nil, err
	}
	return &Plan{
		IncludeAllOperators: lhs.IncludeAllOperators || rhs.IncludeAllOperators,
		Operators:           ops,
	}, nil
}

// lookup resolves name against the registry, falling back from the
// exact name to the base-name entry when that entry covers all
// overloads.
func (p *Plan) lookup(name string) *Operator {
	if op, ok := p.Operators[name]; ok {
		return op
	}
	base := StripOverload(name)
	if base == name {
		return nil
	}
	if op, ok := p.Operators[base]; ok && op.IncludeAllOverloads {
		return op
	}
	return nil
}

// Selected reports whether the named operator is needed by the build.
func (p *Plan) Selected(name string) bool {
	if p.IncludeAllOperators {
		return true
	}
	return p.lookup(name) != nil
}

// RootSelected reports whether the named operator is needed as a root
// entry point.
func (p *Plan) RootSelected(name string) bool {
	if p.IncludeAllOperators {
		return true
	}
	op := p.lookup(name)
	return op != nil && op.IsRootOperator
}

// TrainingSelected reports whether training code paths are needed for
// the named operator.
func (p *Plan) TrainingSelected(name string) bool {
	if p.IncludeAllOperators {
		return true
	}
	op := p.lookup(name)
	return op != nil && op.IsUsedForTraining
}
