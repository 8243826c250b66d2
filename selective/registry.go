package selective

import (
	"maps"
	"slices"

	"github.com/opsel/opsel/ir"
)

// Registry maps operator names (exact, including any overload suffix)
// to their declarations.  The merge engine builds and replaces
// registries wholesale; it never mutates one in place.
type Registry map[string]*Operator

// RegistryFromNode decodes a registry document: an object keyed by
// operator name whose values are per-operator documents.
func RegistryFromNode(y *ir.Node) (Registry, error) {
	if y.Type != ir.ObjectType {
		return nil, wrongType("registry", ir.ObjectType, y.Type)
	}
	res := make(Registry, len(y.Fields))
	for i := range y.Fields {
		name := y.Fields[i].String
		op, err := OperatorFromNode(name, y.Values[i])
		if err != nil {
			return nil, err
		}
		res[name] = op
	}
	return res, nil
}

// Node returns the document form of r: an object keyed by operator
// name with names sorted, so encodings are deterministic.
func (r Registry) Node() *ir.Node {
	yMap := make(map[string]*ir.Node, len(r))
	for name, op := range r {
		yMap[name] = op.Node()
	}
	return ir.FromMap(yMap)
}

func (r Registry) Clone() Registry {
	res := make(Registry, len(r))
	for name, op := range r {
		res[name] = op.Clone()
	}
	return res
}

// Names returns the operator names in sorted order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}
