package selective

import "github.com/opsel/opsel/ir"

// Model identifies a consumer of an operator: a named entity, with an
// optional version tag.  A nil Version is distinct from an empty one
// and round-trips as an omitted field.
//
// Models are never mutated after construction; merges produce new
// values.
type Model struct {
	Name    string
	Version *string
}

func NewModel(name string) *Model {
	return &Model{Name: name}
}

func NewModelVersion(name, version string) *Model {
	return &Model{Name: name, Version: &version}
}

// ModelFromNode decodes a model document of the form {name} or
// {name, version}.
func ModelFromNode(y *ir.Node) (*Model, error) {
	if y.Type != ir.ObjectType {
		return nil, wrongType("model", ir.ObjectType, y.Type)
	}
	nameNode := ir.Get(y, "name")
	if nameNode == nil {
		return nil, missingField("name", ir.StringType)
	}
	if nameNode.Type != ir.StringType {
		return nil, wrongType("name", ir.StringType, nameNode.Type)
	}
	m := &Model{Name: nameNode.String}
	if verNode := ir.Get(y, "version"); verNode != nil {
		if verNode.Type != ir.StringType {
			return nil, wrongType("version", ir.StringType, verNode.Type)
		}
		ver := verNode.String
		m.Version = &ver
	}
	return m, nil
}

// Node returns the document form of m.
func (m *Model) Node() *ir.Node {
	kvs := []ir.KeyVal{
		{Key: "name", Val: ir.FromString(m.Name)},
	}
	if m.Version != nil {
		kvs = append(kvs, ir.KeyVal{Key: "version", Val: ir.FromString(*m.Version)})
	}
	return ir.FromKeyVals(kvs)
}

// String returns the canonical form of m: the name alone, or
// name@version.  It is the merge dedup key and is never persisted.
func (m *Model) String() string {
	if m.Version == nil {
		return m.Name
	}
	return m.Name + "@" + *m.Version
}
