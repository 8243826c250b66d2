package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FromAny converts a decoded YAML/JSON value (as produced by
// yaml.Unmarshal or json.Decode into an any) to a node.
func FromAny(v any) (*Node, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return val.Clone(), nil
	case bool:
		return FromBool(val), nil
	case string:
		return FromString(val), nil
	case int:
		return FromInt(int64(val)), nil
	case int64:
		return FromInt(val), nil
	case uint64:
		if val > uint64(1<<63-1) {
			return &Node{Type: NumberType, Number: strconv.FormatUint(val, 10)}, nil
		}
		return FromInt(int64(val)), nil
	case float64:
		return FromFloat(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return FromInt(i), nil
		}
		if f, err := val.Float64(); err == nil {
			return FromFloat(f), nil
		}
		return &Node{Type: NumberType, Number: val.String()}, nil
	case []any:
		values := make([]*Node, len(val))
		for i, elt := range val {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			values[i] = y
		}
		return FromSlice(values), nil
	case map[string]any:
		yMap := make(map[string]*Node, len(val))
		for key, elt := range val {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			yMap[key] = y
		}
		return FromMap(yMap), nil
	case map[any]any:
		yMap := make(map[string]*Node, len(val))
		for key, elt := range val {
			keyStr, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v (%T)", ErrUnsupported, key, key)
			}
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			yMap[keyStr] = y
		}
		return FromMap(yMap), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// ToAny converts a node to the plain Go value form consumed by
// yaml.Marshal and json.Marshal.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// MarshalJSON renders a node as compact JSON.
func MarshalJSON(node *Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}
