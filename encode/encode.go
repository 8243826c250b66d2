// Package encode renders ir nodes as YAML or JSON text.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opsel/opsel/format"
	"github.com/opsel/opsel/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	indent  int
	compact bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w.  The default output is YAML with a 2-space
// indent; see the EncodeOptions for JSON output, compact JSON, and
// colored YAML.  A trailing newline is always written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsJSON() {
		return encodeJSON(node, w, es)
	}
	return encodeYAML(node, w, es, 0, "")
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.compact {
		d, err = json.Marshal(ir.ToAny(node))
	} else {
		d, err = json.MarshalIndent(ir.ToAny(node), "", strings.Repeat(" ", es.indent))
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// encodeYAML writes node at the given depth.  firstPrefix replaces the
// usual indentation in front of the node's first line; it carries any
// pending "- " sequence from an enclosing array.
func encodeYAML(node *ir.Node, w io.Writer, es *EncState, depth int, firstPrefix string) error {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return writeString(w, firstPrefix+es.color(node.Type, ValueColor, "{}")+"\n")
		}
		for i := range node.Fields {
			pfx := firstPrefix
			if i > 0 || firstPrefix == "" {
				pfx = es.pad(depth)
			}
			key := es.color(node.Values[i].Type, FieldColor, yamlScalar(node.Fields[i]))
			val := node.Values[i]
			if isBlock(val) {
				line := pfx + key + es.color(val.Type, SepColor, ":") + "\n"
				if err := writeString(w, line); err != nil {
					return err
				}
				if err := encodeYAML(val, w, es, depth+1, ""); err != nil {
					return err
				}
				continue
			}
			line := pfx + key + es.color(val.Type, SepColor, ":") + " " +
				es.color(val.Type, ValueColor, flatScalar(val)) + "\n"
			if err := writeString(w, line); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return writeString(w, firstPrefix+es.color(node.Type, ValueColor, "[]")+"\n")
		}
		for i, elt := range node.Values {
			pfx := firstPrefix
			if i > 0 || firstPrefix == "" {
				pfx = es.pad(depth)
			}
			pfx += es.color(elt.Type, SepColor, "- ")
			if err := encodeYAML(elt, w, es, depth+1, pfx); err != nil {
				return err
			}
		}
		return nil
	default:
		if firstPrefix == "" {
			firstPrefix = es.pad(depth)
		}
		return writeString(w, firstPrefix+es.color(node.Type, ValueColor, yamlScalar(node))+"\n")
	}
}

// isBlock reports whether a node renders on its own lines rather than
// inline after its key.
func isBlock(y *ir.Node) bool {
	switch y.Type {
	case ir.ObjectType:
		return len(y.Fields) > 0
	case ir.ArrayType:
		return len(y.Values) > 0
	}
	return false
}

// flatScalar renders scalars and empty containers.
func flatScalar(y *ir.Node) string {
	switch y.Type {
	case ir.ObjectType:
		return "{}"
	case ir.ArrayType:
		return "[]"
	}
	return yamlScalar(y)
}

func yamlScalar(y *ir.Node) string {
	switch y.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(y.Bool)
	case ir.NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return y.Number
	case ir.StringType:
		return yamlString(y.String)
	}
	return fmt.Sprintf("<err: cannot render %s as scalar>", y.Type)
}

// yamlString renders s as a single-line YAML scalar, quoting only when
// the plain form would reparse as something else.
func yamlString(s string) string {
	d, err := yaml.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	out := strings.TrimSuffix(string(d), "\n")
	if strings.Contains(out, "\n") {
		// multiline block form does not fit inline
		return strconv.Quote(s)
	}
	return out
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(" ", depth*es.indent)
}

func (es *EncState) color(t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
