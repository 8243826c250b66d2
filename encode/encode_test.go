package encode

import (
	"strings"
	"testing"

	"github.com/opsel/opsel/format"
	"github.com/opsel/opsel/ir"
	"github.com/opsel/opsel/parse"
)

func TestEncodeYAML(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"string", ir.FromString("aten::add"), "aten::add\n"},
		{"bool", ir.FromBool(true), "true\n"},
		{"null", ir.Null(), "null\n"},
		{"empty object", ir.FromKeyVals(nil), "{}\n"},
		{"empty array", ir.FromSlice(nil), "[]\n"},
		{
			"object",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "is_root_operator", Val: ir.FromBool(true)},
				{Key: "models", Val: ir.FromSlice([]*ir.Node{
					ir.FromKeyVals([]ir.KeyVal{
						{Key: "name", Val: ir.FromString("m")},
						{Key: "version", Val: ir.FromString("v1")},
					}),
				})},
			}),
			"is_root_operator: true\n" +
				"models:\n" +
				"  - name: m\n" +
				"    version: v1\n",
		},
		{
			"nested empty",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "models", Val: ir.FromSlice(nil)},
			}),
			"models: []\n",
		},
		{
			"quoted string",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "v", Val: ir.FromString("true")},
			}),
			"v: \"true\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := Encode(tt.node, &sb); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if sb.String() != tt.want {
				t.Errorf("got %q, want %q", sb.String(), tt.want)
			}
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromBool(true)})},
	})
	var sb strings.Builder
	err := Encode(node, &sb,
		EncodeFormat(format.JSONFormat),
		EncodeCompact(true))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := sb.String(); got != `{"a":[1,true]}`+"\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "aten::add.out", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "include_all_overloads", Val: ir.FromBool(false)},
			{Key: "is_root_operator", Val: ir.FromBool(true)},
			{Key: "is_used_for_training", Val: ir.FromBool(false)},
			{Key: "models", Val: ir.FromSlice([]*ir.Node{
				ir.FromKeyVals([]ir.KeyVal{{Key: "name", Val: ir.FromString("m")}}),
			})},
		})},
	})
	for _, f := range []format.Format{format.YAMLFormat, format.JSONFormat} {
		var sb strings.Builder
		if err := Encode(node, &sb, EncodeFormat(f)); err != nil {
			t.Fatalf("Encode %s: %v", f, err)
		}
		back, err := parse.Parse([]byte(sb.String()), parse.ParseFormat(f))
		if err != nil {
			t.Fatalf("Parse %s: %v", f, err)
		}
		if !ir.Equal(node, back) {
			t.Errorf("round trip through %s changed the document:\n%s", f, sb.String())
		}
	}
}
