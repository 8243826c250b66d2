package selective

import (
	"errors"
	"testing"

	"github.com/opsel/opsel/ir"

	"github.com/google/go-cmp/cmp"
)

func opNode(kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(kvs)
}

func TestOperatorFromNodeDefaults(t *testing.T) {
	op, err := OperatorFromNode("aten::add", opNode())
	if err != nil {
		t.Fatalf("OperatorFromNode: %v", err)
	}
	want := &Operator{
		Name:                "aten::add",
		IsRootOperator:      true,
		IsUsedForTraining:   true,
		IncludeAllOverloads: true,
	}
	if d := cmp.Diff(want, op); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
	if op.Models != nil {
		t.Errorf("absent models decoded as %v, want nil", op.Models)
	}
}

func TestOperatorFromNodeFlags(t *testing.T) {
	op, err := OperatorFromNode("aten::add", opNode(
		ir.KeyVal{Key: "is_root_operator", Val: ir.FromBool(false)},
		ir.KeyVal{Key: "is_used_for_training", Val: ir.FromBool(false)},
	))
	if err != nil {
		t.Fatalf("OperatorFromNode: %v", err)
	}
	if op.IsRootOperator || op.IsUsedForTraining || !op.IncludeAllOverloads {
		t.Errorf("got %+v, want root=false training=false overloads=true", op)
	}
}

func TestOperatorFromNodeModels(t *testing.T) {
	op, err := OperatorFromNode("aten::add", opNode(
		ir.KeyVal{Key: "models", Val: ir.FromSlice([]*ir.Node{
			NewModelVersion("m", "v1").Node(),
			NewModel("n").Node(),
		})},
	))
	if err != nil {
		t.Fatalf("OperatorFromNode: %v", err)
	}
	want := []*Model{NewModelVersion("m", "v1"), NewModel("n")}
	if d := cmp.Diff(want, op.Models); d != "" {
		t.Errorf("models mismatch (-want +got):\n%s", d)
	}
}

func TestOperatorFromNodeEmptyModels(t *testing.T) {
	// A present empty list is distinct from an absent one.
	op, err := OperatorFromNode("aten::add", opNode(
		ir.KeyVal{Key: "models", Val: ir.FromSlice(nil)},
	))
	if err != nil {
		t.Fatalf("OperatorFromNode: %v", err)
	}
	if op.Models == nil || len(op.Models) != 0 {
		t.Errorf("models = %v, want present empty list", op.Models)
	}
	if ir.Get(op.Node(), "models") == nil {
		t.Errorf("present empty models dropped on round trip")
	}
}

func TestOperatorFromNodeErrors(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
	}{
		{"not an object", ir.FromBool(true)},
		{"flag not a bool", opNode(
			ir.KeyVal{Key: "is_root_operator", Val: ir.FromString("yes")},
		)},
		{"models not a list", opNode(
			ir.KeyVal{Key: "models", Val: ir.FromString("m")},
		)},
		{"bad model entry", opNode(
			ir.KeyVal{Key: "models", Val: ir.FromSlice([]*ir.Node{ir.FromString("m")})},
		)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OperatorFromNode("aten::add", tt.node)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("got %v, want ErrDecode", err)
			}
		})
	}
}

func TestOperatorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		op   *Operator
	}{
		{"legacy", LegacyOperator("aten::add")},
		{"flags", &Operator{Name: "aten::add.out", IsUsedForTraining: true}},
		{"models", &Operator{
			Name:   "aten::mul",
			Models: []*Model{NewModelVersion("m", "v1")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back, err := OperatorFromNode(tt.op.Name, tt.op.Node())
			if err != nil {
				t.Fatalf("OperatorFromNode: %v", err)
			}
			if d := cmp.Diff(tt.op, back); d != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestOperatorNodeOmitsNameAndModels(t *testing.T) {
	y := LegacyOperator("aten::add").Node()
	if ir.Get(y, "name") != nil {
		t.Errorf("name emitted in operator document")
	}
	if ir.Get(y, "models") != nil {
		t.Errorf("absent models emitted in operator document")
	}
	for _, field := range []string{
		"is_root_operator", "is_used_for_training", "include_all_overloads",
	} {
		v := ir.Get(y, field)
		if v == nil || v.Type != ir.BoolType || !v.Bool {
			t.Errorf("%s = %+v, want true", field, v)
		}
	}
}

func TestLegacyOperator(t *testing.T) {
	op := LegacyOperator("aten::add")
	if !op.IsRootOperator || !op.IsUsedForTraining || !op.IncludeAllOverloads {
		t.Errorf("legacy flags not all true: %+v", op)
	}
	if op.Models != nil {
		t.Errorf("legacy models = %v, want nil", op.Models)
	}
}

func TestStripOverload(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"aten::add.out", "aten::add"},
		{"aten::add", "aten::add"},
		{"aten::add.out.extra", "aten::add"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripOverload(tt.in); got != tt.want {
			t.Errorf("StripOverload(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
