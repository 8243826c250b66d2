package selective

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func filterReg() Registry {
	return Registry{
		"aten::add": {
			Name:                "aten::add",
			IsRootOperator:      true,
			IncludeAllOverloads: true,
			Models:              []*Model{NewModelVersion("mobilenet", "v1")},
		},
		"aten::add.out": {
			Name:              "aten::add.out",
			IsUsedForTraining: true,
		},
		"aten::mul": {
			Name:           "aten::mul",
			IsRootOperator: true,
		},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		predicate string
		want      []string
	}{
		{"root", "is_root_operator", []string{"aten::add", "aten::mul"}},
		{"training only", "is_used_for_training && !is_root_operator", []string{"aten::add.out"}},
		{"by model", `"mobilenet@v1" in models`, []string{"aten::add"}},
		{"by name", `name == "aten::mul"`, []string{"aten::mul"}},
		{"none", "false", nil},
		{"all", "true", []string{"aten::add", "aten::add.out", "aten::mul"}},
	}
	reg := filterReg()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(reg, tt.predicate)
			if err != nil {
				t.Fatalf("Filter: %v", err)
			}
			var names []string
			if len(got) > 0 {
				names = got.Names()
			}
			if d := cmp.Diff(tt.want, names); d != "" {
				t.Errorf("mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestFilterBadPredicate(t *testing.T) {
	if _, err := Filter(filterReg(), "is_root_operator &&"); err == nil {
		t.Errorf("expected compile error")
	}
}
