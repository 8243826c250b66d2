package ir

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromAnyToAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"bool", true},
		{"string", "aten::add"},
		{"float", 1.5},
		{"slice", []any{"a", false}},
		{"map", map[string]any{
			"is_root_operator": true,
			"models":           []any{map[string]any{"name": "m"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := FromAny(tt.in)
			if err != nil {
				t.Fatalf("FromAny: %v", err)
			}
			if d := cmp.Diff(tt.in, ToAny(y)); d != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestFromAnyInts(t *testing.T) {
	for _, in := range []any{int(7), int64(7), uint64(7), json.Number("7")} {
		y, err := FromAny(in)
		if err != nil {
			t.Fatalf("FromAny(%T): %v", in, err)
		}
		if y.Type != NumberType || y.Int64 == nil || *y.Int64 != 7 {
			t.Errorf("FromAny(%T) = %+v, want int node 7", in, y)
		}
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("expected error for struct input")
	}
	if _, err := FromAny(map[any]any{1: "x"}); err == nil {
		t.Errorf("expected error for non-string key")
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	y := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
	})
	if y.Fields[0].String != "a" || y.Fields[1].String != "b" {
		t.Errorf("fields not sorted: %q, %q", y.Fields[0].String, y.Fields[1].String)
	}
}
