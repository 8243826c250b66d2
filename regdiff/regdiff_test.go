package regdiff

import (
	"strings"
	"testing"
)

func TestLinesNoChanges(t *testing.T) {
	doc := "aten::add:\n  is_root_operator: true\n"
	diffs := Lines(doc, doc)
	if HasChanges(diffs) {
		t.Errorf("identical documents reported as changed: %v", diffs)
	}
}

func TestLinesAndRender(t *testing.T) {
	from := "aten::add:\n  is_root_operator: true\n"
	to := "aten::add:\n  is_root_operator: false\n"
	diffs := Lines(from, to)
	if !HasChanges(diffs) {
		t.Fatalf("changed documents reported as equal")
	}
	var sb strings.Builder
	if err := Render(&sb, diffs, false); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := sb.String()
	for _, want := range []string{
		" aten::add:",
		"-  is_root_operator: true",
		"+  is_root_operator: false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderAdditionOnly(t *testing.T) {
	from := "a: 1\n"
	to := "a: 1\nb: 2\n"
	diffs := Lines(from, to)
	var sb strings.Builder
	if err := Render(&sb, diffs, false); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(sb.String(), "+b: 2") {
		t.Errorf("missing added line:\n%s", sb.String())
	}
}
