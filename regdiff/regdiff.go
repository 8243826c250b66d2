// Package regdiff computes line-oriented diffs between encoded
// registry documents.
package regdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs two encoded documents line by line.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// HasChanges reports whether diffs contains any insertion or deletion.
func HasChanges(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Render writes diffs to w with "-"/"+" line prefixes, coloring
// deletions red and insertions green when colorize is set.
func Render(w io.Writer, diffs []diffpatch.Diff, colorize bool) error {
	paint := func(f func(string, ...any) string, s string) string {
		if !colorize {
			return s
		}
		return f("%s", s)
	}
	for i := range diffs {
		diff := &diffs[i]
		var prefix string
		var painter func(string, ...any) string
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix, painter = "-", color.RedString
		case diffpatch.DiffInsert:
			prefix, painter = "+", color.GreenString
		case diffpatch.DiffEqual:
			prefix, painter = " ", nil
		}
		for _, line := range splitLines(diff.Text) {
			out := prefix + line
			if painter != nil {
				out = paint(painter, out)
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
