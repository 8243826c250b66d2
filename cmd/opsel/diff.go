package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opsel/opsel/encode"
	"github.com/opsel/opsel/regdiff"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := canonicalDoc(cfg, cc, args[0])
	if err != nil {
		return err
	}
	to, err := canonicalDoc(cfg, cc, args[1])
	if err != nil {
		return err
	}
	diffs := regdiff.Lines(from, to)
	if !regdiff.HasChanges(diffs) {
		return nil
	}
	if !cfg.Quiet {
		if err := regdiff.Render(cc.Out, diffs, colorOut(cfg.MainConfig, cc.Out)); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

// canonicalDoc loads a registry file and re-encodes it as plain YAML
// so the diff compares content, not formatting.
func canonicalDoc(cfg *DiffConfig, cc *cli.Context, file string) (string, error) {
	reg, err := loadRegistry(cfg.MainConfig, cc, file)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := encode.Encode(reg.Node(), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func colorOut(cfg *MainConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
