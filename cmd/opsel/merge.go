package main

import (
	"fmt"

	"github.com/opsel/opsel/debug"
	"github.com/opsel/opsel/encode"
	"github.com/opsel/opsel/ir"
	"github.com/opsel/opsel/selective"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Plan && cfg.Legacy {
		return fmt.Errorf("%w: -plan and -legacy are mutually exclusive", cli.ErrUsage)
	}
	if cfg.Plan {
		return mergePlans(cfg, cc, orStdin(args))
	}
	res := selective.Registry{}
	for _, file := range orStdin(args) {
		reg, err := loadMergeInput(cfg, cc, file)
		if err != nil {
			return err
		}
		if debug.Merge() {
			debug.Logf("merge %s: %d operators\n", file, len(reg))
		}
		res, err = selective.Merge(res, reg)
		if err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
	}
	return encode.Encode(res.Node(), cc.Out, cfg.encOpts(cc.Out)...)
}

// loadMergeInput decodes one merge source.  With -legacy, a source is
// a plain list of operator names, each carrying default declarations.
func loadMergeInput(cfg *MergeConfig, cc *cli.Context, file string) (selective.Registry, error) {
	if !cfg.Legacy {
		return loadRegistry(cfg.MainConfig, cc, file)
	}
	y, err := parseInput(cfg.MainConfig, cc, file)
	if err != nil {
		return nil, err
	}
	if y.Type != ir.ArrayType {
		return nil, fmt.Errorf("error decoding %s: legacy input is a list of names, got %s", file, y.Type)
	}
	res := make(selective.Registry, len(y.Values))
	for _, elt := range y.Values {
		if elt.Type != ir.StringType {
			return nil, fmt.Errorf("error decoding %s: legacy name is a string, got %s", file, elt.Type)
		}
		res[elt.String] = selective.LegacyOperator(elt.String)
	}
	return res, nil
}

func mergePlans(cfg *MergeConfig, cc *cli.Context, files []string) error {
	res := selective.NewPlan()
	for _, file := range files {
		y, err := parseInput(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		p, err := selective.PlanFromNode(y)
		if err != nil {
			return fmt.Errorf("error decoding plan %s: %w", file, err)
		}
		res, err = selective.MergePlans(res, p)
		if err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
	}
	return encode.Encode(res.Node(), cc.Out, cfg.encOpts(cc.Out)...)
}
