package main

import (
	"fmt"

	"github.com/opsel/opsel/encode"
	"github.com/opsel/opsel/selective"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a predicate expression", cli.ErrUsage)
	}
	predicate := args[0]
	res := selective.Registry{}
	for _, file := range orStdin(args[1:]) {
		reg, err := loadRegistry(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err = selective.Merge(res, reg)
		if err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
	}
	res, err = selective.Filter(res, predicate)
	if err != nil {
		return err
	}
	return encode.Encode(res.Node(), cc.Out, cfg.encOpts(cc.Out)...)
}
