package main

import (
	"github.com/opsel/opsel/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		y, err := parseInput(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(y, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
