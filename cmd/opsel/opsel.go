package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/opsel/opsel/ir"
	"github.com/opsel/opsel/parse"
	"github.com/opsel/opsel/selective"

	"github.com/scott-cotton/cli"
)

func opselMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Y && cfg.J {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func parseInput(cfg *MainConfig, cc *cli.Context, file string) (*ir.Node, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	y, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return y, nil
}

func loadRegistry(cfg *MainConfig, cc *cli.Context, file string) (selective.Registry, error) {
	y, err := parseInput(cfg, cc, file)
	if err != nil {
		return nil, err
	}
	reg, err := selective.RegistryFromNode(y)
	if err != nil {
		return nil, fmt.Errorf("error decoding registry %s: %w", file, err)
	}
	return reg, nil
}

func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
