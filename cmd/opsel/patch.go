package main

import (
	"fmt"

	"github.com/opsel/opsel/debug"
	"github.com/opsel/opsel/encode"
	"github.com/opsel/opsel/ir"
	"github.com/opsel/opsel/parse"
	"github.com/opsel/opsel/selective"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// patch applies an RFC 6902 JSON patch (when the patch document is a
// list of operations) or an RFC 7386 merge patch (when it is an
// object) to a registry document.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchNode, err := parseInput(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	patchJSON, err := ir.MarshalJSON(patchNode)
	if err != nil {
		return err
	}
	targets := orStdin(args[1:])
	for _, file := range targets {
		reg, err := loadRegistry(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		doc, err := ir.MarshalJSON(reg.Node())
		if err != nil {
			return err
		}
		var patched []byte
		switch patchNode.Type {
		case ir.ArrayType:
			ops, err := jsonpatch.DecodePatch(patchJSON)
			if err != nil {
				return fmt.Errorf("error decoding patch %s: %w", args[0], err)
			}
			patched, err = ops.Apply(doc)
			if err != nil {
				return fmt.Errorf("error patching %s: %w", file, err)
			}
		case ir.ObjectType:
			patched, err = jsonpatch.MergePatch(doc, patchJSON)
			if err != nil {
				return fmt.Errorf("error merge-patching %s: %w", file, err)
			}
		default:
			return fmt.Errorf("%w: patch document is %s, want Array or Object",
				cli.ErrUsage, patchNode.Type)
		}
		if debug.Patch() {
			debug.Logf("patch %s: %d -> %d bytes\n", file, len(doc), len(patched))
		}
		y, err := parse.Parse(patched, parse.ParseJSON())
		if err != nil {
			return fmt.Errorf("error decoding patched %s: %w", file, err)
		}
		res, err := selective.RegistryFromNode(y)
		if err != nil {
			return fmt.Errorf("patched %s is not a registry: %w", file, err)
		}
		if err := encode.Encode(res.Node(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
