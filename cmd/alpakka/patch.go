package main

import (
	"fmt"
	"os"

	"github.com/advaoptical/alpakka/bind"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a file and a patch file", cli.ErrUsage)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}
	p, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	root, err := onlyRoot(reg, doc, cfg.Root)
	if err != nil {
		return err
	}
	target, err := root.Navigate(cfg.Path)
	if err != nil {
		return fmt.Errorf("error getting %s: %w", cfg.Path, err)
	}
	if err := target.ApplyPatch(p); err != nil {
		return err
	}
	insts, err := bind.DecodeAll(doc, reg.Roots())
	if err != nil {
		return fmt.Errorf("patched document no longer binds: %w", err)
	}
	return cfg.writeInstances(cc.Out, insts)
}
