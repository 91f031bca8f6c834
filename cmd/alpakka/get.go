package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a file and a data path", cli.ErrUsage)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}
	rootSeg, rest := splitPath(args[1])
	root, err := findRoot(reg, doc, rootSeg)
	if err != nil {
		return err
	}
	if cfg.outFormat().IsXML() {
		n, err := root.Navigate(rest)
		if err != nil {
			return fmt.Errorf("error getting %s: %w", args[1], err)
		}
		return n.WriteXML(cc.Out, "  ")
	}
	res, err := root.Select(rest)
	if err != nil {
		return fmt.Errorf("error getting %s: %w", args[1], err)
	}
	return cfg.writeValue(cc.Out, res)
}
