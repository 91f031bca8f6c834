package main

import (
	"fmt"

	"github.com/advaoptical/alpakka/bind"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	for _, arg := range args {
		doc, err := readDoc(arg)
		if err != nil {
			return err
		}
		insts, err := bind.DecodeAll(doc, reg.Roots())
		if err != nil {
			return fmt.Errorf("error binding %s: %w", arg, err)
		}
		if err := cfg.writeInstances(cc.Out, insts); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
