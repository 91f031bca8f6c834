package main

import (
	"fmt"

	"github.com/advaoptical/alpakka/bind"
	"github.com/advaoptical/alpakka/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
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
	drift := 0
	for _, arg := range args {
		doc, err := readDoc(arg)
		if err != nil {
			return err
		}
		body, err := bind.Unwrap(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		input := body.Clone()
		insts, err := bind.DecodeAll(body, reg.Roots())
		if err != nil {
			return fmt.Errorf("error binding %s: %w", arg, err)
		}
		first, err := bind.EncodeAll(insts)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		back, err := bind.DecodeAll(first.Clone(), reg.Roots())
		if err != nil {
			return fmt.Errorf("error binding the encoding of %s: %w", arg, err)
		}
		second, err := bind.EncodeAll(back)
		if err != nil {
			return err
		}
		for _, c := range libdiff.Diff(input, first) {
			fmt.Fprintf(cc.Out, "%s: %s\n", arg, c)
			drift++
		}
		for _, c := range libdiff.Diff(first, second) {
			fmt.Fprintf(cc.Out, "%s: unstable: %s\n", arg, c)
			drift++
		}
	}
	if drift != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
