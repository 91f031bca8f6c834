package main

import (
	"fmt"

	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"

	"github.com/scott-cotton/cli"
)

func describe(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Describe.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: schema takes no arguments", cli.ErrUsage)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	mods := ir.FromSlice(nil)
	for _, m := range reg.Modules() {
		kvs := []ir.KeyVal{
			{Key: "name", Val: ir.FromString(m.Name)},
			{Key: "namespace", Val: ir.FromString(m.Namespace)},
		}
		if m.Prefix != "" {
			kvs = append(kvs, ir.KeyVal{Key: "prefix", Val: ir.FromString(m.Prefix)})
		}
		if m.Revision != "" {
			kvs = append(kvs, ir.KeyVal{Key: "revision", Val: ir.FromString(m.Revision)})
		}
		mods.Append(ir.FromKeyVals(kvs))
	}
	roots := ir.FromSlice(nil)
	for _, t := range reg.Roots() {
		roots.Append(schema.Describe(t))
	}
	return cfg.writeValue(cc.Out, ir.FromKeyVals([]ir.KeyVal{
		{Key: "modules", Val: mods},
		{Key: "roots", Val: roots},
	}))
}
