package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/advaoptical/alpakka/bind"
	"github.com/advaoptical/alpakka/eval"
	"github.com/advaoptical/alpakka/ir"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: query requires a file and a list path", cli.ErrUsage)
	}
	where := cfg.Where
	if where == "" {
		where = "true"
	}
	pred, err := eval.Compile(where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
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
	parentPath, listName := "", rest
	if i := strings.LastIndex(rest, "/"); i != -1 {
		parentPath, listName = rest[:i], rest[i+1:]
	}
	parent, err := root.Navigate(parentPath)
	if err != nil {
		return fmt.Errorf("error getting %s: %w", args[1], err)
	}
	a, _, err := parent.Lookup(listName)
	if err != nil {
		return err
	}
	l, ok := a.(*bind.List)
	if !ok {
		return fmt.Errorf("%w: %s is a %s, not a list", cli.ErrUsage, listName, a.Kind())
	}
	entries, err := l.Filter(func(e *bind.Instance) (bool, error) {
		body, err := e.Select("")
		if err != nil {
			return false, err
		}
		return pred.Eval(body)
	})
	if err != nil {
		return err
	}
	return cfg.writeEntries(cc.Out, entries)
}

// writeEntries writes the selected list entries as one sequence, or in XML
// as the children of a single <data> element.
func (cfg *MainConfig) writeEntries(w io.Writer, entries []*bind.Instance) error {
	if cfg.outFormat().IsXML() {
		return cfg.writeInstances(w, entries)
	}
	res := ir.FromSlice(nil)
	for _, e := range entries {
		body, err := e.Select("")
		if err != nil {
			return err
		}
		res.Append(body)
	}
	return cfg.writeValue(w, res)
}
