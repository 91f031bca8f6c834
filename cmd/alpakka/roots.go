package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/advaoptical/alpakka/bind"
	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

// findRoot resolves the first segment of a data path, "module:name" or
// "module:list=k1,k2", to a root instance of doc.
func findRoot(reg *schema.Registry, doc *ir.Node, seg string) (*bind.Instance, error) {
	name, keys, keyed := strings.Cut(seg, "=")
	typ, ok := reg.Root(name)
	if !ok {
		return nil, fmt.Errorf("%w: no schema root %q", bind.ErrUnknownMember, name)
	}
	insts, err := bind.DecodeAll(doc, []*schema.Type{typ})
	if err != nil {
		return nil, err
	}
	if len(insts) == 0 {
		return nil, fmt.Errorf("%w for root %s", bind.ErrAbsent, typ.Name)
	}
	if !typ.IsList() {
		return insts[0], nil
	}
	if !keyed {
		if len(insts) != 1 {
			return nil, &bind.MissingKeyError{FieldPath: "/" + typ.Name.Qualified(), Entries: len(insts)}
		}
		return insts[0], nil
	}
	var want []string
	for _, k := range strings.Split(keys, ",") {
		kv, err := url.PathUnescape(k)
		if err != nil {
			return nil, err
		}
		want = append(want, kv)
	}
	for _, n := range insts {
		if keyText(n.KeyValues()) == strings.Join(want, "\x00") {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w for root %s", bind.ErrAbsent, seg)
}

func keyText(vals []*ir.Node) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		if v != nil {
			parts[i] = v.Text()
		}
	}
	return strings.Join(parts, "\x00")
}

// splitPath separates the root segment of a data path from the rest.
func splitPath(path string) (string, string) {
	root, rest, _ := strings.Cut(strings.Trim(path, "/"), "/")
	return root, rest
}

// onlyRoot returns the root of doc named name, or the single root found
// in doc when name is empty.
func onlyRoot(reg *schema.Registry, doc *ir.Node, name string) (*bind.Instance, error) {
	if name != "" {
		return findRoot(reg, doc, name)
	}
	insts, err := bind.DecodeAll(doc, reg.Roots())
	if err != nil {
		return nil, err
	}
	if len(insts) != 1 {
		return nil, fmt.Errorf("document holds %d roots, pick one with -root", len(insts))
	}
	return insts[0], nil
}
