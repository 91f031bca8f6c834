package libdiff

import (
	"fmt"
	"strings"

	"github.com/advaoptical/alpakka/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is one difference between two value trees. From is nil for
// inserts and To is nil for deletes.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, text(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, text(c.From))
	}
	if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
		return fmt.Sprintf("~ %s: %s", c.Path, DiffString(c.From.String, c.To.String))
	}
	return fmt.Sprintf("~ %s: %s -> %s", c.Path, text(c.From), text(c.To))
}

func text(y *ir.Node) string {
	d, err := ir.ToJSON(y)
	if err != nil {
		return fmt.Sprintf("<%s>", y.Type)
	}
	return string(d)
}

// Diff lists the changes that turn from into to. Objects are compared by
// key regardless of order, arrays item by item.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff("$", from, to, &res)
	return res
}

func diff(path string, from, to *ir.Node, res *[]Change) {
	if from.Type != to.Type {
		*res = append(*res, Change{Path: path, Op: Replace, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		for i, f := range from.Fields {
			sub := fieldPath(path, f.String)
			if v := ir.Get(to, f.String); v != nil {
				diff(sub, from.Values[i], v, res)
				continue
			}
			*res = append(*res, Change{Path: sub, Op: Delete, From: from.Values[i]})
		}
		for i, f := range to.Fields {
			if !from.Has(f.String) {
				*res = append(*res, Change{Path: fieldPath(path, f.String), Op: Insert, To: to.Values[i]})
			}
		}
	case ir.ArrayType:
		n := min(len(from.Values), len(to.Values))
		for i := range n {
			diff(fmt.Sprintf("%s[%d]", path, i), from.Values[i], to.Values[i], res)
		}
		for i := n; i < len(from.Values); i++ {
			*res = append(*res, Change{Path: fmt.Sprintf("%s[%d]", path, i), Op: Delete, From: from.Values[i]})
		}
		for i := n; i < len(to.Values); i++ {
			*res = append(*res, Change{Path: fmt.Sprintf("%s[%d]", path, i), Op: Insert, To: to.Values[i]})
		}
	default:
		if !ir.Equal(from, to) {
			*res = append(*res, Change{Path: path, Op: Replace, From: from, To: to})
		}
	}
}

func fieldPath(path, field string) string {
	if strings.ContainsAny(field, "'.*$[]:") {
		return fmt.Sprintf("%s['%s']", path, field)
	}
	return path + "." + field
}
