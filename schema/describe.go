package schema

import "github.com/advaoptical/alpakka/ir"

// Describe renders t as a descriptor tree in the shape Load accepts.
func Describe(t *Type) *ir.Node {
	return describe(t, "")
}

func describe(t *Type, parentModule string) *ir.Node {
	res := ir.Object()
	res.Set("name", ir.FromString(t.Name.Local))
	if t.Name.Module != parentModule {
		res.Set("module", ir.FromString(t.Name.Module))
	}
	if t.Kind == ListKind {
		res.Set("kind", ir.FromString(t.Kind.String()))
		keys := ir.FromSlice(nil)
		for _, k := range t.Keys {
			keys.Append(ir.FromString(k))
		}
		res.Set("keys", keys)
	}
	leaves := func(field string, ls []*Leaf) {
		if len(ls) == 0 {
			return
		}
		arr := ir.FromSlice(nil)
		for _, l := range ls {
			if l.Name.Module == t.Name.Module {
				arr.Append(ir.FromString(l.Name.Local))
				continue
			}
			arr.Append(ir.FromKeyVals([]ir.KeyVal{
				{Key: "name", Val: ir.FromString(l.Name.Local)},
				{Key: "module", Val: ir.FromString(l.Name.Module)},
			}))
		}
		res.Set(field, arr)
	}
	types := func(field string, ts []*Type) {
		if len(ts) == 0 {
			return
		}
		arr := ir.FromSlice(nil)
		for _, c := range ts {
			arr.Append(describe(c, t.Name.Module))
		}
		res.Set(field, arr)
	}
	leaves("leaves", t.Leaves)
	leaves("leaf-lists", t.LeafLists)
	types("containers", t.Containers)
	types("lists", t.Lists)
	if len(t.Choices) != 0 {
		arr := ir.FromSlice(nil)
		for _, ch := range t.Choices {
			chn := ir.Object()
			chn.Set("name", ir.FromString(ch.Name.Local))
			if ch.Name.Module != t.Name.Module {
				chn.Set("module", ir.FromString(ch.Name.Module))
			}
			cases := ir.FromSlice(nil)
			for _, cs := range ch.Cases {
				cases.Append(describe(cs, ch.Name.Module))
			}
			chn.Set("cases", cases)
			arr.Append(chn)
		}
		res.Set("choices", arr)
	}
	return res
}
