package bind

import (
	"github.com/advaoptical/alpakka/debug"
	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

// lookup finds the value for name in store, trying the local key before
// the module-qualified one.
func lookup(store *ir.Node, name schema.QName) (string, *ir.Node, bool) {
	for _, key := range []string{name.Local, name.Qualified()} {
		if i := store.FieldIndex(key); i != -1 {
			if debug.Keys() {
				debug.Logf("lookup %s -> %q\n", name, key)
			}
			return key, store.Values[i], true
		}
	}
	if debug.Keys() {
		debug.Logf("lookup %s: absent in %v\n", name, store.Keys())
	}
	return "", nil, false
}

// lookupRoot is lookup for top level documents, where the qualified key
// is the normal form.
func lookupRoot(doc *ir.Node, name schema.QName) (string, *ir.Node, bool) {
	for _, key := range []string{name.Qualified(), name.Local} {
		if i := doc.FieldIndex(key); i != -1 {
			return key, doc.Values[i], true
		}
	}
	return "", nil, false
}

// store writes v for name: under the qualified key when that key is
// already there, under the local key otherwise. Only one of the two keys
// remains afterwards.
func store(obj *ir.Node, name schema.QName, v *ir.Node) string {
	key := name.Local
	if q := name.Qualified(); q != name.Local && obj.Has(q) {
		key = q
		obj.Delete(name.Local)
	}
	if debug.Keys() {
		debug.Logf("store %s -> %q\n", name, key)
	}
	obj.Set(key, v)
	return key
}

// remove deletes every key naming name and reports whether there was one.
func remove(obj *ir.Node, name schema.QName) bool {
	a := obj.Delete(name.Local)
	b := obj.Delete(name.Qualified())
	return a || b
}

// memberKey is the key a member takes in encoded output: bare when it
// shares the enclosing node's module, qualified otherwise.
func memberKey(name schema.QName, parentModule string) string {
	if name.Module == parentModule {
		return name.Local
	}
	return name.Qualified()
}
