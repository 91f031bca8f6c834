package bind

import (
	"fmt"

	"github.com/advaoptical/alpakka/debug"
	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

// Key is the key n takes in encoded output: module-qualified for roots
// and for members of a module other than their parent's.
func (n *Instance) Key() string {
	if n.root {
		return n.typ.Name.Qualified()
	}
	return memberKey(n.typ.Name, n.parentModule)
}

// ToJSON encodes n as a one-key object in RFC 7951 form. A list item
// encodes as a one-entry sequence under its list's key.
func (n *Instance) ToJSON() (*ir.Node, error) {
	body, err := n.body(n.typ.Name.Module)
	if err != nil {
		return nil, err
	}
	if n.typ.IsList() {
		body = ir.FromSlice([]*ir.Node{body})
	}
	res := ir.Object()
	res.Set(n.Key(), body)
	if debug.Codec() {
		debug.Logf("encode %s: %v\n", n.path, res)
	}
	return res, nil
}

// MarshalJSON renders ToJSON compactly.
func (n *Instance) MarshalJSON() ([]byte, error) {
	y, err := n.ToJSON()
	if err != nil {
		return nil, err
	}
	return ir.ToJSON(y)
}

// body encodes the members of n as a fresh object. Keys are qualified
// relative to module, the module of the object they land in.
func (n *Instance) body(module string) (*ir.Node, error) {
	res := ir.Object()
	if err := n.encodeMembers(res, module); err != nil {
		return nil, err
	}
	return res, nil
}

func (n *Instance) encodeMembers(res *ir.Node, module string) error {
	t := n.typ
	for _, decl := range t.Leaves {
		l := &Leaf{inst: n, decl: decl}
		v, ok, err := l.Get()
		if err != nil {
			return err
		}
		if ok {
			res.Set(memberKey(decl.Name, module), v.Clone())
		}
	}
	for _, decl := range t.LeafLists {
		l := &LeafList{inst: n, decl: decl}
		if !l.Present() {
			continue
		}
		vs, err := l.Get()
		if err != nil {
			return err
		}
		arr := ir.FromSlice(nil)
		for _, v := range vs {
			arr.Append(v.Clone())
		}
		res.Set(memberKey(decl.Name, module), arr)
	}
	for _, typ := range t.Containers {
		c, err := (&Container{inst: n, typ: typ}).Peek()
		if err != nil {
			return err
		}
		if c == nil {
			continue
		}
		body, err := c.body(typ.Name.Module)
		if err != nil {
			return err
		}
		res.Set(memberKey(typ.Name, module), body)
	}
	for _, typ := range t.Lists {
		entries, err := (&List{inst: n, typ: typ}).All()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			continue
		}
		arr := ir.FromSlice(nil)
		for _, e := range entries {
			body, err := e.body(typ.Name.Module)
			if err != nil {
				return err
			}
			arr.Append(body)
		}
		res.Set(memberKey(typ.Name, module), arr)
	}
	for _, decl := range t.Choices {
		cs, err := (&Choice{inst: n, decl: decl}).Active()
		if err != nil {
			return err
		}
		if cs == nil {
			continue
		}
		if err := cs.encodeMembers(res, module); err != nil {
			return err
		}
	}
	return nil
}

type decodeState struct {
	key []any
}

type DecodeOption func(*decodeState)

// WithKey selects a list item root by key.
func WithKey(key ...any) DecodeOption {
	return func(ds *decodeState) { ds.key = key }
}

// Decode binds typ to its data in doc, a document object keyed by root
// names. The returned instance views doc: nothing is copied, and later
// writes through the instance change doc. An absent root is created
// empty under its qualified key.
//
// A list item root is chosen by WithKey, creating the entry when it is
// missing. Without a key the list must hold exactly one entry.
func Decode(doc *ir.Node, typ *schema.Type, opts ...DecodeOption) (*Instance, error) {
	ds := &decodeState{}
	for _, opt := range opts {
		opt(ds)
	}
	if err := expectObject(doc, "/"); err != nil {
		return nil, err
	}
	var (
		vals []*ir.Node
		err  error
	)
	if typ.IsList() && ds.key != nil {
		if vals, err = (&List{typ: typ}).keyTuple("/"+typ.Name.Qualified(), ds.key); err != nil {
			return nil, err
		}
	}
	key, v, ok := lookupRoot(doc, typ.Name)
	if !ok {
		key = typ.Name.Qualified()
		switch {
		case !typ.IsList():
			v = ir.Object()
		case vals == nil:
			return nil, &MissingKeyError{FieldPath: "/" + key, Entries: 0}
		default:
			v = ir.FromSlice(nil)
		}
		doc.Set(key, v)
	}
	if debug.Codec() {
		debug.Logf("decode %s from %q\n", typ.Name, key)
	}
	path := "/" + key
	if !typ.IsList() {
		if err := expectObject(v, path); err != nil {
			return nil, err
		}
		return &Instance{typ: typ, store: v, root: true, path: path}, nil
	}
	if err := expectArray(v, path); err != nil {
		return nil, err
	}
	// a root list has no parent node; the document stands in for one
	holder := &Instance{typ: schema.NewContainer(schema.QName{}), store: doc, root: true}
	l := &List{inst: holder, typ: typ}
	var e *Instance
	switch {
	case vals != nil:
		e, err = l.byKey(v, path, vals)
	case len(v.Values) != 1:
		return nil, &MissingKeyError{FieldPath: path, Entries: len(v.Values)}
	default:
		e, err = l.entry(v, path, 0)
	}
	if err != nil {
		return nil, err
	}
	e.root = true
	e.parentModule = ""
	return e, nil
}

// Envelope keys a document may wrap its roots in.
var envelopes = []string{"data", "ietf-restconf:data"}

// Unwrap returns the object inside a RESTCONF "data" envelope, or doc
// itself when it has none.
func Unwrap(doc *ir.Node) (*ir.Node, error) {
	if err := expectObject(doc, "/"); err != nil {
		return nil, err
	}
	if len(doc.Fields) != 1 {
		return doc, nil
	}
	for _, env := range envelopes {
		if v := ir.Get(doc, env); v != nil {
			if err := expectObject(v, "/"+env); err != nil {
				return nil, err
			}
			return v, nil
		}
	}
	return doc, nil
}

// DecodeAll binds every root of types that has data in doc, unwrapping a
// RESTCONF "data" envelope first. Each entry of a list item root becomes
// an instance of its own.
func DecodeAll(doc *ir.Node, types []*schema.Type) ([]*Instance, error) {
	doc, err := Unwrap(doc)
	if err != nil {
		return nil, err
	}
	var res []*Instance
	for _, typ := range types {
		key, v, ok := lookupRoot(doc, typ.Name)
		if !ok {
			continue
		}
		if !typ.IsList() {
			n, err := Decode(doc, typ)
			if err != nil {
				return nil, err
			}
			res = append(res, n)
			continue
		}
		path := "/" + key
		if err := expectArray(v, path); err != nil {
			return nil, err
		}
		for i, e := range v.Values {
			epath := fmt.Sprintf("%s[%d]", path, i)
			if err := expectObject(e, epath); err != nil {
				return nil, err
			}
			res = append(res, &Instance{typ: typ, store: e, root: true, path: epath})
		}
	}
	return res, nil
}

// EncodeAll merges the encodings of several roots into one document.
// Items of the same list share one sequence.
func EncodeAll(insts []*Instance) (*ir.Node, error) {
	res := ir.Object()
	for _, n := range insts {
		y, err := n.ToJSON()
		if err != nil {
			return nil, err
		}
		key, v := y.Fields[0].String, y.Values[0]
		have := ir.Get(res, key)
		if have != nil && have.Type == ir.ArrayType && v.Type == ir.ArrayType {
			for _, e := range v.Values {
				have.Append(e)
			}
			continue
		}
		res.Set(key, v)
	}
	return res, nil
}
