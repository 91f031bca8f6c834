package bind

import (
	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

// Leaf reads and writes one scalar member.
type Leaf struct {
	inst *Instance
	decl *schema.Leaf
}

func (l *Leaf) Kind() schema.Kind  { return schema.LeafKind }
func (l *Leaf) Name() schema.QName { return l.decl.Name }

func (l *Leaf) path() string { return l.inst.path + "/" + l.decl.Name.Local }

func (l *Leaf) Present() bool {
	_, _, ok := lookup(l.inst.store, l.decl.Name)
	return ok
}

// Get returns the stored value. Absence is a normal result; a value of the
// wrong shape is a TypeError.
func (l *Leaf) Get() (*ir.Node, bool, error) {
	_, v, ok := lookup(l.inst.store, l.decl.Name)
	if !ok {
		return nil, false, nil
	}
	if err := expectScalar(v, l.path()); err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Value is Get converted to a plain Go value, nil when absent.
func (l *Leaf) Value() (any, error) {
	v, ok, err := l.Get()
	if err != nil || !ok {
		return nil, err
	}
	return v.Value(), nil
}

// Set stores v, which must convert to a scalar.
func (l *Leaf) Set(v any) error {
	y, err := ir.FromValue(v)
	if err != nil {
		return &TypeError{FieldPath: l.path(), Message: err.Error()}
	}
	if err := expectScalar(y, l.path()); err != nil {
		return err
	}
	store(l.inst.store, l.decl.Name, y)
	return nil
}

// Delete removes the leaf and reports whether it was present.
func (l *Leaf) Delete() bool {
	return remove(l.inst.store, l.decl.Name)
}

// LeafList reads and writes a sequence of scalars.
type LeafList struct {
	inst *Instance
	decl *schema.Leaf
}

func (l *LeafList) Kind() schema.Kind  { return schema.LeafListKind }
func (l *LeafList) Name() schema.QName { return l.decl.Name }

func (l *LeafList) path() string { return l.inst.path + "/" + l.decl.Name.Local }

func (l *LeafList) Present() bool {
	_, _, ok := lookup(l.inst.store, l.decl.Name)
	return ok
}

// Get returns the stored values, nil when absent.
func (l *LeafList) Get() ([]*ir.Node, error) {
	_, v, ok := lookup(l.inst.store, l.decl.Name)
	if !ok {
		return nil, nil
	}
	if err := expectArray(v, l.path()); err != nil {
		return nil, err
	}
	for _, item := range v.Values {
		if err := expectScalar(item, item.Path()); err != nil {
			return nil, err
		}
	}
	return v.Values, nil
}

// Values is Get converted to plain Go values.
func (l *LeafList) Values() ([]any, error) {
	vs, err := l.Get()
	if err != nil || vs == nil {
		return nil, err
	}
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = v.Value()
	}
	return res, nil
}

func (l *LeafList) convert(vs []any) ([]*ir.Node, error) {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		y, err := ir.FromValue(v)
		if err != nil {
			return nil, &TypeError{FieldPath: l.path(), Message: err.Error()}
		}
		if err := expectScalar(y, l.path()); err != nil {
			return nil, err
		}
		res[i] = y
	}
	return res, nil
}

// Set replaces the whole sequence. Setting no values leaves an empty,
// present leaf-list.
func (l *LeafList) Set(vs ...any) error {
	items, err := l.convert(vs)
	if err != nil {
		return err
	}
	store(l.inst.store, l.decl.Name, ir.FromSlice(items))
	return nil
}

// Append adds values at the end, creating the leaf-list if it is absent.
func (l *LeafList) Append(vs ...any) error {
	items, err := l.convert(vs)
	if err != nil {
		return err
	}
	_, arr, ok := lookup(l.inst.store, l.decl.Name)
	if !ok {
		arr = ir.FromSlice(nil)
		store(l.inst.store, l.decl.Name, arr)
	} else if err := expectArray(arr, l.path()); err != nil {
		return err
	}
	for _, item := range items {
		arr.Append(item)
	}
	return nil
}

func (l *LeafList) Delete() bool {
	return remove(l.inst.store, l.decl.Name)
}
