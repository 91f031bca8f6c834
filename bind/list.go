package bind

import (
	"fmt"
	"reflect"

	"github.com/advaoptical/alpakka/debug"
	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

// List gives access to the entries of a keyed list member.
type List struct {
	inst *Instance
	typ  *schema.Type
}

func (l *List) Kind() schema.Kind  { return schema.ListKind }
func (l *List) Name() schema.QName { return l.typ.Name }

func (l *List) Present() bool {
	_, _, ok := lookup(l.inst.store, l.typ.Name)
	return ok
}

// sequence returns the backing array, nil when absent. With create set an
// absent list is stored as an empty array.
func (l *List) sequence(create bool) (*ir.Node, string, error) {
	key, arr, ok := lookup(l.inst.store, l.typ.Name)
	if !ok {
		if !create {
			return nil, l.inst.path + "/" + l.typ.Name.Local, nil
		}
		arr = ir.FromSlice(nil)
		key = store(l.inst.store, l.typ.Name, arr)
	}
	path := l.inst.path + "/" + key
	if err := expectArray(arr, path); err != nil {
		return nil, path, err
	}
	return arr, path, nil
}

func (l *List) entry(arr *ir.Node, path string, i int) (*Instance, error) {
	v := arr.Values[i]
	epath := fmt.Sprintf("%s[%d]", path, i)
	if err := expectObject(v, epath); err != nil {
		return nil, err
	}
	return l.inst.child(l.typ, v, epath), nil
}

// All returns a view per entry, in store order.
func (l *List) All() ([]*Instance, error) {
	arr, path, err := l.sequence(false)
	if err != nil || arr == nil {
		return nil, err
	}
	res := make([]*Instance, len(arr.Values))
	for i := range arr.Values {
		if res[i], err = l.entry(arr, path, i); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Len returns the number of entries, 0 when the list is absent or not a
// sequence.
func (l *List) Len() int {
	arr, _, err := l.sequence(false)
	if err != nil || arr == nil {
		return 0
	}
	return len(arr.Values)
}

// keyTuple converts key values to store values. A single slice argument,
// other than []byte, is taken as the whole tuple.
func (l *List) keyTuple(path string, key []any) ([]*ir.Node, error) {
	if len(key) == 1 {
		key = unpackTuple(key)
	}
	if len(key) != len(l.typ.Keys) {
		return nil, &KeyArityError{FieldPath: path, Want: len(l.typ.Keys), Got: len(key)}
	}
	res := make([]*ir.Node, len(key))
	for i, k := range key {
		v, err := ir.FromValue(k)
		if err != nil {
			return nil, &TypeError{FieldPath: path, Message: fmt.Sprintf("key %s: %v", l.typ.Keys[i], err)}
		}
		if err := expectScalar(v, path); err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func unpackTuple(key []any) []any {
	if tuple, ok := key[0].([]any); ok {
		return tuple
	}
	rv := reflect.ValueOf(key[0])
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return key
	}
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res
}

// find returns the index of the first entry whose key leaves satisfy
// match, or -1.
func (l *List) find(arr *ir.Node, path string, match func(i int, v *ir.Node) bool) (int, error) {
	kls := l.typ.KeyLeaves()
	for i, e := range arr.Values {
		if err := expectObject(e, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return -1, err
		}
		all := true
		for j, kl := range kls {
			_, v, ok := lookup(e, kl.Name)
			if !ok || !match(j, v) {
				all = false
				break
			}
		}
		if all {
			return i, nil
		}
	}
	return -1, nil
}

func equalKeys(vals []*ir.Node) func(int, *ir.Node) bool {
	return func(j int, v *ir.Node) bool { return ir.Equal(v, vals[j]) }
}

// ByKey returns the entry whose key leaves equal key, in key order. When
// there is none a new entry holding just the key leaves is appended and
// returned.
func (l *List) ByKey(key ...any) (*Instance, error) {
	_, path, err := l.sequence(false)
	if err != nil {
		return nil, err
	}
	vals, err := l.keyTuple(path, key)
	if err != nil {
		return nil, err
	}
	arr, path, err := l.sequence(true)
	if err != nil {
		return nil, err
	}
	return l.byKey(arr, path, vals)
}

func (l *List) byKey(arr *ir.Node, path string, vals []*ir.Node) (*Instance, error) {
	i, err := l.find(arr, path, equalKeys(vals))
	if err != nil {
		return nil, err
	}
	if i == -1 {
		e := ir.Object()
		for j, kl := range l.typ.KeyLeaves() {
			e.Set(kl.Name.Local, vals[j])
		}
		arr.Append(e)
		i = len(arr.Values) - 1
		if debug.List() {
			debug.Logf("list %s: new entry %d %v\n", path, i, e)
		}
	}
	return l.entry(arr, path, i)
}

// Find looks an entry up by key without creating one.
func (l *List) Find(key ...any) (*Instance, bool, error) {
	arr, path, err := l.sequence(false)
	if err != nil {
		return nil, false, err
	}
	vals, err := l.keyTuple(path, key)
	if err != nil {
		return nil, false, err
	}
	if arr == nil {
		return nil, false, nil
	}
	i, err := l.find(arr, path, equalKeys(vals))
	if err != nil || i == -1 {
		return nil, false, err
	}
	e, err := l.entry(arr, path, i)
	return e, e != nil, err
}

// findText looks an entry up by the text form of its key values, as they
// appear in data paths.
func (l *List) findText(key []string) (*Instance, bool, error) {
	arr, path, err := l.sequence(false)
	if err != nil {
		return nil, false, err
	}
	if len(key) != len(l.typ.Keys) {
		return nil, false, &KeyArityError{FieldPath: path, Want: len(l.typ.Keys), Got: len(key)}
	}
	if arr == nil {
		return nil, false, nil
	}
	i, err := l.find(arr, path, func(j int, v *ir.Node) bool {
		return v.Type.IsLeaf() && v.Text() == key[j]
	})
	if err != nil || i == -1 {
		return nil, false, err
	}
	e, err := l.entry(arr, path, i)
	return e, e != nil, err
}

// Single returns the only entry of the list, or a MissingKeyError when
// there is not exactly one.
func (l *List) Single() (*Instance, error) {
	arr, path, err := l.sequence(false)
	if err != nil {
		return nil, err
	}
	n := 0
	if arr != nil {
		n = len(arr.Values)
	}
	if n != 1 {
		return nil, &MissingKeyError{FieldPath: path, Entries: n}
	}
	return l.entry(arr, path, 0)
}

// Delete removes the entry with the given key and reports whether there
// was one.
func (l *List) Delete(key ...any) (bool, error) {
	arr, path, err := l.sequence(false)
	if err != nil {
		return false, err
	}
	vals, err := l.keyTuple(path, key)
	if err != nil || arr == nil {
		return false, err
	}
	i, err := l.find(arr, path, equalKeys(vals))
	if err != nil || i == -1 {
		return false, err
	}
	arr.RemoveAt(i)
	return true, nil
}

// Filter returns the entries for which pred holds, in store order.
func (l *List) Filter(pred func(*Instance) (bool, error)) ([]*Instance, error) {
	all, err := l.All()
	if err != nil {
		return nil, err
	}
	var res []*Instance
	for _, e := range all {
		ok, err := pred(e)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.path, err)
		}
		if ok {
			res = append(res, e)
		}
	}
	return res, nil
}
