package bind

import (
	"fmt"

	"github.com/advaoptical/alpakka/debug"
	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

// Choice resolves which of a set of mutually exclusive cases holds data.
type Choice struct {
	inst *Instance
	decl *schema.Choice
}

func (c *Choice) Kind() schema.Kind  { return schema.ChoiceKind }
func (c *Choice) Name() schema.QName { return c.decl.Name }

// Present reports whether a case holds data. A case key holding something
// other than an object reads as absent here; Active returns that error.
func (c *Choice) Present() bool {
	cs, err := c.Active()
	return err == nil && cs != nil
}

// Active returns a view of the first case in declaration order that holds
// data, or nil when none does. A case holds data either wrapped, as a
// non-empty object under the case's own key, or spliced, as one of its
// members sitting directly in the parent store the way decoded documents
// carry it. A spliced case is viewed over the parent store itself. When
// the case has a member of its own name the key is that member's data,
// never a wrapper.
func (c *Choice) Active() (*Instance, error) {
	for _, cs := range c.decl.Cases {
		key, v, ok := lookup(c.inst.store, cs.Name)
		if ok && !cs.OwnsKey(key) {
			path := c.inst.path + "/" + key
			if err := expectObject(v, path); err != nil {
				return nil, err
			}
			if ir.Truth(v) {
				if debug.Choice() {
					debug.Logf("choice %s: case %s wrapped at %s\n", c.decl.Name, cs.Name, path)
				}
				return c.inst.child(cs, v, path), nil
			}
		}
		if c.spliced(cs) {
			if debug.Choice() {
				debug.Logf("choice %s: case %s spliced in %s\n", c.decl.Name, cs.Name, c.inst.path)
			}
			return c.inst.child(cs, c.inst.store, c.inst.path), nil
		}
	}
	return nil, nil
}

func (c *Choice) spliced(cs *schema.Type) bool {
	for _, key := range c.inst.store.Keys() {
		if cs.OwnsKey(key) {
			return true
		}
	}
	return false
}

// Case returns a view of the named case when it is the active one.
func (c *Choice) Case(name string) (*Instance, error) {
	cs := c.decl.Case(name)
	if cs == nil {
		return nil, fmt.Errorf("%w: case %q in choice %s", ErrUnknownMember, name, c.decl.Name)
	}
	active, err := c.Active()
	if err != nil || active == nil || active.typ != cs {
		return nil, err
	}
	return active, nil
}

// Activate writes seed, or an empty object, under the case's key and
// returns a view of it. A seed holding no member of the case is dropped.
// A case with a member of its own name has no wrapper: the owned keys of
// the seed are written into the parent, which the returned view shares.
// Other cases' data is left alone, so when an earlier declared case
// still holds data it stays the active one.
func (c *Choice) Activate(name string, seed any) (*Instance, error) {
	cs := c.decl.Case(name)
	if cs == nil {
		return nil, fmt.Errorf("%w: case %q in choice %s", ErrUnknownMember, name, c.decl.Name)
	}
	data := ir.Object()
	if seed != nil {
		y, err := ir.FromValue(seed)
		if err != nil {
			return nil, &TypeError{FieldPath: c.inst.path + "/" + cs.Name.Local, Message: err.Error()}
		}
		if err := expectObject(y, c.inst.path+"/"+cs.Name.Local); err != nil {
			return nil, err
		}
		for _, k := range y.Keys() {
			if cs.OwnsKey(k) {
				data = y
				break
			}
		}
	}
	if cs.OwnsKey(cs.Name.Local) {
		for i, f := range data.Fields {
			if cs.OwnsKey(f.String) {
				c.inst.store.Set(f.String, data.Values[i])
			}
		}
		if debug.Choice() {
			debug.Logf("choice %s: activated %s in %s with %v\n", c.decl.Name, cs.Name, c.inst.path, data)
		}
		return c.inst.child(cs, c.inst.store, c.inst.path), nil
	}
	key := store(c.inst.store, cs.Name, data)
	if debug.Choice() {
		debug.Logf("choice %s: activated %s with %v\n", c.decl.Name, cs.Name, data)
	}
	return c.inst.child(cs, data, c.inst.path+"/"+key), nil
}
