package bind

import (
	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

// Container gives access to a nested container member.
type Container struct {
	inst *Instance
	typ  *schema.Type
}

func (c *Container) Kind() schema.Kind  { return schema.ContainerKind }
func (c *Container) Name() schema.QName { return c.typ.Name }

func (c *Container) Present() bool {
	_, _, ok := lookup(c.inst.store, c.typ.Name)
	return ok
}

// Get returns a view over the container's data, creating an empty object
// for it first when it is absent.
func (c *Container) Get() (*Instance, error) {
	key, v, ok := lookup(c.inst.store, c.typ.Name)
	if !ok {
		v = ir.Object()
		key = store(c.inst.store, c.typ.Name, v)
	}
	path := c.inst.path + "/" + key
	if err := expectObject(v, path); err != nil {
		return nil, err
	}
	return c.inst.child(c.typ, v, path), nil
}

// Peek is Get without materialization: it returns nil when the container
// is absent.
func (c *Container) Peek() (*Instance, error) {
	if !c.Present() {
		return nil, nil
	}
	return c.Get()
}

func (c *Container) Delete() bool {
	return remove(c.inst.store, c.typ.Name)
}
