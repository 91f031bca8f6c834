package bind

import (
	"fmt"

	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

// Instance is a schema-bound view of one container, list item or case.
// It reads and writes through to a backing store object it shares with
// its parent and children, so a change made through any view is seen by
// all of them.
type Instance struct {
	typ   *schema.Type
	store *ir.Node

	// parentModule is the module of the enclosing node, empty for roots.
	parentModule string
	root         bool
	path         string
}

// New creates a root instance of typ over an empty store.
func New(typ *schema.Type) *Instance {
	return &Instance{typ: typ, store: ir.Object(), root: true, path: "/" + typ.Name.Qualified()}
}

// Wrap creates a root instance of typ over an existing store object.
func Wrap(typ *schema.Type, store *ir.Node) (*Instance, error) {
	path := "/" + typ.Name.Qualified()
	if err := expectObject(store, path); err != nil {
		return nil, err
	}
	return &Instance{typ: typ, store: store, root: true, path: path}, nil
}

func (n *Instance) child(typ *schema.Type, store *ir.Node, path string) *Instance {
	return &Instance{typ: typ, store: store, parentModule: n.typ.Name.Module, path: path}
}

func (n *Instance) Type() *schema.Type { return n.typ }

// Node returns the backing store object of n.
func (n *Instance) Node() *ir.Node { return n.store }

// Path locates n in its document, for messages.
func (n *Instance) Path() string { return n.path }

func (n *Instance) String() string {
	return fmt.Sprintf("%s %s", n.typ.Kind, n.path)
}

// IsRoot reports whether n has no enclosing node, in which case its
// encoded key is always module-qualified.
func (n *Instance) IsRoot() bool { return n.root }

// KeyValues returns the key leaf values of a list item in key order;
// absent keys are nil.
func (n *Instance) KeyValues() []*ir.Node {
	kls := n.typ.KeyLeaves()
	res := make([]*ir.Node, len(kls))
	for i, kl := range kls {
		_, v, ok := lookup(n.store, kl.Name)
		if ok {
			res[i] = v
		}
	}
	return res
}

// Accessor is the common face of the member accessors.
type Accessor interface {
	Kind() schema.Kind
	Name() schema.QName
	// Present reports whether the store holds data for the member.
	Present() bool
}

func (n *Instance) unknown(kind schema.Kind, name string) error {
	return fmt.Errorf("%w: %s %q in %s", ErrUnknownMember, kind, name, n.typ.Name)
}

func (n *Instance) Leaf(name string) (*Leaf, error) {
	decl := n.typ.Leaf(name)
	if decl == nil {
		return nil, n.unknown(schema.LeafKind, name)
	}
	return &Leaf{inst: n, decl: decl}, nil
}

func (n *Instance) LeafList(name string) (*LeafList, error) {
	decl := n.typ.LeafList(name)
	if decl == nil {
		return nil, n.unknown(schema.LeafListKind, name)
	}
	return &LeafList{inst: n, decl: decl}, nil
}

func (n *Instance) Container(name string) (*Container, error) {
	typ := n.typ.Container(name)
	if typ == nil {
		return nil, n.unknown(schema.ContainerKind, name)
	}
	return &Container{inst: n, typ: typ}, nil
}

func (n *Instance) List(name string) (*List, error) {
	typ := n.typ.List(name)
	if typ == nil {
		return nil, n.unknown(schema.ListKind, name)
	}
	return &List{inst: n, typ: typ}, nil
}

func (n *Instance) Choice(name string) (*Choice, error) {
	decl := n.typ.Choice(name)
	if decl == nil {
		return nil, n.unknown(schema.ChoiceKind, name)
	}
	return &Choice{inst: n, decl: decl}, nil
}

// Member returns the accessor for the member called name, whatever its
// kind.
func (n *Instance) Member(name string) (Accessor, error) {
	kind, ok := n.typ.Member(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownMember, name, n.typ.Name)
	}
	switch kind {
	case schema.LeafKind:
		return n.Leaf(name)
	case schema.LeafListKind:
		return n.LeafList(name)
	case schema.ContainerKind:
		return n.Container(name)
	case schema.ListKind:
		return n.List(name)
	default:
		return n.Choice(name)
	}
}

// Lookup is Member extended into the active cases of n's choices, whose
// members read as if they belonged to n.
func (n *Instance) Lookup(name string) (Accessor, *Instance, error) {
	if _, ok := n.typ.Member(name); ok {
		a, err := n.Member(name)
		return a, n, err
	}
	for _, decl := range n.typ.Choices {
		cs, err := (&Choice{inst: n, decl: decl}).Active()
		if err != nil {
			return nil, nil, err
		}
		if cs == nil {
			continue
		}
		a, owner, err := cs.Lookup(name)
		if err == nil {
			return a, owner, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %q in %s", ErrUnknownMember, name, n.typ.Name)
}

func expectObject(v *ir.Node, path string) error {
	if v.Type != ir.ObjectType {
		return &TypeError{FieldPath: path, Expected: ir.ObjectType.String(), Actual: v.Type.String()}
	}
	return nil
}

func expectArray(v *ir.Node, path string) error {
	if v.Type != ir.ArrayType {
		return &TypeError{FieldPath: path, Expected: ir.ArrayType.String(), Actual: v.Type.String()}
	}
	return nil
}

func expectScalar(v *ir.Node, path string) error {
	if !v.Type.IsLeaf() {
		return &TypeError{FieldPath: path, Expected: "scalar", Actual: v.Type.String()}
	}
	return nil
}
