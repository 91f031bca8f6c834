package schema

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalid = errors.New("invalid schema")

// Leaf describes a leaf or leaf-list member.
type Leaf struct {
	Name QName
}

// Type is the shape of a container, a list item or a choice case. Members
// are kept in declaration order, which is the order of XML output.
type Type struct {
	Name       QName
	Kind       Kind
	Leaves     []*Leaf
	LeafLists  []*Leaf
	Containers []*Type
	Lists      []*Type
	Choices    []*Choice

	// Keys names the key leaves of a list item type, in order.
	Keys []string
}

// Choice groups mutually exclusive cases. Cases are kept in declaration
// order, which decides which case is active when several are populated.
type Choice struct {
	Name  QName
	Cases []*Type
}

type Option func(*Type)

func WithLeaves(names ...QName) Option {
	return func(t *Type) {
		for _, n := range names {
			t.Leaves = append(t.Leaves, &Leaf{Name: n})
		}
	}
}

func WithLeafLists(names ...QName) Option {
	return func(t *Type) {
		for _, n := range names {
			t.LeafLists = append(t.LeafLists, &Leaf{Name: n})
		}
	}
}

func WithContainers(ts ...*Type) Option {
	return func(t *Type) { t.Containers = append(t.Containers, ts...) }
}

func WithLists(ts ...*Type) Option {
	return func(t *Type) { t.Lists = append(t.Lists, ts...) }
}

func WithChoices(cs ...*Choice) Option {
	return func(t *Type) { t.Choices = append(t.Choices, cs...) }
}

func newType(name QName, kind Kind, opts []Option) *Type {
	t := &Type{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewContainer(name QName, opts ...Option) *Type {
	return newType(name, ContainerKind, opts)
}

func NewList(name QName, keys []string, opts ...Option) *Type {
	t := newType(name, ListKind, opts)
	t.Keys = keys
	return t
}

func NewCase(name QName, opts ...Option) *Type {
	return newType(name, CaseKind, opts)
}

func NewChoice(name QName, cases ...*Type) *Choice {
	return &Choice{Name: name, Cases: cases}
}

func findLeaf(ls []*Leaf, name string) *Leaf {
	for _, l := range ls {
		if l.Name.Matches(name) {
			return l
		}
	}
	return nil
}

func findType(ts []*Type, name string) *Type {
	for _, t := range ts {
		if t.Name.Matches(name) {
			return t
		}
	}
	return nil
}

// Leaf finds a leaf member by local or module-qualified name.
func (t *Type) Leaf(name string) *Leaf { return findLeaf(t.Leaves, name) }

func (t *Type) LeafList(name string) *Leaf { return findLeaf(t.LeafLists, name) }

func (t *Type) Container(name string) *Type { return findType(t.Containers, name) }

func (t *Type) List(name string) *Type { return findType(t.Lists, name) }

func (t *Type) Choice(name string) *Choice {
	for _, c := range t.Choices {
		if c.Name.Matches(name) {
			return c
		}
	}
	return nil
}

// Case finds a case by local or module-qualified name.
func (c *Choice) Case(name string) *Type { return findType(c.Cases, name) }

// Member reports the kind of the member called name.
func (t *Type) Member(name string) (Kind, bool) {
	switch {
	case t.Leaf(name) != nil:
		return LeafKind, true
	case t.LeafList(name) != nil:
		return LeafListKind, true
	case t.Container(name) != nil:
		return ContainerKind, true
	case t.List(name) != nil:
		return ListKind, true
	case t.Choice(name) != nil:
		return ChoiceKind, true
	}
	return 0, false
}

// IsList reports whether t is the type of a list item.
func (t *Type) IsList() bool { return t.Kind == ListKind }

// KeyLeaves returns the key leaf descriptors of a list item type in key
// order.
func (t *Type) KeyLeaves() []*Leaf {
	res := make([]*Leaf, 0, len(t.Keys))
	for _, k := range t.Keys {
		if l := t.Leaf(k); l != nil {
			res = append(res, l)
		}
	}
	return res
}

// OwnsKey reports whether a store key names one of t's data members,
// looking through choices into their cases since case content sits
// directly in the parent.
func (t *Type) OwnsKey(key string) bool {
	for _, l := range t.Leaves {
		if l.Name.Matches(key) {
			return true
		}
	}
	for _, l := range t.LeafLists {
		if l.Name.Matches(key) {
			return true
		}
	}
	if findType(t.Containers, key) != nil || findType(t.Lists, key) != nil {
		return true
	}
	for _, c := range t.Choices {
		for _, cs := range c.Cases {
			if cs.Name.Matches(key) || cs.OwnsKey(key) {
				return true
			}
		}
	}
	return false
}

// Validate checks the structural invariants of t and its descendants.
func (t *Type) Validate() error {
	if t.Name.Local == "" {
		return fmt.Errorf("%w: %s with empty name", ErrInvalid, t.Kind)
	}
	seen := map[string]bool{}
	member := func(q QName) error {
		if q.Local == "" {
			return fmt.Errorf("%w: %s has a member with empty name", ErrInvalid, t.Name)
		}
		if seen[q.Qualified()] {
			return fmt.Errorf("%w: %s declares %s twice", ErrInvalid, t.Name, q)
		}
		seen[q.Qualified()] = true
		return nil
	}
	for _, l := range slices.Concat(t.Leaves, t.LeafLists) {
		if err := member(l.Name); err != nil {
			return err
		}
	}
	for _, c := range slices.Concat(t.Containers, t.Lists) {
		if err := member(c.Name); err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, ch := range t.Choices {
		if err := member(ch.Name); err != nil {
			return err
		}
		if len(ch.Cases) == 0 {
			return fmt.Errorf("%w: choice %s has no cases", ErrInvalid, ch.Name)
		}
		for _, cs := range ch.Cases {
			if cs.Kind != CaseKind {
				return fmt.Errorf("%w: choice %s holds %s %s", ErrInvalid, ch.Name, cs.Kind, cs.Name)
			}
			if err := cs.Validate(); err != nil {
				return err
			}
		}
	}
	switch t.Kind {
	case ListKind:
		if len(t.Keys) == 0 {
			return fmt.Errorf("%w: list %s has no keys", ErrInvalid, t.Name)
		}
		for _, k := range t.Keys {
			if t.Leaf(k) == nil {
				return fmt.Errorf("%w: key %q of list %s is not a leaf", ErrInvalid, k, t.Name)
			}
		}
	case ContainerKind, CaseKind:
		if len(t.Keys) != 0 {
			return fmt.Errorf("%w: %s %s declares keys", ErrInvalid, t.Kind, t.Name)
		}
	default:
		return fmt.Errorf("%w: %s cannot be a node type", ErrInvalid, t.Kind)
	}
	return nil
}
