package bind

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/advaoptical/alpakka/ir"
)

type segment struct {
	name string
	keys []string
	keyed bool
}

func parsePath(path string) ([]segment, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil, nil
	}
	var res []segment
	for _, s := range strings.Split(path, "/") {
		name, keys, keyed := strings.Cut(s, "=")
		seg := segment{keyed: keyed}
		var err error
		if seg.name, err = url.PathUnescape(name); err != nil {
			return nil, fmt.Errorf("bad path segment %q: %w", s, err)
		}
		if keyed {
			for _, k := range strings.Split(keys, ",") {
				kv, err := url.PathUnescape(k)
				if err != nil {
					return nil, fmt.Errorf("bad key in %q: %w", s, err)
				}
				seg.keys = append(seg.keys, kv)
			}
		}
		res = append(res, seg)
	}
	return res, nil
}

// Navigate follows a RESTCONF style data path from n: container names and
// list names with their key values, as in "interfaces/interface=eth0".
// Key values are matched by their text form. A list named without keys
// must hold exactly one entry. Members of active cases are reached as if
// they belonged to the node holding the choice. Nothing is created on
// the way: missing data fails with ErrAbsent.
func (n *Instance) Navigate(path string) (*Instance, error) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	cur := n
	for _, seg := range segs {
		if cur, err = cur.step(seg); err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func (n *Instance) step(seg segment) (*Instance, error) {
	a, _, err := n.Lookup(seg.name)
	if err != nil {
		return nil, err
	}
	switch a := a.(type) {
	case *Container:
		if seg.keyed {
			return nil, &TypeError{FieldPath: n.path + "/" + seg.name, Message: "container takes no keys"}
		}
		c, err := a.Peek()
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("%w at %s/%s", ErrAbsent, n.path, seg.name)
		}
		return c, nil
	case *List:
		if !seg.keyed {
			return a.Single()
		}
		e, ok, err := a.findText(seg.keys)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w at %s/%s=%s", ErrAbsent, n.path, seg.name, strings.Join(seg.keys, ","))
		}
		return e, nil
	default:
		return nil, &TypeError{FieldPath: n.path + "/" + seg.name, Message: fmt.Sprintf("%s is not a node", a.Kind())}
	}
}

// Select returns a detached copy of the data at path: the encoded body of
// a node, the value of a leaf or the values of a leaf-list.
func (n *Instance) Select(path string) (*ir.Node, error) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return n.body(n.typ.Name.Module)
	}
	last := segs[len(segs)-1]
	cur := n
	for _, seg := range segs[:len(segs)-1] {
		if cur, err = cur.step(seg); err != nil {
			return nil, err
		}
	}
	a, _, err := cur.Lookup(last.name)
	if err != nil {
		return nil, err
	}
	switch a := a.(type) {
	case *Leaf:
		v, ok, err := a.Get()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w at %s/%s", ErrAbsent, cur.path, last.name)
		}
		return v.Clone(), nil
	case *LeafList:
		if !a.Present() {
			return nil, fmt.Errorf("%w at %s/%s", ErrAbsent, cur.path, last.name)
		}
		vs, err := a.Get()
		if err != nil {
			return nil, err
		}
		res := ir.FromSlice(nil)
		for _, v := range vs {
			res.Append(v.Clone())
		}
		return res, nil
	case *List:
		if !last.keyed {
			entries, err := a.All()
			if err != nil {
				return nil, err
			}
			res := ir.FromSlice(nil)
			for _, e := range entries {
				body, err := e.body(e.typ.Name.Module)
				if err != nil {
					return nil, err
				}
				res.Append(body)
			}
			return res, nil
		}
	}
	node, err := cur.step(last)
	if err != nil {
		return nil, err
	}
	return node.body(node.typ.Name.Module)
}
