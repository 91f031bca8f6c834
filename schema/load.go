package schema

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// descriptor is the on-disk form of a schema set. JSON documents are
// accepted as well since they are valid YAML.
type descriptor struct {
	Modules []*Module   `yaml:"modules"`
	Roots   []*nodeDecl `yaml:"roots"`
}

type nodeDecl struct {
	Name       string        `yaml:"name"`
	Module     string        `yaml:"module"`
	Kind       string        `yaml:"kind"`
	Keys       []string      `yaml:"keys"`
	Leaves     []leafDecl    `yaml:"leaves"`
	LeafLists  []leafDecl    `yaml:"leaf-lists"`
	Containers []*nodeDecl   `yaml:"containers"`
	Lists      []*nodeDecl   `yaml:"lists"`
	Choices    []*choiceDecl `yaml:"choices"`
}

type choiceDecl struct {
	Name   string      `yaml:"name"`
	Module string      `yaml:"module"`
	Cases  []*nodeDecl `yaml:"cases"`
}

// leafDecl is either a bare name or {name, module}.
type leafDecl struct {
	Name   string `yaml:"name"`
	Module string `yaml:"module"`
}

func (l *leafDecl) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		l.Name = name
		return nil
	}
	type plain leafDecl
	return unmarshal((*plain)(l))
}

// LoadFile reads a schema descriptor from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Load reads a schema descriptor: a list of modules and a tree of root
// node types. Members belong to their parent's module unless they name
// another one, and take their namespace from their module.
func Load(r io.Reader) (*Registry, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	desc := &descriptor{}
	if err := yaml.UnmarshalWithOptions(d, desc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("could not decode schema descriptor: %w", err)
	}
	reg := NewRegistry()
	for _, m := range desc.Modules {
		if err := reg.RegisterModule(m); err != nil {
			return nil, err
		}
	}
	l := &loader{reg: reg}
	for _, rd := range desc.Roots {
		if rd.Module == "" {
			return nil, fmt.Errorf("%w: root %q has no module", ErrInvalid, rd.Name)
		}
		t, err := l.node(rd, "", ContainerKind)
		if err != nil {
			return nil, err
		}
		if err := reg.AddRoot(t); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

type loader struct {
	reg *Registry
}

func (l *loader) qname(local, module, parentModule string) (QName, error) {
	if module == "" {
		module = parentModule
	}
	m, ok := l.reg.Module(module)
	if !ok {
		return QName{}, fmt.Errorf("%w: %q refers to unknown module %q", ErrInvalid, local, module)
	}
	return m.QName(local), nil
}

func (l *loader) node(nd *nodeDecl, parentModule string, kind Kind) (*Type, error) {
	name, err := l.qname(nd.Name, nd.Module, parentModule)
	if err != nil {
		return nil, err
	}
	switch nd.Kind {
	case "":
	case "container":
		kind = ContainerKind
	case "list":
		kind = ListKind
	default:
		return nil, fmt.Errorf("%w: %s has unknown kind %q", ErrInvalid, name, nd.Kind)
	}
	if kind == ContainerKind && len(nd.Keys) != 0 {
		kind = ListKind
	}
	t := &Type{Name: name, Kind: kind, Keys: nd.Keys}
	for _, ld := range nd.Leaves {
		q, err := l.qname(ld.Name, ld.Module, name.Module)
		if err != nil {
			return nil, err
		}
		t.Leaves = append(t.Leaves, &Leaf{Name: q})
	}
	for _, ld := range nd.LeafLists {
		q, err := l.qname(ld.Name, ld.Module, name.Module)
		if err != nil {
			return nil, err
		}
		t.LeafLists = append(t.LeafLists, &Leaf{Name: q})
	}
	for _, cd := range nd.Containers {
		c, err := l.node(cd, name.Module, ContainerKind)
		if err != nil {
			return nil, err
		}
		t.Containers = append(t.Containers, c)
	}
	for _, ld := range nd.Lists {
		c, err := l.node(ld, name.Module, ListKind)
		if err != nil {
			return nil, err
		}
		t.Lists = append(t.Lists, c)
	}
	for _, chd := range nd.Choices {
		q, err := l.qname(chd.Name, chd.Module, name.Module)
		if err != nil {
			return nil, err
		}
		ch := &Choice{Name: q}
		for _, cd := range chd.Cases {
			if cd.Kind != "" {
				return nil, fmt.Errorf("%w: case %q of %s declares a kind", ErrInvalid, cd.Name, q)
			}
			cs, err := l.node(cd, q.Module, CaseKind)
			if err != nil {
				return nil, err
			}
			ch.Cases = append(ch.Cases, cs)
		}
		t.Choices = append(t.Choices, ch)
	}
	return t, nil
}
