package schema

import (
	"fmt"
	"sync"
)

// Registry holds the modules and root node types of one schema set. It is
// an ordinary value: callers create one per schema set and pass it along.
type Registry struct {
	mu sync.RWMutex

	modules     map[string]*Module
	moduleOrder []*Module
	roots       []*Type
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]*Module),
	}
}

// RegisterModule registers a module
func (r *Registry) RegisterModule(m *Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m == nil || m.Name == "" {
		return fmt.Errorf("module must have a name")
	}
	if _, exists := r.modules[m.Name]; exists {
		return fmt.Errorf("module %q already registered", m.Name)
	}
	r.modules[m.Name] = m
	r.moduleOrder = append(r.moduleOrder, m)
	return nil
}

// Module returns a module by name
func (r *Registry) Module(name string) (*Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.modules[name]
	return m, exists
}

// Modules returns all modules in registration order
func (r *Registry) Modules() []*Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*Module(nil), r.moduleOrder...)
}

// AddRoot validates t and registers it as a top-level node type.
func (r *Registry) AddRoot(t *Type) error {
	if err := t.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, have := range r.roots {
		if have.Name.Qualified() == t.Name.Qualified() {
			return fmt.Errorf("root %s already registered", t.Name)
		}
	}
	r.roots = append(r.roots, t)
	return nil
}

// Root returns a root node type by local or module-qualified name.
func (r *Registry) Root(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := findType(r.roots, name)
	return t, t != nil
}

// Roots returns all root node types in registration order
func (r *Registry) Roots() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*Type(nil), r.roots...)
}
