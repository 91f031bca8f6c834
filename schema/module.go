package schema

// Module describes a schema module: the owner of qualified names.
type Module struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`
	Prefix    string `yaml:"prefix"`
	Revision  string `yaml:"revision"`
}

// QName returns the qualified name of local in module m.
func (m *Module) QName(local string) QName {
	return QName{Local: local, Namespace: m.Namespace, Module: m.Name}
}

func (m *Module) String() string {
	if m.Revision == "" {
		return m.Name
	}
	return m.Name + "@" + m.Revision
}
