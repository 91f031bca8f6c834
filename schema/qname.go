package schema

import "strings"

// QName identifies a schema node: its local name, the XML namespace it
// lives in and the module which defines it.
type QName struct {
	Local     string
	Namespace string
	Module    string
}

// Qualified returns the module-qualified key "module:local", or the bare
// local name when no module is known.
func (q QName) Qualified() string {
	if q.Module == "" {
		return q.Local
	}
	return q.Module + ":" + q.Local
}

func (q QName) String() string {
	return q.Qualified()
}

func (q QName) IsZero() bool {
	return q.Local == "" && q.Namespace == "" && q.Module == ""
}

// Matches reports whether key names q either by local name or by
// module-qualified name.
func (q QName) Matches(key string) bool {
	return key == q.Local || key == q.Qualified()
}

// SplitKey splits a store key into its module prefix and local name.
func SplitKey(key string) (module, local string, qualified bool) {
	module, local, qualified = strings.Cut(key, ":")
	if !qualified {
		return "", key, false
	}
	return module, local, true
}
