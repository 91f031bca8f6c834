// Package schema describes the shape of bound data trees.
//
// A schema set is a Registry of Modules and root node Types. Each Type is a
// container, a list item or a choice case and lists its members in
// declaration order: leaves, leaf-lists, child containers, child lists and
// choices. Every member carries a QName, the (local name, namespace, module)
// triple used to tell apart members that different modules contribute to
// the same node.
//
// Types are either built in Go
//
//	ex := &schema.Module{Name: "example", Namespace: "urn:example"}
//	iface := schema.NewList(ex.QName("interface"), []string{"name"},
//	    schema.WithLeaves(ex.QName("name"), ex.QName("mtu")))
//	sys := schema.NewContainer(ex.QName("system"), schema.WithLists(iface))
//
// or loaded from a YAML (or JSON) descriptor with Load:
//
//	modules:
//	  - name: example
//	    namespace: urn:example
//	roots:
//	  - name: system
//	    module: example
//	    lists:
//	      - name: interface
//	        keys: [name]
//	        leaves: [name, mtu, {name: speed, module: example-ext}]
//
// Schema parsing and validation beyond the structural invariants checked by
// (*Type).Validate are the job of upstream tooling.
package schema
