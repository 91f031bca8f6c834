// Package bind puts schema-typed views over loosely typed instance data.
//
// An Instance pairs a schema.Type with an object of a backing store tree
// (package ir). Members are reached through accessors: Leaf, LeafList,
// Container, List and Choice. All views read and write through to the
// same store, so data decoded from a document can be changed in place
// and encoded again.
//
// # Keys
//
// A member is stored under its local name or under "module:local". Reads
// try the local key first. Writes reuse the qualified key when it is
// already there and use the local key otherwise.
//
// # Encoding
//
// ToJSON produces RFC 7951 JSON: member keys are qualified only when their
// module differs from the enclosing node's, roots are always qualified and
// the content of the active case of a choice sits directly in the node
// holding the choice. ToXML produces the matching element tree with
// namespace declarations wherever the namespace changes.
//
// # Usage
//
//	doc, _ := ir.FromJSON(data)
//	sys, err := bind.Decode(doc, systemType)
//	host, _ := sys.Leaf("hostname")
//	err = host.Set("r2")
//	ifs, _ := sys.List("interface")
//	eth0, err := ifs.ByKey("eth0")
package bind
