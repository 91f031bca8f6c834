// Package ir provides the backing store for bound data trees.
//
// # Overview
//
// Every data tree handled by alpakka, whether parsed from JSON or YAML or
// built programmatically, is held as a tree of *ir.Node values. The tree is
// a plain recursive structure that maps one to one onto JSON: it has no
// notion of schema, modules or namespaces. Schema-aware views over it live
// in package bind.
//
// # Node Structure
//
// A Node is a tagged union. The Type field selects which other fields carry
// the value:
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Int64 if the number is an integer fitting 64 bits, else
//     Float64, else the literal in Number
//   - StringType: String
//   - ObjectType: Fields[i] is the (string) key for Values[i]
//   - ArrayType: Values
//
// Object keys are kept in insertion order and must be unique. Children point
// back at their container through Parent, ParentIndex and ParentField.
//
// # Mutation
//
// Objects are mutated with Set and Delete, arrays with Append and RemoveAt.
// All of these mutate the node in place, so any other holder of the same
// *Node observes the change:
//
//	obj := ir.Object()
//	obj.Set("name", ir.FromString("eth0"))
//	obj.Has("name") // true
//
// Assign replaces a node's content wholesale while keeping its position in
// the tree.
//
// # Conversion
//
// FromValue and Value convert between nodes and plain Go values; FromJSON,
// ToJSON and FromYAML convert between nodes and text. Equal compares two
// trees by value.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
package ir
