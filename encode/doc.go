// Package encode renders value trees as text.
//
// # Usage
//
//	// Indented JSON
//	err := encode.Encode(node, os.Stdout)
//
//	// Single line JSON
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// Colored YAML
//	err := encode.Encode(node, w,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// XML is not produced here: element names and namespaces come from the
// schema, so the bind package writes it.
package encode
