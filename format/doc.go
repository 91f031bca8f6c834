// Package format names the document formats instance data is read from and
// written to: JSON (RFC 7951 style), YAML and XML.
package format
