// Package eval compiles expr-lang expressions used to select list
// entries. Expressions see the members of an entry as variables.
package eval
