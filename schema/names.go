package schema

import (
	"strings"
	"unicode"
)

// GoName converts a schema identifier such as "if-index" into an exported
// Go identifier ("IfIndex").
func GoName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == '.':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	res := b.String()
	if res != "" && unicode.IsDigit(rune(res[0])) {
		res = "X" + res
	}
	return res
}

// SnakeName converts a schema identifier into one usable as a variable
// name in expressions: "if-index" becomes "if_index".
func SnakeName(name string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(name)
}
