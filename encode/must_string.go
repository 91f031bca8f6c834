package encode

import (
	"bytes"
	"strings"

	"github.com/advaoptical/alpakka/format"
	"github.com/advaoptical/alpakka/ir"
)

// MustString renders node as single line JSON.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeFormat(format.JSONFormat), EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
