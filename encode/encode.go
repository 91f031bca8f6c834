package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/advaoptical/alpakka/format"
	"github.com/advaoptical/alpakka/ir"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	col           int
	depth, indent int

	format format.Format
	wire   bool

	colors *Colors
	Color  func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as JSON or YAML, followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: cannot encode a value tree as %s", ErrEncoding, es.format)
	}
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	es.col += len(sep)
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

func quote(v string) string {
	d, err := json.Marshal(v)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(d)
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, quote(node.String)))
	case ir.NumberType, ir.BoolType:
		return writeString(w, applyColor(es, node.Type, ValueColor, node.Text()))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if len(node.Fields) == 0 {
		return writeSep(w, es, ir.ObjectType, "}")
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, quote(f.String))); err != nil {
			return err
		}
		colon := ":"
		if !es.wire {
			colon = ": "
		}
		if err := writeSep(w, es, ir.ObjectType, colon); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "]")
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	opts := []yaml.EncodeOption{yaml.Indent(es.indent), yaml.IndentSequence(true)}
	if es.wire {
		opts = append(opts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(ir.ToYAMLValue(node), opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.colors == nil {
		_, err = w.Write(d)
		return err
	}
	p := printer.Printer{
		MapKey: es.colors.property(ir.ObjectType, FieldColor),
		String: es.colors.property(ir.StringType, ValueColor),
		Number: es.colors.property(ir.NumberType, ValueColor),
		Bool:   es.colors.property(ir.BoolType, ValueColor),
	}
	out := p.PrintTokens(lexer.Tokenize(string(d)))
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return writeString(w, out)
}

func (c *Colors) property(t ir.Type, a ColorAttr) printer.PrintFunc {
	prefix, suffix := c.escape(t, a)
	return func() *printer.Property {
		return &printer.Property{Prefix: prefix, Suffix: suffix}
	}
}
