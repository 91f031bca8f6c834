package bind

import (
	"encoding/xml"
	"io"

	"github.com/advaoptical/alpakka/debug"
)

// NetconfNamespace is the namespace of the NETCONF <data> envelope.
const NetconfNamespace = "urn:ietf:params:xml:ns:netconf:base:1.0"

// Element is one XML element of an encoded instance. Namespace is the
// element's namespace; it is declared only when Declare is set, which the
// encoder does wherever it differs from the enclosing element's.
type Element struct {
	Local     string
	Namespace string
	Declare   bool
	Text      string
	Children  []*Element
}

func newElement(local, ns, parentNS string) *Element {
	return &Element{Local: local, Namespace: ns, Declare: ns != parentNS}
}

// MarshalXML writes e with the namespace declarations it carries, leaving
// the encoder's own namespace handling out of it.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Local}}
	if e.Declare {
		start.Attr = []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: e.Namespace}}
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// ToXML encodes n as an element tree. The root element always declares
// its namespace.
func (n *Instance) ToXML() (*Element, error) {
	el := newElement(n.typ.Name.Local, n.typ.Name.Namespace, "")
	if err := n.encodeXML(el); err != nil {
		return nil, err
	}
	if debug.Codec() {
		debug.Logf("encode %s as xml: %d children\n", n.path, len(el.Children))
	}
	return el, nil
}

// encodeXML appends the members of n to el in declaration order: leaves,
// leaf-lists, containers, lists and then the content of active cases.
func (n *Instance) encodeXML(el *Element) error {
	t := n.typ
	for _, decl := range t.Leaves {
		v, ok, err := (&Leaf{inst: n, decl: decl}).Get()
		if err != nil {
			return err
		}
		if ok {
			c := newElement(decl.Name.Local, decl.Name.Namespace, el.Namespace)
			c.Text = v.Text()
			el.Children = append(el.Children, c)
		}
	}
	for _, decl := range t.LeafLists {
		vs, err := (&LeafList{inst: n, decl: decl}).Get()
		if err != nil {
			return err
		}
		for _, v := range vs {
			c := newElement(decl.Name.Local, decl.Name.Namespace, el.Namespace)
			c.Text = v.Text()
			el.Children = append(el.Children, c)
		}
	}
	for _, typ := range t.Containers {
		cn, err := (&Container{inst: n, typ: typ}).Peek()
		if err != nil {
			return err
		}
		if cn == nil {
			continue
		}
		c := newElement(typ.Name.Local, typ.Name.Namespace, el.Namespace)
		if err := cn.encodeXML(c); err != nil {
			return err
		}
		el.Children = append(el.Children, c)
	}
	for _, typ := range t.Lists {
		entries, err := (&List{inst: n, typ: typ}).All()
		if err != nil {
			return err
		}
		for _, e := range entries {
			c := newElement(typ.Name.Local, typ.Name.Namespace, el.Namespace)
			if err := e.encodeXML(c); err != nil {
				return err
			}
			el.Children = append(el.Children, c)
		}
	}
	for _, decl := range t.Choices {
		cs, err := (&Choice{inst: n, decl: decl}).Active()
		if err != nil {
			return err
		}
		if cs == nil {
			continue
		}
		if err := cs.encodeXML(el); err != nil {
			return err
		}
	}
	return nil
}

func writeElement(w io.Writer, el *Element, indent string) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", indent)
	if err := enc.Encode(el); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteXML writes the XML encoding of n to w.
func (n *Instance) WriteXML(w io.Writer, indent string) error {
	el, err := n.ToXML()
	if err != nil {
		return err
	}
	return writeElement(w, el, indent)
}

// WriteXMLDocument writes several roots inside a NETCONF <data> element.
func WriteXMLDocument(w io.Writer, indent string, insts ...*Instance) error {
	data := newElement("data", NetconfNamespace, "")
	for _, n := range insts {
		el, err := n.ToXML()
		if err != nil {
			return err
		}
		el.Declare = el.Namespace != NetconfNamespace
		data.Children = append(data.Children, el)
	}
	return writeElement(w, data, indent)
}
