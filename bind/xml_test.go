package bind

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/advaoptical/alpakka/schema"
)

func TestWriteXML(t *testing.T) {
	_, n := decodeSystem(t, systemJSON)
	buf := bytes.NewBuffer(nil)
	if err := n.WriteXML(buf, "  "); err != nil {
		t.Fatal(err)
	}
	want := `<system xmlns="urn:example">
  <hostname>r1</hostname>
  <location xmlns="urn:example:ext">lab</location>
  <dns>1.1.1.1</dns>
  <dns>8.8.8.8</dns>
  <clock>
    <timezone>UTC</timezone>
  </clock>
  <interface>
    <name>eth0</name>
    <speed>1000</speed>
  </interface>
  <interface>
    <name>eth1</name>
    <speed>100</speed>
  </interface>
  <tcp-port>22</tcp-port>
</system>
`
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestToXMLNamespaces(t *testing.T) {
	_, n := decodeSystem(t, systemJSON)
	el, err := n.ToXML()
	if err != nil {
		t.Fatal(err)
	}
	if !el.Declare || el.Namespace != "urn:example" {
		t.Errorf("root %+v", el)
	}
	for _, c := range el.Children {
		wantDeclare := c.Local == "location"
		if c.Declare != wantDeclare {
			t.Errorf("%s declare %v", c.Local, c.Declare)
		}
	}

	// an element written on its own declares its namespace
	l, _ := n.List("interface")
	eth0, _ := l.ByKey("eth0")
	buf := bytes.NewBuffer(nil)
	if err := eth0.WriteXML(buf, ""); err != nil {
		t.Fatal(err)
	}
	want := `<interface xmlns="urn:example"><name>eth0</name><speed>1000</speed></interface>` + "\n"
	if buf.String() != want {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteXMLDocument(t *testing.T) {
	_, n := decodeSystem(t, `{"example:system":{"hostname":"r1","mtu":1500.5}}`)
	buf := bytes.NewBuffer(nil)
	if err := WriteXMLDocument(buf, "", n); err != nil {
		t.Fatal(err)
	}
	want := `<data xmlns="urn:ietf:params:xml:ns:netconf:base:1.0"><system xmlns="urn:example"><hostname>r1</hostname><mtu>1500.5</mtu></system></data>` + "\n"
	if buf.String() != want {
		t.Errorf("got %q", buf.String())
	}

	// the output is well formed and namespaced as declared
	var doc struct {
		XMLName xml.Name
		System  struct {
			XMLName  xml.Name
			Hostname string `xml:"hostname"`
		} `xml:"urn:example system"`
	}
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.System.XMLName.Space != "urn:example" || doc.System.Hostname != "r1" {
		t.Errorf("read back %+v", doc)
	}
}

func TestXMLEscapes(t *testing.T) {
	_, n := decodeSystem(t, `{"example:system":{"hostname":"a<b&c"}}`)
	buf := bytes.NewBuffer(nil)
	if err := n.WriteXML(buf, ""); err != nil {
		t.Fatal(err)
	}
	want := `<system xmlns="urn:example"><hostname>a&lt;b&amp;c</hostname></system>` + "\n"
	if buf.String() != want {
		t.Errorf("got %q", buf.String())
	}
}

func TestXMLForeignContainer(t *testing.T) {
	typ := schema.NewContainer(ex("top"),
		schema.WithContainers(
			schema.NewContainer(ext("aug"),
				schema.WithLeaves(ext("x")),
				schema.WithContainers(schema.NewContainer(ext("inner"), schema.WithLeaves(ext("y")))),
			),
		),
	)
	n, err := Decode(mustJSON(t, `{"example:top":{"example-ext:aug":{"x":1,"inner":{"y":2}}}}`), typ)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := n.WriteXML(buf, ""); err != nil {
		t.Fatal(err)
	}
	want := `<top xmlns="urn:example"><aug xmlns="urn:example:ext"><x>1</x><inner><y>2</y></inner></aug></top>` + "\n"
	if buf.String() != want {
		t.Errorf("got %q\nwant %q", buf.String(), want)
	}
}
