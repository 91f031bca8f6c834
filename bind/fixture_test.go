package bind

import (
	"testing"

	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

var (
	exMod  = &schema.Module{Name: "example", Namespace: "urn:example", Prefix: "ex"}
	extMod = &schema.Module{Name: "example-ext", Namespace: "urn:example:ext", Prefix: "ext"}
)

func ex(local string) schema.QName  { return exMod.QName(local) }
func ext(local string) schema.QName { return extMod.QName(local) }

// systemType is a container with one member of each kind, an augmented
// leaf from another module and a two-case choice.
func systemType() *schema.Type {
	return schema.NewContainer(ex("system"),
		schema.WithLeaves(ex("hostname"), ex("mtu"), ext("location")),
		schema.WithLeafLists(ex("dns")),
		schema.WithContainers(
			schema.NewContainer(ex("clock"), schema.WithLeaves(ex("timezone"))),
		),
		schema.WithLists(
			schema.NewList(ex("interface"), []string{"name"},
				schema.WithLeaves(ex("name"), ex("speed"), ex("enabled"))),
			schema.NewList(ex("route"), []string{"prefix", "vrf"},
				schema.WithLeaves(ex("prefix"), ex("vrf"), ex("nexthop"))),
		),
		schema.WithChoices(
			schema.NewChoice(ex("transport"),
				schema.NewCase(ex("tcp"), schema.WithLeaves(ex("tcp-port"))),
				schema.NewCase(ex("udp"), schema.WithLeaves(ex("udp-port"))),
			),
		),
	)
}

// svcType has a choice whose cases each hold a single member named like
// the case itself.
func svcType() *schema.Type {
	return schema.NewContainer(ex("svc"),
		schema.WithChoices(
			schema.NewChoice(ex("mode"),
				schema.NewCase(ex("port"), schema.WithLeaves(ex("port"))),
				schema.NewCase(ex("opts"), schema.WithContainers(
					schema.NewContainer(ex("opts"), schema.WithLeaves(ex("level"))),
				)),
			),
		),
	)
}

func userType() *schema.Type {
	return schema.NewList(ex("user"), []string{"login"},
		schema.WithLeaves(ex("login"), ex("shell")))
}

const systemJSON = `{"example:system":{"hostname":"r1","example-ext:location":"lab","dns":["1.1.1.1","8.8.8.8"],"clock":{"timezone":"UTC"},"interface":[{"name":"eth0","speed":1000},{"name":"eth1","speed":100}],"tcp-port":22}}`

func mustJSON(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := ir.FromJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func wire(t *testing.T, y *ir.Node) string {
	t.Helper()
	d, err := ir.ToJSON(y)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func decodeSystem(t *testing.T, s string) (*ir.Node, *Instance) {
	t.Helper()
	doc := mustJSON(t, s)
	n, err := Decode(doc, systemType())
	if err != nil {
		t.Fatal(err)
	}
	return doc, n
}
