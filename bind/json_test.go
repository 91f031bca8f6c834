package bind

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

func TestJSONRoundTrip(t *testing.T) {
	tests := []string{
		systemJSON,
		`{"example:system":{}}`,
		`{"example:system":{"hostname":"r1","mtu":9000}}`,
		`{"example:system":{"route":[{"prefix":"0.0.0.0/0","vrf":"red","nexthop":"10.0.0.1"}],"udp-port":53}}`,
	}
	for _, in := range tests {
		_, n := decodeSystem(t, in)
		y, err := n.ToJSON()
		if err != nil {
			t.Fatal(err)
		}
		if got := wire(t, y); got != in {
			t.Errorf("round trip\n got %s\nwant %s", got, in)
		}
	}
}

func TestJSONQualification(t *testing.T) {
	// local and qualified store keys encode the same way
	_, n := decodeSystem(t, `{"example:system":{"example:hostname":"r1","location":"lab","clock":{"example:timezone":"UTC"}}}`)
	y, err := n.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"example:system":{"hostname":"r1","example-ext:location":"lab","clock":{"timezone":"UTC"}}}`
	if got := wire(t, y); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestJSONWrappedCaseIsSpliced(t *testing.T) {
	n := New(systemType())
	c, _ := n.Choice("transport")
	if _, err := c.Activate("udp", map[string]any{"udp-port": 53}); err != nil {
		t.Fatal(err)
	}
	y, err := n.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(t, y); got != `{"example:system":{"udp-port":53}}` {
		t.Errorf("got %s", got)
	}

	// and decoding that output finds the same case
	back, err := Decode(y, systemType())
	if err != nil {
		t.Fatal(err)
	}
	bc, _ := back.Choice("transport")
	if got := activeName(t, bc); got != "udp" {
		t.Errorf("active after round trip %q", got)
	}
}

func TestJSONRoundTripShorthandCase(t *testing.T) {
	tests := []string{
		`{"example:svc":{"port":22}}`,
		`{"example:svc":{"opts":{"level":3}}}`,
	}
	for _, in := range tests {
		n, err := Decode(mustJSON(t, in), svcType())
		if err != nil {
			t.Fatal(err)
		}
		y, err := n.ToJSON()
		if err != nil {
			t.Fatal(err)
		}
		if got := wire(t, y); got != in {
			t.Errorf("round trip\n got %s\nwant %s", got, in)
		}
	}

	// activated, encoded, decoded and encoded again
	n := New(svcType())
	c, _ := n.Choice("mode")
	if _, err := c.Activate("port", map[string]any{"port": 22}); err != nil {
		t.Fatal(err)
	}
	first, err := n.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(first, svcType())
	if err != nil {
		t.Fatal(err)
	}
	second, err := back.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := wire(t, second), `{"example:svc":{"port":22}}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONListItem(t *testing.T) {
	_, n := decodeSystem(t, systemJSON)
	l, _ := n.List("interface")
	eth0, _ := l.ByKey("eth0")
	y, err := eth0.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(t, y); got != `{"interface":[{"name":"eth0","speed":1000}]}` {
		t.Errorf("got %s", got)
	}
	d, err := json.Marshal(eth0)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"interface":[{"name":"eth0","speed":1000}]}` {
		t.Errorf("MarshalJSON %s", d)
	}
}

func TestJSONIgnoresUnknownKeys(t *testing.T) {
	_, n := decodeSystem(t, `{"example:system":{"hostname":"r1","vendor:extra":{"a":1}}}`)
	y, err := n.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(t, y); got != `{"example:system":{"hostname":"r1"}}` {
		t.Errorf("got %s", got)
	}
}

func TestJSONEncodeTypeMismatch(t *testing.T) {
	_, n := decodeSystem(t, `{"example:system":{"dns":"1.1.1.1"}}`)
	if _, err := n.ToJSON(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
}

func TestDecodeAliasesDocument(t *testing.T) {
	doc, n := decodeSystem(t, systemJSON)
	h, _ := n.Leaf("hostname")
	if err := h.Set("r2"); err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(ir.Get(doc, "example:system"), "hostname"); v.String != "r2" {
		t.Errorf("document not updated: %s", wire(t, doc))
	}
}

func TestDecodeRoot(t *testing.T) {
	t.Run("local root key", func(t *testing.T) {
		_, n := decodeSystem(t, `{"system":{"hostname":"r1"}}`)
		h, _ := n.Leaf("hostname")
		if v, _ := h.Value(); v != "r1" {
			t.Errorf("hostname %v", v)
		}
	})
	t.Run("absent root", func(t *testing.T) {
		doc, n := decodeSystem(t, `{}`)
		if wire(t, doc) != `{"example:system":{}}` {
			t.Errorf("doc %s", wire(t, doc))
		}
		if !n.IsRoot() || n.Key() != "example:system" {
			t.Errorf("root key %s", n.Key())
		}
	})
	t.Run("not an object", func(t *testing.T) {
		_, err := Decode(mustJSON(t, `{"example:system":[]}`), systemType())
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("got %v", err)
		}
		_, err = Decode(mustJSON(t, `[]`), systemType())
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("document: %v", err)
		}
	})
}

func TestDecodeListRoot(t *testing.T) {
	users := `{"example:user":[{"login":"ann","shell":"sh"},{"login":"bob"}]}`
	tests := []struct {
		name string
		doc  string
		opts []DecodeOption
		want string
		err  error
	}{
		{name: "by key", doc: users, opts: []DecodeOption{WithKey("bob")}, want: `{"example:user":[{"login":"bob"}]}`},
		{name: "single", doc: `{"example:user":[{"login":"ann"}]}`, want: `{"example:user":[{"login":"ann"}]}`},
		{name: "several without key", doc: users, err: ErrMissingKey},
		{name: "absent without key", doc: `{}`, err: ErrMissingKey},
		{name: "absent with key", doc: `{}`, opts: []DecodeOption{WithKey("cy")}, want: `{"example:user":[{"login":"cy"}]}`},
		{name: "new key", doc: users, opts: []DecodeOption{WithKey("cy")}, want: `{"example:user":[{"login":"cy"}]}`},
		{name: "arity", doc: users, opts: []DecodeOption{WithKey("a", "b")}, err: ErrKeyArity},
		{name: "not a sequence", doc: `{"example:user":{"login":"ann"}}`, err: ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Decode(mustJSON(t, tt.doc), userType(), tt.opts...)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("got %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			y, err := n.ToJSON()
			if err != nil {
				t.Fatal(err)
			}
			if got := wire(t, y); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestDecodeListRootSynthesizesIntoDocument(t *testing.T) {
	doc := mustJSON(t, `{"example:user":[{"login":"ann"}]}`)
	if _, err := Decode(doc, userType(), WithKey("bob")); err != nil {
		t.Fatal(err)
	}
	if got := wire(t, doc); got != `{"example:user":[{"login":"ann"},{"login":"bob"}]}` {
		t.Errorf("doc %s", got)
	}
}

func TestDecodeAll(t *testing.T) {
	types := []*schema.Type{systemType(), userType()}
	for _, doc := range []string{
		`{"example:system":{"hostname":"r1"},"example:user":[{"login":"ann"},{"login":"bob"}]}`,
		`{"ietf-restconf:data":{"example:system":{"hostname":"r1"},"example:user":[{"login":"ann"},{"login":"bob"}]}}`,
		`{"data":{"example:system":{"hostname":"r1"},"example:user":[{"login":"ann"},{"login":"bob"}]}}`,
	} {
		insts, err := DecodeAll(mustJSON(t, doc), types)
		if err != nil {
			t.Fatal(err)
		}
		if len(insts) != 3 {
			t.Fatalf("%d instances from %s", len(insts), doc)
		}
		y, err := EncodeAll(insts)
		if err != nil {
			t.Fatal(err)
		}
		want := `{"example:system":{"hostname":"r1"},"example:user":[{"login":"ann"},{"login":"bob"}]}`
		if got := wire(t, y); got != want {
			t.Errorf("got %s want %s", got, want)
		}
	}
	insts, err := DecodeAll(mustJSON(t, `{"other:thing":{}}`), types)
	if err != nil || len(insts) != 0 {
		t.Errorf("unrelated document: %v %v", insts, err)
	}
}
