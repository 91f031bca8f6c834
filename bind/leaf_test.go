package bind

import (
	"errors"
	"testing"

	"github.com/advaoptical/alpakka/ir"
	"github.com/google/go-cmp/cmp"
)

func TestLeafKeyResolution(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  any
		store string
	}{
		{
			name:  "local",
			body:  `{"hostname":"a"}`,
			want:  "a",
			store: `{"hostname":"b"}`,
		},
		{
			name:  "qualified",
			body:  `{"example:hostname":"a"}`,
			want:  "a",
			store: `{"example:hostname":"b"}`,
		},
		{
			name:  "both prefers local and collapses on write",
			body:  `{"hostname":"a","example:hostname":"q"}`,
			want:  "a",
			store: `{"example:hostname":"b"}`,
		},
		{
			name:  "absent",
			body:  `{}`,
			want:  nil,
			store: `{"hostname":"b"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Wrap(systemType(), mustJSON(t, tt.body))
			if err != nil {
				t.Fatal(err)
			}
			l, err := n.Leaf("hostname")
			if err != nil {
				t.Fatal(err)
			}
			got, err := l.Value()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("read %v, want %v", got, tt.want)
			}
			if err := l.Set("b"); err != nil {
				t.Fatal(err)
			}
			if got := wire(t, n.Node()); got != tt.store {
				t.Errorf("store %s, want %s", got, tt.store)
			}
			if got, _ := l.Value(); got != "b" {
				t.Errorf("read after write %v", got)
			}
		})
	}
}

func TestLeafByQualifiedName(t *testing.T) {
	_, n := decodeSystem(t, systemJSON)
	for _, name := range []string{"location", "example-ext:location"} {
		l, err := n.Leaf(name)
		if err != nil {
			t.Fatal(err)
		}
		if v, _ := l.Value(); v != "lab" {
			t.Errorf("%s = %v", name, v)
		}
	}
	if _, err := n.Leaf("nope"); !errors.Is(err, ErrUnknownMember) {
		t.Errorf("unknown leaf: %v", err)
	}
	if _, err := n.Leaf("clock"); !errors.Is(err, ErrUnknownMember) {
		t.Errorf("container as leaf: %v", err)
	}
}

func TestLeafTypes(t *testing.T) {
	n := New(systemType())
	l, _ := n.Leaf("mtu")
	if l.Present() {
		t.Errorf("present before write")
	}
	if err := l.Set(1500); err != nil {
		t.Fatal(err)
	}
	if !l.Present() {
		t.Errorf("absent after write")
	}
	if err := l.Set(map[string]any{"a": 1}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("object leaf: %v", err)
	}
	if err := l.Set(struct{}{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("struct leaf: %v", err)
	}
	n.Node().Set("hostname", mustJSON(t, `[1]`))
	h, _ := n.Leaf("hostname")
	_, _, err := h.Get()
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("array leaf: %v", err)
	}
	if te.FieldPath != "/example:system/hostname" {
		t.Errorf("path %q", te.FieldPath)
	}
	if !l.Delete() || l.Present() {
		t.Errorf("delete failed")
	}
	if l.Delete() {
		t.Errorf("second delete reported a value")
	}
}

func TestLeafNull(t *testing.T) {
	n := New(systemType())
	l, _ := n.Leaf("hostname")
	if err := l.Set(nil); err != nil {
		t.Fatal(err)
	}
	v, ok, err := l.Get()
	if err != nil || !ok {
		t.Fatalf("null leaf: ok=%v err=%v", ok, err)
	}
	if v.Type != ir.NullType {
		t.Errorf("type %s", v.Type)
	}
	if !l.Present() {
		t.Errorf("null leaf reads as absent")
	}
	y, err := n.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(t, y); got != `{"example:system":{"hostname":null}}` {
		t.Errorf("got %s", got)
	}
}

func TestLeafList(t *testing.T) {
	_, n := decodeSystem(t, systemJSON)
	ll, err := n.LeafList("dns")
	if err != nil {
		t.Fatal(err)
	}
	got, err := ll.Values()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"1.1.1.1", "8.8.8.8"}, got); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if err := ll.Append("9.9.9.9"); err != nil {
		t.Fatal(err)
	}
	if err := ll.Set("a", "b"); err != nil {
		t.Fatal(err)
	}
	got, _ = ll.Values()
	if diff := cmp.Diff([]any{"a", "b"}, got); diff != "" {
		t.Errorf("after set (-want +got):\n%s", diff)
	}
	if err := ll.Set(); err != nil {
		t.Fatal(err)
	}
	if !ll.Present() {
		t.Errorf("empty leaf-list should be present")
	}
	if err := ll.Append([]any{1}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("nested append: %v", err)
	}

	fresh := New(systemType())
	ll, _ = fresh.LeafList("dns")
	if vs, err := ll.Get(); err != nil || vs != nil {
		t.Errorf("absent leaf-list: %v %v", vs, err)
	}
	if err := ll.Append(1, 2); err != nil {
		t.Fatal(err)
	}
	if got := wire(t, fresh.Node()); got != `{"dns":[1,2]}` {
		t.Errorf("store %s", got)
	}
}
