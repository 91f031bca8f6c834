package bind

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(t *testing.T, es []*Instance) []any {
	t.Helper()
	var res []any
	for _, e := range es {
		kv := e.KeyValues()
		res = append(res, kv[0].Value())
	}
	return res
}

func TestListByKey(t *testing.T) {
	_, n := decodeSystem(t, systemJSON)
	l, err := n.List("interface")
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 {
		t.Fatalf("len %d", l.Len())
	}
	eth1, err := l.ByKey("eth1")
	if err != nil {
		t.Fatal(err)
	}
	speed, _ := eth1.Leaf("speed")
	if v, _ := speed.Value(); v != 100 {
		t.Errorf("speed %v", v)
	}
	if eth1.Path() != "/example:system/interface[1]" {
		t.Errorf("path %s", eth1.Path())
	}

	// a tuple argument works as well as variadic keys
	again, err := l.ByKey([]any{"eth1"})
	if err != nil {
		t.Fatal(err)
	}
	if again.Node() != eth1.Node() {
		t.Errorf("tuple lookup found another entry")
	}

	eth2, err := l.ByKey("eth2")
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 3 {
		t.Errorf("no entry synthesized")
	}
	if got := wire(t, eth2.Node()); got != `{"name":"eth2"}` {
		t.Errorf("new entry %s", got)
	}
	if _, err := l.ByKey("eth2"); err != nil || l.Len() != 3 {
		t.Errorf("second lookup appended again")
	}
}

func TestListSynthesizesSequence(t *testing.T) {
	n := New(systemType())
	l, _ := n.List("route")
	if l.Present() || l.Len() != 0 {
		t.Fatalf("fresh list has data")
	}
	e, err := l.ByKey("10.0.0.0/8", "red")
	if err != nil {
		t.Fatal(err)
	}
	nh, _ := e.Leaf("nexthop")
	if err := nh.Set("10.1.1.1"); err != nil {
		t.Fatal(err)
	}
	want := `{"route":[{"prefix":"10.0.0.0/8","vrf":"red","nexthop":"10.1.1.1"}]}`
	if got := wire(t, n.Node()); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if _, err := l.ByKey("10.0.0.0/8", "blue"); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 {
		t.Errorf("partial key match reused an entry")
	}
}

func TestListKeyArity(t *testing.T) {
	n := New(systemType())
	l, _ := n.List("route")
	for _, key := range [][]any{{"10.0.0.0/8"}, {"a", "b", "c"}, {}} {
		_, err := l.ByKey(key...)
		var ke *KeyArityError
		if !errors.As(err, &ke) {
			t.Errorf("%v: got %v", key, err)
			continue
		}
		if ke.Want != 2 || ke.Got != len(key) {
			t.Errorf("%v: %+v", key, ke)
		}
	}
	if l.Present() {
		t.Errorf("failed lookups created data")
	}
}

func TestListTypedKeyTuple(t *testing.T) {
	_, n := decodeSystem(t, `{"example:system":{"route":[{"prefix":"10.0.0.0/8","vrf":"red"}]}}`)
	l, _ := n.List("route")
	e, err := l.ByKey([]string{"10.0.0.0/8", "red"})
	if err != nil {
		t.Fatal(err)
	}
	if e.Path() != "/example:system/route[0]" || l.Len() != 1 {
		t.Errorf("typed tuple did not match: %s, len %d", e.Path(), l.Len())
	}
	var ke *KeyArityError
	if _, err := l.ByKey([]string{"10.0.0.0/8"}); !errors.As(err, &ke) || ke.Got != 1 {
		t.Errorf("short typed tuple: %v", err)
	}
}

func TestListKeyEquality(t *testing.T) {
	_, n := decodeSystem(t, `{"example:system":{"route":[{"prefix":1,"vrf":"x"}]}}`)
	l, _ := n.List("route")
	if _, err := l.ByKey(1.0, "x"); err != nil || l.Len() != 1 {
		t.Errorf("numeric key did not match by value")
	}
	if _, err := l.ByKey("1", "x"); err != nil || l.Len() != 2 {
		t.Errorf("string key matched a number")
	}
}

func TestListFindDeleteFilter(t *testing.T) {
	_, n := decodeSystem(t, systemJSON)
	l, _ := n.List("interface")
	if _, ok, err := l.Find("eth9"); ok || err != nil {
		t.Errorf("found eth9: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("find created an entry")
	}
	fast, err := l.Filter(func(e *Instance) (bool, error) {
		s, _ := e.Leaf("speed")
		v, err := s.Value()
		if err != nil {
			return false, err
		}
		return v.(int) >= 1000, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"eth0"}, names(t, fast)); diff != "" {
		t.Errorf("filter (-want +got):\n%s", diff)
	}
	ok, err := l.Delete("eth0")
	if err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	all, _ := l.All()
	if diff := cmp.Diff([]any{"eth1"}, names(t, all)); diff != "" {
		t.Errorf("after delete (-want +got):\n%s", diff)
	}
	if ok, _ := l.Delete("eth0"); ok {
		t.Errorf("deleted twice")
	}
}

func TestListTypeMismatch(t *testing.T) {
	_, n := decodeSystem(t, `{"example:system":{"interface":{"name":"eth0"}}}`)
	l, _ := n.List("interface")
	if _, err := l.All(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("All: %v", err)
	}
	if _, err := l.ByKey("eth0"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("ByKey: %v", err)
	}
	_, n = decodeSystem(t, `{"example:system":{"interface":["eth0"]}}`)
	l, _ = n.List("interface")
	if _, err := l.ByKey("eth0"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("scalar entry: %v", err)
	}
}

func TestListSingle(t *testing.T) {
	_, n := decodeSystem(t, systemJSON)
	l, _ := n.List("interface")
	_, err := l.Single()
	var mk *MissingKeyError
	if !errors.As(err, &mk) || mk.Entries != 2 {
		t.Errorf("got %v", err)
	}
	l.Delete("eth1")
	e, err := l.Single()
	if err != nil {
		t.Fatal(err)
	}
	if v := e.KeyValues()[0].Value(); v != "eth0" {
		t.Errorf("single %v", v)
	}
}
