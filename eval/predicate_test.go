package eval

import (
	"testing"

	"github.com/advaoptical/alpakka/ir"
)

func entry(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := ir.FromJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestPredicate(t *testing.T) {
	tests := []struct {
		expr  string
		entry string
		want  bool
		err   bool
	}{
		{expr: `speed >= 1000`, entry: `{"name":"eth0","speed":1000}`, want: true},
		{expr: `speed >= 1000`, entry: `{"name":"eth1","speed":100}`, want: false},
		{expr: `name == "eth0" && enabled`, entry: `{"name":"eth0","enabled":true}`, want: true},
		{expr: `link_speed > 1`, entry: `{"example-ext:link-speed":10}`, want: true},
		{expr: `hasprefix(name, "eth")`, entry: `{"name":"eth3"}`, want: true},
		{expr: `missing`, entry: `{}`, want: false},
		{expr: `missing == nil`, entry: `{}`, want: true},
		{expr: `len(tags) == 2`, entry: `{"tags":["a","b"]}`, want: true},
		{expr: `name`, entry: `{"name":"eth0"}`, err: true},
	}
	for _, tt := range tests {
		p, err := Compile(tt.expr)
		if err != nil {
			t.Fatalf("%s: %v", tt.expr, err)
		}
		got, err := p.Eval(entry(t, tt.entry))
		if tt.err {
			if err == nil {
				t.Errorf("%s on %s: expected error", tt.expr, tt.entry)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s on %s: %v", tt.expr, tt.entry, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s on %s = %v, want %v", tt.expr, tt.entry, got, tt.want)
		}
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`speed >=`); err == nil {
		t.Errorf("expected a syntax error")
	}
}

func TestEntryEnvKeepsRawKeys(t *testing.T) {
	env := EntryEnv(entry(t, `{"tcp-port":22,"tcp_port":"taken"}`))
	if env["tcp-port"] != 22 || env["tcp_port"] != "taken" {
		t.Errorf("env %v", env)
	}
}
