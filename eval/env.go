package eval

import (
	"github.com/advaoptical/alpakka/ir"
	"github.com/advaoptical/alpakka/schema"
)

type Env map[string]any

// EntryEnv exposes the members of object y as expression variables. Each
// member is reachable under its key as is and, when that is not already
// taken, under the snake_case form of its local name, so that
// "example-ext:link-speed" can be written link_speed.
func EntryEnv(y *ir.Node) Env {
	env := Env{}
	if y == nil || y.Type != ir.ObjectType {
		return env
	}
	for i, f := range y.Fields {
		env[f.String] = ToAny(y.Values[i])
	}
	for i, f := range y.Fields {
		_, local, _ := schema.SplitKey(f.String)
		name := schema.SnakeName(local)
		if _, taken := env[name]; !taken {
			env[name] = ToAny(y.Values[i])
		}
	}
	return env
}

// ToAny converts y to the values expressions operate on.
func ToAny(y *ir.Node) any {
	return y.Value()
}
