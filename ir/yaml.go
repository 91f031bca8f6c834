package ir

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML parses a YAML document, keeping mapping order.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAMLValue(v)
}

func fromYAMLValue(v any) (*Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := Object()
		for _, item := range x {
			val, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(fmt.Sprint(item.Key), val)
		}
		return res, nil
	case []any:
		res := FromSlice(nil)
		for _, item := range x {
			val, err := fromYAMLValue(item)
			if err != nil {
				return nil, err
			}
			res.Append(val)
		}
		return res, nil
	}
	return FromValue(v)
}

// ToYAMLValue converts y into values the yaml encoder renders with the
// original key order.
func ToYAMLValue(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i := range y.Fields {
			res[i] = yaml.MapItem{Key: y.Fields[i].String, Value: ToYAMLValue(y.Values[i])}
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i := range y.Values {
			res[i] = ToYAMLValue(y.Values[i])
		}
		return res
	}
	return y.Value()
}
