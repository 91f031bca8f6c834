package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// FromValue converts a Go value into a node. Nodes are passed through
// unless they are already attached to a tree, in which case a detached
// clone is returned.
func FromValue(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		if x.Parent != nil {
			c := x.Clone()
			c.Parent, c.ParentIndex, c.ParentField = nil, 0, ""
			return c, nil
		}
		return x, nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return fromNumberLiteral(string(x)), nil
	case []any:
		items := make([]*Node, len(x))
		for i := range x {
			item, err := FromValue(x[i])
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return FromSlice(items), nil
	case map[string]any:
		res := Object()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			val, err := FromValue(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, val)
		}
		return res, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return FromValue(items)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromValue(m)
	case reflect.String:
		return FromString(rv.String()), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return FromNumber(strconv.FormatUint(u, 10))
	}
	return FromInt(int64(u))
}

func fromNumberLiteral(lit string) *Node {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return FromFloat(f)
	}
	return FromNumber(lit)
}

// Value converts y into plain Go values: map[string]any, []any, string,
// int, float64, bool or nil.
func (y *Node) Value() any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = y.Values[i].Value()
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = elt.Value()
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return int(*y.Int64)
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	case BoolType:
		return y.Bool
	default:
		return nil
	}
}

// Text renders a scalar as text: strings verbatim, numbers in their
// shortest form, booleans as true/false and null as the empty string.
func (y *Node) Text() string {
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return y.Number
	case BoolType:
		return strconv.FormatBool(y.Bool)
	default:
		return ""
	}
}

// Equal reports whether a and b hold the same value. Numbers compare by
// numeric value; values of different types are never equal; object key
// order is not significant.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return equalNumbers(a, b)
	case ArrayType:
		return slices.EqualFunc(a.Values, b.Values, Equal)
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			bv := Get(b, f.String)
			if bv == nil || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return *a.Int64 == *b.Int64
	case a.Int64 != nil && b.Float64 != nil:
		return float64(*a.Int64) == *b.Float64
	case a.Float64 != nil && b.Int64 != nil:
		return *a.Float64 == float64(*b.Int64)
	case a.Float64 != nil && b.Float64 != nil:
		return *a.Float64 == *b.Float64
	}
	return a.Text() == b.Text()
}
